package extractor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractWaitsForSlot(t *testing.T) {
	y := NewYTDLP("/nonexistent/yt-dlp", "", 1)
	require.NoError(t, y.slots.Acquire(context.Background(), 1))
	defer y.slots.Release(1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := y.Extract(ctx, "ytsearch10:anything", Options{SkipDownload: true, ExtractFlat: true})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewYTDLPDefaults(t *testing.T) {
	y := NewYTDLP("", "", 0)
	assert.True(t, y.slots.TryAcquire(4))
	assert.False(t, y.slots.TryAcquire(1))
}
