package extractor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imbecility/yt-metaproxy/pkg/models"
)

func TestClassify(t *testing.T) {
	runErr := errors.New("exit status 1")

	tests := []struct {
		name   string
		stderr string
		want   error
	}{
		{"unavailable", "ERROR: [youtube] xxxxxxxxxxx: Video unavailable", models.ErrNotFound},
		{"private", "ERROR: [youtube] xxxxxxxxxxx: Private video. Sign in if you've been granted access", models.ErrNotFound},
		{"missing channel", "ERROR: [youtube:tab] UC123: This channel does not exist.", models.ErrNotFound},
		{"bad id", "ERROR: [youtube:truncated_id] abc: Incomplete YouTube ID abc.", models.ErrNotFound},
		{"404", "ERROR: [youtube:tab] Unable to download webpage: HTTP Error 404: Not Found", models.ErrNotFound},
		{"network", "ERROR: [youtube] x: Unable to download API page: <urlopen error [Errno -3] Temporary failure in name resolution>", models.ErrExtraction},
		{"rate limited", "ERROR: [youtube] x: HTTP Error 429: Too Many Requests", models.ErrExtraction},
		{"no stderr", "", models.ErrExtraction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(context.Background(), "target", tt.stderr, runErr)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClassifyContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	<-ctx.Done()

	err := classify(ctx, "target", "ERROR: Video unavailable", errors.New("signal: killed"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLastErrorLine(t *testing.T) {
	stderr := "[youtube] Extracting URL\nERROR: first\nsome trace\nERROR: second\n"
	assert.Equal(t, "second", lastErrorLine(stderr))
	assert.Equal(t, "plain failure", lastErrorLine("plain failure\n\n"))
	assert.Equal(t, "", lastErrorLine(""))
}
