package extractor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/imbecility/yt-metaproxy/pkg/models"
)

// unavailableMarkers are yt-dlp error fragments meaning the target does not exist
// or cannot be viewed by anyone.
var unavailableMarkers = []string{
	"video unavailable",
	"private video",
	"this video has been removed",
	"this video is no longer available",
	"this channel does not exist",
	"has been terminated",
	"is not a valid url",
	"incomplete youtube id",
	"http error 404",
	"unable to recognize tab page",
}

// classify turns a failed yt-dlp run into one of the service's error kinds.
func classify(ctx context.Context, target string, stderr string, runErr error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("extract %s: %w", target, ctxErr)
	}
	if errors.Is(runErr, context.DeadlineExceeded) || errors.Is(runErr, context.Canceled) {
		return fmt.Errorf("extract %s: %w", target, runErr)
	}

	msg := lastErrorLine(stderr)
	if msg == "" && runErr != nil {
		msg = runErr.Error()
	}

	lower := strings.ToLower(msg)
	for _, marker := range unavailableMarkers {
		if strings.Contains(lower, marker) {
			return fmt.Errorf("%w: %s", models.ErrNotFound, msg)
		}
	}
	return fmt.Errorf("%w: %s", models.ErrExtraction, msg)
}

// lastErrorLine picks the most specific "ERROR:" line yt-dlp printed.
func lastErrorLine(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	fallback := ""
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "ERROR:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "ERROR:"))
		}
		if fallback == "" {
			fallback = line
		}
	}
	return fallback
}
