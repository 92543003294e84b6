package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/imbecility/yt-metaproxy/pkg/models"
)

const DefaultSponsorBlockURL = "https://sponsor.ajay.app"

// SponsorBlock fetches crowd-sourced skip segments for a video.
type SponsorBlock struct {
	Client  HTTPClient
	BaseURL string
}

func (p *SponsorBlock) Name() string { return "sponsor.ajay.app" }

// SkipSegments returns the segments submitted for videoID.
// SponsorBlock answers 404 when a video has none; that is an empty result, not an error.
func (p *SponsorBlock) SkipSegments(ctx context.Context, videoID string) ([]models.SkipSegment, error) {
	base := p.BaseURL
	if base == "" {
		base = DefaultSponsorBlockURL
	}

	params := url.Values{}
	params.Set("videoID", videoID)
	reqURL := fmt.Sprintf("%s/api/skipSegments?%s", strings.TrimRight(base, "/"), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrExtraction, p.Name(), err)
	}
	defer func(Body io.ReadCloser) {
		cerr := Body.Close()
		if cerr != nil {
			logrus.WithError(cerr).Warn("Failed to close response body")
		}
	}(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return []models.SkipSegment{}, nil
	default:
		return nil, fmt.Errorf("%w: %s: status %d", models.ErrExtraction, p.Name(), resp.StatusCode)
	}

	var segments []models.SkipSegment
	if err := json.NewDecoder(resp.Body).Decode(&segments); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrMalformedUpstream, p.Name(), err)
	}
	if segments == nil {
		segments = []models.SkipSegment{}
	}
	return segments, nil
}
