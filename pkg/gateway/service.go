package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/imbecility/yt-metaproxy/pkg/extractor"
	"github.com/imbecility/yt-metaproxy/pkg/models"
	"github.com/imbecility/yt-metaproxy/pkg/normalize"
	"github.com/imbecility/yt-metaproxy/pkg/selection"
	"github.com/imbecility/yt-metaproxy/pkg/utils"
)

// SearchWindow is how many results a search asks the extractor for.
const SearchWindow = 10

var (
	ErrEmptyQuery       = errors.New("search query is empty")
	ErrSegmentsDisabled = fmt.Errorf("%w: skip segments are disabled", models.ErrNotFound)
)

// SegmentProvider looks up skip segments for a video.
type SegmentProvider interface {
	SkipSegments(ctx context.Context, videoID string) ([]models.SkipSegment, error)
}

type Service struct {
	Extractor extractor.Extractor
	// Segments is nil when the skip segment lookup is disabled.
	Segments SegmentProvider
	Timeout  time.Duration
}

func NewService(ex extractor.Extractor, segments SegmentProvider, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Service{
		Extractor: ex,
		Segments:  segments,
		Timeout:   timeout,
	}
}

// Channel resolves a channel ID or @handle to its summary and latest uploads.
func (s *Service) Channel(ctx context.Context, id string) (*models.ChannelSummary, error) {
	target := utils.ChannelVideosURL(id)
	if target == "" {
		return nil, fmt.Errorf("%w: invalid channel id %q", models.ErrNotFound, id)
	}

	info, err := s.extract(ctx, target, extractor.Options{SkipDownload: true, ExtractFlat: true})
	if err != nil {
		return nil, err
	}
	if info.ChannelID == "" {
		return nil, fmt.Errorf("%w: %s did not resolve to a channel", models.ErrNotFound, id)
	}

	summary := normalize.Channel(info)
	logrus.WithFields(logrus.Fields{
		"channel": summary.ID,
		"videos":  len(summary.Videos),
		"avatar":  summary.AvatarURL.IsPresent(),
		"banner":  summary.BannerURL.IsPresent(),
	}).Debug("Channel assembled")
	return summary, nil
}

// Video resolves the best progressive mp4 stream for a video.
func (s *Service) Video(ctx context.Context, id string) (*models.VideoStream, error) {
	vidID := utils.ExtractVideoID(id)
	if vidID == "" {
		return nil, fmt.Errorf("%w: invalid video id %q", models.ErrNotFound, id)
	}

	info, err := s.extract(ctx, utils.VideoURL(vidID), extractor.Options{SkipDownload: true, Format: "best"})
	if err != nil {
		return nil, err
	}

	best, ok := selection.BestFormat(info.Formats).Get()
	if !ok {
		return nil, &models.NoQualifyingFormatError{VideoID: vidID, Candidates: len(info.Formats)}
	}

	logrus.WithFields(logrus.Fields{
		"vid":      vidID,
		"height":   best.Height.OrElse(0),
		"protocol": best.Protocol,
	}).Debug("Format selected")

	return &models.VideoStream{
		StreamURL: best.URL,
		Headers:   best.HTTPHeaders,
	}, nil
}

// Search returns the first page of standalone, full-length videos for query.
func (s *Service) Search(ctx context.Context, query string) ([]models.VideoEntry, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	info, err := s.extract(ctx, utils.SearchTarget(query, SearchWindow), extractor.Options{SkipDownload: true, ExtractFlat: true})
	if err != nil {
		return nil, err
	}

	return normalize.SearchResults(info), nil
}

// SkipSegments returns SponsorBlock segments for a video.
func (s *Service) SkipSegments(ctx context.Context, id string) ([]models.SkipSegment, error) {
	if s.Segments == nil {
		return nil, ErrSegmentsDisabled
	}

	vidID := utils.ExtractVideoID(id)
	if vidID == "" {
		return nil, fmt.Errorf("%w: invalid video id %q", models.ErrNotFound, id)
	}

	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()
	return s.Segments.SkipSegments(ctx, vidID)
}

func (s *Service) extract(ctx context.Context, target string, opts extractor.Options) (*models.Info, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	return s.Extractor.Extract(ctx, target, opts)
}
