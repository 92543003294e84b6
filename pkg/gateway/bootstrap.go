package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/imbecility/yt-metaproxy/pkg/client"
	"github.com/imbecility/yt-metaproxy/pkg/extractor"
	"github.com/imbecility/yt-metaproxy/pkg/logger"
	"github.com/imbecility/yt-metaproxy/pkg/providers"
)

// Config represents the configuration for gateway initialization.
type Config struct {
	// LogLevel is a logrus level name (defaults to info).
	LogLevel string
	// LogJSON switches the log formatter to JSON.
	LogJSON bool

	// ExtractorBinary is the path to yt-dlp; empty lets go-ytdlp resolve it.
	ExtractorBinary string
	// AutoInstall allows downloading yt-dlp when no working binary is found.
	AutoInstall bool
	// ExtractTimeout bounds a single extractor call (defaults to 60s).
	ExtractTimeout time.Duration
	// MaxConcurrent caps parallel yt-dlp processes (defaults to 4).
	MaxConcurrent int
	// Proxy is passed through to yt-dlp.
	Proxy string

	SponsorBlockEnabled bool
	SponsorBlockURL     string
	// SponsorBlockTimeoutSec is the HTTP client timeout in seconds (defaults to 15).
	SponsorBlockTimeoutSec int
}

// New creates a ready-to-use Service instance with all necessary dependencies.
func New(ctx context.Context, cfg Config) (*Service, error) {
	logger.SetupGlobal(cfg.LogLevel, cfg.LogJSON, false)

	if cfg.ExtractTimeout <= 0 {
		cfg.ExtractTimeout = 60 * time.Second
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 4
	}

	binary, err := extractor.EnsureBinary(ctx, cfg.ExtractorBinary, cfg.AutoInstall)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp check failed: %w", err)
	}

	ex := extractor.NewYTDLP(binary, cfg.Proxy, cfg.MaxConcurrent)

	var segments SegmentProvider
	if cfg.SponsorBlockEnabled {
		httpClient, err := client.NewHttpClient(cfg.SponsorBlockTimeoutSec)
		if err != nil {
			return nil, fmt.Errorf("failed to init http client: %w", err)
		}
		segments = &providers.SponsorBlock{Client: httpClient, BaseURL: cfg.SponsorBlockURL}
	}

	logrus.WithFields(logrus.Fields{
		"yt_dlp":         binary,
		"timeout":        cfg.ExtractTimeout,
		"max_concurrent": cfg.MaxConcurrent,
		"sponsorblock":   cfg.SponsorBlockEnabled,
	}).Info("Gateway initialized")

	return NewService(ex, segments, cfg.ExtractTimeout), nil
}
