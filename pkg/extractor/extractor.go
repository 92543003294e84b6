package extractor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/imbecility/yt-metaproxy/pkg/models"
)

// Options is the per-call option bag handed to the extraction engine.
type Options struct {
	// SkipDownload is always set; the service never fetches media.
	SkipDownload bool
	// ExtractFlat returns listing-level records without resolving each entry.
	ExtractFlat bool
	// Format is a selector hint such as "best".
	Format string
}

// Extractor resolves a URL or search target into a typed metadata record.
type Extractor interface {
	Extract(ctx context.Context, target string, opts Options) (*models.Info, error)
}

// YTDLP runs yt-dlp as a subprocess through go-ytdlp.
type YTDLP struct {
	// Binary overrides the executable resolved by go-ytdlp.
	Binary string
	Proxy  string

	slots *semaphore.Weighted
}

// NewYTDLP returns an extractor that runs at most maxConcurrent subprocesses at once.
func NewYTDLP(binary, proxy string, maxConcurrent int) *YTDLP {
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}
	return &YTDLP{
		Binary: binary,
		Proxy:  proxy,
		slots:  semaphore.NewWeighted(int64(maxConcurrent)),
	}
}

func (y *YTDLP) Extract(ctx context.Context, target string, opts Options) (*models.Info, error) {
	if err := y.slots.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("extract %s: waiting for extractor slot: %w", target, err)
	}
	defer y.slots.Release(1)

	cmd := y.command(opts)
	log := logrus.WithFields(logrus.Fields{"target": target, "flat": opts.ExtractFlat})
	log.Debug("Starting extraction")
	started := time.Now()

	res, err := cmd.Run(ctx, target)
	var stdout, stderr string
	if res != nil {
		stdout, stderr = res.Stdout, res.Stderr
	}
	if err != nil {
		cerr := classify(ctx, target, stderr, err)
		log.WithError(cerr).WithField("elapsed", time.Since(started)).Warn("Extraction failed")
		return nil, cerr
	}

	info, err := Decode([]byte(strings.TrimSpace(stdout)))
	if err != nil {
		log.WithError(err).Error("Extractor output could not be decoded")
		return nil, fmt.Errorf("extract %s: %w", target, err)
	}

	log.WithFields(logrus.Fields{
		"elapsed": time.Since(started),
		"entries": len(info.Entries),
		"formats": len(info.Formats),
	}).Debug("Extraction finished")
	return info, nil
}

func (y *YTDLP) command(opts Options) *ytdlp.Command {
	cmd := ytdlp.New().
		DumpSingleJSON().
		NoWarnings().
		IgnoreConfig()

	if y.Binary != "" {
		cmd = cmd.SetExecutable(y.Binary)
	}
	if y.Proxy != "" {
		cmd = cmd.Proxy(y.Proxy)
	}
	if opts.SkipDownload {
		cmd = cmd.SkipDownload()
	}
	if opts.ExtractFlat {
		cmd = cmd.FlatPlaylist()
	}
	if opts.Format != "" {
		cmd = cmd.Format(opts.Format)
	}
	return cmd
}
