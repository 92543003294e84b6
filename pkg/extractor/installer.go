package extractor

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/lrstanley/go-ytdlp"
	"github.com/sirupsen/logrus"
)

// EnsureBinary returns the path of a working yt-dlp executable.
// An explicitly requested path wins; otherwise go-ytdlp resolves a system
// install or downloads its pinned release when autoInstall is set.
func EnsureBinary(ctx context.Context, requestedPath string, autoInstall bool) (string, error) {
	if requestedPath != "" {
		if version, ok := probe(ctx, requestedPath); ok {
			logrus.WithFields(logrus.Fields{"path": requestedPath, "version": version}).Debug("yt-dlp found and working")
			return requestedPath, nil
		}
		if !autoInstall {
			return "", fmt.Errorf("yt-dlp at %q is not working", requestedPath)
		}
		logrus.WithField("path", requestedPath).Warn("yt-dlp not found or invalid. Falling back to managed install...")
	}

	if !autoInstall {
		if version, ok := probe(ctx, "yt-dlp"); ok {
			logrus.WithField("version", version).Debug("Using yt-dlp from PATH")
			return "yt-dlp", nil
		}
		return "", errors.New("yt-dlp not found in PATH and auto-install is disabled")
	}

	resolved, err := ytdlp.Install(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to install yt-dlp: %w", err)
	}

	if _, ok := probe(ctx, resolved.Executable); !ok {
		return "", fmt.Errorf("installed yt-dlp at %q is not working", resolved.Executable)
	}

	logrus.WithFields(logrus.Fields{
		"path":       resolved.Executable,
		"version":    resolved.Version,
		"downloaded": resolved.Downloaded,
	}).Info("yt-dlp ready")
	return resolved.Executable, nil
}

func probe(ctx context.Context, path string) (string, bool) {
	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(out)), true
}
