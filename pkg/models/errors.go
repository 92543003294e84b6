package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the identifier does not resolve to a channel or video.
	ErrNotFound = errors.New("not found")
	// ErrNoQualifyingFormat means the video exists but has no progressive mp4 rendition.
	ErrNoQualifyingFormat = errors.New("no qualifying format")
	// ErrExtraction covers network and other transient extractor failures.
	ErrExtraction = errors.New("extraction failed")
	// ErrMalformedUpstream means the extractor output could not be decoded at all.
	ErrMalformedUpstream = errors.New("malformed upstream data")
)

type NoQualifyingFormatError struct {
	VideoID    string
	Candidates int
}

func (e *NoQualifyingFormatError) Error() string {
	return fmt.Sprintf("video %s: none of %d formats is a progressive mp4 with audio and video", e.VideoID, e.Candidates)
}

func (e *NoQualifyingFormatError) Unwrap() error { return ErrNoQualifyingFormat }
