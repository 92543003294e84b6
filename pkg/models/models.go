package models

import "github.com/samber/mo"

// Thumbnail is one image candidate reported by the extractor.
type Thumbnail struct {
	URL    string
	Width  mo.Option[int]
	Height mo.Option[int]
	// HasResolution is set when the extractor attached explicit resolution metadata.
	HasResolution bool
}

// Format is one playable rendition of a video.
type Format struct {
	URL         string
	AudioCodec  mo.Option[string]
	VideoCodec  mo.Option[string]
	Ext         string
	Protocol    string
	Height      mo.Option[int]
	HTTPHeaders map[string]string
}

// Entry is a listing-level record (channel tab or search result).
type Entry struct {
	ID                  string
	Title               string
	URL                 string
	ChannelID           string
	Uploader            string
	Availability        string
	LiveStatus          mo.Option[string]
	Duration            mo.Option[float64]
	ViewCount           mo.Option[int64]
	ConcurrentViewCount mo.Option[int64]
	Thumbnails          []Thumbnail
}

// Info is the typed form of a single extractor record.
type Info struct {
	ID                   string
	ChannelID            string
	Channel              string
	Title                string
	Description          string
	ChannelFollowerCount mo.Option[int64]
	Thumbnails           []Thumbnail
	Entries              []Entry
	Formats              []Format
}

type VideoEntry struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	ChannelID string             `json:"channel_id"`
	Uploader  string             `json:"uploader"`
	Duration  mo.Option[float64] `json:"duration"`
	Views     mo.Option[int64]   `json:"views"`
	IsLive    bool               `json:"is_live"`
	Thumbnail string             `json:"thumbnail"`
	// StreamURL stays empty in listings; resolving it takes a per-video call.
	StreamURL mo.Option[string] `json:"stream_url"`
}

type ChannelSummary struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"desc"`
	Subscribers mo.Option[int64]  `json:"subscribers"`
	Videos      []VideoEntry      `json:"videos"`
	AvatarURL   mo.Option[string] `json:"avatar_url"`
	BannerURL   mo.Option[string] `json:"banner_url"`
}

type VideoStream struct {
	StreamURL string            `json:"stream_url"`
	Headers   map[string]string `json:"headers"`
}

// SkipSegment mirrors the SponsorBlock skipSegments payload.
type SkipSegment struct {
	Category      string    `json:"category"`
	ActionType    string    `json:"actionType"`
	Segment       []float64 `json:"segment"`
	UUID          string    `json:"UUID"`
	VideoDuration float64   `json:"videoDuration"`
	Locked        int       `json:"locked"`
	Votes         int       `json:"votes"`
	Description   string    `json:"description"`
}
