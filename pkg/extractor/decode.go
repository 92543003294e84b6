package extractor

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/imbecility/yt-metaproxy/pkg/models"
)

// rawInfo is the subset of yt-dlp's --dump-single-json output this service reads.
// Everything optional is a pointer so absence survives decoding.
type rawInfo struct {
	ID                   string         `json:"id"`
	ChannelID            *string        `json:"channel_id"`
	Channel              *string        `json:"channel"`
	Title                *string        `json:"title"`
	Description          *string        `json:"description"`
	ChannelFollowerCount *float64       `json:"channel_follower_count"`
	Thumbnails           []rawThumbnail `json:"thumbnails"`
	Entries              []*rawEntry    `json:"entries"`
	Formats              []rawFormat    `json:"formats"`
}

type rawThumbnail struct {
	URL        string   `json:"url"`
	Width      *float64 `json:"width"`
	Height     *float64 `json:"height"`
	Resolution *string  `json:"resolution"`
}

type rawEntry struct {
	ID                  string          `json:"id"`
	Title               *string         `json:"title"`
	URL                 *string         `json:"url"`
	ChannelID           *string         `json:"channel_id"`
	Uploader            *string         `json:"uploader"`
	Availability        *string         `json:"availability"`
	LiveStatus          json.RawMessage `json:"live_status"`
	Duration            *float64        `json:"duration"`
	ViewCount           *float64        `json:"view_count"`
	ConcurrentViewCount *float64        `json:"concurrent_view_count"`
	Thumbnails          []rawThumbnail  `json:"thumbnails"`
}

type rawFormat struct {
	URL         string            `json:"url"`
	ACodec      *string           `json:"acodec"`
	VCodec      *string           `json:"vcodec"`
	Ext         *string           `json:"ext"`
	Protocol    *string           `json:"protocol"`
	Height      *float64          `json:"height"`
	HTTPHeaders map[string]string `json:"http_headers"`
}

// Decode maps an extractor JSON document onto the typed model.
func Decode(data []byte) (*models.Info, error) {
	var raw rawInfo
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedUpstream, err)
	}

	entries := lo.FilterMap(raw.Entries, func(e *rawEntry, _ int) (models.Entry, bool) {
		if e == nil {
			return models.Entry{}, false
		}
		return e.toModel(), true
	})

	return &models.Info{
		ID:                   raw.ID,
		ChannelID:            str(raw.ChannelID),
		Channel:              str(raw.Channel),
		Title:                str(raw.Title),
		Description:          str(raw.Description),
		ChannelFollowerCount: count(raw.ChannelFollowerCount),
		Thumbnails:           thumbnails(raw.Thumbnails),
		Entries:              entries,
		Formats: lo.Map(raw.Formats, func(f rawFormat, _ int) models.Format {
			return f.toModel()
		}),
	}, nil
}

func (e *rawEntry) toModel() models.Entry {
	return models.Entry{
		ID:                  e.ID,
		Title:               str(e.Title),
		URL:                 str(e.URL),
		ChannelID:           str(e.ChannelID),
		Uploader:            str(e.Uploader),
		Availability:        str(e.Availability),
		LiveStatus:          liveStatus(e.LiveStatus),
		Duration:            optional(e.Duration),
		ViewCount:           count(e.ViewCount),
		ConcurrentViewCount: count(e.ConcurrentViewCount),
		Thumbnails:          thumbnails(e.Thumbnails),
	}
}

func (f rawFormat) toModel() models.Format {
	headers := f.HTTPHeaders
	if headers == nil {
		headers = map[string]string{}
	}
	return models.Format{
		URL:         f.URL,
		AudioCodec:  optional(f.ACodec),
		VideoCodec:  optional(f.VCodec),
		Ext:         str(f.Ext),
		Protocol:    str(f.Protocol),
		Height:      pixels(f.Height),
		HTTPHeaders: headers,
	}
}

func thumbnails(raw []rawThumbnail) []models.Thumbnail {
	return lo.Map(raw, func(t rawThumbnail, _ int) models.Thumbnail {
		return models.Thumbnail{
			URL:           t.URL,
			Width:         pixels(t.Width),
			Height:        pixels(t.Height),
			HasResolution: t.Resolution != nil,
		}
	})
}

// liveStatus accepts yt-dlp's string form as well as a bare boolean.
func liveStatus(raw json.RawMessage) mo.Option[string] {
	if len(raw) == 0 || string(raw) == "null" {
		return mo.None[string]()
	}

	var status string
	if err := json.Unmarshal(raw, &status); err == nil {
		return mo.Some(status)
	}

	var flag bool
	if err := json.Unmarshal(raw, &flag); err == nil && flag {
		return mo.Some("is_live")
	}
	return mo.None[string]()
}

func optional[T any](p *T) mo.Option[T] {
	if p == nil {
		return mo.None[T]()
	}
	return mo.Some(*p)
}

func str(p *string) string {
	return optional(p).OrEmpty()
}

func count(p *float64) mo.Option[int64] {
	if p == nil {
		return mo.None[int64]()
	}
	return mo.Some(int64(*p))
}

func pixels(p *float64) mo.Option[int] {
	if p == nil {
		return mo.None[int]()
	}
	return mo.Some(int(*p))
}
