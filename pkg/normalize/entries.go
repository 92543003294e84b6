package normalize

import (
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/imbecility/yt-metaproxy/pkg/models"
	"github.com/imbecility/yt-metaproxy/pkg/selection"
)

const subscriberOnly = "subscriber_only"

// searchExcludedPaths mark search hits that are not standalone full-length videos.
var searchExcludedPaths = []string{"/channel/", "/shorts/"}

// ChannelVideos shapes the entries of a channel listing. Channel listings never
// report live status, so every entry is marked not live and views pass through as reported.
func ChannelVideos(info *models.Info) []models.VideoEntry {
	return lo.FilterMap(info.Entries, func(e models.Entry, _ int) (models.VideoEntry, bool) {
		if e.Availability == subscriberOnly {
			return models.VideoEntry{}, false
		}
		return models.VideoEntry{
			ID:        e.ID,
			Title:     selection.NormalizeTitle(e.Title),
			ChannelID: info.ChannelID,
			Uploader:  info.Channel,
			Duration:  e.Duration,
			Views:     e.ViewCount,
			IsLive:    false,
			Thumbnail: LastThumbnail(e.Thumbnails),
			StreamURL: mo.None[string](),
		}, true
	})
}

// SearchResults shapes search hits, dropping channels, shorts and subscriber-only videos.
func SearchResults(info *models.Info) []models.VideoEntry {
	return lo.FilterMap(info.Entries, func(e models.Entry, _ int) (models.VideoEntry, bool) {
		if e.Availability == subscriberOnly || isExcludedSearchURL(e.URL) {
			return models.VideoEntry{}, false
		}

		live := IsLive(e)
		duration := e.Duration
		views := mo.Some(e.ViewCount.OrElse(0))
		if live {
			duration = mo.None[float64]()
			views = e.ConcurrentViewCount
		}

		return models.VideoEntry{
			ID:        e.ID,
			Title:     selection.NormalizeTitle(e.Title),
			ChannelID: e.ChannelID,
			Uploader:  e.Uploader,
			Duration:  duration,
			Views:     views,
			IsLive:    live,
			Thumbnail: LastThumbnail(e.Thumbnails),
			StreamURL: mo.None[string](),
		}, true
	})
}

// IsLive treats any reported live status other than "was_live" as live.
func IsLive(e models.Entry) bool {
	status, ok := e.LiveStatus.Get()
	return ok && status != "was_live"
}

// LastThumbnail returns the final thumbnail URL; the extractor orders them by ascending size.
func LastThumbnail(thumbnails []models.Thumbnail) string {
	if len(thumbnails) == 0 {
		return ""
	}
	return thumbnails[len(thumbnails)-1].URL
}

func isExcludedSearchURL(url string) bool {
	return lo.SomeBy(searchExcludedPaths, func(marker string) bool {
		return strings.Contains(url, marker)
	})
}
