package utils

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	videoURLRe = regexp.MustCompile(`(?:https?://)?(?:www\.|m\.)?(?:youtube|youtu|youtube-nocookie)\.(?:com|be)/(?:watch\?v=|embed/|v/|live/|.+[?&]v=|shorts/)?([^&=%\?/]{11})`)
	videoIDRe  = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
	channelRe  = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	handleRe   = regexp.MustCompile(`^@[\p{L}\p{N}._-]{3,30}$`)
)

// ExtractVideoID accepts a bare 11-character ID or any common YouTube URL form.
// It returns "" when no ID can be found.
func ExtractVideoID(input string) string {
	input = strings.TrimSpace(input)

	if videoIDRe.MatchString(input) {
		return input
	}

	matches := videoURLRe.FindStringSubmatch(input)
	if len(matches) >= 2 && videoIDRe.MatchString(matches[1]) {
		return matches[1]
	}

	return ""
}

// VideoURL is the watch page the extractor resolves for a video ID.
func VideoURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// ChannelVideosURL builds the "videos" tab URL for a channel ID or @handle.
// It returns "" for input that is neither.
func ChannelVideosURL(id string) string {
	id = strings.TrimSpace(id)
	switch {
	case channelRe.MatchString(id):
		return "https://www.youtube.com/channel/" + id + "/videos"
	case handleRe.MatchString(id):
		return "https://www.youtube.com/" + url.PathEscape(id) + "/videos"
	default:
		return ""
	}
}

// SearchTarget is the extractor pseudo-URL for the first n search results.
func SearchTarget(query string, n int) string {
	return "ytsearch" + strconv.Itoa(n) + ":" + query
}
