package extractor

import (
	"errors"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imbecility/yt-metaproxy/pkg/models"
)

const channelJSON = `{
	"id": "UC123",
	"channel_id": "UC123",
	"channel": "Example Channel",
	"title": "Example Channel - Videos",
	"description": "About us",
	"channel_follower_count": 15300,
	"thumbnails": [
		{"url": "https://yt3/avatar", "width": 900, "height": 900, "resolution": "900x900", "id": "7"},
		{"url": "https://yt3/banner", "width": 2560, "height": 424, "resolution": "2560x424", "id": "3"},
		{"url": "https://yt3/uncropped", "id": "banner_uncropped", "preference": -10}
	],
	"entries": [
		{
			"_type": "url",
			"id": "abcdefghijk",
			"url": "https://www.youtube.com/watch?v=abcdefghijk",
			"title": "FIRST VIDEO",
			"duration": 312.0,
			"view_count": 1042,
			"availability": null,
			"live_status": null,
			"thumbnails": [{"url": "https://i.ytimg.com/small.jpg", "height": 94, "width": 168}]
		},
		null,
		{
			"id": "members0001",
			"title": "Members only",
			"availability": "subscriber_only",
			"live_status": false
		}
	]
}`

const videoJSON = `{
	"id": "abcdefghijk",
	"title": "A video",
	"formats": [
		{"url": "https://rr/sb", "ext": "mhtml", "protocol": "mhtml", "acodec": "none", "vcodec": "none"},
		{"url": "https://rr/18", "ext": "mp4", "protocol": "https", "acodec": "mp4a.40.2", "vcodec": "avc1.42001E", "height": 360,
		 "http_headers": {"User-Agent": "Mozilla/5.0", "Referer": "https://www.youtube.com/"}},
		{"url": "https://rr/hls", "ext": "mp4", "protocol": "m3u8_native", "acodec": "mp4a.40.2", "vcodec": "avc1.640028", "height": 1080}
	]
}`

func TestDecodeChannel(t *testing.T) {
	info, err := Decode([]byte(channelJSON))
	require.NoError(t, err)

	assert.Equal(t, "UC123", info.ChannelID)
	assert.Equal(t, "Example Channel", info.Channel)
	assert.Equal(t, "About us", info.Description)
	assert.Equal(t, mo.Some(int64(15300)), info.ChannelFollowerCount)

	require.Len(t, info.Thumbnails, 3)
	assert.True(t, info.Thumbnails[0].HasResolution)
	assert.Equal(t, mo.Some(900), info.Thumbnails[0].Width)
	assert.False(t, info.Thumbnails[2].HasResolution)
	assert.False(t, info.Thumbnails[2].Width.IsPresent())

	require.Len(t, info.Entries, 2, "null entries are dropped")
	first := info.Entries[0]
	assert.Equal(t, "FIRST VIDEO", first.Title)
	assert.Equal(t, mo.Some(312.0), first.Duration)
	assert.Equal(t, mo.Some(int64(1042)), first.ViewCount)
	assert.False(t, first.LiveStatus.IsPresent())
	assert.Equal(t, "", first.Availability)

	gated := info.Entries[1]
	assert.Equal(t, "subscriber_only", gated.Availability)
	assert.False(t, gated.LiveStatus.IsPresent())
	assert.Empty(t, gated.Thumbnails)
}

func TestDecodeFormats(t *testing.T) {
	info, err := Decode([]byte(videoJSON))
	require.NoError(t, err)
	require.Len(t, info.Formats, 3)

	sb := info.Formats[0]
	assert.Equal(t, mo.Some("none"), sb.AudioCodec)
	assert.False(t, sb.Height.IsPresent())
	assert.NotNil(t, sb.HTTPHeaders)
	assert.Empty(t, sb.HTTPHeaders)

	progressive := info.Formats[1]
	assert.Equal(t, "mp4", progressive.Ext)
	assert.Equal(t, "https", progressive.Protocol)
	assert.Equal(t, mo.Some(360), progressive.Height)
	assert.Equal(t, "https://www.youtube.com/", progressive.HTTPHeaders["Referer"])
}

func TestDecodeLiveStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want mo.Option[string]
	}{
		{`"is_live"`, mo.Some("is_live")},
		{`"was_live"`, mo.Some("was_live")},
		{`null`, mo.None[string]()},
		{`false`, mo.None[string]()},
		{`true`, mo.Some("is_live")},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			info, err := Decode([]byte(`{"entries": [{"id": "x", "live_status": ` + tt.raw + `}]}`))
			require.NoError(t, err)
			assert.Equal(t, tt.want, info.Entries[0].LiveStatus)
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte(`WARNING: something went wrong`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrMalformedUpstream))
}

func TestDecodeEmptyRecord(t *testing.T) {
	info, err := Decode([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, info.Entries)
	assert.Empty(t, info.Thumbnails)
	assert.False(t, info.ChannelFollowerCount.IsPresent())
}
