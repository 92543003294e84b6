package selection

import (
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imbecility/yt-metaproxy/pkg/models"
)

func thumb(url string, w, h int) models.Thumbnail {
	return models.Thumbnail{URL: url, Width: mo.Some(w), Height: mo.Some(h), HasResolution: true}
}

func format(url, ext, protocol string, height int) models.Format {
	return models.Format{
		URL:        url,
		AudioCodec: mo.Some("mp4a.40.2"),
		VideoCodec: mo.Some("avc1.64001F"),
		Ext:        ext,
		Protocol:   protocol,
		Height:     mo.Some(height),
	}
}

func TestBest(t *testing.T) {
	keepAll := func(int) bool { return true }
	identity := func(v int) int { return v }

	t.Run("empty", func(t *testing.T) {
		assert.False(t, Best(nil, keepAll, identity).IsPresent())
	})

	t.Run("filtered out", func(t *testing.T) {
		got := Best([]int{1, 2, 3}, func(int) bool { return false }, identity)
		assert.False(t, got.IsPresent())
	})

	t.Run("first maximal wins", func(t *testing.T) {
		type item struct {
			name string
			size int
		}
		items := []item{{"a", 1}, {"b", 5}, {"c", 5}, {"d", 2}}
		got := Best(items, func(item) bool { return true }, func(i item) int { return i.size })
		require.True(t, got.IsPresent())
		assert.Equal(t, "b", got.MustGet().name)
	})
}

func TestAvatarAndBannerExample(t *testing.T) {
	thumbs := []models.Thumbnail{
		thumb("square", 800, 800),
		thumb("wide", 1200, 675),
	}

	assert.Equal(t, mo.Some("square"), AvatarURL(thumbs))
	assert.Equal(t, mo.Some("wide"), BannerURL(thumbs))
}

func TestAvatarNeverPicksNonSquare(t *testing.T) {
	thumbs := []models.Thumbnail{
		thumb("huge-wide", 2560, 1440),
		thumb("small-square", 88, 88),
		thumb("nearly-square", 1000, 980),
		thumb("mid-square", 176, 176),
	}

	got := AvatarURL(thumbs)
	assert.Equal(t, mo.Some("mid-square"), got)
}

func TestAvatarNoSquareCandidates(t *testing.T) {
	thumbs := []models.Thumbnail{thumb("wide", 1200, 675)}

	assert.False(t, AvatarURL(thumbs).IsPresent())
	assert.Equal(t, mo.Some("wide"), BannerURL(thumbs))
}

func TestSelectionWithoutResolutionMetadata(t *testing.T) {
	thumbs := []models.Thumbnail{
		{URL: "a", Width: mo.Some(800), Height: mo.Some(800)},
		{URL: "b"},
	}

	assert.False(t, AvatarURL(thumbs).IsPresent())
	assert.False(t, BannerURL(thumbs).IsPresent())
	assert.False(t, AvatarURL(nil).IsPresent())
	assert.False(t, BannerURL(nil).IsPresent())
}

func TestAvatarZeroHeight(t *testing.T) {
	thumbs := []models.Thumbnail{
		thumb("zero", 100, 0),
		{URL: "no-height", Width: mo.Some(100), HasResolution: true},
		thumb("ok", 48, 48),
	}

	assert.NotPanics(t, func() {
		assert.Equal(t, mo.Some("ok"), AvatarURL(thumbs))
	})
}

func TestBestFormatExample(t *testing.T) {
	formats := []models.Format{
		format("360", "mp4", "https", 360),
		format("1080", "mp4", "https", 1080),
		format("1440", "webm", "https", 1440),
	}

	got := BestFormat(formats)
	require.True(t, got.IsPresent())
	assert.Equal(t, "1080", got.MustGet().URL)
}

func TestBestFormatOrderIndependent(t *testing.T) {
	formats := []models.Format{
		format("240", "mp4", "https", 240),
		format("hls", "mp4", "m3u8_native", 2160),
		format("720", "mp4", "https", 720),
		format("webm", "webm", "https", 1440),
		format("480", "mp4", "https", 480),
	}

	for shift := range formats {
		rotated := append(append([]models.Format{}, formats[shift:]...), formats[:shift]...)
		got := BestFormat(rotated)
		require.True(t, got.IsPresent())
		assert.Equal(t, "720", got.MustGet().URL, "rotation %d", shift)
	}
}

func TestBestFormatRejectsHLSOnly(t *testing.T) {
	formats := []models.Format{format("hls", "mp4", "m3u8", 1080)}

	assert.False(t, BestFormat(formats).IsPresent())
}

func TestIsProgressiveMP4(t *testing.T) {
	base := format("u", "mp4", "https", 720)

	tests := []struct {
		name   string
		mutate func(*models.Format)
		want   bool
	}{
		{"progressive", func(*models.Format) {}, true},
		{"audio none", func(f *models.Format) { f.AudioCodec = mo.Some("none") }, false},
		{"audio absent", func(f *models.Format) { f.AudioCodec = mo.None[string]() }, false},
		{"video none", func(f *models.Format) { f.VideoCodec = mo.Some("none") }, false},
		{"webm", func(f *models.Format) { f.Ext = "webm" }, false},
		{"hls", func(f *models.Format) { f.Protocol = "m3u8_native" }, false},
		{"dash", func(f *models.Format) { f.Protocol = "http_dash_segments" }, false},
		{"missing height", func(f *models.Format) { f.Height = mo.None[int]() }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := base
			tt.mutate(&f)
			assert.Equal(t, tt.want, IsProgressiveMP4(f))
		})
	}
}

func TestBestFormatMissingHeightCountsAsZero(t *testing.T) {
	noHeight := format("unknown", "mp4", "https", 0)
	noHeight.Height = mo.None[int]()

	got := BestFormat([]models.Format{noHeight, format("144", "mp4", "https", 144)})
	require.True(t, got.IsPresent())
	assert.Equal(t, "144", got.MustGet().URL)
}
