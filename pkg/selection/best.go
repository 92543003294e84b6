package selection

import (
	"cmp"
	"math"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/imbecility/yt-metaproxy/pkg/models"
)

// squareTolerance is how far width/height may drift from 1 for an avatar.
const squareTolerance = 0.01

// Best returns the item with the largest key among those accepted by keep.
// Ties go to the earliest item. It returns None when nothing is accepted.
func Best[T any, K cmp.Ordered](items []T, keep func(T) bool, key func(T) K) mo.Option[T] {
	candidates := lo.Filter(items, func(item T, _ int) bool {
		return keep(item)
	})
	if len(candidates) == 0 {
		return mo.None[T]()
	}

	return mo.Some(lo.MaxBy(candidates, func(a, b T) bool {
		return key(a) > key(b)
	}))
}

// AvatarURL picks the largest near-square thumbnail with resolution metadata.
func AvatarURL(thumbnails []models.Thumbnail) mo.Option[string] {
	best := Best(thumbnails, func(t models.Thumbnail) bool {
		return t.HasResolution && isSquare(t)
	}, area)

	return thumbnailURL(best)
}

// BannerURL picks the largest thumbnail with resolution metadata, any aspect ratio.
func BannerURL(thumbnails []models.Thumbnail) mo.Option[string] {
	best := Best(thumbnails, func(t models.Thumbnail) bool {
		return t.HasResolution
	}, area)

	return thumbnailURL(best)
}

// BestFormat returns the tallest progressive mp4 that carries both audio and video.
func BestFormat(formats []models.Format) mo.Option[models.Format] {
	return Best(formats, IsProgressiveMP4, func(f models.Format) int {
		return f.Height.OrElse(0)
	})
}

// IsProgressiveMP4 reports whether a format can be played from one direct URL.
func IsProgressiveMP4(f models.Format) bool {
	return hasCodec(f.AudioCodec) &&
		hasCodec(f.VideoCodec) &&
		f.Ext == "mp4" &&
		!isSegmented(f.Protocol)
}

func hasCodec(codec mo.Option[string]) bool {
	value, ok := codec.Get()
	return ok && value != "" && value != "none"
}

func isSegmented(protocol string) bool {
	return strings.HasPrefix(protocol, "m3u8") || strings.HasPrefix(protocol, "http_dash_segments")
}

func isSquare(t models.Thumbnail) bool {
	w, wok := t.Width.Get()
	h, hok := t.Height.Get()
	if !wok || !hok || h == 0 {
		return false
	}
	return math.Abs(float64(w)/float64(h)-1.0) < squareTolerance
}

func area(t models.Thumbnail) int {
	return t.Width.OrElse(0) * t.Height.OrElse(0)
}

func thumbnailURL(best mo.Option[models.Thumbnail]) mo.Option[string] {
	t, ok := best.Get()
	if !ok {
		return mo.None[string]()
	}
	return mo.Some(t.URL)
}
