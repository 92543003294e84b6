package normalize

import (
	"github.com/imbecility/yt-metaproxy/pkg/models"
	"github.com/imbecility/yt-metaproxy/pkg/selection"
)

// Channel assembles the channel summary from a flat channel-tab record.
func Channel(info *models.Info) *models.ChannelSummary {
	return &models.ChannelSummary{
		ID:          info.ChannelID,
		Title:       info.Channel,
		Description: info.Description,
		Subscribers: info.ChannelFollowerCount,
		Videos:      ChannelVideos(info),
		AvatarURL:   selection.AvatarURL(info.Thumbnails),
		BannerURL:   selection.BannerURL(info.Thumbnails),
	}
}
