package config

// Listener
const (
	ServerHost        = "server.host"
	ServerPort        = "server.port"
	ServerCORSOrigins = "server.cors-origins"
)

// Logging
const (
	LogLevel = "log.level"
	LogJSON  = "log.json"
)

// Extraction engine (yt-dlp)
const (
	ExtractorBinary        = "extractor.binary"
	ExtractorAutoInstall   = "extractor.auto-install"
	ExtractorTimeout       = "extractor.timeout"
	ExtractorMaxConcurrent = "extractor.max-concurrent"
	ExtractorProxy         = "extractor.proxy"
)

// SponsorBlock skip segments
const (
	SponsorBlockEnabled = "sponsorblock.enabled"
	SponsorBlockURL     = "sponsorblock.url"
	SponsorBlockTimeout = "sponsorblock.timeout"
)
