// Package config holds the service defaults and the viper setup that layers
// config file, environment and flags on top of them.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/imbecility/yt-metaproxy/pkg/gateway"
	"github.com/imbecility/yt-metaproxy/pkg/providers"
)

// EnvPrefix is prepended to every environment variable, e.g. YTMP_SERVER_PORT.
const EnvPrefix = "YTMP"

// EnvKeyReplacer maps config keys onto environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// Field is one configuration entry with its default.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable bound to this field.
func (f Field) Env() string {
	return EnvPrefix + "_" + strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
}

// Defaults lists every known key in display order.
var Defaults = []Field{
	{ServerHost, "127.0.0.1", "Address the HTTP listener binds to"},
	{ServerPort, 8777, "Port the HTTP listener binds to"},
	{ServerCORSOrigins, []string{}, "Origins allowed by CORS; empty disables CORS headers"},
	{LogLevel, "info", "panic, fatal, error, warn, info, debug or trace"},
	{LogJSON, false, "Emit logs as JSON"},
	{ExtractorBinary, "", "Path to yt-dlp; empty resolves it from PATH or the managed cache"},
	{ExtractorAutoInstall, true, "Download yt-dlp when no working binary is found"},
	{ExtractorTimeout, 60 * time.Second, "Upper bound for a single extraction"},
	{ExtractorMaxConcurrent, 4, "Maximum number of yt-dlp processes running at once"},
	{ExtractorProxy, "", "Proxy URL handed to yt-dlp"},
	{SponsorBlockEnabled, true, "Serve /video/:id/segments from SponsorBlock"},
	{SponsorBlockURL, providers.DefaultSponsorBlockURL, "SponsorBlock API base URL"},
	{SponsorBlockTimeout, 15 * time.Second, "HTTP timeout for SponsorBlock requests"},
}

// Setup registers defaults and env bindings on v and reads configFile when given.
func Setup(v *viper.Viper, configFile string) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(EnvKeyReplacer)
	v.SetTypeByDefaultValue(true)

	for _, f := range Defaults {
		v.SetDefault(f.Key, f.Value)
		if err := v.BindEnv(f.Key); err != nil {
			return fmt.Errorf("bind env for %s: %w", f.Key, err)
		}
	}

	if configFile == "" {
		return nil
	}

	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", configFile, err)
	}
	return nil
}

// Gateway builds the gateway configuration from v.
func Gateway(v *viper.Viper) gateway.Config {
	return gateway.Config{
		LogLevel:               v.GetString(LogLevel),
		LogJSON:                v.GetBool(LogJSON),
		ExtractorBinary:        v.GetString(ExtractorBinary),
		AutoInstall:            v.GetBool(ExtractorAutoInstall),
		ExtractTimeout:         v.GetDuration(ExtractorTimeout),
		MaxConcurrent:          v.GetInt(ExtractorMaxConcurrent),
		Proxy:                  v.GetString(ExtractorProxy),
		SponsorBlockEnabled:    v.GetBool(SponsorBlockEnabled),
		SponsorBlockURL:        v.GetString(SponsorBlockURL),
		SponsorBlockTimeoutSec: int(v.GetDuration(SponsorBlockTimeout).Seconds()),
	}
}
