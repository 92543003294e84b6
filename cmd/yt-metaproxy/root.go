package main

import (
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/imbecility/yt-metaproxy/pkg/config"
)

var (
	v       = viper.New()
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "yt-metaproxy",
	Short: "HTTP API for video metadata and playable stream URLs, backed by yt-dlp",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Setup(v, cfgFile)
	},
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (yaml, toml or json)")

	flags.String("log-level", "info", "Log level")
	lo.Must0(v.BindPFlag(config.LogLevel, flags.Lookup("log-level")))
	flags.Bool("log-json", false, "Emit logs as JSON")
	lo.Must0(v.BindPFlag(config.LogJSON, flags.Lookup("log-json")))

	flags.String("yt-dlp", "", "Path to the yt-dlp binary")
	lo.Must0(v.BindPFlag(config.ExtractorBinary, flags.Lookup("yt-dlp")))
	flags.Bool("auto-install", true, "Download yt-dlp if no working binary is found")
	lo.Must0(v.BindPFlag(config.ExtractorAutoInstall, flags.Lookup("auto-install")))
	flags.Duration("timeout", 60*time.Second, "Max time per extraction")
	lo.Must0(v.BindPFlag(config.ExtractorTimeout, flags.Lookup("timeout")))
	flags.Int("max-concurrent", 4, "Max parallel yt-dlp processes")
	lo.Must0(v.BindPFlag(config.ExtractorMaxConcurrent, flags.Lookup("max-concurrent")))
	flags.String("proxy", "", "Proxy URL for yt-dlp")
	lo.Must0(v.BindPFlag(config.ExtractorProxy, flags.Lookup("proxy")))

	rootCmd.AddCommand(serveCmd, videoCmd, channelCmd, searchCmd)
}
