package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/imbecility/yt-metaproxy/pkg/api"
	"github.com/imbecility/yt-metaproxy/pkg/config"
	"github.com/imbecility/yt-metaproxy/pkg/gateway"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server (default command)",
	RunE:  runServe,
}

func init() {
	flags := serveCmd.Flags()
	flags.String("host", "127.0.0.1", "Listen address")
	lo.Must0(v.BindPFlag(config.ServerHost, flags.Lookup("host")))
	flags.Int("port", 8777, "Listen port")
	lo.Must0(v.BindPFlag(config.ServerPort, flags.Lookup("port")))
	flags.StringSlice("cors-origin", nil, "Allowed CORS origin (repeatable)")
	lo.Must0(v.BindPFlag(config.ServerCORSOrigins, flags.Lookup("cors-origin")))
	flags.Bool("sponsorblock", true, "Serve skip segments from SponsorBlock")
	lo.Must0(v.BindPFlag(config.SponsorBlockEnabled, flags.Lookup("sponsorblock")))
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gw, err := gateway.New(ctx, config.Gateway(v))
	if err != nil {
		return err
	}

	srv := &api.Server{
		Host:        v.GetString(config.ServerHost),
		Port:        v.GetInt(config.ServerPort),
		Gateway:     gw,
		CORSOrigins: v.GetStringSlice(config.ServerCORSOrigins),
	}
	return srv.Start(ctx)
}
