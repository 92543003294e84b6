package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/imbecility/yt-metaproxy/pkg/config"
	"github.com/imbecility/yt-metaproxy/pkg/gateway"
)

var videoCmd = &cobra.Command{
	Use:   "video <id|url>",
	Short: "Print the best progressive stream for a video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gw, err := newGateway(cmd)
		if err != nil {
			return err
		}
		logrus.WithField("vid", args[0]).Info("Processing video via CLI")
		stream, err := gw.Video(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(stream)
	},
}

var channelCmd = &cobra.Command{
	Use:   "channel <id|@handle>",
	Short: "Print a channel summary with its latest videos",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gw, err := newGateway(cmd)
		if err != nil {
			return err
		}
		summary, err := gw.Channel(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(summary)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Print the first search results for a query",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gw, err := newGateway(cmd)
		if err != nil {
			return err
		}
		results, err := gw.Search(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		return printJSON(results)
	},
}

// newGateway builds a gateway for one-shot commands; segments are not needed there.
func newGateway(cmd *cobra.Command) (*gateway.Service, error) {
	cfg := config.Gateway(v)
	cfg.SponsorBlockEnabled = false
	return gateway.New(cmd.Context(), cfg)
}

func printJSON(data any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
