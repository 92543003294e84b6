package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("yt-metaproxy failed")
		os.Exit(1)
	}
}
