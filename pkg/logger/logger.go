package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupGlobal configures the standard logrus logger. Unknown levels fall back to info.
func SetupGlobal(level string, jsonFormat bool, showSource bool) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}

	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(parsed)
	logrus.SetReportCaller(showSource)

	if jsonFormat {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if err != nil && level != "" {
		logrus.WithField("level", level).Warn("Unknown log level, using info")
	}
}
