// Package logger builds the logrus logger used by the command line tools.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Setup returns a logger writing to stderr at the given level. Unknown levels
// fall back to warn; unknown formats fall back to text.
func Setup(level, format string) *logrus.Logger {
	return SetupWithOutput(os.Stderr, level, format)
}

// SetupWithOutput is Setup with an explicit destination.
func SetupWithOutput(out io.Writer, level, format string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	switch strings.ToLower(format) {
	case FormatJSON:
		log.SetFormatter(&logrus.JSONFormatter{FieldMap: logrus.FieldMap{
			logrus.FieldKeyMsg: "message",
		}})
	default:
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	log.SetLevel(logrus.WarnLevel)
	l, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("parse log level %q failed, using default level warn", level)
	} else {
		log.SetLevel(l)
	}

	return log
}
