// Package log creates the logrus logger shared by every kdrc command.
package log

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

const timestampFormat = "02-Jan-2006 15:04:05"

// New returns a logger writing to stderr. The logger isn't registered globally;
// callers pass the entry to the code that needs it.
func New(stderr io.Writer, version string) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
	})
	return logger.WithFields(logrus.Fields{
		"version": version,
		"program": "kdrc",
	})
}

func SetLevel(level string, logE *logrus.Entry) error {
	if level == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse the log level: %w", err)
	}
	logE.Logger.SetLevel(lvl)
	return nil
}

// SetColor configures colored output. c is one of "auto", "always" and "never".
func SetColor(c string, logE *logrus.Entry) error {
	formatter, ok := logE.Logger.Formatter.(*logrus.TextFormatter)
	if !ok {
		return errors.New("the log formatter isn't a text formatter")
	}
	switch c {
	case "", "auto":
		return nil
	case "always":
		formatter.ForceColors = true
		color.NoColor = false
	case "never":
		formatter.DisableColors = true
		color.NoColor = true
	default:
		return fmt.Errorf("log color must be one of auto, always, and never: %s", c)
	}
	return nil
}
