// Package logging builds the logrus logger shared by every component.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config selects the level and output format.
type Config struct {
	Level  string // Any logrus level name; unknown names mean info
	Format string // "json" or "text"
	Output io.Writer
}

// New creates a logger from cfg. Logs go to stderr unless cfg.Output is
// set, so a map printed on stdout stays clean.
func New(cfg Config) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(cfg.Format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	log.SetOutput(out)

	return log
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
