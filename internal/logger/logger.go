// Package logger owns the process-wide logrus logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It discards output until Init is called, so
// packages and tests can log freely without setup.
var Log = newDiscard()

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Init configures Log from the environment and points it at out.
//
// LOG_LEVEL selects the level (default "info"). LOG_FORMAT=json selects
// the JSON formatter; anything else gives timestamped text.
func Init(out io.Writer) {
	l := logrus.New()

	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	l.SetOutput(out)
	Log = l
}

// OpenFile opens the log destination named by LOG_FILE, defaulting to
// fallback. "-" means discard. The returned closer is never nil.
func OpenFile(fallback string) (io.Writer, func() error, error) {
	path := envOr("LOG_FILE", fallback)
	if path == "-" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return io.Discard, func() error { return nil }, err
	}
	return f, f.Close, nil
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
