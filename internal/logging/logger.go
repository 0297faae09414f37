package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"cafenotify/internal/config"
)

// New constructs a zerolog logger from config settings.
// Defaults to JSON at info level on stdout.
func New(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level))); err == nil {
		level = parsed
	}

	var output = os.Stdout
	logger := zerolog.New(output)
	if strings.ToLower(strings.TrimSpace(cfg.Format)) == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339})
	}

	return logger.Level(level).With().Timestamp().Str("app", "cafenotify").Logger()
}
