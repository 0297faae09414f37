package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"cafenotify/internal/config"
)

func TestNewParsesLevel(t *testing.T) {
	log := New(config.LoggingConfig{Level: "debug", Format: "json"})
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}

func TestNewDefaultsToInfoOnBadLevel(t *testing.T) {
	log := New(config.LoggingConfig{Level: "shout", Format: "console"})
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}
