package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/adapter-deploy/internal/domain/config"
)

func TestLevelFromEnv(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for input, want := range tests {
		assert.Equal(t, want, levelFromEnv(input), input)
	}
}

func TestNewLogger(t *testing.T) {
	t.Setenv(LogLevelEnv, "error")

	log := NewLogger(&config.RuntimeConfig{})
	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))

	log = NewLogger(&config.RuntimeConfig{Debug: true})
	assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestShortPath(t *testing.T) {
	assert.Equal(t, "internal/usecase/deploy_adapter.go", shortPath("/home/dev/adapter-deploy/internal/usecase/deploy_adapter.go"))
	assert.Equal(t, "main.go", shortPath("/home/dev/adapter-deploy/cli/main.go"))
}
