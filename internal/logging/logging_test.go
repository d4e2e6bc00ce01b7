package logging_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fpp-cli/internal/logging"
)

func TestNewCreatesLogDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	logger, err := logging.New(dir, false)
	require.NoError(t, err)

	logger.Info("hello")

	data, err := os.ReadFile(filepath.Join(dir, logging.LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestNewLevelThreshold(t *testing.T) {
	dir := t.TempDir()

	logger, err := logging.New(dir, false)
	require.NoError(t, err)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))

	logger, err = logging.New(dir, true)
	require.NoError(t, err)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}
