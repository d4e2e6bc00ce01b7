package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the rolling log file kept under the configured directory.
const LogFileName = "fpp-cli.log"

// New builds the logger for one command invocation: console output on
// stderr mirrored into a rolling log file under dir, which is created if
// absent. debug lowers the threshold from Info to Debug for both sinks.
func New(dir string, debug bool) (*slog.Logger, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	file := &lumberjack.Logger{
		Filename:   filepath.Join(dir, LogFileName),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	}

	h := slog.NewTextHandler(io.MultiWriter(os.Stderr, file), &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(h), nil
}
