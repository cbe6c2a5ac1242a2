package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logFileName = "pixel-survivor.log"
	maxLogSize  = 10 * 1024 * 1024 // 10 MiB
)

// setupLogging routes zerolog into dir/pixel-survivor.log when debug is set
// Nothing is ever written to stdout or stderr, the terminal is in raw mode
// Returns the open log file, nil when logging is off
func setupLogging(debug bool, dir string) (zerolog.Logger, *os.File) {
	if !debug {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		return zerolog.Nop(), nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Nop(), nil
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("pixel-survivor-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := zerolog.New(f).With().Timestamp().Logger()
	logger.Info().Int("pid", os.Getpid()).Msg("logging started")
	return logger, f
}
