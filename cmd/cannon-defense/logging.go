package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/cannon-defense/config"
)

const (
	logFileName = "cannon-defense.log"
	maxLogSize  = 10 * 1024 * 1024
)

// parseLevel maps a config level name to zerolog, unknown or empty names fall back to info
func parseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// setupLogging returns a discarding logger unless debug is on, in which case it writes
// plain console lines to the log file. The returned file is nil when logging is off.
func setupLogging(cfg config.LogConfig) (zerolog.Logger, *os.File, error) {
	if !cfg.Debug {
		return zerolog.New(io.Discard), nil, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("creating log directory: %w", err)
	}

	logPath := filepath.Join(cfg.Dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(logPath, logPath+".old"); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("rotating log file: %w", err)
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	writer := zerolog.ConsoleWriter{
		Out:        file,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	logger := zerolog.New(writer).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
	return logger, file, nil
}
