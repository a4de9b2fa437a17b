package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cannon-defense/config"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, logFile, err := setupLogging(config.LogConfig{Dir: dir, Level: "debug"})
	require.NoError(t, err)
	assert.Nil(t, logFile)

	logger.Info().Msg("discarded")

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "log directory should not be created when debug is off")
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, logFile, err := setupLogging(config.LogConfig{Debug: true, Dir: dir, Level: "info"})
	require.NoError(t, err)
	require.NotNil(t, logFile)
	defer logFile.Close()

	logger.Info().Str("tier", "fácil").Msg("session started")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "session started")
	assert.Contains(t, string(data), `tier="fácil"`)
	assert.NotContains(t, string(data), "\x1b[", "file output must not carry color codes")
}

func TestSetupLogging_RespectsLevel(t *testing.T) {
	dir := t.TempDir()

	logger, logFile, err := setupLogging(config.LogConfig{Debug: true, Dir: dir, Level: "warn"})
	require.NoError(t, err)
	defer logFile.Close()

	logger.Info().Msg("quiet")
	logger.Warn().Msg("loud")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "quiet")
	assert.Contains(t, string(data), "loud")
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)

	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644))

	_, logFile, err := setupLogging(config.LogConfig{Debug: true, Dir: dir, Level: "info"})
	require.NoError(t, err)
	defer logFile.Close()

	old, err := os.Stat(logPath + ".old")
	require.NoError(t, err, "oversized log should be rotated")
	assert.EqualValues(t, maxLogSize+1, old.Size())

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSize))
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	logFile := func() *os.File {
		_, f, err := setupLogging(config.LogConfig{Debug: true, Dir: t.TempDir(), Level: "info"})
		require.NoError(t, err)
		return f
	}()
	defer logFile.Close()

	assert.NotEqual(t, os.Stdout.Fd(), logFile.Fd())
	assert.NotEqual(t, os.Stderr.Fd(), logFile.Fd())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"Warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"verbose", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.name))
		})
	}
}
