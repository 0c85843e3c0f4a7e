package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv(LogFileEnv, "")
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "svgset", "svgset.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should exist at %s", logPath)
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv(LogFileEnv, "")
		t.Setenv("XDG_STATE_HOME", "/custom/state")
		assert.Equal(t, filepath.Join("/custom/state", "svgset", "svgset.log"), getLogFilePath())
	})

	t.Run("with SVGSET_LOG_FILE", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "/custom/state")
		t.Setenv(LogFileEnv, "/tmp/build.log")
		assert.Equal(t, "/tmp/build.log", getLogFilePath())
	})

	t.Run("file logging disabled", func(t *testing.T) {
		t.Setenv(LogFileEnv, "-")
		assert.Equal(t, "", getLogFilePath())
	})

	t.Run("without XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv(LogFileEnv, "")
		t.Setenv("XDG_STATE_HOME", "")
		got := getLogFilePath()
		assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
		assert.Equal(t, "svgset.log", filepath.Base(got))
	})
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := GetLogger("pipeline")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"pipeline"`)
}

func TestSetupLoggerWithCustomFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "build.log")
	t.Setenv(LogFileEnv, logPath)

	SetupLogger(1)
	log.Info().Msg("custom file")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "custom file")
}

func TestForIcon(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	base := zerolog.New(&buf)

	logger := ForIcon(base, "widget-64", "cleanup")
	logger.Info().Msg("discarded")
	assert.Contains(t, buf.String(), `"icon":"widget-64"`)
	assert.Contains(t, buf.String(), `"stage":"cleanup"`)

	buf.Reset()
	logger = ForIcon(base, "widget-48", "")
	logger.Info().Msg("resolved")
	assert.Contains(t, buf.String(), `"icon":"widget-48"`)
	assert.NotContains(t, buf.String(), "stage")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "build")
	require.Contains(t, buf.String(), "Operation started")

	done()
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), "duration")
}

func TestLogDuration(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)

	LogDuration(time.Now().Add(-2*time.Second), "export")

	assert.Contains(t, buf.String(), "export")
	assert.Contains(t, buf.String(), "duration")
}
