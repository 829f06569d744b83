package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsesLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		logger := New(Config{Level: tt.level, NoColor: true})
		assert.Equal(t, tt.want, logger.GetLevel(), "level %q", tt.level)
	}
}

func TestNewCreatesLogFileDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "appdeck.log")

	logger := New(Config{Level: "debug", LogFile: path, NoColor: true})
	logger.Info().Msg("hello")

	_, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
}

func TestNopDiscards(t *testing.T) {
	logger := Nop()
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestNewTestLoggerWrites(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTestLogger(&buf)

	logger.Info().Str("app", "git").Msg("install succeeded")

	assert.Contains(t, buf.String(), `"app":"git"`)
	assert.Contains(t, buf.String(), "install succeeded")
}
