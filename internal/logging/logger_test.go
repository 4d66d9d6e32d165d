package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edsign/internal/config"
	"edsign/internal/errors"
)

func logConfig() config.LogConfig {
	return config.DefaultConfig().Log
}

func TestNew_JSONToNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(logConfig(), &buf)
	require.NoError(t, err)
	defer func() { require.NoError(t, l.Close()) }()

	l.Info().Str("public_key", "ab12").Msg("hello")
	l.Debug().Msg("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "ab12", entry["public_key"])
	assert.Contains(t, entry, "time")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := logConfig()
	cfg.Format = config.FormatConsole
	l, err := New(cfg, &buf)
	require.NoError(t, err)

	l.Warn().Msg("careful")
	out := buf.String()
	assert.Contains(t, out, "careful")
	assert.Contains(t, out, "WRN")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestNew_FileSink(t *testing.T) {
	var buf bytes.Buffer
	cfg := logConfig()
	cfg.Level = "debug"
	cfg.File = filepath.Join(t.TempDir(), "logs", "edsign.log")
	l, err := New(cfg, &buf)
	require.NoError(t, err)

	l.Debug().Msg("to both")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"to both"`)
	assert.Contains(t, buf.String(), "to both")
}

func TestNew_InvalidLevel(t *testing.T) {
	cfg := logConfig()
	cfg.Level = "shout"
	_, err := New(cfg, &bytes.Buffer{})
	assert.ErrorIs(t, err, errors.ErrConfigInvalid)
}

func TestClose_Nil(t *testing.T) {
	var l *Logger
	assert.NoError(t, l.Close())
}

func TestSetGlobal(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { SetGlobal(prev) })

	var buf bytes.Buffer
	SetGlobal(zerolog.New(&buf))
	log.Info().Msg("global")
	assert.Contains(t, buf.String(), `"message":"global"`)
}
