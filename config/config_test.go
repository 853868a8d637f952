package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse("")
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Address)
	require.Equal(t, 50, cfg.MaxFiles)
	require.Equal(t, int64(10<<20), cfg.MaxFileSize)
	require.Equal(t, time.Hour, cfg.SessionTTL)
	require.NotNil(t, cfg.Extractor)
	require.NotNil(t, cfg.Sessions)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	data := `
address: ":9090"
max_files: 100
max_file_size_mb: 50
session_ttl_seconds: 600

tesseract:
  language: eng
`

	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Parse(path)
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.Address)
	require.Equal(t, 100, cfg.MaxFiles)
	require.Equal(t, int64(50<<20), cfg.MaxFileSize)
	require.Equal(t, 10*time.Minute, cfg.SessionTTL)
}

func TestParseUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte("unknown: true"), 0o644))

	_, err := Parse(path)
	require.Error(t, err)
}

func TestParseEnvOverride(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("MAX_FILES", "25")
	t.Setenv("SESSION_TIMEOUT", "120")

	cfg, err := Parse("")
	require.NoError(t, err)

	require.Equal(t, ":7070", cfg.Address)
	require.Equal(t, 25, cfg.MaxFiles)
	require.Equal(t, 2*time.Minute, cfg.SessionTTL)
}

func TestCompleter(t *testing.T) {
	cfg, err := Parse("")
	require.NoError(t, err)

	completer, err := cfg.Completer("openai", "gpt-4o", "sk-test123")
	require.NoError(t, err)
	require.NotNil(t, completer)

	_, err = cfg.Completer("openai", "gpt-4o", "invalid")
	require.ErrorIs(t, err, ErrInvalidKey)

	_, err = cfg.Completer("unknown", "", "sk-test123")
	require.Error(t, err)
}
