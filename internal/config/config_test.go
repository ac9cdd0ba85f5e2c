package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Quiz.Facts)
	assert.Nil(t, cfg.Quiz.Seed)

	_, err = LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[quiz]
facts = "/tmp/facts.tsv"
seed = 42
delims = "\n"
list-limit = 12
log-level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Quiz.Facts)
	assert.Equal(t, "/tmp/facts.tsv", *cfg.Quiz.Facts)
	assert.Equal(t, int64(42), *cfg.Quiz.Seed)
	assert.Equal(t, "\n", *cfg.Quiz.Delims)
	assert.Equal(t, 12, *cfg.Quiz.ListLimit)
	assert.Equal(t, "debug", *cfg.Quiz.LogLevel)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[quiz]\nwords = 3\n"), 0o644))
	_, err := LoadConfig(path)
	require.ErrorContains(t, err, "quiz.words")
}

func TestLoadConfigRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[quiz\n"), 0o644))
	_, err := LoadConfig(path)
	require.ErrorContains(t, err, "failed to decode config")
}

func TestPathsFollowXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "muniquiz", "config.toml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join(dir, "muniquiz", "facts", "pa.tsv"), ResolveFactsPath("pa"))
	assert.Equal(t, "pa.db", ResolveFactsPath("pa.db"))
	assert.Equal(t, "./pa", ResolveFactsPath("./pa"))
	assert.Equal(t, "", ResolveFactsPath(""))
}
