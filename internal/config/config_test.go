package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/litezip/pkg/litezip"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, litezip.ConfigFileName), []byte(content), 0644))
	return dir
}

func TestLoad_IgnoreList(t *testing.T) {
	dir := writeConfig(t, `ignore:
  - "*.bak"
  - notes.txt
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, []string{"*.bak", "notes.txt"}, cfg.Ignore)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultIgnore, cfg.Ignore)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "{{invalid")

	cfg, err := Load(dir)
	assert.ErrorIs(t, err, litezip.ErrInvalidConfig)
	assert.Nil(t, cfg)
}

func TestLoad_BadPattern(t *testing.T) {
	dir := writeConfig(t, "ignore: [\"[\"]\n")

	cfg, err := Load(dir)
	assert.ErrorIs(t, err, litezip.ErrInvalidConfig)
	assert.Contains(t, err.Error(), `"["`)
	assert.Nil(t, cfg)
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := writeConfig(t, "")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultIgnore, cfg.Ignore)
}

func TestParse_ExplicitEmptyIgnore(t *testing.T) {
	cfg, err := Parse([]byte("ignore: []\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Ignore)
}

func TestDefault_IsACopy(t *testing.T) {
	cfg := Default()
	cfg.Ignore[0] = "changed"
	assert.Equal(t, ".DS_Store", DefaultIgnore[0])
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("LITEZIP_VERBOSE=true\n"), 0644))

	t.Setenv(EnvVerbose, "")
	os.Unsetenv(EnvVerbose)
	t.Setenv(EnvNoColor, "1")

	env, err := LoadEnv(envPath)
	require.NoError(t, err)
	assert.True(t, env.Verbose)
	assert.True(t, env.NoColor)
}

func TestLoadEnv_ProcessWins(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("LITEZIP_VERBOSE=true\n"), 0644))
	t.Setenv(EnvVerbose, "false")

	env, err := LoadEnv(envPath)
	require.NoError(t, err)
	assert.False(t, env.Verbose)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	t.Setenv(EnvVerbose, "1")

	env, err := LoadEnv(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.True(t, env.Verbose)
}

func TestLoadEnv_BadBoolean(t *testing.T) {
	t.Setenv(EnvVerbose, "sometimes")

	_, err := LoadEnv(filepath.Join(t.TempDir(), ".env"))
	assert.ErrorIs(t, err, litezip.ErrInvalidConfig)
}
