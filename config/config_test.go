package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadParsesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vaultmintd.toml")
	contents := `ListenAddress = "0.0.0.0:9090"
DataDir = "./data"
LogLevel = "debug"
Environment = "staging"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:9090", cfg.ListenAddress)
	require.Equal(t, "./data", cfg.DataDir)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "staging", cfg.Environment)
}

func TestLoadFillsDefaultsForBlankFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vaultmintd.toml")
	require.NoError(t, os.WriteFile(path, []byte(`DataDir = "./custom"`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":8090", cfg.ListenAddress)
	require.Equal(t, "./custom", cfg.DataDir)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadCreatesDefaultWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vaultmintd.toml")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":8090", cfg.ListenAddress)
	require.FileExists(t, path)

	reloaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, reloaded)
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vaultmintd.toml")
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("ListenAddress = %s", "[[[")), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
