package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/scratchbook/internal/catalog"
	"github.com/mesh-intelligence/scratchbook/internal/httpserver"
	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

func TestLoadSettings_Defaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")

	s, err := loadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, types.BackendSQLite, s.Backend)
	assert.Equal(t, catalog.DefaultPageSize, s.PageSize)
	assert.Equal(t, httpserver.DefaultListenAddr, s.ListenAddr)
	assert.Equal(t, 30*time.Second, s.AnalyzerTimeout)
	assert.Empty(t, s.DataDir)

	// The default file is valid YAML holding the same defaults.
	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	var cf configFile
	require.NoError(t, yaml.Unmarshal(data, &cf))
	assert.Equal(t, defaultConfigFile(), cf)
}

func TestLoadSettings_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("page_size: 12\ndata_dir: /srv/cards\nlog_level: debug\n"), 0o644))

	s, err := loadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, 12, s.PageSize)
	assert.Equal(t, "/srv/cards", s.DataDir)
	assert.Equal(t, "debug", s.LogLevel)

	t.Setenv("SCRATCHBOOK_PAGE_SIZE", "48")
	s, err = loadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, 48, s.PageSize)
}

func TestLoadSettings_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SCRATCHBOOK_LISTEN_ADDR=127.0.0.1:9999\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("SCRATCHBOOK_LISTEN_ADDR") })

	s, err := loadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", s.ListenAddr)
}

func TestLoadSettings_InvalidPageSize(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("page_size: 0\n"), 0o644))

	_, err := loadSettings(dir)
	assert.Equal(t, exitUserError, exitCode(err))
}
