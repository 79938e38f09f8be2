package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridmapper/internal/gridmap"
)

func envMap(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func writeRC(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".gridmapperrc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConfigDefaults(t *testing.T) {
	config := loadConfigFrom(filepath.Join(t.TempDir(), "missing"), "/home/me", envMap(nil))

	assert.Equal(t, defaultConfig(), config)
	assert.True(t, config.Confirmations)
	assert.Equal(t, gridmap.CellSizeDefault, config.CellSize)
}

func TestConfigFile(t *testing.T) {
	path := writeRC(t, `# map editor settings
save_directory=~/maps
confirmations=false
width=40
cell_size=24
rough_edges=true
`)
	config := loadConfigFrom(path, "/home/me", envMap(nil))

	assert.Equal(t, filepath.Join("/home/me", "maps"), config.SaveDirectory)
	assert.False(t, config.Confirmations)
	assert.Equal(t, 40, config.Width)
	assert.Equal(t, defaultMapHeight, config.Height)
	assert.Equal(t, 24, config.CellSize)
	assert.True(t, config.RoughEdges)
	assert.False(t, config.HideGrid)
}

func TestConfigEnvironmentOverridesFile(t *testing.T) {
	path := writeRC(t, "width=40\nhide_grid=false\n")
	config := loadConfigFrom(path, "/home/me", envMap(map[string]string{
		"GRIDMAPPER_WIDTH":     "50",
		"GRIDMAPPER_HIDE_GRID": "1",
		"GRIDMAPPER_DEBUG_LOG": "/tmp/gridmapper.log",
	}))

	assert.Equal(t, 50, config.Width)
	assert.True(t, config.HideGrid)
	assert.Equal(t, "/tmp/gridmapper.log", config.DebugLog)
}

func TestConfigIgnoresBadValues(t *testing.T) {
	path := writeRC(t, "width=-3\nheight=lots\nconfirmations=maybe\n")
	config := loadConfigFrom(path, "/home/me", envMap(nil))

	assert.Equal(t, defaultMapWidth, config.Width)
	assert.Equal(t, defaultMapHeight, config.Height)
	assert.True(t, config.Confirmations)
}

func TestGetSavePath(t *testing.T) {
	config := defaultConfig()
	assert.Equal(t, "a.gmap", config.GetSavePath("a.gmap"))

	config.SaveDirectory = filepath.Join(t.TempDir(), "maps")
	assert.Equal(t, filepath.Join(config.SaveDirectory, "a.gmap"), config.GetSavePath("a.gmap"))
	info, err := os.Stat(config.SaveDirectory)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
