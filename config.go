package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"gridmapper/internal/editor"
	"gridmapper/internal/gridmap"
)

const envPrefix = "GRIDMAPPER_"

type Config struct {
	SaveDirectory string
	Confirmations bool
	Width         int
	Height        int
	CellSize      int
	RoughEdges    bool
	HideGrid      bool
	DebugLog      string
}

func defaultConfig() *Config {
	return &Config{
		Confirmations: true,
		Width:         defaultMapWidth,
		Height:        defaultMapHeight,
		CellSize:      gridmap.CellSizeDefault,
	}
}

// loadConfig reads ~/.gridmapperrc, then lets GRIDMAPPER_* environment
// variables override it. A missing or unreadable file leaves the defaults.
func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return loadConfigFrom("", "", os.LookupEnv)
	}
	return loadConfigFrom(filepath.Join(homeDir, ".gridmapperrc"), homeDir, os.LookupEnv)
}

func loadConfigFrom(path, homeDir string, lookupEnv func(string) (string, bool)) *Config {
	config := defaultConfig()

	if path != "" {
		if values, err := godotenv.Read(path); err == nil {
			for key, value := range values {
				config.set(key, value, homeDir)
			}
		}
	}

	for _, key := range []string{
		"save_directory", "confirmations", "width", "height",
		"cell_size", "rough_edges", "hide_grid", "debug_log",
	} {
		if value, ok := lookupEnv(envPrefix + strings.ToUpper(key)); ok {
			config.set(key, value, homeDir)
		}
	}
	return config
}

func (c *Config) set(key, value, homeDir string) {
	value = strings.TrimSpace(value)
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "savedirectory", "save_directory", "savedir":
		c.SaveDirectory = expandPath(value, homeDir)
	case "confirmations", "confirm":
		c.Confirmations = parseBool(value, c.Confirmations)
	case "width":
		c.Width = parseInt(value, c.Width)
	case "height":
		c.Height = parseInt(value, c.Height)
	case "cellsize", "cell_size":
		c.CellSize = parseInt(value, c.CellSize)
	case "roughedges", "rough_edges":
		c.RoughEdges = parseBool(value, c.RoughEdges)
	case "hidegrid", "hide_grid":
		c.HideGrid = parseBool(value, c.HideGrid)
	case "debuglog", "debug_log":
		c.DebugLog = expandPath(value, homeDir)
	}
}

func expandPath(value, homeDir string) string {
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func parseBool(value string, fallback bool) bool {
	b, err := strconv.ParseBool(strings.ToLower(value))
	if err != nil {
		return fallback
	}
	return b
}

func parseInt(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

func (c *Config) editorOptions() editor.Options {
	return editor.Options{
		CellSize:   c.CellSize,
		RoughEdges: c.RoughEdges,
		HideGrid:   c.HideGrid,
	}
}
