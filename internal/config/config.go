package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	textutil "github.com/kk-code-lab/mdtable/internal/textutil"
)

// Config holds the user's defaults. Command-line flags override it.
type Config struct {
	// Trim makes the format command fit columns to their content.
	Trim bool `toml:"trim"`
	// ExpandTabs expands tabs before a table is measured.
	ExpandTabs bool `toml:"expand_tabs"`
	TabWidth   int  `toml:"tab_width"`
	Debug      bool `toml:"debug"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Trim:       false,
		ExpandTabs: false,
		TabWidth:   textutil.DefaultTabWidth,
		Debug:      false,
	}
}

// GetConfigPath returns $XDG_CONFIG_HOME/mdtable/config.toml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func GetConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "mdtable", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "mdtable", "config.toml")
	}
	return filepath.Join(home, ".config", "mdtable", "config.toml")
}

// Load reads the config at path, or at GetConfigPath when path is empty.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = GetConfigPath()
	}

	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = textutil.DefaultTabWidth
	}
	return cfg, nil
}

// EffectiveTabWidth is the tab width to expand with, or zero when tabs stay.
func (c *Config) EffectiveTabWidth() int {
	if !c.ExpandTabs {
		return 0
	}
	return c.TabWidth
}
