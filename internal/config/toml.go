// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Trace      TraceConfig      `toml:"trace"`
	Scoreboard ScoreboardConfig `toml:"scoreboard"`
}

// TraceConfig maps tracing-related settings.
type TraceConfig struct {
	Lang       *string  `toml:"lang"`
	Difficulty *string  `toml:"difficulty"`
	Order      *string  `toml:"order"`
	Canvas     *float64 `toml:"canvas"`
	Sound      *bool    `toml:"sound"`
	Player     *string  `toml:"player"`
	SoundsDir  *string  `toml:"sounds-dir"`
	PacksDir   *string  `toml:"packs-dir"`
	WeakWindow *int     `toml:"weak-window"`
}

// ScoreboardConfig maps the optional scoreboard endpoint.
type ScoreboardConfig struct {
	URL   *string `toml:"url"`
	Child *string `toml:"child"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
