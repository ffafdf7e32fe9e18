package config

import (
	"os"
	"path/filepath"
)

// ConfigEnv names the environment variable that overrides the config path.
const ConfigEnv = "TUITRACE_CONFIG"

const appName = "tuitrace"

// XDGConfigHome returns $XDG_CONFIG_HOME, falling back to ~/.config.
func XDGConfigHome() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// XDGDataHome returns $XDG_DATA_HOME, falling back to ~/.local/share.
func XDGDataHome() string {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// xdgDir resolves an XDG base directory. Without a home directory the
// fallback is the working directory.
func xdgDir(env string, fallback ...string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// DefaultDBPath returns the default path for the SQLite database.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), appName, appName+".db")
}

// DefaultLogPath returns the log file used while a full-screen UI runs.
func DefaultLogPath() string {
	return filepath.Join(XDGDataHome(), appName, appName+".log")
}

// DefaultPacksDir returns the default stroke pack directory.
func DefaultPacksDir() string {
	return filepath.Join(XDGConfigHome(), appName, "packs")
}

// DefaultSoundsDir returns the default directory for sound clips.
func DefaultSoundsDir() string {
	return filepath.Join(XDGDataHome(), appName, "sounds")
}

// DefaultConfigPath returns the TOML config path, honoring TUITRACE_CONFIG.
func DefaultConfigPath() string {
	if v := os.Getenv(ConfigEnv); v != "" {
		return v
	}
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}
