package config

import (
	"os"
	"path/filepath"
)

func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "printscout")
	}
	return filepath.Join(home, ".config", "printscout")
}

// ConfigFilePath prefers a printscout.toml next to the executable (portable
// installs), falling back to the per-user config directory.
func ConfigFilePath() string {
	exe, err := os.Executable()
	if err == nil {
		adjacent := filepath.Join(filepath.Dir(exe), "printscout.toml")
		if _, err := os.Stat(adjacent); err == nil {
			return adjacent
		}
	}
	return filepath.Join(ConfigDir(), "printscout.toml")
}

func LogFilePath() string {
	return filepath.Join(ConfigDir(), "printscout.log")
}
