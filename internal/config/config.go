// Package config provides YAML-based configuration loading for the
// treasure map simulator and the logger built from it.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config is the full application configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Playback  PlaybackConfig  `yaml:"playback"`
	Storage   StorageConfig   `yaml:"storage"`
	Journal   JournalConfig   `yaml:"journal"`
	Scenarios ScenariosConfig `yaml:"scenarios"`
	SSH       SSHConfig       `yaml:"ssh"`

	// Source is the file the config was read from, or "embedded".
	Source string `yaml:"-"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// InputConfig describes accepted scenario files.
type InputConfig struct {
	Extension string `yaml:"extension"`
}

// OutputConfig describes result files.
type OutputConfig struct {
	Suffix string `yaml:"suffix"`
}

// PlaybackConfig controls the animated viewer.
type PlaybackConfig struct {
	TurnsPerSecond int `yaml:"turns_per_second"`
}

// StorageConfig locates the run archive.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// JournalConfig locates turn journals.
type JournalConfig struct {
	Dir string `yaml:"dir"`
}

// ScenariosConfig locates user scenario files.
type ScenariosConfig struct {
	Dir string `yaml:"dir"`
}

// SSHConfig holds settings for the serve command.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// ExpandPath replaces a leading "~/" with the user's home directory.
// Paths that don't start with "~/" are returned unchanged.
func ExpandPath(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
