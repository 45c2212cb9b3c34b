package config

import (
	_ "embed"
)

//go:embed defaults/treasuremap.yaml
var defaultYAML []byte

//go:embed defaults/schema.json
var schemaJSON []byte

// Default returns the built-in configuration. It mirrors
// defaults/treasuremap.yaml and is used if the embedded file can't be read.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
		Input: InputConfig{
			Extension: ".txt",
		},
		Output: OutputConfig{
			Suffix: "_result.txt",
		},
		Playback: PlaybackConfig{
			TurnsPerSecond: 4,
		},
		Storage: StorageConfig{
			Path: "~/.treasuremap/runs.db",
		},
		Journal: JournalConfig{
			Dir: "~/.treasuremap/journals",
		},
		Scenarios: ScenariosConfig{
			Dir: "./scenarios",
		},
		SSH: SSHConfig{
			Address:            ":23235",
			HostKey:            "~/.treasuremap/host_key",
			IdleTimeoutMinutes: 30,
		},
		Source: "embedded",
	}
}
