package config

import (
	_ "embed"
)

//go:embed defaults/crush.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Keys: KeyBindings{
			Up:    "z",
			Down:  "s",
			Left:  "a",
			Right: "e",
		},
		Input: InputConfig{
			Mode:     InputCursor,
			RowFirst: true,
		},
		Game: GameConfig{
			Difficulty: "easy",
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
