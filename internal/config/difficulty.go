package config

import "github.com/vovakirdan/number-crush/internal/crush"

// Difficulty returns the preset named by name, or the configured default
// when name is empty.
func (c Config) Difficulty(name string) (crush.Difficulty, error) {
	if name == "" {
		name = c.Game.Difficulty
	}
	if name == "" {
		return crush.DefaultDifficulty(), nil
	}
	return crush.DifficultyByName(name)
}
