// Package config provides YAML-based settings loading for the game:
// movement keys, input mode, default difficulty, file paths and logging.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/number-crush/internal/crush"
)

// Config is the full set of user settings.
type Config struct {
	Keys  KeyBindings `yaml:"keys"`
	Input InputConfig `yaml:"input"`
	Game  GameConfig  `yaml:"game"`
	Paths PathsConfig `yaml:"paths"`
	Log   LogConfig   `yaml:"log"`
}

// KeyBindings maps a single-character symbol to each swap direction.
type KeyBindings struct {
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// InputMode selects how the player enters a move.
type InputMode string

const (
	// InputCursor moves a cursor over the board and swaps with a direction key.
	InputCursor InputMode = "cursor"
	// InputLine reads a whole move as "row col dir" in one line.
	InputLine InputMode = "line"
)

// InputConfig controls move entry.
type InputConfig struct {
	Mode     InputMode `yaml:"mode"`
	RowFirst bool      `yaml:"row_first"` // line mode: "row col dir" vs "col row dir"
}

// GameConfig holds gameplay defaults.
type GameConfig struct {
	Difficulty string `yaml:"difficulty"`
}

// PathsConfig locates the files the game writes. Empty values resolve to
// files under DataDir.
type PathsConfig struct {
	Save     string `yaml:"save"`
	Database string `yaml:"database"`
	Log      string `yaml:"log"`
}

// LogConfig configures the log file and its rotation.
type LogConfig struct {
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// reservedKeys are taken by the board controls and cannot be direction keys.
var reservedKeys = map[string]string{
	"q": "quit",
	"?": "help",
	"h": "cursor left",
	"j": "cursor down",
	"k": "cursor up",
	"l": "cursor right",
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Direction returns the direction bound to symbol.
func (k KeyBindings) Direction(symbol string) (crush.Direction, bool) {
	switch symbol {
	case "":
		return crush.DirNone, false
	case k.Up:
		return crush.DirUp, true
	case k.Down:
		return crush.DirDown, true
	case k.Left:
		return crush.DirLeft, true
	case k.Right:
		return crush.DirRight, true
	}
	return crush.DirNone, false
}

// IsValidDirection reports whether symbol is one of the four bound keys.
func (k KeyBindings) IsValidDirection(symbol string) bool {
	_, ok := k.Direction(symbol)
	return ok
}

// Symbol returns the key bound to d.
func (k KeyBindings) Symbol(d crush.Direction) string {
	switch d {
	case crush.DirUp:
		return k.Up
	case crush.DirDown:
		return k.Down
	case crush.DirLeft:
		return k.Left
	case crush.DirRight:
		return k.Right
	}
	return ""
}

// Validate checks that the four keys are distinct single printable
// characters outside the reserved controls.
func (k KeyBindings) Validate() error {
	seen := make(map[string]crush.Direction, 4)
	for _, d := range crush.Directions {
		sym := k.Symbol(d)
		if utf8.RuneCountInString(sym) != 1 {
			return fmt.Errorf("%w: key for %s must be one character, got %q", ErrInvalid, d, sym)
		}
		r, _ := utf8.DecodeRuneInString(sym)
		if r == ' ' || r < 0x20 || (r >= '0' && r <= '9') {
			return fmt.Errorf("%w: key %q for %s is not allowed", ErrInvalid, sym, d)
		}
		if use, ok := reservedKeys[sym]; ok {
			return fmt.Errorf("%w: key %q for %s is reserved for %s", ErrInvalid, sym, d, use)
		}
		if other, ok := seen[sym]; ok {
			return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, sym, other, d)
		}
		seen[sym] = d
	}
	return nil
}

// Validate checks every section of the config.
func (c Config) Validate() error {
	if err := c.Keys.Validate(); err != nil {
		return err
	}
	switch c.Input.Mode {
	case InputCursor, InputLine:
	default:
		return fmt.Errorf("%w: unknown input mode %q", ErrInvalid, c.Input.Mode)
	}
	if _, err := crush.DifficultyByName(c.Game.Difficulty); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Log.Level)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("%w: log rotation values must not be negative", ErrInvalid)
	}
	return nil
}

// DataDir returns ~/.crush, or .crush in the working directory when the home
// directory is unavailable.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".crush"
	}
	return filepath.Join(home, ".crush")
}

// SavePath returns the effective save file path.
func (c Config) SavePath() string {
	return resolvePath(c.Paths.Save, "save.txt")
}

// DatabasePath returns the effective score database path.
func (c Config) DatabasePath() string {
	return resolvePath(c.Paths.Database, "scores.db")
}

// LogPath returns the effective log file path.
func (c Config) LogPath() string {
	return resolvePath(c.Paths.Log, "crush.log")
}

func resolvePath(p, fallback string) string {
	if p == "" {
		return filepath.Join(DataDir(), fallback)
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p[1:], "/"))
		}
	}
	return p
}
