// Package save reads and writes the single-line save file.
//
// Every numeric field is a fixed-width binary string masked with the key
// selected by the turn counter. The key index itself is stored in the clear
// as the first field so the rest can be unmasked. Fields are separated by
// Separator, which never appears inside a binary field.
package save

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/number-crush/internal/codec"
	"github.com/vovakirdan/number-crush/internal/crush"
)

// Separator terminates every field of the save line.
const Separator = 'O'

// headerFields is the number of fields before the grid cells.
const headerFields = 6

// Header field positions.
const (
	fieldKey = iota
	fieldScore
	fieldBest
	fieldSize
	fieldTurn
	fieldMaxTurns
)

var fieldNames = [headerFields]string{"key", "score", "best score", "size", "turn", "turn limit"}

var (
	// ErrNoSave is returned by Load when the file does not exist.
	ErrNoSave = errors.New("save: no saved game")

	// ErrCorrupted matches every *CorruptionError.
	ErrCorrupted = errors.New("save: corrupted")
)

// CorruptionError describes why a save line was rejected.
type CorruptionError struct {
	Field  int // 0-based field index, -1 for the whole line
	Reason string
}

func (e *CorruptionError) Error() string {
	if e.Field < 0 {
		return "save: corrupted: " + e.Reason
	}
	return fmt.Sprintf("save: corrupted field %d (%s): %s", e.Field, fieldName(e.Field), e.Reason)
}

// Is lets errors.Is(err, ErrCorrupted) match.
func (e *CorruptionError) Is(target error) bool {
	return target == ErrCorrupted
}

func fieldName(i int) string {
	if i < headerFields {
		return fieldNames[i]
	}
	return "cell"
}

func corrupt(field int, format string, args ...any) error {
	return &CorruptionError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Encode serializes state into a save line. Nothing is returned unless every
// field fits, so an overflow never produces a partial line.
func Encode(state crush.GameState) (string, error) {
	if state.Size != uint(len(state.Grid)) {
		return "", fmt.Errorf("save: size %d does not match grid of %d rows", state.Size, len(state.Grid))
	}

	key := codec.KeyIndex(state.Turn)
	keyBits, err := codec.Encode(uint(key))
	if err != nil {
		return "", fmt.Errorf("save: encode key: %w", err)
	}

	var b strings.Builder
	b.Grow((codec.Width + 1) * (headerFields + len(state.Grid)*len(state.Grid)))
	b.WriteString(keyBits)
	b.WriteRune(Separator)

	header := [...]uint{state.Score, state.BestScore, state.Size, state.Turn, state.MaxTurns}
	for i, v := range header {
		field, err := codec.Crypt(v, key)
		if err != nil {
			return "", fmt.Errorf("save: encode %s: %w", fieldNames[i+1], err)
		}
		b.WriteString(field)
		b.WriteRune(Separator)
	}

	for r, row := range state.Grid {
		if len(row) != len(state.Grid) {
			return "", fmt.Errorf("save: row %d has %d cells, want %d", r, len(row), len(state.Grid))
		}
		for c, v := range row {
			field, err := codec.Crypt(v, key)
			if err != nil {
				return "", fmt.Errorf("save: encode cell (%d, %d): %w", r, c, err)
			}
			b.WriteString(field)
			b.WriteRune(Separator)
		}
	}
	return b.String(), nil
}

// Decode parses a save line back into a game state.
func Decode(line string) (crush.GameState, error) {
	var state crush.GameState

	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return state, corrupt(-1, "empty save")
	}
	if line[len(line)-1] != Separator {
		return state, corrupt(-1, "line does not end with a separator")
	}

	fields := strings.Split(line[:len(line)-1], string(Separator))
	if len(fields) < headerFields {
		return state, corrupt(-1, "%d fields, want at least %d", len(fields), headerFields)
	}
	for i, f := range fields {
		if len(f) != codec.Width {
			return state, corrupt(i, "width %d, want %d", len(f), codec.Width)
		}
		if !codec.IsBinary(f) {
			return state, corrupt(i, "not binary")
		}
	}

	keyValue, err := codec.Decode(fields[fieldKey])
	if err != nil {
		return state, corrupt(fieldKey, "%v", err)
	}
	if keyValue >= uint(len(codec.KeyTable)) {
		return state, corrupt(fieldKey, "key index %d out of range", keyValue)
	}
	key := int(keyValue)

	var header [headerFields]uint
	for i := fieldScore; i < headerFields; i++ {
		v, err := codec.Decrypt(fields[i], key)
		if err != nil {
			return state, corrupt(i, "%v", err)
		}
		header[i] = v
	}

	state.Score = header[fieldScore]
	state.BestScore = header[fieldBest]
	state.Size = header[fieldSize]
	state.Turn = header[fieldTurn]
	state.MaxTurns = header[fieldMaxTurns]

	if codec.KeyIndex(state.Turn) != key {
		return state, corrupt(fieldKey, "key index %d does not match turn %d", key, state.Turn)
	}
	if state.Size < crush.MinGridSize || state.Size > crush.MaxGridSize {
		return state, corrupt(fieldSize, "grid size %d out of range", state.Size)
	}

	size := int(state.Size)
	if want := headerFields + size*size; len(fields) != want {
		return state, corrupt(-1, "%d fields, want %d for a %dx%d grid", len(fields), want, size, size)
	}

	state.Grid = crush.NewEmptyGrid(size)
	for i, f := range fields[headerFields:] {
		v, err := codec.Decrypt(f, key)
		if err != nil {
			return state, corrupt(headerFields+i, "%v", err)
		}
		if v > crush.MaxCandyValue {
			return state, corrupt(headerFields+i, "candy %d exceeds %d", v, crush.MaxCandyValue)
		}
		state.Grid[i/size][i%size] = v
	}

	return state, nil
}

// Save writes state to path, replacing any previous save.
func Save(path string, state crush.GameState) error {
	line, err := Encode(state)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save: cannot create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(line), 0o600); err != nil {
		return fmt.Errorf("save: cannot write %s: %w", path, err)
	}
	return nil
}

// Load reads the save at path. It returns ErrNoSave when the file is missing
// and an error matching ErrCorrupted when its content is unusable.
func Load(path string) (crush.GameState, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return crush.GameState{}, ErrNoSave
	}
	if err != nil {
		return crush.GameState{}, fmt.Errorf("save: cannot read %s: %w", path, err)
	}

	line, _, _ := strings.Cut(string(data), "\n")
	return Decode(line)
}

// Exists reports whether a save file is present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Remove deletes the save at path. A missing file is not an error.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("save: cannot remove %s: %w", path, err)
	}
	return nil
}

// FileSaver autosaves a session to a fixed path.
type FileSaver struct {
	Path string
}

// Save implements crush.Saver.
func (f FileSaver) Save(state crush.GameState) error {
	return Save(f.Path, state)
}

var _ crush.Saver = FileSaver{}
