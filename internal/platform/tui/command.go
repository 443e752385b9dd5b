package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/number-crush/internal/config"
	"github.com/vovakirdan/number-crush/internal/crush"
)

// ErrBadCommand is wrapped by every line-mode parse failure.
var ErrBadCommand = errors.New("bad command")

// ParseCommand reads a line-mode move. The line holds two 1-based
// coordinates and a direction key, "row col dir" when rowFirst is set and
// "col row dir" otherwise.
func ParseCommand(line string, rowFirst bool, keys config.KeyBindings) (crush.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return crush.Move{}, fmt.Errorf("%w: want %s, got %q", ErrBadCommand, CommandUsage(rowFirst, keys), line)
	}

	a, err := parseCoord(fields[0])
	if err != nil {
		return crush.Move{}, err
	}
	b, err := parseCoord(fields[1])
	if err != nil {
		return crush.Move{}, err
	}

	dir, ok := keys.Direction(fields[2])
	if !ok {
		return crush.Move{}, fmt.Errorf("%w: %q is not one of %s %s %s %s",
			ErrBadCommand, fields[2], keys.Up, keys.Down, keys.Left, keys.Right)
	}

	row, col := a, b
	if !rowFirst {
		row, col = b, a
	}
	return crush.Move{From: crush.P(row-1, col-1), Dir: dir}, nil
}

func parseCoord(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q is not a coordinate", ErrBadCommand, s)
	}
	return n, nil
}

// CommandUsage describes the expected line format.
func CommandUsage(rowFirst bool, keys config.KeyBindings) string {
	dirs := strings.Join([]string{keys.Up, keys.Down, keys.Left, keys.Right}, "|")
	if rowFirst {
		return fmt.Sprintf("<row> <col> <%s>", dirs)
	}
	return fmt.Sprintf("<col> <row> <%s>", dirs)
}
