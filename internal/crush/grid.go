// Package crush implements the Number Crush grid engine: generation, run
// detection, removal with gravity, chained scoring and turn-limited sessions.
//
// The engine is pure. It knows nothing about keyboards, terminals or files;
// the platform layer supplies validated moves and persists state through the
// Saver interface.
package crush

import (
	"errors"
	"strconv"
	"strings"
)

// Empty is the value of a cell with no candy.
const Empty uint = 0

// Grid limits.
const (
	MinGridSize = 3
	MaxGridSize = 32

	// MaxCandyValue is the largest candy a loaded grid may contain.
	MaxCandyValue uint = 10
)

var (
	ErrInvalidSize    = errors.New("crush: grid size out of range")
	ErrInvalidCandies = errors.New("crush: candy count out of range")
)

// Position addresses a cell by 0-indexed row and column.
type Position struct {
	Row int
	Col int
}

// P is shorthand for Position{Row: row, Col: col}.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Step returns the neighbouring position in the given direction.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Grid is a square board stored row-major: g[row][col].
type Grid [][]uint

// NewEmptyGrid allocates a size×size grid of empty cells.
func NewEmptyGrid(size int) Grid {
	g := make(Grid, size)
	for r := range g {
		g[r] = make([]uint, size)
	}
	return g
}

// Size returns the grid dimension.
func (g Grid) Size() int {
	return len(g)
}

// InBounds reports whether p lies inside the grid.
func (g Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < len(g) && p.Col >= 0 && p.Col < len(g)
}

// At returns the cell at p, or Empty when p is out of bounds.
func (g Grid) At(p Position) uint {
	if !g.InBounds(p) {
		return Empty
	}
	return g[p.Row][p.Col]
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for r := range g {
		c[r] = append([]uint(nil), g[r]...)
	}
	return c
}

// Equal reports whether two grids hold the same cells.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(other[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// String renders the grid one row per line, empty cells as '.'.
func (g Grid) String() string {
	var b strings.Builder
	for r, row := range g {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, v := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			if v == Empty {
				b.WriteByte('.')
			} else {
				b.WriteString(strconv.FormatUint(uint64(v), 10))
			}
		}
	}
	return b.String()
}
