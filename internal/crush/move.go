package crush

// Direction is one of the four swap directions.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the valid directions in display order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four swap directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Delta returns the row and column offset of one step.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns a lowercase name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Move swaps the cell at From with its neighbour in Dir.
type Move struct {
	From Position
	Dir  Direction
}

// To returns the destination cell of the move.
func (m Move) To() Position {
	return m.From.Step(m.Dir)
}

// IsValidPosition reports whether p is inside the grid and holds a candy.
func IsValidPosition(g Grid, p Position) bool {
	return g.InBounds(p) && g[p.Row][p.Col] != Empty
}

// IsValidMove reports whether both cells of the move are valid positions.
func IsValidMove(g Grid, m Move) bool {
	if !m.Dir.Valid() {
		return false
	}
	return IsValidPosition(g, m.From) && IsValidPosition(g, m.To())
}

// MakeAMove swaps the two cells of m in place.
// The move must have been checked with IsValidMove.
func MakeAMove(g Grid, m Move) {
	to := m.To()
	g[m.From.Row][m.From.Col], g[to.Row][to.Col] = g[to.Row][to.Col], g[m.From.Row][m.From.Col]
}

// ApplyValidatedMove swaps the cells of a validated move and returns the grid.
func ApplyValidatedMove(g Grid, m Move) Grid {
	MakeAMove(g, m)
	return g
}
