package crush

// Axis is the orientation of a run.
type Axis int

const (
	AxisRow Axis = iota
	AxisColumn
)

func (a Axis) String() string {
	if a == AxisColumn {
		return "column"
	}
	return "row"
}

// MinRunLength is the shortest sequence that is removed.
const MinRunLength = 3

// Run is a sequence of at least MinRunLength equal candies along one axis.
type Run struct {
	Start  Position
	Length int
	Axis   Axis
}

// Points returns the triangular score of the run: 1+2+...+Length.
func (r Run) Points() uint {
	n := uint(r.Length)
	return n * (n + 1) / 2
}

// FindRowRun scans rows top to bottom, each left to right, and returns the
// first run found. Empty cells never extend a run.
func (g Grid) FindRowRun() (Run, bool) {
	for row := range g {
		if start, n, ok := scanLine(len(g), func(i int) uint { return g[row][i] }); ok {
			return Run{Start: P(row, start), Length: n, Axis: AxisRow}, true
		}
	}
	return Run{}, false
}

// FindColumnRun scans columns left to right, each top to bottom, and returns
// the first run found.
func (g Grid) FindColumnRun() (Run, bool) {
	for col := range g {
		if start, n, ok := scanLine(len(g), func(i int) uint { return g[i][col] }); ok {
			return Run{Start: P(start, col), Length: n, Axis: AxisColumn}, true
		}
	}
	return Run{}, false
}

// HasRun reports whether any row or column holds a run.
func (g Grid) HasRun() bool {
	if _, ok := g.FindRowRun(); ok {
		return true
	}
	_, ok := g.FindColumnRun()
	return ok
}

// scanLine walks one line and returns the start and length of its first run.
func scanLine(n int, at func(int) uint) (start, length int, ok bool) {
	if n == 0 {
		return 0, 0, false
	}
	prev := at(0)
	length = 1
	for i := 1; i < n; i++ {
		v := at(i)
		if v == prev && v != Empty {
			length++
			continue
		}
		if length >= MinRunLength {
			return start, length, true
		}
		start, length, prev = i, 1, v
	}
	if length >= MinRunLength {
		return start, length, true
	}
	return 0, 0, false
}

// RemoveRowRun empties the run's cells and drops every cell above it in the
// spanned columns by one row. The top cell of each spanned column is emptied.
func (g Grid) RemoveRowRun(run Run) {
	row := run.Start.Row
	for col := run.Start.Col; col < run.Start.Col+run.Length; col++ {
		g[row][col] = Empty
		for r := row; r > 0; r-- {
			g[r][col] = g[r-1][col]
		}
		g[0][col] = Empty
	}
}

// RemoveColumnRun empties the run's cells and drops the cells above it by the
// run length. The top Length cells of the column end up empty.
func (g Grid) RemoveColumnRun(run Run) {
	col := run.Start.Col
	top := run.Start.Row
	n := run.Length

	for r := top; r < top+n; r++ {
		g[r][col] = Empty
	}
	for r := top - 1; r >= 0; r-- {
		g[r+n][col] = g[r][col]
	}
	for r := 0; r < n && r < len(g); r++ {
		g[r][col] = Empty
	}
}
