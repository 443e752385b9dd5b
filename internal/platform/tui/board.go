package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/number-crush/internal/core"
	"github.com/vovakirdan/number-crush/internal/crush"
)

const (
	cellWidth     = 4  // Width of each cell (including left border)
	cellHeight    = 2  // Height of each cell (including top border)
	labelWidth    = 3  // Row number column
	hudHeight     = 4  // Title, score, turns, column numbers
	minBoardWidth = 30 // Room for the HUD lines on small grids
)

// BoardView is what DrawBoard needs to paint one frame.
type BoardView struct {
	State      crush.GameState
	Difficulty string
	Cursor     crush.Position
	ShowCursor bool
}

// BoardDimensions returns the screen size needed for a size×size board.
func BoardDimensions(size int) (w, h int) {
	w = max(labelWidth+size*cellWidth+1, minBoardWidth)
	h = hudHeight + size*cellHeight + 1
	return w, h
}

// DrawBoard paints the HUD and the grid onto dst, which should be sized
// with BoardDimensions.
func DrawBoard(dst *core.Screen, v BoardView) {
	dst.Clear()

	n := v.State.Grid.Size()
	w, _ := BoardDimensions(n)
	gridW := labelWidth + n*cellWidth + 1
	originX := (w - gridW) / 2
	boardX := originX + labelWidth
	boardY := hudHeight

	drawHUD(dst, v)
	drawLabels(dst, n, originX, boardX, boardY)
	drawGridLines(dst, n, boardX, boardY)

	for r, row := range v.State.Grid {
		for c, val := range row {
			x := boardX + c*cellWidth + 1
			y := boardY + r*cellHeight + 1
			reverse := v.ShowCursor && v.Cursor == crush.P(r, c)
			dst.DrawStyledText(x, y, cellText(val), core.CandyColor(val), reverse)
		}
	}

	if v.State.Over() {
		lines := []string{"GAME OVER", fmt.Sprintf("Final score: %d", v.State.Score)}
		if v.State.Score > v.State.BestScore {
			lines = append(lines, "New best!")
		}
		lines = append(lines, "Enter: back to menu")
		gridH := n*cellHeight + 1
		drawOverlay(dst, boardX+(gridW-labelWidth)/2, boardY+gridH/2, lines...)
	}
}

func drawHUD(dst *core.Screen, v BoardView) {
	title := "NUMBER CRUSH"
	if v.Difficulty != "" {
		title += " · " + v.Difficulty
	}
	st := v.State
	dst.DrawTextCentered(0, title)
	dst.DrawTextCentered(1, fmt.Sprintf("Score %d   Best %d", st.Score, st.BestScore))
	dst.DrawTextCentered(2, fmt.Sprintf("Turn %d/%d   %d left", min(st.Turn, st.MaxTurns), st.MaxTurns, st.TurnsLeft()))
}

// drawLabels writes 1-based column numbers above and row numbers beside the grid.
func drawLabels(dst *core.Screen, n, originX, boardX, boardY int) {
	for c := 0; c < n; c++ {
		label := strconv.Itoa(c + 1)
		x := boardX + c*cellWidth + 1 + (cellWidth-1-len(label))/2
		dst.DrawStyledText(x, boardY-1, label, core.ColorGray, false)
	}
	for r := 0; r < n; r++ {
		label := fmt.Sprintf("%2d", r+1)
		dst.DrawStyledText(originX, boardY+r*cellHeight+1, label, core.ColorGray, false)
	}
}

func drawGridLines(dst *core.Screen, n, boardX, boardY int) {
	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < n {
				dst.DrawHLine(px+1, py, cellWidth-1, '─')
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}
}

// cellText centers a candy value in the cell interior.
func cellText(v uint) string {
	inner := cellWidth - 1
	s := "·"
	if v != crush.Empty {
		s = strconv.FormatUint(uint64(v), 10)
	}
	n := len([]rune(s))
	left := (inner - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", max(inner-left-n, 0))
}

// drawOverlay draws a boxed message centered on (centerX, centerY).
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	box := core.NewRect(0, 0, maxLen+4, len(lines)+2)
	box.X = centerX - box.W/2
	box.Y = centerY - box.H/2

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}
