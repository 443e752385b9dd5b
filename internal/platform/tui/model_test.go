package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/number-crush/internal/config"
	"github.com/vovakirdan/number-crush/internal/crush"
	"github.com/vovakirdan/number-crush/internal/save"
	"github.com/vovakirdan/number-crush/internal/storage"
)

func newTestGame(t *testing.T, maxTurns uint, mutate func(*GameOptions)) GameModel {
	t.Helper()
	cfg := config.Default()
	opts := GameOptions{
		Session:    crush.NewSession(testState(maxTurns), nil, nil),
		Difficulty: "easy",
		Keys:       cfg.Keys,
		Input:      cfg.Input,
	}
	if mutate != nil {
		mutate(&opts)
	}
	return NewGameModel(opts)
}

// send feeds messages through Update and returns the final model and the
// last command.
func send(t *testing.T, m GameModel, msgs ...tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		gm, ok := next.(GameModel)
		if !ok {
			t.Fatalf("Update returned %T, want GameModel", next)
		}
		m = gm
	}
	return m, cmd
}

func TestGameCursorMovement(t *testing.T) {
	m := newTestGame(t, 3, nil)

	m, _ = send(t, m, runes("j"), runes("j"), runes("l"))
	if got := m.Cursor(); got != crush.P(2, 1) {
		t.Errorf("Cursor() = %+v, want (2,1)", got)
	}

	m, _ = send(t, m, runes("k"), runes("k"), runes("k"), runes("h"), runes("h"))
	if got := m.Cursor(); got != crush.P(0, 0) {
		t.Errorf("Cursor() = %+v, want clamped to (0,0)", got)
	}

	for range 10 {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyRight})
	}
	if got := m.Cursor(); got != crush.P(4, 4) {
		t.Errorf("Cursor() = %+v, want clamped to (4,4)", got)
	}
}

func TestGameCursorSwap(t *testing.T) {
	m := newTestGame(t, 3, nil)

	// Swapping (2,1) up lines up 3 3 3 in row 2.
	m, _ = send(t, m, runes("j"), runes("j"), runes("l"), runes("z"))

	st := m.State()
	if st.Score != 6 || st.Turn != 1 {
		t.Errorf("score %d turn %d, want 6 and 1", st.Score, st.Turn)
	}
	if got, want := m.Status(), "Match! +6"; got != want {
		t.Errorf("Status() = %q, want %q", got, want)
	}
}

func TestGameInvalidMove(t *testing.T) {
	m := newTestGame(t, 3, nil)

	m, _ = send(t, m, runes("z"))

	if m.State().Turn != 0 {
		t.Errorf("Turn = %d, want 0 after an invalid move", m.State().Turn)
	}
	if got := m.Status(); !strings.Contains(got, "Cannot swap up from row 1, column 1") {
		t.Errorf("Status() = %q", got)
	}
}

func TestGameLineMode(t *testing.T) {
	m := newTestGame(t, 3, nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Mode() != config.InputLine {
		t.Fatalf("Mode() = %v, want line", m.Mode())
	}

	// Letters are text in line mode: q must not quit.
	m, _ = send(t, m, runes("3 2 z"))
	if m.IsQuitting() {
		t.Fatal("typing quit the game")
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if st := m.State(); st.Score != 6 || st.Turn != 1 {
		t.Errorf("score %d turn %d, want 6 and 1", st.Score, st.Turn)
	}
	if got := m.Cursor(); got != crush.P(2, 1) {
		t.Errorf("Cursor() = %+v, want (2,1)", got)
	}

	m, _ = send(t, m, runes("9 9"), tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.Status(), "bad command") {
		t.Errorf("Status() = %q, want a bad command message", m.Status())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Mode() != config.InputCursor {
		t.Errorf("Mode() = %v, want cursor", m.Mode())
	}
}

func TestGameStartsInConfiguredMode(t *testing.T) {
	m := newTestGame(t, 3, func(o *GameOptions) {
		o.Input = config.InputConfig{Mode: config.InputLine, RowFirst: false}
	})
	if m.Mode() != config.InputLine {
		t.Fatalf("Mode() = %v, want line", m.Mode())
	}

	// Column first: "2 3 z" is row 3, column 2.
	m, _ = send(t, m, runes("2 3 z"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.State().Score != 6 {
		t.Errorf("Score = %d, want 6", m.State().Score)
	}
}

func TestGameQuitAndBack(t *testing.T) {
	m := newTestGame(t, 3, nil)
	q, cmd := send(t, m, runes("q"))
	if !q.IsQuitting() || cmd == nil {
		t.Error("q did not quit")
	}

	b, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !b.WantsBack() || b.IsQuitting() || cmd == nil {
		t.Error("esc did not return to the menu")
	}
	if b.View() != "" {
		t.Error("View() not empty after leaving")
	}
}

func TestGameFinishRecordsScoreAndRemovesSave(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.Open(filepath.Join(dir, "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	savePath := filepath.Join(dir, "save.txt")
	if err := save.Save(savePath, testState(1)); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	m := newTestGame(t, 1, func(o *GameOptions) {
		o.Store = store
		o.SavePath = savePath
	})
	m, _ = send(t, m, runes("j"), runes("j"), runes("l"), runes("z"))

	if !m.State().Over() {
		t.Fatal("game not over after its last turn")
	}
	if save.Exists(savePath) {
		t.Error("save file still present after the game ended")
	}

	best, err := store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore() error: %v", err)
	}
	if best != 6 {
		t.Errorf("HighScore(easy) = %d, want 6", best)
	}

	// More keys after the end must not record the game twice.
	m, _ = send(t, m, runes("z"), runes("j"))
	scores, err := store.TopScores("easy", 10)
	if err != nil {
		t.Fatalf("TopScores() error: %v", err)
	}
	if len(scores) != 1 {
		t.Errorf("recorded %d games, want 1", len(scores))
	}

	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("View() does not show the end screen")
	}

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.WantsBack() || cmd == nil {
		t.Error("enter on the end screen did not return to the menu")
	}
}

func TestGameResumedFinishedRemovesSave(t *testing.T) {
	dir := t.TempDir()
	savePath := filepath.Join(dir, "save.txt")
	st := testState(2)
	st.Turn = 2
	if err := save.Save(savePath, st); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	_ = NewGameModel(GameOptions{
		Session:  crush.NewSession(st, nil, nil),
		Keys:     config.Default().Keys,
		SavePath: savePath,
	})
	if save.Exists(savePath) {
		t.Error("save of a finished game kept")
	}
}

func TestGameScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestGame(t, 3, func(o *GameOptions) { o.ShotDir = dir })

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("found %d screenshots, want 1", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(data), "NUMBER CRUSH") {
		t.Errorf("screenshot does not contain the board:\n%s", data)
	}
	if !strings.HasPrefix(m.Status(), "Screenshot saved to ") {
		t.Errorf("Status() = %q", m.Status())
	}
}

func TestGameViewShowsNotice(t *testing.T) {
	m := newTestGame(t, 3, func(o *GameOptions) { o.Notice = "The saved game was corrupted." })
	view := m.View()
	for _, want := range []string{"The saved game was corrupted.", "Score 0", "swap up"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestDescribeResolution(t *testing.T) {
	tests := []struct {
		res  crush.Resolution
		want string
	}{
		{crush.Resolution{}, "No match."},
		{crush.Resolution{Combos: 1, Points: 6, Delta: 6}, "Match! +6"},
		{crush.Resolution{Combos: 2, Points: 16, Delta: 32}, "2 combos: 16 × 2 = +32"},
	}
	for _, tt := range tests {
		if got := describeResolution(tt.res); got != tt.want {
			t.Errorf("describeResolution(%+v) = %q, want %q", tt.res, got, tt.want)
		}
	}
}
