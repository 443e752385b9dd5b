package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/number-crush/internal/core"
	"github.com/vovakirdan/number-crush/internal/storage"
)

func updateMenu(t *testing.T, m MenuModel, msgs ...tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(MenuModel)
	}
	return m, cmd
}

func TestMenuContinueNeedsSave(t *testing.T) {
	m := NewMenuModel(MenuOptions{}, core.DefaultConfig())

	m, cmd := updateMenu(t, m, runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Choice() != MenuNone || cmd != nil {
		t.Errorf("Choice() = %v, want none without a save", m.Choice())
	}
	if !strings.Contains(m.View(), "No saved game to continue.") {
		t.Error("View() does not explain why Continue is disabled")
	}
}

func TestMenuStartsOnContinueWithSave(t *testing.T) {
	m := NewMenuModel(MenuOptions{HasSave: true}, core.DefaultConfig())

	m, cmd := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Choice() != MenuContinue || cmd == nil {
		t.Errorf("Choice() = %v, want Continue", m.Choice())
	}
}

func TestMenuChoices(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
		want MenuChoice
	}{
		{"new game", []tea.Msg{tea.KeyMsg{Type: tea.KeyEnter}}, MenuNewGame},
		{"scores", []tea.Msg{runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter}}, MenuScores},
		{"quit item", []tea.Msg{runes("j"), runes("j"), runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter}}, MenuQuit},
		{"q", []tea.Msg{runes("q")}, MenuQuit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := updateMenu(t, NewMenuModel(MenuOptions{}, core.DefaultConfig()), tt.keys...)
			if m.Choice() != tt.want {
				t.Errorf("Choice() = %v, want %v", m.Choice(), tt.want)
			}
		})
	}
}

func TestMenuNoticeAndResize(t *testing.T) {
	m := NewMenuModel(MenuOptions{Notice: "The saved game was corrupted."}, core.DefaultConfig())
	if !strings.Contains(m.View(), "The saved game was corrupted.") {
		t.Error("View() does not show the notice")
	}

	m, _ = updateMenu(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() size = %dx%d, want 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestDifficultyPicker(t *testing.T) {
	m := NewDifficultyModel("hard", map[string]int{"hard": 42}, 80, 24)

	view := m.View()
	for _, want := range []string{"easy", "expert", "6x6, 8 turns, 5 candies", "(best 42)"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(DifficultyModel)
	if m.Selected() == nil || m.Selected().Name != "hard" || cmd == nil {
		t.Fatalf("Selected() = %+v, want hard", m.Selected())
	}
}

func TestDifficultyPickerNavigation(t *testing.T) {
	m := NewDifficultyModel("", nil, 80, 24)

	for _, msg := range []tea.Msg{runes("j"), runes("j"), runes("j"), runes("j"), runes("k")} {
		next, _ := m.Update(msg)
		m = next.(DifficultyModel)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(DifficultyModel)
	if m.Selected() == nil || m.Selected().Name != "hard" {
		t.Errorf("Selected() = %+v, want hard", m.Selected())
	}
}

func TestDifficultyPickerBack(t *testing.T) {
	next, cmd := NewDifficultyModel("easy", nil, 80, 24).Update(tea.KeyMsg{Type: tea.KeyEsc})
	m := next.(DifficultyModel)
	if !m.WantsBack() || m.Selected() != nil || cmd == nil {
		t.Error("esc did not leave the picker without a selection")
	}
}

func TestScoreboardTabs(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	for _, e := range []storage.ScoreEntry{
		{Difficulty: "medium", Score: 30, Turns: 9, Size: 8},
		{Difficulty: "medium", Score: 50, Turns: 9, Size: 8},
		{Difficulty: "hard", Score: 12, Turns: 8, Size: 6},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() error: %v", err)
		}
	}

	m := NewScoreboardModel(store, "medium", 100, 30)
	if m.Difficulty() != "medium" {
		t.Fatalf("Difficulty() = %q, want medium", m.Difficulty())
	}
	if scores := m.Scores(); len(scores) != 2 || scores[0].Score != 50 {
		t.Errorf("Scores() = %+v, want 50 then 30", scores)
	}
	if view := m.View(); !strings.Contains(view, "Games: 2") || !strings.Contains(view, "Best: 50") {
		t.Errorf("View() missing stats:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Difficulty() != "hard" || len(m.Scores()) != 1 {
		t.Errorf("after tab: %q with %d scores, want hard with 1", m.Difficulty(), len(m.Scores()))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.Difficulty() != "custom" {
		t.Errorf("Difficulty() = %q, want wrap to custom", m.Difficulty())
	}
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("empty tab does not say so")
	}

	next, cmd := m.Update(runes("b"))
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || cmd == nil {
		t.Error("b did not go back")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "", 60, 20)
	if m.Difficulty() != "easy" {
		t.Errorf("Difficulty() = %q, want easy", m.Difficulty())
	}
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("View() without a store does not show the empty message")
	}
}
