package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/number-crush/internal/core"
	"github.com/vovakirdan/number-crush/internal/crush"
)

// DifficultyModel lets users choose a board preset.
type DifficultyModel struct {
	presets  []crush.Difficulty
	best     map[string]int
	cursor   int
	width    int
	height   int
	selected *crush.Difficulty
	quitting bool
	back     bool
}

// NewDifficultyModel creates a picker with the cursor on initial.
// best maps preset names to their high score and may be nil.
func NewDifficultyModel(initial string, best map[string]int, width, height int) DifficultyModel {
	m := DifficultyModel{
		presets: crush.Difficulties,
		best:    best,
		width:   width,
		height:  height,
	}
	for i, d := range m.presets {
		if d.Name == initial {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		d := m.presets[m.cursor]
		m.selected = &d
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("NEW GAME"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, d := range m.presets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-7s %s", cursor, d.Name, d.Describe())
		if best, ok := m.best[d.Name]; ok && best > 0 {
			line += fmt.Sprintf("  (best %d)", best)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m DifficultyModel) Selected() *crush.Difficulty {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// PickResult is the outcome of the difficulty picker.
type PickResult struct {
	Difficulty *crush.Difficulty // nil unless a preset was chosen
	Quit       bool
}

// RunDifficultyPicker runs the picker and returns the chosen preset.
func RunDifficultyPicker(initial string, best map[string]int, cfg core.RuntimeConfig) (PickResult, error) {
	model := NewDifficultyModel(initial, best, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return PickResult{}, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok {
		return PickResult{Quit: true}, nil
	}

	return PickResult{Difficulty: m.Selected(), Quit: m.IsQuitting()}, nil
}
