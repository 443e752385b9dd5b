package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/number-crush/internal/core"
)

// MenuChoice is what the player picked in the main menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuNewGame
	MenuContinue
	MenuScores
	MenuQuit
)

// String returns the menu label.
func (c MenuChoice) String() string {
	switch c {
	case MenuNewGame:
		return "New game"
	case MenuContinue:
		return "Continue"
	case MenuScores:
		return "High scores"
	case MenuQuit:
		return "Quit"
	default:
		return ""
	}
}

var menuItems = []MenuChoice{MenuNewGame, MenuContinue, MenuScores, MenuQuit}

// MenuOptions describes the state shown by the main menu.
type MenuOptions struct {
	HasSave bool
	Notice  string // Shown under the title, e.g. a corrupted save warning
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	opts     MenuOptions
	status   string
	choice   MenuChoice
	quitting bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(opts MenuOptions, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		opts:   opts,
	}
	if opts.HasSave {
		m.cursor = 1
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config = m.config.WithSize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		m.choice = MenuQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
		m.status = ""

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
		m.status = ""

	case MenuActionSelect:
		choice := menuItems[m.cursor]
		if choice == MenuContinue && !m.opts.HasSave {
			m.status = "No saved game to continue."
			return m, nil
		}
		m.choice = choice
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("N U M B E R   C R U S H"), m.width))
	b.WriteString("\n\n")

	if m.opts.Notice != "" {
		b.WriteString(centerText(noticeStyle.Render(m.opts.Notice), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range menuItems {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s", cursor, item)
		if item == MenuContinue && !m.opts.HasSave {
			line = dimStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(centerText(errorStyle.Render(m.status), m.width))
	}
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the selected entry, or MenuNone while the menu is open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(opts MenuOptions, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == MenuNone {
		return MenuResult{Choice: MenuQuit, Config: cfg}, nil
	}

	return MenuResult{Choice: m.Choice(), Config: m.Config()}, nil
}
