package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/number-crush/internal/config"
	"github.com/vovakirdan/number-crush/internal/core"
	"github.com/vovakirdan/number-crush/internal/crush"
	"github.com/vovakirdan/number-crush/internal/save"
	"github.com/vovakirdan/number-crush/internal/storage"
)

// GameOptions configures a board screen.
type GameOptions struct {
	Session    *crush.Session
	Difficulty string // Defaults to the preset matching the session
	Keys       config.KeyBindings
	Input      config.InputConfig
	Store      *storage.Store // Finished games are recorded here when set
	SavePath   string         // Removed once the game is over when set
	ShotDir    string         // ctrl+s screenshots; empty disables them
	Notice     string         // Initial status line
	Logger     *log.Logger
	Width      int
	Height     int
}

// GameModel is the Bubble Tea model for one game.
type GameModel struct {
	session    *crush.Session
	difficulty string
	bindings   config.KeyBindings
	keyMapper  *KeyMapper
	mode       config.InputMode
	rowFirst   bool
	cursor     crush.Position
	input      textinput.Model
	help       help.Model
	screen     *core.Screen
	store      *storage.Store
	savePath   string
	shotDir    string
	logger     *log.Logger
	width      int
	height     int
	status     string
	statusErr  bool
	recorded   bool // Score stored and save file removed
	quitting   bool
	back       bool
}

// NewGameModel creates a board model around a running session.
func NewGameModel(opts GameOptions) GameModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	difficulty := opts.Difficulty
	if difficulty == "" {
		difficulty = crush.DifficultyOf(opts.Session.State())
	}
	mode := opts.Input.Mode
	if mode == "" {
		mode = config.InputCursor
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = CommandUsage(opts.Input.RowFirst, opts.Keys)
	ti.CharLimit = 16
	ti.Width = 24

	w, h := BoardDimensions(opts.Session.Grid().Size())

	m := GameModel{
		session:    opts.Session,
		difficulty: difficulty,
		bindings:   opts.Keys,
		keyMapper:  NewKeyMapper(opts.Keys),
		mode:       mode,
		rowFirst:   opts.Input.RowFirst,
		input:      ti,
		help:       help.New(),
		screen:     core.NewScreen(w, h),
		store:      opts.Store,
		savePath:   opts.SavePath,
		shotDir:    opts.ShotDir,
		logger:     logger,
		width:      opts.Width,
		height:     opts.Height,
		status:     opts.Notice,
	}
	if m.mode == config.InputLine {
		m.input.Focus()
	}
	if m.session.Over() {
		// Already recorded when its last move was played.
		m.recorded = true
		if m.savePath != "" {
			if err := save.Remove(m.savePath); err != nil {
				logger.Warn("save not removed", "path", m.savePath, "error", err)
			}
		}
	}
	return m
}

// Init starts the cursor blink when typing commands.
func (m GameModel) Init() tea.Cmd {
	if m.mode == config.InputLine {
		return textinput.Blink
	}
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	if m.mode == config.InputLine {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.session.Over() {
		action, isQuit := m.keyMapper.MapKey(msg)
		switch {
		case isQuit:
			m.quitting = true
			return m, tea.Quit
		case action == core.ActionConfirm, action == core.ActionBack:
			m.back = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.mode == config.InputLine {
		return m.handleLineKey(msg)
	}
	return m.handleCursorKey(msg)
}

func (m GameModel) handleCursorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if dir, ok := m.keyMapper.Direction(msg); ok {
		return m.play(crush.Move{From: m.cursor, Dir: dir})
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionCursorUp, core.ActionCursorDown, core.ActionCursorLeft, core.ActionCursorRight:
		dr, dc := action.CursorDelta()
		m.moveCursor(dr, dc)
	case core.ActionToggleMode:
		m.mode = config.InputLine
		m.status = ""
		cmd := m.input.Focus()
		return m, cmd
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

func (m GameModel) handleLineKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapLineKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionConfirm:
		mv, err := ParseCommand(m.input.Value(), m.rowFirst, m.bindings)
		if err != nil {
			m.setError(err.Error())
			return m, nil
		}
		m.input.Reset()
		return m.play(mv)
	case core.ActionToggleMode:
		m.mode = config.InputCursor
		m.status = ""
		m.input.Blur()
		return m, nil
	case core.ActionBack:
		m.back = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// play applies a move and reports its outcome in the status line.
func (m GameModel) play(mv crush.Move) (tea.Model, tea.Cmd) {
	res, err := m.session.Apply(mv)
	switch {
	case errors.Is(err, crush.ErrInvalidMove):
		m.setError(fmt.Sprintf("Cannot swap %s from row %d, column %d.", mv.Dir, mv.From.Row+1, mv.From.Col+1))
		return m, nil
	case errors.Is(err, crush.ErrAutosave):
		m.setError("Move played, but the autosave failed. See the log.")
	case err != nil:
		m.setError(err.Error())
		return m, nil
	default:
		m.setStatus(describeResolution(res))
	}

	if m.session.Grid().InBounds(mv.From) {
		m.cursor = mv.From
	}
	if m.session.Over() {
		m.finish()
	}
	return m, nil
}

// finish records the final score and drops the save so that Continue
// never resumes a game without turns.
func (m *GameModel) finish() {
	if m.recorded {
		return
	}
	m.recorded = true
	st := m.session.State()

	if m.store != nil {
		_, err := m.store.SaveScore(storage.ScoreEntry{
			Difficulty: m.difficulty,
			Score:      int(st.Score),
			Turns:      int(st.Turn),
			Size:       int(st.Size),
		})
		if err != nil {
			m.logger.Warn("score not recorded", "error", err)
			m.setError("Could not record the score. See the log.")
		}
	}
	if m.savePath != "" {
		if err := save.Remove(m.savePath); err != nil {
			m.logger.Warn("save not removed", "path", m.savePath, "error", err)
		}
	}
}

func (m *GameModel) moveCursor(dr, dc int) {
	limit := m.session.Grid().Size() - 1
	m.cursor.Row = max(0, min(limit, m.cursor.Row+dr))
	m.cursor.Col = max(0, min(limit, m.cursor.Col+dc))
}

func (m *GameModel) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *GameModel) setError(s string) {
	m.status = s
	m.statusErr = true
}

func describeResolution(res crush.Resolution) string {
	switch res.Combos {
	case 0:
		return "No match."
	case 1:
		return fmt.Sprintf("Match! +%d", res.Delta)
	default:
		return fmt.Sprintf("%d combos: %d × %d = +%d", res.Combos, res.Points, res.Combos, res.Delta)
	}
}

// saveScreenshot saves the current board to a text file.
func (m *GameModel) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	m.draw()

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.setError("Screenshot failed.")
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("crush_%s_%s.txt", m.difficulty, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.setError("Screenshot failed.")
		return
	}
	m.setStatus("Screenshot saved to " + path)
}

func (m GameModel) draw() {
	DrawBoard(m.screen, BoardView{
		State:      m.session.State(),
		Difficulty: m.difficulty,
		Cursor:     m.cursor,
		ShowCursor: m.mode == config.InputCursor && !m.session.Over(),
	})
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.draw()
	parts := []string{RenderScreen(m.screen), ""}

	over := m.session.Over()
	if m.mode == config.InputLine && !over {
		parts = append(parts, m.input.View())
	}

	switch {
	case m.status == "":
		parts = append(parts, "")
	case m.statusErr:
		parts = append(parts, errorStyle.Render(m.status))
	default:
		parts = append(parts, noticeStyle.Render(m.status))
	}

	switch {
	case over:
		parts = append(parts, dimStyle.Render("enter: menu • q: quit"))
	case m.mode == config.InputLine:
		parts = append(parts, m.help.View(lineHelp{m.keyMapper.Keys()}))
	default:
		parts = append(parts, m.help.View(m.keyMapper.Keys()))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// State returns a copy of the game state.
func (m GameModel) State() crush.GameState {
	return m.session.State()
}

// Status returns the status line text.
func (m GameModel) Status() string {
	return m.status
}

// Cursor returns the highlighted cell.
func (m GameModel) Cursor() crush.Position {
	return m.cursor
}

// Mode returns the active input mode.
func (m GameModel) Mode() config.InputMode {
	return m.mode
}

// IsQuitting returns true if user requested to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user wants to go back to the menu.
func (m GameModel) WantsBack() bool {
	return m.back
}

// GameResult is how a board screen ended.
type GameResult struct {
	State    crush.GameState
	Finished bool // All turns were played
	Quit     bool // Leave the program instead of returning to the menu
}

// RunGame runs the board screen until the player leaves it.
func RunGame(opts GameOptions) (GameResult, error) {
	model := NewGameModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return GameResult{State: opts.Session.State()}, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return GameResult{State: opts.Session.State(), Quit: true}, nil
	}

	st := m.State()
	return GameResult{
		State:    st,
		Finished: st.Over(),
		Quit:     m.IsQuitting(),
	}, nil
}
