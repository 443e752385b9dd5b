package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/number-crush/internal/config"
	"github.com/vovakirdan/number-crush/internal/core"
	"github.com/vovakirdan/number-crush/internal/crush"
)

// GameKeyMap holds the board bindings. The swap bindings come from the
// user's configuration.
type GameKeyMap struct {
	CursorUp    key.Binding
	CursorDown  key.Binding
	CursorLeft  key.Binding
	CursorRight key.Binding
	SwapUp      key.Binding
	SwapDown    key.Binding
	SwapLeft    key.Binding
	SwapRight   key.Binding
	Submit      key.Binding
	ToggleMode  key.Binding
	Help        key.Binding
	Back        key.Binding
	Screenshot  key.Binding
	Quit        key.Binding
}

// NewGameKeyMap builds the board bindings around the configured swap keys.
func NewGameKeyMap(keys config.KeyBindings) GameKeyMap {
	swap := func(sym string, d crush.Direction) key.Binding {
		return key.NewBinding(
			key.WithKeys(sym),
			key.WithHelp(sym, fmt.Sprintf("swap %s", d)),
		)
	}
	return GameKeyMap{
		CursorUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "cursor up"),
		),
		CursorDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "cursor down"),
		),
		CursorLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "cursor left"),
		),
		CursorRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "cursor right"),
		),
		SwapUp:    swap(keys.Up, crush.DirUp),
		SwapDown:  swap(keys.Down, crush.DirDown),
		SwapLeft:  swap(keys.Left, crush.DirLeft),
		SwapRight: swap(keys.Right, crush.DirRight),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play command"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "cursor/line input"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwapUp, k.SwapDown, k.SwapLeft, k.SwapRight, k.ToggleMode, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.CursorUp, k.CursorDown, k.CursorLeft, k.CursorRight},
		{k.SwapUp, k.SwapDown, k.SwapLeft, k.SwapRight},
		{k.Submit, k.ToggleMode, k.Help, k.Screenshot, k.Back, k.Quit},
	}
}

// lineHelp is the help shown while typing commands, where letters are text.
type lineHelp struct {
	GameKeyMap
}

func (k lineHelp) ShortHelp() []key.Binding {
	quit := key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
	return []key.Binding{k.Submit, k.ToggleMode, k.Back, quit}
}

func (k lineHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// KeyMapper translates Bubble Tea key messages to actions and swap
// directions. This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a key mapper for the configured swap keys.
func NewKeyMapper(keys config.KeyBindings) *KeyMapper {
	return &KeyMapper{keys: NewGameKeyMap(keys)}
}

// Keys returns the bindings for help rendering.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a board action in cursor mode.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.CursorUp):
		return core.ActionCursorUp, false
	case key.Matches(msg, k.CursorDown):
		return core.ActionCursorDown, false
	case key.Matches(msg, k.CursorLeft):
		return core.ActionCursorLeft, false
	case key.Matches(msg, k.CursorRight):
		return core.ActionCursorRight, false
	case key.Matches(msg, k.Submit):
		return core.ActionConfirm, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	case key.Matches(msg, k.ToggleMode):
		return core.ActionToggleMode, false
	case key.Matches(msg, k.Help):
		return core.ActionHelp, false
	}
	return core.ActionNone, false
}

// MapLineKey translates a key message while the command line has focus.
// Only non-printing keys act; everything else is text.
func (km *KeyMapper) MapLineKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return core.ActionQuit, true
	case tea.KeyEnter:
		return core.ActionConfirm, false
	case tea.KeyEsc:
		return core.ActionBack, false
	case tea.KeyTab:
		return core.ActionToggleMode, false
	}
	return core.ActionNone, false
}

// Direction returns the swap direction bound to the key, if any.
func (km *KeyMapper) Direction(msg tea.KeyMsg) (crush.Direction, bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.SwapUp):
		return crush.DirUp, true
	case key.Matches(msg, k.SwapDown):
		return crush.DirDown, true
	case key.Matches(msg, k.SwapLeft):
		return crush.DirLeft, true
	case key.Matches(msg, k.SwapRight):
		return crush.DirRight, true
	}
	return crush.DirNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "up", "k":
		return MenuActionUp
	case "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
