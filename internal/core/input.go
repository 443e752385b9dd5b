package core

// Action represents a semantic action, abstracted from physical key presses.
// Swaps are not actions: the direction keys are user-configurable and are
// resolved by the key bindings instead.
type Action int

const (
	ActionNone        Action = iota
	ActionCursorUp           // Up arrow, K
	ActionCursorDown         // Down arrow, J
	ActionCursorLeft         // Left arrow, H
	ActionCursorRight        // Right arrow, L
	ActionConfirm            // Enter - confirm selection or submit a command
	ActionBack               // Escape - leave the current screen
	ActionToggleMode         // Tab - switch between cursor and line input
	ActionHelp               // ? - toggle the full help
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionCursorUp:
		return "CursorUp"
	case ActionCursorDown:
		return "CursorDown"
	case ActionCursorLeft:
		return "CursorLeft"
	case ActionCursorRight:
		return "CursorRight"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionToggleMode:
		return "ToggleMode"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// CursorDelta returns the (row, column) offset of a cursor action.
func (a Action) CursorDelta() (dr, dc int) {
	switch a {
	case ActionCursorUp:
		return -1, 0
	case ActionCursorDown:
		return 1, 0
	case ActionCursorLeft:
		return 0, -1
	case ActionCursorRight:
		return 0, 1
	}
	return 0, 0
}
