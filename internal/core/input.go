package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions; the shell maps actions to session commands.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, K, Up arrow - slide up / move swap cursor
	ActionDown            // S, J, Down arrow
	ActionLeft            // A, H, Left arrow
	ActionRight           // D, L, Right arrow
	ActionUndo            // U - undo last move or swap
	ActionSwapMode        // X - toggle tile swap mode
	ActionConfirm         // Enter, Space - select tile under the swap cursor
	ActionNewGame         // N, R - start over
	ActionHelp            // ? - toggle full help
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUndo:
		return "Undo"
	case ActionSwapMode:
		return "SwapMode"
	case ActionConfirm:
		return "Confirm"
	case ActionNewGame:
		return "NewGame"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four arrows.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}
