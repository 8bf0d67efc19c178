package core

// Action represents a semantic game action, abstracted from physical key presses.
// Input sources translate keys into actions; the game only ever sees actions.
type Action int

const (
	ActionNone            Action = iota
	ActionMoveLeft               // Left arrow, h
	ActionMoveRight              // Right arrow, l
	ActionSoftDrop               // Down arrow, j
	ActionHardDrop               // Space
	ActionRotateCW               // Up arrow, x
	ActionRotateCCW              // z, ctrl
	ActionConfirm                // Enter - start a game from the waiting screen
	ActionQuit                   // Q, Esc, Ctrl+C
	ActionAcknowledgeLoss        // Delivered by the renderer once the loss notice is dismissed
)

// Actions lists every action an input source may deliver, excluding ActionNone.
var Actions = []Action{
	ActionMoveLeft,
	ActionMoveRight,
	ActionSoftDrop,
	ActionHardDrop,
	ActionRotateCW,
	ActionRotateCCW,
	ActionConfirm,
	ActionQuit,
	ActionAcknowledgeLoss,
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	case ActionAcknowledgeLoss:
		return "AcknowledgeLoss"
	default:
		return "Unknown"
	}
}
