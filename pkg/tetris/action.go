package tetris

// Action is a player intent applied to the falling piece
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionSoftDrop
	ActionRotate
)

// Actions lists every action in the order repeated keys are applied
var Actions = []Action{ActionMoveLeft, ActionMoveRight, ActionSoftDrop, ActionRotate}

func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	default:
		return "Unknown"
	}
}
