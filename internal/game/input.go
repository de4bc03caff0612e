package game

// Input is one abstract player request, decoded by the front end.
type Input uint8

const (
	InputNone Input = iota
	InputMoveUp
	InputMoveDown
	InputMoveLeft
	InputMoveRight
	InputQuit
)

func (in Input) String() string {
	switch in {
	case InputNone:
		return "none"
	case InputMoveUp:
		return "up"
	case InputMoveDown:
		return "down"
	case InputMoveLeft:
		return "left"
	case InputMoveRight:
		return "right"
	case InputQuit:
		return "quit"
	}
	return "unknown"
}

// delta converts a movement input to (dx, dy).
func (in Input) delta() (int, int) {
	switch in {
	case InputMoveUp:
		return 0, -1
	case InputMoveDown:
		return 0, 1
	case InputMoveLeft:
		return -1, 0
	case InputMoveRight:
		return 1, 0
	}
	return 0, 0
}
