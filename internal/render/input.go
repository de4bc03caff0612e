package render

import (
	"castle-generator/internal/game"

	"github.com/gdamore/tcell/v2"
)

// keyToInput maps a key press to a game input.
func keyToInput(key tcell.Key, r rune) game.Input {
	switch key {
	case tcell.KeyUp:
		return game.InputMoveUp
	case tcell.KeyDown:
		return game.InputMoveDown
	case tcell.KeyRight:
		return game.InputMoveRight
	case tcell.KeyLeft:
		return game.InputMoveLeft
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.InputQuit
	case tcell.KeyRune:
	default:
		return game.InputNone
	}
	switch r {
	case 'k', 'K':
		return game.InputMoveUp
	case 'j', 'J':
		return game.InputMoveDown
	case 'l', 'L':
		return game.InputMoveRight
	case 'h', 'H':
		return game.InputMoveLeft
	case 'q', 'Q':
		return game.InputQuit
	}
	return game.InputNone
}
