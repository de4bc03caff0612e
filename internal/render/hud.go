package render

import (
	"castle-generator/internal/game"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// statusRows is the number of screen rows reserved below the map.
const statusRows = 2

// drawStatus renders the separator and status line at the bottom of the screen.
func (t *Terminal) drawStatus(snap game.Snapshot) {
	screenW, screenH := t.screen.Size()
	y := screenH - statusRows
	if y < 0 {
		return
	}

	t.drawHLine(y, screenW, tcell.ColorGray)

	label := "Castle "
	pos := fmt.Sprintf("(%d,%d)  frame %d  arrows/hjkl move, q quits",
		snap.Focus.X, snap.Focus.Y, snap.Frame)
	col := t.drawText(0, y+1, label, t.palette.StatusLabel)
	t.drawText(col, y+1, pos, t.palette.Status)
}

func (t *Terminal) drawHLine(y, width int, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text starting at column x and returns the column after it.
func (t *Terminal) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		t.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	return col
}
