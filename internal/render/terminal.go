// Package render is the terminal front end: it turns key presses into
// game inputs and draws frame snapshots with tcell.
package render

import (
	"castle-generator/internal/game"
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// ErrScreenClosed is returned by Poll once the screen has been finalized.
var ErrScreenClosed = errors.New("screen closed")

// Terminal draws snapshots onto a tcell screen and reads player input from it.
type Terminal struct {
	screen  tcell.Screen
	camera  *Camera
	palette Palette
}

// NewTerminal wraps an initialized screen.
func NewTerminal(screen tcell.Screen) *Terminal {
	w, h := screen.Size()
	return &Terminal{
		screen:  screen,
		camera:  NewCamera(0, 0, w, max(h-statusRows, 0)),
		palette: DefaultPalette,
	}
}

// SetPalette replaces the terrain styles.
func (t *Terminal) SetPalette(p Palette) { t.palette = p }

// Camera exposes the viewport, mostly for tests.
func (t *Terminal) Camera() *Camera { return t.camera }

// Interrupt wakes a blocked Poll so it can observe ctx cancellation.
func (t *Terminal) Interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Poll blocks for the next meaningful event. Resizes and unbound keys yield
// game.InputNone so the frame is redrawn.
func (t *Terminal) Poll(ctx context.Context) (game.Input, error) {
	if err := ctx.Err(); err != nil {
		return game.InputNone, err
	}
	ev := t.screen.PollEvent()
	if ev == nil {
		return game.InputNone, ErrScreenClosed
	}
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventInterrupt:
		if err := ctx.Err(); err != nil {
			return game.InputNone, err
		}
	case *tcell.EventKey:
		return keyToInput(ev.Key(), ev.Rune()), nil
	}
	return game.InputNone, nil
}

// Draw renders the remembered and visible map, visible entities and the
// status line, then shows the frame.
func (t *Terminal) Draw(snap game.Snapshot) error {
	w, h := t.screen.Size()
	t.camera.Resize(w, max(h-statusRows, 0))
	t.camera.Follow(snap.Focus.X, snap.Focus.Y, snap.Width, snap.Height)

	t.screen.Clear()
	t.drawMap(snap)
	t.drawEntities(snap)
	t.drawStatus(snap)
	t.screen.Show()
	return nil
}

func (t *Terminal) drawMap(snap game.Snapshot) {
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			tile := snap.At(x, y)
			if tile.Shade == game.ShadeHidden {
				continue
			}
			sx, sy, onScreen := t.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			style := t.palette.TileStyle(tile.Kind, tile.Shade == game.ShadeRemembered)
			t.screen.SetContent(sx, sy, tile.Glyph, nil, style)
		}
	}
}

// drawEntities draws entities standing on visible tiles. Snapshot entities
// are already sorted by render order.
func (t *Terminal) drawEntities(snap game.Snapshot) {
	for _, e := range snap.Entities {
		if !e.Visible {
			continue
		}
		sx, sy, onScreen := t.camera.WorldToScreen(e.X, e.Y)
		if !onScreen {
			continue
		}
		t.putGlyph(sx, sy, e.Glyph, tcell.StyleDefault.Foreground(e.FG).Background(e.BG))
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune) at screen position (x, y).
func (t *Terminal) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	t.screen.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		t.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
