package factory

import (
	"castle-generator/internal/component"
	"castle-generator/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// PlayerGlyph is drawn at the player's position.
const PlayerGlyph = "@"

// NewPlayer creates the player entity at (x, y) seeing viewRange tiles.
func NewPlayer(w *ecs.World, x, y, viewRange int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{
		Glyph:       PlayerGlyph,
		FGColor:     tcell.ColorYellow,
		BGColor:     tcell.ColorBlack,
		RenderOrder: 10,
	})
	w.Add(id, component.NewViewshed(viewRange))
	w.Add(id, component.TagPlayer{})
	return id
}
