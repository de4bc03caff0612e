package system

import (
	"castle-generator/internal/component"
	"castle-generator/internal/ecs"
	"castle-generator/internal/gamemap"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall, off-grid, or no position
)

func (r MoveResult) String() string {
	if r == MoveOK {
		return "ok"
	}
	return "blocked"
}

// TryMove attempts to move entity id by (dx, dy) on gmap. A successful move
// marks the entity's viewshed dirty; a blocked move changes nothing.
func TryMove(w *ecs.World, gmap *gamemap.Map, id ecs.EntityID, dx, dy int) MoveResult {
	posComp := w.Get(id, component.CPosition)
	if posComp == nil {
		return MoveBlocked
	}
	pos := posComp.(component.Position)
	nx, ny := pos.X+dx, pos.Y+dy

	if !gmap.IsWalkable(nx, ny) {
		return MoveBlocked
	}

	w.Add(id, component.Position{X: nx, Y: ny})
	if vsComp := w.Get(id, component.CViewshed); vsComp != nil {
		vs := vsComp.(component.Viewshed)
		vs.Dirty = true
		w.Add(id, vs)
	}
	return MoveOK
}
