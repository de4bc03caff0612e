package component

import (
	"castle-generator/internal/ecs"
	"castle-generator/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
)

const CViewshed ecs.ComponentType = 4

// Viewshed holds the tiles an entity can currently see.
// VisibleTiles is only trustworthy while Dirty is false.
type Viewshed struct {
	Range        int
	Dirty        bool
	VisibleTiles mapset.Set[gamemap.Point]
}

// NewViewshed returns a dirty viewshed with an empty tile set.
func NewViewshed(viewRange int) Viewshed {
	return Viewshed{
		Range:        viewRange,
		Dirty:        true,
		VisibleTiles: mapset.New[gamemap.Point](),
	}
}

// CanSee reports whether p is in the last computed visible set.
func (v Viewshed) CanSee(p gamemap.Point) bool {
	return v.VisibleTiles.Has(p)
}

func (Viewshed) Type() ecs.ComponentType { return CViewshed }
