package game

import (
	"castle-generator/internal/component"
	"castle-generator/internal/gamemap"
	"cmp"
	"slices"

	"github.com/gdamore/tcell/v2"
)

// Shade tells the renderer how brightly to draw a tile.
type Shade uint8

const (
	ShadeHidden     Shade = iota // never seen
	ShadeRemembered              // revealed earlier, not visible now
	ShadeVisible                 // seen this frame
)

// TileView is the render state of one map cell.
type TileView struct {
	Kind  gamemap.Tile
	Glyph rune
	Shade Shade
}

// EntityView is one drawable entity.
type EntityView struct {
	X, Y    int
	Glyph   string
	FG, BG  tcell.Color
	Order   int
	Visible bool // standing on a tile visible this frame
}

// Snapshot is a read-only copy of everything the renderer needs for a frame.
type Snapshot struct {
	Frame    uint64
	Width    int
	Height   int
	Tiles    []TileView // row-major, same indexing as gamemap.Map
	Entities []EntityView
	Focus    gamemap.Point // player position, for camera centring
}

// At returns the view of tile (x, y).
func (s Snapshot) At(x, y int) TileView {
	return s.Tiles[y*s.Width+x]
}

// Snapshot captures the current frame for rendering.
func (s *Scheduler) Snapshot() Snapshot {
	gmap := s.gmap
	snap := Snapshot{
		Frame:  s.frame,
		Width:  gmap.Width,
		Height: gmap.Height,
		Tiles:  make([]TileView, len(gmap.Tiles)),
	}
	for i, tile := range gmap.Tiles {
		x, y := gmap.IdxToXY(i)
		shade := ShadeHidden
		switch {
		case gmap.Visible[i]:
			shade = ShadeVisible
		case gmap.Revealed[i]:
			shade = ShadeRemembered
		}
		snap.Tiles[i] = TileView{Kind: tile, Glyph: gmap.Glyph(x, y), Shade: shade}
	}

	for _, id := range s.world.Query(component.CPosition, component.CRenderable) {
		pos := s.world.Get(id, component.CPosition).(component.Position)
		rend := s.world.Get(id, component.CRenderable).(component.Renderable)
		snap.Entities = append(snap.Entities, EntityView{
			X:       pos.X,
			Y:       pos.Y,
			Glyph:   rend.Glyph,
			FG:      rend.FGColor,
			BG:      rend.BGColor,
			Order:   rend.RenderOrder,
			Visible: gmap.InBounds(pos.X, pos.Y) && gmap.Visible[gmap.Idx(pos.X, pos.Y)],
		})
	}
	// Lower order is drawn first; ties keep ascending entity ID.
	slices.SortStableFunc(snap.Entities, func(a, b EntityView) int {
		return cmp.Compare(a.Order, b.Order)
	})

	if p, ok := s.PlayerPosition(); ok {
		snap.Focus = gamemap.Point{X: p.X, Y: p.Y}
	}
	return snap
}
