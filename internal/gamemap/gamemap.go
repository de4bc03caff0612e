package gamemap

import "fmt"

// Map holds the tile grid, room list and visibility memory for one level.
type Map struct {
	Width, Height int
	Tiles         []Tile
	Rooms         []Rect
	Start         Point

	// Revealed marks tiles that have ever been seen; it is only ever set.
	Revealed []bool
	// Visible marks tiles seen during the current frame.
	Visible []bool

	glyphs []rune
}

// New creates a Map filled with walls.
func New(width, height int) *Map {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("gamemap: invalid size %dx%d", width, height))
	}
	n := width * height
	return &Map{
		Width:    width,
		Height:   height,
		Tiles:    make([]Tile, n), // TileWall is the zero value
		Revealed: make([]bool, n),
		Visible:  make([]bool, n),
	}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Idx converts (x, y) to a row-major index. Panics if out of bounds.
func (m *Map) Idx(x, y int) int {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("gamemap: (%d,%d) outside %dx%d map", x, y, m.Width, m.Height))
	}
	return y*m.Width + x
}

// IdxToXY is the inverse of Idx.
func (m *Map) IdxToXY(idx int) (int, int) {
	return idx % m.Width, idx / m.Width
}

// At returns the tile at (x, y). Panics if out of bounds.
func (m *Map) At(x, y int) Tile {
	return m.Tiles[m.Idx(x, y)]
}

// Set replaces the tile at (x, y) and invalidates the glyph cache.
func (m *Map) Set(x, y int, t Tile) {
	m.Tiles[m.Idx(x, y)] = t
	m.glyphs = nil
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *Map) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y*m.Width+x].Walkable()
}

// IsWall returns true when (x, y) is in bounds and a wall.
// Off-grid coordinates are not walls.
func (m *Map) IsWall(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y*m.Width+x] == TileWall
}

// IsOpaque returns true when (x, y) blocks sight. Off-grid blocks too.
func (m *Map) IsOpaque(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Tiles[y*m.Width+x].Opaque()
}

// ClearVisible resets the per-frame visible set.
func (m *Map) ClearVisible() {
	clear(m.Visible)
}

// MarkSeen flags (x, y) as visible this frame and revealed forever.
func (m *Map) MarkSeen(x, y int) {
	i := m.Idx(x, y)
	m.Visible[i] = true
	m.Revealed[i] = true
}

// ResolveGlyphs caches the display glyph of every tile. Generators call it
// once carving is done; Glyph falls back to it lazily after any Set.
func (m *Map) ResolveGlyphs() {
	glyphs := make([]rune, len(m.Tiles))
	for i, t := range m.Tiles {
		if t != TileWall {
			glyphs[i] = FloorGlyph
			continue
		}
		x, y := m.IdxToXY(i)
		glyphs[i] = WallGlyph(m, x, y)
	}
	m.glyphs = glyphs
}

// Glyph returns the cached display glyph at (x, y).
func (m *Map) Glyph(x, y int) rune {
	i := m.Idx(x, y)
	if m.glyphs == nil {
		m.ResolveGlyphs()
	}
	return m.glyphs[i]
}
