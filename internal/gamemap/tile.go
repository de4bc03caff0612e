package gamemap

// Tile identifies the kind of a map cell.
type Tile uint8

const (
	TileWall Tile = iota
	TileFloor
)

// Walkable reports whether an entity may stand on the tile.
func (t Tile) Walkable() bool { return t == TileFloor }

// Opaque reports whether the tile blocks line of sight.
func (t Tile) Opaque() bool { return t == TileWall }

func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	}
	return "unknown"
}
