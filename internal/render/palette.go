package render

import (
	"castle-generator/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// Palette holds the styles used to draw terrain. Remembered tiles are drawn
// dim so the player can tell them apart from what is in view.
type Palette struct {
	Wall        tcell.Style
	Floor       tcell.Style
	DimWall     tcell.Style
	DimFloor    tcell.Style
	Status      tcell.Style
	StatusLabel tcell.Style
}

// DefaultPalette is stone walls on a black background.
var DefaultPalette = Palette{
	Wall:        tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	Floor:       tcell.StyleDefault.Foreground(tcell.ColorOlive).Background(tcell.ColorBlack),
	DimWall:     tcell.StyleDefault.Foreground(tcell.ColorDimGray).Background(tcell.ColorBlack),
	DimFloor:    tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray).Background(tcell.ColorBlack),
	Status:      tcell.StyleDefault.Foreground(tcell.ColorWhite),
	StatusLabel: tcell.StyleDefault.Foreground(tcell.ColorLightYellow),
}

// TileStyle picks the style for a tile kind at the given brightness.
func (p Palette) TileStyle(kind gamemap.Tile, dim bool) tcell.Style {
	switch {
	case kind == gamemap.TileWall && dim:
		return p.DimWall
	case kind == gamemap.TileWall:
		return p.Wall
	case dim:
		return p.DimFloor
	}
	return p.Floor
}
