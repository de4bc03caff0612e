package gamemap

// FloorGlyph is drawn for every floor tile.
const FloorGlyph = '·'

// Neighbor bits for the wall mask.
const (
	wallUp    = 1 << iota // y-1
	wallDown              // y+1
	wallLeft              // x-1
	wallRight             // x+1
)

// wallGlyphs maps a 4-bit neighbor mask to a box-drawing glyph.
var wallGlyphs = [16]rune{
	0:                                       '○',
	wallUp:                                  '║',
	wallDown:                                '║',
	wallUp | wallDown:                       '║',
	wallLeft:                                '═',
	wallRight:                               '═',
	wallLeft | wallRight:                    '═',
	wallUp | wallLeft:                       '╝',
	wallDown | wallLeft:                     '╗',
	wallUp | wallRight:                      '╚',
	wallDown | wallRight:                    '╔',
	wallUp | wallDown | wallLeft:            '╣',
	wallUp | wallDown | wallRight:           '╠',
	wallUp | wallLeft | wallRight:           '╩',
	wallDown | wallLeft | wallRight:         '╦',
	wallUp | wallDown | wallLeft | wallRight: '╬',
}

// wallMask builds the neighbor pattern for (x, y).
func wallMask(m *Map, x, y int) int {
	mask := 0
	if m.IsWall(x, y-1) {
		mask |= wallUp
	}
	if m.IsWall(x, y+1) {
		mask |= wallDown
	}
	if m.IsWall(x-1, y) {
		mask |= wallLeft
	}
	if m.IsWall(x+1, y) {
		mask |= wallRight
	}
	return mask
}

// WallGlyph picks the glyph for the wall at (x, y) from its four orthogonal
// neighbors. It reads the map only and is safe to memoize.
func WallGlyph(m *Map, x, y int) rune {
	return wallGlyphs[wallMask(m, x, y)]
}
