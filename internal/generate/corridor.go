package generate

import (
	"castle-generator/internal/gamemap"
	"math/rand"
)

// carveCorridor digs an L-shaped tunnel between (x1,y1) and (x2,y2).
// A coin flip picks whether the horizontal or vertical leg comes first.
func carveCorridor(gmap *gamemap.Map, x1, y1, x2, y2 int, rng *rand.Rand) {
	if rng.Intn(2) == 0 {
		carveH(gmap, x1, x2, y1)
		carveV(gmap, y1, y2, x2)
	} else {
		carveV(gmap, y1, y2, x1)
		carveH(gmap, x1, x2, y2)
	}
}

// interior reports whether (x, y) is inside the map and off its border ring.
func interior(gmap *gamemap.Map, x, y int) bool {
	return x > 0 && x < gmap.Width-1 && y > 0 && y < gmap.Height-1
}

func carveH(gmap *gamemap.Map, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if interior(gmap, x, y) {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
}

func carveV(gmap *gamemap.Map, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if interior(gmap, x, y) {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
}
