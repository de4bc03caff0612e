package generate

import (
	"castle-generator/internal/gamemap"
	"math/rand"
	"testing"
)

// allFloorRow checks that every tile at y between x1 and x2 (inclusive) is walkable.
func allFloorRow(gmap *gamemap.Map, x1, x2, y int) bool {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if !gmap.IsWalkable(x, y) {
			return false
		}
	}
	return true
}

// allFloorCol checks that every tile at x between y1 and y2 (inclusive) is walkable.
func allFloorCol(gmap *gamemap.Map, y1, y2, x int) bool {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if !gmap.IsWalkable(x, y) {
			return false
		}
	}
	return true
}

func TestCarveH(t *testing.T) {
	gmap := gamemap.New(20, 20)
	carveH(gmap, 3, 8, 5)

	if !allFloorRow(gmap, 3, 8, 5) {
		t.Error("carveH(3,8,5) should carve floor tiles from x=3 to x=8 at y=5")
	}
	// Tiles just outside the segment must remain walls.
	if gmap.IsWalkable(2, 5) {
		t.Error("tile at x=2 should remain wall (not part of segment)")
	}
	if gmap.IsWalkable(9, 5) {
		t.Error("tile at x=9 should remain wall (not part of segment)")
	}
}

func TestCarveHReversedArgs(t *testing.T) {
	// carveH must swap x1/x2 when x1 > x2.
	gmap := gamemap.New(20, 20)
	carveH(gmap, 8, 3, 5) // reversed
	if !allFloorRow(gmap, 3, 8, 5) {
		t.Error("carveH with reversed x args should still carve x=3..8")
	}
}

func TestCarveV(t *testing.T) {
	gmap := gamemap.New(20, 20)
	carveV(gmap, 2, 7, 4)

	if !allFloorCol(gmap, 2, 7, 4) {
		t.Error("carveV(2,7,4) should carve floor tiles from y=2 to y=7 at x=4")
	}
	if gmap.IsWalkable(4, 1) {
		t.Error("tile at y=1 should remain wall")
	}
	if gmap.IsWalkable(4, 8) {
		t.Error("tile at y=8 should remain wall")
	}
}

func TestCarveVReversedArgs(t *testing.T) {
	gmap := gamemap.New(20, 20)
	carveV(gmap, 7, 2, 4) // reversed
	if !allFloorCol(gmap, 2, 7, 4) {
		t.Error("carveV with reversed y args should still carve y=2..7")
	}
}

func TestCarveNeverTouchesBorder(t *testing.T) {
	gmap := gamemap.New(10, 10)
	carveH(gmap, -3, 20, 0)
	carveH(gmap, -3, 20, 5)
	carveV(gmap, -3, 20, 9)
	for x := 0; x < 10; x++ {
		if gmap.IsWalkable(x, 0) {
			t.Errorf("border (%d,0) carved", x)
		}
	}
	if gmap.IsWalkable(0, 5) || gmap.IsWalkable(9, 5) {
		t.Error("side border carved")
	}
	if !allFloorRow(gmap, 1, 8, 5) {
		t.Error("interior of row 5 should be carved")
	}
}

func TestCarveCorridorBothShapes(t *testing.T) {
	// Both variants (H then V, or V then H) must connect the endpoints.
	// Test multiple seeds so both random branches are exercised.
	shapes := map[bool]bool{}
	for seed := range 20 {
		gmap := gamemap.New(20, 20)
		carveCorridor(gmap, 2, 2, 10, 8, rand.New(rand.NewSource(int64(seed))))

		hFirst := allFloorRow(gmap, 2, 10, 2) && allFloorCol(gmap, 2, 8, 10)
		vFirst := allFloorCol(gmap, 2, 8, 2) && allFloorRow(gmap, 2, 10, 8)
		if !hFirst && !vFirst {
			t.Errorf("seed %d: corridor is not an L between (2,2) and (10,8)", seed)
		}
		shapes[hFirst] = true
	}
	if len(shapes) != 2 {
		t.Error("expected both corridor orientations across seeds")
	}
}
