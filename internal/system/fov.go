package system

import (
	"castle-generator/internal/component"
	"castle-generator/internal/ecs"
	"castle-generator/internal/gamemap"
	"castle-generator/internal/logger"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//
//	worldX = cx + dx*xx + dy*xy
//	worldY = cy + dx*yx + dy*yy
//
// where dx sweeps horizontally within the row and dy is the fixed row index.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// FieldOfView returns the tiles visible from origin within radius, using
// recursive shadowcasting. Walls block sight but are themselves visible.
// A tile is in range when dx²+dy² <= radius². The origin is always visible.
func FieldOfView(gmap *gamemap.Map, origin gamemap.Point, radius int) mapset.Set[gamemap.Point] {
	seen := mapset.New[gamemap.Point]()
	if !gmap.InBounds(origin.X, origin.Y) {
		return seen
	}
	seen.Put(origin)
	if radius <= 0 {
		return seen
	}
	for _, m := range octants {
		castLight(gmap, seen, origin.X, origin.Y, 1, 1.0, 0.0, radius, m[0], m[1], m[2], m[3])
	}
	return seen
}

// castLight scans one octant row by row, recursing past each wall run.
//   - j is the current row (distance from origin along the main axis)
//   - dx sweeps from -j to 0 within the row
//   - lSlope = (dx - 0.5) / (dy + 0.5), rSlope = (dx + 0.5) / (dy - 0.5)
func castLight(gmap *gamemap.Map, seen mapset.Set[gamemap.Point], cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := radius * radius
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if dx*dx+dy*dy <= radiusSq && gmap.InBounds(wx, wy) {
				seen.Put(gamemap.Point{X: wx, Y: wy})
			}

			opaque := gmap.IsOpaque(wx, wy)
			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < radius {
				blocked = true
				castLight(gmap, seen, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

// UpdateVisibility recomputes every dirty viewshed, then rebuilds the map's
// visible set from all viewsheds and folds it into revealed memory.
// It returns the number of viewsheds recomputed.
func UpdateVisibility(w *ecs.World, gmap *gamemap.Map) int {
	gmap.ClearVisible()

	recomputed := 0
	for _, id := range w.Query(component.CPosition, component.CViewshed) {
		pos := w.Get(id, component.CPosition).(component.Position)
		vs := w.Get(id, component.CViewshed).(component.Viewshed)

		if vs.Dirty {
			vs.VisibleTiles = FieldOfView(gmap, gamemap.Point{X: pos.X, Y: pos.Y}, vs.Range)
			vs.Dirty = false
			w.Add(id, vs)
			recomputed++

			logger.Log.WithFields(logrus.Fields{
				"component": "visibility",
				"entity":    id,
				"range":     vs.Range,
				"visible":   vs.VisibleTiles.Size(),
			}).Trace("Viewshed recomputed.")
		}

		vs.VisibleTiles.Each(func(p gamemap.Point) {
			gmap.MarkSeen(p.X, p.Y)
		})
	}
	return recomputed
}
