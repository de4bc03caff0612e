package generate

import (
	"castle-generator/internal/gamemap"
	"castle-generator/internal/logger"
	"castle-generator/internal/telemetry"
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ErrNoRooms is returned when the rooms strategy accepts no room at all,
// leaving the level without an entry point.
var ErrNoRooms = errors.New("no rooms placed")

// Generate builds a level according to cfg. The RNG is seeded from
// cfg.Seed, so the same config always yields the same map.
func Generate(ctx context.Context, cfg Config) (*gamemap.Map, error) {
	_, span := telemetry.Tracer("generate").Start(ctx, "level.generate")
	defer span.End()
	span.SetAttributes(
		attribute.String("level.strategy", cfg.Strategy.String()),
		attribute.Int("level.width", cfg.MapWidth),
		attribute.Int("level.height", cfg.MapHeight),
		attribute.Int64("level.seed", cfg.Seed),
	)

	if err := cfg.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	log := logger.Log.WithFields(logrus.Fields{
		"component": "generate",
		"strategy":  cfg.Strategy,
		"seed":      cfg.Seed,
	})

	rng := rand.New(rand.NewSource(cfg.Seed))

	var gmap *gamemap.Map
	switch cfg.Strategy {
	case StrategyScatter:
		gmap = scatter(cfg, rng)
	default:
		gmap = roomsAndCorridors(cfg, rng)
		if len(gmap.Rooms) == 0 {
			err := fmt.Errorf("generate %dx%d after %d attempts: %w",
				cfg.MapWidth, cfg.MapHeight, cfg.MaxAttempts, ErrNoRooms)
			span.SetStatus(codes.Error, err.Error())
			log.WithError(err).Warn("Level generation failed.")
			return nil, err
		}
		sx, sy := gmap.Rooms[0].Center()
		gmap.Start = gamemap.Point{X: sx, Y: sy}
	}

	gmap.ResolveGlyphs()

	span.SetAttributes(attribute.Int("level.rooms", len(gmap.Rooms)))
	log.WithFields(logrus.Fields{
		"rooms":   len(gmap.Rooms),
		"start_x": gmap.Start.X,
		"start_y": gmap.Start.Y,
	}).Debug("Level generated.")
	return gmap, nil
}

// scatter fills an open bordered room with random wall tiles. The map
// centre is the entry point and always stays floor.
func scatter(cfg Config, rng *rand.Rand) *gamemap.Map {
	gmap := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	for y := 1; y < gmap.Height-1; y++ {
		for x := 1; x < gmap.Width-1; x++ {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
	gmap.Start = gamemap.Point{X: gmap.Width / 2, Y: gmap.Height / 2}

	for i := 0; i < cfg.ScatterTrials; i++ {
		x := rng.Intn(gmap.Width)
		y := rng.Intn(gmap.Height)
		if x == gmap.Start.X && y == gmap.Start.Y {
			continue
		}
		gmap.Set(x, y, gamemap.TileWall)
	}
	return gmap
}

// roomsAndCorridors places up to cfg.MaxAttempts candidate rooms, keeping
// those that clear every accepted room by RoomMargin.
func roomsAndCorridors(cfg Config, rng *rand.Rand) *gamemap.Map {
	gmap := gamemap.New(cfg.MapWidth, cfg.MapHeight)

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		if cfg.MaxRooms > 0 && len(gmap.Rooms) >= cfg.MaxRooms {
			break
		}
		w := cfg.MinRoomSize + rng.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
		h := cfg.MinRoomSize + rng.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)

		// Top-left x ranges over [RoomMargin, Width-w-RoomMargin-1] so that
		// X2 = x+w stays at least RoomMargin away from the border ring.
		spanX := gmap.Width - w - 2*RoomMargin - 1
		spanY := gmap.Height - h - 2*RoomMargin - 1
		if spanX < 1 || spanY < 1 {
			continue // room too large for this map
		}
		x := RoomMargin + rng.Intn(spanX)
		y := RoomMargin + rng.Intn(spanY)
		room := gamemap.NewRect(x, y, w, h)

		if overlapsAny(room, gmap.Rooms) {
			continue
		}

		carveRoom(gmap, room)
		if n := len(gmap.Rooms); n > 0 {
			nx, ny := room.Center()
			px, py := gmap.Rooms[n-1].Center()
			carveCorridor(gmap, nx, ny, px, py, rng)
		}
		gmap.Rooms = append(gmap.Rooms, room)
	}
	return gmap
}

func overlapsAny(room gamemap.Rect, rooms []gamemap.Rect) bool {
	grown := room.Inflate(RoomMargin)
	for _, other := range rooms {
		if grown.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom sets the interior of room (X1+1..X2, Y1+1..Y2) to floor.
func carveRoom(gmap *gamemap.Map, room gamemap.Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
}
