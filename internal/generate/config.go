package generate

import (
	"errors"
	"fmt"
	"strings"
)

// Strategy selects how a level is carved.
type Strategy uint8

const (
	// StrategyRoomsAndCorridors places non-overlapping rooms and joins each
	// to the previous one with an L-shaped corridor.
	StrategyRoomsAndCorridors Strategy = iota
	// StrategyScatter turns random tiles of an open room into walls.
	// Reachability is not guaranteed.
	StrategyScatter
)

func (s Strategy) String() string {
	switch s {
	case StrategyRoomsAndCorridors:
		return "rooms"
	case StrategyScatter:
		return "scatter"
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// ParseStrategy accepts the names produced by String.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rooms", "rooms-and-corridors":
		return StrategyRoomsAndCorridors, nil
	case "scatter":
		return StrategyScatter, nil
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, s)
}

// RoomMargin is the gap kept between independently placed rooms.
const RoomMargin = 1

// MinRoomSizeLimit is the smallest room side Validate accepts. A side of 1
// puts Center on the room's wall column instead of its carved interior.
const MinRoomSizeLimit = 2

// Config drives procedural generation for one level.
type Config struct {
	MapWidth, MapHeight int
	Strategy            Strategy

	// Rooms and corridors.
	MinRoomSize int
	MaxRoomSize int
	MaxAttempts int
	MaxRooms    int // 0 means no cap; only MaxAttempts bounds the loop

	// Scatter.
	ScatterTrials int

	Seed int64
}

// DefaultConfig returns the classic 80x50 rooms-and-corridors setup.
func DefaultConfig() Config {
	return Config{
		MapWidth:      80,
		MapHeight:     50,
		Strategy:      StrategyRoomsAndCorridors,
		MinRoomSize:   6,
		MaxRoomSize:   10,
		MaxAttempts:   30,
		ScatterTrials: 400,
	}
}

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("invalid generator config")

// Validate rejects parameters no level can satisfy.
func (c Config) Validate() error {
	if c.MapWidth < 3 || c.MapHeight < 3 {
		return fmt.Errorf("%w: map %dx%d is smaller than 3x3", ErrInvalidConfig, c.MapWidth, c.MapHeight)
	}
	switch c.Strategy {
	case StrategyRoomsAndCorridors:
		if c.MinRoomSize < MinRoomSizeLimit || c.MaxRoomSize < c.MinRoomSize {
			return fmt.Errorf("%w: room size range [%d,%d]", ErrInvalidConfig, c.MinRoomSize, c.MaxRoomSize)
		}
		if c.MaxAttempts < 1 {
			return fmt.Errorf("%w: max attempts %d", ErrInvalidConfig, c.MaxAttempts)
		}
		if c.MaxRooms < 0 {
			return fmt.Errorf("%w: max rooms %d", ErrInvalidConfig, c.MaxRooms)
		}
	case StrategyScatter:
		if c.ScatterTrials < 0 {
			return fmt.Errorf("%w: scatter trials %d", ErrInvalidConfig, c.ScatterTrials)
		}
	default:
		return fmt.Errorf("%w: %v", ErrInvalidConfig, c.Strategy)
	}
	return nil
}
