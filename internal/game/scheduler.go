package game

import (
	"castle-generator/internal/component"
	"castle-generator/internal/ecs"
	"castle-generator/internal/factory"
	"castle-generator/internal/gamemap"
	"castle-generator/internal/generate"
	"castle-generator/internal/logger"
	"castle-generator/internal/system"
	"castle-generator/internal/telemetry"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// State tracks the frame loop state machine.
type State uint8

const (
	StateRunning State = iota
	StateQuit          // terminal
)

func (s State) String() string {
	if s == StateQuit {
		return "quit"
	}
	return "running"
}

// Scheduler owns the level and the entity store and advances them one
// frame per Tick: input first, then visibility, then structural upkeep.
type Scheduler struct {
	world  *ecs.World
	gmap   *gamemap.Map
	player ecs.EntityID
	state  State
	frame  uint64
	log    *logrus.Entry
}

// NewScheduler generates a level from cfg and spawns the player at its
// entry point. Generation failures, including generate.ErrNoRooms, are
// returned wrapped.
func NewScheduler(ctx context.Context, cfg Config) (*Scheduler, error) {
	ctx, span := telemetry.Tracer("game").Start(ctx, "scheduler.new")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("level config: %w", err)
	}
	gcfg, err := cfg.GeneratorConfig()
	if err != nil {
		return nil, fmt.Errorf("level config: %w", err)
	}
	gmap, err := generate.Generate(ctx, gcfg)
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}
	return newScheduler(gmap, cfg.ViewRange), nil
}

// NewSchedulerWithMap runs the frame loop over an existing map, spawning the
// player at gmap.Start.
func NewSchedulerWithMap(gmap *gamemap.Map, viewRange int) *Scheduler {
	return newScheduler(gmap, viewRange)
}

func newScheduler(gmap *gamemap.Map, viewRange int) *Scheduler {
	world := ecs.NewWorld()
	player := factory.NewPlayer(world, gmap.Start.X, gmap.Start.Y, viewRange)

	s := &Scheduler{
		world:  world,
		gmap:   gmap,
		player: player,
		state:  StateRunning,
		log:    logger.Log.WithField("component", "scheduler"),
	}
	// Light the starting view so the first snapshot is not dark.
	system.UpdateVisibility(world, gmap)

	s.log.WithFields(logrus.Fields{
		"width":    gmap.Width,
		"height":   gmap.Height,
		"rooms":    len(gmap.Rooms),
		"start":    gmap.Start,
		"player":   player,
		"entities": world.Count(),
	}).Info("Level loaded.")
	return s
}

// Tick advances one frame with at most one input. Once quit, further
// ticks do nothing.
func (s *Scheduler) Tick(ctx context.Context, in Input) State {
	if s.state == StateQuit {
		return s.state
	}
	_, span := telemetry.Tracer("game").Start(ctx, "frame.tick")
	defer span.End()

	s.frame++
	span.SetAttributes(
		attribute.Int64("frame", int64(s.frame)),
		attribute.String("input", in.String()),
	)

	if in == InputQuit {
		s.state = StateQuit
		s.log.WithField("frame", s.frame).Info("Quit requested.")
		return s.state
	}

	if dx, dy := in.delta(); dx != 0 || dy != 0 {
		result := system.TryMove(s.world, s.gmap, s.player, dx, dy)
		span.SetAttributes(attribute.String("move", result.String()))
		s.log.WithFields(logrus.Fields{
			"frame":  s.frame,
			"input":  in,
			"result": result,
		}).Debug("Move applied.")
	}

	recomputed := system.UpdateVisibility(s.world, s.gmap)
	span.SetAttributes(attribute.Int("viewsheds.recomputed", recomputed))

	s.world.Maintain()
	return s.state
}

// State reports the current loop state.
func (s *Scheduler) State() State { return s.state }

// Frame reports how many ticks have been processed.
func (s *Scheduler) Frame() uint64 { return s.frame }

// Map returns the level. Callers must treat it as read-only.
func (s *Scheduler) Map() *gamemap.Map { return s.gmap }

// World returns the entity store.
func (s *Scheduler) World() *ecs.World { return s.world }

// Player returns the player entity.
func (s *Scheduler) Player() ecs.EntityID { return s.player }

// PlayerPosition returns the player's position, if it has one.
func (s *Scheduler) PlayerPosition() (component.Position, bool) {
	c := s.world.Get(s.player, component.CPosition)
	if c == nil {
		return component.Position{}, false
	}
	return c.(component.Position), true
}
