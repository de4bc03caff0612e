package game

import (
	"context"
	"fmt"
)

// InputSource yields at most one input per frame. Poll may block until the
// user acts.
type InputSource interface {
	Poll(ctx context.Context) (Input, error)
}

// Renderer draws a frame snapshot.
type Renderer interface {
	Draw(Snapshot) error
}

// Run drives the frame loop until the player quits, the input source fails,
// or ctx is cancelled. The initial state is drawn before the first poll.
func (s *Scheduler) Run(ctx context.Context, src InputSource, dst Renderer) error {
	if err := dst.Draw(s.Snapshot()); err != nil {
		return fmt.Errorf("draw initial frame: %w", err)
	}
	for s.state == StateRunning {
		if err := ctx.Err(); err != nil {
			return err
		}
		in, err := src.Poll(ctx)
		if err != nil {
			return fmt.Errorf("poll input: %w", err)
		}
		if s.Tick(ctx, in) == StateQuit {
			break
		}
		if err := dst.Draw(s.Snapshot()); err != nil {
			return fmt.Errorf("draw frame %d: %w", s.frame, err)
		}
	}
	return nil
}
