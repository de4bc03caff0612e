package main

import (
	"castle-generator/internal/game"
	"castle-generator/internal/logger"
	"castle-generator/internal/render"
	"castle-generator/internal/telemetry"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML level config file")
	seed := flag.Int64("seed", 0, "level seed (0 picks one from the clock)")
	strategy := flag.String("strategy", "", "generation strategy: rooms or scatter")
	flag.Parse()

	// A missing .env is normal outside development.
	_ = godotenv.Load()

	cfg := game.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = game.LoadConfigFile(*configPath); err != nil {
			return err
		}
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *strategy != "" {
		cfg.Strategy = *strategy
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logOut, closeLog, err := logger.OpenFile("castle-generator.log")
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Init(logOut)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Log.WithError(err).Warn("Telemetry disabled.")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Log.WithError(err).Warn("Telemetry shutdown failed.")
			}
		}()
	}

	sched, err := game.NewScheduler(ctx, cfg)
	if err != nil {
		return err
	}
	logger.Log.WithField("seed", cfg.Seed).Info("Starting.")

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	term := render.NewTerminal(screen)
	return runLoop(ctx, sched, term)
}

// runLoop runs the frame loop on term. A cancelled ctx wakes the blocked
// poll; the watcher exits before the caller finalizes the screen.
func runLoop(ctx context.Context, sched *game.Scheduler, term interruptible) error {
	done := make(chan struct{})
	watcher := make(chan struct{})
	go func() {
		defer close(watcher)
		select {
		case <-ctx.Done():
			term.Interrupt()
		case <-done:
		}
	}()

	err := sched.Run(ctx, term, term)
	close(done)
	<-watcher
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// interruptible is a frame loop front end that can wake a blocked Poll.
type interruptible interface {
	game.InputSource
	game.Renderer
	Interrupt()
}
