package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/ironrift/audio"
	"github.com/lixenwraith/ironrift/config"
	"github.com/lixenwraith/ironrift/core"
	"github.com/lixenwraith/ironrift/engine"
	"github.com/lixenwraith/ironrift/input"
	"github.com/lixenwraith/ironrift/logging"
	"github.com/lixenwraith/ironrift/parameter"
	"github.com/lixenwraith/ironrift/physics/arena"
	"github.com/lixenwraith/ironrift/render"
	"github.com/lixenwraith/ironrift/status"
	"github.com/lixenwraith/ironrift/system"
)

type options struct {
	configPath string
	headless   bool
	duration   time.Duration // Zero runs until an outcome or a signal
	scale      float64
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to a TOML config file")
	flag.BoolVar(&opts.headless, "headless", false, "Run without the terminal viewer")
	flag.DurationVar(&opts.duration, "duration", 0, "Stop after this much wall time (0 = until the match ends)")
	flag.Float64Var(&opts.scale, "scale", 1, "Radar world units per column")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outcome, err := run(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ironrift: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("match over: %s\n", outcome)
}

// run wires the simulation and blocks until an outcome, cancellation or the duration elapses
func run(ctx context.Context, opts options) (core.Outcome, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return core.OutcomeNone, err
	}
	if opts.headless {
		cfg.Sim.Headless = true
	}

	logger, logCloser, err := logging.Setup(cfg.Log)
	if err != nil {
		return core.OutcomeNone, fmt.Errorf("logging: %w", err)
	}
	defer logCloser.Close()

	world := engine.NewWorld(cfg, arena.New(), logger)
	sched := system.Install(world)
	if err := system.Populate(world); err != nil {
		return core.OutcomeNone, fmt.Errorf("populate world: %w", err)
	}

	bridge, err := status.NewBridge(world.Resources.Status, status.Meter())
	if err != nil {
		return core.OutcomeNone, fmt.Errorf("metrics: %w", err)
	}
	defer bridge.Close()

	sound := audio.NewEngine(cfg.Audio, logger)
	if err := sound.Start(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable")
	} else {
		world.Resources.Audio.Player = sound
		defer sound.Stop()
	}

	if opts.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.duration)
		defer cancel()
	}

	if cfg.Sim.Headless {
		return runSimulation(ctx, sched, logger)
	}
	return runInteractive(ctx, world, sched, opts.scale, logger)
}

// runSimulation treats cancellation and timeout as a normal stop without outcome
func runSimulation(ctx context.Context, sched *engine.Scheduler, logger zerolog.Logger) (core.Outcome, error) {
	outcome, err := sched.Run(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		logger.Info().Int64("frame", sched.Frame()).Msg("simulation stopped")
		return core.OutcomeNone, nil
	}
	return outcome, err
}

func runInteractive(ctx context.Context, world *engine.World, sched *engine.Scheduler, scale float64, logger zerolog.Logger) (core.Outcome, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return core.OutcomeNone, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return core.OutcomeNone, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	core.SetCrashCleanup(screen.Fini)

	mapper := input.NewMapper(nil, nil)
	world.Resources.Input.Source = mapper
	viewer := render.NewViewer(screen, world, scale)

	// PollEvent returns nil once the screen is finalized
	core.Go(func() { pollEvents(screen, mapper, viewer) })

	g, gctx := errgroup.WithContext(ctx)
	viewCtx, stopView := context.WithCancel(gctx)

	var outcome core.Outcome
	g.Go(func() error {
		defer stopView()
		var err error
		outcome, err = runSimulation(gctx, sched, logger)
		return err
	})
	g.Go(func() error {
		return viewer.Run(viewCtx)
	})

	err = g.Wait()
	if outcome != core.OutcomeNone {
		time.Sleep(parameter.OutcomeDisplayHold)
	}
	screen.Fini()
	core.SetCrashCleanup(nil)
	return outcome, err
}

func pollEvents(screen tcell.Screen, mapper *input.Mapper, viewer *render.Viewer) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			viewer.Resize()
			continue
		}
		mapper.HandleEvent(ev)
	}
}
