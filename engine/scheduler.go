package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/ironrift/core"
	"github.com/lixenwraith/ironrift/event"
)

// Scheduler runs simulation systems on a fixed tick
// Events emitted by a system are dispatched before the next system runs
type Scheduler struct {
	world        *World
	router       *event.Router
	timeRes      *TimeResource
	tickInterval time.Duration

	frame   atomic.Int64
	elapsed time.Duration

	log       zerolog.Logger
	statTicks *atomic.Int64
}

// NewScheduler wires the event queue to the world and registers every system that handles events
// Systems must be added to the world before the scheduler is created
func NewScheduler(world *World, tickInterval time.Duration) *Scheduler {
	res := world.Resources
	s := &Scheduler{
		world:        world,
		router:       event.NewRouter(res.Event.Queue),
		timeRes:      res.Time,
		tickInterval: tickInterval,
		log:          res.Log.With().Str("system", "scheduler").Logger(),
		statTicks:    res.Status.Ints.Get("engine.ticks"),
	}
	world.SetEventMetadata(res.Event.Queue, &s.frame)

	for _, sys := range world.Systems() {
		if h, ok := sys.(event.Handler); ok {
			s.router.Register(h)
		}
	}
	return s
}

// RegisterEventHandler adds a non-system handler, must be called before the first Step
func (s *Scheduler) RegisterEventHandler(h event.Handler) {
	s.router.Register(h)
}

// Step executes one tick of dt under the world lock
func (s *Scheduler) Step(dt time.Duration) {
	s.world.RunSafe(func() {
		frame := s.frame.Add(1)
		s.elapsed += dt
		s.timeRes.Update(s.elapsed, dt, frame)

		// Events pushed between ticks, e.g. by spawn helpers at setup
		s.router.DispatchAll()

		for _, sys := range s.world.Systems() {
			sys.Update()
			s.router.DispatchAll()
		}
	})
	s.statTicks.Add(1)
}

// Run steps at the tick interval until the match ends or ctx is cancelled
// Returns the recorded outcome; cancellation returns OutcomeNone with ctx.Err()
func (s *Scheduler) Run(ctx context.Context) (core.Outcome, error) {
	match := s.world.Resources.Match
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	s.log.Info().Dur("tick", s.tickInterval).Msg("simulation started")
	for {
		if match.Over() {
			s.log.Info().Stringer("outcome", match.Outcome()).Int64("frame", s.frame.Load()).Msg("simulation finished")
			return match.Outcome(), nil
		}

		select {
		case <-ctx.Done():
			return core.OutcomeNone, ctx.Err()
		case <-ticker.C:
			s.Step(s.tickInterval)
		}
	}
}

// Frame returns the number of completed ticks
func (s *Scheduler) Frame() int64 {
	return s.frame.Load()
}
