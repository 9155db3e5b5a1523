package engine

import (
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/ironrift/component"
	"github.com/lixenwraith/ironrift/config"
	"github.com/lixenwraith/ironrift/core"
	"github.com/lixenwraith/ironrift/event"
	"github.com/lixenwraith/ironrift/input"
	"github.com/lixenwraith/ironrift/physics"
	"github.com/lixenwraith/ironrift/status"
	"github.com/lixenwraith/ironrift/vmath"
)

// Resource holds singleton simulation resources, accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Config *config.Config
	Event  *EventQueueResource
	Log    zerolog.Logger

	// Collaborators
	Physics *PhysicsResource
	Input   *InputResource
	Audio   *AudioResource

	// Simulation state
	Rand   *vmath.FastRand
	Spawn  *SpawnQueueResource
	Match  *MatchResource
	Player *PlayerResource

	// Telemetry
	Status *status.Registry
}

// TimeResource wraps time data for systems
// Updated by the Scheduler at the start of a tick
type TimeResource struct {
	// Elapsed is simulated time since the first tick
	Elapsed time.Duration

	// DeltaTime is the step of the current tick
	DeltaTime time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
// Must be called under world lock to prevent races with systems reads
func (tr *TimeResource) Update(elapsed, deltaTime time.Duration, frameNumber int64) {
	tr.Elapsed = elapsed
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// PhysicsResource wraps the external physics collaborator
type PhysicsResource struct {
	World physics.World
}

// InputResource wraps the input source read once per tick by the player controller
type InputResource struct {
	Source input.Source
}

// AudioPlayer defines the minimal audio interface used by systems
type AudioPlayer interface {
	Play(core.SoundType) bool
}

// AudioResource wraps the audio player, nil Player means silent
type AudioResource struct {
	Player AudioPlayer
}

// SpawnRequest is one queued unit spawn
type SpawnRequest struct {
	Position mgl64.Vec3
	Team     component.TeamID
}

// SpawnQueueResource is the unbounded queue between the battle orchestrator and the spawner
type SpawnQueueResource struct {
	pending []SpawnRequest
}

// Push appends a request
func (q *SpawnQueueResource) Push(req SpawnRequest) {
	q.pending = append(q.pending, req)
}

// Drain returns all pending requests in order and empties the queue
func (q *SpawnQueueResource) Drain() []SpawnRequest {
	out := q.pending
	q.pending = nil
	return out
}

// Len returns the number of pending requests
func (q *SpawnQueueResource) Len() int {
	return len(q.pending)
}

// MatchResource publishes the terminal outcome; the first recorded outcome wins
type MatchResource struct {
	outcome atomic.Uint32
}

// End records the outcome, returns false if the match had already ended
func (m *MatchResource) End(o core.Outcome) bool {
	if o == core.OutcomeNone {
		return false
	}
	return m.outcome.CompareAndSwap(uint32(core.OutcomeNone), uint32(o))
}

// Outcome returns the recorded terminal outcome, OutcomeNone while running
func (m *MatchResource) Outcome() core.Outcome {
	return core.Outcome(m.outcome.Load())
}

// Over reports whether a terminal outcome has been recorded
func (m *MatchResource) Over() bool {
	return m.Outcome() != core.OutcomeNone
}

// PlayerResource holds the locally controlled unit, zero when absent
type PlayerResource struct {
	Entity core.Entity
}
