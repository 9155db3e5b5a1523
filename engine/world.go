package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/ironrift/config"
	"github.com/lixenwraith/ironrift/core"
	"github.com/lixenwraith/ironrift/event"
	"github.com/lixenwraith/ironrift/input"
	"github.com/lixenwraith/ironrift/physics"
	"github.com/lixenwraith/ironrift/status"
	"github.com/lixenwraith/ironrift/vmath"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Resources  *Resource
	Components ComponentStore
	allStores  []AnyStore

	// Direct pointers for PushEvent, wired by the Scheduler
	eventQueue  *event.EventQueue
	frameSource *atomic.Int64

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a world bound to its physics collaborator
// A zero seed in cfg picks a time based RNG seed
func NewWorld(cfg *config.Config, phys physics.World, logger zerolog.Logger) *World {
	seed := uint64(cfg.Sim.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	w := &World{
		nextEntityID: 1,
		systems:      make([]System, 0),
	}
	initComponentStores(w)

	w.Resources = &Resource{
		Time:    &TimeResource{},
		Config:  cfg,
		Event:   &EventQueueResource{Queue: event.NewEventQueue()},
		Log:     logger,
		Physics: &PhysicsResource{World: phys},
		Input:   &InputResource{Source: &input.Buffer{}},
		Audio:   &AudioResource{},
		Rand:    vmath.NewFastRand(seed),
		Spawn:   &SpawnQueueResource{},
		Match:   &MatchResource{},
		Player:  &PlayerResource{},
		Status:  status.NewRegistry(),
	}
	w.Resources.Status.Bools.Get("engine.strict").Store(cfg.Sim.Strict)

	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.allStores {
		s.RemoveEntity(e)
	}
}

// Exists reports whether any store holds a component for the entity
func (w *World) Exists(e core.Entity) bool {
	for _, s := range w.allStores {
		if s.HasEntity(e) {
			return true
		}
	}
	return false
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Stable insertion so equal priorities keep registration order
	for i := len(w.systems) - 1; i > 0 && w.systems[i].Priority() < w.systems[i-1].Priority(); i-- {
		w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
	}
}

// Systems returns a copy of all registered systems in run order
// Used by Scheduler for event handler auto-registration
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
// Viewers use it to read a consistent snapshot between ticks
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// FrameNumber returns the current tick index
func (w *World) FrameNumber() int64 {
	if w.frameSource == nil {
		return 0
	}
	return w.frameSource.Load()
}

// SetEventMetadata wires the direct pointers for PushEvent
func (w *World) SetEventMetadata(q *event.EventQueue, f *atomic.Int64) {
	w.eventQueue = q
	w.frameSource = f
}

// PushEvent emits an event tagged with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	if w.eventQueue == nil {
		return // Not yet initialized
	}

	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.FrameNumber(),
	})
}

// Violation logs an invariant violation and panics in strict mode
func (w *World) Violation(ev *zerolog.Event, msg string) {
	ev.Msg(msg)
	if w.Resources.Config.Sim.Strict {
		panic("invariant violation: " + msg)
	}
}
