package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ironrift/component"
	"github.com/lixenwraith/ironrift/config"
	"github.com/lixenwraith/ironrift/core"
	"github.com/lixenwraith/ironrift/engine"
	"github.com/lixenwraith/ironrift/event"
	"github.com/lixenwraith/ironrift/input"
	"github.com/lixenwraith/ironrift/physics"
	"github.com/lixenwraith/ironrift/physics/arena"
)

const testDT = time.Second / 60

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Sim.Seed = 42
	cfg.Battle.UnitsPerTeam = 2
	return cfg
}

// newArenaWorld returns a world on the arena stand-in with its event queue wired
func newArenaWorld(t *testing.T, cfg *config.Config) (*engine.World, *arena.Arena) {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}
	phys := arena.New()
	w := engine.NewWorld(cfg, phys, zerolog.Nop())
	engine.NewScheduler(w, testDT)
	return w, phys
}

// newMockWorld returns a world on an arbitrary collaborator with its event queue wired
func newMockWorld(t *testing.T, phys physics.World) *engine.World {
	t.Helper()
	w := engine.NewWorld(testConfig(), phys, zerolog.Nop())
	engine.NewScheduler(w, testDT)
	return w
}

// addUnit registers unit state against existing handles without touching physics
func addUnit(w *engine.World, team component.TeamID, body physics.BodyHandle, col physics.ColliderHandle) core.Entity {
	e := w.CreateEntity()
	w.Components.Unit.SetComponent(e, component.UnitComponent{Team: team, HP: 3})
	w.Components.Body.SetComponent(e, component.BodyComponent{Body: body, Collider: col})
	w.Components.Contact.SetComponent(e, component.NewContactComponent())
	return e
}

func mustNPC(t *testing.T, w *engine.World, pos mgl64.Vec3, team component.TeamID) core.Entity {
	t.Helper()
	e, err := SpawnNPC(w, pos, team)
	require.NoError(t, err)
	return e
}

// drainEvents returns queued events without dispatching them
func drainEvents(w *engine.World) []event.GameEvent {
	return w.Resources.Event.Queue.Consume()
}

func eventsOf(evs []event.GameEvent, t event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range evs {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

func unitOf(t *testing.T, w *engine.World, e core.Entity) component.UnitComponent {
	t.Helper()
	u, ok := w.Components.Unit.GetComponent(e)
	require.True(t, ok, "entity %d has no unit", e)
	return u
}

// inputStub yields queued frames, then empty ones
type inputStub struct {
	frames []input.Frame
}

func (s *inputStub) Poll() input.Frame {
	if len(s.frames) == 0 {
		return input.Frame{}
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f
}
