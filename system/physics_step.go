package system

import (
	"github.com/lixenwraith/ironrift/engine"
	"github.com/lixenwraith/ironrift/parameter"
)

// PhysicsSystem advances the physics collaborator by the tick step
type PhysicsSystem struct {
	world *engine.World
}

func NewPhysicsSystem(world *engine.World) engine.System {
	s := &PhysicsSystem{world: world}
	s.Init()
	return s
}

func (s *PhysicsSystem) Init() {}

func (s *PhysicsSystem) Name() string {
	return "physics"
}

func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

func (s *PhysicsSystem) Update() {
	s.world.Resources.Physics.World.Step(s.world.Resources.Time.DeltaTime)
}
