package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/ironrift/core"
	"github.com/lixenwraith/ironrift/engine"
	"github.com/lixenwraith/ironrift/event"
	"github.com/lixenwraith/ironrift/input"
	"github.com/lixenwraith/ironrift/parameter"
	"github.com/lixenwraith/ironrift/vmath"
)

// PlayerSystem maps the tick's input frame onto the local player's unit
type PlayerSystem struct {
	world *engine.World
	log   zerolog.Logger
}

func NewPlayerSystem(world *engine.World) engine.System {
	s := &PlayerSystem{world: world}
	s.log = world.Resources.Log.With().Str("system", s.Name()).Logger()

	s.Init()
	return s
}

func (s *PlayerSystem) Init() {}

func (s *PlayerSystem) Name() string {
	return "player"
}

func (s *PlayerSystem) Priority() int {
	return parameter.PriorityPlayer
}

func (s *PlayerSystem) Update() {
	src := s.world.Resources.Input.Source
	if src == nil {
		return
	}
	frame := src.Poll()

	if frame.Quit {
		if s.world.Resources.Match.End(core.OutcomeQuit) {
			s.log.Info().Int64("frame", s.world.FrameNumber()).Msg("quit requested")
			s.world.PushEvent(event.EventMatchEnd, &event.MatchEndPayload{Outcome: core.OutcomeQuit})
		}
		return
	}

	e := s.world.Resources.Player.Entity
	if e == 0 {
		return
	}
	s.apply(e, frame)
}

func (s *PlayerSystem) apply(e core.Entity, frame input.Frame) {
	units := s.world.Components.Unit
	players := s.world.Components.Player

	unit, ok := units.GetComponent(e)
	if !ok {
		return
	}
	player, ok := players.GetComponent(e)
	if !ok {
		return
	}
	dt := s.world.Resources.Time.DeltaTime.Seconds()

	// Look, degrees per mouse unit per second
	unit.Yaw -= vmath.Radians(frame.MouseDelta.X() * player.Sensitivity * dt)
	unit.Pitch -= vmath.Radians(frame.MouseDelta.Y() * player.Sensitivity * dt)
	unit.Pitch = vmath.Clamp(unit.Pitch, -math.Pi/2, math.Pi/2)

	forward := vmath.HorizontalForward(unit.Yaw, unit.Pitch, unit.Roll)
	strafe := forward.Cross(vmath.AxisY)

	var intent mgl64.Vec3
	if frame.Keys.Has(input.KeyForward) {
		intent = intent.Add(forward)
	}
	if frame.Keys.Has(input.KeyBack) {
		intent = intent.Sub(forward)
	}
	if frame.Keys.Has(input.KeyLeft) {
		intent = intent.Sub(strafe)
	}
	if frame.Keys.Has(input.KeyRight) {
		intent = intent.Add(strafe)
	}
	if frame.Keys.Has(input.KeyJump) && unit.IsTouchingGround {
		intent[1] += parameter.PlayerJumpImpulse
	}
	unit.Velocity = intent.Mul(player.Speed)

	if player.FireEdge(frame.FirePressed) {
		unit.Shoot = true
	}

	players.SetComponent(e, player)
	units.SetComponent(e, unit)
}
