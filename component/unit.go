package component

import (
	"github.com/go-gl/mathgl/mgl64"
)

// UnitComponent is the combat state of a player or NPC unit
type UnitComponent struct {
	// Orientation in radians, composed yaw (Y) then pitch (X) then roll (Z)
	Yaw   float64
	Pitch float64
	Roll  float64

	// Velocity is the movement intent; Y adds to the body's own vertical velocity
	Velocity mgl64.Vec3

	IsTouchingGround bool

	// Shoot is consumed by the unit state machine on the tick it is observed
	Shoot bool

	Team TeamID

	// HP starts at initial HP and only decreases
	HP int
}

// Alive reports whether HP is still positive
func (u UnitComponent) Alive() bool {
	return u.HP > 0
}
