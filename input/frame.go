package input

import "github.com/go-gl/mathgl/mgl64"

// Keys is a bitmask of held movement keys
type Keys uint8

const (
	KeyForward Keys = 1 << iota
	KeyBack
	KeyLeft
	KeyRight
	KeyJump
)

// Has reports whether every bit of k is set
func (ks Keys) Has(k Keys) bool {
	return ks&k == k
}

// Frame is the semantic input for one tick
// MouseDelta.X turns (yaw), MouseDelta.Y tilts (pitch)
type Frame struct {
	MouseDelta  mgl64.Vec2
	Keys        Keys
	FirePressed bool
	Quit        bool
}

// Source yields the input frame for the next tick; called once per tick by the simulation
type Source interface {
	Poll() Frame
}
