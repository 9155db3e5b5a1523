package vmath

import (
	"github.com/go-gl/mathgl/mgl64"
)

var (
	AxisX = mgl64.Vec3{1, 0, 0}
	AxisY = mgl64.Vec3{0, 1, 0}
	AxisZ = mgl64.Vec3{0, 0, 1}

	// LocalForward is the look direction of an unrotated body
	LocalForward = mgl64.Vec3{0, 0, -1}
)

// LookQuat composes yaw (about Y), then pitch (about X), then roll (about Z)
func LookQuat(yaw, pitch, roll float64) mgl64.Quat {
	q := mgl64.QuatRotate(yaw, AxisY)
	q = q.Mul(mgl64.QuatRotate(pitch, AxisX))
	return q.Mul(mgl64.QuatRotate(roll, AxisZ))
}

// LookDir returns the unit look direction for the given orientation
func LookDir(yaw, pitch, roll float64) mgl64.Vec3 {
	return SafeNormalize(LookQuat(yaw, pitch, roll).Rotate(LocalForward))
}

// HorizontalForward projects the look direction onto the XZ plane and normalizes
// Returns zero vector when looking straight up or down
func HorizontalForward(yaw, pitch, roll float64) mgl64.Vec3 {
	dir := LookQuat(yaw, pitch, roll).Rotate(LocalForward)
	dir[1] = 0
	return SafeNormalize(dir)
}

// SafeNormalize returns a unit vector, or zero vector for near-zero input
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < 1e-9 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}
