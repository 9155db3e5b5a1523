package physics

//go:generate go tool mockgen -destination=./mocks/world_mock.go -package=mocks . World

import (
	"errors"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrUnknownHandle is returned by collaborators asked about a body or collider they do not hold
var ErrUnknownHandle = errors.New("physics: unknown handle")

// BodyHandle identifies a rigid body inside the physics collaborator
type BodyHandle uint64

// ColliderHandle identifies a collider shape, the key of contact events
type ColliderHandle uint64

// BodyKind selects how a body is integrated
type BodyKind uint8

const (
	BodyDynamic BodyKind = iota
	BodyFixed
)

// BodyDesc describes a rigid body to create
type BodyDesc struct {
	Kind          BodyKind
	Translation   mgl64.Vec3
	Rotation      mgl64.Quat
	LinearVel     mgl64.Vec3
	GravityScale  float64
	LockRotations bool
}

// ShapeKind selects collider geometry
type ShapeKind uint8

const (
	ShapeBall ShapeKind = iota
	ShapeCapsuleY
	ShapeCuboid
)

// ColliderDesc describes a collider attached to a body
// Ball uses Radius; CapsuleY uses HalfHeight and Radius; Cuboid uses HalfExtents
type ColliderDesc struct {
	Shape       ShapeKind
	Radius      float64
	HalfHeight  float64
	HalfExtents mgl64.Vec3
	Tag         Tag
}

// ContactKind discriminates contact events
type ContactKind uint8

const (
	ContactStarted ContactKind = iota
	ContactStopped
)

// ContactEvent reports two colliders beginning or ceasing to overlap during the last step
// Handle order within an event is unspecified
type ContactEvent struct {
	Kind ContactKind
	A, B ColliderHandle
}

// World is the external physics collaborator consumed by the simulation core
// Implementations own integration, broad phase and contact generation
type World interface {
	// Step integrates all bodies by dt and queues the resulting contact events
	Step(dt time.Duration)

	// DrainContactEvents returns and clears events queued since the last drain, in arrival order
	DrainContactEvents() []ContactEvent

	CreateBody(desc BodyDesc) BodyHandle
	CreateCollider(desc ColliderDesc, body BodyHandle) (ColliderHandle, error)

	// RemoveBody deletes a body and its colliders; unknown handles are ignored
	RemoveBody(h BodyHandle)

	Translation(h BodyHandle) (mgl64.Vec3, error)
	Rotation(h BodyHandle) (mgl64.Quat, error)
	SetPose(h BodyHandle, translation mgl64.Vec3, rotation mgl64.Quat) error
	LinearVelocity(h BodyHandle) (mgl64.Vec3, error)
	SetLinearVelocity(h BodyHandle, v mgl64.Vec3) error

	// ColliderTag returns the tag attached at creation
	ColliderTag(h ColliderHandle) (Tag, error)
}
