package event

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/ironrift/core"
	"github.com/lixenwraith/ironrift/physics"
)

// UnitSpawnedPayload describes a freshly created unit
type UnitSpawnedPayload struct {
	Entity   core.Entity
	Team     uint8
	Position mgl64.Vec3
	Player   bool
}

// BulletImpactPayload names the bullet entity and the collider it touched
type BulletImpactPayload struct {
	Bullet core.Entity
	Other  physics.ColliderHandle
}

// UnitHitPayload describes HP loss on a unit
type UnitHitPayload struct {
	Entity core.Entity
	HP     int
	Killed bool
}

// MatchEndPayload carries the terminal outcome
type MatchEndPayload struct {
	Outcome core.Outcome
}

// SoundRequestPayload contains the sound to play
type SoundRequestPayload struct {
	SoundType core.SoundType
}
