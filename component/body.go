package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/ironrift/physics"
)

// BodyComponent pairs an entity with its rigid body and primary collider
type BodyComponent struct {
	Body     physics.BodyHandle
	Collider physics.ColliderHandle
}

// TerrainComponent marks static arena geometry
type TerrainComponent struct {
	HalfExtents mgl64.Vec3 // Box half size, for viewers
}
