package component

import (
	"github.com/go-gl/mathgl/mgl64"

	core "github.com/milk9111/vrarena/component"
)

// ColliderShape is a prism: a circle or axis-aligned box on the ground plane
// extruded vertically from Offset.Y to Offset.Y+Height.
type ColliderShape struct {
	// Radius selects a circle when > 0; otherwise HalfX/HalfZ describe a box.
	Radius float64
	HalfX  float64
	HalfZ  float64
	Height float64
	Offset mgl64.Vec3
}

// Collider registers an entity with the physics world.
type Collider struct {
	Layer  core.LayerMask
	Shapes []ColliderShape
	Static bool
	// Group is the entity whose rays ignore this collider and whose transform it follows.
	// Zero means the collider's own entity.
	Group uint64
}

var ColliderComponent = NewComponent[Collider]()
