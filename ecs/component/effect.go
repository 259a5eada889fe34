package component

import (
	"github.com/go-gl/mathgl/mgl64"

	core "github.com/milk9111/vrarena/component"
)

// Effect is a short-lived visual marker such as a muzzle flash or bullet impact.
type Effect struct {
	Kind   core.EffectKind
	Normal mgl64.Vec3
}

var EffectComponent = NewComponent[Effect]()
