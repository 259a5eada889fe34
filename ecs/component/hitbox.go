package component

import core "github.com/milk9111/vrarena/component"

// HitboxComponent lives on child entities whose Collider.Group is the owning actor.
var HitboxComponent = NewComponent[core.Hitbox]()
