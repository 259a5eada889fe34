package component

import (
	"github.com/go-gl/mathgl/mgl64"

	core "github.com/milk9111/vrarena/component"
)

var WeaponComponent = NewComponent[core.Weapon]()

var MagazineSocketComponent = NewComponent[core.MagazineSocket]()

// WeaponMount places a held weapon relative to its carrier.
type WeaponMount struct {
	Offset mgl64.Vec3
	Hand   core.Hand
}

// MuzzlePose returns the world pose of the muzzle for a carrier at pose.
func (m WeaponMount) MuzzlePose(pose core.Pose) core.Pose {
	return core.Pose{Position: pose.Transform(m.Offset), Rotation: pose.Rotation}
}

var WeaponMountComponent = NewComponent[WeaponMount]()

var ProjectileComponent = NewComponent[core.Projectile]()
