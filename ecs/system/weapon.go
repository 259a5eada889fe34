package system

import (
	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
)

// WeaponSystem advances cooldowns, empty-cue windows and reloads of every weapon.
type WeaponSystem struct{}

func NewWeaponSystem() *WeaponSystem { return &WeaponSystem{} }

func (s *WeaponSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach(w, component.WeaponComponent.Kind(), func(_ ecs.Entity, wp *core.Weapon) {
		wp.Tick(dt)
	})
}
