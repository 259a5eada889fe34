package system

import (
	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
)

// AIWeaponSystem starts reloads for empty AI weapons.
type AIWeaponSystem struct{}

func NewAIWeaponSystem() *AIWeaponSystem { return &AIWeaponSystem{} }

func (s *AIWeaponSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach(w, component.AIWeaponComponent.Kind(), func(_ ecs.Entity, h *core.AIWeaponHandler) {
		h.Tick(dt)
	})
}
