package system

import (
	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
)

// RespawnSystem runs pending player respawns. It should run after the
// HealthSystem so spawn protection starts counting on the following tick.
type RespawnSystem struct{}

func NewRespawnSystem() *RespawnSystem { return &RespawnSystem{} }

func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach(w, component.RespawnerComponent.Kind(), func(_ ecs.Entity, r *core.Respawner) {
		r.Tick(dt)
	})
}
