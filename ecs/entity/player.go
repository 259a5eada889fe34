package entity

import (
	"github.com/go-gl/mathgl/mgl64"

	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
)

// NewPlayerAt builds the player prefab at pose.
func NewPlayerAt(w *ecs.World, prefab string, env *Env, pose core.Pose) (ecs.Entity, error) {
	return BuildEntityAt(w, prefab, env, pose)
}

// PlayerTarget tracks the first living player. A dead or missing player is no target.
func PlayerTarget(w *ecs.World) core.TargetProvider {
	return core.TargetFunc(func() (mgl64.Vec3, bool) {
		var (
			pos   mgl64.Vec3
			found bool
		)
		ecs.ForEach(w, component.PlayerTagComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag) {
			if found {
				return
			}
			if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && !h.IsAlive() {
				return
			}
			t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
			if !ok {
				return
			}
			pos, found = t.Position, true
		})
		return pos, found
	})
}
