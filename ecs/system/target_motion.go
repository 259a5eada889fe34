package system

import (
	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
)

// TargetMotionSystem moves targets that carry a motion pattern.
type TargetMotionSystem struct{}

func NewTargetMotionSystem() *TargetMotionSystem { return &TargetMotionSystem{} }

func (s *TargetMotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach2(w, component.TargetMotionComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, m *core.TargetMotion, t *component.Transform) {
		m.Step(dt, t)
	})
}
