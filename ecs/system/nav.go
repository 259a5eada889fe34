package system

import (
	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
)

// NavSystem walks every nav agent along its current path.
type NavSystem struct{}

func NewNavSystem() *NavSystem { return &NavSystem{} }

func (s *NavSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach(w, component.NavAgentComponent.Kind(), func(_ ecs.Entity, a *core.NavAgent) {
		a.Advance(dt)
	})
}
