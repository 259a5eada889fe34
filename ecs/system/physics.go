package system

import (
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
)

// PhysicsSystem mirrors colliders into the world's PhysicsWorld.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem { return &PhysicsSystem{} }

// Update registers new colliders, moves dynamic ones to their anchor's transform,
// drops colliders whose anchor is gone and refreshes the spatial index.
// A collider whose Group entity died is destroyed along with its entity.
func (s *PhysicsSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	ecs.ForEach(w, component.ColliderComponent.Kind(), func(e ecs.Entity, c *component.Collider) {
		anchor := e
		if c.Group != 0 {
			anchor = ecs.Entity(c.Group)
		}
		if !ecs.IsAlive(w, anchor) {
			pw.Unregister(e)
			ecs.DestroyEntity(w, e)
			return
		}
		t, ok := ecs.Get(w, anchor, component.TransformComponent.Kind())
		if !ok {
			return
		}
		if !pw.Registered(e) {
			pw.Register(e, t.Position, *c)
			return
		}
		if !c.Static {
			pw.SetPosition(e, t.Position)
		}
	})

	for _, owner := range pw.Owners() {
		if !ecs.Has(w, owner, component.ColliderComponent.Kind()) {
			pw.Unregister(owner)
		}
	}

	pw.Reindex()
}

// DestroyWithColliders destroys e together with the collider entities grouped under it.
func DestroyWithColliders(w *ecs.World, e ecs.Entity) {
	pw := w.PhysicsWorld()
	ecs.ForEach(w, component.ColliderComponent.Kind(), func(child ecs.Entity, c *component.Collider) {
		if child == e || ecs.Entity(c.Group) == e {
			pw.Unregister(child)
			if child != e {
				ecs.DestroyEntity(w, child)
			}
		}
	})
	ecs.DestroyEntity(w, e)
}
