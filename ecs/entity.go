package ecs

import "fmt"

// Entity is a versioned handle: the low 32 bits index a slot and the high 32
// bits count how often that slot was reused. A handle to a destroyed actor,
// hitbox or projectile never aliases the entity that later takes its slot.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID           { return entityID(uint32(e)) }
func (e Entity) generation() generation { return generation(uint32(uint64(e) >> entityIDBits)) }
func (e Entity) Valid() bool            { return e.id() > 0 }
func (e Entity) Slot() uint32           { return uint32(e.id()) }
func (e Entity) Generation() uint32     { return uint32(e.generation()) }

// String renders slot and generation, e.g. "7v2".
func (e Entity) String() string {
	return fmt.Sprintf("%dv%d", e.Slot(), e.Generation())
}
