package component

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID indexes a world's storages. Zero is never issued.
type ComponentID uint32

var registry struct {
	sync.Mutex
	names []string
}

// ComponentKind identifies the storage holding *T values.
type ComponentKind[T any] struct {
	id ComponentID
}

// NewComponentKind issues a fresh id for T. Each call yields a distinct kind,
// so two handles over the same Go type (core.Pose as Transform, say) never
// share a storage.
func NewComponentKind[T any]() ComponentKind[T] {
	registry.Lock()
	defer registry.Unlock()
	registry.names = append(registry.names, fmt.Sprintf("%T", *new(T)))
	return ComponentKind[T]{id: ComponentID(len(registry.names))}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }
func (k ComponentKind[T]) Valid() bool     { return k.id != 0 }

// String names the Go type stored under k, for logs and test failures.
func (k ComponentKind[T]) String() string {
	return KindName(k.id)
}

// KindName returns the type name registered for id.
func KindName(id ComponentID) string {
	registry.Lock()
	defer registry.Unlock()
	if id == 0 || int(id) > len(registry.names) {
		return fmt.Sprintf("kind(%d)", id)
	}
	return registry.names[id-1]
}

// ComponentHandle is the package-level accessor each component file declares.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
