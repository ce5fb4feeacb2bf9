package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID identifies one registered component kind.
type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentHandle is the typed key used to store and fetch T on an entity.
type ComponentHandle[T any] struct {
	id ComponentID
}

// NewComponent registers a new component kind for T.
func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (h ComponentHandle[T]) ID() ComponentID {
	return h.id
}

func (h ComponentHandle[T]) Valid() bool {
	return h.id != 0
}
