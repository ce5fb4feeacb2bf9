package ecs

import "github.com/milk9111/deskcat/ecs/component"

// Add attaches value to e, replacing any existing component of the same kind.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	if w == nil || !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if !handle.Valid() {
		return component.ErrInvalidComponentKind
	}
	v := value
	w.store(handle.ID()).Set(e.id(), &v)
	return nil
}

// Remove detaches the component of handle's kind from e.
func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	set, ok := w.stores[handle.ID()]
	if !ok {
		return false
	}
	return set.Remove(e.id())
}

// Has reports whether e carries a component of handle's kind.
func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	set, ok := w.stores[handle.ID()]
	return ok && set.Has(e.id())
}

// Get returns a pointer to e's component. Writes through the pointer are
// visible to later systems.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if !Has(w, e, handle) {
		return nil, false
	}
	value, ok := w.stores[handle.ID()].Get(e.id()).(*T)
	return value, ok
}

// ForEach calls fn for every live entity with handle's component, in slot order.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	for _, e := range w.Query(handle.ID()) {
		if v, ok := Get(w, e, handle); ok {
			fn(e, v)
		}
	}
}
