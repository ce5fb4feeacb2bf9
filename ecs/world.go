package ecs

import (
	"time"

	"github.com/milk9111/deskcat/ecs/component"
)

// World owns entities, their components and the current frame delta.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	delta    time.Duration
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity drops all components of e and invalidates the handle.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, set := range w.stores {
		set.Remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in slot order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.alive()
}

// SetDelta records the time elapsed since the previous frame.
// Negative values are stored as zero.
func (w *World) SetDelta(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	w.delta = dt
}

// Delta is the time elapsed since the previous frame.
func (w *World) Delta() time.Duration {
	if w == nil {
		return 0
	}
	return w.delta
}

func (w *World) store(id component.ComponentID) *SparseSet {
	set, ok := w.stores[id]
	if !ok {
		set = &SparseSet{}
		w.stores[id] = set
	}
	return set
}
