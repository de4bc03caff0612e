package ecs

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// World is the central entity registry and component store. Each component
// kind lives in its own table keyed by entity ID.
type World struct {
	nextID     EntityID
	alive      mapset.Set[EntityID]
	components map[ComponentType]map[EntityID]Component
	doomed     []EntityID
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      mapset.New[EntityID](),
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive.Put(id)
	return id
}

// DestroyEntity schedules the entity for removal at the next Maintain.
// The entity and its components stay visible to queries until then.
func (w *World) DestroyEntity(id EntityID) {
	if !w.alive.Has(id) {
		return
	}
	w.doomed = append(w.doomed, id)
}

// Maintain applies deferred structural changes. Call it at a frame boundary.
func (w *World) Maintain() {
	for _, id := range w.doomed {
		if !w.alive.Has(id) {
			continue
		}
		w.alive.Remove(id)
		for _, store := range w.components {
			delete(store, id)
		}
	}
	w.doomed = w.doomed[:0]
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive.Has(id)
}

// Count returns the number of alive entities.
func (w *World) Count() int {
	return w.alive.Size()
}

// Add attaches a component to an entity, replacing any existing one of
// the same type.
func (w *World) Add(id EntityID, c Component) {
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Query returns all alive entities that have every listed component type,
// in ascending ID order so systems visit entities in the same order every
// frame.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	store := w.components[smallest]
	if store == nil {
		return nil
	}
	var result []EntityID
	for id := range store {
		if !w.alive.Has(id) {
			continue
		}
		match := true
		for _, t := range types {
			if t == smallest {
				continue
			}
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}
