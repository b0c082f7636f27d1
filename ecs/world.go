package ecs

import "sort"

// World manages all entities and components
type World struct {
	nextID   EntityID
	entities map[EntityID]*Entity
	// One store per component type so queries touch only matching entities
	components map[ComponentID]componentStore
	systems    []System
	// Tag-based entity lookup for quick access
	entityTags   map[string]map[EntityID]bool
	eventManager *EventManager
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		entities:     make(map[EntityID]*Entity),
		components:   make(map[ComponentID]componentStore),
		entityTags:   make(map[string]map[EntityID]bool),
		eventManager: NewEventManager(),
	}
}

// CreateEntity creates a new entity and adds it to the world
func (w *World) CreateEntity() *Entity {
	w.nextID++
	entity := newEntity(w.nextID)
	w.entities[entity.ID] = entity
	return entity
}

// RemoveEntity removes an entity, its tags and all its components.
// Removing an unknown entity does nothing.
func (w *World) RemoveEntity(entityID EntityID) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	for tag := range entity.Tags {
		delete(w.entityTags[tag], entityID)
		if len(w.entityTags[tag]) == 0 {
			delete(w.entityTags, tag)
		}
	}
	for _, store := range w.components {
		delete(store, entityID)
	}
	delete(w.entities, entityID)
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.entities)
}

// AddComponent adds a component to an entity, replacing one of the same type
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	if _, exists := w.entities[entityID]; !exists {
		return
	}

	store, exists := w.components[componentID]
	if !exists {
		store = make(componentStore)
		w.components[componentID] = store
	}
	store[entityID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	component, exists := w.components[componentID][entityID]
	return component, exists
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(entityID EntityID, componentID ComponentID) bool {
	_, exists := w.components[componentID][entityID]
	return exists
}

// RemoveComponent removes a component from an entity
func (w *World) RemoveComponent(entityID EntityID, componentID ComponentID) {
	delete(w.components[componentID], entityID)
}

// AddSystem adds a system to the world
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// Update runs every system in registration order
func (w *World) Update(dt float64) {
	for _, system := range w.systems {
		system.Update(w, dt)
	}
}

// GetSystems returns all systems registered in the world
func (w *World) GetSystems() []System {
	return w.systems
}

// TagEntity adds a tag to an entity and updates the tag lookup
func (w *World) TagEntity(entityID EntityID, tag string) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	entity.Tags[tag] = true
	if _, exists := w.entityTags[tag]; !exists {
		w.entityTags[tag] = make(map[EntityID]bool)
	}
	w.entityTags[tag][entityID] = true
}

// GetEntitiesWithTag returns all entities with a specific tag, ordered by ID
func (w *World) GetEntitiesWithTag(tag string) []*Entity {
	ids := make([]EntityID, 0, len(w.entityTags[tag]))
	for id := range w.entityTags[tag] {
		ids = append(ids, id)
	}
	return w.sortedEntities(ids)
}

// GetEntitiesWithComponent returns all entities that have a specific component, ordered by ID
func (w *World) GetEntitiesWithComponent(componentID ComponentID) []*Entity {
	store := w.components[componentID]
	ids := make([]EntityID, 0, len(store))
	for id := range store {
		ids = append(ids, id)
	}
	return w.sortedEntities(ids)
}

// GetEntity returns an entity by its ID, or nil
func (w *World) GetEntity(entityID EntityID) *Entity {
	return w.entities[entityID]
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}

func (w *World) sortedEntities(ids []EntityID) []*Entity {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	entities := make([]*Entity, 0, len(ids))
	for _, id := range ids {
		if entity, ok := w.entities[id]; ok {
			entities = append(entities, entity)
		}
	}
	return entities
}
