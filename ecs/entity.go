package ecs

// EntityID is a unique identifier for an entity within one World.
// Zero is never issued.
type EntityID uint64

// Entity represents an object in the world
type Entity struct {
	ID EntityID
	// Tags can be used for quick identification (e.g., "surface", "player")
	Tags map[string]bool
}

func newEntity(id EntityID) *Entity {
	return &Entity{
		ID:   id,
		Tags: make(map[string]bool),
	}
}

// HasTag checks if the entity has a specific tag
func (e *Entity) HasTag(tag string) bool {
	return e.Tags[tag]
}
