package ecs

// System defines an interface for processing entities with specific components
type System interface {
	// Update is called once per host tick
	Update(world *World, dt float64)
}
