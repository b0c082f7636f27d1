package ecs

// ComponentID is a unique identifier for component types
type ComponentID uint

// Component is the base interface for all components
type Component interface{}

// componentStore holds every instance of one component type
type componentStore map[EntityID]Component
