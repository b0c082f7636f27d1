package components

import (
	"fmt"

	"crypthack/ecs"
)

// Define component IDs
const (
	Surface   ecs.ComponentID = iota // spawned wall, floor or ceiling panel
	Transform                        // world placement of a surface or actor
	Actor                            // something placed in a room after generation
	Player
	Name       // Name component for storing entity display names
	Camera     // Camera component selecting the layer the viewer draws
	Renderable // flat color an actor is drawn with
)

var componentNames = map[ecs.ComponentID]string{
	Surface:    "Surface",
	Transform:  "Transform",
	Actor:      "Actor",
	Player:     "Player",
	Name:       "Name",
	Camera:     "Camera",
	Renderable: "Renderable",
}

// ComponentName returns a display name for a component ID
func ComponentName(id ecs.ComponentID) string {
	if name, ok := componentNames[id]; ok {
		return name
	}
	return fmt.Sprintf("Component(%d)", id)
}
