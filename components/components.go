package components

import (
	"image/color"

	"crypthack/ecs"
	"crypthack/generation"
	"crypthack/geometry"
)

// SurfaceComponent is one unit panel placed in a slot of a voxel
type SurfaceComponent struct {
	Tile        geometry.Tile
	Orientation geometry.Orientation
	Position    geometry.Vec3
}

// TransformComponent stores the world placement of an entity.
// Rotation holds Euler angles in radians.
type TransformComponent struct {
	Translation geometry.Vec3f
	Rotation    geometry.Vec3f
}

// NewSurfaceTransform places a panel for slot o of the voxel at p.
// Voxel centers sit on integer coordinates.
func NewSurfaceTransform(p geometry.Vec3, o geometry.Orientation) *TransformComponent {
	offset := geometry.Offset(o)
	return &TransformComponent{
		Translation: p.Float().Add(offset.Translation),
		Rotation:    offset.Rotation,
	}
}

// ActorComponent stores where an actor was placed
type ActorComponent struct {
	Position geometry.Vec3
	Room     generation.RoomID
}

// PlayerComponent indicates that an entity is controlled by the player
type PlayerComponent struct{}

// CameraComponent selects the Y layer the viewer draws
type CameraComponent struct {
	Layer int
	// Target is followed when set; manual layer changes clear it
	Target ecs.EntityID
}

// RenderableComponent gives an actor its marker color
type RenderableComponent struct {
	Color color.RGBA
}
