package systems

import (
	"fmt"

	"crypthack/components"
	"crypthack/ecs"
	"crypthack/geometry"
	"crypthack/grid"
)

// SurfaceSystem spawns grid surfaces as world entities. A surface handle is
// the ID of its entity.
type SurfaceSystem struct {
	world *ecs.World
}

// NewSurfaceSystem creates a surface system backed by world
func NewSurfaceSystem(world *ecs.World) *SurfaceSystem {
	return &SurfaceSystem{world: world}
}

// SpawnSurface creates an entity for one panel
func (s *SurfaceSystem) SpawnSurface(tile geometry.Tile, o geometry.Orientation, p geometry.Vec3) grid.SurfaceHandle {
	entity := s.world.CreateEntity()
	s.world.AddComponent(entity.ID, components.Surface, &components.SurfaceComponent{
		Tile:        tile,
		Orientation: o,
		Position:    p,
	})
	s.world.AddComponent(entity.ID, components.Transform, components.NewSurfaceTransform(p, o))
	s.world.TagEntity(entity.ID, "surface")
	return grid.SurfaceHandle(entity.ID)
}

// DespawnSurface removes the entity behind h. Despawning something that is
// not a live surface is a programming error.
func (s *SurfaceSystem) DespawnSurface(h grid.SurfaceHandle) {
	id := ecs.EntityID(h)
	if !s.world.HasComponent(id, components.Surface) {
		panic(fmt.Sprintf("systems: despawn of unknown surface %d", h))
	}
	s.world.RemoveEntity(id)
}

// Count returns the number of live surfaces
func (s *SurfaceSystem) Count() int {
	return len(s.world.GetEntitiesWithTag("surface"))
}

// Layer returns the surfaces in the horizontal slice y, ordered by spawn
func (s *SurfaceSystem) Layer(y int) []*components.SurfaceComponent {
	var layer []*components.SurfaceComponent
	for _, entity := range s.world.GetEntitiesWithComponent(components.Surface) {
		comp, _ := s.world.GetComponent(entity.ID, components.Surface)
		surface := comp.(*components.SurfaceComponent)
		if surface.Position.Y == y {
			layer = append(layer, surface)
		}
	}
	return layer
}
