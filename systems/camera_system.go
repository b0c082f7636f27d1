package systems

import (
	"crypthack/components"
	"crypthack/ecs"
)

// CameraSystem keeps camera layers inside the grid and follows targets
type CameraSystem struct {
	layers int
}

// NewCameraSystem creates a camera system for a grid with the given height
func NewCameraSystem(layers int) *CameraSystem {
	return &CameraSystem{layers: layers}
}

// Update moves every camera to its target's layer, if it has one
func (s *CameraSystem) Update(world *ecs.World, dt float64) {
	for _, cameraEntity := range world.GetEntitiesWithComponent(components.Camera) {
		comp, _ := world.GetComponent(cameraEntity.ID, components.Camera)
		camera := comp.(*components.CameraComponent)

		layer := camera.Layer
		if camera.Target != 0 {
			if actorComp, ok := world.GetComponent(camera.Target, components.Actor); ok {
				layer = actorComp.(*components.ActorComponent).Position.Y
			} else {
				// Target despawned, e.g. by a regenerate
				camera.Target = 0
			}
		}
		s.setLayer(world, cameraEntity.ID, camera, layer)
	}
}

// Shift moves a camera up or down by delta layers and stops following
func (s *CameraSystem) Shift(world *ecs.World, cameraID ecs.EntityID, delta int) {
	comp, ok := world.GetComponent(cameraID, components.Camera)
	if !ok {
		return
	}
	camera := comp.(*components.CameraComponent)
	camera.Target = 0
	s.setLayer(world, cameraID, camera, camera.Layer+delta)
}

// Focus moves a camera to layer without changing what it follows
func (s *CameraSystem) Focus(world *ecs.World, cameraID ecs.EntityID, layer int) {
	comp, ok := world.GetComponent(cameraID, components.Camera)
	if !ok {
		return
	}
	s.setLayer(world, cameraID, comp.(*components.CameraComponent), layer)
}

func (s *CameraSystem) setLayer(world *ecs.World, cameraID ecs.EntityID, camera *components.CameraComponent, layer int) {
	if layer < 0 {
		layer = 0
	}
	if layer > s.layers-1 {
		layer = s.layers - 1
	}
	if layer != camera.Layer {
		camera.Layer = layer
		world.EmitEvent(CameraUpdateEvent{CameraID: cameraID, Layer: layer})
	}
}
