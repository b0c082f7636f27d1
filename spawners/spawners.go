package spawners

import (
	"fmt"

	"crypthack/components"
	"crypthack/data"
	"crypthack/ecs"
	"crypthack/generation"
	"crypthack/geometry"
)

// ActorSpawner creates actors and cameras from templates
type ActorSpawner struct {
	world           *ecs.World
	templateManager *data.TemplateManager
	logMessage      func(string) // Function for logging messages
}

// NewActorSpawner creates a new actor spawner
func NewActorSpawner(world *ecs.World, templateManager *data.TemplateManager, logFunc func(string)) *ActorSpawner {
	return &ActorSpawner{
		world:           world,
		templateManager: templateManager,
		logMessage:      logFunc,
	}
}

// CreateActor places the actor described by templateID at position inside room
func (s *ActorSpawner) CreateActor(templateID string, position geometry.Vec3, room generation.RoomID) (*ecs.Entity, error) {
	template, exists := s.templateManager.GetActor(templateID)
	if !exists {
		return nil, fmt.Errorf("no template found for actor type '%s'", templateID)
	}

	actorEntity := s.world.CreateEntity()
	s.world.TagEntity(actorEntity.ID, "actor")
	for _, tag := range template.Tags {
		s.world.TagEntity(actorEntity.ID, tag)
	}

	s.world.AddComponent(actorEntity.ID, components.Actor, &components.ActorComponent{
		Position: position,
		Room:     room,
	})
	s.world.AddComponent(actorEntity.ID, components.Transform, &components.TransformComponent{
		Translation: position.Float(),
	})
	s.world.AddComponent(actorEntity.ID, components.Name, components.NewNameComponent(template.Name, template.ID))
	s.world.AddComponent(actorEntity.ID, components.Renderable, &components.RenderableComponent{
		Color: data.ParseHexColor(template.Color),
	})

	if s.logMessage != nil {
		s.logMessage(fmt.Sprintf("%s placed at %v", template.Name, position))
	}

	return actorEntity, nil
}

// CreatePlayer creates the player actor at the given position
func (s *ActorSpawner) CreatePlayer(position geometry.Vec3, room generation.RoomID) (*ecs.Entity, error) {
	playerEntity, err := s.CreateActor("player", position, room)
	if err != nil {
		return nil, err
	}
	s.world.TagEntity(playerEntity.ID, "player")
	s.world.AddComponent(playerEntity.ID, components.Player, &components.PlayerComponent{})
	return playerEntity, nil
}

// CreateCamera creates a camera entity looking at layer. It starts without a target.
func (s *ActorSpawner) CreateCamera(layer int) *ecs.Entity {
	cameraEntity := s.world.CreateEntity()
	s.world.TagEntity(cameraEntity.ID, "camera")
	s.world.AddComponent(cameraEntity.ID, components.Camera, &components.CameraComponent{Layer: layer})
	return cameraEntity
}
