package systems

import (
	"crypthack/ecs"
	"crypthack/generation"
)

// Event type constants
const (
	EventPhaseChanged   ecs.EventType = "phase_changed"
	EventGenerationStep ecs.EventType = "generation_step"
	EventActorSpawned   ecs.EventType = "actor_spawned"
	EventCameraUpdate   ecs.EventType = "camera_update"
)

// PhaseChangedEvent is emitted whenever the generator moves to another phase
type PhaseChangedEvent struct {
	From, To generation.Phase
}

// Type returns the event type
func (e PhaseChangedEvent) Type() ecs.EventType {
	return EventPhaseChanged
}

// GenerationStepEvent is emitted after a generator step that did something
type GenerationStepEvent struct {
	Outcome  generation.GrowOutcome
	Rooms    int
	Exits    int
	Attempts int
	// Surfaces spawned by the tile spawner during this step
	Spawned int
}

// Type returns the event type
func (e GenerationStepEvent) Type() ecs.EventType {
	return EventGenerationStep
}

// ActorSpawnedEvent is emitted when an actor is placed in a room
type ActorSpawnedEvent struct {
	EntityID ecs.EntityID
	Room     generation.RoomID
}

// Type returns the event type
func (e ActorSpawnedEvent) Type() ecs.EventType {
	return EventActorSpawned
}

// CameraUpdateEvent is emitted when the camera moves to another layer
type CameraUpdateEvent struct {
	CameraID ecs.EntityID
	Layer    int
}

// Type returns the event type
func (e CameraUpdateEvent) Type() ecs.EventType {
	return EventCameraUpdate
}
