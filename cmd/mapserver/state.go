package main

import (
	"fmt"
	"sync"

	"crypthack/data"
	"crypthack/ecs"
	"crypthack/generation"
	"crypthack/protocol"
	"crypthack/spawners"
	"crypthack/systems"
)

// MapState owns one generation run. Every method takes the lock, so the
// generator and the tile spawner never run concurrently with a reader.
type MapState struct {
	Lock sync.Mutex

	templates *data.TemplateManager
	theme     *data.ThemeTemplate
	seed      int64

	world      *ecs.World
	surfaces   *systems.SurfaceSystem
	generation *systems.GenerationSystem

	// phase changes seen since the last drain
	phaseChanges []protocol.PhaseChanged
}

// NewMapState builds a run for seed dressed in theme
func NewMapState(templates *data.TemplateManager, theme *data.ThemeTemplate, seed int64) (*MapState, error) {
	s := &MapState{templates: templates, theme: theme}
	if err := s.reset(seed); err != nil {
		return nil, err
	}
	return s, nil
}

// reset replaces the world with a fresh one. Callers hold the lock or own s exclusively.
func (s *MapState) reset(seed int64) error {
	cfg := generation.DefaultConfig()
	cfg.Tiles = s.theme.Tiles()

	world := ecs.NewWorld()
	surfaces := systems.NewSurfaceSystem(world)
	actors := spawners.NewActorSpawner(world, s.templates, systems.GetMessageLog().Add)
	gen, err := systems.NewGenerationSystem(cfg, surfaces, actors, seed, 0)
	if err != nil {
		return fmt.Errorf("failed to create generation system: %w", err)
	}
	world.AddSystem(gen)

	world.GetEventManager().Subscribe(systems.EventPhaseChanged, func(e ecs.Event) {
		change := e.(systems.PhaseChangedEvent)
		s.phaseChanges = append(s.phaseChanges, protocol.PhaseChanged{From: change.From.String(), To: change.To.String()})
	})

	s.seed = seed
	s.world = world
	s.surfaces = surfaces
	s.generation = gen
	s.phaseChanges = nil
	return nil
}

// Advance runs one step unless the run is paused or finished. ok is false if
// nothing ran.
func (s *MapState) Advance() (step protocol.StepApplied, changes []protocol.PhaseChanged, ok bool) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	if s.generation.Paused() || s.generation.Generator().Phase() == generation.PhasePlaying {
		return step, nil, false
	}
	return s.stepLocked()
}

// Step runs one step even while paused
func (s *MapState) Step() (protocol.StepApplied, []protocol.PhaseChanged, bool) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	if s.generation.Generator().Phase() == generation.PhasePlaying {
		return protocol.StepApplied{}, nil, false
	}
	return s.stepLocked()
}

func (s *MapState) stepLocked() (protocol.StepApplied, []protocol.PhaseChanged, bool) {
	before := s.surfaces.Count()
	outcome := s.generation.Tick(s.world)

	step := protocol.StepApplied{
		Outcome:  outcome.String(),
		Spawned:  s.surfaces.Count() - before,
		Snapshot: s.snapshotLocked(),
	}
	changes := s.phaseChanges
	s.phaseChanges = nil
	return step, changes, true
}

// Regenerate wipes the map. A nil seed keeps the current random stream,
// otherwise the run is rebuilt around the new seed.
func (s *MapState) Regenerate(seed *int64) (protocol.Snapshot, error) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	if seed != nil {
		paused := s.generation.Paused()
		if err := s.reset(*seed); err != nil {
			return protocol.Snapshot{}, err
		}
		s.generation.SetPaused(paused)
	} else {
		s.generation.Regenerate(s.world)
		s.phaseChanges = nil
	}
	return s.snapshotLocked(), nil
}

// SetPaused stops or resumes timed stepping
func (s *MapState) SetPaused(paused bool) protocol.Snapshot {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	s.generation.SetPaused(paused)
	return s.snapshotLocked()
}

// Snapshot returns the current state
func (s *MapState) Snapshot() protocol.Snapshot {
	s.Lock.Lock()
	defer s.Lock.Unlock()
	return s.snapshotLocked()
}

func (s *MapState) snapshotLocked() protocol.Snapshot {
	return protocol.BuildSnapshot(protocol.Source{
		Generator:    s.generation.Generator(),
		Grid:         s.generation.Grid(),
		World:        s.world,
		Seed:         s.seed,
		Theme:        s.theme.ID,
		Palette:      s.theme.Palette,
		Paused:       s.generation.Paused(),
		SurfaceCount: s.surfaces.Count(),
	})
}
