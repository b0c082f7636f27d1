package systems

import (
	"fmt"

	"crypthack/ecs"
	"crypthack/generation"
	"crypthack/geometry"
	"crypthack/grid"
	"crypthack/spawners"
)

// GenerationSystem drives the branch generator from the world update loop.
// Every interval it runs one generator step, materializes what the step
// committed and reports phase changes.
type GenerationSystem struct {
	generator *generation.BranchGenerator
	tiles     *generation.TileSpawner
	surfaces  *SurfaceSystem
	actors    *spawners.ActorSpawner
	gridMap   *grid.GridMap

	interval float64
	elapsed  float64
	paused   bool

	spawned []ecs.EntityID
}

// NewGenerationSystem creates a generation system. An interval of zero steps
// on every update.
func NewGenerationSystem(cfg generation.Config, surfaces *SurfaceSystem, actors *spawners.ActorSpawner, seed int64, interval float64) (*GenerationSystem, error) {
	generator, err := generation.NewBranchGenerator(cfg, GetMessageLog().Add)
	if err != nil {
		return nil, err
	}
	generator.SetSeed(seed)

	return &GenerationSystem{
		generator: generator,
		tiles:     generation.NewTileSpawner(surfaces),
		surfaces:  surfaces,
		actors:    actors,
		gridMap:   generator.NewGrid(),
		interval:  interval,
	}, nil
}

// Generator returns the driven generator
func (s *GenerationSystem) Generator() *generation.BranchGenerator { return s.generator }

// Grid returns the voxel grid the generator writes to
func (s *GenerationSystem) Grid() *grid.GridMap { return s.gridMap }

// SetPaused stops or resumes timed stepping. Tick still works while paused.
func (s *GenerationSystem) SetPaused(paused bool) { s.paused = paused }

// Paused reports whether timed stepping is stopped
func (s *GenerationSystem) Paused() bool { return s.paused }

// Update steps the generator once the interval has elapsed
func (s *GenerationSystem) Update(world *ecs.World, dt float64) {
	if s.paused || s.generator.Phase() == generation.PhasePlaying {
		return
	}

	s.elapsed += dt
	if s.elapsed < s.interval {
		return
	}
	s.elapsed = 0
	s.Tick(world)
}

// Tick runs exactly one step of the current phase
func (s *GenerationSystem) Tick(world *ecs.World) generation.GrowOutcome {
	before := s.generator.Phase()

	var outcome generation.GrowOutcome
	switch before {
	case generation.PhaseSpawnActors:
		s.spawnActors(world)
	case generation.PhasePlaying:
		return generation.OutcomeNothing
	default:
		outcome = s.generator.Step(s.gridMap, s.surfaces)
	}

	surfacesBefore := s.surfaces.Count()
	s.tiles.SpawnPending(s.gridMap, s.generator.Registry())

	if outcome != generation.OutcomeNothing {
		reg := s.generator.Registry()
		world.EmitEvent(GenerationStepEvent{
			Outcome:  outcome,
			Rooms:    reg.RoomCount(),
			Exits:    reg.ExitCount(),
			Attempts: s.generator.Attempts(),
			Spawned:  s.surfaces.Count() - surfacesBefore,
		})
	}
	s.emitPhaseChange(world, before)
	return outcome
}

// Regenerate throws the current map away, actors included, and starts over
func (s *GenerationSystem) Regenerate(world *ecs.World) {
	before := s.generator.Phase()

	for _, id := range s.spawned {
		world.RemoveEntity(id)
	}
	s.spawned = nil

	s.generator.Restart(s.gridMap, s.surfaces)
	GetMessageLog().AddTyped("Regenerating map", MessageTypeSystem)
	s.emitPhaseChange(world, before)
}

// spawnActors places the player on the floor of the least connected room and
// hands the map over
func (s *GenerationSystem) spawnActors(world *ecs.World) {
	reg := s.generator.Registry()

	var (
		target generation.RoomID
		best   = -1
	)
	for _, id := range reg.RoomIDs() {
		room := reg.Room(id)
		if best < 0 || room.Connections() < best {
			target, best = id, room.Connections()
		}
	}
	if best < 0 {
		GetMessageLog().AddTyped("No room to place the player in", MessageTypeAlert)
		return
	}

	room := reg.Room(target)
	if len(room.SpawnedActors) == 0 {
		mn, size := room.Rect.Min(), room.Rect.Size()
		position := geometry.V3(mn.X+size.X/2, mn.Y, mn.Z+size.Z/2)

		// Without a player template the map is handed over empty
		if player, err := s.actors.CreatePlayer(position, target); err != nil {
			GetMessageLog().AddTyped(err.Error(), MessageTypeAlert)
		} else {
			room.SpawnedActors = append(room.SpawnedActors, generation.ActorHandle(player.ID))
			s.spawned = append(s.spawned, player.ID)
			world.EmitEvent(ActorSpawnedEvent{EntityID: player.ID, Room: target})
		}
	}

	if err := s.generator.MarkPlaying(); err != nil {
		GetMessageLog().AddTyped(err.Error(), MessageTypeAlert)
	}
}

func (s *GenerationSystem) emitPhaseChange(world *ecs.World, before generation.Phase) {
	if after := s.generator.Phase(); after != before {
		if after == generation.PhaseStartMapGen && before == generation.PhaseMapGen {
			GetMessageLog().AddTyped(fmt.Sprintf("Restart %d", s.generator.Restarts()), MessageTypeAlert)
		}
		world.EmitEvent(PhaseChangedEvent{From: before, To: after})
	}
}
