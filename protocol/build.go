package protocol

import (
	"fmt"

	"crypthack/components"
	"crypthack/ecs"
	"crypthack/generation"
	"crypthack/grid"
)

// Source is everything a snapshot is read from. World may be nil.
type Source struct {
	Generator    *generation.BranchGenerator
	Grid         *grid.GridMap
	World        *ecs.World
	Seed         int64
	Theme        string
	Palette      map[string]string
	Paused       bool
	SurfaceCount int
}

// BuildSnapshot copies the committed generator state into wire types.
// Callers must hold whatever lock serializes generator steps.
func BuildSnapshot(src Source) Snapshot {
	gen := src.Generator
	reg := gen.Registry()
	cfg := gen.Config()

	s := Snapshot{
		ProtocolVersion: ProtocolVersion,
		Seed:            src.Seed,
		Theme:           src.Theme,
		Phase:           gen.Phase().String(),
		Attempts:        gen.Attempts(),
		MaxAttempts:     cfg.MaxAttempts,
		MinRooms:        cfg.MinRooms,
		Restarts:        gen.Restarts(),
		Generation:      reg.Generation(),
		Paused:          src.Paused,
		Grid:            GridExtent{Width: src.Grid.Width(), Height: src.Grid.Height(), Length: src.Grid.Length()},
		Rooms:           make([]RoomLite, 0, reg.RoomCount()),
		Exits:           make([]ExitLite, 0, reg.ExitCount()),
		Entrances:       make([]EntranceLite, 0, reg.EntranceCount()),
		Actors:          []ActorLite{},
		SurfaceCount:    src.SurfaceCount,
		Palette:         src.Palette,
	}

	for i, room := range reg.Rooms() {
		s.Rooms = append(s.Rooms, RoomLite{
			ID:          i,
			Min:         room.Rect.Min(),
			Max:         room.Rect.Max(),
			Floor:       room.Floor.Material,
			Walls:       room.Walls.Material,
			Connections: room.Connections(),
			Spawned:     room.Spawned,
		})
	}

	for i, exit := range reg.Exits() {
		to := -1
		if exit.HasRoom {
			to = exit.To.Index()
		}
		s.Exits = append(s.Exits, ExitLite{
			ID:      i,
			From:    exit.From.Index(),
			To:      to,
			Stop:    exit.Stop.String(),
			Path:    append([]generation.PathPoint(nil), exit.Path...),
			Spawned: exit.Spawned,
		})
	}

	for i, entrance := range reg.Entrances() {
		s.Entrances = append(s.Entrances, EntranceLite{
			ID:          i,
			Room:        entrance.Room.Index(),
			Position:    entrance.Position,
			Orientation: entrance.Orientation,
		})
	}

	if src.World != nil {
		s.Actors = buildActors(src.World)
	}
	return s
}

func buildActors(world *ecs.World) []ActorLite {
	entities := world.GetEntitiesWithComponent(components.Actor)
	actors := make([]ActorLite, 0, len(entities))
	for _, entity := range entities {
		comp, _ := world.GetComponent(entity.ID, components.Actor)
		actor := comp.(*components.ActorComponent)

		lite := ActorLite{
			ID:       uint64(entity.ID),
			Room:     actor.Room.Index(),
			Position: actor.Position,
		}
		if comp, ok := world.GetComponent(entity.ID, components.Name); ok {
			name := comp.(*components.NameComponent)
			lite.Name, lite.Template = name.Name, name.Template
		}
		if renderable, ok := world.GetComponent(entity.ID, components.Renderable); ok {
			c := renderable.(*components.RenderableComponent).Color
			lite.Color = fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
		}
		actors = append(actors, lite)
	}
	return actors
}
