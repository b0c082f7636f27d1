package generation

import (
	"fmt"

	"crypthack/geometry"
	"crypthack/grid"
)

// TileSpawner turns committed rooms, corridors and entrances into surfaces.
// Each record is materialized once, the first time SpawnPending sees it.
type TileSpawner struct {
	surfaces grid.Spawner
}

// NewTileSpawner creates a tile spawner that places surfaces through s
func NewTileSpawner(s grid.Spawner) *TileSpawner {
	return &TileSpawner{surfaces: s}
}

// SpawnPending materializes every record not spawned yet: rooms first, then
// corridors, then entrances. It returns how many of each were spawned.
func (t *TileSpawner) SpawnPending(m *grid.GridMap, reg *Registry) (rooms, exits, entrances int) {
	for _, room := range reg.Rooms() {
		if !room.Spawned {
			t.SpawnRoom(m, room)
			rooms++
		}
	}
	for _, exit := range reg.Exits() {
		if !exit.Spawned {
			t.SpawnExit(m, exit)
			exits++
		}
	}
	for _, entrance := range reg.Entrances() {
		if !entrance.Spawned {
			t.SpawnEntrance(m, entrance)
			entrances++
		}
	}
	return rooms, exits, entrances
}

// SpawnRoom clears the room volume and puts surfaces on every outer face
func (t *TileSpawner) SpawnRoom(m *grid.GridMap, room *Room) {
	mn, mx := room.Rect.Min(), room.Rect.Max()

	room.Rect.Each(func(p geometry.Vec3) {
		m.ClearPosition(t.surfaces, p)

		if p.Y == mx.Y {
			m.Place(t.surfaces, room.Ceiling, geometry.Ceiling, p)
		}
		if p.Z == mx.Z {
			m.Place(t.surfaces, room.Walls, geometry.North, p)
		}
		if p.X == mx.X {
			m.Place(t.surfaces, room.Walls, geometry.East, p)
		}
		if p.Y == mn.Y {
			m.Place(t.surfaces, room.Floor, geometry.Floor, p)
		}
		if p.Z == mn.Z {
			m.Place(t.surfaces, room.Walls, geometry.South, p)
		}
		if p.X == mn.X {
			m.Place(t.surfaces, room.Walls, geometry.West, p)
		}
	})
	room.Spawned = true
}

// SpawnExit opens the wall the corridor starts from, lays every voxel in
// between and opens whatever the corridor runs into.
// It panics if two consecutive points are not straight or a quarter turn apart.
func (t *TileSpawner) SpawnExit(m *grid.GridMap, exit *PathExit) {
	exit.Spawned = true

	path := exit.Path
	if len(path) < 2 {
		// The walk left the grid on its first step, there is nothing to open onto
		return
	}

	last := len(path) - 1
	for i, p := range path {
		switch {
		case i == 0:
			m.ClearTile(t.surfaces, p.Orientation, p.Position)

		case i == last:
			if m.PositionCollides(p.Position) {
				m.ClearTile(t.surfaces, p.Orientation.Opposite(), p.Position)
			} else {
				t.layCorridor(m, exit, p.Position, p.Orientation.Rotate90(true), p.Orientation.Rotate90(false))
			}

		default:
			m.ClearPosition(t.surfaces, p.Position)

			next := path[i+1].Orientation
			switch next {
			case p.Orientation:
				t.layCorridor(m, exit, p.Position, p.Orientation.Rotate90(true), p.Orientation.Rotate90(false))
			case p.Orientation.Rotate90(true):
				t.layCorridor(m, exit, p.Position, p.Orientation, p.Orientation.Rotate90(false))
			case p.Orientation.Rotate90(false):
				t.layCorridor(m, exit, p.Position, p.Orientation, p.Orientation.Rotate90(true))
			default:
				panic(fmt.Sprintf("generation: malformed path at %v: %v followed by %v",
					p.Position, p.Orientation, next))
			}
		}
	}
}

func (t *TileSpawner) layCorridor(m *grid.GridMap, exit *PathExit, p geometry.Vec3, wallA, wallB geometry.Orientation) {
	m.Place(t.surfaces, exit.Walls, wallA, p)
	m.Place(t.surfaces, exit.Walls, wallB, p)
	m.Place(t.surfaces, exit.Ceiling, geometry.Ceiling, p)
	m.Place(t.surfaces, exit.Floor, geometry.Floor, p)
}

// SpawnEntrance opens the wall of the attached room that faces the corridor
func (t *TileSpawner) SpawnEntrance(m *grid.GridMap, entrance *HoleEntrance) {
	m.ClearTile(t.surfaces, entrance.Orientation, entrance.Position)
	entrance.Spawned = true
}
