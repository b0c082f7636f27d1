package generation

import (
	"crypthack/geometry"
)

// ActorHandle refers to an actor placed in a room by the host
type ActorHandle uint64

// Room is a rectangular box of voxels bounded by walls, floor and ceiling
type Room struct {
	Rect    geometry.Rect3
	Ceiling geometry.Tile
	Walls   geometry.Tile
	Floor   geometry.Tile

	// Actors spawned in this room. Check before placing another one.
	SpawnedActors []ActorHandle

	Entrances []EntranceID
	Exits     []ExitID

	Spawned bool
}

// Connections is the number of corridors touching the room
func (r *Room) Connections() int {
	return len(r.Entrances) + len(r.Exits)
}

// PathPoint is one voxel of a corridor and the direction the corridor travels through it
type PathPoint struct {
	Position    geometry.Vec3        `json:"position"`
	Orientation geometry.Orientation `json:"orientation"`
}

// StopReason records why a corridor walk ended early
type StopReason int

const (
	StopNone StopReason = iota
	StopSelfIntersection
	StopOutOfBounds
	StopCollision
)

func (s StopReason) String() string {
	switch s {
	case StopSelfIntersection:
		return "self-intersection"
	case StopOutOfBounds:
		return "out-of-bounds"
	case StopCollision:
		return "collision"
	default:
		return "none"
	}
}

// PathExit is a corridor grown out of a room. The first point sits on the
// wall of the originating room.
type PathExit struct {
	Path []PathPoint

	Ceiling geometry.Tile
	Walls   geometry.Tile
	Floor   geometry.Tile

	From RoomID
	// To is only meaningful when HasRoom is set
	To      RoomID
	HasRoom bool

	Stop StopReason

	Spawned bool
}

// First returns the origin point. The path must not be empty.
func (e *PathExit) First() PathPoint {
	return e.Path[0]
}

// Last returns the terminal point. The path must not be empty.
func (e *PathExit) Last() PathPoint {
	return e.Path[len(e.Path)-1]
}

// Visits reports whether p is one of the path points
func (e *PathExit) Visits(p geometry.Vec3) bool {
	for _, pp := range e.Path {
		if pp.Position == p {
			return true
		}
	}
	return false
}

// IsDeadEnd reports whether no room was attached at the far end
func (e *PathExit) IsDeadEnd() bool {
	return !e.HasRoom
}

// HoleEntrance marks where a corridor punches into a room
type HoleEntrance struct {
	Position    geometry.Vec3
	Orientation geometry.Orientation
	Room        RoomID

	Spawned bool
}
