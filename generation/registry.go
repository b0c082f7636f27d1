package generation

import "fmt"

// Handle identifies a record of type T inside one generation of a Registry.
// The zero value never resolves.
type Handle[T any] struct {
	gen uint32
	idx uint32
}

// Valid reports whether the handle was issued by a registry
func (h Handle[T]) Valid() bool {
	return h.gen != 0
}

// Index returns the position of the record in creation order
func (h Handle[T]) Index() int {
	return int(h.idx)
}

func (h Handle[T]) String() string {
	return fmt.Sprintf("%d:%d", h.gen, h.idx)
}

type (
	RoomID     = Handle[Room]
	ExitID     = Handle[PathExit]
	EntranceID = Handle[HoleEntrance]
)

// Registry owns every room, corridor and entrance of the current run.
// Records reference each other only through handles.
type Registry struct {
	generation uint32
	rooms      []*Room
	exits      []*PathExit
	entrances  []*HoleEntrance
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{generation: 1}
}

// Generation is bumped by every Reset
func (r *Registry) Generation() uint32 {
	return r.generation
}

// Reset drops every record. Handles issued before the reset stop resolving.
func (r *Registry) Reset() {
	r.generation++
	r.rooms = nil
	r.exits = nil
	r.entrances = nil
}

// AddRoom stores a room and returns its handle
func (r *Registry) AddRoom(room *Room) RoomID {
	r.rooms = append(r.rooms, room)
	return RoomID{gen: r.generation, idx: uint32(len(r.rooms) - 1)}
}

// AddExit stores a corridor and links it to its originating room
func (r *Registry) AddExit(exit *PathExit) ExitID {
	r.exits = append(r.exits, exit)
	id := ExitID{gen: r.generation, idx: uint32(len(r.exits) - 1)}
	from := r.Room(exit.From)
	from.Exits = append(from.Exits, id)
	return id
}

// AddEntrance stores an entrance and links it to its room
func (r *Registry) AddEntrance(entrance *HoleEntrance) EntranceID {
	r.entrances = append(r.entrances, entrance)
	id := EntranceID{gen: r.generation, idx: uint32(len(r.entrances) - 1)}
	room := r.Room(entrance.Room)
	room.Entrances = append(room.Entrances, id)
	return id
}

// Room resolves a room handle. An unresolvable handle is a programming error.
func (r *Registry) Room(id RoomID) *Room {
	return resolve(r, r.rooms, id, "room")
}

// Exit resolves a corridor handle. An unresolvable handle is a programming error.
func (r *Registry) Exit(id ExitID) *PathExit {
	return resolve(r, r.exits, id, "exit")
}

// Entrance resolves an entrance handle. An unresolvable handle is a programming error.
func (r *Registry) Entrance(id EntranceID) *HoleEntrance {
	return resolve(r, r.entrances, id, "entrance")
}

func resolve[T any](r *Registry, items []*T, h Handle[T], kind string) *T {
	if h.gen != r.generation || int(h.idx) >= len(items) {
		panic(fmt.Sprintf("generation: %s %v does not resolve in generation %d", kind, h, r.generation))
	}
	return items[h.idx]
}

// RoomIDs returns every room handle in creation order
func (r *Registry) RoomIDs() []RoomID {
	ids := make([]RoomID, len(r.rooms))
	for i := range r.rooms {
		ids[i] = RoomID{gen: r.generation, idx: uint32(i)}
	}
	return ids
}

// ExitIDs returns every corridor handle in creation order
func (r *Registry) ExitIDs() []ExitID {
	ids := make([]ExitID, len(r.exits))
	for i := range r.exits {
		ids[i] = ExitID{gen: r.generation, idx: uint32(i)}
	}
	return ids
}

// EntranceIDs returns every entrance handle in creation order
func (r *Registry) EntranceIDs() []EntranceID {
	ids := make([]EntranceID, len(r.entrances))
	for i := range r.entrances {
		ids[i] = EntranceID{gen: r.generation, idx: uint32(i)}
	}
	return ids
}

// Rooms returns the rooms in creation order
func (r *Registry) Rooms() []*Room { return r.rooms }

// Exits returns the corridors in creation order
func (r *Registry) Exits() []*PathExit { return r.exits }

// Entrances returns the entrances in creation order
func (r *Registry) Entrances() []*HoleEntrance { return r.entrances }

// RoomCount is the number of committed rooms
func (r *Registry) RoomCount() int { return len(r.rooms) }

// ExitCount is the number of committed corridors
func (r *Registry) ExitCount() int { return len(r.exits) }

// EntranceCount is the number of committed entrances
func (r *Registry) EntranceCount() int { return len(r.entrances) }
