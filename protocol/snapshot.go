package protocol

import (
	"crypthack/generation"
	"crypthack/geometry"
)

const ProtocolVersion = "v1"

type GridExtent struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Length int `json:"length"`
}

type RoomLite struct {
	ID          int           `json:"id"`
	Min         geometry.Vec3 `json:"min"`
	Max         geometry.Vec3 `json:"max"`
	Floor       string        `json:"floor"`
	Walls       string        `json:"walls"`
	Connections int           `json:"connections"`
	Spawned     bool          `json:"spawned"`
}

type ExitLite struct {
	ID      int                    `json:"id"`
	From    int                    `json:"from"`
	To      int                    `json:"to"` // -1 for a dead end
	Stop    string                 `json:"stop"`
	Path    []generation.PathPoint `json:"path"`
	Spawned bool                   `json:"spawned"`
}

type EntranceLite struct {
	ID          int                  `json:"id"`
	Room        int                  `json:"room"`
	Position    geometry.Vec3        `json:"position"`
	Orientation geometry.Orientation `json:"orientation"`
}

type ActorLite struct {
	ID       uint64        `json:"id"`
	Name     string        `json:"name"`
	Template string        `json:"template"`
	Room     int           `json:"room"`
	Position geometry.Vec3 `json:"position"`
	Color    string        `json:"color,omitempty"`
}

type Snapshot struct {
	ProtocolVersion string            `json:"protocolVersion"`
	Seed            int64             `json:"seed"`
	Theme           string            `json:"theme"`
	Phase           string            `json:"phase"`
	Attempts        int               `json:"attempts"`
	MaxAttempts     int               `json:"maxAttempts"`
	MinRooms        int               `json:"minRooms"`
	Restarts        int               `json:"restarts"`
	Generation      uint32            `json:"generation"`
	Paused          bool              `json:"paused"`
	Grid            GridExtent        `json:"grid"`
	Rooms           []RoomLite        `json:"rooms"`
	Exits           []ExitLite        `json:"exits"`
	Entrances       []EntranceLite    `json:"entrances"`
	Actors          []ActorLite       `json:"actors"`
	SurfaceCount    int               `json:"surfaceCount"`
	Palette         map[string]string `json:"palette"`
}
