package config

// Grid extent
const (
	GridWidth  = 80
	GridHeight = 10
	GridLength = 40
)

// Room footprint ranges, half open
const (
	MinRoomSize   = 6
	MaxRoomSize   = 10
	MinRoomHeight = 1
	MaxRoomHeight = 3
)

// Corridor ranges, inclusive
const (
	MinTurns    = 1
	MaxTurns    = 4
	MinDistance = 3
	MaxDistance = 10
)

// Termination
const (
	MinRooms    = 3
	MaxAttempts = 30

	// MaxExitsPerRoom caps corridors grown out of one room. Zero disables the cap.
	MaxExitsPerRoom = 3
)

// Asset keys of the default tile set
const (
	DefaultMesh     = "plane"
	DefaultMaterial = "grass"
)
