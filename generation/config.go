package generation

import (
	"fmt"

	"crypthack/config"
	"crypthack/geometry"
)

// Range is a pair of integer bounds. Whether Max is inclusive depends on the field.
type Range struct {
	Min, Max int
}

// Config holds every tunable of a generation run
type Config struct {
	GridWidth, GridHeight, GridLength int

	RoomSize   Range // width and length, Max exclusive
	RoomHeight Range // Max exclusive

	Turns    Range // turns per corridor, inclusive
	Distance Range // voxels per corridor leg, inclusive

	MinRooms    int // rooms needed for a run to succeed
	MaxAttempts int // grow steps before the run is judged

	// MaxExitsPerRoom stops a room from being picked once it has grown this
	// many corridors. Zero means no cap.
	MaxExitsPerRoom int

	// Tiles dress the seed room. Grown rooms inherit from their corridor.
	Tiles TileSet
}

// TileSet is the ceiling, wall and floor tile of a room or corridor
type TileSet struct {
	Ceiling, Walls, Floor geometry.Tile
}

// UniformTiles uses t for every surface
func UniformTiles(t geometry.Tile) TileSet {
	return TileSet{Ceiling: t, Walls: t, Floor: t}
}

// DefaultConfig returns the configured defaults
func DefaultConfig() Config {
	return Config{
		GridWidth:       config.GridWidth,
		GridHeight:      config.GridHeight,
		GridLength:      config.GridLength,
		RoomSize:        Range{config.MinRoomSize, config.MaxRoomSize},
		RoomHeight:      Range{config.MinRoomHeight, config.MaxRoomHeight},
		Turns:           Range{config.MinTurns, config.MaxTurns},
		Distance:        Range{config.MinDistance, config.MaxDistance},
		MinRooms:        config.MinRooms,
		MaxAttempts:     config.MaxAttempts,
		MaxExitsPerRoom: config.MaxExitsPerRoom,
		Tiles:           UniformTiles(geometry.Tile{Mesh: config.DefaultMesh, Material: config.DefaultMaterial}),
	}
}

// Validate checks that the ranges can be sampled and that a seed room fits the grid
func (c Config) Validate() error {
	if c.GridWidth <= 0 || c.GridHeight <= 0 || c.GridLength <= 0 {
		return fmt.Errorf("grid extent %dx%dx%d must be positive", c.GridWidth, c.GridHeight, c.GridLength)
	}
	if c.RoomSize.Min < 1 || c.RoomSize.Max <= c.RoomSize.Min {
		return fmt.Errorf("room size range [%d,%d) is empty or below 1", c.RoomSize.Min, c.RoomSize.Max)
	}
	if c.RoomHeight.Min < 1 || c.RoomHeight.Max <= c.RoomHeight.Min {
		return fmt.Errorf("room height range [%d,%d) is empty or below 1", c.RoomHeight.Min, c.RoomHeight.Max)
	}
	if c.RoomSize.Max > c.GridWidth || c.RoomSize.Max > c.GridLength {
		return fmt.Errorf("room size %d does not fit grid %dx%d", c.RoomSize.Max, c.GridWidth, c.GridLength)
	}
	if c.RoomHeight.Max > c.GridHeight {
		return fmt.Errorf("room height %d does not fit grid height %d", c.RoomHeight.Max, c.GridHeight)
	}
	if c.Turns.Min < 0 || c.Turns.Max < c.Turns.Min {
		return fmt.Errorf("turn range [%d,%d] is invalid", c.Turns.Min, c.Turns.Max)
	}
	if c.Distance.Min < 1 || c.Distance.Max < c.Distance.Min {
		return fmt.Errorf("distance range [%d,%d] is invalid", c.Distance.Min, c.Distance.Max)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max attempts %d must be at least 1", c.MaxAttempts)
	}
	if c.MinRooms < 0 {
		return fmt.Errorf("min rooms %d must not be negative", c.MinRooms)
	}
	if c.MaxExitsPerRoom < 0 {
		return fmt.Errorf("max exits per room %d must not be negative", c.MaxExitsPerRoom)
	}
	return nil
}
