package config

// Viewer layout configuration
const (
	// CellSize is the size of one voxel in pixels when drawing a layer
	CellSize = 12

	// Map area in cells, matches the default grid footprint
	MapAreaWidth  = GridWidth
	MapAreaLength = GridLength

	// HUDHeight is the number of pixel rows reserved below the map for status text
	HUDHeight = 96

	// Window dimensions in pixels (derived from cell dimensions)
	WindowWidth  = MapAreaWidth * CellSize
	WindowHeight = MapAreaLength*CellSize + HUDHeight
)

// GetScreenDimensions returns the logical screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
