package grid

import (
	"fmt"

	"crypthack/config"
	"crypthack/geometry"
)

// SurfaceHandle is an opaque reference to a spawned surface owned by the
// renderer. The grid only keeps it around to despawn the surface later.
type SurfaceHandle uint64

// NoSurface marks an empty slot
const NoSurface SurfaceHandle = 0

// Despawner removes spawned surfaces
type Despawner interface {
	DespawnSurface(h SurfaceHandle)
}

// Spawner creates a static unit panel for a tile in one slot of a voxel
type Spawner interface {
	Despawner
	SpawnSurface(tile geometry.Tile, o geometry.Orientation, p geometry.Vec3) SurfaceHandle
}

// Cell holds one optional surface per orientation
type Cell [geometry.OrientationCount]SurfaceHandle

// IsEmpty reports whether every slot is empty
func (c Cell) IsEmpty() bool {
	return c == Cell{}
}

// Has reports whether the slot for o holds a surface
func (c Cell) Has(o geometry.Orientation) bool {
	return o.Valid() && c[o] != NoSurface
}

// Walls returns the wall orientations holding a surface, in clockwise order
func (c Cell) Walls() []geometry.Orientation {
	walls := make([]geometry.Orientation, 0, 4)
	for _, o := range geometry.Cardinals {
		if c[o] != NoSurface {
			walls = append(walls, o)
		}
	}
	return walls
}

// GridMap is the bounded voxel lattice that records occupancy
type GridMap struct {
	width, height, length int
	cells                 []Cell
}

// New creates an empty grid of the given extent
func New(width, height, length int) *GridMap {
	if width <= 0 || height <= 0 || length <= 0 {
		panic(fmt.Sprintf("grid: invalid extent %dx%dx%d", width, height, length))
	}
	return &GridMap{
		width:  width,
		height: height,
		length: length,
		cells:  make([]Cell, width*height*length),
	}
}

// NewDefault creates an empty grid with the configured default extent
func NewDefault() *GridMap {
	return New(config.GridWidth, config.GridHeight, config.GridLength)
}

// Width is the extent along X
func (m *GridMap) Width() int { return m.width }

// Height is the extent along Y
func (m *GridMap) Height() int { return m.height }

// Length is the extent along Z
func (m *GridMap) Length() int { return m.length }

// Min returns the smallest valid position
func (m *GridMap) Min() geometry.Vec3 {
	return geometry.Vec3{}
}

// Max returns the largest valid position
func (m *GridMap) Max() geometry.Vec3 {
	return geometry.V3(m.width-1, m.height-1, m.length-1)
}

// Bounds returns the whole lattice as a box
func (m *GridMap) Bounds() geometry.Rect3 {
	return geometry.Rect3{Pos1: m.Min(), Pos2: m.Max()}
}

// PositionOOB reports whether p lies outside the grid
func (m *GridMap) PositionOOB(p geometry.Vec3) bool {
	return p.X < 0 || p.Y < 0 || p.Z < 0 ||
		p.X >= m.width || p.Y >= m.height || p.Z >= m.length
}

// Contains reports whether every voxel of r lies inside the grid
func (m *GridMap) Contains(r geometry.Rect3) bool {
	return !m.PositionOOB(r.Min()) && !m.PositionOOB(r.Max())
}

// PositionCollides reports whether any surface occupies the cell at p.
// The caller must check PositionOOB first.
func (m *GridMap) PositionCollides(p geometry.Vec3) bool {
	return !m.At(p).IsEmpty()
}

// At returns a copy of the cell at p. It panics when p is out of bounds.
func (m *GridMap) At(p geometry.Vec3) Cell {
	return m.cells[m.index(p)]
}

// Cell returns the cell at p for modification. It panics when p is out of bounds.
func (m *GridMap) Cell(p geometry.Vec3) *Cell {
	return &m.cells[m.index(p)]
}

func (m *GridMap) index(p geometry.Vec3) int {
	if m.PositionOOB(p) {
		panic(fmt.Sprintf("grid: position %v outside %dx%dx%d", p, m.width, m.height, m.length))
	}
	return p.X + m.width*(p.Y+m.height*p.Z)
}

// ClearPosition despawns every surface at p and empties the cell
func (m *GridMap) ClearPosition(d Despawner, p geometry.Vec3) {
	cell := m.Cell(p)
	for o, h := range cell {
		if h != NoSurface {
			d.DespawnSurface(h)
			cell[o] = NoSurface
		}
	}
}

// ClearTile despawns the surface in one slot at p
func (m *GridMap) ClearTile(d Despawner, o geometry.Orientation, p geometry.Vec3) {
	cell := m.Cell(p)
	if h := cell[o]; h != NoSurface {
		d.DespawnSurface(h)
		cell[o] = NoSurface
	}
}

// Place spawns tile into slot o at p, despawning whatever was there before
func (m *GridMap) Place(s Spawner, tile geometry.Tile, o geometry.Orientation, p geometry.Vec3) SurfaceHandle {
	m.ClearTile(s, o, p)
	h := s.SpawnSurface(tile, o, p)
	m.Cell(p)[o] = h
	return h
}

// Reset despawns every surface in the grid
func (m *GridMap) Reset(d Despawner) {
	it := m.Positions()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		m.ClearPosition(d, p)
	}
}

// Positions iterates over every position of the grid
func (m *GridMap) Positions() *geometry.BoxIterator {
	return geometry.NewBoxIterator(m.Min(), m.Max())
}

// OccupiedCount returns the number of non-empty cells
func (m *GridMap) OccupiedCount() int {
	n := 0
	for _, c := range m.cells {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

// SurfaceCount returns the number of surfaces held by the grid
func (m *GridMap) SurfaceCount() int {
	n := 0
	for _, c := range m.cells {
		for _, h := range c {
			if h != NoSurface {
				n++
			}
		}
	}
	return n
}
