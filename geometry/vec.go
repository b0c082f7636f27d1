package geometry

import "fmt"

// Vec3 is an integer lattice coordinate. One unit is one voxel.
type Vec3 struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// V3 is a convenience constructor for Vec3
func V3(x, y, z int) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale multiplies every component by n
func (v Vec3) Scale(n int) Vec3 {
	return Vec3{v.X * n, v.Y * n, v.Z * n}
}

// ManhattanLength returns |x|+|y|+|z|
func (v Vec3) ManhattanLength() int {
	return abs(v.X) + abs(v.Y) + abs(v.Z)
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

// Vec3f is a float vector used for spawn transforms
type Vec3f struct {
	X, Y, Z float64
}

// Float converts an integer coordinate to a float vector
func (v Vec3) Float() Vec3f {
	return Vec3f{float64(v.X), float64(v.Y), float64(v.Z)}
}

// Add returns the component-wise sum
func (v Vec3f) Add(o Vec3f) Vec3f {
	return Vec3f{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
