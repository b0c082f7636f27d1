package geometry

import (
	"fmt"
	"math"
)

// Orientation identifies one of the seven surface slots of a voxel
type Orientation int

// Orientations. Center is the zero value and stands for "no directional surface".
const (
	Center Orientation = iota
	Ceiling
	Floor
	North
	East
	South
	West

	// OrientationCount is the number of slots per voxel
	OrientationCount = 7
)

// Cardinals lists the four wall orientations in clockwise order
var Cardinals = [4]Orientation{North, East, South, West}

var orientationNames = [OrientationCount]string{
	Center:  "Center",
	Ceiling: "Ceiling",
	Floor:   "Floor",
	North:   "North",
	East:    "East",
	South:   "South",
	West:    "West",
}

func (o Orientation) String() string {
	if o < 0 || o >= OrientationCount {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return orientationNames[o]
}

// MarshalText encodes the orientation by name
func (o Orientation) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("invalid orientation %d", int(o))
	}
	return []byte(orientationNames[o]), nil
}

// UnmarshalText decodes an orientation name
func (o *Orientation) UnmarshalText(text []byte) error {
	for i, name := range orientationNames {
		if name == string(text) {
			*o = Orientation(i)
			return nil
		}
	}
	return fmt.Errorf("unknown orientation %q", text)
}

// Valid reports whether o is one of the seven orientations
func (o Orientation) Valid() bool {
	return o >= Center && o < OrientationCount
}

// IsCardinal reports whether o is a wall orientation
func (o Orientation) IsCardinal() bool {
	return o == North || o == East || o == South || o == West
}

// Rotate90 turns a wall orientation a quarter turn. Left goes
// North -> West -> South -> East -> North, right is the reverse.
// Anything that is not a wall orientation becomes Center.
func (o Orientation) Rotate90(left bool) Orientation {
	if left {
		switch o {
		case North:
			return West
		case West:
			return South
		case South:
			return East
		case East:
			return North
		}
		return Center
	}

	switch o {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	}
	return Center
}

// Opposite turns a wall orientation 180 degrees
func (o Orientation) Opposite() Orientation {
	return o.Rotate90(true).Rotate90(true)
}

// Step returns the unit vector pointing out of the voxel through the slot.
// It is the offset table translation doubled.
func (o Orientation) Step() Vec3 {
	t := Offset(o).Translation
	return Vec3{int(t.X * 2), int(t.Y * 2), int(t.Z * 2)}
}

// Transformation places a unit panel relative to its voxel center.
// Rotation holds Euler angles in radians, applied X then Y then Z.
type Transformation struct {
	Translation Vec3f
	Rotation    Vec3f
}

var offsets = [OrientationCount]Transformation{
	Center:  {},
	Ceiling: {Translation: Vec3f{0, 0.5, 0}, Rotation: Vec3f{math.Pi, 0, 0}},
	Floor:   {Translation: Vec3f{0, -0.5, 0}},
	North:   {Translation: Vec3f{0, 0, 0.5}, Rotation: Vec3f{-math.Pi / 2, 0, 0}},
	East:    {Translation: Vec3f{0.5, 0, 0}, Rotation: Vec3f{0, 0, math.Pi / 2}},
	South:   {Translation: Vec3f{0, 0, -0.5}, Rotation: Vec3f{math.Pi / 2, 0, 0}},
	West:    {Translation: Vec3f{-0.5, 0, 0}, Rotation: Vec3f{0, 0, -math.Pi / 2}},
}

// Offset returns the spawn transform for a slot. Invalid values get the identity.
func Offset(o Orientation) Transformation {
	if !o.Valid() {
		return Transformation{}
	}
	return offsets[o]
}
