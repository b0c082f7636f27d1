package geometry

// Rect3 is an axis aligned box of voxels with inclusive corners.
// The corners are not required to be ordered; Min and Max normalize them.
type Rect3 struct {
	Pos1, Pos2 Vec3
}

// NewRect3 creates the box spanning origin to origin+(width,height,length)-(1,1,1)
func NewRect3(origin Vec3, width, height, length int) Rect3 {
	return Rect3{
		Pos1: origin,
		Pos2: Vec3{origin.X + width - 1, origin.Y + height - 1, origin.Z + length - 1},
	}
}

// Min returns the smallest corner
func (r Rect3) Min() Vec3 {
	return Vec3{min(r.Pos1.X, r.Pos2.X), min(r.Pos1.Y, r.Pos2.Y), min(r.Pos1.Z, r.Pos2.Z)}
}

// Max returns the largest corner
func (r Rect3) Max() Vec3 {
	return Vec3{max(r.Pos1.X, r.Pos2.X), max(r.Pos1.Y, r.Pos2.Y), max(r.Pos1.Z, r.Pos2.Z)}
}

// Size returns the number of voxels along each axis
func (r Rect3) Size() Vec3 {
	return r.Max().Sub(r.Min()).Add(Vec3{1, 1, 1})
}

// Volume returns the number of voxels in the box
func (r Rect3) Volume() int {
	s := r.Size()
	return s.X * s.Y * s.Z
}

// Center returns the geometric center of the box
func (r Rect3) Center() Vec3f {
	mn, mx := r.Min(), r.Max()
	return Vec3f{
		X: float64(mn.X+mx.X) / 2,
		Y: float64(mn.Y+mx.Y) / 2,
		Z: float64(mn.Z+mx.Z) / 2,
	}
}

// Contains reports whether p lies inside the box
func (r Rect3) Contains(p Vec3) bool {
	mn, mx := r.Min(), r.Max()
	return p.X >= mn.X && p.X <= mx.X &&
		p.Y >= mn.Y && p.Y <= mx.Y &&
		p.Z >= mn.Z && p.Z <= mx.Z
}

// Intersects reports whether the two boxes overlap. Bounds are closed, so
// boxes sharing a layer of voxels intersect.
func (r Rect3) Intersects(other Rect3) bool {
	minA, maxA := r.Min(), r.Max()
	minB, maxB := other.Min(), other.Max()

	return minA.X <= maxB.X && maxA.X >= minB.X &&
		minA.Y <= maxB.Y && maxA.Y >= minB.Y &&
		minA.Z <= maxB.Z && maxA.Z >= minB.Z
}

// Points returns an iterator over every lattice point of the box
func (r Rect3) Points() *BoxIterator {
	return NewBoxIterator(r.Min(), r.Max())
}

// Each calls fn for every lattice point of the box in raster order
func (r Rect3) Each(fn func(Vec3)) {
	it := r.Points()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		fn(p)
	}
}

// BoxIterator walks the points between two inclusive corners,
// x fastest, then y, then z.
type BoxIterator struct {
	position Vec3
	min, max Vec3
}

// NewBoxIterator creates an iterator over [min, max]
func NewBoxIterator(min, max Vec3) *BoxIterator {
	return &BoxIterator{
		position: Vec3{min.X - 1, min.Y, min.Z},
		min:      min,
		max:      max,
	}
}

// Next advances the iterator. The second value is false once the box is exhausted.
func (it *BoxIterator) Next() (Vec3, bool) {
	it.position.X++
	if it.position.X > it.max.X {
		it.position.X = it.min.X
		it.position.Y++
	}
	if it.position.Y > it.max.Y {
		it.position.Y = it.min.Y
		it.position.Z++
	}
	if it.position.Z > it.max.Z {
		return Vec3{}, false
	}
	return it.position, true
}
