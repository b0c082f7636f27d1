package geometry

import "testing"

func TestRotate90(t *testing.T) {
	tests := []struct {
		in   Orientation
		left bool
		want Orientation
	}{
		{North, true, West},
		{West, true, South},
		{South, true, East},
		{East, true, North},
		{North, false, East},
		{East, false, South},
		{South, false, West},
		{West, false, North},
		{Center, true, Center},
		{Ceiling, true, Center},
		{Floor, false, Center},
	}

	for _, tt := range tests {
		if got := tt.in.Rotate90(tt.left); got != tt.want {
			t.Errorf("%v.Rotate90(%v) = %v, want %v", tt.in, tt.left, got, tt.want)
		}
	}
}

func TestOppositeAndStep(t *testing.T) {
	for _, o := range Cardinals {
		if got := o.Step().Add(o.Opposite().Step()); got != (Vec3{}) {
			t.Errorf("%v step plus opposite step = %v, want zero", o, got)
		}
		if l := o.Step().ManhattanLength(); l != 1 {
			t.Errorf("%v step length = %d, want 1", o, l)
		}
	}

	want := map[Orientation]Vec3{
		North:   {0, 0, 1},
		South:   {0, 0, -1},
		East:    {1, 0, 0},
		West:    {-1, 0, 0},
		Ceiling: {0, 1, 0},
		Floor:   {0, -1, 0},
		Center:  {0, 0, 0},
	}
	for o, v := range want {
		if got := o.Step(); got != v {
			t.Errorf("%v.Step() = %v, want %v", o, got, v)
		}
	}
}

func TestOrientationText(t *testing.T) {
	for i := 0; i < OrientationCount; i++ {
		o := Orientation(i)
		text, err := o.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", i, err)
		}
		var back Orientation
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != o {
			t.Errorf("round trip of %v gave %v", o, back)
		}
	}

	if _, err := Orientation(42).MarshalText(); err == nil {
		t.Error("expected an error for an invalid orientation")
	}
}

func TestNewRect3(t *testing.T) {
	r := NewRect3(V3(0, 0, 0), 6, 1, 6)
	if got := r.Min(); got != V3(0, 0, 0) {
		t.Errorf("Min() = %v, want (0,0,0)", got)
	}
	if got := r.Max(); got != V3(5, 0, 5) {
		t.Errorf("Max() = %v, want (5,0,5)", got)
	}
	if got := r.Volume(); got != 36 {
		t.Errorf("Volume() = %d, want 36", got)
	}
}

func TestRectNormalizes(t *testing.T) {
	r := Rect3{Pos1: V3(5, 3, 1), Pos2: V3(1, 0, 4)}
	if got := r.Min(); got != V3(1, 0, 1) {
		t.Errorf("Min() = %v", got)
	}
	if got := r.Max(); got != V3(5, 3, 4) {
		t.Errorf("Max() = %v", got)
	}
	if !r.Contains(V3(3, 2, 2)) {
		t.Error("expected point inside reversed rect")
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect3(V3(0, 0, 0), 4, 2, 4)

	tests := []struct {
		name string
		b    Rect3
		want bool
	}{
		{"overlap", NewRect3(V3(2, 0, 2), 4, 2, 4), true},
		{"shared layer", NewRect3(V3(3, 0, 0), 4, 2, 4), true},
		{"adjacent", NewRect3(V3(4, 0, 0), 4, 2, 4), false},
		{"above", NewRect3(V3(0, 2, 0), 4, 2, 4), false},
		{"far", NewRect3(V3(20, 0, 20), 2, 1, 2), false},
		{"contained", NewRect3(V3(1, 0, 1), 1, 1, 1), true},
	}

	for _, tt := range tests {
		if got := a.Intersects(tt.b); got != tt.want {
			t.Errorf("%s: Intersects = %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.b.Intersects(a); got != tt.want {
			t.Errorf("%s: reverse Intersects = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestBoxIteratorOrder(t *testing.T) {
	r := NewRect3(V3(1, 1, 1), 2, 2, 2)

	var got []Vec3
	r.Each(func(p Vec3) { got = append(got, p) })

	want := []Vec3{
		{1, 1, 1}, {2, 1, 1}, {1, 2, 1}, {2, 2, 1},
		{1, 1, 2}, {2, 1, 2}, {1, 2, 2}, {2, 2, 2},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBoxIteratorCoversVolume(t *testing.T) {
	r := NewRect3(V3(3, 0, 7), 6, 2, 9)
	seen := make(map[Vec3]bool)
	r.Each(func(p Vec3) {
		if !r.Contains(p) {
			t.Errorf("point %v outside rect", p)
		}
		seen[p] = true
	})
	if len(seen) != r.Volume() {
		t.Errorf("visited %d distinct points, want %d", len(seen), r.Volume())
	}
}

func TestOffsets(t *testing.T) {
	if got := Offset(Center); got != (Transformation{}) {
		t.Errorf("Center offset = %+v, want identity", got)
	}
	if got := Offset(Ceiling).Translation; got != (Vec3f{0, 0.5, 0}) {
		t.Errorf("Ceiling translation = %+v", got)
	}
	if got := Offset(Orientation(99)); got != (Transformation{}) {
		t.Errorf("invalid offset = %+v, want identity", got)
	}
}
