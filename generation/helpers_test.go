package generation

import (
	"testing"

	"crypthack/geometry"
	"crypthack/grid"
)

type surfaceRecord struct {
	tile        geometry.Tile
	orientation geometry.Orientation
	position    geometry.Vec3
}

// recordingSpawner hands out increasing handles and tracks which are alive
type recordingSpawner struct {
	next grid.SurfaceHandle
	live map[grid.SurfaceHandle]surfaceRecord
}

func newRecordingSpawner() *recordingSpawner {
	return &recordingSpawner{live: make(map[grid.SurfaceHandle]surfaceRecord)}
}

func (r *recordingSpawner) SpawnSurface(tile geometry.Tile, o geometry.Orientation, p geometry.Vec3) grid.SurfaceHandle {
	r.next++
	r.live[r.next] = surfaceRecord{tile, o, p}
	return r.next
}

func (r *recordingSpawner) DespawnSurface(h grid.SurfaceHandle) {
	if _, ok := r.live[h]; !ok {
		panic("despawn of unknown surface")
	}
	delete(r.live, h)
}

func newTestGenerator(t *testing.T, cfg Config, seed int64) *BranchGenerator {
	t.Helper()
	g, err := NewBranchGenerator(cfg, nil)
	if err != nil {
		t.Fatalf("NewBranchGenerator: %v", err)
	}
	g.SetSeed(seed)
	return g
}

// checkInvariants verifies the structural guarantees of committed records
func checkInvariants(t *testing.T, m *grid.GridMap, reg *Registry) {
	t.Helper()

	rooms := reg.Rooms()
	for i, room := range rooms {
		room.Rect.Each(func(p geometry.Vec3) {
			if m.PositionOOB(p) {
				t.Fatalf("room %d voxel %v out of bounds", i, p)
			}
		})
		for j := i + 1; j < len(rooms); j++ {
			if room.Rect.Intersects(rooms[j].Rect) {
				t.Fatalf("rooms %d and %d intersect: %v %v", i, j, room.Rect, rooms[j].Rect)
			}
		}
	}

	for i, exit := range reg.Exits() {
		if len(exit.Path) == 0 {
			t.Fatalf("exit %d has an empty path", i)
		}
		from := reg.Room(exit.From)
		if first := exit.First().Position; !from.Rect.Contains(first) || first.Y != from.Rect.Min().Y {
			t.Fatalf("exit %d starts at %v, not on the floor of its room %v", i, first, from.Rect)
		}

		for j, pp := range exit.Path {
			if m.PositionOOB(pp.Position) {
				t.Fatalf("exit %d point %d %v is out of bounds", i, j, pp.Position)
			}
			if !pp.Orientation.IsCardinal() {
				t.Fatalf("exit %d point %d has orientation %v", i, j, pp.Orientation)
			}
			if j == 0 {
				continue
			}
			d := pp.Position.Sub(exit.Path[j-1].Position)
			if d.ManhattanLength() != 1 {
				t.Fatalf("exit %d jumps %v between points %d and %d", i, d, j-1, j)
			}
			if d != pp.Orientation.Step() {
				t.Fatalf("exit %d step %v into point %d does not match %v", i, d, j, pp.Orientation)
			}
		}

		// A repeated point may only be the terminal one, and only once more
		seen := make(map[geometry.Vec3]int)
		for j, pp := range exit.Path {
			if prev, ok := seen[pp.Position]; ok {
				if j != len(exit.Path)-1 || exit.Stop != StopSelfIntersection {
					t.Fatalf("exit %d repeats point %v at %d (first at %d), stop %v", i, pp.Position, j, prev, exit.Stop)
				}
			}
			seen[pp.Position] = j
		}
		if exit.Stop == StopSelfIntersection {
			last := exit.Last().Position
			count := 0
			for _, pp := range exit.Path {
				if pp.Position == last {
					count++
				}
			}
			if count != 2 {
				t.Fatalf("self intersecting exit %d contains its terminal point %d times", i, count)
			}
		}

		if exit.HasRoom {
			if exit.Stop != StopNone {
				t.Fatalf("exit %d has a room but stopped on %v", i, exit.Stop)
			}
			to := reg.Room(exit.To)
			last := exit.Last()
			anchor := last.Position.Add(last.Orientation.Step())
			if !to.Rect.Contains(anchor) {
				t.Fatalf("exit %d anchor %v not in attached room %v", i, anchor, to.Rect)
			}
		}
	}

	for i, e := range reg.Entrances() {
		room := reg.Room(e.Room)
		if !room.Rect.Contains(e.Position) {
			t.Fatalf("entrance %d at %v is not in its room %v", i, e.Position, room.Rect)
		}
	}
}
