package generation

import (
	"math/rand"
	"testing"

	"crypthack/geometry"
	"crypthack/grid"
)

func smallConfig(width, height, length int) Config {
	cfg := DefaultConfig()
	cfg.GridWidth, cfg.GridHeight, cfg.GridLength = width, height, length
	cfg.RoomSize = Range{2, 3}
	cfg.RoomHeight = Range{1, 2}
	return cfg
}

// tick mirrors what the host does every frame
func tick(g *BranchGenerator, m *grid.GridMap, sp *recordingSpawner, ts *TileSpawner) GrowOutcome {
	outcome := g.Step(m, sp)
	ts.SpawnPending(m, g.Registry())
	return outcome
}

func TestSeedRoomFitsGrid(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g := newTestGenerator(t, DefaultConfig(), seed)
		m := g.NewGrid()

		id := g.StartMapGen(m)
		room := g.Registry().Room(id)

		room.Rect.Each(func(p geometry.Vec3) {
			if m.PositionOOB(p) {
				t.Fatalf("seed %d: room voxel %v out of bounds", seed, p)
			}
		})
		size := room.Rect.Size()
		if size.X < 6 || size.X >= 10 || size.Z < 6 || size.Z >= 10 || size.Y < 1 || size.Y >= 3 {
			t.Fatalf("seed %d: room size %v outside configured ranges", seed, size)
		}
		if g.Phase() != PhaseMapGen || g.Attempts() != 1 {
			t.Fatalf("seed %d: phase %v attempts %d after seeding", seed, g.Phase(), g.Attempts())
		}
	}
}

func TestStartMapGenTwicePanics(t *testing.T) {
	g := newTestGenerator(t, DefaultConfig(), 1)
	m := g.NewGrid()
	g.StartMapGen(m)

	defer func() {
		if recover() == nil {
			t.Error("second seed room did not panic")
		}
	}()
	g.StartMapGen(m)
}

func TestMapGenOutOfPhasePanics(t *testing.T) {
	g := newTestGenerator(t, DefaultConfig(), 1)
	m := g.NewGrid()

	defer func() {
		if recover() == nil {
			t.Error("MapGen before seeding did not panic")
		}
	}()
	g.MapGen(m, newRecordingSpawner())
}

func TestChooseWeightedDistribution(t *testing.T) {
	// Connection counts 0, 0 and 2
	weights := []float64{1, 1, 1.0 / 3}
	rng := rand.New(rand.NewSource(7))

	const samples = 10000
	counts := make([]int, len(weights))
	for i := 0; i < samples; i++ {
		idx, ok := chooseWeighted(rng, weights)
		if !ok {
			t.Fatal("chooseWeighted failed with positive weights")
		}
		counts[idx]++
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	chi := 0.0
	for i, w := range weights {
		expected := samples * w / total
		d := float64(counts[i]) - expected
		chi += d * d / expected
	}
	// 13.8 is the 0.999 quantile for two degrees of freedom
	if chi >= 13.8 {
		t.Errorf("chi-square %.2f too large, counts %v", chi, counts)
	}
	if counts[0] <= counts[2] {
		t.Errorf("unconnected room picked %d times, connected room %d times", counts[0], counts[2])
	}
}

func TestChooseWeightedSkipsZero(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if _, ok := chooseWeighted(rng, []float64{0, 0}); ok {
		t.Error("all zero weights should fail")
	}
	if _, ok := chooseWeighted(rng, nil); ok {
		t.Error("no weights should fail")
	}
	for i := 0; i < 100; i++ {
		if idx, _ := chooseWeighted(rng, []float64{0, 1, 0}); idx != 1 {
			t.Fatalf("picked zero weight index %d", idx)
		}
	}
}

func TestChooseRoomFavoursFewConnections(t *testing.T) {
	g := newTestGenerator(t, DefaultConfig(), 3)
	reg := g.Registry()
	reg.AddRoom(&Room{})
	reg.AddRoom(&Room{})
	reg.AddRoom(&Room{Entrances: make([]EntranceID, 2)})

	counts := make([]int, 3)
	for i := 0; i < 10000; i++ {
		id, ok := g.chooseRoom()
		if !ok {
			t.Fatal("chooseRoom failed")
		}
		counts[id.Index()]++
	}
	if counts[0] <= counts[2] || counts[1] <= counts[2] {
		t.Errorf("counts %v do not favour unconnected rooms", counts)
	}
}

func TestChooseRoomHonoursExitCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxExitsPerRoom = 2
	g := newTestGenerator(t, cfg, 3)
	reg := g.Registry()
	reg.AddRoom(&Room{Exits: make([]ExitID, 2)})

	if _, ok := g.chooseRoom(); ok {
		t.Fatal("room at the exit cap was chosen")
	}

	reg.AddRoom(&Room{Exits: make([]ExitID, 1)})
	for i := 0; i < 100; i++ {
		id, ok := g.chooseRoom()
		if !ok || id.Index() != 1 {
			t.Fatalf("chooseRoom() = %v, %v", id, ok)
		}
	}
}

func TestSurfaceWallPoints(t *testing.T) {
	tests := []struct {
		rect geometry.Rect3
		want int
	}{
		{geometry.NewRect3(geometry.V3(0, 0, 0), 3, 2, 3), 8},
		{geometry.NewRect3(geometry.V3(2, 1, 2), 6, 1, 4), 16},
		{geometry.NewRect3(geometry.V3(0, 0, 0), 1, 1, 3), 3},
		{geometry.NewRect3(geometry.V3(0, 0, 0), 1, 1, 1), 1},
	}
	for _, tt := range tests {
		points := surfaceWallPoints(tt.rect)
		if len(points) != tt.want {
			t.Errorf("%v: %d points, want %d", tt.rect, len(points), tt.want)
		}
		seen := make(map[geometry.Vec3]bool)
		for _, p := range points {
			if seen[p] {
				t.Errorf("%v: point %v listed twice", tt.rect, p)
			}
			seen[p] = true
			if !tt.rect.Contains(p) || p.Y != tt.rect.Min().Y {
				t.Errorf("%v: point %v is not on the bottom layer", tt.rect, p)
			}
		}
	}
}

func TestRandomSurfaceWallPointSkipsUsedPoints(t *testing.T) {
	cfg := smallConfig(10, 3, 10)
	g := newTestGenerator(t, cfg, 5)
	m := g.NewGrid()
	sp := newRecordingSpawner()
	ts := NewTileSpawner(sp)

	id := g.registry.AddRoom(&Room{Rect: geometry.NewRect3(geometry.V3(4, 0, 4), 1, 1, 2), Ceiling: testTile, Walls: testTile, Floor: testTile})
	ts.SpawnPending(m, g.registry)
	g.registry.AddExit(&PathExit{Path: []PathPoint{pp(4, 0, 4, geometry.South)}, From: id})

	room := g.registry.Room(id)
	for i := 0; i < 50; i++ {
		p, o, ok := g.randomSurfaceWallPoint(m, room)
		if !ok {
			t.Fatal("no wall point found")
		}
		if p != geometry.V3(4, 0, 5) {
			t.Fatalf("picked used or foreign point %v", p)
		}
		if !m.At(p).Has(o) {
			t.Fatalf("picked empty wall slot %v at %v", o, p)
		}
	}
}

func TestWalkCorridorStopsOutOfBounds(t *testing.T) {
	cfg := smallConfig(10, 3, 10)
	cfg.Turns = Range{0, 0}
	cfg.Distance = Range{5, 5}
	g := newTestGenerator(t, cfg, 1)
	m := g.NewGrid()

	exit := &PathExit{}
	g.walkCorridor(m, exit, geometry.V3(8, 0, 5), geometry.East)

	if exit.Stop != StopOutOfBounds {
		t.Fatalf("stop = %v, want out-of-bounds", exit.Stop)
	}
	want := []PathPoint{pp(8, 0, 5, geometry.East), pp(9, 0, 5, geometry.East)}
	if len(exit.Path) != len(want) {
		t.Fatalf("path = %v, want %v", exit.Path, want)
	}
	for i := range want {
		if exit.Path[i] != want[i] {
			t.Fatalf("path = %v, want %v", exit.Path, want)
		}
	}
}

func TestWalkCorridorStopsOnCollision(t *testing.T) {
	cfg := smallConfig(10, 3, 10)
	cfg.Turns = Range{0, 0}
	cfg.Distance = Range{5, 5}
	g := newTestGenerator(t, cfg, 1)
	m := g.NewGrid()
	m.Place(newRecordingSpawner(), testTile, geometry.Floor, geometry.V3(4, 0, 5))

	exit := &PathExit{}
	g.walkCorridor(m, exit, geometry.V3(2, 0, 5), geometry.East)

	if exit.Stop != StopCollision {
		t.Fatalf("stop = %v, want collision", exit.Stop)
	}
	if got := exit.Last().Position; got != geometry.V3(4, 0, 5) {
		t.Fatalf("last point = %v, want the colliding voxel", got)
	}
	if len(exit.Path) != 3 {
		t.Fatalf("path length %d, want 3", len(exit.Path))
	}
}

func TestWalkCorridorFullLength(t *testing.T) {
	cfg := smallConfig(20, 3, 20)
	cfg.Turns = Range{2, 2}
	cfg.Distance = Range{3, 3}
	g := newTestGenerator(t, cfg, 11)
	m := g.NewGrid()

	exit := &PathExit{}
	g.walkCorridor(m, exit, geometry.V3(10, 1, 10), geometry.North)

	if exit.Stop != StopNone {
		t.Fatalf("stop = %v on an empty grid", exit.Stop)
	}
	// Origin plus three legs of three voxels
	if len(exit.Path) != 10 {
		t.Fatalf("path length %d, want 10", len(exit.Path))
	}
	turns := 0
	for i := 1; i < len(exit.Path); i++ {
		if exit.Path[i].Orientation != exit.Path[i-1].Orientation {
			turns++
		}
		if d := exit.Path[i].Position.Sub(exit.Path[i-1].Position); d != exit.Path[i].Orientation.Step() {
			t.Fatalf("step %v into point %d does not match %v", d, i, exit.Path[i].Orientation)
		}
	}
	if turns != 2 {
		t.Errorf("%d turns, want 2", turns)
	}
}

func TestWalkCorridorSelfIntersection(t *testing.T) {
	cfg := smallConfig(20, 3, 20)
	cfg.Turns = Range{3, 3}
	cfg.Distance = Range{2, 2}

	for seed := int64(1); seed <= 200; seed++ {
		g := newTestGenerator(t, cfg, seed)
		m := g.NewGrid()

		exit := &PathExit{}
		g.walkCorridor(m, exit, geometry.V3(10, 1, 10), geometry.East)
		if exit.Stop != StopSelfIntersection {
			continue
		}

		// Four legs of two turning the same way close a square on the origin
		if len(exit.Path) != 9 {
			t.Fatalf("seed %d: path length %d, want 9", seed, len(exit.Path))
		}
		if exit.Last().Position != exit.First().Position {
			t.Fatalf("seed %d: loop closes on %v, not the origin", seed, exit.Last().Position)
		}
		count := 0
		for _, p := range exit.Path {
			if p.Position == exit.Last().Position {
				count++
			}
		}
		if count != 2 {
			t.Fatalf("seed %d: terminal point appears %d times", seed, count)
		}
		return
	}
	t.Fatal("no seed produced a self-intersecting corridor")
}

func TestRoomFacingTouchesAnchor(t *testing.T) {
	anchor := geometry.V3(20, 2, 20)
	for _, travel := range geometry.Cardinals {
		rect := roomFacing(anchor, travel, 5, 2, 7)

		if !rect.Contains(anchor) {
			t.Fatalf("%v: room %v does not contain anchor", travel, rect)
		}
		if rect.Min().Y != anchor.Y {
			t.Errorf("%v: room floor at %d, anchor at %d", travel, rect.Min().Y, anchor.Y)
		}
		if size := rect.Size(); size != geometry.V3(5, 2, 7) {
			t.Errorf("%v: size %v", travel, size)
		}

		// The voxel before the anchor must be outside the room
		behind := anchor.Sub(travel.Step())
		if rect.Contains(behind) {
			t.Errorf("%v: room %v swallows the corridor end %v", travel, rect, behind)
		}
	}
}

func TestMarkPlayingRequiresSpawnActors(t *testing.T) {
	g := newTestGenerator(t, DefaultConfig(), 1)
	if err := g.MarkPlaying(); err == nil {
		t.Fatal("MarkPlaying accepted StartMapGen")
	}
}

func TestSingleRoomRunFinishes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinRooms = 1
	cfg.MaxAttempts = 1
	g := newTestGenerator(t, cfg, 9)
	m := g.NewGrid()
	sp := newRecordingSpawner()
	ts := NewTileSpawner(sp)

	if got := tick(g, m, sp, ts); got != OutcomeRoom {
		t.Fatalf("first tick = %v", got)
	}
	if got := tick(g, m, sp, ts); got != OutcomeFinished {
		t.Fatalf("second tick = %v", got)
	}
	if g.Phase() != PhaseSpawnActors {
		t.Fatalf("phase = %v", g.Phase())
	}
	if got := tick(g, m, sp, ts); got != OutcomeNothing {
		t.Fatalf("tick in SpawnActors = %v", got)
	}

	if err := g.MarkPlaying(); err != nil {
		t.Fatalf("MarkPlaying: %v", err)
	}
	if g.Phase() != PhasePlaying {
		t.Fatalf("phase = %v", g.Phase())
	}
	if err := g.MarkPlaying(); err == nil {
		t.Fatal("MarkPlaying twice succeeded")
	}
}

func TestForcedRestartWipesEverything(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinRooms = 1000
	cfg.MaxAttempts = 5
	g := newTestGenerator(t, cfg, 4)
	m := g.NewGrid()
	sp := newRecordingSpawner()
	ts := NewTileSpawner(sp)

	var outcome GrowOutcome
	ticks := 0
	for outcome != OutcomeRestarted {
		outcome = tick(g, m, sp, ts)
		ticks++
		if g.Attempts() > cfg.MaxAttempts {
			t.Fatalf("attempts %d exceed the budget", g.Attempts())
		}
		if ticks > cfg.MaxAttempts+1 {
			t.Fatalf("no restart after %d ticks", ticks)
		}
	}

	if g.Phase() != PhaseStartMapGen {
		t.Errorf("phase = %v after restart", g.Phase())
	}
	if g.Restarts() != 1 {
		t.Errorf("Restarts() = %d", g.Restarts())
	}
	if g.RoomCount() != 0 || g.Registry().ExitCount() != 0 || g.Registry().EntranceCount() != 0 {
		t.Error("registry kept records")
	}
	if m.OccupiedCount() != 0 {
		t.Errorf("%d voxels still occupied", m.OccupiedCount())
	}
	if len(sp.live) != 0 {
		t.Errorf("%d surfaces never despawned", len(sp.live))
	}

	if got := tick(g, m, sp, ts); got != OutcomeRoom || g.RoomCount() != 1 {
		t.Fatalf("generation did not reseed: %v, %d rooms", got, g.RoomCount())
	}
}

func TestGenerateEndToEnd(t *testing.T) {
	cfg := DefaultConfig()

	for seed := int64(1); seed <= 20; seed++ {
		g := newTestGenerator(t, cfg, seed)
		m := g.NewGrid()
		sp := newRecordingSpawner()
		ts := NewTileSpawner(sp)

		for ticks := 0; g.Phase() != PhaseSpawnActors; ticks++ {
			if ticks > 100*cfg.MaxAttempts {
				t.Fatalf("seed %d: no result after %d ticks", seed, ticks)
			}

			outcome := tick(g, m, sp, ts)
			if g.Attempts() > cfg.MaxAttempts {
				t.Fatalf("seed %d: attempts %d exceed the budget", seed, g.Attempts())
			}
			if outcome == OutcomeRestarted && (m.OccupiedCount() != 0 || len(sp.live) != 0) {
				t.Fatalf("seed %d: restart left surfaces behind", seed)
			}
			checkInvariants(t, m, g.Registry())
		}

		reg := g.Registry()
		if reg.RoomCount() < cfg.MinRooms {
			t.Fatalf("seed %d: finished with %d rooms", seed, reg.RoomCount())
		}
		if got := m.SurfaceCount(); got != len(sp.live) {
			t.Fatalf("seed %d: grid tracks %d surfaces, spawner %d", seed, got, len(sp.live))
		}

		for i, exit := range reg.Exits() {
			if !exit.Spawned {
				t.Fatalf("seed %d: exit %d never spawned", seed, i)
			}
			if len(exit.Path) < 2 {
				continue
			}
			first := exit.First()
			if m.At(first.Position).Has(first.Orientation) {
				t.Errorf("seed %d: exit %d origin wall %v at %v still closed", seed, i, first.Orientation, first.Position)
			}
		}
		for i, e := range reg.Entrances() {
			if m.At(e.Position).Has(e.Orientation) {
				t.Errorf("seed %d: entrance %d wall %v at %v still closed", seed, i, e.Orientation, e.Position)
			}
		}
		for i, room := range reg.Rooms() {
			if room.Connections() == 0 && reg.RoomCount() > 1 && i > 0 {
				t.Errorf("seed %d: grown room %d has no connections", seed, i)
			}
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	run := func() []geometry.Rect3 {
		g := newTestGenerator(t, DefaultConfig(), 42)
		m := g.NewGrid()
		sp := newRecordingSpawner()
		ts := NewTileSpawner(sp)
		for i := 0; i < 1000 && g.Phase() != PhaseSpawnActors; i++ {
			tick(g, m, sp, ts)
		}
		var rects []geometry.Rect3
		for _, room := range g.Registry().Rooms() {
			rects = append(rects, room.Rect)
		}
		return rects
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("room counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("room %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
