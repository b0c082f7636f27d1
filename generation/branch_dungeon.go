package generation

import (
	"fmt"
	"math/rand"
	"time"

	"crypthack/geometry"
	"crypthack/grid"
)

// Phase is the externally observed state of a generation run
type Phase int

const (
	PhaseStartMapGen Phase = iota // seed a first room
	PhaseMapGen                   // grow corridors and rooms, one attempt per step
	PhaseSpawnActors              // generation succeeded, the host places actors
	PhasePlaying                  // the host owns the map
)

func (p Phase) String() string {
	switch p {
	case PhaseStartMapGen:
		return "StartMapGen"
	case PhaseMapGen:
		return "MapGen"
	case PhaseSpawnActors:
		return "SpawnActors"
	case PhasePlaying:
		return "Playing"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// GrowOutcome describes what one grow step did
type GrowOutcome int

const (
	OutcomeNothing   GrowOutcome = iota // no room or wall point to grow from
	OutcomeDeadEnd                      // a corridor was committed without a room
	OutcomeRoom                         // a corridor and a new room were committed
	OutcomeFinished                     // enough rooms, moved to SpawnActors
	OutcomeRestarted                    // too few rooms, everything was wiped
)

func (o GrowOutcome) String() string {
	switch o {
	case OutcomeDeadEnd:
		return "dead end"
	case OutcomeRoom:
		return "room"
	case OutcomeFinished:
		return "finished"
	case OutcomeRestarted:
		return "restarted"
	}
	return "nothing"
}

// BranchGenerator grows a network of rooms joined by turning corridors.
// It is driven one step at a time by the host and is not safe for concurrent use.
type BranchGenerator struct {
	cfg        Config
	rng        *rand.Rand
	registry   *Registry
	phase      Phase
	attempts   int
	restarts   int
	logMessage func(string) // Function for logging messages
}

// NewBranchGenerator creates a generator in the StartMapGen phase
func NewBranchGenerator(cfg Config, logFunc func(string)) (*BranchGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generation config: %w", err)
	}
	return &BranchGenerator{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		registry:   NewRegistry(),
		phase:      PhaseStartMapGen,
		logMessage: logFunc,
	}, nil
}

// SetSeed allows setting a specific seed for reproducible maps
func (g *BranchGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// NewGrid creates an empty grid with the configured extent
func (g *BranchGenerator) NewGrid() *grid.GridMap {
	return grid.New(g.cfg.GridWidth, g.cfg.GridHeight, g.cfg.GridLength)
}

// Config returns the configuration the generator was built with
func (g *BranchGenerator) Config() Config { return g.cfg }

// Registry returns the records of the current run
func (g *BranchGenerator) Registry() *Registry { return g.registry }

// Phase returns the current phase
func (g *BranchGenerator) Phase() Phase { return g.phase }

// Attempts returns the grow step counter. Seeding resets it to 1.
func (g *BranchGenerator) Attempts() int { return g.attempts }

// Restarts counts how many runs were thrown away
func (g *BranchGenerator) Restarts() int { return g.restarts }

// RoomCount is the number of committed rooms
func (g *BranchGenerator) RoomCount() int { return g.registry.RoomCount() }

// Step runs one step of the current phase. SpawnActors and Playing belong to
// the host, so nothing happens for them.
func (g *BranchGenerator) Step(m *grid.GridMap, d grid.Despawner) GrowOutcome {
	switch g.phase {
	case PhaseStartMapGen:
		g.StartMapGen(m)
		return OutcomeRoom
	case PhaseMapGen:
		return g.MapGen(m, d)
	}
	return OutcomeNothing
}

// StartMapGen seeds the run with one random room and moves to MapGen.
// The registry must be empty; use Restart to wipe a previous run.
func (g *BranchGenerator) StartMapGen(m *grid.GridMap) RoomID {
	if g.registry.RoomCount() != 0 {
		panic("generation: StartMapGen called with rooms still committed")
	}

	w := g.between(g.cfg.RoomSize)
	h := g.between(g.cfg.RoomHeight)
	l := g.between(g.cfg.RoomSize)
	origin := geometry.V3(
		g.rng.Intn(m.Width()-w+1),
		g.rng.Intn(m.Height()-h+1),
		g.rng.Intn(m.Length()-l+1),
	)

	id := g.registry.AddRoom(&Room{
		Rect:    geometry.NewRect3(origin, w, h, l),
		Ceiling: g.cfg.Tiles.Ceiling,
		Walls:   g.cfg.Tiles.Walls,
		Floor:   g.cfg.Tiles.Floor,
	})
	g.attempts = 1

	g.logf("Seeded %dx%dx%d room at %v", w, h, l, origin)
	g.setPhase(PhaseMapGen)
	return id
}

// MapGen runs one grow attempt, or judges the run once the attempt budget is spent
func (g *BranchGenerator) MapGen(m *grid.GridMap, d grid.Despawner) GrowOutcome {
	if g.phase != PhaseMapGen {
		panic(fmt.Sprintf("generation: MapGen called in phase %v", g.phase))
	}

	if g.attempts >= g.cfg.MaxAttempts {
		if g.registry.RoomCount() < g.cfg.MinRooms {
			g.logf("Only %d of %d rooms after %d attempts, starting over",
				g.registry.RoomCount(), g.cfg.MinRooms, g.attempts)
			g.Restart(m, d)
			return OutcomeRestarted
		}
		g.logf("Generated %d rooms and %d corridors", g.registry.RoomCount(), g.registry.ExitCount())
		g.setPhase(PhaseSpawnActors)
		return OutcomeFinished
	}

	outcome := g.grow(m)
	g.attempts++
	return outcome
}

// Restart despawns everything and returns to StartMapGen
func (g *BranchGenerator) Restart(m *grid.GridMap, d grid.Despawner) {
	m.Reset(d)
	g.registry.Reset()
	g.attempts = 0
	g.restarts++
	g.setPhase(PhaseStartMapGen)
}

// MarkPlaying hands the finished map to the host
func (g *BranchGenerator) MarkPlaying() error {
	if g.phase != PhaseSpawnActors {
		return fmt.Errorf("cannot start playing from phase %v", g.phase)
	}
	g.setPhase(PhasePlaying)
	return nil
}

func (g *BranchGenerator) grow(m *grid.GridMap) GrowOutcome {
	roomID, ok := g.chooseRoom()
	if !ok {
		return OutcomeNothing
	}
	room := g.registry.Room(roomID)

	origin, orientation, ok := g.randomSurfaceWallPoint(m, room)
	if !ok {
		return OutcomeNothing
	}

	exit := &PathExit{
		Ceiling: room.Ceiling,
		Walls:   room.Walls,
		Floor:   room.Floor,
		From:    roomID,
	}
	g.walkCorridor(m, exit, origin, orientation)

	if exit.Stop != StopNone {
		g.registry.AddExit(exit)
		g.logf("Corridor from %v stopped on %v after %d voxels", origin, exit.Stop, len(exit.Path))
		return OutcomeDeadEnd
	}

	rect, anchor, ok := g.attachRoom(m, exit)
	if !ok {
		g.registry.AddExit(exit)
		g.logf("Corridor from %v ends in a dead end, no room fits", origin)
		return OutcomeDeadEnd
	}

	newID := g.registry.AddRoom(&Room{
		Rect:    rect,
		Ceiling: exit.Ceiling,
		Walls:   exit.Walls,
		Floor:   exit.Floor,
	})
	g.registry.AddEntrance(&HoleEntrance{
		Position:    anchor,
		Orientation: exit.Last().Orientation.Opposite(),
		Room:        newID,
	})
	exit.To = newID
	exit.HasRoom = true
	g.registry.AddExit(exit)

	g.logf("Room %d added at %v", g.registry.RoomCount(), rect.Min())
	return OutcomeRoom
}

// chooseRoom picks a room with weight 1/(connections+1)
func (g *BranchGenerator) chooseRoom() (RoomID, bool) {
	ids := g.registry.RoomIDs()
	weights := make([]float64, len(ids))
	for i, id := range ids {
		room := g.registry.Room(id)
		if g.cfg.MaxExitsPerRoom > 0 && len(room.Exits) >= g.cfg.MaxExitsPerRoom {
			continue
		}
		weights[i] = 1 / float64(room.Connections()+1)
	}

	i, ok := chooseWeighted(g.rng, weights)
	if !ok {
		return RoomID{}, false
	}
	return ids[i], true
}

func chooseWeighted(rng *rand.Rand, weights []float64) (int, bool) {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0, false
	}

	r := rng.Float64() * total
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if r < w {
			return i, true
		}
		r -= w
		last = i
	}
	// Rounding can leave r just above zero after the last bucket
	return last, true
}

// randomSurfaceWallPoint picks a floor level point on the side faces of the
// room that is not already used by a corridor, and one of its walls
func (g *BranchGenerator) randomSurfaceWallPoint(m *grid.GridMap, room *Room) (geometry.Vec3, geometry.Orientation, bool) {
	exclude := make(map[geometry.Vec3]bool)
	for _, id := range room.Entrances {
		exclude[g.registry.Entrance(id).Position] = true
	}
	for _, id := range room.Exits {
		exclude[g.registry.Exit(id).First().Position] = true
	}

	type candidate struct {
		position geometry.Vec3
		walls    []geometry.Orientation
	}
	var candidates []candidate
	for _, p := range surfaceWallPoints(room.Rect) {
		if exclude[p] || m.PositionOOB(p) {
			continue
		}
		if walls := m.At(p).Walls(); len(walls) > 0 {
			candidates = append(candidates, candidate{p, walls})
		}
	}
	if len(candidates) == 0 {
		return geometry.Vec3{}, geometry.Center, false
	}

	c := candidates[g.rng.Intn(len(candidates))]
	return c.position, c.walls[g.rng.Intn(len(c.walls))], true
}

// surfaceWallPoints lists the perimeter of the bottom layer of r, each point once
func surfaceWallPoints(r geometry.Rect3) []geometry.Vec3 {
	mn, mx := r.Min(), r.Max()
	y := mn.Y

	var points []geometry.Vec3
	for x := mn.X; x <= mx.X; x++ {
		points = append(points, geometry.V3(x, y, mn.Z))
		if mx.Z != mn.Z {
			points = append(points, geometry.V3(x, y, mx.Z))
		}
	}
	for z := mn.Z + 1; z < mx.Z; z++ {
		points = append(points, geometry.V3(mn.X, y, z))
		if mx.X != mn.X {
			points = append(points, geometry.V3(mx.X, y, z))
		}
	}
	return points
}

// walkCorridor grows the path leg by leg until the legs run out or a stop
// condition is hit. A self-intersecting point is kept as the last point,
// an out of bounds point is dropped and a colliding point is kept.
func (g *BranchGenerator) walkCorridor(m *grid.GridMap, exit *PathExit, origin geometry.Vec3, orientation geometry.Orientation) {
	current := origin
	step := orientation.Step()
	exit.Path = append(exit.Path, PathPoint{Position: origin, Orientation: orientation})

	turns := g.inclusive(g.cfg.Turns)
	for t := 0; t <= turns; t++ {
		turnLeft := g.rng.Intn(2) == 0
		distance := g.inclusive(g.cfg.Distance)

		for i := 0; i < distance; i++ {
			current = current.Add(step)

			if exit.Visits(current) {
				exit.Path = append(exit.Path, PathPoint{Position: current, Orientation: orientation})
				exit.Stop = StopSelfIntersection
				return
			}
			if m.PositionOOB(current) {
				exit.Stop = StopOutOfBounds
				return
			}
			exit.Path = append(exit.Path, PathPoint{Position: current, Orientation: orientation})
			if m.PositionCollides(current) {
				exit.Stop = StopCollision
				return
			}
		}

		if t != turns {
			orientation = orientation.Rotate90(turnLeft)
			step = orientation.Step()
		}
	}
}

// attachRoom samples a room one step past the end of the corridor, facing back down it
func (g *BranchGenerator) attachRoom(m *grid.GridMap, exit *PathExit) (geometry.Rect3, geometry.Vec3, bool) {
	last := exit.Last()
	anchor := last.Position.Add(last.Orientation.Step())

	w := g.between(g.cfg.RoomSize)
	h := g.between(g.cfg.RoomHeight)
	l := g.between(g.cfg.RoomSize)
	rect := roomFacing(anchor, last.Orientation, w, h, l)

	return rect, anchor, g.roomFits(m, rect, anchor, exit)
}

// roomFacing builds a room whose floor level face touching anchor looks
// back along travel, centered across the corridor
func roomFacing(anchor geometry.Vec3, travel geometry.Orientation, w, h, l int) geometry.Rect3 {
	origin := anchor
	switch travel {
	case geometry.North:
		origin.X -= w / 2
	case geometry.South:
		origin.X -= w / 2
		origin.Z -= l - 1
	case geometry.East:
		origin.Z -= l / 2
	case geometry.West:
		origin.Z -= l / 2
		origin.X -= w - 1
	}
	return geometry.NewRect3(origin, w, h, l)
}

func (g *BranchGenerator) roomFits(m *grid.GridMap, rect geometry.Rect3, anchor geometry.Vec3, exit *PathExit) bool {
	for _, room := range g.registry.Rooms() {
		if rect.Intersects(room.Rect) {
			return false
		}
	}

	used := make(map[geometry.Vec3]bool, len(exit.Path))
	for _, pp := range exit.Path {
		used[pp.Position] = true
	}
	for _, other := range g.registry.Exits() {
		for _, pp := range other.Path {
			used[pp.Position] = true
		}
	}

	it := rect.Points()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		if m.PositionOOB(p) || m.PositionCollides(p) {
			return false
		}
		if p != anchor && used[p] {
			return false
		}
	}
	return true
}

// between samples [r.Min, r.Max)
func (g *BranchGenerator) between(r Range) int {
	return r.Min + g.rng.Intn(r.Max-r.Min)
}

// inclusive samples [r.Min, r.Max]
func (g *BranchGenerator) inclusive(r Range) int {
	return r.Min + g.rng.Intn(r.Max-r.Min+1)
}

func (g *BranchGenerator) setPhase(p Phase) {
	if g.phase != p {
		g.logf("Map generation: %v -> %v", g.phase, p)
	}
	g.phase = p
}

func (g *BranchGenerator) logf(format string, args ...any) {
	if g.logMessage != nil {
		g.logMessage(fmt.Sprintf(format, args...))
	}
}
