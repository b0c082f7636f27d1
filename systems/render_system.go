package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"crypthack/components"
	"crypthack/config"
	"crypthack/ecs"
	"crypthack/geometry"
)

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	wallColor       = color.RGBA{230, 230, 230, 255}
	playerColor     = color.RGBA{255, 210, 60, 255}
	hudBorderColor  = color.RGBA{200, 200, 200, 255}
	unknownMaterial = color.RGBA{80, 80, 80, 255}
)

// RenderSystem draws one horizontal layer of the grid top down, north up
type RenderSystem struct {
	surfaces *SurfaceSystem
	length   int
	palette  map[string]color.RGBA
}

// NewRenderSystem creates a rendering system for a grid with the given length.
// palette maps material keys to floor colors.
func NewRenderSystem(surfaces *SurfaceSystem, length int, palette map[string]color.RGBA) *RenderSystem {
	return &RenderSystem{surfaces: surfaces, length: length, palette: palette}
}

// Draw renders the layer the camera looks at plus the status panel
func (s *RenderSystem) Draw(world *ecs.World, screen *ebiten.Image, gen *GenerationSystem, layer int) {
	screen.Fill(backgroundColor)

	s.drawLayer(screen, layer)
	s.drawActors(world, screen, layer)
	s.drawStatusPanel(screen, gen, layer)
}

// cellOrigin converts a voxel column to the top left pixel of its cell
func (s *RenderSystem) cellOrigin(p geometry.Vec3) (float32, float32) {
	return float32(p.X * config.CellSize), float32((s.length - 1 - p.Z) * config.CellSize)
}

func (s *RenderSystem) drawLayer(screen *ebiten.Image, layer int) {
	const size = float32(config.CellSize)

	surfaces := s.surfaces.Layer(layer)

	// Floors first so walls stay visible on top
	for _, surface := range surfaces {
		if surface.Orientation == geometry.Floor {
			x, y := s.cellOrigin(surface.Position)
			vector.DrawFilledRect(screen, x, y, size, size, s.materialColor(surface.Tile), false)
		}
	}

	for _, surface := range surfaces {
		x, y := s.cellOrigin(surface.Position)
		switch surface.Orientation {
		case geometry.North:
			vector.StrokeLine(screen, x, y, x+size, y, 2, wallColor, false)
		case geometry.South:
			vector.StrokeLine(screen, x, y+size, x+size, y+size, 2, wallColor, false)
		case geometry.East:
			vector.StrokeLine(screen, x+size, y, x+size, y+size, 2, wallColor, false)
		case geometry.West:
			vector.StrokeLine(screen, x, y, x, y+size, 2, wallColor, false)
		}
	}
}

func (s *RenderSystem) drawActors(world *ecs.World, screen *ebiten.Image, layer int) {
	const half = float32(config.CellSize) / 2

	for _, entity := range world.GetEntitiesWithComponent(components.Actor) {
		comp, _ := world.GetComponent(entity.ID, components.Actor)
		actor := comp.(*components.ActorComponent)
		if actor.Position.Y != layer {
			continue
		}
		c := playerColor
		if renderable, ok := world.GetComponent(entity.ID, components.Renderable); ok {
			c = renderable.(*components.RenderableComponent).Color
		}
		x, y := s.cellOrigin(actor.Position)
		vector.DrawFilledCircle(screen, x+half, y+half, half-2, c, true)
	}
}

func (s *RenderSystem) drawStatusPanel(screen *ebiten.Image, gen *GenerationSystem, layer int) {
	top := s.length * config.CellSize
	vector.StrokeLine(screen, 0, float32(top), float32(config.WindowWidth), float32(top), 1, hudBorderColor, false)

	g := gen.Generator()
	reg := g.Registry()
	status := fmt.Sprintf("%v  attempt %d/%d  rooms %d  exits %d  entrances %d  restarts %d",
		g.Phase(), g.Attempts(), g.Config().MaxAttempts, reg.RoomCount(), reg.ExitCount(), reg.EntranceCount(), g.Restarts())
	ebitenutil.DebugPrintAt(screen, status, 4, top+4)

	view := fmt.Sprintf("layer %d/%d  surfaces %d", layer, gen.Grid().Height()-1, s.surfaces.Count())
	if gen.Paused() {
		view += "  PAUSED"
	}
	ebitenutil.DebugPrintAt(screen, view, 4, top+20)

	// Newest message at the top, each with a swatch in its type color
	for i, msg := range GetMessageLog().RecentMessages(3) {
		y := top + 40 + i*16
		vector.DrawFilledRect(screen, 4, float32(y+4), 6, 6, msg.GetColor(), false)
		ebitenutil.DebugPrintAt(screen, msg.Text, 14, y)
	}
}

func (s *RenderSystem) materialColor(tile geometry.Tile) color.RGBA {
	if c, ok := s.palette[tile.Material]; ok {
		return c
	}
	return unknownMaterial
}
