package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"crypthack/components"
	"crypthack/config"
	"crypthack/ecs"
	"crypthack/systems"
)

var helpLines = []string{
	"R          regenerate",
	"Space      pause / resume",
	"N          single step while paused",
	"PgUp/PgDn  change layer",
	"M          mute",
	"F          toggle fullscreen",
	"F1         message log",
	"H          this help",
}

// GameScreen shows generation as it happens
type GameScreen struct {
	world            *ecs.World
	generationSystem *systems.GenerationSystem
	cameraSystem     *systems.CameraSystem
	renderSystem     *systems.RenderSystem
	audioSystem      *systems.AudioSystem
	camera           ecs.EntityID
	modals           *ScreenStack
}

// NewGameScreen creates a game screen. audioSystem may be nil.
func NewGameScreen(
	world *ecs.World,
	generationSystem *systems.GenerationSystem,
	cameraSystem *systems.CameraSystem,
	renderSystem *systems.RenderSystem,
	audioSystem *systems.AudioSystem,
	camera ecs.EntityID,
) *GameScreen {
	return &GameScreen{
		world:            world,
		generationSystem: generationSystem,
		cameraSystem:     cameraSystem,
		renderSystem:     renderSystem,
		audioSystem:      audioSystem,
		camera:           camera,
		modals:           NewScreenStack(),
	}
}

// Update handles input and runs the world while no modal is open
func (s *GameScreen) Update() error {
	if s.modals.Len() > 0 {
		return s.modals.Update()
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		s.modals.Push(NewDebugScreen(systems.GetMessageLog()))
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		s.modals.Push(NewModalScreen("CONTROLS", helpLines, ebiten.KeyH))
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.generationSystem.Regenerate(s.world)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.generationSystem.SetPaused(!s.generationSystem.Paused())
	}
	if s.generationSystem.Paused() && inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.generationSystem.Tick(s.world)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		s.cameraSystem.Shift(s.world, s.camera, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		s.cameraSystem.Shift(s.world, s.camera, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && s.audioSystem != nil {
		s.audioSystem.SetMuted(!s.audioSystem.Muted())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	s.world.Update(1.0 / config.TicksPerSecond)
	return nil
}

// Draw draws the current layer and any open modal
func (s *GameScreen) Draw(screen *ebiten.Image) {
	layer := 0
	if comp, ok := s.world.GetComponent(s.camera, components.Camera); ok {
		layer = comp.(*components.CameraComponent).Layer
	}
	s.renderSystem.Draw(s.world, screen, s.generationSystem, layer)
	s.modals.Draw(screen)
}
