package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"crypthack/components"
	"crypthack/config"
	"crypthack/data"
	"crypthack/ecs"
	"crypthack/generation"
	"crypthack/screens"
	"crypthack/spawners"
	"crypthack/systems"
)

// Options configure the viewer
type Options struct {
	Seed      int64
	Interval  float64
	Theme     string
	Templates string // extra template directory, may be empty
	BGM       string
	Audio     bool
	SkipMenu  bool
}

// Game implements ebiten.Game interface.
type Game struct {
	opts        Options
	screens     *screens.ScreenStack
	start       *screens.StartScreen
	audioSystem *systems.AudioSystem
	templates   *data.TemplateManager
	theme       *data.ThemeTemplate
}

// NewGame creates the viewer, starting on the seed menu unless SkipMenu is set
func NewGame(opts Options) (*Game, error) {
	templates, err := data.LoadDefaultTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to load built-in templates: %w", err)
	}
	if opts.Templates != "" {
		if err := templates.LoadTemplatesFromDirectory(opts.Templates); err != nil {
			return nil, err
		}
	}
	theme, ok := templates.GetTheme(opts.Theme)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q, have %v", opts.Theme, templates.ThemeIDs())
	}

	g := &Game{
		opts:      opts,
		screens:   screens.NewScreenStack(),
		start:     screens.NewStartScreen(opts.Seed),
		templates: templates,
		theme:     theme,
	}

	if opts.Audio {
		g.audioSystem = systems.NewAudioSystem(config.AudioSampleRate)
		if opts.BGM != "" {
			if err := g.audioSystem.PlayBGM(opts.BGM); err != nil {
				systems.GetMessageLog().AddTyped(err.Error(), systems.MessageTypeAlert)
			}
		}
	}

	if opts.SkipMenu {
		if err := g.startGeneration(opts.Seed); err != nil {
			return nil, err
		}
	} else {
		g.screens.Push(g.start)
	}
	return g, nil
}

// startGeneration builds a fresh world around a generator seeded with seed
func (g *Game) startGeneration(seed int64) error {
	world := ecs.NewWorld()

	cfg := generation.DefaultConfig()
	cfg.Tiles = g.theme.Tiles()

	surfaceSystem := systems.NewSurfaceSystem(world)
	actorSpawner := spawners.NewActorSpawner(world, g.templates, systems.GetMessageLog().Add)
	generationSystem, err := systems.NewGenerationSystem(cfg, surfaceSystem, actorSpawner, seed, g.opts.Interval)
	if err != nil {
		return fmt.Errorf("failed to create generation system: %w", err)
	}
	cameraSystem := systems.NewCameraSystem(generationSystem.Grid().Height())
	renderSystem := systems.NewRenderSystem(surfaceSystem, generationSystem.Grid().Length(), g.templates.Palette())

	world.AddSystem(generationSystem)
	world.AddSystem(cameraSystem)

	camera := actorSpawner.CreateCamera(0)

	// Look at the seed room, then follow the player once it exists
	world.GetEventManager().Subscribe(systems.EventPhaseChanged, func(e ecs.Event) {
		if e.(systems.PhaseChangedEvent).To != generation.PhaseMapGen {
			return
		}
		if rooms := generationSystem.Generator().Registry().Rooms(); len(rooms) > 0 {
			cameraSystem.Focus(world, camera.ID, rooms[0].Rect.Min().Y)
		}
	})
	world.GetEventManager().Subscribe(systems.EventActorSpawned, func(e ecs.Event) {
		if comp, ok := world.GetComponent(camera.ID, components.Camera); ok {
			comp.(*components.CameraComponent).Target = e.(systems.ActorSpawnedEvent).EntityID
		}
	})

	if g.audioSystem != nil {
		g.audioSystem.Initialize(world)
	}

	systems.GetMessageLog().AddTyped(fmt.Sprintf("Generating %s with seed %d", g.theme.Name, seed), systems.MessageTypeSystem)
	g.screens.Push(screens.NewGameScreen(world, generationSystem, cameraSystem, renderSystem, g.audioSystem, camera.ID))
	return nil
}

// Update updates the top screen and handles transitions
func (g *Game) Update() error {
	err := g.screens.Update()
	switch {
	case errors.Is(err, screens.ErrNewGame):
		g.screens.Pop()
		return g.startGeneration(g.start.Seed())
	case errors.Is(err, screens.ErrQuit):
		if g.audioSystem != nil {
			g.audioSystem.Close()
		}
		return ebiten.Termination
	}
	return err
}

// Draw draws every screen on the stack
func (g *Game) Draw(screen *ebiten.Image) {
	g.screens.Draw(screen)
}

// Layout returns the fixed logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
