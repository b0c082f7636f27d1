package screens

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const optionSpacing = 30

var (
	titleColor    = color.RGBA{255, 230, 150, 255} // Gold
	optionColor   = color.RGBA{200, 200, 200, 255} // Light Gray
	selectedColor = color.RGBA{255, 255, 255, 255}
)

// StartScreen lets the user pick a seed before generation starts
type StartScreen struct {
	selectedOption int
	options        []string
	seed           int64
	rng            *rand.Rand
}

// NewStartScreen creates a start screen offering seed
func NewStartScreen(seed int64) *StartScreen {
	return &StartScreen{
		options: []string{
			"Generate",
			"New Seed",
			"Quit",
		},
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the currently selected seed
func (s *StartScreen) Seed() int64 {
	return s.seed
}

// Update handles input for the start screen
func (s *StartScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.selectedOption = (s.selectedOption - 1 + len(s.options)) % len(s.options)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.selectedOption = (s.selectedOption + 1) % len(s.options)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return s.choose(s.selectedOption)
	}
	return nil
}

func (s *StartScreen) choose(option int) error {
	switch option {
	case 0:
		return ErrNewGame
	case 1:
		s.seed = s.rng.Int63()
	case 2:
		return ErrQuit
	}
	return nil
}

// Draw renders the start screen
func (s *StartScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	centerX, centerY := bounds.Dx()/2, bounds.Dy()/2

	drawCentered(screen, "CRYPTHACK", centerX, centerY-120, titleColor)
	drawCentered(screen, fmt.Sprintf("seed %d", s.seed), centerX, centerY-90, optionColor)

	startY := centerY - (len(s.options)*optionSpacing)/2
	for i, option := range s.options {
		c := optionColor
		if i == s.selectedOption {
			c = selectedColor
			option = "> " + option + " <"
		}
		drawCentered(screen, option, centerX, startY+i*optionSpacing, c)
	}
}

// drawCentered prints text centered on x in the given color. The debug font
// is white, so the line is drawn offscreen and tinted.
func drawCentered(screen *ebiten.Image, text string, x, y int, c color.Color) {
	line := ebiten.NewImage(len(text)*6+2, 16)
	ebitenutil.DebugPrintAt(line, text, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(c)
	op.GeoM.Translate(float64(x-len(text)*3), float64(y))
	screen.DrawImage(line, op)
	line.Deallocate()
}
