package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ModalScreen represents a popup window that appears on top of other screens.
// Escape or the key that opened it closes it.
type ModalScreen struct {
	title      string
	lines      []string
	width      int
	height     int
	closeKey   ebiten.Key
	background color.Color
}

// NewModalScreen creates a new modal screen
func NewModalScreen(title string, lines []string, closeKey ebiten.Key) *ModalScreen {
	return &ModalScreen{
		title:      title,
		lines:      lines,
		width:      360,
		height:     40 + 16*len(lines),
		closeKey:   closeKey,
		background: color.RGBA{0, 0, 0, 220},
	}
}

// Update implements the Screen interface
func (s *ModalScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(s.closeKey) {
		return ErrCloseScreen
	}
	return nil
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	x := float32(bounds.Dx()-s.width) / 2
	y := float32(bounds.Dy()-s.height) / 2

	vector.DrawFilledRect(screen, x, y, float32(s.width), float32(s.height), s.background, false)
	vector.StrokeRect(screen, x, y, float32(s.width), float32(s.height), 2, color.White, false)

	titleX := int(x) + (s.width-len(s.title)*6)/2
	ebitenutil.DebugPrintAt(screen, s.title, titleX, int(y)+8)
	for i, line := range s.lines {
		ebitenutil.DebugPrintAt(screen, line, int(x)+10, int(y)+30+i*16)
	}
}
