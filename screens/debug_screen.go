package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"crypthack/systems"
)

const (
	debugWidth      = 600
	debugHeight     = 400
	debugLineHeight = 16
	debugTop        = 30
)

// DebugScreen shows the generation message log in a scrollable modal
type DebugScreen struct {
	log          *systems.MessageLog
	scrollOffset int
}

// NewDebugScreen creates a debug screen over log
func NewDebugScreen(log *systems.MessageLog) *DebugScreen {
	return &DebugScreen{log: log}
}

func (s *DebugScreen) visibleLines() int {
	return (debugHeight - debugTop - debugLineHeight) / debugLineHeight
}

// Update handles input for the debug screen
func (s *DebugScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && s.scrollOffset > 0 {
		s.scrollOffset--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && s.scrollOffset < s.log.Len()-s.visibleLines() {
		s.scrollOffset++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return ErrCloseScreen
	}
	return nil
}

// Draw renders the debug screen
func (s *DebugScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	x := (bounds.Dx() - debugWidth) / 2
	y := (bounds.Dy() - debugHeight) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), debugWidth, debugHeight, color.Black, false)
	vector.StrokeRect(screen, float32(x), float32(y), debugWidth, debugHeight, 2, color.White, false)
	ebitenutil.DebugPrintAt(screen, "MESSAGE LOG", x+(debugWidth-11*6)/2, y+8)

	// Newest first
	messages := s.log.RecentMessages(s.log.Len())
	for i := 0; i < s.visibleLines() && s.scrollOffset+i < len(messages); i++ {
		msg := messages[s.scrollOffset+i]
		lineY := y + debugTop + i*debugLineHeight
		vector.DrawFilledRect(screen, float32(x+8), float32(lineY+5), 6, 6, msg.GetColor(), false)
		ebitenutil.DebugPrintAt(screen, msg.Text, x+20, lineY)
	}

	ebitenutil.DebugPrintAt(screen, "Up/Down: Scroll  Esc: Close", x+10, y+debugHeight-20)
}
