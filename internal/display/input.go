package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/crt-invaders/internal/game"
)

// pollInput collects the edge-triggered presses of this tick and the current
// pointer x. Held buttons do not repeat.
func pollInput() game.Input {
	mx, _ := ebiten.CursorPosition()
	in := game.Input{PointerX: float64(mx)}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in = in.Press(game.EventQuit)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in = in.Press(game.EventPrimary)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in = in.Press(game.EventPrimary)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		in = in.Press(game.EventCopy)
	}
	return in
}
