// Package display hosts a game session in an Ebiten window.
package display

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/crt-invaders/internal/game"
	"github.com/Garsondee/crt-invaders/internal/sound"
)

// Game adapts a session to ebiten.Game. Ebiten's fixed 60 TPS Update is the
// tick; Draw renders the latest state.
type Game struct {
	session  *game.Session
	renderer *game.Renderer
	canvas   canvas
	sink     *sound.EbitenSink
	panel    logPanel
}

// New wraps a session. sink may be nil for a silent window.
func New(s *game.Session, r *game.Renderer, sink *sound.EbitenSink) *Game {
	return &Game{session: s, renderer: r, sink: sink}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.panel.toggle()
	}
	err := g.session.Update(pollInput())
	if g.sink != nil {
		g.sink.Update(game.TickDuration)
	}
	if errors.Is(err, game.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.dst = screen
	g.renderer.Draw(&g.canvas, g.session)
	g.panel.Draw(screen, g.session.Log())
}

func (g *Game) Layout(_, _ int) (int, int) {
	return game.Width, game.Height
}
