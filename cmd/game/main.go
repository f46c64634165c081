package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/crt-invaders/internal/display"
	"github.com/Garsondee/crt-invaders/internal/game"
	"github.com/Garsondee/crt-invaders/internal/sound"
)

func main() {
	seed := time.Now().UnixNano()
	bank, err := sound.NewBank(rand.New(rand.NewSource(seed))) // #nosec G404 -- music only
	if err != nil {
		log.Fatal(err)
	}
	sink, err := sound.NewEbitenSink(sound.NewContext(), bank)
	if err != nil {
		log.Fatal(err)
	}

	session := game.NewSession(
		game.WithSeed(seed),
		game.WithAudio(sink),
		game.WithCopyHandler(game.CopyToClipboard),
		game.WithSimLog(game.NewBoundedSimLog(display.LogPanelEntries)),
	)

	ebiten.SetWindowTitle("Space Invaders")
	ebiten.SetWindowSize(game.Width, game.Height)
	ebiten.SetTPS(game.TPS)
	if err := ebiten.RunGame(display.New(session, game.NewRenderer(seed+1), sink)); err != nil {
		log.Fatal(err)
	}
}
