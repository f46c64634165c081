package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/Garsondee/crt-invaders/internal/game"
	"github.com/Garsondee/crt-invaders/internal/sound"
	"github.com/Garsondee/crt-invaders/internal/term"
)

func main() {
	seed := time.Now().UnixNano()
	bank, err := sound.NewBank(rand.New(rand.NewSource(seed))) // #nosec G404 -- music only
	if err != nil {
		log.Fatal(err)
	}
	sink, err := sound.NewSpeakerSink(bank)
	if err != nil {
		log.Fatal(err)
	}
	host, err := term.NewHost()
	if err != nil {
		sink.Close()
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := game.NewSession(
		game.WithSeed(seed),
		game.WithAudio(sink),
		game.WithCopyHandler(game.CopyToClipboard),
	)
	err = game.Run(ctx, session, game.NewRenderer(seed+1), host, game.TickDuration)
	host.Close()
	sink.Close()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
