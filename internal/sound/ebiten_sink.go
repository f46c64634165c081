package sound

import (
	"bytes"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/Garsondee/crt-invaders/internal/game"
)

// NewContext creates the Ebiten audio context at the bank's sample rate.
func NewContext() *audio.Context {
	return audio.NewContext(int(SampleRate))
}

// EbitenSink plays cues through Ebiten's audio context. Every trigger gets
// its own player, so overlapping cues mix in the backend.
type EbitenSink struct {
	ctx   *audio.Context
	cues  [game.CueCount][]byte
	music *audio.Player
	fade  ramp
}

// NewEbitenSink encodes the bank to 16-bit PCM and prepares the looping
// music player.
func NewEbitenSink(ctx *audio.Context, b *Bank) (*EbitenSink, error) {
	s := &EbitenSink{ctx: ctx}
	for c, clip := range b.Cues {
		s.cues[c] = clip.PCM16()
	}
	pcm := b.Music.PCM16()
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	p, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("music player: %w", err)
	}
	p.SetVolume(MusicVolume)
	s.music = p
	return s, nil
}

func (s *EbitenSink) PlayCue(c game.Cue) {
	if c < 0 || c >= game.CueCount {
		return
	}
	s.ctx.NewPlayerFromBytes(s.cues[c]).Play()
}

func (s *EbitenSink) StartMusic() {
	s.fade = ramp{}
	_ = s.music.Rewind()
	s.music.SetVolume(MusicVolume)
	s.music.Play()
}

func (s *EbitenSink) FadeMusic(d time.Duration) {
	if !s.music.IsPlaying() {
		return
	}
	s.fade.start(s.music.Volume(), d.Seconds())
}

// Update advances an active fade by dt; call once per tick.
func (s *EbitenSink) Update(dt time.Duration) {
	if !s.fade.active {
		return
	}
	vol, done := s.fade.advance(dt.Seconds())
	if done {
		s.fade = ramp{}
		s.music.Pause()
		s.music.SetVolume(MusicVolume)
		return
	}
	s.music.SetVolume(vol)
}
