package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Garsondee/crt-invaders/internal/game"
)

// SpeakerSink plays cues through the beep speaker. Cues are added to a
// shared mixer; the music loop is wrapped in a fader.
type SpeakerSink struct {
	bank  *Bank
	mixer *beep.Mixer
	music *fader
}

// NewSpeakerSink opens the audio device and starts the mixer.
func NewSpeakerSink(b *Bank) (*SpeakerSink, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	s := &SpeakerSink{bank: b, mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

func (s *SpeakerSink) PlayCue(c game.Cue) {
	if c < 0 || c >= game.CueCount {
		return
	}
	speaker.Lock()
	s.mixer.Add(s.bank.Cues[c].Streamer())
	speaker.Unlock()
}

func (s *SpeakerSink) StartMusic() {
	speaker.Lock()
	defer speaker.Unlock()
	if s.music != nil {
		s.music.stop()
	}
	s.music = newFader(beep.Loop(-1, s.bank.Music.Streamer()), MusicVolume)
	s.mixer.Add(s.music)
}

func (s *SpeakerSink) FadeMusic(d time.Duration) {
	speaker.Lock()
	defer speaker.Unlock()
	if s.music == nil || s.music.stopped {
		return
	}
	s.music.fadeOut(SampleRate.N(d))
}

// Close stops all sounds and releases the device.
func (s *SpeakerSink) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
