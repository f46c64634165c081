// Package sound synthesises the game's cues and background loop and plays
// them through either Ebiten's audio context or the beep speaker.
package sound

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/Garsondee/crt-invaders/internal/game"
)

// SampleRate is the output rate for every buffer (16-bit stereo).
const SampleRate = beep.SampleRate(44100)

// Format is the PCM layout of every clip.
var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// Tone describes a fixed sine cue.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Volume   float64
}

// CueTones are the cue parameters.
var CueTones = [game.CueCount]Tone{
	game.CueShoot:     {Freq: 440, Duration: 100 * time.Millisecond, Volume: 0.5},
	game.CueHit:       {Freq: 220, Duration: 100 * time.Millisecond, Volume: 0.5},
	game.CueExplosion: {Freq: 100, Duration: 200 * time.Millisecond, Volume: 0.5},
	game.CueStep:      {Freq: 200, Duration: 50 * time.Millisecond, Volume: 0.5},
	game.CueWin:       {Freq: 880, Duration: 500 * time.Millisecond, Volume: 0.3},
	game.CueLose:      {Freq: 110, Duration: 500 * time.Millisecond, Volume: 0.3},
}

// Background loop composition.
var (
	melodyNotes = []float64{440, 494, 523, 587, 659}
	bassNotes   = []float64{110, 123, 138}
)

const (
	musicSegments   = 16
	segmentDuration = 200 * time.Millisecond
	melodyMix       = 0.7
	bassMix         = 0.3
	bassAmplitude   = 0.5
	musicGain       = 0.1

	// MusicVolume is the playback volume of the background loop.
	MusicVolume = 0.2
)

// Clip is a pre-rendered stereo buffer.
type Clip struct {
	buf *beep.Buffer
}

// Len returns the clip length in samples per channel.
func (c *Clip) Len() int { return c.buf.Len() }

// Duration returns the clip's playing time.
func (c *Clip) Duration() time.Duration { return SampleRate.D(c.buf.Len()) }

// Streamer returns a fresh seekable streamer over the whole clip.
func (c *Clip) Streamer() beep.StreamSeeker { return c.buf.Streamer(0, c.buf.Len()) }

// PCM16 encodes the clip as signed 16-bit little-endian interleaved stereo.
func (c *Clip) PCM16() []byte {
	out := make([]byte, 0, c.buf.Len()*4)
	s := c.Streamer()
	chunk := make([][2]float64, 512)
	for {
		n, ok := s.Stream(chunk)
		for _, smp := range chunk[:n] {
			for ch := 0; ch < 2; ch++ {
				v := int16(clampUnit(smp[ch]) * math.MaxInt16)
				out = append(out, byte(v), byte(v>>8))
			}
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}

// Peak returns the largest absolute sample value in the clip.
func (c *Clip) Peak() float64 {
	peak := 0.0
	s := c.Streamer()
	chunk := make([][2]float64, 512)
	for {
		n, ok := s.Stream(chunk)
		for _, smp := range chunk[:n] {
			peak = math.Max(peak, math.Max(math.Abs(smp[0]), math.Abs(smp[1])))
		}
		if !ok || n == 0 {
			return peak
		}
	}
}

func render(s beep.Streamer) *Clip {
	buf := beep.NewBuffer(Format)
	buf.Append(s)
	return &Clip{buf: buf}
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// newVolume scales a streamer linearly; a non-positive volume is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// sine returns a sine streamer of the given frequency limited to n samples.
func sine(freq float64, n int) (beep.Streamer, error) {
	tone, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine %.0fHz: %w", freq, err)
	}
	return beep.Take(n, tone), nil
}

// RenderTone synthesises a fixed-duration sine buffer at the tone's volume.
func RenderTone(t Tone) (*Clip, error) {
	s, err := sine(t.Freq, SampleRate.N(t.Duration))
	if err != nil {
		return nil, err
	}
	return render(newVolume(s, t.Volume)), nil
}

// ComposeMusic concatenates musicSegments random melody notes, each layered
// over a random bass note at half amplitude and mixed 0.7/0.3.
func ComposeMusic(rng *rand.Rand) (*Clip, error) {
	n := SampleRate.N(segmentDuration)
	segments := make([]beep.Streamer, 0, musicSegments)
	for i := 0; i < musicSegments; i++ {
		note := melodyNotes[rng.Intn(len(melodyNotes))]
		bassNote := bassNotes[rng.Intn(len(bassNotes))]

		melody, err := sine(note, n)
		if err != nil {
			return nil, err
		}
		bass, err := sine(bassNote, n)
		if err != nil {
			return nil, err
		}
		segments = append(segments, beep.Mix(
			newVolume(melody, melodyMix),
			newVolume(bass, bassMix*bassAmplitude),
		))
	}
	return render(newVolume(beep.Seq(segments...), musicGain)), nil
}

// Bank holds every clip synthesised at startup.
type Bank struct {
	Cues  [game.CueCount]*Clip
	Music *Clip
}

// NewBank synthesises all cues and composes one background loop.
func NewBank(rng *rand.Rand) (*Bank, error) {
	b := &Bank{}
	for c := game.Cue(0); c < game.CueCount; c++ {
		clip, err := RenderTone(CueTones[c])
		if err != nil {
			return nil, fmt.Errorf("cue %s: %w", c, err)
		}
		b.Cues[c] = clip
	}
	music, err := ComposeMusic(rng)
	if err != nil {
		return nil, fmt.Errorf("music: %w", err)
	}
	b.Music = music
	return b, nil
}
