package game

import "time"

// Cue is a short pre-synthesised sound triggered by a game event.
type Cue int

const (
	CueShoot Cue = iota
	CueHit
	CueExplosion
	CueStep
	CueWin
	CueLose
	CueCount
)

func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueHit:
		return "hit"
	case CueExplosion:
		return "explosion"
	case CueStep:
		return "step"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	default:
		return "unknown"
	}
}

// AudioSink is the audio output capability consumed by the session. All
// calls are fire-and-forget and must not block the tick.
type AudioSink interface {
	PlayCue(c Cue)
	StartMusic()
	FadeMusic(d time.Duration)
}

type silentAudio struct{}

func (silentAudio) PlayCue(Cue)             {}
func (silentAudio) StartMusic()             {}
func (silentAudio) FadeMusic(time.Duration) {}

// CueRecorder is an AudioSink that records every call; used by headless runs.
type CueRecorder struct {
	Cues         []Cue
	MusicStarts  int
	MusicFades   int
	LastFadeTime time.Duration
}

func (r *CueRecorder) PlayCue(c Cue) { r.Cues = append(r.Cues, c) }
func (r *CueRecorder) StartMusic()   { r.MusicStarts++ }
func (r *CueRecorder) FadeMusic(d time.Duration) {
	r.MusicFades++
	r.LastFadeTime = d
}

// Count returns how many times cue c was played.
func (r *CueRecorder) Count(c Cue) int {
	n := 0
	for _, got := range r.Cues {
		if got == c {
			n++
		}
	}
	return n
}

// playCue forwards to the sink and logs the cue.
func (s *Session) playCue(c Cue) {
	s.audio.PlayCue(c)
	s.log.Add(s.tick, "cue", c.String(), "", 0)
}
