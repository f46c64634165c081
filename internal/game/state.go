package game

// Phase is the top-level game state. Exactly one is active at a time.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseWin
	PhaseLose
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseWin:
		return "win"
	case PhaseLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends active simulation.
func (p Phase) Terminal() bool {
	return p == PhaseWin || p == PhaseLose
}

// transitions is the allowed phase graph.
var transitions = map[Phase][]Phase{
	PhaseMenu:    {PhasePlaying},
	PhasePlaying: {PhaseWin, PhaseLose},
	PhaseWin:     {PhaseMenu},
	PhaseLose:    {PhaseMenu},
}

// CanTransition reports whether from→to is an edge of the phase graph.
func CanTransition(from, to Phase) bool {
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// setPhase moves the session to a new phase, logging the change. Edges that
// are not part of the graph are refused.
func (s *Session) setPhase(to Phase) bool {
	from := s.phase
	if !CanTransition(from, to) {
		return false
	}
	s.phase = to
	s.log.Add(s.tick, "phase", "change", from.String()+" → "+to.String(), 0)
	return true
}

// onPrimary handles the edge-triggered primary input (click or space)
// according to the current phase.
func (s *Session) onPrimary() {
	switch s.phase {
	case PhaseMenu:
		s.startRound()
	case PhasePlaying:
		s.tryFire()
	case PhaseWin, PhaseLose:
		s.setPhase(PhaseMenu)
	}
}

// startRound resets the entity model and begins play with music.
func (s *Session) startRound() {
	s.World.Reset()
	s.lastShotTick = s.tick - cooldownTicks
	s.Stats = Stats{}
	s.setPhase(PhasePlaying)
	s.audio.StartMusic()
	s.log.Add(s.tick, "music", "start", "", 0)
}

// endRound enters a terminal phase, plays its cue and fades the music.
func (s *Session) endRound(to Phase) {
	if !s.setPhase(to) {
		return
	}
	if to == PhaseWin {
		s.playCue(CueWin)
	} else {
		s.playCue(CueLose)
	}
	s.audio.FadeMusic(MusicFade)
	s.log.Add(s.tick, "music", "fade", MusicFade.String(), MusicFade.Seconds())
}
