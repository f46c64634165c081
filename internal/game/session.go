package game

import (
	"errors"
	"math/rand"
	"time"
)

// ErrQuit is returned by Session.Update when the quit input was received.
var ErrQuit = errors.New("game: quit requested")

// Stats are per-round counters, cleared when a round starts.
type Stats struct {
	ShotsFired     int
	Hits           int
	Kills          int
	LivesLost      int
	ShieldHits     int
	FormationSteps int
	TicksPlayed    int
}

// Accuracy is hits per shot fired, 0 when nothing was fired.
func (st Stats) Accuracy() float64 {
	if st.ShotsFired == 0 {
		return 0
	}
	return float64(st.Hits) / float64(st.ShotsFired)
}

// Session is the single owner of all game state: entities, phase, timers,
// randomness and the audio sink. Only the loop goroutine touches it.
type Session struct {
	World *World
	Stats Stats

	phase        Phase
	tick         int     // ticks since the session was created
	blink        float64 // seconds, grows by the frame delta every tick
	lastShotTick int
	rng          *rand.Rand
	audio        AudioSink
	log          *SimLog
	onCopy       func(report string)
}

// Option configures a Session.
type Option func(*Session)

// WithSeed makes the session's randomness deterministic.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
	}
}

// WithAudio sets the audio sink. The default is silent.
func WithAudio(a AudioSink) Option {
	return func(s *Session) {
		if a != nil {
			s.audio = a
		}
	}
}

// WithSimLog records structured events into l.
func WithSimLog(l *SimLog) Option {
	return func(s *Session) { s.log = l }
}

// WithCopyHandler sets the callback receiving the session report when the
// copy input arrives on a terminal screen.
func WithCopyHandler(fn func(report string)) Option {
	return func(s *Session) { s.onCopy = fn }
}

// NewSession returns a session sitting on the menu.
func NewSession(opts ...Option) *Session {
	s := &Session{
		World: NewWorld(),
		phase: PhaseMenu,
		audio: silentAudio{},
	}
	for _, o := range opts {
		o(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game only
	}
	s.lastShotTick = -cooldownTicks
	return s
}

// Phase returns the active phase.
func (s *Session) Phase() Phase { return s.phase }

// Tick returns the number of ticks processed so far.
func (s *Session) Tick() int { return s.tick }

// Blink returns the accumulated blink timer in seconds.
func (s *Session) Blink() float64 { return s.blink }

// Log returns the session's event log, which may be nil.
func (s *Session) Log() *SimLog { return s.log }

// Update runs one fixed tick: drain the input events in arrival order, then
// advance the simulation when playing. It returns ErrQuit on the quit event.
func (s *Session) Update(in Input) error {
	s.tick++
	s.blink += tickSeconds

	for _, ev := range in.Events {
		switch ev {
		case EventQuit:
			return ErrQuit
		case EventPrimary:
			s.onPrimary()
		case EventCopy:
			s.copyReport()
		}
	}

	if s.phase == PhasePlaying {
		s.step(in.PointerX)
	}
	return nil
}

// step is the PLAYING simulation: steer, integrate projectiles, formation
// behaviour, then collisions and terminal checks.
func (s *Session) step(pointerX float64) {
	w := s.World
	s.Stats.TicksPlayed++
	w.SteerPlayer(pointerX)
	w.moveProjectiles()
	s.updateFormation()
	s.resolveCollisions()
}

// CanFire reports whether the shot cooldown has elapsed.
func (s *Session) CanFire() bool {
	return s.tick-s.lastShotTick >= cooldownTicks
}

// tryFire spawns exactly one player projectile if the cooldown allows it.
func (s *Session) tryFire() bool {
	if !s.CanFire() {
		s.log.AddVerbose(s.tick, "shot", "rejected", "", float64(s.tick-s.lastShotTick))
		return false
	}
	s.World.FirePlayerShot()
	s.lastShotTick = s.tick
	s.Stats.ShotsFired++
	s.playCue(CueShoot)
	s.log.Add(s.tick, "shot", "fired", "", s.World.Player.X)
	return true
}

func (s *Session) copyReport() {
	if !s.phase.Terminal() || s.onCopy == nil {
		return
	}
	s.onCopy(s.Report())
}
