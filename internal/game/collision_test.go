package game

import "testing"

// playingSim returns a harness that has just started a round, with the
// projectiles and formation step from the first tick cleared away.
func playingSim(t *testing.T) *TestSim {
	t.Helper()
	ts := NewTestSim(WithSimSeed(42))
	ts.Start()
	if ts.Session.Phase() != PhasePlaying {
		t.Fatalf("setup: expected playing, got %s", ts.Session.Phase())
	}
	w := ts.World()
	w.Reset()
	ts.Audio.Cues = nil
	return ts
}

func TestCollision_PlayerShotKillsInvader(t *testing.T) {
	ts := playingSim(t)
	s := ts.Session
	w := s.World
	w.PlayerShots = []Projectile{{X: 240, Y: 100, Owner: OwnerPlayer}}

	s.resolveCollisions()

	if w.Invaders[0][0].Alive {
		t.Fatalf("expected invader r0c0 destroyed")
	}
	if w.Player.Score != 50 {
		t.Fatalf("expected score 50, got %d", w.Player.Score)
	}
	if len(w.PlayerShots) != 0 {
		t.Fatalf("expected the projectile removed, got %d", len(w.PlayerShots))
	}
	if w.AliveCount() != 54 {
		t.Fatalf("expected 54 alive, got %d", w.AliveCount())
	}
	if ts.Audio.Count(CueHit) != 1 {
		t.Fatalf("expected one hit cue, got %d", ts.Audio.Count(CueHit))
	}
	if !ts.SimLog.HasEntry("kill", "block", "r0c0") {
		t.Fatalf("expected a kill entry for r0c0\n%s", ts.SimLog.Format())
	}
}

func TestCollision_OneKillPerProjectile(t *testing.T) {
	ts := playingSim(t)
	s := ts.Session
	w := s.World
	// Midway between two neighbours of row 4 (x=240 and x=270): |dx|=9 to r4c0 only.
	w.PlayerShots = []Projectile{{X: 249, Y: 220, Owner: OwnerPlayer}}

	s.resolveCollisions()

	if w.AliveCount() != 54 {
		t.Fatalf("expected exactly one kill, got %d alive", w.AliveCount())
	}
	if w.Player.Score != 10 {
		t.Fatalf("expected bottom-row score 10, got %d", w.Player.Score)
	}
}

func TestCollision_ProximityIsStrict(t *testing.T) {
	ts := playingSim(t)
	s := ts.Session
	w := s.World
	w.PlayerShots = []Projectile{{X: 250, Y: 100, Owner: OwnerPlayer}}

	s.resolveCollisions()

	if !w.Invaders[0][0].Alive {
		t.Fatalf("expected |dx| == 10 to miss")
	}
	if len(w.PlayerShots) != 1 {
		t.Fatalf("expected the projectile to remain in flight")
	}
}

func TestCollision_InvaderShotCostsLife(t *testing.T) {
	ts := playingSim(t)
	s := ts.Session
	w := s.World
	w.InvaderShots = []Projectile{{X: w.Player.X + 5, Y: w.Player.Y - 5, Owner: OwnerInvader}}

	s.resolveCollisions()

	if w.Player.Lives != 2 {
		t.Fatalf("expected 2 lives, got %d", w.Player.Lives)
	}
	if len(w.InvaderShots) != 0 {
		t.Fatalf("expected the projectile removed")
	}
	if s.Phase() != PhasePlaying {
		t.Fatalf("expected play to continue, got %s", s.Phase())
	}
	if ts.Audio.Count(CueExplosion) != 1 {
		t.Fatalf("expected one explosion cue, got %d", ts.Audio.Count(CueExplosion))
	}
}

func TestCollision_LastLifeLosesSameTick(t *testing.T) {
	ts := playingSim(t)
	s := ts.Session
	w := s.World
	w.Player.Lives = 1
	w.InvaderShots = []Projectile{
		{X: w.Player.X, Y: w.Player.Y, Owner: OwnerInvader},
		{X: w.Player.X, Y: w.Player.Y, Owner: OwnerInvader},
	}

	s.resolveCollisions()

	if s.Phase() != PhaseLose {
		t.Fatalf("expected lose, got %s", s.Phase())
	}
	if w.Player.Lives != 0 {
		t.Fatalf("expected lives to stop at 0, got %d", w.Player.Lives)
	}
	if ts.Audio.Count(CueLose) != 1 {
		t.Fatalf("expected exactly one lose cue, got %d", ts.Audio.Count(CueLose))
	}
	if ts.Audio.MusicFades != 1 || ts.Audio.LastFadeTime != MusicFade {
		t.Fatalf("expected one 1s music fade, got %d fades of %s", ts.Audio.MusicFades, ts.Audio.LastFadeTime)
	}
}

func TestCollision_ClearedGridWinsWithShotsInFlight(t *testing.T) {
	ts := playingSim(t)
	s := ts.Session
	w := s.World
	w.eachAlive(func(inv *Invader) {
		if inv.Row != 2 || inv.Col != 5 {
			inv.Alive = false
		}
	})
	last := w.Invaders[2][5]
	w.PlayerShots = []Projectile{
		{X: last.X, Y: last.Y, Owner: OwnerPlayer},
		{X: 700, Y: 300, Owner: OwnerPlayer},
	}
	w.InvaderShots = []Projectile{{X: 50, Y: 400, Owner: OwnerInvader}}

	s.resolveCollisions()

	if s.Phase() != PhaseWin {
		t.Fatalf("expected win, got %s", s.Phase())
	}
	if w.Player.Score != 30 {
		t.Fatalf("expected score 30 for a middle-row kill, got %d", w.Player.Score)
	}
	if ts.Audio.Count(CueWin) != 1 {
		t.Fatalf("expected one win cue, got %d", ts.Audio.Count(CueWin))
	}
}

func TestCollision_InvasionLoses(t *testing.T) {
	ts := playingSim(t)
	s := ts.Session
	w := s.World
	w.Invaders[4][7].Y = 530

	s.resolveCollisions()

	if s.Phase() != PhaseLose {
		t.Fatalf("expected lose on invasion, got %s", s.Phase())
	}
	if got := DetermineRoundOutcome(s).Outcome; got != OutcomeInvaded {
		t.Fatalf("expected invaded outcome, got %s", got)
	}
}

func TestCollision_InvasionOutranksClear(t *testing.T) {
	ts := playingSim(t)
	s := ts.Session
	w := s.World
	w.eachAlive(func(inv *Invader) { inv.Alive = false })
	w.Invaders[0][0].Alive = true
	w.Invaders[0][0].Y = 540

	s.checkTerminal()

	if s.Phase() != PhaseLose {
		t.Fatalf("expected invasion to take precedence, got %s", s.Phase())
	}
}

func TestCollision_DeadInvaderBelowLineIgnored(t *testing.T) {
	ts := playingSim(t)
	s := ts.Session
	w := s.World
	w.Invaders[4][0].Alive = false
	w.Invaders[4][0].Y = 560

	s.checkTerminal()

	if s.Phase() != PhasePlaying {
		t.Fatalf("expected a dead invader not to count as an invasion, got %s", s.Phase())
	}
}

func TestCollision_ShieldAbsorbsBothSides(t *testing.T) {
	ts := playingSim(t)
	s := ts.Session
	w := s.World
	w.InvaderShots = []Projectile{{X: 300, Y: 495, Owner: OwnerInvader}}
	w.PlayerShots = []Projectile{{X: 310, Y: 505, Owner: OwnerPlayer}}

	s.resolveCollisions()

	if w.Shields[1].Health != 3 {
		t.Fatalf("expected shield 1 at health 3, got %d", w.Shields[1].Health)
	}
	if len(w.InvaderShots) != 0 || len(w.PlayerShots) != 0 {
		t.Fatalf("expected both projectiles absorbed")
	}
	if s.Stats.ShieldHits != 2 {
		t.Fatalf("expected 2 shield hits, got %d", s.Stats.ShieldHits)
	}
}

func TestCollision_DeadShieldIsInert(t *testing.T) {
	ts := playingSim(t)
	s := ts.Session
	w := s.World
	w.Shields[0].Health = 0
	w.InvaderShots = []Projectile{{X: 100, Y: 500, Owner: OwnerInvader}}

	s.resolveCollisions()

	if w.Shields[0].Health != 0 {
		t.Fatalf("expected health to stay at 0, got %d", w.Shields[0].Health)
	}
	if len(w.InvaderShots) != 1 {
		t.Fatalf("expected the projectile to pass through a dead shield")
	}
}

func TestCollision_ShieldHealthNeverIncreases(t *testing.T) {
	ts := NewTestSim(WithSimSeed(8), WithAutopilot())
	ts.Start()
	prev := ts.World().Shields
	for i := 0; i < 3000 && ts.Session.Phase() == PhasePlaying; i++ {
		ts.RunTicks(1)
		for j, sh := range ts.World().Shields {
			if sh.Health > prev[j].Health || sh.Health < 0 {
				t.Fatalf("tick %d shield %d: health went %d → %d", ts.Session.Tick(), j, prev[j].Health, sh.Health)
			}
		}
		prev = ts.World().Shields
	}
}
