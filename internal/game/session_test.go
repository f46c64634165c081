package game

import (
	"errors"
	"strings"
	"testing"
)

func primary(ts *TestSim) Input {
	return Input{PointerX: ts.World().Player.X}.Press(EventPrimary)
}

func TestSession_StartsOnMenu(t *testing.T) {
	s := NewSession(WithSeed(1))
	if s.Phase() != PhaseMenu {
		t.Fatalf("expected menu, got %s", s.Phase())
	}
	for i := 0; i < 120; i++ {
		if err := s.Update(Input{PointerX: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if s.Phase() != PhaseMenu {
		t.Fatalf("expected menu to persist without input, got %s", s.Phase())
	}
	if s.World.Player.X != 400 {
		t.Fatalf("expected no simulation on the menu, player moved to %.1f", s.World.Player.X)
	}
	if s.Blink() < 1.99 || s.Blink() > 2.01 {
		t.Fatalf("expected blink timer near 2s after 120 ticks, got %.3f", s.Blink())
	}
}

func TestSession_MenuPrimaryStartsRound(t *testing.T) {
	ts := NewTestSim()
	ts.Start()

	if ts.Session.Phase() != PhasePlaying {
		t.Fatalf("expected playing, got %s", ts.Session.Phase())
	}
	if ts.Audio.MusicStarts != 1 {
		t.Fatalf("expected music started once, got %d", ts.Audio.MusicStarts)
	}
	if len(ts.World().PlayerShots) != 0 {
		t.Fatalf("expected the starting press not to fire, got %d shots", len(ts.World().PlayerShots))
	}
	if !ts.SimLog.HasEntry("phase", "change", "menu → playing") {
		t.Fatalf("expected a phase change entry\n%s", ts.SimLog.Format())
	}
}

func TestSession_Cooldown(t *testing.T) {
	ts := NewTestSim()
	ts.Start()

	accepted := 0
	for i := 0; i < 19; i++ {
		before := len(ts.World().PlayerShots)
		if err := ts.Step(primary(ts)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		added := len(ts.World().PlayerShots) - before
		if added > 1 {
			t.Fatalf("tick %d: expected at most one projectile per shot, got %d", ts.Session.Tick(), added)
		}
		accepted += added
	}
	if accepted != 2 {
		t.Fatalf("expected 2 accepted shots across 19 ticks (cooldown 18), got %d", accepted)
	}
	if ts.Session.Stats.ShotsFired != 2 || ts.Audio.Count(CueShoot) != 2 {
		t.Fatalf("expected 2 shots and 2 shoot cues, got %d and %d", ts.Session.Stats.ShotsFired, ts.Audio.Count(CueShoot))
	}
}

func TestSession_CooldownBoundary(t *testing.T) {
	ts := NewTestSim()
	ts.Start()
	ts.Step(primary(ts))
	if ts.Session.Stats.ShotsFired != 1 {
		t.Fatalf("expected the first shot after start to be accepted")
	}
	for i := 0; i < cooldownTicks-1; i++ {
		ts.RunTicks(1)
	}
	if ts.Session.CanFire() {
		t.Fatalf("expected cooldown to still be active after %d ticks", cooldownTicks-1)
	}
	ts.RunTicks(1)
	if !ts.Session.CanFire() {
		t.Fatalf("expected cooldown to elapse after %d ticks", cooldownTicks)
	}
}

func TestSession_VerboseLogsRejectedShots(t *testing.T) {
	ts := NewTestSim(WithVerbose(true))
	ts.Start()
	ts.Step(primary(ts))
	ts.Step(primary(ts))
	if !ts.SimLog.HasEntry("shot", "rejected", "") {
		t.Fatalf("expected a rejected shot entry in verbose mode")
	}

	quiet := NewTestSim()
	quiet.Start()
	quiet.Step(primary(quiet))
	quiet.Step(primary(quiet))
	if quiet.SimLog.HasEntry("shot", "rejected", "") {
		t.Fatalf("expected rejected shots to be skipped without verbose")
	}
}

func TestSession_TerminalWaitsForPrimary(t *testing.T) {
	ts := playingSim(t)
	s := ts.Session
	s.endRound(PhaseWin)

	ts.RunTicks(60)
	if s.Phase() != PhaseWin {
		t.Fatalf("expected win to hold without input, got %s", s.Phase())
	}
	ts.Step(primary(ts))
	if s.Phase() != PhaseMenu {
		t.Fatalf("expected menu after primary, got %s", s.Phase())
	}
	ts.Step(primary(ts))
	if s.Phase() != PhasePlaying {
		t.Fatalf("expected a new round, got %s", s.Phase())
	}
	if s.World.AliveCount() != InvaderCount || s.World.Player.Score != 0 || s.World.Player.Lives != 3 {
		t.Fatalf("expected a fully reset world for the new round")
	}
	if s.Stats.ShotsFired != 0 {
		t.Fatalf("expected round stats cleared, got %+v", s.Stats)
	}
}

func TestSession_TerminalFreezesWorld(t *testing.T) {
	ts := playingSim(t)
	s := ts.Session
	w := s.World
	w.PlayerShots = []Projectile{{X: 10, Y: 300, Owner: OwnerPlayer}}
	s.endRound(PhaseLose)

	ts.RunTicks(30)
	if w.PlayerShots[0].Y != 300 {
		t.Fatalf("expected projectiles frozen after the round ended, got y=%.0f", w.PlayerShots[0].Y)
	}
}

func TestSession_QuitReturnsErrQuit(t *testing.T) {
	s := NewSession(WithSeed(1))
	err := s.Update(Input{}.Press(EventQuit).Press(EventPrimary))
	if !errors.Is(err, ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}
	if s.Phase() != PhaseMenu {
		t.Fatalf("expected events after quit to be dropped, got %s", s.Phase())
	}
}

func TestSession_CopyOnlyOnTerminal(t *testing.T) {
	var reports []string
	s := NewSession(WithSeed(1), WithCopyHandler(func(r string) { reports = append(reports, r) }))

	s.Update(Input{}.Press(EventCopy))
	if len(reports) != 0 {
		t.Fatalf("expected copy ignored on the menu")
	}
	s.Update(Input{PointerX: 400}.Press(EventPrimary))
	s.Update(Input{PointerX: 400}.Press(EventCopy))
	if len(reports) != 0 {
		t.Fatalf("expected copy ignored while playing")
	}
	s.endRound(PhaseLose)
	s.Update(Input{}.Press(EventCopy))
	if len(reports) != 1 {
		t.Fatalf("expected one report on the lose screen, got %d", len(reports))
	}
	if !strings.Contains(reports[0], "outcome=lose") {
		t.Fatalf("expected the report to name the outcome, got:\n%s", reports[0])
	}
}

func TestSession_SameSeedSameRound(t *testing.T) {
	a := NewTestSim(WithSimSeed(99), WithAutopilot())
	b := NewTestSim(WithSimSeed(99), WithAutopilot())
	a.RunTicks(1500)
	b.RunTicks(1500)

	if a.World().Player != b.World().Player {
		t.Fatalf("expected identical players, got %+v vs %+v", a.World().Player, b.World().Player)
	}
	if a.World().Invaders != b.World().Invaders {
		t.Fatalf("expected identical invader grids")
	}
	if a.Session.Stats != b.Session.Stats {
		t.Fatalf("expected identical stats, got %+v vs %+v", a.Session.Stats, b.Session.Stats)
	}
}

func TestStateGraph(t *testing.T) {
	allowed := map[[2]Phase]bool{
		{PhaseMenu, PhasePlaying}: true,
		{PhasePlaying, PhaseWin}:  true,
		{PhasePlaying, PhaseLose}: true,
		{PhaseWin, PhaseMenu}:     true,
		{PhaseLose, PhaseMenu}:    true,
	}
	phases := []Phase{PhaseMenu, PhasePlaying, PhaseWin, PhaseLose}
	for _, from := range phases {
		for _, to := range phases {
			if got := CanTransition(from, to); got != allowed[[2]Phase{from, to}] {
				t.Fatalf("%s → %s: expected %v, got %v", from, to, allowed[[2]Phase{from, to}], got)
			}
		}
	}
}

func TestEndRound_OnlyOnce(t *testing.T) {
	ts := playingSim(t)
	s := ts.Session
	s.endRound(PhaseLose)
	s.endRound(PhaseWin)
	s.endRound(PhaseLose)

	if s.Phase() != PhaseLose {
		t.Fatalf("expected lose to stick, got %s", s.Phase())
	}
	if ts.Audio.Count(CueWin)+ts.Audio.Count(CueLose) != 1 {
		t.Fatalf("expected a single terminal cue, got %v", ts.Audio.Cues)
	}
}

func TestReport_Contents(t *testing.T) {
	ts := playingSim(t)
	s := ts.Session
	s.World.PlayerShots = []Projectile{{X: 240, Y: 100, Owner: OwnerPlayer}}
	s.Stats.ShotsFired = 2
	s.resolveCollisions()

	r := s.Report()
	for _, want := range []string{"score=50", "alive_invaders=54/55", "accuracy=50%", "block=1", "shields: 5/5 5/5 5/5 5/5"} {
		if !strings.Contains(r, want) {
			t.Fatalf("expected report to contain %q, got:\n%s", want, r)
		}
	}
}

func TestDetermineRoundOutcome(t *testing.T) {
	ts := playingSim(t)
	if got := DetermineRoundOutcome(ts.Session).Outcome; got != OutcomeInconclusive {
		t.Fatalf("expected inconclusive mid-round, got %s", got)
	}
	ts.World().Player.Lives = 0
	ts.Session.endRound(PhaseLose)
	if got := DetermineRoundOutcome(ts.Session).Outcome; got != OutcomeShotDown {
		t.Fatalf("expected shot_down, got %s", got)
	}

	win := playingSim(t)
	win.Session.endRound(PhaseWin)
	if got := DetermineRoundOutcome(win.Session).Outcome; got != OutcomeCleared {
		t.Fatalf("expected cleared, got %s", got)
	}
}
