package game

// RoundOutcome classifies how a round ended.
type RoundOutcome int

const (
	OutcomeInconclusive RoundOutcome = iota
	OutcomeCleared                   // every invader destroyed
	OutcomeShotDown                  // lives exhausted
	OutcomeInvaded                   // an invader reached the player's row
)

func (o RoundOutcome) String() string {
	switch o {
	case OutcomeCleared:
		return "cleared"
	case OutcomeShotDown:
		return "shot_down"
	case OutcomeInvaded:
		return "invaded"
	case OutcomeInconclusive:
		return "inconclusive"
	default:
		return "unknown"
	}
}

// RoundOutcomeReason is a snapshot of the round at the time it was judged.
type RoundOutcomeReason struct {
	Outcome     RoundOutcome
	Score       int
	Lives       int
	Alive       int
	Ticks       int
	Accuracy    float64
	Description string
}

// DetermineRoundOutcome inspects a session and explains why its round ended,
// or reports inconclusive if it is still in progress.
func DetermineRoundOutcome(s *Session) RoundOutcomeReason {
	w := s.World
	r := RoundOutcomeReason{
		Score:    w.Player.Score,
		Lives:    w.Player.Lives,
		Alive:    w.AliveCount(),
		Ticks:    s.Stats.TicksPlayed,
		Accuracy: s.Stats.Accuracy(),
	}
	switch s.Phase() {
	case PhaseWin:
		r.Outcome = OutcomeCleared
		r.Description = "all invaders destroyed"
	case PhaseLose:
		if w.Invaded() {
			r.Outcome = OutcomeInvaded
			r.Description = "formation reached the player's row"
		} else {
			r.Outcome = OutcomeShotDown
			r.Description = "no lives left"
		}
	default:
		r.Outcome = OutcomeInconclusive
		r.Description = "round still in progress"
	}
	return r
}
