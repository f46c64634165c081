package game

import (
	"fmt"
	"strings"
)

// Report renders a plain-text summary of the current round, suitable for the
// clipboard or the headless report.
func (s *Session) Report() string {
	w := s.World
	st := s.Stats
	var b strings.Builder
	fmt.Fprintf(&b, "--- Space Invaders session report ---\n")
	fmt.Fprintf(&b, "outcome=%s tick=%d played=%.1fs\n", s.phase, s.tick, float64(st.TicksPlayed)*tickSeconds)
	fmt.Fprintf(&b, "score=%d lives=%d alive_invaders=%d/%d\n", w.Player.Score, w.Player.Lives, w.AliveCount(), InvaderCount)
	fmt.Fprintf(&b, "shots=%d hits=%d accuracy=%.0f%% lives_lost=%d\n", st.ShotsFired, st.Hits, st.Accuracy()*100, st.LivesLost)
	fmt.Fprintf(&b, "shield_hits=%d formation_steps=%d speed=%.2f\n", st.ShieldHits, st.FormationSteps, w.Formation.Speed)

	b.WriteString("kills by row:")
	for r := 0; r < InvaderRows; r++ {
		dead := 0
		for c := 0; c < InvaderCols; c++ {
			if !w.Invaders[r][c].Alive {
				dead++
			}
		}
		fmt.Fprintf(&b, " %s=%d", archetypeForRow(r), dead)
	}
	b.WriteByte('\n')

	b.WriteString("shields:")
	for _, sh := range w.Shields {
		fmt.Fprintf(&b, " %d/%d", sh.Health, ShieldHealth)
	}
	b.WriteByte('\n')
	return b.String()
}
