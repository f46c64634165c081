package game

import "math/rand"

// Formation is the movement state shared by the whole invader grid.
type Formation struct {
	Direction int     // +1 moving right, -1 moving left
	Speed     float64 // pixels per step
}

// SpeedFor returns the formation speed for the given number of alive
// invaders: 1 with a full grid, rising by 0.05 per dead invader.
func SpeedFor(alive int) float64 {
	return 1 + float64(InvaderCount-alive)*speedPerKill
}

// AdvanceFormation performs one formation step: every alive invader moves
// horizontally by direction×speed; if any of them ends up past a side margin
// the direction flips and the whole grid descends once. The speed is then
// recomputed from the alive count. It reports whether an edge bounce occurred.
func (w *World) AdvanceFormation() bool {
	f := &w.Formation
	dx := float64(f.Direction) * f.Speed
	w.eachAlive(func(inv *Invader) { inv.X += dx })

	bounced := false
	w.eachAlive(func(inv *Invader) {
		if inv.X < formationMargin || inv.X > Width-formationMargin {
			bounced = true
		}
	})
	if bounced {
		f.Direction = -f.Direction
		w.eachAlive(func(inv *Invader) { inv.Y += formationDescent })
	}
	f.Speed = SpeedFor(w.AliveCount())
	return bounced
}

// PickShooter selects an alive invader uniformly at random, or nil if the
// grid is empty.
func (w *World) PickShooter(rng *rand.Rand) *Invader {
	alive := w.AliveInvaders()
	if len(alive) == 0 {
		return nil
	}
	return alive[rng.Intn(len(alive))]
}

// updateFormation runs the stochastic per-tick formation behaviour: a step
// with probability advanceChance, then a shot with probability fireChance.
func (s *Session) updateFormation() {
	w := s.World
	if s.rng.Float64() < advanceChance {
		s.playCue(CueStep)
		bounced := w.AdvanceFormation()
		s.Stats.FormationSteps++
		if bounced {
			s.log.Add(s.tick, "formation", "bounce", "descend", float64(w.Formation.Direction))
		}
	}
	s.maybeFire()
}

// maybeFire spawns an invader projectile with probability fireChance.
func (s *Session) maybeFire() {
	w := s.World
	if w.AliveCount() == 0 || s.rng.Float64() >= fireChance {
		return
	}
	if shooter := w.PickShooter(s.rng); shooter != nil {
		w.fireInvaderShot(shooter)
	}
}
