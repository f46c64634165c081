package game

import "math"

// near is the axis-aligned proximity test: |dx| < hx and |dy| < hy.
func near(ax, ay, bx, by, hx, hy float64) bool {
	return math.Abs(ax-bx) < hx && math.Abs(ay-by) < hy
}

// hitShield returns the first intact shield within the projectile's shield
// box, or nil. Zero-health shields are inert and let shots pass.
func (w *World) hitShield(p *Projectile) *Shield {
	for i := range w.Shields {
		sh := &w.Shields[i]
		if sh.Intact() && near(p.X, p.Y, sh.X, sh.Y, ShieldWidth/2, ShieldHeight/2) {
			return sh
		}
	}
	return nil
}

// resolveCollisions runs the per-tick collision and scoring pass, in order:
// player shots vs invaders, invader shots vs player and shields, player shots
// vs shields, then the terminal predicates.
func (s *Session) resolveCollisions() {
	s.playerShotsVsInvaders()
	s.invaderShotsVsPlayerAndShields()
	s.playerShotsVsShields()
	s.checkTerminal()
}

// playerShotsVsInvaders kills at most one invader per projectile. Projectile
// order is the outer loop, row/column order the inner; first match wins.
func (s *Session) playerShotsVsInvaders() {
	w := s.World
	kept := w.PlayerShots[:0]
	for _, p := range w.PlayerShots {
		if inv := w.firstInvaderNear(&p); inv != nil {
			pts := w.killInvader(inv)
			w.Player.Score += pts
			s.Stats.Hits++
			s.Stats.Kills++
			s.playCue(CueHit)
			s.log.Add(s.tick, "kill", inv.Archetype().String(), invaderLabel(inv), float64(pts))
			continue
		}
		kept = append(kept, p)
	}
	w.PlayerShots = kept
}

func (w *World) firstInvaderNear(p *Projectile) *Invader {
	for r := range w.Invaders {
		for c := range w.Invaders[r] {
			inv := &w.Invaders[r][c]
			if inv.Alive && near(p.X, p.Y, inv.X, inv.Y, hitHalfX, hitHalfY) {
				return inv
			}
		}
	}
	return nil
}

// invaderShotsVsPlayerAndShields tests each invader projectile against the
// player first, then against the shields.
func (s *Session) invaderShotsVsPlayerAndShields() {
	w := s.World
	kept := w.InvaderShots[:0]
	for _, p := range w.InvaderShots {
		if s.phase == PhasePlaying && near(p.X, p.Y, w.Player.X, w.Player.Y, hitHalfX, hitHalfY) {
			s.playerHit()
			continue
		}
		if sh := w.hitShield(&p); sh != nil {
			sh.damage()
			s.Stats.ShieldHits++
			s.log.Add(s.tick, "shield", "hit", OwnerInvader.String(), float64(sh.Health))
			continue
		}
		kept = append(kept, p)
	}
	w.InvaderShots = kept
}

// playerHit costs a life and ends the round when none are left.
func (s *Session) playerHit() {
	p := &s.World.Player
	if p.Lives > 0 {
		p.Lives--
	}
	s.Stats.LivesLost++
	s.playCue(CueExplosion)
	s.log.Add(s.tick, "hit", "player", "", float64(p.Lives))
	if p.Lives <= 0 {
		s.endRound(PhaseLose)
	}
}

// playerShotsVsShields lets player projectiles erode intact shields.
func (s *Session) playerShotsVsShields() {
	w := s.World
	kept := w.PlayerShots[:0]
	for _, p := range w.PlayerShots {
		if sh := w.hitShield(&p); sh != nil {
			sh.damage()
			s.Stats.ShieldHits++
			s.log.Add(s.tick, "shield", "hit", OwnerPlayer.String(), float64(sh.Health))
			continue
		}
		kept = append(kept, p)
	}
	w.PlayerShots = kept
}

// Invaded reports whether any alive invader has reached the player's row.
func (w *World) Invaded() bool {
	invaded := false
	w.eachAlive(func(inv *Invader) {
		if inv.Y >= invasionLine {
			invaded = true
		}
	})
	return invaded
}

// Cleared reports whether every invader is dead.
func (w *World) Cleared() bool {
	return w.AliveCount() == 0
}

// checkTerminal evaluates both terminal predicates. Invasion takes precedence
// over a cleared grid; a round already lost this tick is not re-entered.
func (s *Session) checkTerminal() {
	w := s.World
	switch {
	case w.Invaded():
		s.endRound(PhaseLose)
	case w.Cleared():
		s.endRound(PhaseWin)
	}
}
