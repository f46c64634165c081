package game

import "math"

const (
	autopilotAimTolerance = 6
	autopilotDodgeRange   = 80
	autopilotDodgeStep    = 60
)

// Autopilot is a scripted input source: it starts rounds from the menu,
// tracks the lowest invader nearest the ship, fires when lined up and sidesteps
// incoming shots. Headless runs use it in place of a human.
type Autopilot struct{}

// Input produces the next tick's input for s.
func (Autopilot) Input(s *Session) Input {
	w := s.World
	in := Input{PointerX: w.Player.X}
	switch s.Phase() {
	case PhaseMenu:
		return in.Press(EventPrimary)
	case PhasePlaying:
	default:
		return in
	}

	target := autopilotTarget(w)
	if target == nil {
		return in
	}
	in.PointerX = target.X

	if threat := incomingShot(w); threat != nil {
		if threat.X >= w.Player.X {
			in.PointerX = w.Player.X - autopilotDodgeStep
		} else {
			in.PointerX = w.Player.X + autopilotDodgeStep
		}
		return in
	}
	if math.Abs(w.Player.X-target.X) < autopilotAimTolerance && s.CanFire() {
		return in.Press(EventPrimary)
	}
	return in
}

// autopilotTarget prefers the lowest alive invader, breaking ties by
// horizontal distance to the ship.
func autopilotTarget(w *World) *Invader {
	var best *Invader
	w.eachAlive(func(inv *Invader) {
		if best == nil || inv.Y > best.Y ||
			(inv.Y == best.Y && math.Abs(inv.X-w.Player.X) < math.Abs(best.X-w.Player.X)) {
			best = inv
		}
	})
	return best
}

// incomingShot returns an invader projectile about to reach the ship.
func incomingShot(w *World) *Projectile {
	p := w.Player
	for i := range w.InvaderShots {
		s := &w.InvaderShots[i]
		if s.Y < p.Y && p.Y-s.Y < autopilotDodgeRange && math.Abs(s.X-p.X) < 2*hitHalfX {
			return s
		}
	}
	return nil
}
