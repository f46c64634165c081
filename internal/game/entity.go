package game

// Player is the ship at the bottom of the playfield. Its y never changes.
type Player struct {
	X     float64
	Y     float64
	Lives int
	Score int
}

// Invader is one cell of the 5x11 grid. Alive only ever goes true→false.
type Invader struct {
	Row   int
	Col   int
	X     float64
	Y     float64
	Alive bool
}

// Archetype returns the visual style selected by the invader's row.
func (inv *Invader) Archetype() Archetype {
	return archetypeForRow(inv.Row)
}

// Points returns the score awarded for killing this invader.
func (inv *Invader) Points() int {
	return rowPoints[inv.Row]
}

// Owner identifies who fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerInvader
)

func (o Owner) String() string {
	switch o {
	case OwnerPlayer:
		return "player"
	case OwnerInvader:
		return "invader"
	default:
		return "unknown"
	}
}

// velocity is the per-tick vertical displacement for the owner's projectiles.
func (o Owner) velocity() float64 {
	if o == OwnerPlayer {
		return -projectileSpeed
	}
	return projectileSpeed
}

// Projectile is a shot in flight.
type Projectile struct {
	X     float64
	Y     float64
	Owner Owner
}

// Shield is a destructible barrier. Health is clamped to [0, ShieldHealth]
// and never regenerates; a zero-health shield stays in the slice but is inert.
type Shield struct {
	X      float64
	Y      float64
	Health int
}

// Intact reports whether the shield still absorbs projectiles.
func (sh *Shield) Intact() bool {
	return sh.Health > 0
}

// damage removes one point of health, never going below zero.
func (sh *Shield) damage() bool {
	if sh.Health <= 0 {
		return false
	}
	sh.Health--
	return true
}

// HealthFraction is remaining health in [0,1].
func (sh *Shield) HealthFraction() float64 {
	return float64(sh.Health) / ShieldHealth
}

// World owns every entity of a session. Entities are created and destroyed
// only through its methods.
type World struct {
	Player       Player
	Invaders     [InvaderRows][InvaderCols]Invader
	PlayerShots  []Projectile
	InvaderShots []Projectile
	Shields      [ShieldCount]Shield
	Formation    Formation
}

// NewWorld returns a world in its start-of-session configuration.
func NewWorld() *World {
	w := &World{}
	w.Reset()
	return w
}

// Reset reinitialises every entity: player centred with 3 lives and no score,
// the full grid alive at its origin, no projectiles, full-health shields and a
// formation moving right at speed 1.
func (w *World) Reset() {
	w.Player = Player{X: Width / 2, Y: playerY, Lives: playerStartLives}
	for r := 0; r < InvaderRows; r++ {
		for c := 0; c < InvaderCols; c++ {
			w.Invaders[r][c] = Invader{
				Row:   r,
				Col:   c,
				X:     float64(gridOriginX + c*invaderPitch),
				Y:     float64(gridOriginY + r*invaderPitch),
				Alive: true,
			}
		}
	}
	w.PlayerShots = w.PlayerShots[:0]
	w.InvaderShots = w.InvaderShots[:0]
	for i := range w.Shields {
		w.Shields[i] = Shield{
			X:      float64(100 + i*((Width-200)/(ShieldCount-1))),
			Y:      shieldY,
			Health: ShieldHealth,
		}
	}
	w.Formation = Formation{Direction: 1, Speed: 1}
}

// AliveCount returns the number of invaders still alive.
func (w *World) AliveCount() int {
	n := 0
	w.eachAlive(func(*Invader) { n++ })
	return n
}

// AliveInvaders returns pointers to every alive invader in row-major order.
func (w *World) AliveInvaders() []*Invader {
	out := make([]*Invader, 0, InvaderCount)
	w.eachAlive(func(inv *Invader) { out = append(out, inv) })
	return out
}

// eachAlive visits alive invaders in row-major order.
func (w *World) eachAlive(fn func(*Invader)) {
	for r := range w.Invaders {
		for c := range w.Invaders[r] {
			if inv := &w.Invaders[r][c]; inv.Alive {
				fn(inv)
			}
		}
	}
}

// FirePlayerShot spawns a player projectile just above the ship.
func (w *World) FirePlayerShot() {
	w.PlayerShots = append(w.PlayerShots, Projectile{
		X:     w.Player.X,
		Y:     w.Player.Y - muzzleOffset,
		Owner: OwnerPlayer,
	})
}

// fireInvaderShot spawns an invader projectile at the shooter's position.
func (w *World) fireInvaderShot(inv *Invader) {
	w.InvaderShots = append(w.InvaderShots, Projectile{X: inv.X, Y: inv.Y, Owner: OwnerInvader})
}

// killInvader flips the invader to dead and returns the points it was worth.
func (w *World) killInvader(inv *Invader) int {
	if !inv.Alive {
		return 0
	}
	inv.Alive = false
	return inv.Points()
}

// SteerPlayer eases the ship toward pointerX and clamps it to the playfield.
func (w *World) SteerPlayer(pointerX float64) {
	p := &w.Player
	p.X += (pointerX - p.X) * playerEase
	p.X = clamp(p.X, playerMargin, Width-playerMargin)
}

// moveProjectiles integrates both shot collections and drops those that left
// the playfield.
func (w *World) moveProjectiles() {
	w.PlayerShots = advanceShots(w.PlayerShots, func(p *Projectile) bool { return p.Y < 0 })
	w.InvaderShots = advanceShots(w.InvaderShots, func(p *Projectile) bool { return p.Y > Height })
}

func advanceShots(shots []Projectile, gone func(*Projectile) bool) []Projectile {
	kept := shots[:0]
	for _, p := range shots {
		p.Y += p.Owner.velocity()
		if gone(&p) {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
