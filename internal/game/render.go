package game

import (
	"fmt"
	"image/color"
	"math/rand"
)

// Canvas is the drawing capability of a host. Coordinates are playfield
// pixels in an 800x600 space; hosts scale as needed.
type Canvas interface {
	Fill(c color.RGBA)
	FillRect(x, y, w, h float64, c color.RGBA)
	FillTriangle(x0, y0, x1, y1, x2, y2 float64, c color.RGBA)
	FillCircle(cx, cy, r float64, c color.RGBA)
	Line(x0, y0, x1, y1 float64, c color.RGBA)
	Text(s string, x, y float64, c color.RGBA)
	Overlay(m *VignetteMask)
}

const (
	scanlineStep   = 4
	scanlineChance = 0.1
	shotW          = 4
	shotH          = 10
	damageJitter   = 5
)

// Renderer draws a session onto a Canvas. Its randomness (scanline flicker,
// shield damage marks) is cosmetic and separate from the simulation's.
type Renderer struct {
	rng      *rand.Rand
	vignette *VignetteMask
}

// NewRenderer precomputes the vignette mask.
func NewRenderer(seed int64) *Renderer {
	return &Renderer{
		rng:      rand.New(rand.NewSource(seed)), // #nosec G404 -- cosmetic only
		vignette: NewVignetteMask(Width, Height),
	}
}

// Vignette returns the shared mask.
func (r *Renderer) Vignette() *VignetteMask { return r.vignette }

// PromptVisible reports whether the blinking start prompt is shown for the
// given blink timer; it toggles every half second.
func PromptVisible(blink float64) bool {
	return int(blink*2)%2 == 1
}

// Draw renders one frame for the session's current phase.
func (r *Renderer) Draw(c Canvas, s *Session) {
	c.Fill(colorBlack)
	switch s.Phase() {
	case PhaseMenu:
		c.Text("Space Invaders", Width/2-70, Height/2-50, colorWhite)
		if PromptVisible(s.Blink()) {
			c.Text("Click or Space to Start", Width/2-90, Height/2, colorWhite)
		}
	case PhasePlaying:
		r.drawWorld(c, s.World)
		r.drawCRT(c)
	case PhaseWin:
		c.Text("You Win!", Width/2-40, Height/2, colorWhite)
		r.drawCRT(c)
	case PhaseLose:
		c.Text("Game Over", Width/2-50, Height/2, colorWhite)
		r.drawCRT(c)
	}
}

func (r *Renderer) drawWorld(c Canvas, w *World) {
	p := w.Player
	c.FillTriangle(p.X, p.Y-10, p.X-10, p.Y+10, p.X+10, p.Y+10, colorGreen)

	w.eachAlive(func(inv *Invader) {
		a := inv.Archetype()
		invaderDrawers[a](c, inv.X, inv.Y, a.Color())
	})
	for _, s := range w.PlayerShots {
		c.FillRect(s.X-shotW/2, s.Y-shotH/2, shotW, shotH, colorGreen)
	}
	for _, s := range w.InvaderShots {
		c.FillRect(s.X-shotW/2, s.Y-shotH/2, shotW, shotH, colorRed)
	}
	for i := range w.Shields {
		r.drawShield(c, &w.Shields[i])
	}

	c.Text(fmt.Sprintf("Score: %d", p.Score), 10, 10, colorWhite)
	c.Text(fmt.Sprintf("Lives: %d", p.Lives), Width-100, 10, colorWhite)
}

// drawShield shrinks the bar with remaining health and scatters damage ticks,
// two per missing point. Dead shields are not drawn.
func (r *Renderer) drawShield(c Canvas, sh *Shield) {
	if !sh.Intact() {
		return
	}
	left := sh.X - ShieldWidth/2
	top := sh.Y - ShieldHeight/2
	w := ShieldWidth * sh.HealthFraction()
	c.FillRect(left, top, w, ShieldHeight, colorGreen)

	ticks := (ShieldHealth - sh.Health) * 2
	for i := 0; i < ticks; i++ {
		x1 := left + float64(r.rng.Intn(int(w)+1))
		y1 := top + float64(r.rng.Intn(ShieldHeight+1))
		x2 := x1 + float64(r.rng.Intn(2*damageJitter+1)-damageJitter)
		y2 := y1 + float64(r.rng.Intn(2*damageJitter+1)-damageJitter)
		c.Line(x1, y1, x2, y2, colorWhite)
	}
}

// drawCRT adds random scanline flicker and the static vignette.
func (r *Renderer) drawCRT(c Canvas) {
	for y := 0; y < Height; y += scanlineStep {
		if r.rng.Float64() < scanlineChance {
			c.Line(0, float64(y), Width, float64(y), colorWhite)
		}
	}
	c.Overlay(r.vignette)
}
