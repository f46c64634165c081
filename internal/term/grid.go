package term

import (
	"image/color"
	"math"

	"github.com/Garsondee/crt-invaders/internal/game"
)

// cell is one terminal character with its colours.
type cell struct {
	r      rune
	fg, bg color.RGBA
}

// Grid is a game.Canvas that rasterises the 800x600 playfield onto a
// terminal-sized grid of cells. A shape covers the cells whose centres it
// contains; shapes smaller than a cell still mark the cell under their centre.
type Grid struct {
	cols, rows int
	cells      []cell
}

// NewGrid returns a grid of the given size (at least 1x1).
func NewGrid(cols, rows int) *Grid {
	g := &Grid{}
	g.Resize(cols, rows)
	return g
}

// Resize changes the grid dimensions, discarding its contents.
func (g *Grid) Resize(cols, rows int) {
	cols, rows = max(cols, 1), max(rows, 1)
	if cols == g.cols && rows == g.rows {
		return
	}
	g.cols, g.rows = cols, rows
	g.cells = make([]cell, cols*rows)
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() (int, int) { return g.cols, g.rows }

// At returns the rune and colours of a cell.
func (g *Grid) At(cx, cy int) (rune, color.RGBA, color.RGBA) {
	c := g.cells[cy*g.cols+cx]
	return c.r, c.fg, c.bg
}

// toCell maps a playfield point to the cell containing it.
func (g *Grid) toCell(x, y float64) (int, int) {
	cx := int(math.Floor(x * float64(g.cols) / game.Width))
	cy := int(math.Floor(y * float64(g.rows) / game.Height))
	return cx, cy
}

// centre returns the playfield coordinates of a cell's centre.
func (g *Grid) centre(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * game.Width / float64(g.cols),
		(float64(cy) + 0.5) * game.Height / float64(g.rows)
}

func (g *Grid) in(cx, cy int) bool {
	return cx >= 0 && cy >= 0 && cx < g.cols && cy < g.rows
}

func (g *Grid) paint(cx, cy int, clr color.RGBA) {
	if !g.in(cx, cy) {
		return
	}
	g.cells[cy*g.cols+cx] = cell{r: ' ', fg: clr, bg: clr}
}

// fillShape paints every cell in the bounding box whose centre satisfies
// inside, falling back to the cell under (fx,fy).
func (g *Grid) fillShape(x0, y0, x1, y1, fx, fy float64, clr color.RGBA, inside func(px, py float64) bool) {
	c0x, c0y := g.toCell(x0, y0)
	c1x, c1y := g.toCell(x1, y1)
	hit := false
	for cy := c0y; cy <= c1y; cy++ {
		for cx := c0x; cx <= c1x; cx++ {
			px, py := g.centre(cx, cy)
			if inside(px, py) {
				g.paint(cx, cy, clr)
				hit = true
			}
		}
	}
	if !hit {
		cx, cy := g.toCell(fx, fy)
		g.paint(cx, cy, clr)
	}
}

func (g *Grid) Fill(clr color.RGBA) {
	for i := range g.cells {
		g.cells[i] = cell{r: ' ', fg: clr, bg: clr}
	}
}

func (g *Grid) FillRect(x, y, w, h float64, clr color.RGBA) {
	g.fillShape(x, y, x+w, y+h, x+w/2, y+h/2, clr, func(px, py float64) bool {
		return px >= x && px < x+w && py >= y && py < y+h
	})
}

func (g *Grid) FillTriangle(x0, y0, x1, y1, x2, y2 float64, clr color.RGBA) {
	minX, maxX := math.Min(x0, math.Min(x1, x2)), math.Max(x0, math.Max(x1, x2))
	minY, maxY := math.Min(y0, math.Min(y1, y2)), math.Max(y0, math.Max(y1, y2))
	fx, fy := (x0+x1+x2)/3, (y0+y1+y2)/3
	g.fillShape(minX, minY, maxX, maxY, fx, fy, clr, func(px, py float64) bool {
		d0 := edge(x0, y0, x1, y1, px, py)
		d1 := edge(x1, y1, x2, y2, px, py)
		d2 := edge(x2, y2, x0, y0, px, py)
		neg := d0 < 0 || d1 < 0 || d2 < 0
		pos := d0 > 0 || d1 > 0 || d2 > 0
		return !(neg && pos)
	})
}

func edge(ax, ay, bx, by, px, py float64) float64 {
	return (px-bx)*(ay-by) - (ax-bx)*(py-by)
}

func (g *Grid) FillCircle(cx, cy, r float64, clr color.RGBA) {
	g.fillShape(cx-r, cy-r, cx+r, cy+r, cx, cy, clr, func(px, py float64) bool {
		return math.Hypot(px-cx, py-cy) <= r
	})
}

// Line draws a thin stroke with box-drawing runes over the existing background.
func (g *Grid) Line(x0, y0, x1, y1 float64, clr color.RGBA) {
	c0x, c0y := g.toCell(x0, y0)
	c1x, c1y := g.toCell(x1, y1)
	dx, dy := c1x-c0x, c1y-c0y
	steps := max(abs(dx), abs(dy))
	glyph := '·'
	switch {
	case dy == 0 && dx != 0:
		glyph = '─'
	case dx == 0 && dy != 0:
		glyph = '│'
	}
	for i := 0; i <= steps; i++ {
		cx, cy := c0x, c0y
		if steps > 0 {
			cx = c0x + dx*i/steps
			cy = c0y + dy*i/steps
		}
		if !g.in(cx, cy) {
			continue
		}
		c := &g.cells[cy*g.cols+cx]
		c.r, c.fg = glyph, clr
	}
}

// Text writes s left to right from the cell under (x, y+half a text line).
func (g *Grid) Text(s string, x, y float64, clr color.RGBA) {
	cx, cy := g.toCell(x, y+6)
	for _, r := range s {
		if g.in(cx, cy) {
			c := &g.cells[cy*g.cols+cx]
			c.r, c.fg = r, clr
		}
		cx++
	}
}

// Overlay darkens each cell by the mask alpha sampled at its centre.
func (g *Grid) Overlay(m *game.VignetteMask) {
	for cy := 0; cy < g.rows; cy++ {
		for cx := 0; cx < g.cols; cx++ {
			px, py := g.centre(cx, cy)
			a := m.At(int(px), int(py))
			if a == 0 {
				continue
			}
			c := &g.cells[cy*g.cols+cx]
			c.fg = darken(c.fg, a)
			c.bg = darken(c.bg, a)
		}
	}
}

func darken(c color.RGBA, alpha uint8) color.RGBA {
	k := float64(255-alpha) / 255
	return color.RGBA{R: uint8(float64(c.R) * k), G: uint8(float64(c.G) * k), B: uint8(float64(c.B) * k), A: c.A}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
