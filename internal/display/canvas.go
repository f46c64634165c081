package display

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/crt-invaders/internal/game"
)

// hudFace is the fixed bitmap font used for all text.
var hudFace = text.NewGoXFace(basicfont.Face7x13)

// canvas implements game.Canvas on an *ebiten.Image.
type canvas struct {
	dst *ebiten.Image

	// vignette is uploaded once, the first time the mask is overlaid.
	vignette     *ebiten.Image
	vignetteMask *game.VignetteMask
}

func (c *canvas) Fill(clr color.RGBA) {
	c.dst.Fill(clr)
}

func (c *canvas) FillRect(x, y, w, h float64, clr color.RGBA) {
	vector.FillRect(c.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *canvas) FillTriangle(x0, y0, x1, y1, x2, y2 float64, clr color.RGBA) {
	var path vector.Path
	path.MoveTo(float32(x0), float32(y0))
	path.LineTo(float32(x1), float32(y1))
	path.LineTo(float32(x2), float32(y2))
	path.Close()

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	vector.FillPath(c.dst, &path, &vector.FillOptions{}, op)
}

func (c *canvas) FillCircle(cx, cy, r float64, clr color.RGBA) {
	vector.FillCircle(c.dst, float32(cx), float32(cy), float32(r), clr, true)
}

func (c *canvas) Line(x0, y0, x1, y1 float64, clr color.RGBA) {
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), 1.0, clr, false)
}

func (c *canvas) Text(s string, x, y float64, clr color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.dst, s, hudFace, op)
}

func (c *canvas) Overlay(m *game.VignetteMask) {
	if c.vignette == nil || c.vignetteMask != m {
		img := ebiten.NewImage(m.W, m.H)
		img.WritePixels(m.RGBA())
		c.vignette = img
		c.vignetteMask = m
	}
	c.dst.DrawImage(c.vignette, nil)
}
