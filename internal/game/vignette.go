package game

import "math"

// VignetteMask is a static per-pixel alpha mask darkening the corners of the
// playfield. It is computed once and shared by every frame.
type VignetteMask struct {
	W, H  int
	Alpha []uint8 // row-major, W*H entries
}

// NewVignetteMask computes the radial falloff: pixels farther than
// vignetteRadius from the centre get alpha growing by vignetteStep every
// vignetteFalloff pixels, capped at 255.
func NewVignetteMask(w, h int) *VignetteMask {
	m := &VignetteMask{W: w, H: h, Alpha: make([]uint8, w*h)}
	cx, cy := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dist := math.Hypot(float64(x)-cx, float64(y)-cy)
			if dist <= vignetteRadius {
				continue
			}
			a := int((dist - vignetteRadius) / vignetteFalloff * vignetteStep)
			if a > 255 {
				a = 255
			}
			m.Alpha[y*w+x] = uint8(a)
		}
	}
	return m
}

// At returns the alpha at (x,y), or 0 outside the mask.
func (m *VignetteMask) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return 0
	}
	return m.Alpha[y*m.W+x]
}

// RGBA returns the mask as premultiplied black RGBA pixels, ready to upload
// to a texture.
func (m *VignetteMask) RGBA() []byte {
	pix := make([]byte, 4*len(m.Alpha))
	for i, a := range m.Alpha {
		pix[4*i+3] = a
	}
	return pix
}
