package display

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/crt-invaders/internal/game"
)

const (
	logPanelWidth = 320
	logLineHeight = 16

	// LogPanelEntries is the event history kept for the panel.
	LogPanelEntries = 40
)

var (
	panelBackground = color.RGBA{R: 10, G: 12, B: 10, A: 230}
	panelTitleBar   = color.RGBA{R: 20, G: 30, B: 20, A: 255}
	panelSeparator  = color.RGBA{R: 50, G: 70, B: 50, A: 255}
	panelHighlight  = color.RGBA{R: 30, G: 40, B: 30, A: 160}
)

// categoryColors tags each log line with a dot matching what it reports.
var categoryColors = map[string]color.RGBA{
	"kill":      {R: 0, G: 255, B: 0, A: 255},
	"hit":       {R: 255, G: 0, B: 0, A: 255},
	"shield":    {R: 0, G: 255, B: 255, A: 255},
	"formation": {R: 255, G: 0, B: 255, A: 255},
	"phase":     {R: 255, G: 255, B: 255, A: 255},
}

// logPanel overlays the latest session events on the right of the screen.
type logPanel struct {
	visible bool
}

func (p *logPanel) toggle() { p.visible = !p.visible }

// Draw renders the newest entries of l that fit, oldest at the top.
func (p *logPanel) Draw(screen *ebiten.Image, l *game.SimLog) {
	if !p.visible {
		return
	}
	panelX := float32(game.Width - logPanelWidth)
	panelH := game.Height

	vector.FillRect(screen, panelX, 0, logPanelWidth, float32(panelH), panelBackground, false)
	vector.StrokeLine(screen, panelX, 0, panelX, float32(panelH), 1.0, panelSeparator, false)
	vector.FillRect(screen, panelX, 0, logPanelWidth, 16, panelTitleBar, false)
	ebitenutil.DebugPrintAt(screen, "EVENT LOG", int(panelX)+8, 0)

	entries := l.Entries()
	maxVisible := (panelH - 24) / logLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	const recent = 3

	y := 20
	for i, e := range entries {
		if i >= len(entries)-recent {
			vector.FillRect(screen, panelX+2, float32(y), logPanelWidth-4, logLineHeight, panelHighlight, false)
		}
		if c, ok := categoryColors[e.Category]; ok {
			vector.FillRect(screen, panelX+5, float32(y+5), 3, 5, c, false)
		}
		ebitenutil.DebugPrintAt(screen, e.String(), int(panelX)+12, y)
		y += logLineHeight
	}
}
