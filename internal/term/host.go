// Package term hosts a game session in a terminal through tcell, driven by
// the core's ticker loop.
package term

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/crt-invaders/internal/game"
)

const (
	eventBuffer = 128
	arrowNudge  = 40
)

// Host implements game.Host on a tcell screen.
type Host struct {
	screen tcell.Screen
	grid   *Grid
	events chan tcell.Event
	input  inputState
}

// NewHost initialises the terminal, enables mouse reporting and starts the
// event pump.
func NewHost() (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	h := &Host{
		screen: screen,
		grid:   NewGrid(cols, rows),
		events: make(chan tcell.Event, eventBuffer),
		input:  inputState{pointerX: game.Width / 2},
	}
	go h.pump()
	return h, nil
}

// pump forwards terminal events until the screen is finalised.
func (h *Host) pump() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			close(h.events)
			return
		}
		h.events <- ev
	}
}

// Poll drains every pending event without blocking.
func (h *Host) Poll() game.Input {
	cols, _ := h.grid.Size()
	var kinds []game.EventKind
	for {
		select {
		case ev, ok := <-h.events:
			if !ok {
				return game.Input{Events: append(kinds, game.EventQuit), PointerX: h.input.pointerX}
			}
			kinds = append(kinds, h.input.translate(ev, cols)...)
		default:
			return game.Input{Events: kinds, PointerX: h.input.pointerX}
		}
	}
}

// Canvas returns the cell grid sized to the current terminal.
func (h *Host) Canvas() game.Canvas {
	h.grid.Resize(h.screen.Size())
	return h.grid
}

// Present copies the grid to the screen.
func (h *Host) Present() {
	cols, rows := h.grid.Size()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			r, fg, bg := h.grid.At(cx, cy)
			style := tcell.StyleDefault.Foreground(toColor(fg)).Background(toColor(bg))
			h.screen.SetContent(cx, cy, r, nil, style)
		}
	}
	h.screen.Show()
}

// Close restores the terminal.
func (h *Host) Close() {
	h.screen.Fini()
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// inputState turns raw terminal events into game events. Mouse presses are
// edge-triggered against the previous button mask.
type inputState struct {
	pointerX    float64
	prevButtons tcell.ButtonMask
}

func (st *inputState) translate(ev tcell.Event, cols int) []game.EventKind {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return []game.EventKind{game.EventQuit}
		case tcell.KeyLeft:
			st.nudge(-arrowNudge)
		case tcell.KeyRight:
			st.nudge(arrowNudge)
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				return []game.EventKind{game.EventPrimary}
			case 'c', 'C':
				return []game.EventKind{game.EventCopy}
			}
		}
	case *tcell.EventMouse:
		x, _ := ev.Position()
		if cols > 0 {
			st.pointerX = (float64(x) + 0.5) * game.Width / float64(cols)
		}
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && st.prevButtons&tcell.Button1 == 0
		st.prevButtons = buttons
		if pressed {
			return []game.EventKind{game.EventPrimary}
		}
	}
	return nil
}

func (st *inputState) nudge(dx float64) {
	st.pointerX = min(max(st.pointerX+dx, 0), game.Width)
}
