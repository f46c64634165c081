package game

import (
	"context"
	"errors"
	"time"
)

// Host is a frontend the driver can run a session on.
type Host interface {
	// Poll drains, without blocking, every input event since the last call.
	Poll() Input
	// Canvas is the surface the next frame is drawn onto.
	Canvas() Canvas
	// Present shows the drawn frame.
	Present()
}

// Run is the fixed-timestep main loop for hosts without their own: each
// scheduled tick polls input, updates the session once, draws and presents,
// then suspends until the next tick. Ticks never overlap; a slow frame drops
// the ticks it missed rather than bursting. Run returns nil on the quit input
// and ctx.Err() when the context is cancelled.
func Run(ctx context.Context, s *Session, r *Renderer, h Host, interval time.Duration) error {
	if interval <= 0 {
		interval = TickDuration
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.Update(h.Poll()); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
			r.Draw(h.Canvas(), s)
			h.Present()
		}
	}
}
