package session

import (
	"context"

	"github.com/battlesnakeio/snake2p/display"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// Run drives the session at the configured tick rate until the player quits
// or ctx is done. The transport is closed on the way out.
func (s *Session) Run(ctx context.Context, d display.Driver) error {
	defer s.Close()

	limiter := rate.NewLimiter(s.cfg.TickRate, 1)
	for {
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrap(err, "tick")
		}

		if err := d.BeginFrame(); err != nil {
			return errors.Wrap(err, "begin frame")
		}
		if d.Closed() || d.Pressed(display.KeyEsc) {
			s.log.Info("quitting")
			return nil
		}

		s.Tick(ctx, d)
		s.Render(d)

		if err := d.EndFrame(); err != nil {
			return errors.Wrap(err, "end frame")
		}
	}
}
