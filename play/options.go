package play

import (
	"log/slog"
	"time"

	"github.com/srlehn/termview/internal/errors"
	"github.com/srlehn/termview/internal/logx"
)

type Option func(*Player) error

// WithDelay overrides the display duration of every frame. d <= 0 keeps
// the frame durations.
func WithDelay(d time.Duration) Option {
	return func(p *Player) error { p.delay = d; return nil }
}

// WithFPS overrides the display duration of every frame with 1/fps.
func WithFPS(fps float64) Option {
	return func(p *Player) error {
		if fps <= 0 {
			return errors.Errorf(`invalid frame rate %v`, fps)
		}
		p.delay = time.Duration(float64(time.Second) / fps)
		return nil
	}
}

func WithCanceller(c Canceller) Option {
	return func(p *Player) error { p.canceller = c; return nil }
}

// WithHiddenCursor hides the cursor while frames are drawn.
func WithHiddenCursor(hide bool) Option {
	return func(p *Player) error { p.hideCursor = hide; return nil }
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Player) error { p.loggerProv = logx.Prov(logger); return nil }
}
