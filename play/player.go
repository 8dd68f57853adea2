// Package play replays animations in place: every frame is drawn over the
// previous one by moving the cursor back up instead of scrolling.
package play

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/srlehn/termview/internal/consts"
	"github.com/srlehn/termview/internal/errors"
	"github.com/srlehn/termview/internal/escapes"
	"github.com/srlehn/termview/internal/logx"
	"github.com/srlehn/termview/pixel"
	"github.com/srlehn/termview/render"
)

// FrameRenderer draws one frame. *render.Renderer is the implementation.
type FrameRenderer interface {
	Render(w io.Writer, g *pixel.Grid) (render.Size, error)
}

var _ FrameRenderer = (*render.Renderer)(nil)

// Canceller is the playback side of a stop handshake. A value received
// from StopRequested must be answered with exactly one Acknowledge.
type Canceller interface {
	StopRequested() <-chan struct{}
	Acknowledge() error
}

type Player struct {
	renderer   FrameRenderer
	out        *render.Sink
	delay      time.Duration
	canceller  Canceller
	hideCursor bool
	loggerProv logx.LoggerProvider
}

var _ logx.LoggerProvider = (*Player)(nil)

func New(r FrameRenderer, out io.Writer, opts ...Option) (*Player, error) {
	if err := errors.NilParam(r, out); err != nil {
		return nil, err
	}
	p := &Player{
		renderer: r,
		out:      render.NewSink(out),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Player) Logger() *slog.Logger {
	if p == nil || p.loggerProv == nil {
		return nil
	}
	return p.loggerProv.Logger()
}

// DelayFor resolves how long f stays on screen: a configured global delay
// always wins over the frame's own duration.
func (p *Player) DelayFor(f Frame) time.Duration {
	switch {
	case p.delay > 0:
		return p.delay
	case f.Duration > 0:
		return f.Duration
	default:
		return consts.DefaultFrameDelay
	}
}

// Play draws frames according to st.Mode until the pass ends, a stop is
// requested, ctx is done or the output went away. A requested stop leaves
// the last drawn frame on screen, cleaning up the terminal is up to the
// requester. A broken pipe ends playback without error.
func (p *Player) Play(ctx context.Context, frames FrameSet, st *State) error {
	if p == nil {
		return errors.NilReceiver()
	}
	if err := errors.NilReceiver(p.renderer, p.out); err != nil {
		return err
	}
	if err := errors.NilParam(ctx, st); err != nil {
		return err
	}
	if len(frames) == 0 {
		return errors.New(consts.ErrNoFrames)
	}
	if st.phase == Stopped {
		return errors.New(consts.ErrStopped)
	}
	st.phase = Playing
	defer func() { st.phase = Stopped }()

	logx.Debug(`playback`, p, `frames`, len(frames), `mode`, st.Mode.String())

	if st.Mode == StaticFirstFrameOnly {
		_, err := p.renderer.Render(p.out, frames[0].Grid)
		return err
	}

	if p.hideCursor {
		if err := p.write(escapes.DECTCEMHide); err != nil {
			return err
		}
		defer func() {
			// after a stop request the interrupt handler owns the terminal
			if !st.Cancelled {
				_ = p.write(escapes.DECTCEMShow)
			}
		}()
	}

	for pass := 0; ; pass++ {
		for i, f := range frames {
			if stop, err := p.checkStop(ctx, st); stop || err != nil {
				return err
			}
			sz, err := p.renderer.Render(p.out, f.Grid)
			if err != nil {
				return err
			}
			if p.out.Broken() {
				logx.Debug(`output closed, ending playback`, p, `pass`, pass, `frame`, i)
				return nil
			}
			if stop, err := p.sleep(ctx, st, p.DelayFor(f)); stop || err != nil {
				return err
			}
			if i == len(frames)-1 && st.Mode != Looping {
				break
			}
			if err := p.write(escapes.CursorUp(sz.Rows)); err != nil {
				return err
			}
			if p.out.Broken() {
				return nil
			}
		}
		if st.Mode != Looping {
			return nil
		}
	}
}

func (p *Player) write(s string) error {
	if _, err := p.out.WriteString(s); err != nil {
		return errors.New(err)
	}
	return nil
}

func (p *Player) stopRequested() <-chan struct{} {
	if p.canceller == nil {
		return nil
	}
	return p.canceller.StopRequested()
}

// checkStop is the non-blocking check at a frame boundary.
func (p *Player) checkStop(ctx context.Context, st *State) (bool, error) {
	select {
	case <-ctx.Done():
		return true, ctx.Err()
	case <-p.stopRequested():
		return true, p.acknowledge(st)
	default:
		return false, nil
	}
}

// sleep waits d, a stop request or ctx ending cut it short.
func (p *Player) sleep(ctx context.Context, st *State, d time.Duration) (bool, error) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return p.checkStop(ctx, st)
	case <-ctx.Done():
		return true, ctx.Err()
	case <-p.stopRequested():
		return true, p.acknowledge(st)
	}
}

func (p *Player) acknowledge(st *State) error {
	st.Cancelled = true
	logx.Debug(`stop requested, acknowledging`, p)
	if err := p.canceller.Acknowledge(); err != nil {
		// without the acknowledgement the terminal can't be restored safely
		return errors.WrapPrefix(err, `stop handshake failed`, 0)
	}
	return nil
}
