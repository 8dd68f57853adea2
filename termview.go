// Package termview shows images and animations in the terminal with half
// block characters.
//
//	_, err := termview.RenderImage(os.Stdout, img, termview.DefaultConfig())
package termview

import (
	"context"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/srlehn/termview/decode"
	"github.com/srlehn/termview/fit"
	"github.com/srlehn/termview/internal/errors"
	"github.com/srlehn/termview/internal/escapes"
	"github.com/srlehn/termview/internal/logx"
	"github.com/srlehn/termview/pixel"
	"github.com/srlehn/termview/play"
	"github.com/srlehn/termview/render"
	"github.com/srlehn/termview/terminal"
)

// RenderImage fits img according to cfg and draws it at the cursor.
func RenderImage(w io.Writer, img image.Image, cfg Config) (render.Size, error) {
	if err := errors.NilParam(w, img); err != nil {
		return render.Size{}, err
	}
	g, err := fitImage(img, cfg, cfg.terminalSize())
	if err != nil {
		return render.Size{}, err
	}
	out := render.NewSink(w)
	if err := moveToOrigin(out, cfg); err != nil {
		return render.Size{}, err
	}
	return newFrameRenderer(cfg, false).Render(out, g)
}

// FitFrames fits every decoded frame. With a frame rate set in cfg the
// frame durations are replaced.
func FitFrames(frames []decode.Frame, cfg Config) (play.FrameSet, error) {
	if len(frames) == 0 {
		return nil, errors.New(`no frames to fit`)
	}
	size := cfg.terminalSize()
	fs := make(play.FrameSet, 0, len(frames))
	for i, f := range frames {
		g, err := fitImage(f.Image, cfg, size)
		if err != nil {
			return nil, errors.WrapPrefix(err, `frame `+strconv.Itoa(i), 0)
		}
		fs = append(fs, play.Frame{Grid: g, Duration: f.Delay})
	}
	return fs, nil
}

// PlayAnimation plays already fitted frames in place. c may be nil, then
// only ctx ends a looping animation.
func PlayAnimation(ctx context.Context, w io.Writer, frames play.FrameSet, st *play.State, cfg Config, c play.Canceller) error {
	if err := errors.NilParam(ctx, w, st); err != nil {
		return err
	}
	out := render.NewSink(w)
	opts := []play.Option{
		play.WithHiddenCursor(true),
		play.WithLogger(cfg.Logger),
	}
	if cfg.FPS > 0 {
		opts = append(opts, play.WithFPS(cfg.FPS))
	}
	if c != nil {
		opts = append(opts, play.WithCanceller(c))
	}
	p, err := play.New(newFrameRenderer(cfg, true), out, opts...)
	if err != nil {
		return err
	}
	if err := moveToOrigin(out, cfg); err != nil {
		return err
	}
	return p.Play(ctx, frames, st)
}

func fitImage(img image.Image, cfg Config, size terminal.Size) (*pixel.Grid, error) {
	if err := errors.NilParam(img); err != nil {
		return nil, err
	}
	if cfg.Mirror {
		img = imaging.FlipH(img)
	}
	var g *pixel.Grid
	err := logx.TimeIt(func() error {
		var err error
		g, err = fit.Fit(img, cfg.target(), size, cfg.resizer(), cfg.loggerProv())
		return err
	}, `fit image`, cfg.loggerProv(), `mirror`, cfg.Mirror)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// moveToOrigin applies a relative vertical offset. Absolute offsets are
// applied per frame by the renderer.
func moveToOrigin(w io.Writer, cfg Config) error {
	if cfg.AbsoluteOffset || cfg.Y < 1 {
		return nil
	}
	if _, err := io.WriteString(w, strings.Repeat(escapes.LF, cfg.Y)); err != nil {
		return errors.New(err)
	}
	return nil
}

// erase is set for animations, transparent cells have to overwrite the
// previous frame.
func newFrameRenderer(cfg Config, erase bool) play.FrameRenderer {
	r := render.New(render.Options{
		Transparent:      cfg.Transparent,
		EraseTransparent: erase,
		Profile:          cfg.Profile,
		OffsetX:          max(cfg.X, 0),
	})
	if !cfg.AbsoluteOffset {
		return r
	}
	return &positioned{Renderer: r, row: max(cfg.Y, 0)}
}

// positioned moves the cursor to the start of a fixed screen row before
// each frame, the column offset is left to the renderer.
type positioned struct {
	*render.Renderer
	row int
}

func (p *positioned) Render(w io.Writer, g *pixel.Grid) (render.Size, error) {
	out := render.NewSink(w)
	if _, err := out.WriteString(escapes.CursorPosition(0, p.row)); err != nil {
		return render.Size{}, errors.New(err)
	}
	return p.Renderer.Render(out, g)
}
