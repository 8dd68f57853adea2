package termview

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/muesli/reflow/truncate"

	"github.com/srlehn/termview/decode"
	"github.com/srlehn/termview/internal/errors"
	"github.com/srlehn/termview/internal/logx"
	"github.com/srlehn/termview/play"
)

// Viewer shows files, directories and standard input one after another.
type Viewer struct {
	cfg         Config
	out         io.Writer
	in          io.Reader
	canceller   play.Canceller
	interrupted bool
}

var _ logx.LoggerProvider = (*Viewer)(nil)

// NewViewer starts from DefaultConfig writing to stdout and reading stdin.
func NewViewer(opts ...Option) (*Viewer, error) {
	v := &Viewer{
		cfg: DefaultConfig(),
		out: os.Stdout,
		in:  os.Stdin,
	}
	if err := v.SetOptions(opts...); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Viewer) Logger() *slog.Logger {
	if v == nil {
		return nil
	}
	return v.cfg.Logger
}

func (v *Viewer) Config() Config { return v.cfg }

// Interrupted reports whether an animation was stopped through the
// canceller. Nothing is shown anymore after that.
func (v *Viewer) Interrupted() bool { return v != nil && v.interrupted }

// ShowAll shows paths in order, or standard input without paths. Only a
// single input loops its animation.
//
// A file given explicitly that can't be shown is an error, files found in
// a directory are skipped with a warning.
func (v *Viewer) ShowAll(ctx context.Context, paths []string) error {
	if v == nil {
		return errors.NilReceiver()
	}
	mode := v.cfg.Mode(len(paths))
	if len(paths) == 0 {
		media, err := decode.Reader(v.in)
		if err != nil {
			return errors.WrapPrefix(err, `stdin`, 0)
		}
		return v.display(ctx, `stdin`, media, mode)
	}
	for _, path := range paths {
		if err := v.show(ctx, path, mode); err != nil {
			return err
		}
		if v.interrupted {
			return nil
		}
	}
	return nil
}

// Show shows a single file or directory.
func (v *Viewer) Show(ctx context.Context, path string) error {
	if v == nil {
		return errors.NilReceiver()
	}
	return v.show(ctx, path, v.cfg.Mode(1))
}

func (v *Viewer) show(ctx context.Context, path string, mode play.Mode) error {
	fi, err := os.Stat(path)
	if err != nil {
		return errors.New(err)
	}
	if fi.IsDir() {
		// only a single file loops, a looping animation would hide the
		// rest of the directory
		if mode == play.Looping {
			mode = play.PlayOnce
		}
		return v.showDir(ctx, path, mode)
	}
	media, err := decode.File(path)
	if err != nil {
		return err
	}
	return v.display(ctx, path, media, mode)
}

func (v *Viewer) showDir(ctx context.Context, root string, mode play.Mode) error {
	if !v.cfg.Recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return errors.New(err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if err := v.showTolerant(ctx, filepath.Join(root, e.Name()), mode); err != nil {
				return err
			}
			if v.interrupted {
				return nil
			}
		}
		return nil
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logx.Warn(`skipping`, v, `path`, path, `error`, err)
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if err := v.showTolerant(ctx, path, mode); err != nil {
			return err
		}
		if v.interrupted {
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return errors.New(err)
	}
	return nil
}

// stopPending answers a stop request that came in while no animation was
// playing. The gap between two images is as safe a boundary as a frame.
func (v *Viewer) stopPending() (bool, error) {
	if v.canceller == nil {
		return false, nil
	}
	select {
	case <-v.canceller.StopRequested():
	default:
		return false, nil
	}
	v.interrupted = true
	logx.Debug(`stop requested between images, acknowledging`, v)
	if err := v.canceller.Acknowledge(); err != nil {
		return true, errors.WrapPrefix(err, `stop handshake failed`, 0)
	}
	return true, nil
}

// showTolerant skips files that don't decode, display errors still count.
func (v *Viewer) showTolerant(ctx context.Context, path string, mode play.Mode) error {
	if err := ctx.Err(); err != nil {
		return errors.New(err)
	}
	media, err := decode.File(path)
	if err != nil {
		logx.Warn(`skipping`, v, `path`, path, `error`, err)
		return nil
	}
	return v.display(ctx, path, media, mode)
}

func (v *Viewer) display(ctx context.Context, name string, media *decode.Media, mode play.Mode) error {
	if v.interrupted {
		return nil
	}
	if stop, err := v.stopPending(); stop || err != nil {
		return err
	}
	cfg := v.cfg
	if cfg.Terminal.Cols < 1 || cfg.Terminal.Rows < 1 {
		cfg.Terminal = cfg.terminalSize()
	}
	if cfg.Name {
		header := truncate.StringWithTail(name+`:`, uint(cfg.Terminal.Cols), `…`)
		if _, err := io.WriteString(v.out, header+"\n"); err != nil && !errors.IsBrokenPipe(err) {
			return errors.New(err)
		}
	}
	logx.Debug(`showing`, v, `name`, name, `format`, media.Format, `frames`, len(media.Frames))

	if !media.Animated() || mode == play.StaticFirstFrameOnly {
		_, err := RenderImage(v.out, media.Still(), cfg)
		return err
	}
	frames, err := FitFrames(media.Frames, cfg)
	if err != nil {
		return err
	}
	st := play.NewState(mode)
	err = PlayAnimation(ctx, v.out, frames, st, cfg, v.canceller)
	if st.Cancelled {
		v.interrupted = true
	}
	return err
}
