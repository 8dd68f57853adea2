package termview

import (
	"io"
	"log/slog"

	"github.com/srlehn/termview/internal/errors"
	"github.com/srlehn/termview/play"
)

type Option interface {
	ApplyOption(v *Viewer) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Viewer) error

func (o OptFunc) ApplyOption(v *Viewer) error { return o(v) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(v *Viewer) error { return v.SetOptions([]Option(o)...) }

func (v *Viewer) SetOptions(opts ...Option) error {
	if v == nil {
		return errors.NilReceiver()
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(v); err != nil {
			return err
		}
	}
	return nil
}

// SetConfig replaces the whole configuration, the logger included.
func SetConfig(cfg Config) Option {
	return OptFunc(func(v *Viewer) error {
		v.cfg = cfg
		return nil
	})
}

func SetOutput(w io.Writer) Option {
	return OptFunc(func(v *Viewer) error {
		if err := errors.NilParam(w); err != nil {
			return err
		}
		v.out = w
		return nil
	})
}

// SetInput is read when there are no paths to show.
func SetInput(r io.Reader) Option {
	return OptFunc(func(v *Viewer) error {
		if err := errors.NilParam(r); err != nil {
			return err
		}
		v.in = r
		return nil
	})
}

// SetCanceller lets an interrupt handler stop animations.
func SetCanceller(c play.Canceller) Option {
	return OptFunc(func(v *Viewer) error {
		v.canceller = c
		return nil
	})
}

func SetLogger(logger *slog.Logger) Option {
	return OptFunc(func(v *Viewer) error {
		v.cfg.Logger = logger
		return nil
	})
}
