package interrupt

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/srlehn/termview/internal/consts"
	"github.com/srlehn/termview/internal/errors"
	"github.com/srlehn/termview/internal/escapes"
	"github.com/srlehn/termview/internal/logx"
)

type watcher struct {
	handoff    *Handoff
	out        io.Writer
	grace      time.Duration
	exit       func(code int)
	signals    []os.Signal
	loggerProv logx.LoggerProvider
}

func (w *watcher) Logger() *slog.Logger {
	if w == nil || w.loggerProv == nil {
		return nil
	}
	return w.loggerProv.Logger()
}

type Option func(*watcher)

// WithGrace bounds the wait for the playback loop. Past it the terminal is
// restored and the process ends anyway.
func WithGrace(d time.Duration) Option { return func(w *watcher) { w.grace = d } }

// WithExit replaces os.Exit.
func WithExit(exit func(code int)) Option { return func(w *watcher) { w.exit = exit } }

func WithSignals(sigs ...os.Signal) Option { return func(w *watcher) { w.signals = sigs } }

func WithLogger(logger *slog.Logger) Option {
	return func(w *watcher) { w.loggerProv = logx.Prov(logger) }
}

// Watch waits for an interrupt signal. On the first one it asks the
// playback loop to stop, waits for the acknowledgement, restores the
// terminal on out and exits the process.
//
// closeFunc stops watching.
func Watch(h *Handoff, out io.Writer, opts ...Option) (closeFunc func() error, _ error) {
	if err := errors.NilParam(h, out); err != nil {
		return nil, err
	}
	w := &watcher{
		handoff: h,
		out:     out,
		grace:   consts.DefaultInterruptGrace,
		exit:    os.Exit,
		signals: defaultSignals(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	if len(w.signals) == 0 {
		return nil, errors.New(`no signals to watch`)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, w.signals...)
	done := make(chan struct{})
	var once sync.Once
	closeFunc = func() error {
		once.Do(func() {
			signal.Stop(sigs)
			close(done)
		})
		return nil
	}
	go func() {
		select {
		case <-done:
		case sig := <-sigs:
			w.handle(sig)
		}
	}()
	return closeFunc, nil
}

func (w *watcher) handle(sig os.Signal) {
	logx.Debug(`interrupted`, w, `signal`, sig.String())
	if err := w.handoff.RequestStop(); !logx.IsErr(err, w, slog.LevelWarn) {
		ctx, cancel := context.WithTimeout(context.Background(), w.grace)
		err := w.handoff.WaitAck(ctx)
		cancel()
		if err != nil {
			logx.Debug(`playback did not acknowledge in time`, w, `grace`, w.grace)
		}
	}
	logx.IsErr(Cleanup(w.out), w, slog.LevelWarn)
	w.exit(0)
}

// Cleanup leaves the terminal in a usable state: default colors, visible
// cursor and nothing left below the cursor.
func Cleanup(out io.Writer) error {
	if err := errors.NilParam(out); err != nil {
		return err
	}
	_, err := io.WriteString(out, escapes.SGRReset+escapes.DECTCEMShow+escapes.EraseBelow)
	if err != nil && !errors.IsBrokenPipe(err) {
		return errors.New(err)
	}
	return nil
}
