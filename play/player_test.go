package play_test

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"io"
	"os"
	"regexp"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/termview/internal/consts"
	"github.com/srlehn/termview/pixel"
	"github.com/srlehn/termview/play"
	"github.com/srlehn/termview/render"
)

var cursorUp = regexp.MustCompile(`\x1b\[(\d+)A`)

func grid(t *testing.T, w, h int, c color.NRGBA) *pixel.Grid {
	t.Helper()
	pix := make([]uint8, 0, 4*w*h)
	for i := 0; i < w*h; i++ {
		pix = append(pix, c.R, c.G, c.B, c.A)
	}
	g, err := pixel.New(w, h, pix)
	require.NoError(t, err)
	return g
}

func frames(t *testing.T, n, h int, d time.Duration) play.FrameSet {
	t.Helper()
	fs := make(play.FrameSet, n)
	for i := range fs {
		fs[i] = play.Frame{Grid: grid(t, 2, h, color.NRGBA{R: uint8(40 * i), A: 255}), Duration: d}
	}
	return fs
}

// countingRenderer records renders and lets tests act after the n-th one
type countingRenderer struct {
	r        *render.Renderer
	renders  int
	onRender func(n int)
}

func (c *countingRenderer) Render(w io.Writer, g *pixel.Grid) (render.Size, error) {
	sz, err := c.r.Render(w, g)
	c.renders++
	if c.onRender != nil {
		c.onRender(c.renders)
	}
	return sz, err
}

func newCounter() *countingRenderer {
	return &countingRenderer{r: render.New(render.Options{Profile: termenv.TrueColor})}
}

type fakeCanceller struct {
	ch   chan struct{}
	acks int
	err  error
}

func newFakeCanceller() *fakeCanceller { return &fakeCanceller{ch: make(chan struct{}, 1)} }

func (f *fakeCanceller) StopRequested() <-chan struct{} { return f.ch }
func (f *fakeCanceller) Acknowledge() error {
	f.acks++
	return f.err
}

func TestPlayOnce(t *testing.T) {
	out := &bytes.Buffer{}
	cr := newCounter()
	p, err := play.New(cr, out)
	require.NoError(t, err)
	st := play.NewState(play.PlayOnce)
	assert.Equal(t, play.Idle, st.Phase())

	require.NoError(t, p.Play(context.Background(), frames(t, 3, 4, 10*time.Millisecond), st))
	assert.Equal(t, 3, cr.renders)
	ups := cursorUp.FindAllStringSubmatch(out.String(), -1)
	require.Len(t, ups, 2)
	for _, up := range ups {
		assert.Equal(t, `2`, up[1])
	}
	assert.False(t, st.Cancelled)
	assert.Equal(t, play.Stopped, st.Phase())
	// output ends with the last frame, not with a rewind
	assert.True(t, strings.HasSuffix(out.String(), "\x1b[0m\n\x1b[0m"))

	err = p.Play(context.Background(), frames(t, 1, 2, 0), st)
	assert.ErrorIs(t, err, consts.ErrStopped)
}

func TestPlayOddHeightRewind(t *testing.T) {
	out := &bytes.Buffer{}
	p, err := play.New(newCounter(), out)
	require.NoError(t, err)
	require.NoError(t, p.Play(context.Background(), frames(t, 2, 5, time.Millisecond), play.NewState(play.PlayOnce)))
	ups := cursorUp.FindAllStringSubmatch(out.String(), -1)
	require.Len(t, ups, 1)
	assert.Equal(t, `3`, ups[0][1])
}

func TestPlayLoopingRewindsEveryFrame(t *testing.T) {
	const n = 3
	out := &bytes.Buffer{}
	fc := newFakeCanceller()
	cr := newCounter()
	cr.onRender = func(renders int) {
		// two full passes, stop while the first frame of the third is shown
		if renders == 2*n+1 {
			fc.ch <- struct{}{}
		}
	}
	p, err := play.New(cr, out, play.WithCanceller(fc), play.WithDelay(time.Millisecond))
	require.NoError(t, err)
	st := play.NewState(play.Looping)
	require.NoError(t, p.Play(context.Background(), frames(t, n, 2, 0), st))

	assert.Equal(t, 2*n+1, cr.renders)
	assert.Len(t, cursorUp.FindAllString(out.String(), -1), 2*n)
	assert.Equal(t, 1, fc.acks)
	assert.True(t, st.Cancelled)
	assert.Equal(t, play.Stopped, st.Phase())
}

func TestPlayCancelStopsAtFrameBoundary(t *testing.T) {
	out := &bytes.Buffer{}
	fc := newFakeCanceller()
	cr := newCounter()
	cr.onRender = func(renders int) {
		if renders == 1 {
			fc.ch <- struct{}{}
		}
	}
	p, err := play.New(cr, out, play.WithCanceller(fc), play.WithHiddenCursor(true))
	require.NoError(t, err)
	st := play.NewState(play.Looping)
	// the frame delay is long, the stop request has to cut it short
	start := time.Now()
	require.NoError(t, p.Play(context.Background(), frames(t, 5, 2, time.Hour), st))
	assert.Less(t, time.Since(start), 5*time.Second)

	assert.Equal(t, 1, cr.renders)
	assert.Equal(t, 1, fc.acks)
	assert.True(t, st.Cancelled)
	assert.Empty(t, cursorUp.FindAllString(out.String(), -1))
	// the interrupt handler restores the cursor, not the player
	assert.True(t, strings.HasPrefix(out.String(), "\x1b[?25l"))
	assert.NotContains(t, out.String(), "\x1b[?25h")
}

func TestPlayPendingStopBeforeFirstFrame(t *testing.T) {
	fc := newFakeCanceller()
	fc.ch <- struct{}{}
	cr := newCounter()
	p, err := play.New(cr, &bytes.Buffer{}, play.WithCanceller(fc))
	require.NoError(t, err)
	require.NoError(t, p.Play(context.Background(), frames(t, 2, 2, 0), play.NewState(play.Looping)))
	assert.Equal(t, 0, cr.renders)
	assert.Equal(t, 1, fc.acks)
}

func TestPlayHandshakeFailure(t *testing.T) {
	fc := newFakeCanceller()
	fc.err = errors.New(`handoff closed`)
	cr := newCounter()
	cr.onRender = func(int) { fc.ch <- struct{}{} }
	p, err := play.New(cr, &bytes.Buffer{}, play.WithCanceller(fc))
	require.NoError(t, err)
	err = p.Play(context.Background(), frames(t, 2, 2, time.Millisecond), play.NewState(play.Looping))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `handoff closed`)
}

func TestPlayStatic(t *testing.T) {
	out := &bytes.Buffer{}
	cr := newCounter()
	p, err := play.New(cr, out, play.WithDelay(time.Hour), play.WithHiddenCursor(true))
	require.NoError(t, err)
	st := play.NewState(play.StaticFirstFrameOnly)
	require.NoError(t, p.Play(context.Background(), frames(t, 4, 2, 0), st))
	assert.Equal(t, 1, cr.renders)
	assert.NotRegexp(t, cursorUp, out.String())
	assert.NotContains(t, out.String(), "\x1b[?25l")
	assert.Equal(t, play.Stopped, st.Phase())
}

func TestPlayContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cr := newCounter()
	p, err := play.New(cr, &bytes.Buffer{})
	require.NoError(t, err)
	err = p.Play(ctx, frames(t, 2, 2, 0), play.NewState(play.Looping))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, cr.renders)

	ctx, cancel = context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = p.Play(ctx, frames(t, 2, 2, time.Hour), play.NewState(play.Looping))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// closedPipe accepts limit writes and then fails like a pipe without reader
type closedPipe struct {
	limit, writes int
}

func (c *closedPipe) Write(p []byte) (int, error) {
	c.writes++
	if c.writes > c.limit {
		return 0, &os.PathError{Op: `write`, Path: `|1`, Err: syscall.EPIPE}
	}
	return len(p), nil
}

func TestPlayBrokenPipe(t *testing.T) {
	w := &closedPipe{limit: 1}
	cr := newCounter()
	p, err := play.New(cr, w)
	require.NoError(t, err)
	// looping would never end without the broken pipe
	require.NoError(t, p.Play(context.Background(), frames(t, 3, 2, time.Millisecond), play.NewState(play.Looping)))
	assert.Equal(t, 1, cr.renders)
	assert.Equal(t, 2, w.writes)
}

func TestPlayInvalid(t *testing.T) {
	p, err := play.New(newCounter(), &bytes.Buffer{})
	require.NoError(t, err)
	assert.ErrorIs(t, p.Play(context.Background(), nil, play.NewState(play.PlayOnce)), consts.ErrNoFrames)
	assert.Error(t, p.Play(context.Background(), frames(t, 1, 1, 0), nil))

	_, err = play.New(nil, &bytes.Buffer{})
	assert.Error(t, err)
	_, err = play.New(newCounter(), &bytes.Buffer{}, play.WithFPS(0))
	assert.Error(t, err)
}

func TestDelayFor(t *testing.T) {
	p, err := play.New(newCounter(), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 70*time.Millisecond, p.DelayFor(play.Frame{Duration: 70 * time.Millisecond}))
	assert.Equal(t, consts.DefaultFrameDelay, p.DelayFor(play.Frame{}))

	p, err = play.New(newCounter(), &bytes.Buffer{}, play.WithFPS(25))
	require.NoError(t, err)
	assert.Equal(t, 40*time.Millisecond, p.DelayFor(play.Frame{Duration: time.Second}))
	assert.Equal(t, 40*time.Millisecond, p.DelayFor(play.Frame{}))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, `looping`, play.Looping.String())
	assert.Equal(t, `once`, play.PlayOnce.String())
	assert.Equal(t, `static`, play.StaticFirstFrameOnly.String())
	assert.Equal(t, `playing`, play.Playing.String())
}
