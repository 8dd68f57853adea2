// Package render draws pixel grids with half block characters, two pixels
// per terminal cell.
package render

import (
	"bytes"
	"io"

	"github.com/muesli/termenv"

	"github.com/srlehn/termview/internal/errors"
	"github.com/srlehn/termview/internal/escapes"
	"github.com/srlehn/termview/pixel"
)

type Options struct {
	// Transparent lets transparent pixels through instead of drawing the
	// checkerboard.
	Transparent bool
	// EraseTransparent blanks fully transparent cells instead of skipping
	// them, needed when redrawing over a previous frame.
	EraseTransparent bool
	// Profile only selects the color encoding, TrueColor or a palette.
	Profile termenv.Profile
	// OffsetX moves every row this many columns to the right.
	OffsetX int
}

// Size is the drawn area in cells.
type Size struct {
	Cols, Rows int
}

type Renderer struct {
	opts Options
	buf  bytes.Buffer
}

func New(opts Options) *Renderer { return &Renderer{opts: opts} }

// Render writes g to w row by row. A broken pipe ends the output silently
// and isn't reported. The returned size is that of the whole image even if
// output stopped early.
func (r *Renderer) Render(w io.Writer, g *pixel.Grid) (Size, error) {
	if err := errors.NilReceiver(r); err != nil {
		return Size{}, err
	}
	if err := errors.NilParam(w, g); err != nil {
		return Size{}, err
	}
	sz := Size{Cols: g.Width(), Rows: g.Rows()}
	sink := NewSink(w)
	if sink.Broken() {
		return sz, nil
	}
	err := Build(g, r.opts.Transparent, r.opts.EraseTransparent, func(row []Cell) error {
		r.buf.Reset()
		r.encodeRow(&r.buf, row)
		if _, err := sink.Write(r.buf.Bytes()); err != nil {
			return errors.New(err)
		}
		if sink.Broken() {
			return errStop
		}
		return nil
	})
	switch {
	case err == errStop:
		return sz, nil
	case err != nil:
		return sz, err
	}
	if _, err := sink.WriteString(escapes.SGRReset); err != nil {
		return sz, errors.New(err)
	}
	return sz, nil
}

// sentinel for ending Build early
var errStop = errors.New(`output closed`)

// style is the pair of SGR color parameters currently in effect
type style struct{ fg, bg string }

func (r *Renderer) encodeRow(b *bytes.Buffer, row []Cell) {
	b.WriteString(escapes.CursorForward(r.opts.OffsetX))
	var cur style
	for _, c := range row {
		if c.Glyph == GlyphNone {
			b.WriteString(escapes.CursorForward(1))
			continue
		}
		var next style
		if c.Foreground != nil {
			next.fg = c.Foreground.sequence(r.opts.Profile, false)
		}
		if c.Background != nil {
			next.bg = c.Background.sequence(r.opts.Profile, true)
		}
		if next != cur {
			params := []string{`0`}
			if len(next.fg) > 0 {
				params = append(params, next.fg)
			}
			if len(next.bg) > 0 {
				params = append(params, next.bg)
			}
			b.WriteString(escapes.SGR(params...))
			cur = next
		}
		b.WriteString(c.Glyph.String())
	}
	b.WriteString(escapes.SGRReset)
	b.WriteString(escapes.LF)
}
