package render_test

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/termview/pixel"
	"github.com/srlehn/termview/render"
)

func solid(t *testing.T, w, h int, c color.NRGBA) *pixel.Grid {
	t.Helper()
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, c)
		}
	}
	g, err := pixel.FromImage(m)
	require.NoError(t, err)
	return g
}

// noise is deterministic pseudo random content including transparent pixels
func noise(t *testing.T, w, h int) *pixel.Grid {
	t.Helper()
	pix := make([]uint8, 4*w*h)
	for i := range pix {
		pix[i] = uint8((i*7919 + 13) % 251)
		if i%4 == 3 && (i/4)%5 == 0 {
			pix[i] = 0
		}
	}
	g, err := pixel.New(w, h, pix)
	require.NoError(t, err)
	return g
}

func collect(t *testing.T, g *pixel.Grid, transparent, erase bool) [][]render.Cell {
	t.Helper()
	var rows [][]render.Cell
	err := render.Build(g, transparent, erase, func(row []render.Cell) error {
		rows = append(rows, row)
		return nil
	})
	require.NoError(t, err)
	return rows
}

func TestBuildRowCount(t *testing.T) {
	for _, sz := range []image.Point{{1, 1}, {3, 2}, {4, 5}, {7, 8}, {2, 9}} {
		t.Run(fmt.Sprintf(`%dx%d`, sz.X, sz.Y), func(t *testing.T) {
			rows := collect(t, noise(t, sz.X, sz.Y), false, false)
			require.Len(t, rows, (sz.Y+1)/2)
			for _, row := range rows {
				assert.Len(t, row, sz.X)
			}
			if sz.Y%2 == 1 {
				for _, c := range rows[len(rows)-1] {
					assert.Nil(t, c.Background)
					assert.Contains(t, []render.Glyph{render.GlyphUpperHalf, render.GlyphEmpty}, c.Glyph)
				}
			}
		})
	}
	assert.Empty(t, collect(t, noise(t, 0, 0), false, false))
}

func TestBuildOpaqueRed(t *testing.T) {
	red := render.Color{R: 255}
	rows := collect(t, solid(t, 2, 2, color.NRGBA{R: 255, A: 255}), false, false)
	require.Len(t, rows, 1)
	require.Len(t, rows[0], 2)
	for _, c := range rows[0] {
		assert.Equal(t, render.GlyphLowerHalf, c.Glyph)
		assert.Equal(t, &red, c.Foreground)
		assert.Equal(t, &red, c.Background)
	}
}

func TestBuildHalves(t *testing.T) {
	// column 0: top opaque, bottom transparent
	// column 1: top transparent, bottom opaque
	// column 2: both transparent
	// column 3: both opaque
	pix := []uint8{
		10, 20, 30, 255, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 9,
		0, 0, 0, 0, 40, 50, 60, 255, 0, 0, 0, 0, 2, 2, 2, 255,
	}
	g, err := pixel.New(4, 2, pix)
	require.NoError(t, err)

	rows := collect(t, g, true, false)
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, render.Cell{Glyph: render.GlyphUpperHalf, Foreground: &render.Color{R: 10, G: 20, B: 30}}, row[0])
	assert.Equal(t, render.Cell{Glyph: render.GlyphLowerHalf, Foreground: &render.Color{R: 40, G: 50, B: 60}}, row[1])
	assert.Equal(t, render.Cell{Glyph: render.GlyphNone}, row[2])
	assert.Equal(t, render.Cell{
		Glyph:      render.GlyphLowerHalf,
		Foreground: &render.Color{R: 2, G: 2, B: 2},
		Background: &render.Color{R: 1, G: 1, B: 1},
	}, row[3])

	rows = collect(t, g, true, true)
	assert.Equal(t, render.Cell{Glyph: render.GlyphEmpty}, rows[0][2])
}

func TestBuildCheckerboard(t *testing.T) {
	g := solid(t, 5, 6, color.NRGBA{})
	for pass := 0; pass < 2; pass++ {
		rows := collect(t, g, false, false)
		require.Len(t, rows, 3)
		for r, row := range rows {
			for col, c := range row {
				// background comes from pixel row 2r, foreground from 2r+1
				top, bottom := 2*r, 2*r+1
				want := func(pxRow int) render.Color {
					if pxRow%2 == col%2 {
						return render.CheckerDark
					}
					return render.CheckerLight
				}
				assert.Equal(t, render.GlyphLowerHalf, c.Glyph)
				assert.Equal(t, want(top), *c.Background, `row %d col %d`, r, col)
				assert.Equal(t, want(bottom), *c.Foreground, `row %d col %d`, r, col)
			}
		}
	}
}

func TestBuildOddTransparentLastRow(t *testing.T) {
	pix := []uint8{
		1, 1, 1, 255, 2, 2, 2, 255,
		3, 3, 3, 255, 4, 4, 4, 255,
		5, 5, 5, 255, 0, 0, 0, 0,
	}
	g, err := pixel.New(2, 3, pix)
	require.NoError(t, err)
	rows := collect(t, g, true, false)
	require.Len(t, rows, 2)
	assert.Equal(t, render.Cell{Glyph: render.GlyphUpperHalf, Foreground: &render.Color{R: 5, G: 5, B: 5}}, rows[1][0])
	assert.Equal(t, render.Cell{Glyph: render.GlyphEmpty}, rows[1][1])
}

func TestBuildStopsOnError(t *testing.T) {
	var calls int
	err := render.Build(noise(t, 2, 6), false, false, func([]render.Cell) error {
		calls++
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, calls)
	assert.Error(t, render.Build(noise(t, 1, 1), false, false, nil))
}

func TestRenderOpaqueRed(t *testing.T) {
	buf := &bytes.Buffer{}
	r := render.New(render.Options{Profile: termenv.TrueColor})
	sz, err := r.Render(buf, solid(t, 2, 2, color.NRGBA{R: 255, A: 255}))
	require.NoError(t, err)
	assert.Equal(t, render.Size{Cols: 2, Rows: 1}, sz)
	want := "\x1b[0;38;2;255;0;0;48;2;255;0;0m▄▄\x1b[0m\n\x1b[0m"
	assert.Equal(t, want, buf.String())
}

func TestRenderIndexed(t *testing.T) {
	buf := &bytes.Buffer{}
	r := render.New(render.Options{Profile: termenv.ANSI256})
	_, err := r.Render(buf, solid(t, 1, 2, color.NRGBA{R: 255, A: 255}))
	require.NoError(t, err)
	fg := termenv.ANSI256.Color(`#ff0000`).Sequence(false)
	bg := termenv.ANSI256.Color(`#ff0000`).Sequence(true)
	assert.Equal(t, "\x1b[0;"+fg+";"+bg+"m▄\x1b[0m\n\x1b[0m", buf.String())
	assert.NotContains(t, buf.String(), `;2;255`)
}

func TestRenderTransparentPixel(t *testing.T) {
	buf := &bytes.Buffer{}
	r := render.New(render.Options{Transparent: true, Profile: termenv.TrueColor})
	sz, err := r.Render(buf, solid(t, 1, 1, color.NRGBA{}))
	require.NoError(t, err)
	assert.Equal(t, render.Size{Cols: 1, Rows: 1}, sz)
	assert.Equal(t, " \x1b[0m\n\x1b[0m", buf.String())
	assert.NotContains(t, buf.String(), `38;`)
	assert.NotContains(t, buf.String(), `48;`)
}

func TestRenderSkipAndOffset(t *testing.T) {
	buf := &bytes.Buffer{}
	r := render.New(render.Options{Transparent: true, Profile: termenv.TrueColor, OffsetX: 3})
	pix := []uint8{
		0, 0, 0, 0, 9, 9, 9, 255,
		0, 0, 0, 0, 9, 9, 9, 255,
	}
	g, err := pixel.New(2, 2, pix)
	require.NoError(t, err)
	_, err = r.Render(buf, g)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[3C\x1b[1C\x1b[0;38;2;9;9;9;48;2;9;9;9m▄\x1b[0m\n\x1b[0m", buf.String())
}

func TestRenderIdempotent(t *testing.T) {
	g := noise(t, 9, 7)
	for _, opts := range []render.Options{
		{Profile: termenv.TrueColor},
		{Profile: termenv.ANSI256, Transparent: true},
		{Profile: termenv.ANSI, EraseTransparent: true, Transparent: true},
	} {
		r := render.New(opts)
		first, second := &bytes.Buffer{}, &bytes.Buffer{}
		_, err := r.Render(first, g)
		require.NoError(t, err)
		_, err = render.New(opts).Render(second, g)
		require.NoError(t, err)
		assert.Equal(t, first.Bytes(), second.Bytes())
		assert.Equal(t, (7+1)/2, strings.Count(first.String(), "\n"))
	}
}

func TestRenderSameColorsNotRepeated(t *testing.T) {
	buf := &bytes.Buffer{}
	r := render.New(render.Options{Profile: termenv.TrueColor})
	_, err := r.Render(buf, solid(t, 6, 4, color.NRGBA{G: 80, A: 255}))
	require.NoError(t, err)
	// one color switch per row
	assert.Equal(t, 2, strings.Count(buf.String(), `38;2;0;80;0`))
}
