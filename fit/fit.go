// Package fit decides the pixel size an image is drawn at and resizes it.
//
// A terminal cell shows two vertically stacked pixels, so a height given in
// rows is worth twice as many pixels.
package fit

import (
	"image"
	"log/slog"
	"math"

	"github.com/srlehn/termview/internal/errors"
	"github.com/srlehn/termview/internal/logx"
	"github.com/srlehn/termview/pixel"
	"github.com/srlehn/termview/terminal"
)

// Resizer scales img to exactly size.
type Resizer interface {
	Resize(img image.Image, size image.Point) (image.Image, error)
}

// Target is the requested size, Width in columns and Height in rows.
// Zero leaves the dimension unset.
type Target struct {
	Width, Height uint
}

type Policy uint8

const (
	// Exact ignores the aspect ratio.
	Exact Policy = iota
	// Preserve keeps the aspect ratio.
	Preserve
	// Terminal keeps the aspect ratio and only shrinks images that don't
	// fit into the terminal.
	Terminal
)

func (p Policy) String() string {
	switch p {
	case Exact:
		return `exact`
	case Preserve:
		return `preserve aspect ratio`
	case Terminal:
		return `match terminal size`
	default:
		return `unknown`
	}
}

// Dimensions returns the pixel size for an image of size src. term is
// only consulted when t sets neither dimension.
func Dimensions(src image.Point, t Target, term terminal.Size) (image.Point, Policy) {
	if src.X < 1 || src.Y < 1 {
		return image.Point{}, Exact
	}
	switch {
	case t.Width > 0 && t.Height > 0:
		return image.Point{X: int(t.Width), Y: 2 * int(t.Height)}, Exact
	case t.Width > 0:
		w := int(t.Width)
		return atLeastOne(image.Point{X: w, Y: scale(src.Y, w, src.X)}), Preserve
	case t.Height > 0:
		h := 2 * int(t.Height)
		return atLeastOne(image.Point{X: scale(src.X, h, src.Y), Y: h}), Preserve
	}
	// the row below the image is kept free for the shell prompt
	box := image.Point{X: term.Cols, Y: 2 * (term.Rows - 1)}
	if box.X < 1 || box.Y < 1 {
		box = image.Point{X: terminal.DefaultSize.Cols, Y: 2 * (terminal.DefaultSize.Rows - 1)}
	}
	if src.X <= box.X && src.Y <= box.Y {
		return src, Terminal
	}
	ratio := math.Min(float64(box.X)/float64(src.X), float64(box.Y)/float64(src.Y))
	return atLeastOne(image.Point{
		X: min(box.X, int(math.Round(float64(src.X)*ratio))),
		Y: min(box.Y, int(math.Round(float64(src.Y)*ratio))),
	}), Terminal
}

// scale returns v*num/den rounded.
func scale(v, num, den int) int {
	return int(math.Round(float64(v) * float64(num) / float64(den)))
}

func atLeastOne(p image.Point) image.Point {
	return image.Point{X: max(p.X, 1), Y: max(p.Y, 1)}
}

// Fit resizes img as decided by Dimensions. Images already at the target
// size are not passed to rsz.
func Fit(img image.Image, t Target, term terminal.Size, rsz Resizer, loggerProv logx.LoggerProvider) (*pixel.Grid, error) {
	if err := errors.NilParam(img, rsz); err != nil {
		return nil, err
	}
	src := img.Bounds().Size()
	size, policy := Dimensions(src, t, term)
	if size.X < 1 || size.Y < 1 {
		return nil, errors.Errorf(`cannot fit image of size %dx%d`, src.X, src.Y)
	}
	if size == src {
		logx.Debug(`no resize needed`, loggerProv, `size`, src, `policy`, policy.String())
		return pixel.FromImage(img)
	}
	logx.Info(`resizing`, loggerProv, `from`, src, `to`, size, `policy`, policy.String())
	resized, err := rsz.Resize(img, size)
	if err != nil {
		return nil, errors.WrapPrefix(err, `resize`, 0)
	}
	if resized == nil {
		return nil, errors.New(`resizer returned no image`)
	}
	if got := resized.Bounds().Size(); got != size {
		logx.IsErr(errors.Errorf(`resizer returned %dx%d instead of %dx%d`, got.X, got.Y, size.X, size.Y), loggerProv, slog.LevelDebug)
	}
	return pixel.FromImage(resized)
}
