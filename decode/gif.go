package decode

import (
	"image"
	"image/gif"
	"time"

	"golang.org/x/image/draw"

	"github.com/srlehn/termview/internal/errors"
)

// Composite paints the frames of g one after another onto a canvas of the
// logical screen size and snapshots the canvas after each of them,
// honoring the disposal of the previous frame.
func Composite(g *gif.GIF) ([]Frame, error) {
	if err := errors.NilParam(g); err != nil {
		return nil, err
	}
	if len(g.Image) == 0 {
		return nil, errors.New(`gif without frames`)
	}
	screen := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if screen.Empty() {
		for _, m := range g.Image {
			screen = screen.Union(m.Bounds())
		}
		screen.Min = image.Point{}
	}
	canvas := image.NewNRGBA(screen)
	var restore *image.NRGBA
	frames := make([]Frame, 0, len(g.Image))
	for i, m := range g.Image {
		disposal := byte(gif.DisposalNone)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			restore = clone(canvas)
		}
		draw.Draw(canvas, m.Bounds(), m, m.Bounds().Min, draw.Over)

		var delay time.Duration
		if i < len(g.Delay) && g.Delay[i] > 0 {
			delay = time.Duration(g.Delay[i]) * gifDelayUnit
		}
		frames = append(frames, Frame{Image: clone(canvas), Delay: delay})

		switch disposal {
		case gif.DisposalBackground:
			// the background is transparent, browsers do the same
			draw.Draw(canvas, m.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			if restore != nil {
				canvas, restore = restore, nil
			}
		}
	}
	return frames, nil
}

func clone(m *image.NRGBA) *image.NRGBA {
	c := image.NewNRGBA(m.Rect)
	copy(c.Pix, m.Pix)
	return c
}
