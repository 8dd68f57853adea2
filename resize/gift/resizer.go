package gift

import (
	"image"

	"github.com/disintegration/gift"

	"github.com/srlehn/termview/fit"
	"github.com/srlehn/termview/internal/errors"
)

// Resizer uses "github.com/disintegration/gift"
type Resizer struct{}

var _ fit.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := errors.NilParam(img); err != nil {
		return nil, err
	}
	if size.X < 1 || size.Y < 1 {
		return nil, errors.Errorf(`invalid target size %dx%d`, size.X, size.Y)
	}
	g := gift.New(gift.Resize(size.X, size.Y, gift.LanczosResampling))
	g.SetParallelization(true)
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst, nil
}
