package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/srlehn/termview/fit"
	"github.com/srlehn/termview/internal/errors"
)

// Resizer uses "github.com/disintegration/imaging"
type Resizer struct {
	// Filter defaults to Lanczos.
	Filter *imaging.ResampleFilter
}

var _ fit.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := errors.NilParam(img); err != nil {
		return nil, err
	}
	if size.X < 1 || size.Y < 1 {
		return nil, errors.Errorf(`invalid target size %dx%d`, size.X, size.Y)
	}
	filter := imaging.Lanczos
	if r != nil && r.Filter != nil {
		filter = *r.Filter
	}
	return imaging.Resize(img, size.X, size.Y, filter), nil
}
