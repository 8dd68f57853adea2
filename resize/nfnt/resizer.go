package nfnt

import (
	"image"

	"github.com/nfnt/resize"

	"github.com/srlehn/termview/fit"
	"github.com/srlehn/termview/internal/errors"
)

// Resizer uses "github.com/nfnt/resize"
type Resizer struct {
	// Interpolation defaults to Lanczos3.
	Interpolation resize.InterpolationFunction
}

var _ fit.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := errors.NilParam(img); err != nil {
		return nil, err
	}
	if size.X < 1 || size.Y < 1 {
		return nil, errors.Errorf(`invalid target size %dx%d`, size.X, size.Y)
	}
	interp := resize.Lanczos3
	if r != nil && r.Interpolation != resize.NearestNeighbor {
		interp = r.Interpolation
	}
	return resize.Resize(uint(size.X), uint(size.Y), img, interp), nil
}
