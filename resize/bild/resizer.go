package bild

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/srlehn/termview/fit"
	"github.com/srlehn/termview/internal/errors"
)

// Resizer uses "github.com/anthonynsimon/bild/transform"
type Resizer struct{}

var _ fit.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := errors.NilParam(img); err != nil {
		return nil, err
	}
	if size.X < 1 || size.Y < 1 {
		return nil, errors.Errorf(`invalid target size %dx%d`, size.X, size.Y)
	}
	return transform.Resize(img, size.X, size.Y, transform.Lanczos), nil
}
