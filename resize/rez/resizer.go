package rez

import (
	"image"
	"image/draw"

	"github.com/bamiaux/rez"

	"github.com/srlehn/termview/fit"
	"github.com/srlehn/termview/internal/errors"
)

// Resizer uses "github.com/bamiaux/rez"
type Resizer struct{}

var _ fit.Resizer = (*Resizer)(nil)

// Resize converts anything but RGBA and Gray to RGBA first, rez wants
// the same image type on both ends.
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := errors.NilParam(img); err != nil {
		return nil, err
	}
	if size.X < 1 || size.Y < 1 {
		return nil, errors.Errorf(`invalid target size %dx%d`, size.X, size.Y)
	}
	rect := image.Rect(0, 0, size.X, size.Y)
	var src, dst image.Image
	switch it := img.(type) {
	case *image.Gray:
		src, dst = it, image.NewGray(rect)
	case *image.RGBA:
		src, dst = it, image.NewRGBA(rect)
	default:
		b := img.Bounds()
		m := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(m, m.Bounds(), img, b.Min, draw.Src)
		src, dst = m, image.NewRGBA(rect)
	}
	if err := rez.Convert(dst, src, rez.NewBilinearFilter()); err != nil {
		return nil, errors.New(err)
	}
	return dst, nil
}
