// Package caire resizes by seam carving, which keeps the important parts
// of an image instead of squeezing everything.
package caire

import (
	"image"
	"image/draw"

	"github.com/esimov/caire"

	"github.com/srlehn/termview/fit"
	"github.com/srlehn/termview/internal/errors"
)

type Resizer struct {
	BlurRadius     int
	SobelThreshold int
}

var _ fit.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := errors.NilParam(img); err != nil {
		return nil, err
	}
	if size.X < 1 || size.Y < 1 {
		return nil, errors.Errorf(`invalid target size %dx%d`, size.X, size.Y)
	}
	blur, sobel := 1, 4
	if r != nil {
		if r.BlurRadius > 0 {
			blur = r.BlurRadius
		}
		if r.SobelThreshold > 0 {
			sobel = r.SobelThreshold
		}
	}
	p := &caire.Processor{
		BlurRadius:     blur,
		SobelThreshold: sobel,
		NewWidth:       size.X,
		NewHeight:      size.Y,
	}
	nimg, ok := img.(*image.NRGBA)
	if !ok || nimg.Rect.Min != (image.Point{}) {
		b := img.Bounds()
		nimg = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nimg, nimg.Bounds(), img, b.Min, draw.Src)
	}
	res, err := p.Resize(nimg)
	if err != nil {
		return nil, errors.WrapPrefix(err, `seam carving`, 0)
	}
	return res, nil
}
