// Package rdefault picks a resizer by image type: rez for the types it
// handles fast, x/image/draw for everything else.
package rdefault

import (
	"image"
	"runtime"

	"github.com/srlehn/termview/fit"
	"github.com/srlehn/termview/internal/errors"
	"github.com/srlehn/termview/resize/rez"
	"github.com/srlehn/termview/resize/xdraw"
)

type Resizer struct{}

var _ fit.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := errors.NilParam(img); err != nil {
		return nil, err
	}
	if runtime.GOARCH != `amd64` {
		return xdraw.ApproxBiLinear().Resize(img, size)
	}
	switch img.(type) {
	case *image.RGBA, *image.Gray:
		// rez uses SIMD assembly on amd64
		if m, err := (&rez.Resizer{}).Resize(img, size); err == nil {
			return m, nil
		}
	}
	return xdraw.ApproxBiLinear().Resize(img, size)
}
