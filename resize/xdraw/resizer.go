// Package xdraw scales with golang.org/x/image/draw.
// ApproxBiLinear is the fast choice, CatmullRom the sharp one.
package xdraw

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/srlehn/termview/fit"
	"github.com/srlehn/termview/internal/errors"
)

type resizer struct {
	scaler draw.Scaler
}

var _ fit.Resizer = (*resizer)(nil)

func ApproxBiLinear() fit.Resizer { return &resizer{scaler: draw.ApproxBiLinear} }

func BiLinear() fit.Resizer { return &resizer{scaler: draw.BiLinear} }

func CatmullRom() fit.Resizer { return &resizer{scaler: draw.CatmullRom} }

// NearestNeighbor keeps hard pixel edges, which suits pixel art.
func NearestNeighbor() fit.Resizer { return &resizer{scaler: draw.NearestNeighbor} }

// Resize draws into a transparent NRGBA canvas with draw.Src, so
// transparent source pixels stay transparent.
func (r *resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := errors.NilParam(img); err != nil {
		return nil, err
	}
	if size.X < 1 || size.Y < 1 {
		return nil, errors.Errorf(`invalid target size %dx%d`, size.X, size.Y)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	r.scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
