// Package pixel holds the immutable RGBA grids handed from decoding and
// resizing to the cell renderer.
package pixel

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/srlehn/termview/internal/errors"
)

// Pixel is a non-premultiplied RGBA value. A is either 0 (transparent) or
// treated as opaque, there is no blending.
type Pixel struct {
	R, G, B, A uint8
}

func (p Pixel) Transparent() bool { return p.A == 0 }

// Grid is a rectangular row-major pixel grid. It must not be modified after
// construction.
type Grid struct {
	width  int
	height int
	pix    []uint8 // 4 bytes per pixel
}

var _ image.Image = (*Grid)(nil)

// New copies pix, which must hold width*height*4 bytes in RGBA order.
func New(width, height int, pix []uint8) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, errors.Errorf(`negative grid size %dx%d`, width, height)
	}
	if len(pix) != width*height*4 {
		return nil, errors.Errorf(`grid %dx%d needs %d bytes, got %d`, width, height, width*height*4, len(pix))
	}
	return &Grid{
		width:  width,
		height: height,
		pix:    append([]uint8(nil), pix...),
	}, nil
}

// FromImage converts img into a grid whose origin is (0,0).
func FromImage(img image.Image) (*Grid, error) {
	if err := errors.NilParam(img); err != nil {
		return nil, err
	}
	if g, ok := img.(*Grid); ok {
		return g, nil
	}
	b := img.Bounds()
	var nrgba *image.NRGBA
	if m, ok := img.(*image.NRGBA); ok && m.Rect.Min == (image.Point{}) && m.Stride == 4*b.Dx() {
		nrgba = m
	} else {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}
	return &Grid{
		width:  b.Dx(),
		height: b.Dy(),
		pix:    append([]uint8(nil), nrgba.Pix[:4*b.Dx()*b.Dy()]...),
	}, nil
}

func (g *Grid) Width() int {
	if g == nil {
		return 0
	}
	return g.width
}

func (g *Grid) Height() int {
	if g == nil {
		return 0
	}
	return g.height
}

// Pixel returns the pixel at column x, row y. Out of range reads are transparent.
func (g *Grid) Pixel(x, y int) Pixel {
	if g == nil || x < 0 || y < 0 || x >= g.width || y >= g.height {
		return Pixel{}
	}
	i := 4 * (y*g.width + x)
	return Pixel{R: g.pix[i], G: g.pix[i+1], B: g.pix[i+2], A: g.pix[i+3]}
}

// Rows is the number of terminal rows the grid occupies, two pixel rows per cell.
func (g *Grid) Rows() int { return (g.Height() + 1) / 2 }

func (g *Grid) ColorModel() color.Model { return color.NRGBAModel }
func (g *Grid) Bounds() image.Rectangle  { return image.Rect(0, 0, g.Width(), g.Height()) }
func (g *Grid) At(x, y int) color.Color {
	p := g.Pixel(x, y)
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}
