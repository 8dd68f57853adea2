// Package decode turns image files into full frames. Animated GIFs are
// composited, every frame comes out as the complete picture.
package decode

import (
	"bytes"
	"image"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/srlehn/termview/internal/errors"
)

// GIF delays are counted in hundredths of a second.
const gifDelayUnit = 10 * time.Millisecond

type Frame struct {
	Image image.Image
	// Delay is 0 if the file doesn't set one.
	Delay time.Duration
}

type Media struct {
	Format string
	Frames []Frame
}

// Animated reports whether there is more than one frame.
func (m *Media) Animated() bool { return m != nil && len(m.Frames) > 1 }

// Still returns the first frame.
func (m *Media) Still() image.Image {
	if m == nil || len(m.Frames) == 0 {
		return nil
	}
	return m.Frames[0].Image
}

func File(name string) (*Media, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.New(err)
	}
	defer f.Close()
	m, err := Reader(f)
	if err != nil {
		return nil, errors.WrapPrefix(err, name, 0)
	}
	return m, nil
}

// Reader reads r to the end and decodes it.
func Reader(r io.Reader) (*Media, error) {
	if err := errors.NilParam(r); err != nil {
		return nil, err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New(err)
	}
	return Bytes(b)
}

func Bytes(b []byte) (*Media, error) {
	if len(b) == 0 {
		return nil, errors.New(`no image data`)
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return nil, errors.New(err)
	}
	if format == `gif` {
		g, err := gif.DecodeAll(bytes.NewReader(b))
		if err != nil {
			return nil, errors.New(err)
		}
		frames, err := Composite(g)
		if err != nil {
			return nil, err
		}
		return &Media{Format: format, Frames: frames}, nil
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, errors.New(err)
	}
	return &Media{Format: format, Frames: []Frame{{Image: img}}}, nil
}
