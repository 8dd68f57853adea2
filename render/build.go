package render

import (
	"github.com/srlehn/termview/internal/errors"
	"github.com/srlehn/termview/pixel"
)

// rowBuffer collects the upper halves of one terminal row. It is either
// empty or holds exactly one shade per column.
type rowBuffer struct {
	width int
	tops  []shade
}

func (b *rowBuffer) full() bool  { return len(b.tops) == b.width }
func (b *rowBuffer) empty() bool { return len(b.tops) == 0 }
func (b *rowBuffer) reset()      { b.tops = b.tops[:0] }

// Build walks g in row-major order and hands every completed terminal row to
// fn, top to bottom. Two pixel rows form one terminal row: the upper pixel
// becomes the background and the lower pixel the foreground of a lower
// half block. A trailing unpaired pixel row becomes upper half blocks.
//
// fn owns the passed slice. Partially built rows are never passed.
func Build(g *pixel.Grid, transparent, erase bool, fn func(row []Cell) error) error {
	if fn == nil {
		return errors.NilParam()
	}
	w, h := g.Width(), g.Height()
	if w == 0 || h == 0 {
		return nil
	}
	buf := &rowBuffer{width: w, tops: make([]shade, 0, w)}
	var row []Cell
	for y := 0; y < h; y++ {
		upper := !buf.full()
		if !upper {
			row = make([]Cell, w)
		}
		for x := 0; x < w; x++ {
			s := shadeOf(g.Pixel(x, y), y, x, transparent)
			if upper {
				buf.tops = append(buf.tops, s)
				continue
			}
			row[x] = resolve(buf.tops[x], s).cell(erase)
		}
		if !upper {
			buf.reset()
			if err := fn(row); err != nil {
				return err
			}
		}
	}
	if !buf.empty() {
		row = make([]Cell, w)
		for x, top := range buf.tops {
			row[x] = lone(top)
		}
		buf.reset()
		return fn(row)
	}
	return nil
}
