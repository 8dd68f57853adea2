package render

import "github.com/srlehn/termview/pixel"

type Glyph uint8

const (
	// GlyphNone paints nothing, the cursor only moves one column forward.
	GlyphNone Glyph = iota
	// GlyphEmpty is a blank in the default colors.
	GlyphEmpty
	GlyphUpperHalf
	GlyphLowerHalf
)

func (g Glyph) String() string {
	switch g {
	case GlyphEmpty:
		return ` `
	case GlyphUpperHalf:
		return "\u2580" // ▀
	case GlyphLowerHalf:
		return "\u2584" // ▄
	default:
		return ``
	}
}

// Cell is one terminal character position. A nil color leaves the
// terminal default in place.
type Cell struct {
	Glyph      Glyph
	Foreground *Color
	Background *Color
}

// shade is the display color of one pixel, ok is false for pixels that
// are let through as transparent.
type shade struct {
	Color
	ok bool
}

func shadeOf(px pixel.Pixel, row, col int, transparent bool) shade {
	if !px.Transparent() {
		return shade{Color: Color{R: px.R, G: px.G, B: px.B}, ok: true}
	}
	if transparent {
		return shade{}
	}
	if row%2 == col%2 {
		return shade{Color: CheckerDark, ok: true}
	}
	return shade{Color: CheckerLight, ok: true}
}

type paintKind uint8

const (
	paintEmpty paintKind = iota
	paintFull
	paintTopOnly
	// paintBottomOnly is drawn as a lower half block in the bottom color, an
	// upper half block would paint the wrong half.
	paintBottomOnly
)

// paint is the resolved content of a cell built from an upper and a lower pixel.
type paint struct {
	kind        paintKind
	top, bottom Color
}

func resolve(top, bottom shade) paint {
	switch {
	case top.ok && bottom.ok:
		return paint{kind: paintFull, top: top.Color, bottom: bottom.Color}
	case top.ok:
		return paint{kind: paintTopOnly, top: top.Color}
	case bottom.ok:
		return paint{kind: paintBottomOnly, bottom: bottom.Color}
	}
	return paint{kind: paintEmpty}
}

func (p paint) cell(erase bool) Cell {
	switch p.kind {
	case paintFull:
		top, bottom := p.top, p.bottom
		return Cell{Glyph: GlyphLowerHalf, Foreground: &bottom, Background: &top}
	case paintTopOnly:
		top := p.top
		return Cell{Glyph: GlyphUpperHalf, Foreground: &top}
	case paintBottomOnly:
		bottom := p.bottom
		return Cell{Glyph: GlyphLowerHalf, Foreground: &bottom}
	}
	if erase {
		return Cell{Glyph: GlyphEmpty}
	}
	return Cell{Glyph: GlyphNone}
}

// lone is the cell of an unpaired last pixel row of an image with odd height.
func lone(top shade) Cell {
	if !top.ok {
		return Cell{Glyph: GlyphEmpty}
	}
	c := top.Color
	return Cell{Glyph: GlyphUpperHalf, Foreground: &c}
}
