package render

import (
	"fmt"
	"strconv"

	"github.com/muesli/termenv"
)

// Color is a plain 24 bit color. How it ends up in the output stream is
// decided by the color profile of the Renderer.
type Color struct {
	R, G, B uint8
}

var (
	// transparency checkerboard
	CheckerDark  = Color{R: 102, G: 102, B: 102}
	CheckerLight = Color{R: 153, G: 153, B: 153}
)

func (c Color) Hex() string { return fmt.Sprintf(`#%02x%02x%02x`, c.R, c.G, c.B) }

// sequence returns the SGR parameters selecting c as foreground or
// background color. An empty string means the profile can't express colors.
func (c Color) sequence(p termenv.Profile, bg bool) string {
	if p == termenv.TrueColor {
		prefix := termenv.Foreground
		if bg {
			prefix = termenv.Background
		}
		return prefix + `;2;` + strconv.Itoa(int(c.R)) + `;` + strconv.Itoa(int(c.G)) + `;` + strconv.Itoa(int(c.B))
	}
	tc := p.Color(c.Hex())
	if tc == nil {
		return ``
	}
	return tc.Sequence(bg)
}
