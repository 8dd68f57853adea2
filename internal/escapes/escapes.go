package escapes

import "strconv"

// https://en.wikipedia.org/wiki/ANSI_escape_code
const (
	ESC = "\x1B"
	CSI = ESC + "[" // Control Sequence Introducer
	LF  = "\x0A"

	SGRReset = CSI + `0m`

	// ED0 - erase from the cursor to the end of the screen
	EraseBelow = CSI + `0J`

	// https://vt100.net/docs/vt510-rm/DECTCEM.html
	DECTCEMHide = CSI + `?25l`
	DECTCEMShow = CSI + `?25h`
)

// CursorUp (CUU) moves the cursor n rows up. n < 1 yields an empty string,
// terminals would treat 0 as 1.
func CursorUp(n int) string {
	if n < 1 {
		return ``
	}
	return CSI + strconv.Itoa(n) + `A`
}

// CursorForward (CUF)
func CursorForward(n int) string {
	if n < 1 {
		return ``
	}
	return CSI + strconv.Itoa(n) + `C`
}

// CursorPosition (CUP) takes 0-based cell coordinates.
func CursorPosition(x, y int) string {
	return CSI + strconv.Itoa(max(y, 0)+1) + `;` + strconv.Itoa(max(x, 0)+1) + `H`
}

// SGR joins select graphic rendition parameters into a single sequence.
func SGR(params ...string) string {
	s := CSI
	for i, p := range params {
		if i > 0 {
			s += `;`
		}
		s += p
	}
	return s + `m`
}
