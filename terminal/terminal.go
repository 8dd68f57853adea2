// Package terminal answers the few questions asked about the terminal:
// its size in cells and how many colors it can show.
package terminal

import (
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/srlehn/termview/internal/consts"
	"github.com/srlehn/termview/internal/errors"
	"github.com/srlehn/termview/internal/logx"
)

// Size is a terminal size in cells.
type Size struct {
	Cols, Rows int
}

var DefaultSize = Size{Cols: consts.DefaultCols, Rows: consts.DefaultRows}

// Fder is implemented by *os.File.
type Fder interface{ Fd() uintptr }

// QuerySize returns the size of the terminal f is connected to.
func QuerySize(f Fder) (Size, error) {
	if err := errors.NilParam(f); err != nil {
		return Size{}, err
	}
	cols, rows, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return Size{}, errors.New(err)
	}
	if cols < 1 || rows < 1 {
		return Size{}, errors.Errorf(`%w: %dx%d`, consts.ErrUnknownSize, cols, rows)
	}
	return Size{Cols: cols, Rows: rows}, nil
}

// SizeOrDefault falls back to DefaultSize if the size can't be queried,
// e.g. when the output is redirected.
func SizeOrDefault(f Fder, loggerProv logx.LoggerProvider) Size {
	sz, err := QuerySize(f)
	if err != nil {
		logx.Warn(`could not query terminal size, using default`, loggerProv,
			`error`, err, `cols`, DefaultSize.Cols, `rows`, DefaultSize.Rows)
		return DefaultSize
	}
	return sz
}

// IsTerminal reports whether f is connected to a terminal.
func IsTerminal(f Fder) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ColorProfile reads COLORTERM from environ (os.Environ() format). Only an
// explicit truecolor announcement enables 24 bit colors, everything else
// gets the 256 color palette.
func ColorProfile(environ []string) termenv.Profile {
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, `=`)
		if !ok || k != `COLORTERM` {
			continue
		}
		if strings.Contains(v, `truecolor`) || strings.Contains(v, `24bit`) {
			return termenv.TrueColor
		}
	}
	return termenv.ANSI256
}
