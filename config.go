package termview

import (
	"log/slog"
	"os"

	"github.com/muesli/termenv"

	"github.com/srlehn/termview/fit"
	"github.com/srlehn/termview/internal/logx"
	"github.com/srlehn/termview/play"
	"github.com/srlehn/termview/resize/rdefault"
	"github.com/srlehn/termview/terminal"
)

// Config describes how images are fitted, positioned and played.
type Config struct {
	// Width in columns and Height in rows, 0 leaves the dimension to the
	// aspect ratio or the terminal size.
	Width, Height uint
	// X, Y offset the image. Relative to the cursor unless AbsoluteOffset
	// is set, then they are 0-based screen coordinates.
	X, Y           int
	AbsoluteOffset bool
	// Transparent skips transparent pixels instead of drawing a checkerboard.
	Transparent bool
	// Mirror flips images horizontally.
	Mirror bool
	// Profile selects the color encoding, the zero value is TrueColor.
	Profile termenv.Profile
	// Terminal is the available space, the zero value queries stdout.
	Terminal terminal.Size
	// Resizer defaults to rdefault.Resizer.
	Resizer fit.Resizer
	// FPS > 0 replaces the frame durations of animations with 1/FPS.
	FPS float64
	// Static shows only the first frame of animations.
	Static bool
	// Once plays animations a single time even if there is only one input.
	Once bool
	// Name prints the file name above each image.
	Name bool
	// Recursive descends into subdirectories.
	Recursive bool
	Logger    *slog.Logger
}

// DefaultConfig takes the color profile from the environment.
func DefaultConfig() Config {
	return Config{
		Profile: terminal.ColorProfile(os.Environ()),
		Resizer: &rdefault.Resizer{},
	}
}

func (c Config) target() fit.Target { return fit.Target{Width: c.Width, Height: c.Height} }

func (c Config) resizer() fit.Resizer {
	if c.Resizer == nil {
		return &rdefault.Resizer{}
	}
	return c.Resizer
}

func (c Config) terminalSize() terminal.Size {
	if c.Terminal.Cols > 0 && c.Terminal.Rows > 0 {
		return c.Terminal
	}
	return terminal.SizeOrDefault(os.Stdout, c.loggerProv())
}

func (c Config) loggerProv() logx.LoggerProvider { return logx.Prov(c.Logger) }

// Mode picks the playback mode for an animation among inputs inputs:
// looping only for a single input.
func (c Config) Mode(inputs int) play.Mode {
	switch {
	case c.Static:
		return play.StaticFirstFrameOnly
	case inputs <= 1 && !c.Once:
		return play.Looping
	default:
		return play.PlayOnce
	}
}
