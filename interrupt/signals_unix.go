//go:build unix

package interrupt

import (
	"os"

	"golang.org/x/sys/unix"
)

func defaultSignals() []os.Signal { return []os.Signal{os.Interrupt, unix.SIGTERM} }
