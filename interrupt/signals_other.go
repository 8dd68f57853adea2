//go:build !unix

package interrupt

import "os"

func defaultSignals() []os.Signal { return []os.Signal{os.Interrupt} }
