//go:build unix

package errors

import (
	"errors"

	"golang.org/x/sys/unix"
)

func isBrokenPipe(err error) bool { return errors.Is(err, unix.EPIPE) }
