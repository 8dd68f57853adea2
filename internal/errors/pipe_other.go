//go:build !unix

package errors

import (
	"errors"
	"os"
	"syscall"
)

// ERROR_BROKEN_PIPE / ERROR_NO_DATA on windows both surface as EPIPE or a closed file
func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, os.ErrClosed)
}
