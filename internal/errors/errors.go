package errors

import (
	"fmt"
	"runtime"

	errorsGo "github.com/go-errors/errors"

	"github.com/srlehn/termview/internal/consts"
)

func Is(err, target error) bool { return errorsGo.Is(err, target) }

// New wraps obj into a stack carrying *Error. Unlike errorsGo.New() nil stays nil
// and an already wrapped error keeps the stack of its origin.
func New(obj any) *Error {
	if obj == nil {
		return nil
	}
	if errGo, okErrGo := obj.(*errorsGo.Error); okErrGo {
		return errGo
	}
	return errorsGo.Wrap(obj, 1)
}

type Error = errorsGo.Error

func Errorf(format string, a ...any) *Error { return errorsGo.Errorf(format, a...) }

func Wrap(e any, skip int) *Error { return errorsGo.Wrap(e, skip+1) }

func WrapPrefix(e any, prefix string, skip int) *Error {
	return errorsGo.WrapPrefix(e, prefix, skip+1)
}

// NilReceiver returns an error with the function name if any of the arguments are nil
func NilReceiver(args ...any) error {
	return errMsgNilTester(consts.ErrNilReceiver, 3, args...)
}

// NilParam returns an error with the function name if any of the arguments are nil
func NilParam(args ...any) error {
	return errMsgNilTester(consts.ErrNilParam, 3, args...)
}

// IsBrokenPipe reports whether err was caused by the reading end of the
// output going away, e.g. a pager quitting early.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return isBrokenPipe(err)
}

func errMsgNilTester(sentinel error, skip int, args ...any) error {
	if len(args) == 0 {
		return errMsg(sentinel, skip)
	}
	for i := range args {
		if isNil(args[i]) {
			return errMsg(sentinel, skip)
		}
	}
	return nil
}

func errMsg(sentinel error, skip int) error {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return Wrap(sentinel, skip)
	}
	return Wrap(fmt.Errorf(`%w: %s()`, sentinel, runtime.FuncForPC(pc).Name()), skip)
}
