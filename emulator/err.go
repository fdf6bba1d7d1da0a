package emulator

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrSearchExhausted = errors.New(f("no noun and verb produce the target"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Ip     int64
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d ip %d %v", err.LineNo, err.Ip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
