package io

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrEndOfInput = errors.New(f("end of input"))
	ErrNoOutput   = errors.New(f("no output attached"))
)
