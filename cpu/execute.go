package cpu

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ezrec/intcode/io"
)

// Source supplies lines to Input instructions.
type Source io.Source

// Sink receives lines from Output instructions.
type Sink io.Sink

//go:generate go tool stringer -linecomment -type=ResultKind

// ResultKind is the effect of an executed instruction.
type ResultKind int

const (
	RESULT_WRITE = ResultKind(0) // write
	RESULT_NONE  = ResultKind(1) // none
	RESULT_HALT  = ResultKind(2) // halt
)

// Result is the outcome of Execute. Value is only meaningful for RESULT_WRITE.
type Result struct {
	Kind  ResultKind
	Value int64
}

// Execute performs op on its resolved read parameters.
//
// Input blocks on input until a line is available. Output emits its
// parameter to output as one decimal line.
func Execute(op OpType, params []int64, input Source, output Sink) (result Result, err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrExecute, err)
		}
	}()

	layout, ok := op.Layout()
	if !ok {
		err = ErrUnknownOpcode
		return
	}
	if len(params) != layout.Read {
		err = ErrParameterCount
		return
	}

	switch op {
	case OP_ADD:
		result = Result{Kind: RESULT_WRITE, Value: params[0] + params[1]}
	case OP_MULTIPLY:
		result = Result{Kind: RESULT_WRITE, Value: params[0] * params[1]}
	case OP_INPUT:
		if input == nil {
			err = errors.Join(ErrInputUnreadable, io.ErrEndOfInput)
			return
		}
		var line string
		line, err = input.ReadLine()
		if err != nil {
			err = errors.Join(ErrInputUnreadable, err)
			return
		}
		var value int64
		value, err = strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			err = errors.Join(ErrInputUnreadable, err)
			return
		}
		result = Result{Kind: RESULT_WRITE, Value: value}
	case OP_OUTPUT:
		if output == nil {
			err = errors.Join(ErrOutputUnwritable, io.ErrNoOutput)
			return
		}
		err = output.WriteLine(strconv.FormatInt(params[0], 10))
		if err != nil {
			err = errors.Join(ErrOutputUnwritable, err)
			return
		}
		result = Result{Kind: RESULT_NONE}
	case OP_HALT:
		result = Result{Kind: RESULT_HALT}
	}

	return
}
