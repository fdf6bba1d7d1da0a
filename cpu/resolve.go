package cpu

import (
	"errors"
)

// Resolve produces the operand value of each read parameter, whose raw
// operands start at base.
func Resolve(modes []Mode, tape *Tape, base int64) (values []int64, err error) {
	values = make([]int64, len(modes))

	for n, mode := range modes {
		var raw int64
		raw, err = tape.Read(base + int64(n))
		if err != nil {
			err = errors.Join(ErrResolve, ErrParam(n), err)
			return nil, err
		}

		switch mode {
		case MODE_POSITION:
			values[n], err = tape.Read(raw)
			if err != nil {
				err = errors.Join(ErrResolve, ErrParam(n), err)
				return nil, err
			}
		case MODE_IMMEDIATE:
			values[n] = raw
		default:
			err = errors.Join(ErrResolve, ErrParam(n), ErrInvalidMode)
			return nil, err
		}
	}

	return
}
