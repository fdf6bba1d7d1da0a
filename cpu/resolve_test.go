package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	assert := assert.New(t)

	tape := NewTape([]int64{1002, 4, 3, 4, 33})

	values, err := Resolve([]Mode{MODE_POSITION, MODE_IMMEDIATE}, tape, 1)
	assert.NoError(err)
	assert.Equal([]int64{33, 3}, values)

	values, err = Resolve(nil, tape, 1)
	assert.NoError(err)
	assert.Empty(values)
}

func TestResolve_OutOfBounds(t *testing.T) {
	assert := assert.New(t)

	tape := NewTape([]int64{1, 10, 0, 0, 99})

	// Position operand past the end of the tape.
	_, err := Resolve([]Mode{MODE_POSITION, MODE_POSITION}, tape, 1)
	assert.ErrorIs(err, ErrResolve)
	assert.ErrorIs(err, ErrOutOfBounds)
	assert.ErrorIs(err, ErrParam(0))
	assert.ErrorIs(err, ErrAddress(10))

	// Raw operand past the end of the tape.
	_, err = Resolve([]Mode{MODE_IMMEDIATE, MODE_IMMEDIATE}, tape, 4)
	assert.ErrorIs(err, ErrOutOfBounds)
	assert.ErrorIs(err, ErrParam(1))
	assert.ErrorIs(err, ErrAddress(5))

	// Negative position.
	tape = NewTape([]int64{4, -1, 99})
	_, err = Resolve([]Mode{MODE_POSITION}, tape, 1)
	assert.ErrorIs(err, ErrAddress(-1))
}
