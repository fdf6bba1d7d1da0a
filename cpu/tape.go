package cpu

import (
	"slices"
	"strconv"
	"strings"
)

// Tape is the machine's program and data memory. Its length is fixed at
// creation.
type Tape struct {
	data []int64
}

// NewTape creates a tape holding a copy of words.
func NewTape(words []int64) *Tape {
	return &Tape{data: slices.Clone(words)}
}

// Len returns the number of words on the tape.
func (tape *Tape) Len() int64 {
	if tape == nil {
		return 0
	}
	return int64(len(tape.data))
}

func (tape *Tape) check(address int64) (err error) {
	if address < 0 || address >= tape.Len() {
		err = ErrAddress(address)
	}
	return
}

// Read returns the word at address.
func (tape *Tape) Read(address int64) (value int64, err error) {
	err = tape.check(address)
	if err != nil {
		return
	}

	value = tape.data[address]
	return
}

// Write replaces the word at address.
func (tape *Tape) Write(address int64, value int64) (err error) {
	err = tape.check(address)
	if err != nil {
		return
	}

	tape.data[address] = value
	return
}

// Words returns a copy of the tape contents.
func (tape *Tape) Words() []int64 {
	if tape == nil {
		return nil
	}
	return slices.Clone(tape.data)
}

// String returns the tape as comma separated program text.
func (tape *Tape) String() string {
	words := tape.Words()
	text := make([]string, len(words))
	for n, word := range words {
		text[n] = strconv.FormatInt(word, 10)
	}
	return strings.Join(text, ",")
}
