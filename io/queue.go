package io

import (
	"iter"
	"slices"
)

// Queue is an in-memory FIFO of lines. It is both a Source and a Sink, so
// the output of one machine can be handed to the input of another.
type Queue struct {
	Lines []string
}

var _ Source = (*Queue)(nil)
var _ Sink = (*Queue)(nil)

// NewQueue creates a queue preloaded with lines.
func NewQueue(lines ...string) *Queue {
	return &Queue{Lines: slices.Clone(lines)}
}

// ReadLine removes and returns the oldest line.
func (q *Queue) ReadLine() (line string, err error) {
	if len(q.Lines) == 0 {
		err = ErrEndOfInput
		return
	}

	line = q.Lines[0]
	q.Lines = q.Lines[1:]
	return
}

// WriteLine appends a line.
func (q *Queue) WriteLine(line string) error {
	q.Lines = append(q.Lines, line)
	return nil
}

// Len returns the number of pending lines.
func (q *Queue) Len() int {
	return len(q.Lines)
}

// All iterates over the pending lines without consuming them.
func (q *Queue) All() iter.Seq[string] {
	return slices.Values(q.Lines)
}
