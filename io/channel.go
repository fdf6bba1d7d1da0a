// Package io provides the line oriented input sources and output sinks
// that feed the Intcode machine's Input and Output instructions.
package io

// Source supplies one line of text per Input instruction.
type Source interface {
	// ReadLine returns the next line without its terminator.
	ReadLine() (line string, err error)
}

// Sink receives one line of text per Output instruction.
type Sink interface {
	// WriteLine writes a single line; the terminator is added by the sink.
	WriteLine(line string) error
}
