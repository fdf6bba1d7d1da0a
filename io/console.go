package io

import (
	"bufio"
	"io"
	"strings"
)

// Console provides line oriented I/O over a byte stream.
// It wraps an io.Reader for input and io.Writer for output.
type Console struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
	reader  io.Reader
}

var _ Source = (*Console)(nil)
var _ Sink = (*Console)(nil)

// Rewind drops any buffered input, so the next read starts from the
// current position of Input.
func (con *Console) Rewind() {
	con.scanner = nil
	con.reader = nil
}

// ReadLine reads the next line from Input, with any trailing carriage
// return removed.
func (con *Console) ReadLine() (line string, err error) {
	if con.Input == nil {
		err = ErrEndOfInput
		return
	}

	// Input was swapped out from under us.
	if con.scanner == nil || con.reader != con.Input {
		con.scanner = bufio.NewScanner(con.Input)
		con.reader = con.Input
	}

	if !con.scanner.Scan() {
		err = con.scanner.Err()
		if err == nil {
			err = ErrEndOfInput
		}
		return
	}

	line = strings.TrimSuffix(con.scanner.Text(), "\r")
	return
}

// WriteLine writes line to Output, followed by a newline.
func (con *Console) WriteLine(line string) (err error) {
	if con.Output == nil {
		err = ErrNoOutput
		return
	}

	_, err = io.WriteString(con.Output, line+"\n")
	return
}
