package cpu

import (
	"io"
	"iter"
	"strconv"
	"strings"
)

// Link is a label reference to be patched into Codes[Index].
type Link struct {
	Index int
	Label string
}

// Opcode represents a source item with its location and generated words.
type Opcode struct {
	LineNo int
	Ip     int
	Words  []string
	Codes  []int64
	Links  []Link
}

// Program is a sequence of opcodes, in tape order.
type Program struct {
	Opcodes []Opcode
}

// Debug locates the opcode that generated the word at ip.
type Debug struct {
	*Opcode
	Index int
}

// ParseProgram parses comma separated program text. Whitespace around
// values, including line breaks, is ignored.
func ParseProgram(input io.Reader) (prog *Program, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return
	}

	text := strings.TrimSpace(string(data))
	if len(text) == 0 {
		err = ErrProgramEmpty
		return
	}

	prog = &Program{}
	lineno := 1
	for n, item := range strings.Split(text, ",") {
		// Line of the value, not of any leading line breaks.
		leading := item[:len(item)-len(strings.TrimLeft(item, " \t\r\n"))]
		lineno += strings.Count(leading, "\n")

		word := strings.TrimSpace(item)
		var value int64
		value, err = strconv.ParseInt(word, 10, 64)
		if err != nil {
			prog = nil
			err = ErrProgramSyntax{Index: n, Text: word}
			return
		}

		prog.Opcodes = append(prog.Opcodes, Opcode{
			LineNo: lineno,
			Ip:     n,
			Words:  []string{word},
			Codes:  []int64{value},
		})

		lineno += strings.Count(item[len(leading):], "\n")
	}

	return
}

// Debug returns the opcode covering ip, or a zero Debug if there is none.
func (prog *Program) Debug(ip int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if ip >= op.Ip && ip < op.Ip+len(op.Codes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  ip - op.Ip,
			}
			break
		}
	}

	return
}

// Binary returns the initial tape contents.
func (prog *Program) Binary() (words []int64) {
	for _, code := range prog.Codes() {
		words = append(words, code)
	}

	return
}

// Codes iterates over the program's words by address.
func (prog *Program) Codes() iter.Seq2[int, int64] {
	return func(yield func(ip int, code int64) bool) {
		for _, op := range prog.Opcodes {
			for n, code := range op.Codes {
				if !yield(op.Ip+n, code) {
					return
				}
			}
		}
	}
}

// String returns the program as comma separated text.
func (prog *Program) String() string {
	return NewTape(prog.Binary()).String()
}
