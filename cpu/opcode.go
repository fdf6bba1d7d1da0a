package cpu

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"strings"
)

//go:generate go tool stringer -linecomment -type=OpType

// OpType is the operation selected by the low two digits of a word.
type OpType int

const (
	OP_ADD      = OpType(1)  // add
	OP_MULTIPLY = OpType(2)  // mul
	OP_INPUT    = OpType(3)  // in
	OP_OUTPUT   = OpType(4)  // out
	OP_HALT     = OpType(99) // halt
)

// Layout is the fixed parameter layout of an operation.
type Layout struct {
	Read  int  // Number of read parameters.
	Write bool // If set, a write parameter follows the read parameters.
}

// Params returns the total number of parameters.
func (layout Layout) Params() int {
	if layout.Write {
		return layout.Read + 1
	}
	return layout.Read
}

// Layout returns the parameter layout, or ok == false for an unknown OpType.
func (op OpType) Layout() (layout Layout, ok bool) {
	switch op {
	case OP_ADD, OP_MULTIPLY:
		return Layout{Read: 2, Write: true}, true
	case OP_INPUT:
		return Layout{Read: 0, Write: true}, true
	case OP_OUTPUT:
		return Layout{Read: 1}, true
	case OP_HALT:
		return Layout{}, true
	}
	return
}

//go:generate go tool stringer -linecomment -type=Mode

// Mode is a parameter addressing mode.
type Mode int

const (
	MODE_POSITION  = Mode(0) // position
	MODE_IMMEDIATE = Mode(1) // immediate
)

// Opcode and mode equates, available to the assembler.
var _opcode_defines = map[string]string{
	"OP_ADD":         fmt.Sprintf("%d", OP_ADD),
	"OP_MULTIPLY":    fmt.Sprintf("%d", OP_MULTIPLY),
	"OP_INPUT":       fmt.Sprintf("%d", OP_INPUT),
	"OP_OUTPUT":      fmt.Sprintf("%d", OP_OUTPUT),
	"OP_HALT":        fmt.Sprintf("%d", OP_HALT),
	"MODE_POSITION":  fmt.Sprintf("%d", MODE_POSITION),
	"MODE_IMMEDIATE": fmt.Sprintf("%d", MODE_IMMEDIATE),
}

// Defines returns an iterator over the opcode and mode equates.
func Defines() iter.Seq2[string, string] {
	return maps.All(_opcode_defines)
}

const (
	DIGIT_BASE  = 10  // Instruction words are decimal.
	OPCODE_BASE = 100 // Two low digits select the operation.
)

// Instruction is a decoded instruction word.
type Instruction struct {
	Op    OpType
	Modes []Mode // Read parameter modes, in parameter order.
}

// Layout returns the parameter layout of the instruction's operation.
func (inst Instruction) Layout() Layout {
	layout, _ := inst.Op.Layout()
	return layout
}

// Length returns the number of tape words the instruction occupies.
func (inst Instruction) Length() int64 {
	return int64(inst.Layout().Params() + 1)
}

// Encode packs the instruction back into a word with the fewest mode digits.
func (inst Instruction) Encode() (word int64) {
	scale := int64(OPCODE_BASE)
	for _, mode := range inst.Modes {
		word += int64(mode) * scale
		scale *= DIGIT_BASE
	}
	word += int64(inst.Op)
	return
}

// Decode parses an instruction word.
//
// Mode digits are read low to high. Omitted high order digits are Position.
// A write parameter is always Position, and is not part of the returned
// modes.
func Decode(word int64) (inst Instruction, err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrDecode, err)
		}
	}()

	if word < 0 {
		err = ErrUnknownOpcode
		return
	}

	inst.Op = OpType(word % OPCODE_BASE)
	layout, ok := inst.Op.Layout()
	if !ok {
		err = ErrUnknownOpcode
		return
	}

	var modes []Mode
	for rest, n := word/OPCODE_BASE, 0; rest > 0; rest, n = rest/DIGIT_BASE, n+1 {
		mode := Mode(rest % DIGIT_BASE)
		if mode != MODE_POSITION && mode != MODE_IMMEDIATE {
			err = errors.Join(ErrInvalidMode, ErrParam(n))
			return
		}
		modes = append(modes, mode)
	}

	params := layout.Params()
	if len(modes) > params {
		err = ErrParameterCount
		return
	}

	for len(modes) < params {
		modes = append(modes, MODE_POSITION)
	}

	if layout.Write && modes[params-1] == MODE_IMMEDIATE {
		err = errors.Join(ErrWriteMode, ErrParam(params-1))
		return
	}

	inst.Modes = modes[:layout.Read]

	return
}

// Format renders the instruction with its raw operands,
// Position operands as [n] and Immediate operands as #n.
func (inst Instruction) Format(operands []int64) string {
	words := []string{inst.Op.String()}
	layout := inst.Layout()
	for n, operand := range operands {
		if n >= layout.Params() {
			break
		}
		mode := MODE_POSITION
		if n < len(inst.Modes) {
			mode = inst.Modes[n]
		}
		switch mode {
		case MODE_IMMEDIATE:
			words = append(words, fmt.Sprintf("#%d", operand))
		default:
			words = append(words, fmt.Sprintf("[%d]", operand))
		}
	}
	return strings.Join(words, " ")
}

// String renders the instruction without operands.
func (inst Instruction) String() string {
	return inst.Format(nil)
}

// Disassemble renders the instruction at ip, and returns its length.
func Disassemble(tape *Tape, ip int64) (text string, length int64, err error) {
	word, err := tape.Read(ip)
	if err != nil {
		return
	}

	inst, err := Decode(word)
	if err != nil {
		return
	}

	length = inst.Length()
	operands := make([]int64, 0, length-1)
	for n := range length - 1 {
		var operand int64
		operand, err = tape.Read(ip + 1 + n)
		if err != nil {
			return
		}
		operands = append(operands, operand)
	}

	text = inst.Format(operands)
	return
}
