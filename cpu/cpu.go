package cpu

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

//go:generate go tool stringer -linecomment -type=State

// State is the execution state of a Cpu.
type State int

const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
	STATE_FAULTED = State(2) // faulted
)

// Cpu is the execution loop of the Intcode machine. It exclusively owns
// its Tape and instruction pointer.
type Cpu struct {
	Verbose bool        // Set to enable per-instruction debug logging.
	Log     *zap.Logger // Logger, if nil nothing is logged.

	Tape  *Tape // Program and data memory.
	Ip    int64 // Current instruction pointer.
	State State // Current execution state.
	Fault error // Terminal error, once State is STATE_FAULTED.

	Input  Source // Source for Input instructions.
	Output Sink   // Sink for Output instructions.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a running CPU with a tape holding a copy of words.
func NewCpu(words []int64) (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset(words)

	return
}

// Reset the CPU state.
// - Replaces the tape with a copy of words.
// - Sets the instruction pointer to 0.
// - Zeros the tick counter, and clears any fault.
func (cpu *Cpu) Reset(words []int64) {
	cpu.Tape = NewTape(words)
	cpu.Ip = 0
	cpu.State = STATE_RUNNING
	cpu.Fault = nil
	cpu.Ticks = 0
}

func (cpu *Cpu) log() *zap.Logger {
	if cpu.Log == nil {
		return zap.NewNop()
	}
	return cpu.Log
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() string {
	text, _, err := Disassemble(cpu.Tape, cpu.Ip)
	if err != nil {
		text = "?"
	}
	return fmt.Sprintf("%v ip=%d ticks=%d next=%v", cpu.State, cpu.Ip, cpu.Ticks, text)
}

// Tick executes a single instruction cycle.
//
// Any error faults the CPU, and is returned as an *ErrFault. Once halted or
// faulted, Tick returns ErrHalted or ErrFaulted without executing anything.
func (cpu *Cpu) Tick() (err error) {
	switch cpu.State {
	case STATE_HALTED:
		return ErrHalted
	case STATE_FAULTED:
		return ErrFaulted
	}

	ip := cpu.Ip
	var word int64

	defer func() {
		if err != nil {
			err = &ErrFault{Ip: ip, Word: word, Err: err}
			cpu.State = STATE_FAULTED
			cpu.Fault = err
			cpu.log().Error("fault", zap.Int64("ip", ip), zap.Error(err))
		}
	}()

	word, err = cpu.Tape.Read(ip)
	if err != nil {
		err = errors.Join(ErrFetch, err)
		return
	}

	inst, err := Decode(word)
	if err != nil {
		return
	}

	params, err := Resolve(inst.Modes, cpu.Tape, ip+1)
	if err != nil {
		return
	}

	if cpu.Verbose {
		text, _, _ := Disassemble(cpu.Tape, ip)
		cpu.log().Debug("exec",
			zap.Int64("ip", ip),
			zap.String("code", text),
			zap.Int64s("params", params))
	}

	result, err := Execute(inst.Op, params, cpu.Input, cpu.Output)
	if err != nil {
		return
	}

	switch result.Kind {
	case RESULT_HALT:
		cpu.Ticks++
		cpu.State = STATE_HALTED
		cpu.log().Debug("halt", zap.Int64("ip", ip), zap.Int("ticks", cpu.Ticks))
		return
	case RESULT_WRITE:
		var target int64
		target, err = cpu.Tape.Read(ip + 1 + int64(inst.Layout().Read))
		if err == nil {
			err = cpu.Tape.Write(target, result.Value)
		}
		if err != nil {
			err = errors.Join(ErrWriteBack, err)
			return
		}
		if cpu.Verbose {
			cpu.log().Debug("write", zap.Int64("address", target), zap.Int64("value", result.Value))
		}
	}

	cpu.Ticks++
	cpu.Ip = ip + inst.Length()

	return
}

// Run ticks until the CPU halts or faults. A halt returns nil.
func (cpu *Cpu) Run() (err error) {
	for cpu.State == STATE_RUNNING {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	if cpu.State == STATE_FAULTED {
		err = cpu.Fault
	}

	return
}
