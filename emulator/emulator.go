// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"go.uber.org/zap"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/io"
)

const (
	NOUN_ADDRESS = 1   // Tape address patched with the noun.
	VERB_ADDRESS = 2   // Tape address patched with the verb.
	SEARCH_LIMIT = 100 // Default exclusive bound of nouns and verbs.
)

// Emulator state. CPU + program listing + console.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program listing.

	Console io.Console // Console for Input and Output instructions.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(nil),
		Program: &cpu.Program{},
	}

	return
}

// SetLogger sets the logger used for verbose output and faults.
func (emu *Emulator) SetLogger(log *zap.Logger) {
	emu.Cpu.Log = log
}

func (emu *Emulator) log() *zap.Logger {
	if emu.Cpu.Log == nil {
		return zap.NewNop()
	}
	return emu.Cpu.Log
}

// Reset loads the program onto a fresh tape, and attaches the console.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Reset(emu.Program.Binary())
	emu.Cpu.Verbose = emu.Verbose
	emu.Console.Rewind()
	emu.Cpu.Input = &emu.Console
	emu.Cpu.Output = &emu.Console

	if emu.Cpu.Tape.Len() == 0 {
		err = cpu.ErrProgramEmpty
		return
	}

	emu.log().Debug("reset", zap.Int64("words", emu.Cpu.Tape.Len()))

	return
}

// Patch writes value to the tape at address before (or between) ticks.
func (emu *Emulator) Patch(address, value int64) (err error) {
	err = emu.Cpu.Tape.Write(address, value)
	if err != nil {
		return
	}

	emu.log().Debug("patch", zap.Int64("address", address), zap.Int64("value", value))

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int64 {
	return emu.Cpu.Ip
}

// LineNo returns the source line number of the instruction at the
// instruction pointer, or 0 if it is unknown.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(int(emu.Cpu.Ip))
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if emu.Cpu.State == cpu.STATE_HALTED {
		done = true
		return
	}

	lineno := emu.LineNo()
	ip := emu.Cpu.Ip
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Ip: ip, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.State == cpu.STATE_HALTED

	return
}

// Run ticks the emulator until it halts or faults.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Search finds the first noun and verb, each in [0, limit), that leave
// target at address 0 once the program halts. Candidates that fault are
// skipped.
func (emu *Emulator) Search(target int64, limit int64) (noun, verb int64, err error) {
	words := emu.Program.Binary()

	for noun = range limit {
		for verb = range limit {
			machine := cpu.NewCpu(words)
			machine.Output = io.NewQueue()

			err = machine.Tape.Write(NOUN_ADDRESS, noun)
			if err == nil {
				err = machine.Tape.Write(VERB_ADDRESS, verb)
			}
			if err != nil {
				return
			}

			err = machine.Run()
			if err != nil {
				emu.log().Debug("search fault",
					zap.Int64("noun", noun),
					zap.Int64("verb", verb),
					zap.Error(err))
				continue
			}

			var value int64
			value, err = machine.Tape.Read(0)
			if err != nil {
				return
			}

			if value == target {
				emu.log().Debug("search found",
					zap.Int64("noun", noun),
					zap.Int64("verb", verb),
					zap.Int("ticks", machine.Ticks))
				return
			}
		}
	}

	noun, verb = 0, 0
	err = ErrSearchExhausted
	return
}
