package cpu

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/ezrec/intcode/io"
)

func TestCpu_Run(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		program  []int64
		expected []int64
		ticks    int
	}){
		{"self_add", []int64{1, 0, 0, 0, 99}, []int64{2, 0, 0, 0, 99}, 2},
		{"multiply", []int64{2, 3, 0, 3, 99}, []int64{2, 3, 0, 6, 99}, 2},
		{"square", []int64{2, 4, 4, 5, 99, 0}, []int64{2, 4, 4, 5, 99, 9801}, 2},
		{"self_modify", []int64{1, 1, 1, 4, 99, 5, 6, 0, 99}, []int64{30, 1, 1, 4, 2, 5, 6, 0, 99}, 3},
		{"halt", []int64{99}, []int64{99}, 1},
		{"immediate", []int64{1002, 4, 3, 4, 33}, []int64{1002, 4, 3, 4, 99}, 2},
		{"negative", []int64{1101, 100, -1, 4, 0}, []int64{1101, 100, -1, 4, 99}, 2},
		{"halt_in_place", []int64{1, 8, 0, 4, 1, 0, 0, 0, 98}, []int64{1, 8, 0, 4, 99, 0, 0, 0, 98}, 2},
		{"dead_code", []int64{1, 2, 3, 3, 99, 2, 3, 2, 8}, []int64{1, 2, 3, 6, 99, 2, 3, 2, 8}, 2},
	}

	for _, entry := range table {
		cpu := NewCpu(entry.program)
		err := cpu.Run()
		assert.NoError(err, entry.name)
		assert.Equal(STATE_HALTED, cpu.State, entry.name)
		assert.Equal(entry.expected, cpu.Tape.Words(), entry.name)
		assert.Equal(entry.ticks, cpu.Ticks, entry.name)
	}
}

func TestCpu_InputOutput(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu([]int64{3, 0, 4, 0, 104, -3, 99})
	input := io.NewQueue("42")
	output := io.NewQueue()
	cpu.Input = input
	cpu.Output = output

	assert.NoError(cpu.Run())
	assert.Equal([]string{"42", "-3"}, output.Lines)
	assert.Equal(int64(42), cpu.Tape.Words()[0])
	assert.Equal(0, input.Len())
}

func TestCpu_Tick(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu([]int64{1, 0, 0, 0, 99})
	assert.Equal(STATE_RUNNING, cpu.State)
	assert.Equal(int64(0), cpu.Ip)

	assert.NoError(cpu.Tick())
	assert.Equal(int64(4), cpu.Ip)
	assert.Equal(STATE_RUNNING, cpu.State)

	assert.NoError(cpu.Tick())
	assert.Equal(int64(4), cpu.Ip)
	assert.Equal(STATE_HALTED, cpu.State)

	assert.ErrorIs(cpu.Tick(), ErrHalted)
	assert.NoError(cpu.Run())
	assert.Equal(2, cpu.Ticks)
}

func faultOf(t *testing.T, err error) (fault *ErrFault) {
	if !errors.As(err, &fault) {
		t.Fatalf("expected *ErrFault, got %v", err)
	}
	return
}

func TestCpu_Faults(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []int64
		ip      int64
		word    int64
		class   error
		kind    error
		tape    []int64
	}){
		{"resolve_past_end", []int64{1, 10, 0, 0, 99}, 0, 1, ErrResolve, ErrOutOfBounds,
			[]int64{1, 10, 0, 0, 99}},
		{"operand_past_end", []int64{1, 0}, 0, 1, ErrResolve, ErrOutOfBounds,
			[]int64{1, 0}},
		{"unknown_opcode", []int64{1, 0, 0, 0, 98}, 4, 98, ErrDecode, ErrUnknownOpcode,
			[]int64{2, 0, 0, 0, 98}},
		{"invalid_mode", []int64{201, 0, 0, 0, 99}, 0, 201, ErrDecode, ErrInvalidMode,
			[]int64{201, 0, 0, 0, 99}},
		{"parameter_count", []int64{199}, 0, 199, ErrDecode, ErrParameterCount,
			[]int64{199}},
		{"write_mode", []int64{11101, 1, 1, 0, 99}, 0, 11101, ErrDecode, ErrWriteMode,
			[]int64{11101, 1, 1, 0, 99}},
		{"write_at_length", []int64{1, 0, 0, 5, 99}, 0, 1, ErrWriteBack, ErrOutOfBounds,
			[]int64{1, 0, 0, 5, 99}},
		{"write_negative", []int64{1, 0, 0, -1, 99}, 0, 1, ErrWriteBack, ErrOutOfBounds,
			[]int64{1, 0, 0, -1, 99}},
		{"write_target_missing", []int64{1101, 1, 1}, 0, 1101, ErrWriteBack, ErrOutOfBounds,
			[]int64{1101, 1, 1}},
		{"run_off_end", []int64{1, 0, 0, 0}, 4, 0, ErrFetch, ErrOutOfBounds,
			[]int64{2, 0, 0, 0}},
		{"input_missing", []int64{3, 0, 99}, 0, 3, ErrExecute, ErrInputUnreadable,
			[]int64{3, 0, 99}},
	}

	for _, entry := range table {
		cpu := NewCpu(entry.program)
		err := cpu.Run()
		assert.Error(err, entry.name)
		assert.ErrorIs(err, entry.class, entry.name)
		assert.ErrorIs(err, entry.kind, entry.name)
		assert.Equal(STATE_FAULTED, cpu.State, entry.name)
		assert.Equal(err, cpu.Fault, entry.name)
		assert.Equal(entry.tape, cpu.Tape.Words(), entry.name)

		fault := faultOf(t, err)
		assert.Equal(entry.ip, fault.Ip, entry.name)
		assert.Equal(entry.word, fault.Word, entry.name)
		assert.Equal(entry.ip, cpu.Ip, entry.name)

		// Terminal.
		assert.ErrorIs(cpu.Tick(), ErrFaulted, entry.name)
		assert.Equal(err, cpu.Run(), entry.name)
	}
}

func TestCpu_FaultStopsOutput(t *testing.T) {
	assert := assert.New(t)

	// out 5, then a bad opcode, then an out that must never run.
	cpu := NewCpu([]int64{104, 5, 42, 104, 6, 99})
	output := io.NewQueue()
	cpu.Output = output

	err := cpu.Run()
	assert.ErrorIs(err, ErrUnknownOpcode)
	assert.Equal([]string{"5"}, output.Lines)
	assert.Equal(1, cpu.Ticks)
}

func TestCpu_InputUnreadable(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu([]int64{3, 0, 99})
	cpu.Input = io.NewQueue("seven")

	err := cpu.Run()
	assert.ErrorIs(err, ErrInputUnreadable)
	assert.Equal([]int64{3, 0, 99}, cpu.Tape.Words())
}

func TestCpu_Reset(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu([]int64{42})
	assert.Error(cpu.Run())

	cpu.Reset([]int64{1, 0, 0, 0, 99})
	assert.Equal(STATE_RUNNING, cpu.State)
	assert.Nil(cpu.Fault)
	assert.Equal(0, cpu.Ticks)
	assert.NoError(cpu.Run())
	assert.Equal([]int64{2, 0, 0, 0, 99}, cpu.Tape.Words())
}

func TestCpu_Verbose(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu([]int64{1002, 4, 3, 4, 33})
	cpu.Verbose = true
	cpu.Log = zaptest.NewLogger(t)

	assert.NoError(cpu.Run())
	assert.Contains(cpu.String(), "halted")
}

// Programs made only of add, multiply and halt always terminate.
func TestCpu_Terminates(t *testing.T) {
	assert := assert.New(t)

	rng := rand.New(rand.NewSource(2019))

	for range 500 {
		size := 1 + rng.Intn(40)
		program := make([]int64, size)
		for n := range program {
			switch rng.Intn(8) {
			case 0:
				program[n] = 99
			case 1, 2:
				program[n] = 1
			case 3, 4:
				program[n] = 2
			case 5:
				program[n] = 1101
			default:
				program[n] = int64(rng.Intn(size))
			}
		}

		cpu := NewCpu(program)
		err := cpu.Run()
		assert.NotEqual(STATE_RUNNING, cpu.State)
		if cpu.State == STATE_HALTED {
			assert.NoError(err)
		} else {
			assert.Error(err)
		}
		// Every tick moves the pointer forward by at least one word.
		assert.LessOrEqual(cpu.Ticks, size)
	}
}
