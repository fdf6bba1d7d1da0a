package cpu

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Cpu state errors
	ErrHalted  = errors.New(f("machine halted"))
	ErrFaulted = errors.New(f("machine faulted"))

	// Fault classes
	ErrFetch     = errors.New(f("fetch"))
	ErrDecode    = errors.New(f("decode"))
	ErrResolve   = errors.New(f("resolve"))
	ErrExecute   = errors.New(f("execute"))
	ErrWriteBack = errors.New(f("write back"))

	// Fault kinds
	ErrUnknownOpcode    = errors.New(f("unknown opcode"))
	ErrInvalidMode      = errors.New(f("invalid parameter mode"))
	ErrParameterCount   = errors.New(f("parameter count mismatch"))
	ErrWriteMode        = errors.New(f("write parameter in immediate mode"))
	ErrOutOfBounds      = errors.New(f("address out of bounds"))
	ErrInputUnreadable  = errors.New(f("input unreadable"))
	ErrOutputUnwritable = errors.New(f("output unwritable"))

	// Program errors
	ErrProgramEmpty = errors.New(f("program empty"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrMacroSyntax     = errors.New(f(".macro syntax"))
	ErrMacroNesting    = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate  = errors.New(f(".macro duplicated"))
	ErrMacroLonely     = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm = errors.New(f(".endm without .macro"))
	ErrOpcodeArgs      = errors.New(f("wrong number of arguments"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrTargetInvalid   = errors.New(f("target invalid"))
)

// ErrAddress is an out of bounds tape address.
type ErrAddress int64

func (ea ErrAddress) Error() string {
	return f("address %d out of bounds", int64(ea))
}

func (ea ErrAddress) Is(err error) bool {
	return err == ErrOutOfBounds
}

// ErrParam identifies the parameter an error applies to.
type ErrParam int

func (ep ErrParam) Error() string {
	return f("parameter %d", int(ep))
}

// ErrFault is the terminal error of a run, locating the failing instruction.
type ErrFault struct {
	Ip   int64
	Word int64
	Err  error
}

func (err *ErrFault) Error() string {
	return f("fault at ip %d (word %d) %v", err.Ip, err.Word, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

// ErrProgramSyntax is a malformed value in program text.
type ErrProgramSyntax struct {
	Index int
	Text  string
}

func (err ErrProgramSyntax) Error() string {
	return f("program value %d '%v' is not an integer", err.Index, err.Text)
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a value or label", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
