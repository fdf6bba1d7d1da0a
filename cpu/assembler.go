// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
	"go.uber.org/zap"

	"github.com/ezrec/intcode/internal"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass macro assembler for Intcode.
type Assembler struct {
	Verbose bool        // If set, verbosely logs the assembler actions.
	Log     *zap.Logger // Logger for verbose output.
	Opcode  []Opcode    // List of generated opcodes.

	predefine map[string]string   // Predefines
	expansion int                 // Count of macro expansions, for local labels.
	Label     map[string]int      // Map of labels to tape addresses.
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

func (asm *Assembler) log() *zap.Logger {
	if asm.Log == nil {
		return zap.NewNop()
	}
	return asm.Log
}

// mnemonicMap maps assembler mnemonics to operations.
var mnemonicMap = map[string]OpType{
	"add":  OP_ADD,
	"mul":  OP_MULTIPLY,
	"in":   OP_INPUT,
	"out":  OP_OUTPUT,
	"halt": OP_HALT,
}

var labelRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value64 int64
		value64, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt64(value64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// parseLine expands a single line into words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next, bare, immediate (#) or bracketed ([]).
		prefix, suffix := "", ""
		switch {
		case strings.HasPrefix(word, "#"):
			prefix = "#"
		case strings.HasPrefix(word, "[") && strings.HasSuffix(word, "]"):
			prefix, suffix = "[", "]"
		}
		word = word[len(prefix) : len(word)-len(suffix)]
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = prefix + equate + suffix
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		if !labelRe.MatchString(label) {
			err = ErrParseValue(label)
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.currentIp()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = args[n]
		}
		defer func() { asm.Equate = old_equate }()

		// Local labels are unique to each expansion.
		asm.expansion++
		local := fmt.Sprintf("%v_%v_", name, asm.expansion)

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			line = strings.ReplaceAll(line, "@", local)
			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}

			err = asm.parseWords(words, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// currentIp gets the tape address of the next generated word.
func (asm *Assembler) currentIp() int {
	if len(asm.Opcode) == 0 {
		return 0
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Ip + len(last.Codes)
}

// operand decodes an operand word. Position operands are a bare value or
// label, or a bracketed one ([n]); immediate operands are prefixed with '#'.
func (asm *Assembler) operand(word string) (mode Mode, value int64, label string, err error) {
	switch {
	case strings.HasPrefix(word, "#"):
		mode = MODE_IMMEDIATE
		word = word[1:]
	case strings.HasPrefix(word, "[") && strings.HasSuffix(word, "]"):
		word = word[1 : len(word)-1]
	}

	if len(word) == 0 {
		err = ErrParseValue(word)
		return
	}

	value, err = asm.valueOf(word)
	if err == nil {
		return
	}

	if labelRe.MatchString(word) {
		err = nil
		label = word
		return
	}

	err = ErrParseValue(word)
	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var codes []int64
	var links []Link

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words

	defer func() {
		if len(codes) == 0 {
			return
		}
		opcode := Opcode{LineNo: lineno, Ip: asm.currentIp(), Words: initial_words, Codes: codes, Links: links}
		if asm.Verbose {
			asm.log().Debug("assemble",
				zap.Int("line", lineno),
				zap.Int("ip", opcode.Ip),
				zap.Int64s("codes", codes))
		}
		asm.Opcode = append(asm.Opcode, opcode)
	}()

	// .data WORD...
	if words[0] == ".data" {
		if len(words) < 2 {
			err = ErrOpcodeArgs
			return
		}
		for n, word := range words[1:] {
			var value int64
			var label string
			var mode Mode
			mode, value, label, err = asm.operand(word)
			if err != nil {
				codes = nil
				return
			}
			if mode == MODE_IMMEDIATE {
				codes = nil
				err = ErrParseValue(word)
				return
			}
			if len(label) != 0 {
				links = append(links, Link{Index: n, Label: label})
			}
			codes = append(codes, value)
		}
		return
	}

	op, ok := mnemonicMap[words[0]]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	layout, _ := op.Layout()
	args := words[1:]
	if len(args) != layout.Params() {
		err = ErrOpcodeArgs
		return
	}

	inst := Instruction{Op: op}
	operands := make([]int64, len(args))
	for n, arg := range args {
		var mode Mode
		var label string
		mode, operands[n], label, err = asm.operand(arg)
		if err != nil {
			return
		}
		if n >= layout.Read {
			if mode == MODE_IMMEDIATE {
				err = ErrTargetInvalid
				return
			}
		} else {
			inst.Modes = append(inst.Modes, mode)
		}
		if len(label) != 0 {
			links = append(links, Link{Index: 1 + n, Label: label})
		}
	}

	codes = append([]int64{inst.Encode()}, operands...)

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	asm.expansion = 0
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Equate = maps.Collect(internal.IterSeq2Concat(
		maps.All(sysEquate),
		Defines(),
		maps.All(asm.predefine),
	))

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			asm.log().Debug("line", zap.Int("line", lineno), zap.String("text", text))
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		words := strings.Fields(line)

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	// Final linking of labels.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		for _, link := range op.Links {
			ip, ok := asm.Label[link.Label]
			if !ok {
				lineno = op.LineNo
				line = strings.Join(op.Words, " ")
				err = ErrLabelMissing(link.Label)
				return
			}
			op.Codes[link.Index] += int64(ip)
		}
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}
