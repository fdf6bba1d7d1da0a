// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ezrec/intcode/emulator"
	"github.com/ezrec/intcode/translate"
)

func setupLogger(verbose bool, w io.Writer) *zap.Logger {
	al := zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		al.SetLevel(zap.DebugLevel)
	}
	ec := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(w)), al)
	return zap.New(core)
}

// console is the process's standard streams.
type console struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func run(args []string, fs afero.Fs, std console) (err error) {
	var program string
	var compile string
	var input string
	var output string
	var sets []string
	var search int64
	var dump bool
	var verbose bool

	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(std.Stderr)
	flags.StringVarP(&program, "program", "p", "", "Comma separated program file")
	flags.StringVarP(&compile, "compile", "c", "", "Assembly file to compile and run")
	flags.StringVarP(&input, "input", "i", "-", "Input lines, one per Input instruction")
	flags.StringVarP(&output, "output", "o", "-", "Output lines, one per Output instruction")
	flags.StringArrayVar(&sets, "set", nil, "Patch the tape before running, as ADDR=VALUE (repeatable)")
	flags.Int64Var(&search, "search", -1, "Search for the noun and verb that produce this value at address 0")
	flags.BoolVar(&dump, "dump", false, "Print the final tape")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log every executed instruction")
	err = flags.Parse(args[1:])
	if err != nil {
		return
	}

	logger := setupLogger(verbose, std.Stderr)
	defer func() { _ = logger.Sync() }()

	if flags.NArg() != 0 {
		return errors.Errorf("unknown arguments: %v", flags.Args())
	}

	if (len(program) == 0) == (len(compile) == 0) {
		return errors.New("exactly one of --program or --compile is required")
	}

	path := program
	if len(compile) != 0 {
		path = compile
	}
	prog, err := loadProgram(fs, path, len(compile) != 0)
	if err != nil {
		return
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	emu.SetLogger(logger)

	if search >= 0 {
		noun, verb, err := emu.Search(search, emulator.SEARCH_LIMIT)
		if err != nil {
			return err
		}
		return translate.Fprintln(std.Stdout, "noun %d verb %d answer %d", noun, verb, 100*noun+verb)
	}

	if input == "-" {
		emu.Console.Input = std.Stdin
	} else {
		inf, err := fs.Open(input)
		if err != nil {
			return errors.Wrap(err, "failed to open input")
		}
		defer inf.Close()
		emu.Console.Input = inf
	}

	if output == "-" {
		emu.Console.Output = std.Stdout
	} else {
		var ouf afero.File
		ouf, err = fs.Create(output)
		if err != nil {
			return errors.Wrap(err, "failed to create output")
		}
		defer func() {
			cerr := ouf.Close()
			if err == nil && cerr != nil {
				err = errors.Wrap(cerr, "failed to close output")
			}
		}()
		emu.Console.Output = ouf
	}

	err = emu.Reset()
	if err != nil {
		return
	}

	for _, set := range sets {
		var p patch
		p, err = parsePatch(set)
		if err != nil {
			return
		}
		err = emu.Patch(p.Address, p.Value)
		if err != nil {
			return errors.Wrapf(err, "failed to patch %s", set)
		}
	}

	err = emu.Run()
	if dump {
		fmt.Fprintln(std.Stdout, emu.Cpu.Tape.String())
	}
	if err != nil {
		return
	}

	logger.Debug("halted", zap.Int("ticks", emu.Ticks()))

	return
}

func main() {
	std := console{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
	err := run(os.Args, afero.NewOsFs(), std)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", os.Args[0], err)
		os.Exit(1)
	}
}
