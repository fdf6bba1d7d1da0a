package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/ezrec/intcode/cpu"
)

// loadProgram reads comma separated program text, or assembles an
// assembly listing when compile is set.
func loadProgram(fs afero.Fs, path string, compile bool) (prog *cpu.Program, err error) {
	inf, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open program")
	}
	defer inf.Close()

	if compile {
		asm := &cpu.Assembler{}
		prog, err = asm.Parse(inf)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to assemble %s", path)
		}
		return
	}

	prog, err = cpu.ParseProgram(inf)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	return
}

// patch is an ADDR=VALUE tape assignment.
type patch struct {
	Address int64
	Value   int64
}

func parsePatch(text string) (p patch, err error) {
	addr, value, ok := strings.Cut(text, "=")
	if !ok {
		return p, errors.Errorf("invalid patch %q, expected ADDR=VALUE", text)
	}

	p.Address, err = strconv.ParseInt(strings.TrimSpace(addr), 10, 64)
	if err != nil {
		return p, errors.Wrapf(err, "invalid patch address %q", addr)
	}

	p.Value, err = strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return p, errors.Wrapf(err, "invalid patch value %q", value)
	}

	return
}
