package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProgram(t *testing.T) {
	assert := assert.New(t)

	prog, err := ParseProgram(strings.NewReader("1,0,0,0,99\n"))
	assert.NoError(err)
	assert.Equal([]int64{1, 0, 0, 0, 99}, prog.Binary())
	assert.Equal("1,0,0,0,99", prog.String())
	assert.Len(prog.Opcodes, 5)

	prog, err = ParseProgram(strings.NewReader(" 1002, 4 ,3,\n4,-33 "))
	assert.NoError(err)
	assert.Equal([]int64{1002, 4, 3, 4, -33}, prog.Binary())
	assert.Equal(1, prog.Opcodes[2].LineNo)
	assert.Equal(2, prog.Opcodes[3].LineNo)
	assert.Equal([]string{"-33"}, prog.Opcodes[4].Words)
}

func TestParseProgram_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseProgram(strings.NewReader(" \n"))
	assert.ErrorIs(err, ErrProgramEmpty)

	table := [](struct {
		text  string
		index int
		word  string
	}){
		{"1,,2", 1, ""},
		{"1,2,x", 2, "x"},
		{"1,2,", 2, ""},
		{"0x10", 0, "0x10"},
		{"99999999999999999999", 0, "99999999999999999999"},
	}

	for _, entry := range table {
		prog, err := ParseProgram(strings.NewReader(entry.text))
		assert.Nil(prog, entry.text)
		var syntax ErrProgramSyntax
		assert.True(errors.As(err, &syntax), entry.text)
		assert.Equal(entry.index, syntax.Index, entry.text)
		assert.Equal(entry.word, syntax.Text, entry.text)
	}
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Ip: 0, Words: []string{"in", "9"}, Codes: []int64{3, 9}},
			{LineNo: 2, Ip: 2, Words: []string{"out", "9"}, Codes: []int64{4, 9}},
			{LineNo: 3, Ip: 4, Words: []string{"halt"}, Codes: []int64{99}},
		},
	}

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Opcode)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(3)
	assert.NotNil(dbg.Opcode)
	assert.Equal(2, dbg.LineNo)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(4)
	assert.Equal(3, dbg.LineNo)

	dbg = prog.Debug(10)
	assert.Nil(dbg.Opcode)
	assert.Equal(0, dbg.Index)

	assert.Equal([]int64{3, 9, 4, 9, 99}, prog.Binary())
}

func TestProgram_Codes_EarlyStop(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Ip: 0, Codes: []int64{1, 0, 0, 0}},
			{LineNo: 2, Ip: 4, Codes: []int64{99}},
		},
	}

	var ips []int
	for ip := range prog.Codes() {
		ips = append(ips, ip)
		if ip == 2 {
			break
		}
	}
	assert.Equal([]int{0, 1, 2}, ips)
}
