// Package cpu implements the Intcode machine and its assembler.
//
// The machine executes a program held on a fixed length Tape of signed
// integers. Each instruction word packs an operation in its low two decimal
// digits and one addressing mode digit per parameter above them. The Cpu
// fetches, decodes, resolves operands, executes, writes back, and advances
// its instruction pointer until a halt instruction or the first fault.
//
// The assembler provides a small assembly language for the instruction set,
// supporting macros, labels, equates, and compile-time expression evaluation.
package cpu
