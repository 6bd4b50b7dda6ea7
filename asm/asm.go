// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asm implements a line assembler for the instructions supported
// by the emulated CPU. Each call assembles one instruction written in
// standard 6502 syntax, such as "LDA ($20),Y", into machine code.
package asm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nesguin/emu6502/cpu"
)

// Errors
var (
	ErrInvalidOpcode  = errors.New("invalid opcode")
	ErrOperandFormat  = errors.New("unknown addressing mode format")
	ErrInvalidMode    = errors.New("invalid addressing mode for opcode")
	ErrOperandRange   = errors.New("operand out of range")
	errEmptyOperation = errors.New("no instruction")
)

// An Evaluator computes the value of an operand expression.
type Evaluator func(expr string) (int64, error)

type operand struct {
	modeGuess cpu.Mode // addressing mode guessed from the operand format
	expr      string   // operand expression
	value     int64    // evaluated expression
}

// Return the number of bytes needed to encode the operand value.
func (o *operand) size() int {
	switch {
	case o.modeGuess == cpu.IMP:
		return 0
	case o.value >= -0x80 && o.value <= 0xff:
		return 1
	default:
		return 2
	}
}

// Immediate and indirect operands are always encoded in a single byte.
func (o *operand) byteOnly() bool {
	return o.modeGuess == cpu.IMM || o.modeGuess == cpu.IDX || o.modeGuess == cpu.IDY
}

// AssembleLine assembles a single instruction and returns its machine
// code. Operand expressions are evaluated with eval. When an operand fits
// in one byte, the zero page form of the instruction is preferred.
func AssembleLine(line string, eval Evaluator) ([]byte, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, errEmptyOperation
	}

	mnemonic, rest := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		mnemonic, rest = line[:i], line[i+1:]
	}
	instructions := cpu.GetInstructionSet().GetInstructions(mnemonic)
	if instructions == nil {
		return nil, fmt.Errorf("%w '%s'", ErrInvalidOpcode, mnemonic)
	}

	o, err := parseOperand(strings.TrimSpace(rest))
	if err != nil {
		return nil, err
	}
	if o.modeGuess != cpu.IMP {
		if o.value, err = eval(o.expr); err != nil {
			return nil, err
		}
		if o.value < -0x8000 || o.value > 0xffff {
			return nil, fmt.Errorf("%w: $%X", ErrOperandRange, o.value)
		}
		if o.size() == 2 && o.byteOnly() {
			return nil, fmt.Errorf("%w: $%X does not fit in a byte", ErrOperandRange, o.value)
		}
	}

	inst := findMatchingInstruction(instructions, &o)
	if inst == nil {
		return nil, fmt.Errorf("%w '%s'", ErrInvalidMode, strings.ToUpper(mnemonic))
	}

	code := make([]byte, inst.Length)
	code[0] = inst.Opcode
	switch inst.Length {
	case 2:
		code[1] = byte(o.value)
	case 3:
		code[1] = byte(o.value)
		code[2] = byte(o.value >> 8)
	}
	return code, nil
}

// Parse the operand following an opcode and guess its addressing mode.
// Zero page and absolute forms are both guessed as absolute until the
// operand's size is known.
func parseOperand(s string) (o operand, err error) {
	upper := strings.ToUpper(s)
	switch {
	case s == "":
		o.modeGuess = cpu.IMP

	case s[0] == '#':
		o.modeGuess, o.expr = cpu.IMM, s[1:]

	case s[0] == '(' && strings.HasSuffix(upper, ",X)"):
		o.modeGuess, o.expr = cpu.IDX, s[1:len(s)-3]

	case s[0] == '(' && strings.HasSuffix(upper, "),Y"):
		o.modeGuess, o.expr = cpu.IDY, s[1:len(s)-3]

	case strings.HasSuffix(upper, ",X"):
		o.modeGuess, o.expr = cpu.ABX, s[:len(s)-2]

	case strings.HasSuffix(upper, ",Y"):
		o.modeGuess, o.expr = cpu.ABY, s[:len(s)-2]

	case strings.Contains(s, ","):
		return o, fmt.Errorf("%w '%s'", ErrOperandFormat, s)

	default:
		o.modeGuess, o.expr = cpu.ABS, s
	}

	o.expr = strings.TrimSpace(o.expr)
	if o.modeGuess != cpu.IMP && o.expr == "" {
		return o, fmt.Errorf("%w '%s'", ErrOperandFormat, s)
	}
	return o, nil
}

// Given the instruction variants of an opcode and operand data, select
// the best instruction match. Prefer the instruction with the shortest
// total length.
func findMatchingInstruction(instructions []*cpu.Instruction, o *operand) *cpu.Instruction {
	bestqual := 3
	var found *cpu.Instruction
	for _, inst := range instructions {
		match, qual := false, 0
		switch {
		case inst.Mode == cpu.IMP:
			match, qual = o.modeGuess == cpu.IMP, 0
		case o.size() == 0:
			match = false
		case inst.Mode == cpu.IMM:
			match, qual = (o.modeGuess == cpu.IMM) && (o.size() == 1), 1
		case inst.Mode == cpu.ZPG:
			match, qual = (o.modeGuess == cpu.ABS) && (o.size() == 1), 1
		case inst.Mode == cpu.ZPX:
			match, qual = (o.modeGuess == cpu.ABX) && (o.size() == 1), 1
		case inst.Mode == cpu.ZPY:
			match, qual = (o.modeGuess == cpu.ABY) && (o.size() == 1), 1
		case inst.Mode == cpu.ABS:
			match, qual = o.modeGuess == cpu.ABS, 2
		case inst.Mode == cpu.ABX:
			match, qual = o.modeGuess == cpu.ABX, 2
		case inst.Mode == cpu.ABY:
			match, qual = o.modeGuess == cpu.ABY, 2
		case inst.Mode == cpu.IDX:
			match, qual = (o.modeGuess == cpu.IDX) && (o.size() == 1), 1
		case inst.Mode == cpu.IDY:
			match, qual = (o.modeGuess == cpu.IDY) && (o.size() == 1), 1
		}
		if match && qual < bestqual {
			bestqual, found = qual, inst
		}
	}
	return found
}
