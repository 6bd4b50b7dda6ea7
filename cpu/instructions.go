// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import (
	"fmt"
	"strings"
)

// An opsym is an internal symbol used to associate an opcode's data
// with its instructions.
type opsym byte

const (
	symBRK opsym = iota
	symCLC
	symCLD
	symCLI
	symCLV
	symDEC
	symDEX
	symDEY
	symINC
	symINX
	symINY
	symLDA
	symLDX
	symLDY
	symNOP
	symPHA
	symPHP
	symPLA
	symPLP
	symSEC
	symSED
	symSEI
	symSTA
	symSTX
	symSTY
	symTAX
	symTAY
	symTSX
	symTXA
	symTXS
	symTYA
)

type instfunc func(c *CPU, inst *Instruction)

// Emulator implementation for each opcode
type opcodeImpl struct {
	sym  opsym
	name string
	fn   instfunc
}

var impl = []opcodeImpl{
	{symBRK, "BRK", (*CPU).brk},
	{symCLC, "CLC", (*CPU).clc},
	{symCLD, "CLD", (*CPU).cld},
	{symCLI, "CLI", (*CPU).cli},
	{symCLV, "CLV", (*CPU).clv},
	{symDEC, "DEC", (*CPU).dec},
	{symDEX, "DEX", (*CPU).dex},
	{symDEY, "DEY", (*CPU).dey},
	{symINC, "INC", (*CPU).inc},
	{symINX, "INX", (*CPU).inx},
	{symINY, "INY", (*CPU).iny},
	{symLDA, "LDA", (*CPU).lda},
	{symLDX, "LDX", (*CPU).ldx},
	{symLDY, "LDY", (*CPU).ldy},
	{symNOP, "NOP", (*CPU).nop},
	{symPHA, "PHA", (*CPU).pha},
	{symPHP, "PHP", (*CPU).php},
	{symPLA, "PLA", (*CPU).pla},
	{symPLP, "PLP", (*CPU).plp},
	{symSEC, "SEC", (*CPU).sec},
	{symSED, "SED", (*CPU).sed},
	{symSEI, "SEI", (*CPU).sei},
	{symSTA, "STA", (*CPU).sta},
	{symSTX, "STX", (*CPU).stx},
	{symSTY, "STY", (*CPU).sty},
	{symTAX, "TAX", (*CPU).tax},
	{symTAY, "TAY", (*CPU).tay},
	{symTSX, "TSX", (*CPU).tsx},
	{symTXA, "TXA", (*CPU).txa},
	{symTXS, "TXS", (*CPU).txs},
	{symTYA, "TYA", (*CPU).tya},
}

// Opcode data for an (opcode, mode) pair
type opcodeData struct {
	sym    opsym // internal opcode key value
	mode   Mode  // addressing mode
	opcode byte  // opcode hex value
	length byte  // length of opcode + operand in bytes
	cycles byte  // number of CPU cycles to execute the instruction
}

// All valid (opcode, mode) pairs
var data = []opcodeData{
	{symLDA, IMM, 0xa9, 2, 2},
	{symLDA, ZPG, 0xa5, 2, 3},
	{symLDA, ZPX, 0xb5, 2, 4},
	{symLDA, ABS, 0xad, 3, 4},
	{symLDA, ABX, 0xbd, 3, 4},
	{symLDA, ABY, 0xb9, 3, 4},
	{symLDA, IDX, 0xa1, 2, 6},
	{symLDA, IDY, 0xb1, 2, 5},

	{symLDX, IMM, 0xa2, 2, 2},
	{symLDX, ZPG, 0xa6, 2, 3},
	{symLDX, ZPY, 0xb6, 2, 4},
	{symLDX, ABS, 0xae, 3, 4},
	{symLDX, ABY, 0xbe, 3, 4},

	{symLDY, IMM, 0xa0, 2, 2},
	{symLDY, ZPG, 0xa4, 2, 3},
	{symLDY, ZPX, 0xb4, 2, 4},
	{symLDY, ABS, 0xac, 3, 4},
	{symLDY, ABX, 0xbc, 3, 4},

	{symSTA, ZPG, 0x85, 2, 3},
	{symSTA, ZPX, 0x95, 2, 4},
	{symSTA, ABS, 0x8d, 3, 4},
	{symSTA, ABX, 0x9d, 3, 5},
	{symSTA, ABY, 0x99, 3, 5},
	{symSTA, IDX, 0x81, 2, 6},
	{symSTA, IDY, 0x91, 2, 6},

	{symSTX, ZPG, 0x86, 2, 3},
	{symSTX, ZPY, 0x96, 2, 4},
	{symSTX, ABS, 0x8e, 3, 4},

	{symSTY, ZPG, 0x84, 2, 3},
	{symSTY, ZPX, 0x94, 2, 4},
	{symSTY, ABS, 0x8c, 3, 4},

	{symINC, ZPG, 0xe6, 2, 5},
	{symINC, ZPX, 0xf6, 2, 6},
	{symINC, ABS, 0xee, 3, 6},
	{symINC, ABX, 0xfe, 3, 7},

	{symDEC, ZPG, 0xc6, 2, 5},
	{symDEC, ZPX, 0xd6, 2, 6},
	{symDEC, ABS, 0xce, 3, 6},
	{symDEC, ABX, 0xde, 3, 7},

	{symTAX, IMP, 0xaa, 1, 2},
	{symTAY, IMP, 0xa8, 1, 2},
	{symTXA, IMP, 0x8a, 1, 2},
	{symTYA, IMP, 0x98, 1, 2},
	{symTSX, IMP, 0xba, 1, 2},
	{symTXS, IMP, 0x9a, 1, 2},

	{symINX, IMP, 0xe8, 1, 2},
	{symINY, IMP, 0xc8, 1, 2},
	{symDEX, IMP, 0xca, 1, 2},
	{symDEY, IMP, 0x88, 1, 2},

	{symPHA, IMP, 0x48, 1, 3},
	{symPHP, IMP, 0x08, 1, 3},
	{symPLA, IMP, 0x68, 1, 4},
	{symPLP, IMP, 0x28, 1, 4},

	{symCLC, IMP, 0x18, 1, 2},
	{symSEC, IMP, 0x38, 1, 2},
	{symCLI, IMP, 0x58, 1, 2},
	{symSEI, IMP, 0x78, 1, 2},
	{symCLD, IMP, 0xd8, 1, 2},
	{symSED, IMP, 0xf8, 1, 2},
	{symCLV, IMP, 0xb8, 1, 2},

	{symNOP, IMP, 0xea, 1, 2},
	{symBRK, IMP, 0x00, 1, 7},
}

// An Instruction describes a CPU instruction, including its name,
// its addressing mode, its opcode value, its operand size, and its CPU cycle
// cost.
type Instruction struct {
	Name   string   // all-caps name of the instruction
	Mode   Mode     // addressing mode
	Opcode byte     // hexadecimal opcode value
	Length byte     // combined size of opcode and operand, in bytes
	Cycles byte     // number of CPU cycles to execute the instruction
	fn     instfunc // emulator implementation of the function
}

// Implemented returns true if the emulator has an implementation for the
// instruction's opcode.
func (inst *Instruction) Implemented() bool {
	return inst.fn != nil
}

// An InstructionSet defines the set of all possible instructions that
// can run on the emulated CPU.
type InstructionSet struct {
	instructions [256]Instruction          // all instructions by opcode
	variants     map[string][]*Instruction // variants of each instruction
}

// Lookup retrieves a CPU instruction corresponding to the requested opcode.
func (s *InstructionSet) Lookup(opcode byte) *Instruction {
	return &s.instructions[opcode]
}

// GetInstructions returns all CPU instructions whose name matches the
// provided string.
func (s *InstructionSet) GetInstructions(name string) []*Instruction {
	return s.variants[strings.ToUpper(name)]
}

// Create the instruction set. Opcodes without data are filled with
// one-byte placeholders that have no implementation.
func newInstructionSet() *InstructionSet {
	set := &InstructionSet{
		variants: make(map[string][]*Instruction),
	}

	for i := range set.instructions {
		set.instructions[i] = Instruction{
			Name:   "???",
			Mode:   IMP,
			Opcode: byte(i),
			Length: 1,
		}
	}

	// Create a map from symbol to implementation for fast lookups.
	symToImpl := make(map[opsym]*opcodeImpl, len(impl))
	for i := range impl {
		symToImpl[impl[i].sym] = &impl[i]
	}

	for _, d := range data {
		if int(d.length) != 1+d.mode.OperandLength() {
			panic(fmt.Sprintf("opcode $%02X: length %d does not match mode %v", d.opcode, d.length, d.mode))
		}

		impl := symToImpl[d.sym]
		inst := &set.instructions[d.opcode]
		inst.Name = impl.name
		inst.Mode = d.mode
		inst.Length = d.length
		inst.Cycles = d.cycles
		inst.fn = impl.fn

		set.variants[inst.Name] = append(set.variants[inst.Name], inst)
	}

	return set
}

// The instruction set is built once and only read afterwards, so it may
// be shared by any number of CPUs.
var instructionSet = newInstructionSet()

// GetInstructionSet returns the instruction set used by the emulated CPU.
func GetInstructionSet() *InstructionSet {
	return instructionSet
}
