// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Mode describes a memory addressing mode.
type Mode byte

// All supported memory addressing modes
const (
	IMP Mode = iota // Implied (no operand)
	IMM             // Immediate
	ZPG             // Zero Page
	ZPX             // Zero Page,X
	ZPY             // Zero Page,Y
	ABS             // Absolute
	ABX             // Absolute,X
	ABY             // Absolute,Y
	IDX             // (Indirect,X)
	IDY             // (Indirect),Y
)

var modeNames = [...]string{
	IMP: "IMP",
	IMM: "IMM",
	ZPG: "ZPG",
	ZPX: "ZPX",
	ZPY: "ZPY",
	ABS: "ABS",
	ABX: "ABX",
	ABY: "ABY",
	IDX: "IDX",
	IDY: "IDY",
}

// Number of operand bytes consumed by each addressing mode.
var operandLength = [...]int{
	IMP: 0,
	IMM: 1,
	ZPG: 1,
	ZPX: 1,
	ZPY: 1,
	ABS: 2,
	ABX: 2,
	ABY: 2,
	IDX: 1,
	IDY: 1,
}

// String returns the three-letter name of the addressing mode.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "???"
}

// OperandLength returns the number of operand bytes that follow an opcode
// using this addressing mode.
func (m Mode) OperandLength() int {
	return operandLength[m]
}

// Resolve computes the effective address of an operand. The program
// counter 'pc' must point at the first operand byte. Resolve returns the
// effective address and the program counter advanced past the operand.
//
// For IMM the effective address is the operand byte itself. For IMP the
// effective address is pc and the counter does not move.
func Resolve(m *Memory, mode Mode, pc uint16, x, y byte) (addr, next uint16) {
	next = pc + uint16(operandLength[mode])

	switch mode {
	case IMP, IMM:
		addr = pc
	case ZPG:
		addr = uint16(m.LoadByte(pc))
	case ZPX:
		addr = offsetZeroPage(m.LoadByte(pc), x)
	case ZPY:
		addr = offsetZeroPage(m.LoadByte(pc), y)
	case ABS:
		addr = m.LoadWord(pc)
	case ABX:
		addr = offsetAddress(m.LoadWord(pc), x)
	case ABY:
		addr = offsetAddress(m.LoadWord(pc), y)
	case IDX:
		zp := m.LoadByte(pc) + x
		addr = m.LoadZeroPageWord(zp)
	case IDY:
		zp := m.LoadByte(pc)
		addr = offsetAddress(m.LoadZeroPageWord(zp), y)
	default:
		panic("invalid addressing mode")
	}

	return addr, next
}
