// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm implements a disassembler for the instructions supported
// by the emulated CPU.
package disasm

import (
	"fmt"

	"github.com/nesguin/emu6502/cpu"
)

// Disassembler formatting for addressing modes
var modeFormat = [...]string{
	cpu.IMP: "%s",
	cpu.IMM: "#$%s",
	cpu.ZPG: "$%s",
	cpu.ZPX: "$%s,X",
	cpu.ZPY: "$%s,Y",
	cpu.ABS: "$%s",
	cpu.ABX: "$%s,X",
	cpu.ABY: "$%s,Y",
	cpu.IDX: "($%s,X)",
	cpu.IDY: "($%s),Y",
}

var hex = "0123456789ABCDEF"

// Return a hexadecimal string representation of the little-endian byte
// slice.
func hexString(b []byte) string {
	hexlen := len(b) * 2
	hexbuf := make([]byte, hexlen)
	j := hexlen - 1
	for _, n := range b {
		hexbuf[j] = hex[n&0xf]
		hexbuf[j-1] = hex[n>>4]
		j -= 2
	}
	return string(hexbuf)
}

// Disassemble the machine code in memory 'm' at address 'addr'. Return a
// 'line' string representing the disassembled instruction and a 'next'
// address that starts the following line of machine code. Opcodes the CPU
// does not implement disassemble as "???".
func Disassemble(m *cpu.Memory, addr uint16) (line string, next uint16) {
	opcode := m.LoadByte(addr)
	inst := cpu.GetInstructionSet().Lookup(opcode)
	operand := make([]byte, inst.Length-1)
	m.LoadBytes(addr+1, operand)

	format := "%s " + modeFormat[inst.Mode]
	if inst.Mode == cpu.IMP {
		format = "%s%s"
	}
	line = fmt.Sprintf(format, inst.Name, hexString(operand))
	next = addr + uint16(inst.Length)
	return
}
