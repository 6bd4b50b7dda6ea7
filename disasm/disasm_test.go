// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package disasm

import (
	"testing"

	"github.com/nesguin/emu6502/cpu"
)

func TestDisassemble(t *testing.T) {
	tests := []struct {
		code []byte
		line string
	}{
		{[]byte{0xa9, 0x0f}, "LDA #$0F"},
		{[]byte{0xa5, 0x10}, "LDA $10"},
		{[]byte{0xb5, 0x10}, "LDA $10,X"},
		{[]byte{0xb6, 0x10}, "LDX $10,Y"},
		{[]byte{0xad, 0x34, 0x12}, "LDA $1234"},
		{[]byte{0xbd, 0x34, 0x12}, "LDA $1234,X"},
		{[]byte{0x99, 0x00, 0x20}, "STA $2000,Y"},
		{[]byte{0x81, 0x20}, "STA ($20,X)"},
		{[]byte{0xb1, 0x20}, "LDA ($20),Y"},
		{[]byte{0xaa}, "TAX"},
		{[]byte{0x00}, "BRK"},
		{[]byte{0x02}, "???"},
	}

	for _, test := range tests {
		m := cpu.NewMemory()
		m.StoreBytes(0x8000, test.code)
		line, next := Disassemble(m, 0x8000)
		if line != test.line {
			t.Errorf("Disassembly incorrect. exp: %q, got: %q", test.line, line)
		}
		if exp := 0x8000 + uint16(len(test.code)); next != exp {
			t.Errorf("Next address for %q incorrect. exp: $%04X, got: $%04X", test.line, exp, next)
		}
	}
}

func TestDisassembleWrap(t *testing.T) {
	m := cpu.NewMemory()
	m.StoreByte(0xfffe, 0xad)
	m.StoreByte(0xffff, 0x34)
	m.StoreByte(0x0000, 0x12)

	line, next := Disassemble(m, 0xfffe)
	if line != "LDA $1234" {
		t.Errorf("Disassembly incorrect. exp: %q, got: %q", "LDA $1234", line)
	}
	if next != 0x0001 {
		t.Errorf("Next address incorrect. exp: $0001, got: $%04X", next)
	}
}
