// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "testing"

func TestResolve(t *testing.T) {
	m := NewMemory()

	// Operand bytes at $0200.
	m.StoreBytes(0x0200, []byte{0xf0, 0x12})

	// Zero-page pointers used by the indirect modes.
	m.StoreWord(0x00f5, 0x3456) // ($F0,X) with X=$05
	m.StoreWord(0x00f0, 0x40ff) // ($F0),Y
	m.StoreByte(0x00ff, 0x78)   // ($FF) pointer wraps within page 0
	m.StoreByte(0x0000, 0x56)

	tests := []struct {
		mode Mode
		pc   uint16
		x, y byte
		addr uint16
		next uint16
	}{
		{IMP, 0x0200, 0x00, 0x00, 0x0200, 0x0200},
		{IMM, 0x0200, 0x00, 0x00, 0x0200, 0x0201},
		{ZPG, 0x0200, 0x00, 0x00, 0x00f0, 0x0201},
		{ZPX, 0x0200, 0x05, 0x00, 0x00f5, 0x0201},
		{ZPX, 0x0200, 0x20, 0x00, 0x0010, 0x0201}, // wraps in page 0
		{ZPY, 0x0200, 0x00, 0x20, 0x0010, 0x0201},
		{ABS, 0x0200, 0x00, 0x00, 0x12f0, 0x0202},
		{ABX, 0x0200, 0x20, 0x00, 0x1310, 0x0202}, // crosses a page
		{ABY, 0x0200, 0x00, 0x0f, 0x12ff, 0x0202},
		{IDX, 0x0200, 0x05, 0x00, 0x3456, 0x0201},
		{IDX, 0x0200, 0x0f, 0x00, 0x5678, 0x0201}, // pointer at $FF
		{IDY, 0x0200, 0x00, 0x01, 0x4100, 0x0201},
	}

	for _, test := range tests {
		addr, next := Resolve(m, test.mode, test.pc, test.x, test.y)
		if addr != test.addr {
			t.Errorf("%v address incorrect. exp: $%04X, got: $%04X", test.mode, test.addr, addr)
		}
		if next != test.next {
			t.Errorf("%v next PC incorrect. exp: $%04X, got: $%04X", test.mode, test.next, next)
		}
	}
}

func TestResolveAbsoluteWrap(t *testing.T) {
	m := NewMemory()
	m.StoreWord(0x0300, 0xfff0)
	m.StoreWord(0x0010, 0xfff0)
	m.StoreByte(0x0302, 0x10)

	if addr, _ := Resolve(m, ABX, 0x0300, 0x20, 0); addr != 0x0010 {
		t.Errorf("ABX wrap incorrect. exp: $0010, got: $%04X", addr)
	}
	if addr, _ := Resolve(m, IDY, 0x0302, 0, 0x20); addr != 0x0010 {
		t.Errorf("IDY wrap incorrect. exp: $0010, got: $%04X", addr)
	}
}

func TestResolveIndexedWithZero(t *testing.T) {
	pairs := []struct {
		indexed Mode
		plain   Mode
	}{
		{ZPX, ZPG},
		{ZPY, ZPG},
		{ABX, ABS},
		{ABY, ABS},
		{IDX, IDY},
	}

	m := NewMemory()
	for i := 0; i < 0x100; i++ {
		m.StoreByte(uint16(i), byte(i*7+3))
	}

	for pc := uint16(0x00); pc < 0x100; pc += 0x11 {
		for _, p := range pairs {
			a0, n0 := Resolve(m, p.indexed, pc, 0, 0)
			a1, n1 := Resolve(m, p.plain, pc, 0, 0)
			if a0 != a1 || n0 != n1 {
				t.Errorf("%v with zero index at $%04X: got ($%04X,$%04X), %v gives ($%04X,$%04X)",
					p.indexed, pc, a0, n0, p.plain, a1, n1)
			}
		}
	}
}

func TestInstructionLengths(t *testing.T) {
	set := GetInstructionSet()
	for op := 0; op < 256; op++ {
		inst := set.Lookup(byte(op))
		if int(inst.Length) != 1+inst.Mode.OperandLength() {
			t.Errorf("Opcode $%02X (%s) length %d does not match mode %v", op, inst.Name, inst.Length, inst.Mode)
		}
		if inst.Opcode != byte(op) {
			t.Errorf("Opcode $%02X stored as $%02X", op, inst.Opcode)
		}
	}
}
