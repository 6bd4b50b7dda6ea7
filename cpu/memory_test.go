// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "testing"

func TestMemoryByte(t *testing.T) {
	m := NewMemory()
	m.StoreByte(0x0a11, 26)
	if got := m.LoadByte(0x0a11); got != 26 {
		t.Errorf("Byte incorrect. exp: $%02X, got: $%02X", 26, got)
	}
	if got := m.LoadByte(0x0a12); got != 0 {
		t.Errorf("Neighbor byte modified. exp: $00, got: $%02X", got)
	}
}

func TestMemoryWord(t *testing.T) {
	tests := []struct {
		addr uint16
		v    uint16
		hi   uint16 // address expected to hold the high byte
	}{
		{0x0000, 0x0000, 0x0001},
		{0x0a11, 0xffff, 0x0a12},
		{0x12ff, 0xabc1, 0x1300},
		{0xfffd, 0xabc1, 0xfffe},
		{0xfffc, 0x8000, 0xfffd},
		{0xffff, 0x1234, 0x0000},
	}

	for _, test := range tests {
		m := NewMemory()
		m.StoreWord(test.addr, test.v)

		if got := m.LoadWord(test.addr); got != test.v {
			t.Errorf("Word at $%04X incorrect. exp: $%04X, got: $%04X", test.addr, test.v, got)
		}
		if got := m.LoadByte(test.addr); got != byte(test.v) {
			t.Errorf("Low byte at $%04X incorrect. exp: $%02X, got: $%02X", test.addr, byte(test.v), got)
		}
		if got := m.LoadByte(test.hi); got != byte(test.v>>8) {
			t.Errorf("High byte at $%04X incorrect. exp: $%02X, got: $%02X", test.hi, byte(test.v>>8), got)
		}
	}
}

func TestLoadZeroPageWord(t *testing.T) {
	m := NewMemory()
	m.StoreByte(0x00ff, 0x34)
	m.StoreByte(0x0000, 0x12)
	m.StoreByte(0x0100, 0x99)

	if got := m.LoadZeroPageWord(0xff); got != 0x1234 {
		t.Errorf("Zero page word incorrect. exp: $1234, got: $%04X", got)
	}

	m.StoreWord(0x0040, 0xbeef)
	if got := m.LoadZeroPageWord(0x40); got != 0xbeef {
		t.Errorf("Zero page word incorrect. exp: $BEEF, got: $%04X", got)
	}
}

func TestMemoryBytesWrap(t *testing.T) {
	m := NewMemory()
	m.StoreBytes(0xfffe, []byte{1, 2, 3, 4})

	exp := map[uint16]byte{0xfffe: 1, 0xffff: 2, 0x0000: 3, 0x0001: 4}
	for addr, v := range exp {
		if got := m.LoadByte(addr); got != v {
			t.Errorf("Memory at $%04X incorrect. exp: $%02X, got: $%02X", addr, v, got)
		}
	}

	b := make([]byte, 4)
	m.LoadBytes(0xfffe, b)
	for i, v := range []byte{1, 2, 3, 4} {
		if b[i] != v {
			t.Errorf("LoadBytes[%d] incorrect. exp: $%02X, got: $%02X", i, v, b[i])
		}
	}
}
