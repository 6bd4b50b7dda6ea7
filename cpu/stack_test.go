// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "testing"

func TestStackRoundTrip(t *testing.T) {
	m := NewMemory()
	for _, start := range []byte{0xff, 0x80, 0x01, 0x00} {
		for v := 0; v < 256; v++ {
			sp := start
			Push(m, &sp, byte(v))
			if got := Pop(m, &sp); got != byte(v) {
				t.Fatalf("Popped value incorrect. exp: $%02X, got: $%02X", v, got)
			}
			if sp != start {
				t.Fatalf("Stack pointer not restored. exp: $%02X, got: $%02X", start, sp)
			}
		}
	}
}

func TestStackPushOrder(t *testing.T) {
	m := NewMemory()
	sp := byte(0xff)
	Push(m, &sp, 0x11)
	Push(m, &sp, 0x12)

	if sp != 0xfd {
		t.Errorf("Stack pointer incorrect. exp: $FD, got: $%02X", sp)
	}
	if got := m.LoadByte(0x01ff); got != 0x11 {
		t.Errorf("Memory at $01FF incorrect. exp: $11, got: $%02X", got)
	}
	if got := m.LoadByte(0x01fe); got != 0x12 {
		t.Errorf("Memory at $01FE incorrect. exp: $12, got: $%02X", got)
	}
	if got := Pop(m, &sp); got != 0x12 {
		t.Errorf("Popped value incorrect. exp: $12, got: $%02X", got)
	}
}

func TestStackWrap(t *testing.T) {
	m := NewMemory()
	sp := byte(0x00)
	Push(m, &sp, 0x5a)

	if sp != 0xff {
		t.Errorf("Stack pointer incorrect. exp: $FF, got: $%02X", sp)
	}
	if got := m.LoadByte(0x0100); got != 0x5a {
		t.Errorf("Memory at $0100 incorrect. exp: $5A, got: $%02X", got)
	}
	if got := m.LoadByte(0x0200); got != 0x00 {
		t.Errorf("Memory at $0200 modified: $%02X", got)
	}

	if got := Pop(m, &sp); got != 0x5a || sp != 0x00 {
		t.Errorf("Pop after wrap incorrect. got value $%02X, sp $%02X", got, sp)
	}
}
