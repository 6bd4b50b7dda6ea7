// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Memory represents the entire 16-bit address space of the system as a
// single 64K buffer. Every address is valid, so none of its accessors can
// fail.
type Memory struct {
	b [64 * 1024]byte
}

// NewMemory creates a new zero-filled 16-bit memory space.
func NewMemory() *Memory {
	return &Memory{}
}

// LoadByte loads a single byte from the address and returns it.
func (m *Memory) LoadByte(addr uint16) byte {
	return m.b[addr]
}

// StoreByte stores a byte at the requested address.
func (m *Memory) StoreByte(addr uint16, v byte) {
	m.b[addr] = v
}

// LoadWord loads a little-endian 16-bit value from the requested address.
// The high byte comes from addr+1, which wraps from $FFFF to $0000 but
// not at page boundaries.
func (m *Memory) LoadWord(addr uint16) uint16 {
	return uint16(m.b[addr]) | uint16(m.b[addr+1])<<8
}

// StoreWord stores a 16-bit value to the requested address, low byte
// first.
func (m *Memory) StoreWord(addr uint16, v uint16) {
	m.b[addr] = byte(v & 0xff)
	m.b[addr+1] = byte(v >> 8)
}

// LoadZeroPageWord loads a 16-bit pointer stored in the zero page at 'zp'.
// When zp is $FF the high byte is read from $00.
func (m *Memory) LoadZeroPageWord(zp byte) uint16 {
	return uint16(m.b[zp]) | uint16(m.b[zp+1])<<8
}

// LoadBytes loads len(b) bytes starting at the address into b. Reads past
// $FFFF continue from $0000.
func (m *Memory) LoadBytes(addr uint16, b []byte) {
	for i := range b {
		b[i] = m.b[addr]
		addr++
	}
}

// StoreBytes stores the contents of b starting at the address. Writes past
// $FFFF continue from $0000.
func (m *Memory) StoreBytes(addr uint16, b []byte) {
	for _, v := range b {
		m.b[addr] = v
		addr++
	}
}

// Return the address 'addr' offset by the index register value 'offset',
// wrapping at the top of the 16-bit address space.
func offsetAddress(addr uint16, offset byte) uint16 {
	return addr + uint16(offset)
}

// Offset a zero-page address 'zp' by 'offset', wrapping within the zero
// page.
func offsetZeroPage(zp byte, offset byte) uint16 {
	return uint16(zp + offset)
}
