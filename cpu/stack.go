// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Base address of the stack page.
const stackBase = 0x0100

// Given a 1-byte stack pointer register, return the corresponding stack
// memory address.
func stackAddress(offset byte) uint16 {
	return stackBase + uint16(offset)
}

// Push stores 'v' at the stack slot designated by *sp and then decrements
// the stack pointer. The stack pointer wraps from $00 to $FF.
func Push(m *Memory, sp *byte, v byte) {
	m.StoreByte(stackAddress(*sp), v)
	*sp--
}

// Pop increments the stack pointer and then loads the byte it designates.
// The stack pointer wraps from $FF to $00.
func Pop(m *Memory, sp *byte) byte {
	*sp++
	return m.LoadByte(stackAddress(*sp))
}
