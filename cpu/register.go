// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "fmt"

// Registers contains the state of all 6502 registers.
type Registers struct {
	A  byte   // accumulator
	X  byte   // X indexing register
	Y  byte   // Y indexing register
	SP byte   // stack pointer ($100 + SP = stack memory location)
	PC uint16 // program counter
	PS Status // processor status bits
}

// Init zeroes all registers, including the stack pointer and the status
// byte.
func (r *Registers) Init() {
	*r = Registers{}
}

// String returns a one-line summary of the register contents.
func (r *Registers) String() string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X PS=[%s] SP=%02X PC=%04X",
		r.A, r.X, r.Y, r.PS, r.SP, r.PC)
}
