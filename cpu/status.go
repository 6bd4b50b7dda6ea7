// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Status is the packed processor status byte.
type Status byte

// A Flag names a single bit of the processor status byte.
type Flag byte

// Bits assigned to the processor status byte
const (
	Carry            Flag = 1 << 0 // C
	Zero             Flag = 1 << 1 // Z
	InterruptDisable Flag = 1 << 2 // I
	Decimal          Flag = 1 << 3 // D
	B0               Flag = 1 << 4 // B (break, low)
	B1               Flag = 1 << 5 // unused on hardware, settable here
	Overflow         Flag = 1 << 6 // V
	Negative         Flag = 1 << 7 // N
)

// Set clears the bit owned by 'f' and then sets it again if 'on' is true.
// No other bit of the status byte is changed.
func (s *Status) Set(f Flag, on bool) {
	*s &^= Status(f)
	if on {
		*s |= Status(f)
	}
}

// IsSet returns true if the flag 'f' is set.
func (s Status) IsSet(f Flag) bool {
	return (s & Status(f)) != 0
}

// UpdateZN updates the Zero and Negative flags based on the value of 'v'.
// Both flags are always written.
func (s *Status) UpdateZN(v byte) {
	s.Set(Zero, v == 0)
	s.Set(Negative, (v&0x80) != 0)
}

var flagChars = "NVUBDIZC"

// String returns the flags from bit 7 down to bit 0, using '-' for each
// flag that is clear.
func (s Status) String() string {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		if s&(0x80>>i) != 0 {
			buf[i] = flagChars[i]
		} else {
			buf[i] = '-'
		}
	}
	return string(buf[:])
}
