// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
)

// A minimal evaluator accepting $hex and decimal numbers and the label
// "data" ($1234).
func eval(expr string) (int64, error) {
	switch {
	case expr == "data":
		return 0x1234, nil
	case strings.HasPrefix(expr, "$"):
		return strconv.ParseInt(expr[1:], 16, 64)
	default:
		return strconv.ParseInt(expr, 10, 64)
	}
}

func TestAssembleLine(t *testing.T) {
	tests := []struct {
		line string
		code []byte
	}{
		{"LDA #$20", []byte{0xa9, 0x20}},
		{"lda #255", []byte{0xa9, 0xff}},
		{"LDA $20", []byte{0xa5, 0x20}},
		{"LDA $20,X", []byte{0xb5, 0x20}},
		{"LDA $20,Y", []byte{0xb9, 0x20, 0x00}},
		{"LDA $1234", []byte{0xad, 0x34, 0x12}},
		{"LDA data,x", []byte{0xbd, 0x34, 0x12}},
		{"LDA $1234,Y", []byte{0xb9, 0x34, 0x12}},
		{"LDA ($20,X)", []byte{0xa1, 0x20}},
		{"LDA ($20),Y", []byte{0xb1, 0x20}},
		{"LDX $20,Y", []byte{0xb6, 0x20}},
		{"STA $0300", []byte{0x8d, 0x00, 0x03}},
		{"STA ( $10 ),y", []byte{0x91, 0x10}},
		{"INC $10", []byte{0xe6, 0x10}},
		{"TAX", []byte{0xaa}},
		{"  pha  ", []byte{0x48}},
		{"BRK", []byte{0x00}},
	}

	for _, test := range tests {
		code, err := AssembleLine(test.line, eval)
		if err != nil {
			t.Errorf("AssembleLine(%q) failed: %v", test.line, err)
			continue
		}
		if !bytes.Equal(code, test.code) {
			t.Errorf("AssembleLine(%q) incorrect. exp: % X, got: % X", test.line, test.code, code)
		}
	}
}

func TestAssembleLineErrors(t *testing.T) {
	tests := []struct {
		line string
		err  error
	}{
		{"JMP $1000", ErrInvalidOpcode},
		{"LDA", ErrInvalidMode},
		{"TAX $10", ErrInvalidMode},
		{"LDA #$100", ErrOperandRange},
		{"LDA #-129", ErrOperandRange},
		{"STX $1000,X", ErrInvalidMode},
		{"LDA ($1000),Y", ErrOperandRange},
		{"LDA ($100,X)", ErrOperandRange},
		{"LDA $10,Z", ErrOperandFormat},
		{"LDA #", ErrOperandFormat},
		{"LDA $123456", ErrOperandRange},
	}

	for _, test := range tests {
		_, err := AssembleLine(test.line, eval)
		if !errors.Is(err, test.err) {
			t.Errorf("AssembleLine(%q) error incorrect. exp: %v, got: %v", test.line, test.err, err)
		}
	}

	evalErr := fmt.Errorf("bad expression")
	_, err := AssembleLine("LDA foo", func(string) (int64, error) { return 0, evalErr })
	if !errors.Is(err, evalErr) {
		t.Errorf("Evaluator error not returned: %v", err)
	}
}
