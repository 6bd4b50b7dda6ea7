// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"strings"
	"testing"
)

func evalDecimal(s string) (int64, error) {
	return newExprParser().Parse(s, nil)
}

func TestSettingsSet(t *testing.T) {
	s := newSettings()

	name, err := s.Set("mem", "32", evalDecimal)
	if err != nil {
		t.Fatal(err)
	}
	if name != "MemDumpBytes" || s.MemDumpBytes != 32 {
		t.Errorf("MemDumpBytes incorrect. exp: 32, got: %d (%s)", s.MemDumpBytes, name)
	}

	if _, err := s.Set("HEX", "true", evalDecimal); err != nil || !s.HexMode {
		t.Errorf("HexMode not set: %v", err)
	}
	if _, err := s.Set("shownotices", "0", evalDecimal); err != nil || s.ShowNotices {
		t.Errorf("ShowNotices not cleared: %v", err)
	}
	if _, err := s.Set("nextdisasm", "$12345", evalDecimal); err != nil || s.NextDisasmAddr != 0x2345 {
		t.Errorf("NextDisasmAddr incorrect. exp: $2345, got: $%04X (%v)", s.NextDisasmAddr, err)
	}
}

func TestSettingsErrors(t *testing.T) {
	s := newSettings()

	tests := []struct{ key, value string }{
		{"next", "1"},        // ambiguous prefix
		{"bogus", "1"},       // unknown setting
		{"hexmode", "maybe"}, // invalid bool
		{"disasm", "-1"},     // negative count
		{"disasm", "1+"},     // bad expression
	}
	for _, test := range tests {
		if _, err := s.Set(test.key, test.value, evalDecimal); err == nil {
			t.Errorf("Set(%q, %q) should fail", test.key, test.value)
		}
	}

	if s.DisasmLines != 10 {
		t.Errorf("DisasmLines changed by failed set: %d", s.DisasmLines)
	}
}

func TestSettingsDisplay(t *testing.T) {
	s := newSettings()
	s.NextMemDumpAddr = 0x1234

	var b strings.Builder
	s.Display(&b)
	out := b.String()
	for _, exp := range []string{"HexMode", "false", "NextMemDumpAddr", "$1234", "(default number of lines to disassemble)"} {
		if !strings.Contains(out, exp) {
			t.Errorf("Settings display missing %q:\n%s", exp, out)
		}
	}
}
