// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/beevik/prefixtree/v2"
)

type settings struct {
	HexMode         bool   `doc:"hexadecimal input mode"`
	ShowNotices     bool   `doc:"display CPU notices such as unknown opcodes"`
	MemDumpBytes    int    `doc:"default number of memory bytes to dump"`
	DisasmLines     int    `doc:"default number of lines to disassemble"`
	MaxStepLines    int    `doc:"max lines to disassemble when stepping"`
	NextDisasmAddr  uint16 `doc:"address of next disassembly"`
	NextMemDumpAddr uint16 `doc:"address of next memory dump"`
}

func newSettings() *settings {
	return &settings{
		HexMode:      false,
		ShowNotices:  true,
		MemDumpBytes: 64,
		DisasmLines:  10,
		MaxStepLines: 20,
	}
}

type settingsField struct {
	name  string
	index int
	kind  reflect.Kind
	doc   string
}

var (
	settingsTree   = prefixtree.New[*settingsField]()
	settingsFields []settingsField
)

func init() {
	settingsType := reflect.TypeOf(settings{})
	settingsFields = make([]settingsField, settingsType.NumField())
	for i := range settingsFields {
		f := settingsType.Field(i)
		doc, _ := f.Tag.Lookup("doc")
		settingsFields[i] = settingsField{
			name:  f.Name,
			index: i,
			kind:  f.Type.Kind(),
			doc:   doc,
		}
		settingsTree.Add(strings.ToLower(f.Name), &settingsFields[i])
	}
}

func (s *settings) Display(w io.Writer) {
	value := reflect.ValueOf(s).Elem()
	for i, f := range settingsFields {
		v := value.Field(i)
		var s string
		switch f.kind {
		case reflect.Uint16:
			s = fmt.Sprintf("    %-16s $%04X", f.name, uint16(v.Uint()))
		default:
			s = fmt.Sprintf("    %-16s %v", f.name, v)
		}
		fmt.Fprintf(w, "%-28s (%s)\n", s, f.doc)
	}
}

// Set assigns a value to the setting whose name starts with key. Boolean
// settings accept true/false/1/0. Numeric settings are evaluated with
// eval. Set returns the full name of the updated setting.
func (s *settings) Set(key, value string, eval func(string) (int64, error)) (string, error) {
	f, err := settingsTree.FindValue(strings.ToLower(key))
	if err != nil {
		return "", fmt.Errorf("setting '%s': %w", key, err)
	}

	field := reflect.ValueOf(s).Elem().Field(f.index)
	switch f.kind {
	case reflect.Bool:
		b, err := stringToBool(value)
		if err != nil {
			return "", err
		}
		field.SetBool(b)

	case reflect.Int:
		v, err := eval(value)
		if err != nil {
			return "", err
		}
		if v < 0 {
			return "", fmt.Errorf("setting '%s' must not be negative", f.name)
		}
		field.SetInt(v)

	case reflect.Uint16:
		v, err := eval(value)
		if err != nil {
			return "", err
		}
		field.SetUint(uint64(uint16(v)))

	default:
		return "", fmt.Errorf("setting '%s' has unsupported type", f.name)
	}

	return f.name, nil
}
