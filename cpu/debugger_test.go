// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu_test

import (
	"testing"

	"github.com/nesguin/emu6502/cpu"
)

type recorder struct {
	pcs   []uint16
	datas []uint16
}

func (r *recorder) OnBreakpoint(c *cpu.CPU, b *cpu.Breakpoint) {
	r.pcs = append(r.pcs, b.Address)
}

func (r *recorder) OnDataBreakpoint(c *cpu.CPU, b *cpu.DataBreakpoint) {
	r.datas = append(r.datas, b.Address)
}

var debugProgram = []byte{
	0xa9, 0x01, // LDA #$01
	0x85, 0x10, // STA $10
	0xa9, 0x02, // LDA #$02
	0x85, 0x10, // STA $10
	0xa9, 0x03, // LDA #$03
}

func TestBreakpoint(t *testing.T) {
	c := loadCPU(t, debugProgram)
	r := &recorder{}
	d := cpu.NewDebugger(r)
	c.AttachDebugger(d)
	d.AddBreakpoint(0x8004)

	c.Run()
	expectPC(t, c, 0x8004)
	expectACC(t, c, 0x01)
	if c.State() != cpu.Reset {
		t.Errorf("State incorrect. exp: %v, got: %v", cpu.Reset, c.State())
	}
	if len(r.pcs) != 1 || r.pcs[0] != 0x8004 {
		t.Errorf("Breakpoint hits incorrect: %v", r.pcs)
	}

	// Resuming continues to the end of memory.
	d.RemoveBreakpoint(0x8004)
	c.Run()
	expectACC(t, c, 0x03)
	if c.State() != cpu.Halted {
		t.Errorf("State incorrect. exp: %v, got: %v", cpu.Halted, c.State())
	}
}

func TestBreakpointDisabled(t *testing.T) {
	c := loadCPU(t, debugProgram)
	d := cpu.NewDebugger(nil)
	c.AttachDebugger(d)
	b := d.AddBreakpoint(0x8004)
	b.Disabled = true

	c.Run()
	expectACC(t, c, 0x03)
	expectPC(t, c, 0xffff)
}

func TestDataBreakpoint(t *testing.T) {
	c := loadCPU(t, debugProgram)
	r := &recorder{}
	d := cpu.NewDebugger(r)
	c.AttachDebugger(d)
	d.AddConditionalDataBreakpoint(0x0010, 0x02)

	c.Run()
	expectPC(t, c, 0x8008)
	expectMem(t, c, 0x0010, 0x02)
	if len(r.datas) != 1 {
		t.Errorf("Data breakpoint hits incorrect. exp: 1, got: %d", len(r.datas))
	}

	d.RemoveDataBreakpoint(0x0010)
	d.AddDataBreakpoint(0x01ff)
	c.Reset()
	c.Run()
	expectPC(t, c, 0xffff)
	if len(r.datas) != 1 {
		t.Errorf("Data breakpoint hits incorrect. exp: 1, got: %d", len(r.datas))
	}
}

func TestDataBreakpointStack(t *testing.T) {
	c := loadCPU(t, []byte{0xa9, 0x07, 0x48, 0xea})
	c.Reg.SP = 0xff
	d := cpu.NewDebugger(nil)
	c.AttachDebugger(d)
	d.AddDataBreakpoint(0x01ff)

	c.Run()
	expectPC(t, c, 0x8003)
	expectMem(t, c, 0x01ff, 0x07)
}

func TestDebuggerStop(t *testing.T) {
	c := loadCPU(t, debugProgram)
	d := cpu.NewDebugger(nil)
	c.AttachDebugger(d)

	// A stop requested before Run starts is discarded.
	d.Stop()
	c.Step()
	c.Run()
	expectPC(t, c, 0xffff)

	c.DetachDebugger()
	c.Reset()
	c.Run()
	expectACC(t, c, 0x03)
}

func TestBreakpointList(t *testing.T) {
	d := cpu.NewDebugger(nil)
	d.AddBreakpoint(0x9000)
	d.AddBreakpoint(0x8000)
	d.AddBreakpoint(0x8800)

	bps := d.GetBreakpoints()
	exp := []uint16{0x8000, 0x8800, 0x9000}
	if len(bps) != len(exp) {
		t.Fatalf("Breakpoint count incorrect. exp: %d, got: %d", len(exp), len(bps))
	}
	for i, b := range bps {
		if b.Address != exp[i] {
			t.Errorf("Breakpoint %d incorrect. exp: $%04X, got: $%04X", i, exp[i], b.Address)
		}
	}

	if d.GetBreakpoint(0x8800) == nil || d.GetBreakpoint(0x8801) != nil {
		t.Error("GetBreakpoint lookup incorrect")
	}
}
