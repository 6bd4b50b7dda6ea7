// Copyright 2018 Brett Vickers.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host implements a monitor around an emulated 6502 CPU and its 64K
// of memory.
//
// Within the host it is possible to load programs into memory, run and
// step through them, set address and data breakpoints, dump and modify
// memory, disassemble code, manipulate CPU registers and evaluate
// arbitrary expressions.
package host

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/beevik/cmd"
	"github.com/nesguin/emu6502/asm"
	"github.com/nesguin/emu6502/cpu"
	"github.com/nesguin/emu6502/disasm"
)

var errQuit = errors.New("exiting program")

// Long enough for a program command listing every byte of a full-size
// program.
const maxLineLength = 1 << 20

type displayFlags uint8

const (
	displayRegisters displayFlags = 1 << iota
	displayCycles

	displayAll = displayRegisters | displayCycles
)

// A Host represents a 6502 CPU with 64K of memory, a built-in debugger and
// a command interpreter that drives them.
type Host struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	cpu         *cpu.CPU
	debugger    *cpu.Debugger
	lastCmd     *selection
	exprParser  *exprParser
	settings    *settings
	interrupted atomic.Bool
	breakHit    bool
	nextAsmAddr uint16
}

// New creates a new 6502 host environment.
func New() *Host {
	h := &Host{
		exprParser: newExprParser(),
		settings:   newSettings(),
	}

	// Create the emulated CPU and send its notices to the host output.
	h.cpu = cpu.NewCPU()
	h.cpu.SetLogger(log.New(noticeWriter{h}, "notice: ", 0))

	// Create a CPU debugger and attach it to the CPU.
	h.debugger = cpu.NewDebugger(newDebugHandler(h))
	h.cpu.AttachDebugger(h.debugger)

	return h
}

// CPU returns the CPU emulated by the host.
func (h *Host) CPU() *cpu.CPU {
	return h.cpu
}

// RunCommands accepts host commands from a reader and outputs the results
// to a writer. If the commands are interactive, a prompt is displayed while
// the host waits for the the next command to be entered, and an empty line
// repeats the previous command. RunCommands returns when the reader is
// exhausted or a quit command is processed.
func (h *Host) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	h.input = bufio.NewScanner(r)
	h.input.Buffer(make([]byte, 0, 4096), maxLineLength)
	h.output = bufio.NewWriter(w)
	h.interactive = interactive

	if interactive {
		h.println()
	}

	h.displayPC()

	for {
		h.prompt()

		line, err := h.getLine()
		if err != nil {
			break
		}

		var c selection
		line = strings.TrimSpace(line)
		if line != "" {
			n, args, err := lookupCommand(line)
			switch {
			case errors.Is(err, cmd.ErrNotFound):
				h.println("Command not found.")
				continue
			case errors.Is(err, cmd.ErrAmbiguous):
				h.println("Command is ambiguous.")
				continue
			case err != nil:
				h.printf("ERROR: %v.\n", err)
				continue
			}

			switch n := n.(type) {
			case *cmd.Command:
				c = selection{Command: n, Args: args}
			case *cmd.Tree:
				// A bare group name lists the group's commands.
				g := n.Data.(*commandGroup)
				h.displayCommands(g.brief, g.commands)
				continue
			}
		} else if h.lastCmd != nil && interactive {
			c = *h.lastCmd
		}

		if c.Command == nil {
			continue
		}
		h.lastCmd = &c

		if err = c.data().handler(h, c); err != nil {
			break
		}
	}

	h.flush()
}

// RunProgram loads a raw binary program file, runs it until the program
// counter reaches $FFFF and writes the final register contents to w.
func (h *Host) RunProgram(filename string, w io.Writer) error {
	h.output = bufio.NewWriter(w)
	defer h.flush()

	program, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := h.cpu.LoadProgram(program); err != nil {
		return fmt.Errorf("loading '%s': %w", filepath.Base(filename), err)
	}

	h.run()
	h.println(h.registerString())
	return nil
}

// Break interrupts a running CPU. It may be called from any goroutine.
func (h *Host) Break() {
	h.interrupted.Store(true)
	h.debugger.Stop()
}

func (h *Host) print(args ...any) {
	fmt.Fprint(h.output, args...)
}

func (h *Host) printf(format string, args ...any) {
	fmt.Fprintf(h.output, format, args...)
	h.flush()
}

func (h *Host) println(args ...any) {
	fmt.Fprintln(h.output, args...)
	h.flush()
}

func (h *Host) flush() {
	h.output.Flush()
}

func (h *Host) getLine() (string, error) {
	if h.input.Scan() {
		return h.input.Text(), nil
	}
	if h.input.Err() != nil {
		return "", h.input.Err()
	}
	return "", io.EOF
}

func (h *Host) prompt() {
	if h.interactive {
		h.print("* ")
		h.flush()
	}
}

func (h *Host) displayPC() {
	if h.interactive {
		d, _ := h.disassemble(h.cpu.Reg.PC, displayAll)
		h.println(d)
	}
}

func (h *Host) displayUsage(c selection) {
	if u := c.data().usage; u != "" {
		h.printf("Syntax: %s\n", u)
	} else {
		h.println("<no help text>")
	}
}

func (h *Host) displayCommands(title string, commands []command) {
	type entry struct{ name, brief string }
	var entries []entry
	for _, c := range commands {
		if c.brief != "" {
			entries = append(entries, entry{c.name, c.brief})
		}
	}
	if title == "" {
		for _, g := range commandGroups[1:] {
			entries = append(entries, entry{g.name, g.brief})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].name < entries[j].name
	})

	if title == "" {
		title = "Commands"
	}
	h.printf("%s:\n", title)
	for _, e := range entries {
		h.printf("    %-15s  %s\n", e.name, e.brief)
	}
}

// Parse the address argument of a breakpoint or memory command. On failure
// a message is displayed and ok is false.
func (h *Host) addressArg(c selection) (addr uint16, ok bool) {
	if len(c.Args) < 1 {
		h.displayUsage(c)
		return 0, false
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return 0, false
	}
	return addr, true
}

// Resolve the "$" (continue) and "." (program counter) address shorthands,
// falling back to an expression.
func (h *Host) startAddress(arg string, next uint16) (uint16, error) {
	switch arg {
	case "$":
		if next == 0 {
			return h.cpu.Reg.PC, nil
		}
		return next, nil
	case ".":
		return h.cpu.Reg.PC, nil
	default:
		return h.parseExpr(arg)
	}
}

func (h *Host) cmdHelp(c selection) error {
	if len(c.Args) == 0 {
		h.displayCommands("", commandGroups[0].commands)
		return nil
	}

	n, _, err := lookupCommand(strings.Join(c.Args, " "))
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	switch n := n.(type) {
	case *cmd.Command:
		cm := n.Data.(*command)
		if cm.usage != "" {
			h.printf("Syntax: %s\n\n", cm.usage)
		}
		switch {
		case cm.description != "":
			h.printf("Description:\n%s\n\n", indentWrap(3, cm.description))
		case cm.brief != "":
			h.printf("Description:\n%s.\n\n", indentWrap(3, cm.brief))
		}
		if sc := n.Shortcuts(); len(sc) > 0 {
			h.printf("Shortcuts: %s\n\n", strings.Join(sc, ", "))
		}
	case *cmd.Tree:
		g := n.Data.(*commandGroup)
		h.displayCommands(g.brief, g.commands)
	}
	return nil
}

func (h *Host) cmdAssemble(c selection) error {
	if len(c.Args) < 2 {
		h.displayUsage(c)
		return nil
	}

	addr, err := h.startAddress(c.Args[0], h.nextAsmAddr)
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	code, err := asm.AssembleLine(strings.Join(c.Args[1:], " "), h.exprEvaluator)
	if err != nil {
		h.printf("Failed to assemble: %v\n", err)
		return nil
	}

	h.cpu.Mem.StoreBytes(addr, code)
	d, next := h.disassemble(addr, 0)
	h.println(d)
	h.nextAsmAddr = next
	return nil
}

func (h *Host) cmdBreakpointList(c selection) error {
	h.println("Addr  Enabled")
	h.println("----- -------")
	for _, b := range h.debugger.GetBreakpoints() {
		h.printf("$%04X %v\n", b.Address, !b.Disabled)
	}
	return nil
}

func (h *Host) cmdBreakpointAdd(c selection) error {
	addr, ok := h.addressArg(c)
	if !ok {
		return nil
	}

	h.debugger.AddBreakpoint(addr)
	h.printf("Breakpoint added at $%04X.\n", addr)
	return nil
}

func (h *Host) cmdBreakpointRemove(c selection) error {
	addr, ok := h.addressArg(c)
	if !ok {
		return nil
	}

	if h.debugger.GetBreakpoint(addr) == nil {
		h.printf("No breakpoint was set on $%04X.\n", addr)
		return nil
	}

	h.debugger.RemoveBreakpoint(addr)
	h.printf("Breakpoint at $%04X removed.\n", addr)
	return nil
}

func (h *Host) cmdBreakpointEnable(c selection) error {
	return h.enableBreakpoint(c, true)
}

func (h *Host) cmdBreakpointDisable(c selection) error {
	return h.enableBreakpoint(c, false)
}

func (h *Host) enableBreakpoint(c selection, enable bool) error {
	addr, ok := h.addressArg(c)
	if !ok {
		return nil
	}

	b := h.debugger.GetBreakpoint(addr)
	if b == nil {
		h.printf("No breakpoint was set on $%04X.\n", addr)
		return nil
	}

	b.Disabled = !enable
	h.printf("Breakpoint at $%04X %s.\n", addr, enabledString(enable))
	return nil
}

func (h *Host) cmdDataBreakpointList(c selection) error {
	h.println("Addr  Enabled  Value")
	h.println("----- -------  -----")
	for _, b := range h.debugger.GetDataBreakpoints() {
		if b.Conditional {
			h.printf("$%04X %-5v    $%02X\n", b.Address, !b.Disabled, b.Value)
		} else {
			h.printf("$%04X %-5v    <none>\n", b.Address, !b.Disabled)
		}
	}
	return nil
}

func (h *Host) cmdDataBreakpointAdd(c selection) error {
	addr, ok := h.addressArg(c)
	if !ok {
		return nil
	}

	if len(c.Args) > 1 {
		value, err := h.parseByte(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.debugger.AddConditionalDataBreakpoint(addr, value)
		h.printf("Conditional data breakpoint added at $%04X for value $%02X.\n", addr, value)
	} else {
		h.debugger.AddDataBreakpoint(addr)
		h.printf("Data breakpoint added at $%04X.\n", addr)
	}
	return nil
}

func (h *Host) cmdDataBreakpointRemove(c selection) error {
	addr, ok := h.addressArg(c)
	if !ok {
		return nil
	}

	if h.debugger.GetDataBreakpoint(addr) == nil {
		h.printf("No data breakpoint was set on $%04X.\n", addr)
		return nil
	}

	h.debugger.RemoveDataBreakpoint(addr)
	h.printf("Data breakpoint at $%04X removed.\n", addr)
	return nil
}

func (h *Host) cmdDataBreakpointEnable(c selection) error {
	return h.enableDataBreakpoint(c, true)
}

func (h *Host) cmdDataBreakpointDisable(c selection) error {
	return h.enableDataBreakpoint(c, false)
}

func (h *Host) enableDataBreakpoint(c selection, enable bool) error {
	addr, ok := h.addressArg(c)
	if !ok {
		return nil
	}

	b := h.debugger.GetDataBreakpoint(addr)
	if b == nil {
		h.printf("No data breakpoint was set on $%04X.\n", addr)
		return nil
	}

	b.Disabled = !enable
	h.printf("Data breakpoint at $%04X %s.\n", addr, enabledString(enable))
	return nil
}

func (h *Host) cmdDisassemble(c selection) error {
	if len(c.Args) == 0 {
		c.Args = []string{"$"}
	}

	addr, err := h.startAddress(c.Args[0], h.settings.NextDisasmAddr)
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	lines := h.settings.DisasmLines
	if len(c.Args) > 1 {
		l, err := h.parseExpr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		lines = int(l)
	}

	for i := 0; i < lines; i++ {
		d, next := h.disassemble(addr, 0)
		h.println(d)
		addr = next
	}

	h.settings.NextDisasmAddr = addr
	if h.lastCmd != nil {
		h.lastCmd.Args = []string{"$", fmt.Sprintf("%d", lines)}
	}
	return nil
}

func (h *Host) cmdEvaluate(c selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c)
		return nil
	}

	v, err := h.parseExpr(strings.Join(c.Args, " "))
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.printf("$%04X\n", v)
	return nil
}

func (h *Host) cmdLoad(c selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c)
		return nil
	}

	filename := strings.Join(c.Args, " ")
	program, err := os.ReadFile(filename)
	if err != nil {
		h.printf("Failed to open '%s': %v\n", filepath.Base(filename), err)
		return nil
	}

	if h.loadProgram(program) {
		h.printf("Loaded '%s' to $%04X..$%04X.\n", filepath.Base(filename),
			cpu.LoadAddress, cpu.LoadAddress+len(program)-1)
		h.displayPC()
	}
	return nil
}

func (h *Host) cmdProgram(c selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c)
		return nil
	}

	program := make([]byte, len(c.Args))
	for i, arg := range c.Args {
		v, err := h.parseByte(arg)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		program[i] = v
	}

	if h.loadProgram(program) {
		h.printf("Program loaded to $%04X..$%04X.\n",
			cpu.LoadAddress, cpu.LoadAddress+len(program)-1)
		h.displayPC()
	}
	return nil
}

func (h *Host) loadProgram(program []byte) bool {
	if err := h.cpu.LoadProgram(program); err != nil {
		h.printf("Failed to load program: %v\n", err)
		return false
	}
	h.settings.NextDisasmAddr = h.cpu.Reg.PC
	h.settings.NextMemDumpAddr = h.cpu.Reg.PC
	return true
}

func (h *Host) cmdMemoryDump(c selection) error {
	if len(c.Args) == 0 {
		c.Args = []string{"$"}
	}

	addr, err := h.startAddress(c.Args[0], h.settings.NextMemDumpAddr)
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	bytes := uint16(h.settings.MemDumpBytes)
	if len(c.Args) >= 2 {
		bytes, err = h.parseExpr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
	}

	h.dumpMemory(addr, bytes)

	h.settings.NextMemDumpAddr = addr + bytes
	if h.lastCmd != nil {
		h.lastCmd.Args = []string{"$", fmt.Sprintf("%d", bytes)}
	}
	return nil
}

func (h *Host) cmdMemorySet(c selection) error {
	if len(c.Args) < 2 {
		h.displayUsage(c)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	b := make([]byte, len(c.Args)-1)
	for i, arg := range c.Args[1:] {
		v, err := h.parseByte(arg)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		b[i] = v
	}

	h.cpu.Mem.StoreBytes(addr, b)
	h.printf("Stored %d byte(s) at $%04X.\n", len(b), addr)
	return nil
}

func (h *Host) cmdQuit(c selection) error {
	return errQuit
}

var flagNames = map[string]cpu.Flag{
	"n": cpu.Negative, "negative": cpu.Negative, "sign": cpu.Negative,
	"v": cpu.Overflow, "overflow": cpu.Overflow,
	"b": cpu.B0, "break": cpu.B0,
	"d": cpu.Decimal, "decimal": cpu.Decimal,
	"i": cpu.InterruptDisable, "interrupt": cpu.InterruptDisable,
	"z": cpu.Zero, "zero": cpu.Zero,
	"c": cpu.Carry, "carry": cpu.Carry,
}

func (h *Host) cmdRegister(c selection) error {
	if len(c.Args) == 0 {
		h.println(h.registerString())
		return nil
	}
	if len(c.Args) < 2 {
		h.displayUsage(c)
		return nil
	}

	key := strings.ToLower(c.Args[0])
	v, err := h.exprParser.Parse(strings.Join(c.Args[1:], " "), h)
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	reg := &h.cpu.Reg
	switch key {
	case "a":
		reg.A = byte(v)
	case "x":
		reg.X = byte(v)
	case "y":
		reg.Y = byte(v)
	case "sp":
		reg.SP = byte(v)
	case "ps":
		reg.PS = cpu.Status(v)
	case ".", "pc":
		h.cpu.SetPC(uint16(v))
		h.settings.NextDisasmAddr = uint16(v)
		h.printf("Register PC set to $%04X.\n", uint16(v))
		return nil
	default:
		f, ok := flagNames[key]
		if !ok {
			h.printf("Unknown register '%s'.\n", c.Args[0])
			return nil
		}
		reg.PS.Set(f, v != 0)
		h.printf("Status flag %s set to %v.\n", strings.ToUpper(key), v != 0)
		return nil
	}

	h.printf("Register %s set to $%02X.\n", strings.ToUpper(key), byte(v))
	return nil
}

func (h *Host) cmdReset(c selection) error {
	h.cpu.Reset()
	h.settings.NextDisasmAddr = h.cpu.Reg.PC
	h.printf("CPU reset. Program counter at $%04X.\n", h.cpu.Reg.PC)
	h.displayPC()
	return nil
}

func (h *Host) cmdRun(c selection) error {
	if len(c.Args) > 0 {
		pc, err := h.parseExpr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.cpu.SetPC(pc)
	}

	if h.cpu.State() == cpu.Halted {
		h.println("CPU is halted. Reset or load a program to continue.")
		return nil
	}

	if h.interactive {
		h.printf("Running from $%04X. Press ctrl-C to break.\n", h.cpu.Reg.PC)
	}

	h.run()

	switch {
	case h.cpu.State() == cpu.Halted:
		h.printf("CPU halted at $%04X.\n", h.cpu.Reg.PC)
	case !h.breakHit:
		h.printf("Interrupted at $%04X.\n", h.cpu.Reg.PC)
	}

	h.settings.NextDisasmAddr = h.cpu.Reg.PC
	h.displayPC()
	return nil
}

func (h *Host) run() {
	h.interrupted.Store(false)
	h.breakHit = false
	h.cpu.Run()
}

func (h *Host) cmdSet(c selection) error {
	switch len(c.Args) {
	case 0:
		h.println("Variables:")
		h.settings.Display(h.output)
		h.flush()

	case 1:
		h.displayUsage(c)

	default:
		key, value := c.Args[0], strings.Join(c.Args[1:], " ")
		name, err := h.settings.Set(key, value, h.exprEvaluator)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.printf("Setting %s updated.\n", name)
		h.onSettingsUpdate()
	}
	return nil
}

func (h *Host) cmdStep(c selection) error {
	// Parse the number of steps.
	count := 1
	if len(c.Args) > 0 {
		n, err := h.parseExpr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		count = int(n)
	}

	// Step the CPU count times.
	h.interrupted.Store(false)
	h.breakHit = false
	for i := count - 1; i >= 0; i-- {
		if h.cpu.State() == cpu.Halted {
			h.printf("CPU halted at $%04X.\n", h.cpu.Reg.PC)
			break
		}

		h.cpu.Step()
		if h.breakHit || h.interrupted.Load() {
			break
		}

		switch {
		case i == h.settings.MaxStepLines:
			h.println("...")
		case i < h.settings.MaxStepLines:
			h.displayPC()
		}
	}

	h.settings.NextDisasmAddr = h.cpu.Reg.PC
	return nil
}

func (h *Host) onSettingsUpdate() {
	h.exprParser.hexMode = h.settings.HexMode
}

func (h *Host) exprEvaluator(expr string) (int64, error) {
	return h.exprParser.Parse(expr, h)
}

func (h *Host) parseExpr(expr string) (uint16, error) {
	v, err := h.exprParser.Parse(expr, h)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		v = 0x10000 + v
	}
	return uint16(v), nil
}

func (h *Host) parseByte(expr string) (byte, error) {
	v, err := h.exprParser.Parse(expr, h)
	if err != nil {
		return 0, err
	}
	if v < -0x80 || v > 0xff {
		return 0, fmt.Errorf("value '%s' does not fit in a byte", expr)
	}
	return byte(v), nil
}

func (h *Host) registerString() string {
	return fmt.Sprintf("%s C=%d", h.cpu.Reg.String(), h.cpu.Cycles)
}

func (h *Host) disassemble(addr uint16, flags displayFlags) (str string, next uint16) {
	var line string
	line, next = disasm.Disassemble(h.cpu.Mem, addr)

	b := make([]byte, next-addr)
	h.cpu.Mem.LoadBytes(addr, b)

	str = fmt.Sprintf("%04X-   %-8s    %-15s", addr, codeString(b), line)
	if (flags & displayRegisters) != 0 {
		str += " " + h.cpu.Reg.String()
	}
	if (flags & displayCycles) != 0 {
		str += fmt.Sprintf(" C=%d", h.cpu.Cycles)
	}
	return str, next
}

func (h *Host) dumpMemory(addr0, bytes uint16) {
	if bytes == 0 {
		return
	}

	addr1 := addr0 + bytes - 1
	if addr1 < addr0 {
		addr1 = 0xffff
	}

	buf := []byte("    -" + strings.Repeat(" ", 35))

	// Don't align display for short dumps.
	if addr1-addr0 < 8 {
		addrToBuf(addr0, buf[0:4])
		for a, c1, c2 := uint32(addr0), 6, 32; a <= uint32(addr1); a, c1, c2 = a+1, c1+3, c2+1 {
			m := h.cpu.Mem.LoadByte(uint16(a))
			byteToBuf(m, buf[c1:c1+2])
			buf[c2] = toPrintableChar(m)
		}
		h.println(string(buf))
		return
	}

	// Align addr0 and addr1 to 8-byte boundaries.
	start := uint32(addr0) & 0xfff8
	stop := (uint32(addr1) + 8) & 0xffff8
	if stop > 0x10000 {
		stop = 0x10000
	}

	for r := start; r < stop; r += 8 {
		addrToBuf(uint16(r), buf[0:4])
		for a, c1, c2 := r, 6, 32; c1 < 29; a, c1, c2 = a+1, c1+3, c2+1 {
			if a >= uint32(addr0) && a <= uint32(addr1) {
				m := h.cpu.Mem.LoadByte(uint16(a))
				byteToBuf(m, buf[c1:c1+2])
				buf[c2] = toPrintableChar(m)
			} else {
				buf[c1] = ' '
				buf[c1+1] = ' '
				buf[c2] = ' '
			}
		}
		h.println(string(buf))
	}
}

func (h *Host) resolveIdentifier(s string) (int64, error) {
	switch strings.ToLower(s) {
	case "a":
		return int64(h.cpu.Reg.A), nil
	case "x":
		return int64(h.cpu.Reg.X), nil
	case "y":
		return int64(h.cpu.Reg.Y), nil
	case "sp":
		return int64(h.cpu.Reg.SP) | 0x0100, nil
	case "ps":
		return int64(h.cpu.Reg.PS), nil
	case ".", "pc":
		return int64(h.cpu.Reg.PC), nil
	}
	return 0, fmt.Errorf("identifier '%s' not found", s)
}

func (h *Host) onBreakpoint(c *cpu.CPU, b *cpu.Breakpoint) {
	h.breakHit = true
	h.printf("Breakpoint hit at $%04X.\n", b.Address)
	h.displayPC()
}

func (h *Host) onDataBreakpoint(c *cpu.CPU, b *cpu.DataBreakpoint) {
	h.breakHit = true
	h.printf("Data breakpoint hit on address $%04X.\n", b.Address)
	if h.interactive && c.LastPC != c.Reg.PC {
		d, _ := h.disassemble(c.LastPC, displayAll)
		h.println(d)
	}
}

func enabledString(enable bool) string {
	if enable {
		return "enabled"
	}
	return "disabled"
}
