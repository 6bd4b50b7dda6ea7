// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpu implements the instruction-processing core of a 6502 CPU:
// registers, status flags, addressing modes, the stack and the
// fetch-decode-execute loop over a flat 64K memory.
package cpu

import (
	"errors"
	"fmt"
	"log"
	"os"
)

// State describes the execution state of the CPU.
type State byte

const (
	// Reset is the state after construction, after a call to Reset, and
	// after a debugger stops Run before the end of the address space.
	Reset State = iota

	// Running is the state while Run is executing instructions.
	Running

	// Halted is the state once the program counter reaches the end of
	// the address space.
	Halted
)

func (s State) String() string {
	switch s {
	case Reset:
		return "reset"
	case Running:
		return "running"
	case Halted:
		return "halted"
	default:
		return "unknown"
	}
}

const (
	vectorReset = 0xfffc

	// LoadAddress is the address where LoadProgram places a program.
	LoadAddress = 0x8000

	// MaxProgramSize is the largest program LoadProgram accepts.
	MaxProgramSize = 0x10000 - LoadAddress

	// Execution stops once the program counter reaches this address.
	haltAddress = 0xffff
)

// Errors
var (
	ErrProgramTooLarge = errors.New("program too large for load address")
)

// CPU represents a single 6502 CPU along with the 64K of memory it owns.
type CPU struct {
	Reg      Registers       // CPU registers
	Mem      *Memory         // memory owned by the CPU
	Cycles   uint64          // total executed CPU cycles
	LastPC   uint16          // address of the last executed opcode
	InstSet  *InstructionSet // instruction set used by the CPU
	state    State
	logger   *log.Logger
	debugger *Debugger
}

// NewCPU creates an emulated 6502 CPU with zeroed registers and zeroed
// memory.
func NewCPU() *CPU {
	cpu := &CPU{
		Mem:     NewMemory(),
		InstSet: GetInstructionSet(),
		state:   Reset,
		logger:  log.New(os.Stderr, "cpu: ", 0),
	}

	cpu.Reg.Init()
	return cpu
}

// SetLogger replaces the logger that receives diagnostic notices, such as
// those about unknown opcodes.
func (cpu *CPU) SetLogger(l *log.Logger) {
	cpu.logger = l
}

// State returns the current execution state of the CPU.
func (cpu *CPU) State() State {
	return cpu.state
}

// SetPC updates the CPU program counter to 'addr'.
func (cpu *CPU) SetPC(addr uint16) {
	cpu.Reg.PC = addr
	if cpu.state == Halted && addr != haltAddress {
		cpu.state = Reset
	}
}

// GetInstruction returns the instruction opcode at the requested address.
func (cpu *CPU) GetInstruction(addr uint16) *Instruction {
	opcode := cpu.Mem.LoadByte(addr)
	return cpu.InstSet.Lookup(opcode)
}

// Reset clears A, X and the status byte, sets the stack pointer to $FF and
// loads the program counter from the reset vector at $FFFC.
func (cpu *CPU) Reset() {
	cpu.Reg.A = 0
	cpu.Reg.X = 0
	cpu.Reg.PS = 0
	cpu.Reg.SP = 0xff
	cpu.Reg.PC = cpu.Mem.LoadWord(vectorReset)
	cpu.state = Reset
}

// LoadProgram copies the program into memory at LoadAddress, points the
// program counter at it and stores LoadAddress in the reset vector, so a
// later Reset restarts the program. Programs larger than MaxProgramSize
// are rejected with ErrProgramTooLarge and memory is left untouched.
func (cpu *CPU) LoadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrProgramTooLarge, len(program), MaxProgramSize)
	}

	cpu.Mem.StoreBytes(LoadAddress, program)
	cpu.SetPC(LoadAddress)
	cpu.Mem.StoreWord(vectorReset, LoadAddress)
	return nil
}

// Run executes instructions until the program counter reaches $FFFF or an
// attached debugger stops execution. The halt test uses the program
// counter, so a CPU whose PC was moved away from $FFFF runs again.
func (cpu *CPU) Run() {
	if cpu.Reg.PC == haltAddress {
		cpu.state = Halted
		return
	}

	if cpu.debugger != nil {
		cpu.debugger.stop.Store(false)
	}

	cpu.state = Running
	for cpu.state == Running {
		cpu.Step()
		if cpu.state == Running && cpu.debugger != nil && cpu.debugger.stopRequested() {
			cpu.state = Reset
		}
	}
}

// Step the cpu by one instruction. Unknown opcodes are reported to the
// logger and skipped as one-byte no-ops.
func (cpu *CPU) Step() {
	if cpu.Reg.PC == haltAddress {
		cpu.state = Halted
		return
	}
	if cpu.state == Halted {
		cpu.state = Reset
	}

	// Fetch the next opcode and advance the PC past it.
	cpu.LastPC = cpu.Reg.PC
	opcode := cpu.Mem.LoadByte(cpu.Reg.PC)
	cpu.Reg.PC++

	// Look up the instruction data for the opcode and execute it.
	inst := cpu.InstSet.Lookup(opcode)
	if inst.fn == nil {
		cpu.logger.Printf("no instruction for opcode $%02X at $%04X", opcode, cpu.LastPC)
	} else {
		inst.fn(cpu, inst)
		cpu.Cycles += uint64(inst.Cycles)
	}

	// An operand that runs past $FFFF wraps the PC below the opcode. No
	// instruction moves the PC backwards, so treat that as reaching the
	// end of the address space.
	if cpu.Reg.PC < cpu.LastPC {
		cpu.Reg.PC = haltAddress
	}
	if cpu.Reg.PC == haltAddress {
		cpu.state = Halted
	}

	// Update the debugger so it can handle breakpoints.
	if cpu.debugger != nil {
		cpu.debugger.onUpdatePC(cpu, cpu.Reg.PC)
	}
}

// AttachDebugger attaches a debugger to the CPU. The debugger receives
// notifications whenever the CPU executes an instruction or stores a byte
// to memory.
func (cpu *CPU) AttachDebugger(debugger *Debugger) {
	cpu.debugger = debugger
}

// DetachDebugger detaches the currently attached debugger from the CPU.
func (cpu *CPU) DetachDebugger() {
	cpu.debugger = nil
}

// Resolve the operand address for the addressing mode and advance the
// program counter past the operand.
func (cpu *CPU) operandAddress(mode Mode) uint16 {
	addr, next := Resolve(cpu.Mem, mode, cpu.Reg.PC, cpu.Reg.X, cpu.Reg.Y)
	cpu.Reg.PC = next
	return addr
}

// Load a byte value using the instruction's addressing mode.
func (cpu *CPU) load(mode Mode) byte {
	return cpu.Mem.LoadByte(cpu.operandAddress(mode))
}

// Store the byte value 'v' at the address 'addr'.
func (cpu *CPU) storeByte(addr uint16, v byte) {
	if cpu.debugger != nil {
		cpu.debugger.onDataStore(cpu, addr, v)
	}
	cpu.Mem.StoreByte(addr, v)
}

// Push a value 'v' onto the stack.
func (cpu *CPU) push(v byte) {
	if cpu.debugger != nil {
		cpu.debugger.onDataStore(cpu, stackAddress(cpu.Reg.SP), v)
	}
	Push(cpu.Mem, &cpu.Reg.SP, v)
}

// Pop a value from the stack and return it.
func (cpu *CPU) pop() byte {
	return Pop(cpu.Mem, &cpu.Reg.SP)
}

// Interrupts are not emulated, so BRK executes as a one-byte no-op.
func (cpu *CPU) brk(inst *Instruction) {
}

// Clear carry flag
func (cpu *CPU) clc(inst *Instruction) {
	cpu.Reg.PS.Set(Carry, false)
}

// Clear decimal flag
func (cpu *CPU) cld(inst *Instruction) {
	cpu.Reg.PS.Set(Decimal, false)
}

// Clear interrupt disable flag
func (cpu *CPU) cli(inst *Instruction) {
	cpu.Reg.PS.Set(InterruptDisable, false)
}

// Clear overflow flag
func (cpu *CPU) clv(inst *Instruction) {
	cpu.Reg.PS.Set(Overflow, false)
}

// Decrement memory value
func (cpu *CPU) dec(inst *Instruction) {
	addr := cpu.operandAddress(inst.Mode)
	v := cpu.Mem.LoadByte(addr) - 1
	cpu.Reg.PS.UpdateZN(v)
	cpu.storeByte(addr, v)
}

// Decrement X register
func (cpu *CPU) dex(inst *Instruction) {
	cpu.Reg.X--
	cpu.Reg.PS.UpdateZN(cpu.Reg.X)
}

// Decrement Y register
func (cpu *CPU) dey(inst *Instruction) {
	cpu.Reg.Y--
	cpu.Reg.PS.UpdateZN(cpu.Reg.Y)
}

// Increment memory value
func (cpu *CPU) inc(inst *Instruction) {
	addr := cpu.operandAddress(inst.Mode)
	v := cpu.Mem.LoadByte(addr) + 1
	cpu.Reg.PS.UpdateZN(v)
	cpu.storeByte(addr, v)
}

// Increment X register
func (cpu *CPU) inx(inst *Instruction) {
	cpu.Reg.X++
	cpu.Reg.PS.UpdateZN(cpu.Reg.X)
}

// Increment Y register
func (cpu *CPU) iny(inst *Instruction) {
	cpu.Reg.Y++
	cpu.Reg.PS.UpdateZN(cpu.Reg.Y)
}

// Load Accumulator
func (cpu *CPU) lda(inst *Instruction) {
	cpu.Reg.A = cpu.load(inst.Mode)
	cpu.Reg.PS.UpdateZN(cpu.Reg.A)
}

// Load the X register
func (cpu *CPU) ldx(inst *Instruction) {
	cpu.Reg.X = cpu.load(inst.Mode)
	cpu.Reg.PS.UpdateZN(cpu.Reg.X)
}

// Load the Y register
func (cpu *CPU) ldy(inst *Instruction) {
	cpu.Reg.Y = cpu.load(inst.Mode)
	cpu.Reg.PS.UpdateZN(cpu.Reg.Y)
}

// No-operation
func (cpu *CPU) nop(inst *Instruction) {
}

// Push Accumulator. Zero and Negative follow the pushed value.
func (cpu *CPU) pha(inst *Instruction) {
	cpu.push(cpu.Reg.A)
	cpu.Reg.PS.UpdateZN(cpu.Reg.A)
}

// Push Processor flags, verbatim
func (cpu *CPU) php(inst *Instruction) {
	cpu.push(byte(cpu.Reg.PS))
}

// Pull (pop) Accumulator
func (cpu *CPU) pla(inst *Instruction) {
	cpu.Reg.A = cpu.pop()
	cpu.Reg.PS.UpdateZN(cpu.Reg.A)
}

// Pull (pop) Processor flags. The popped byte replaces the whole status.
func (cpu *CPU) plp(inst *Instruction) {
	cpu.Reg.PS = Status(cpu.pop())
}

// Set Carry flag
func (cpu *CPU) sec(inst *Instruction) {
	cpu.Reg.PS.Set(Carry, true)
}

// Set Decimal flag
func (cpu *CPU) sed(inst *Instruction) {
	cpu.Reg.PS.Set(Decimal, true)
}

// Set InterruptDisable flag
func (cpu *CPU) sei(inst *Instruction) {
	cpu.Reg.PS.Set(InterruptDisable, true)
}

// Store Accumulator
func (cpu *CPU) sta(inst *Instruction) {
	cpu.storeByte(cpu.operandAddress(inst.Mode), cpu.Reg.A)
}

// Store X register
func (cpu *CPU) stx(inst *Instruction) {
	cpu.storeByte(cpu.operandAddress(inst.Mode), cpu.Reg.X)
}

// Store Y register
func (cpu *CPU) sty(inst *Instruction) {
	cpu.storeByte(cpu.operandAddress(inst.Mode), cpu.Reg.Y)
}

// Transfer Accumulator to X register
func (cpu *CPU) tax(inst *Instruction) {
	cpu.Reg.X = cpu.Reg.A
	cpu.Reg.PS.UpdateZN(cpu.Reg.X)
}

// Transfer Accumulator to Y register
func (cpu *CPU) tay(inst *Instruction) {
	cpu.Reg.Y = cpu.Reg.A
	cpu.Reg.PS.UpdateZN(cpu.Reg.Y)
}

// Transfer Stack pointer to X register. Flags are unaffected.
func (cpu *CPU) tsx(inst *Instruction) {
	cpu.Reg.X = cpu.Reg.SP
}

// Transfer X register to Accumulator
func (cpu *CPU) txa(inst *Instruction) {
	cpu.Reg.A = cpu.Reg.X
	cpu.Reg.PS.UpdateZN(cpu.Reg.A)
}

// Transfer X register to the Stack pointer. Flags are unaffected.
func (cpu *CPU) txs(inst *Instruction) {
	cpu.Reg.SP = cpu.Reg.X
}

// Transfer Y register to the Accumulator
func (cpu *CPU) tya(inst *Instruction) {
	cpu.Reg.A = cpu.Reg.Y
	cpu.Reg.PS.UpdateZN(cpu.Reg.A)
}
