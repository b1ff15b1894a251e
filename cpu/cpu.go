// Package cpu implements the NES subset of the MOS 6502 (as embedded in
// the Ricoh 2A03): instruction fetch/decode/execute with cycle
// accounting and IRQ/NMI handling.
package cpu

import "github.com/mtvoid/gones/internal/logx"

// Status flag bits, laid out N V U B D I Z C from bit 7 down to bit 0.
const (
	FlagCarry            uint8 = 1 << 0
	FlagZero             uint8 = 1 << 1
	FlagInterruptDisable uint8 = 1 << 2
	FlagDecimal          uint8 = 1 << 3
	FlagBreak            uint8 = 1 << 4
	FlagUnused           uint8 = 1 << 5
	FlagOverflow         uint8 = 1 << 6
	FlagNegative         uint8 = 1 << 7
)

// 6502 interrupt vectors.
const (
	VectorNMI   uint16 = 0xFFFA
	VectorReset uint16 = 0xFFFC
	VectorIRQ   uint16 = 0xFFFE
)

const stackPage uint16 = 0x0100

// Bus is the address-decoded memory the CPU reads instructions and
// operands from. TakeNMI reports and clears a pending NMI signal — the
// CPU samples it once per instruction fetch, which is how the bus's
// single-event channel (see package bus) reaches the CPU.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	TakeNMI() bool
}

// CPU holds all 6502 machine state: the three general registers, the
// status byte, stack pointer, program counter, and the cycle-accounting
// fields that let Tick behave like real hardware without simulating
// each internal sub-cycle.
type CPU struct {
	A, X, Y uint8
	P       uint8
	SP      uint8
	PC      uint16

	bus Bus

	cyclesRemaining  int
	additionalCycles int

	pendingIRQ bool
	pendingNMI bool
}

// New constructs a CPU wired to bus and immediately resets it, which is
// how real hardware comes up: the reset vector decides the first PC.
func New(bus Bus) *CPU {
	c := &CPU{bus: bus}
	c.Reset()
	return c
}

// Reset restores power-on-equivalent register state and vectors PC
// through VectorReset. It charges no cycles of its own; the first Tick
// after Reset fetches the first instruction.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.P = FlagUnused | FlagBreak | FlagInterruptDisable
	c.SP = 0xFD
	c.PC = c.read16(VectorReset)
	c.cyclesRemaining = 0
	c.additionalCycles = 0
	c.pendingIRQ = false
	c.pendingNMI = false
}

// GenerateIRQ requests a maskable interrupt; it takes effect at the
// next instruction boundary if the interrupt-disable flag is clear.
func (c *CPU) GenerateIRQ() { c.pendingIRQ = true }

// GenerateNMI requests a non-maskable interrupt; it always takes effect
// at the next instruction boundary.
func (c *CPU) GenerateNMI() { c.pendingNMI = true }

// Tick advances the CPU by one bus cycle. Instructions execute in a
// single burst at their leading edge; Tick then idles, decrementing
// cyclesRemaining, until the next instruction's leading edge. This
// reproduces the cycle count a real 6502 charges the bus without
// modeling each internal micro-step.
func (c *CPU) Tick() {
	if c.cyclesRemaining > 0 {
		c.cyclesRemaining--
		return
	}
	c.execute()
}

func (c *CPU) execute() {
	if c.bus.TakeNMI() {
		c.GenerateNMI()
	}

	switch {
	case c.pendingIRQ && c.P&FlagInterruptDisable == 0:
		c.pendingIRQ = false
		c.serviceInterrupt(VectorIRQ, c.PC, false)
	case c.pendingNMI:
		c.pendingNMI = false
		c.serviceInterrupt(VectorNMI, c.PC, false)
	default:
		c.dispatch()
	}

	c.additionalCycles = 0
}

func (c *CPU) dispatch() {
	opcodeByte := c.bus.Read(c.PC)
	entry := opcodeTable[opcodeByte]
	if entry.Exec == nil {
		logx.Warnf("invalid opcode 0x%02X at 0x%04X", opcodeByte, c.PC)
		c.PC++
		c.cyclesRemaining = 1
		return
	}

	c.PC++
	operandStart := c.PC
	operand := c.effectiveAddress(entry.Mode)
	entry.Exec(c, operand, entry.Mode)

	if c.PC == operandStart {
		c.PC += uint16(entry.Bytes) - 1
	}

	// Tick already charged this instruction's first cycle by calling
	// execute; cyclesRemaining only needs to cover what's left of it.
	c.cyclesRemaining = int(entry.Cycles) - 1 + c.additionalCycles
}

// serviceInterrupt pushes pushPC high/low then P, sets the
// interrupt-disable flag, and vectors PC. IRQ and NMI share this path;
// BRK calls it too, but with pushPC one past the opcode (to skip BRK's
// padding byte) and brk=true so the pushed status carries the Break
// flag — the only path that sets it.
func (c *CPU) serviceInterrupt(vector uint16, pushPC uint16, brk bool) {
	c.pushStack16(pushPC)

	status := c.P | FlagUnused
	if brk {
		status |= FlagBreak
	} else {
		status &^= FlagBreak
	}
	c.pushStack(status)

	c.P |= FlagInterruptDisable
	c.PC = c.read16(vector)
	c.cyclesRemaining = 6
}

func (c *CPU) read16(address uint16) uint16 {
	lo := uint16(c.bus.Read(address))
	hi := uint16(c.bus.Read(address + 1))
	return hi<<8 | lo
}

// readZeroPage16 reads a little-endian word entirely within the zero
// page, wrapping the high-byte fetch back to address 0 of the page
// instead of crossing into page 1. This is the documented 6502
// zero-page-pointer wraparound, exercised by the indexed-indirect and
// indirect-indexed addressing modes.
func (c *CPU) readZeroPage16(zpAddr uint8) uint16 {
	lo := uint16(c.bus.Read(uint16(zpAddr)))
	hi := uint16(c.bus.Read(uint16(zpAddr + 1)))
	return hi<<8 | lo
}

func (c *CPU) pushStack(v uint8) {
	c.bus.Write(stackPage+uint16(c.SP), v)
	c.SP--
}

func (c *CPU) popStack() uint8 {
	c.SP++
	return c.bus.Read(stackPage + uint16(c.SP))
}

func (c *CPU) pushStack16(v uint16) {
	c.pushStack(uint8(v >> 8))
	c.pushStack(uint8(v))
}

func (c *CPU) popStack16() uint16 {
	lo := uint16(c.popStack())
	hi := uint16(c.popStack())
	return hi<<8 | lo
}

func (c *CPU) setZN(v uint8) {
	if v == 0 {
		c.P |= FlagZero
	} else {
		c.P &^= FlagZero
	}
	if v&0x80 != 0 {
		c.P |= FlagNegative
	} else {
		c.P &^= FlagNegative
	}
}

// StackAddr returns the current top of the hardware stack, for
// debuggers and tests.
func (c *CPU) StackAddr() uint16 { return stackPage + uint16(c.SP) }

// CyclesRemaining exposes the pending idle count, for tests asserting
// on cycle accounting.
func (c *CPU) CyclesRemaining() int { return c.cyclesRemaining }

// PeekOpcode returns the decode table entry for the byte at PC, for
// debuggers that want to show the instruction about to execute without
// advancing anything.
func (c *CPU) PeekOpcode() Entry { return opcodeTable[c.bus.Read(c.PC)] }
