package cpu

// AddrMode identifies one of the 6502's addressing modes.
type AddrMode uint8

const (
	Implied AddrMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
)

// effectiveAddress computes the operand address for mode, consuming the
// operand bytes at PC (without advancing PC — dispatch advances it once,
// after Exec runs, based on the instruction's declared byte count).
// Indexed absolute and (indirect),Y modes charge an extra cycle when the
// indexed address crosses a page boundary; branch instructions account
// for their own page crossings separately in branch().
func (c *CPU) effectiveAddress(mode AddrMode) uint16 {
	switch mode {
	case Implied, Accumulator:
		return 0

	case Immediate:
		return c.PC

	case ZeroPage:
		return uint16(c.bus.Read(c.PC))

	case ZeroPageX:
		return uint16(c.bus.Read(c.PC) + c.X)

	case ZeroPageY:
		return uint16(c.bus.Read(c.PC) + c.Y)

	case Absolute:
		return c.read16(c.PC)

	case AbsoluteX:
		base := c.read16(c.PC)
		effective := base + uint16(c.X)
		if pageCrossed(base, effective) {
			c.additionalCycles++
		}
		return effective

	case AbsoluteY:
		base := c.read16(c.PC)
		effective := base + uint16(c.Y)
		if pageCrossed(base, effective) {
			c.additionalCycles++
		}
		return effective

	case Indirect:
		// Only JMP uses this mode. The helper returns the pointer
		// address itself; execJMPIndirect dereferences it so that it
		// can reproduce the page-wrap bug.
		return c.read16(c.PC)

	case IndirectX:
		ptr := c.bus.Read(c.PC) + c.X
		return c.readZeroPage16(ptr)

	case IndirectY:
		ptr := c.bus.Read(c.PC)
		base := c.readZeroPage16(ptr)
		effective := base + uint16(c.Y)
		if pageCrossed(base, effective) {
			c.additionalCycles++
		}
		return effective

	case Relative:
		// c.PC here points at the branch offset byte, i.e. one past
		// the opcode. The branch target is relative to the address
		// of the instruction *after* this one, which is PC+1.
		offset := int8(c.bus.Read(c.PC))
		return c.PC + 1 + uint16(int16(offset))

	default:
		panic("cpu: invalid addressing mode")
	}
}

func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}
