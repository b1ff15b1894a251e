package cpu

// readOperand and writeOperand let ASL/LSR/ROL/ROR share one body for
// both their accumulator and memory forms, rather than duplicating the
// shift/rotate/flag logic per mode.
func (c *CPU) readOperand(address uint16, mode AddrMode) uint8 {
	if mode == Accumulator {
		return c.A
	}
	return c.bus.Read(address)
}

func (c *CPU) writeOperand(address uint16, mode AddrMode, value uint8) {
	if mode == Accumulator {
		c.A = value
		return
	}
	c.bus.Write(address, value)
}

func (c *CPU) setFlag(mask uint8, set bool) {
	if set {
		c.P |= mask
	} else {
		c.P &^= mask
	}
}

// addWithCarry implements ADC directly and SBC via the one's-complement
// trick (SBC(v) == ADC(^v)), so both share carry/overflow derivation.
func (c *CPU) addWithCarry(value uint8) {
	var carryIn uint16
	if c.P&FlagCarry != 0 {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(value) + carryIn
	result := uint8(sum)

	c.setFlag(FlagCarry, sum > 0xFF)
	c.setFlag(FlagOverflow, (^(c.A^value)&(c.A^result))&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) compare(reg, value uint8) {
	c.setFlag(FlagCarry, reg >= value)
	c.setZN(reg - value)
}

// branch evaluates a conditional branch already decoded to its target
// address by effectiveAddress(Relative). Not taken costs the base 2
// cycles only; taken costs 1 more, plus 1 more again if the branch
// lands on a different page than the instruction following it.
func (c *CPU) branch(target uint16, taken bool) {
	if !taken {
		return
	}
	nextPC := c.PC + 1
	c.additionalCycles++
	if pageCrossed(nextPC, target) {
		c.additionalCycles++
	}
	c.PC = target
}

func execADC(c *CPU, address uint16, mode AddrMode) {
	c.addWithCarry(c.bus.Read(address))
}

func execSBC(c *CPU, address uint16, mode AddrMode) {
	c.addWithCarry(^c.bus.Read(address))
}

func execAND(c *CPU, address uint16, mode AddrMode) {
	c.A &= c.bus.Read(address)
	c.setZN(c.A)
}

func execORA(c *CPU, address uint16, mode AddrMode) {
	c.A |= c.bus.Read(address)
	c.setZN(c.A)
}

func execEOR(c *CPU, address uint16, mode AddrMode) {
	c.A ^= c.bus.Read(address)
	c.setZN(c.A)
}

func execASL(c *CPU, address uint16, mode AddrMode) {
	old := c.readOperand(address, mode)
	result := old << 1
	c.writeOperand(address, mode, result)
	c.setFlag(FlagCarry, old&0x80 != 0)
	c.setZN(result)
}

func execLSR(c *CPU, address uint16, mode AddrMode) {
	old := c.readOperand(address, mode)
	result := old >> 1
	c.writeOperand(address, mode, result)
	c.setFlag(FlagCarry, old&0x01 != 0)
	c.setZN(result)
}

func execROL(c *CPU, address uint16, mode AddrMode) {
	old := c.readOperand(address, mode)
	var carryIn uint8
	if c.P&FlagCarry != 0 {
		carryIn = 1
	}
	result := old<<1 | carryIn
	c.writeOperand(address, mode, result)
	c.setFlag(FlagCarry, old&0x80 != 0)
	c.setZN(result)
}

func execROR(c *CPU, address uint16, mode AddrMode) {
	old := c.readOperand(address, mode)
	var carryIn uint8
	if c.P&FlagCarry != 0 {
		carryIn = 1
	}
	result := old>>1 | carryIn<<7
	c.writeOperand(address, mode, result)
	c.setFlag(FlagCarry, old&0x01 != 0)
	c.setZN(result)
}

func execBIT(c *CPU, address uint16, mode AddrMode) {
	v := c.bus.Read(address)
	c.setFlag(FlagZero, c.A&v == 0)
	c.P = (c.P &^ (FlagNegative | FlagOverflow)) | (v & (FlagNegative | FlagOverflow))
}

func execCMP(c *CPU, address uint16, mode AddrMode) { c.compare(c.A, c.bus.Read(address)) }
func execCPX(c *CPU, address uint16, mode AddrMode) { c.compare(c.X, c.bus.Read(address)) }
func execCPY(c *CPU, address uint16, mode AddrMode) { c.compare(c.Y, c.bus.Read(address)) }

func execBCC(c *CPU, address uint16, mode AddrMode) { c.branch(address, c.P&FlagCarry == 0) }
func execBCS(c *CPU, address uint16, mode AddrMode) { c.branch(address, c.P&FlagCarry != 0) }
func execBEQ(c *CPU, address uint16, mode AddrMode) { c.branch(address, c.P&FlagZero != 0) }
func execBNE(c *CPU, address uint16, mode AddrMode) { c.branch(address, c.P&FlagZero == 0) }
func execBMI(c *CPU, address uint16, mode AddrMode) { c.branch(address, c.P&FlagNegative != 0) }
func execBPL(c *CPU, address uint16, mode AddrMode) { c.branch(address, c.P&FlagNegative == 0) }
func execBVC(c *CPU, address uint16, mode AddrMode) { c.branch(address, c.P&FlagOverflow == 0) }
func execBVS(c *CPU, address uint16, mode AddrMode) { c.branch(address, c.P&FlagOverflow != 0) }

func execBRK(c *CPU, address uint16, mode AddrMode) {
	c.serviceInterrupt(VectorIRQ, c.PC+1, true)
}

func execCLC(c *CPU, address uint16, mode AddrMode) { c.setFlag(FlagCarry, false) }
func execCLD(c *CPU, address uint16, mode AddrMode) { c.setFlag(FlagDecimal, false) }
func execCLI(c *CPU, address uint16, mode AddrMode) { c.setFlag(FlagInterruptDisable, false) }
func execCLV(c *CPU, address uint16, mode AddrMode) { c.setFlag(FlagOverflow, false) }
func execSEC(c *CPU, address uint16, mode AddrMode) { c.setFlag(FlagCarry, true) }
func execSED(c *CPU, address uint16, mode AddrMode) { c.setFlag(FlagDecimal, true) }
func execSEI(c *CPU, address uint16, mode AddrMode) { c.setFlag(FlagInterruptDisable, true) }

func execDEC(c *CPU, address uint16, mode AddrMode) {
	v := c.bus.Read(address) - 1
	c.bus.Write(address, v)
	c.setZN(v)
}

func execINC(c *CPU, address uint16, mode AddrMode) {
	v := c.bus.Read(address) + 1
	c.bus.Write(address, v)
	c.setZN(v)
}

func execDEX(c *CPU, address uint16, mode AddrMode) { c.X--; c.setZN(c.X) }
func execDEY(c *CPU, address uint16, mode AddrMode) { c.Y--; c.setZN(c.Y) }
func execINX(c *CPU, address uint16, mode AddrMode) { c.X++; c.setZN(c.X) }
func execINY(c *CPU, address uint16, mode AddrMode) { c.Y++; c.setZN(c.Y) }

func execJMP(c *CPU, address uint16, mode AddrMode) {
	c.PC = address
}

// execJMPIndirect reproduces the original 6502's page-wrap bug: when
// the pointer's low byte is 0xFF, the high byte is fetched from the
// start of the same page rather than the next page.
func execJMPIndirect(c *CPU, address uint16, mode AddrMode) {
	ptr := address
	lo := c.bus.Read(ptr)
	hiAddr := ptr + 1
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	}
	hi := c.bus.Read(hiAddr)
	c.PC = uint16(hi)<<8 | uint16(lo)
}

func execJSR(c *CPU, address uint16, mode AddrMode) {
	c.pushStack16(c.PC + 1)
	c.PC = address
}

func execRTS(c *CPU, address uint16, mode AddrMode) {
	c.PC = c.popStack16() + 1
}

func execRTI(c *CPU, address uint16, mode AddrMode) {
	c.P = (c.popStack() &^ FlagBreak) | FlagUnused
	c.PC = c.popStack16()
}

func execLDA(c *CPU, address uint16, mode AddrMode) { c.A = c.bus.Read(address); c.setZN(c.A) }
func execLDX(c *CPU, address uint16, mode AddrMode) { c.X = c.bus.Read(address); c.setZN(c.X) }
func execLDY(c *CPU, address uint16, mode AddrMode) { c.Y = c.bus.Read(address); c.setZN(c.Y) }

func execSTA(c *CPU, address uint16, mode AddrMode) { c.bus.Write(address, c.A) }
func execSTX(c *CPU, address uint16, mode AddrMode) { c.bus.Write(address, c.X) }
func execSTY(c *CPU, address uint16, mode AddrMode) { c.bus.Write(address, c.Y) }

func execTAX(c *CPU, address uint16, mode AddrMode) { c.X = c.A; c.setZN(c.X) }
func execTAY(c *CPU, address uint16, mode AddrMode) { c.Y = c.A; c.setZN(c.Y) }
func execTSX(c *CPU, address uint16, mode AddrMode) { c.X = c.SP; c.setZN(c.X) }
func execTXA(c *CPU, address uint16, mode AddrMode) { c.A = c.X; c.setZN(c.A) }
func execTXS(c *CPU, address uint16, mode AddrMode) { c.SP = c.X } // TXS does not touch flags
func execTYA(c *CPU, address uint16, mode AddrMode) { c.A = c.Y; c.setZN(c.A) }

func execPHA(c *CPU, address uint16, mode AddrMode) { c.pushStack(c.A) }
func execPHP(c *CPU, address uint16, mode AddrMode) { c.pushStack(c.P | FlagBreak | FlagUnused) }
func execPLA(c *CPU, address uint16, mode AddrMode) { c.A = c.popStack(); c.setZN(c.A) }
func execPLP(c *CPU, address uint16, mode AddrMode) { c.P = (c.popStack() &^ FlagBreak) | FlagUnused }

func execNOP(c *CPU, address uint16, mode AddrMode) {}
