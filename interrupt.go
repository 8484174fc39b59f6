package z80

// IRQ delivers an interrupt request to the CPU (spec §4.9). Unlike a
// Step-polled core, this one never samples interrupt lines itself: the
// host calls IRQ between StepInstruction calls, exactly when it wants
// the request considered, and gets back the T-states the acceptance
// cost (0 if a maskable request was declined because IFF1 is clear).
//
// nonMaskable selects NMI; data is the byte a maskable-interrupt
// peripheral would place on the data bus during the interrupt
// acknowledge cycle. IM 0 treats it as an instruction opcode, IM 2 as
// the low byte of a vector-table pointer, and IM 1 ignores it.
func (c *CPU) IRQ(nonMaskable bool, data uint8) uint32 {
	c.instrCycles = 0

	if nonMaskable {
		c.acceptNMI()
	} else {
		if !c.reg.IFF1 {
			return 0
		}
		c.acceptMaskable(data)
	}

	n := c.instrCycles
	c.cycles += uint64(n)
	return n
}

// acceptNMI services a non-maskable interrupt: HALT is cleared, IFF1 is
// dropped (IFF2 is left alone so the handler's RETN can restore it),
// and control transfers to the fixed vector 0x0066.
func (c *CPU) acceptNMI() {
	c.halted = false
	c.reg.R = bumpR(c.reg.R)
	c.reg.IFF1 = false
	c.push16(c.reg.PC)
	c.reg.PC = 0x0066
	c.instrCycles += 11
}

// acceptMaskable services a maskable interrupt under the current
// interrupt mode. Both flip-flops are cleared; a handler that wants
// nested interrupts re-enables them itself with EI.
func (c *CPU) acceptMaskable(data uint8) {
	c.halted = false
	c.reg.R = bumpR(c.reg.R)
	c.reg.IFF1 = false
	c.reg.IFF2 = false

	switch c.reg.IM {
	case 0:
		c.dispatchMain(data)
		c.instrCycles += 2
	case 1:
		c.push16(c.reg.PC)
		c.reg.PC = 0x0038
		c.instrCycles += 13
	default: // 2
		vecAddr := uint16(c.reg.I)<<8 | uint16(data)
		lo := c.bus.ReadMem(vecAddr)
		hi := c.bus.ReadMem(vecAddr + 1)
		c.push16(c.reg.PC)
		c.reg.PC = uint16(hi)<<8 | uint16(lo)
		c.instrCycles += 19
	}
}
