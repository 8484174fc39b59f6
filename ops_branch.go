package z80

// Control-transfer kernels (spec §4.1/§6). The dispatch tables carry the
// "not taken" (or no extra) base cost for every branch opcode; each
// kernel here adds the extra T-states a taken conditional transfer
// costs on top of that base, per spec §6's convention.

// jp performs an unconditional absolute jump.
func (c *CPU) jp() {
	c.reg.PC = c.fetch16()
}

// jpCond performs JP cc,nn. The target is always fetched; only the
// jump itself is conditional, so there is no extra-cost branch: JP cc,nn
// costs the same whether or not it is taken.
func (c *CPU) jpCond(cc uint8) {
	nn := c.fetch16()
	if c.testCondition(cc) {
		c.reg.PC = nn
	}
}

// jr performs an unconditional relative jump.
func (c *CPU) jr() {
	d := signed8(c.fetch8())
	c.reg.PC = uint16(int32(c.reg.PC) + int32(d))
}

// jrCond performs JR cc,d. Taken adds 5 T-states over the base
// not-taken cost carried in the table.
func (c *CPU) jrCond(cc uint8) {
	d := signed8(c.fetch8())
	if c.testCondition(cc) {
		c.reg.PC = uint16(int32(c.reg.PC) + int32(d))
		c.instrCycles += 5
	}
}

// djnz decrements B and branches relative if the result is nonzero.
// Taken adds 5 T-states over the base not-taken cost.
func (c *CPU) djnz() {
	d := signed8(c.fetch8())
	c.reg.B--
	if c.reg.B != 0 {
		c.reg.PC = uint16(int32(c.reg.PC) + int32(d))
		c.instrCycles += 5
	}
}

// call performs an unconditional CALL: push the return address, jump.
func (c *CPU) call() {
	nn := c.fetch16()
	c.push16(c.reg.PC)
	c.reg.PC = nn
}

// callCond performs CALL cc,nn. The target is always fetched; taken
// adds 7 T-states over the base not-taken cost.
func (c *CPU) callCond(cc uint8) {
	nn := c.fetch16()
	if c.testCondition(cc) {
		c.push16(c.reg.PC)
		c.reg.PC = nn
		c.instrCycles += 7
	}
}

// ret performs an unconditional RET.
func (c *CPU) ret() {
	c.reg.PC = c.pop16()
}

// retCond performs RET cc. Taken adds 6 T-states over the base
// not-taken cost.
func (c *CPU) retCond(cc uint8) {
	if c.testCondition(cc) {
		c.reg.PC = c.pop16()
		c.instrCycles += 6
	}
}

// rst pushes the return address and jumps to one of the eight fixed
// page-zero restart vectors (p is already the byte address, e.g. 0x00,
// 0x08, ..., 0x38).
func (c *CPU) rst(p uint16) {
	c.push16(c.reg.PC)
	c.reg.PC = p
}
