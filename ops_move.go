package z80

// Load-group kernels (spec §4.3) beyond the direct reg8/reg16 table
// helpers in ea.go: memory-indirect and 16-bit loads, stack ops, and
// the dedicated (BC)/(DE) accumulator loads.

func (c *CPU) ldNNA() {
	addr := c.fetch16()
	c.bus.WriteMem(addr, c.reg.A)
}

func (c *CPU) ldANN() {
	addr := c.fetch16()
	c.reg.A = c.bus.ReadMem(addr)
}

func (c *CPU) ldNNHL() {
	addr := c.fetch16()
	c.bus.WriteMem(addr, c.reg.L)
	c.bus.WriteMem(addr+1, c.reg.H)
}

func (c *CPU) ldHLNN() {
	addr := c.fetch16()
	c.reg.L = c.bus.ReadMem(addr)
	c.reg.H = c.bus.ReadMem(addr + 1)
}

// ldNNReg16/ldReg16NN implement LD (nn),rr and LD rr,(nn) for a 16-bit
// value: the ED-extended forms for BC, DE, HL and SP, and the DD/FD
// forms for IX/IY. HL's unprefixed forms are ldNNHL/ldHLNN above.
func (c *CPU) ldNNReg16(v uint16) {
	addr := c.fetch16()
	c.bus.WriteMem(addr, uint8(v))
	c.bus.WriteMem(addr+1, uint8(v>>8))
}

func (c *CPU) ldReg16NN() uint16 {
	addr := c.fetch16()
	lo := c.bus.ReadMem(addr)
	hi := c.bus.ReadMem(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) ldBCA() { c.bus.WriteMem(pairBC(c), c.reg.A) }
func (c *CPU) ldDEA() { c.bus.WriteMem(pairDE(c), c.reg.A) }
func (c *CPU) ldABC() { c.reg.A = c.bus.ReadMem(pairBC(c)) }
func (c *CPU) ldADE() { c.reg.A = c.bus.ReadMem(pairDE(c)) }

func (c *CPU) push(v uint16) { c.push16(v) }
func (c *CPU) pop() uint16   { return c.pop16() }

func (c *CPU) pushAF() uint16 { return uint16(c.reg.A)<<8 | uint16(c.reg.F) }
func (c *CPU) popAF(v uint16) {
	c.reg.A = uint8(v >> 8)
	c.reg.F = uint8(v)
}
