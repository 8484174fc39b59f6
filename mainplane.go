package z80

// Main-plane dispatch (spec §4.1/§4.2). The 8-bit load block
// [0x40,0x80) and the ALU-against-A block [0x80,0xC0) are decoded
// directly from the opcode's bit fields rather than tabled, since both
// are fully regular; everything else comes from mainTable, built once
// by registerMainTable, or is routed to a prefixed plane.
func init() {
	registerMainTable()
}

// dispatchMain executes one unprefixed opcode (already fetched) to
// completion, including following any CB/ED/DD/FD prefix.
func (c *CPU) dispatchMain(op uint8) {
	c.instrCycles += mainCycles[op]

	switch op {
	case 0x76:
		c.halt()
		return
	case 0xCB:
		c.execCB()
		return
	case 0xED:
		c.execED()
		return
	case 0xDD:
		c.dispatchIndex(&c.reg.IX)
		return
	case 0xFD:
		c.dispatchIndex(&c.reg.IY)
		return
	}

	switch {
	case op >= 0x40 && op < 0x80:
		c.writeReg8((op>>3)&7, c.readReg8(op&7))
	case op >= 0x80 && op < 0xC0:
		c.aluOp((op>>3)&7, c.readReg8(op&7))
	default:
		if fn := mainTable[op]; fn != nil {
			fn(c)
		}
	}
}

// execED fetches the ED suffix byte and dispatches it through edTable;
// an unassigned entry is an undocumented ED opcode, which real hardware
// treats as an 8 T-state two-byte NOP (spec §7) — the table lookup
// simply does nothing in that case, and timing.go's edCycles carries
// the flat cost for every byte value.
func (c *CPU) execED() {
	op := c.fetch8()
	c.reg.R = bumpR(c.reg.R)
	c.instrCycles += edCycles[op]
	if fn := edTable[op]; fn != nil {
		fn(c)
	}
}

func registerMainTable() {
	mainTable[0x00] = func(c *CPU) {}
	mainTable[0x01] = func(c *CPU) { setPairBC(c, c.fetch16()) }
	mainTable[0x02] = (*CPU).ldBCA
	mainTable[0x03] = func(c *CPU) { setPairBC(c, (pairBC(c)+1)&0xFFFF) }
	mainTable[0x04] = func(c *CPU) { c.reg.B = c.inc8(c.reg.B) }
	mainTable[0x05] = func(c *CPU) { c.reg.B = c.dec8(c.reg.B) }
	mainTable[0x06] = func(c *CPU) { c.reg.B = c.fetch8() }
	mainTable[0x07] = (*CPU).rlca
	mainTable[0x08] = (*CPU).exAFAF
	mainTable[0x09] = func(c *CPU) { setPairHL(c, c.addHL16(pairHL(c), pairBC(c))) }
	mainTable[0x0A] = (*CPU).ldABC
	mainTable[0x0B] = func(c *CPU) { setPairBC(c, (pairBC(c)-1)&0xFFFF) }
	mainTable[0x0C] = func(c *CPU) { c.reg.C = c.inc8(c.reg.C) }
	mainTable[0x0D] = func(c *CPU) { c.reg.C = c.dec8(c.reg.C) }
	mainTable[0x0E] = func(c *CPU) { c.reg.C = c.fetch8() }
	mainTable[0x0F] = (*CPU).rrca

	mainTable[0x10] = (*CPU).djnz
	mainTable[0x11] = func(c *CPU) { setPairDE(c, c.fetch16()) }
	mainTable[0x12] = (*CPU).ldDEA
	mainTable[0x13] = func(c *CPU) { setPairDE(c, (pairDE(c)+1)&0xFFFF) }
	mainTable[0x14] = func(c *CPU) { c.reg.D = c.inc8(c.reg.D) }
	mainTable[0x15] = func(c *CPU) { c.reg.D = c.dec8(c.reg.D) }
	mainTable[0x16] = func(c *CPU) { c.reg.D = c.fetch8() }
	mainTable[0x17] = (*CPU).rla
	mainTable[0x18] = (*CPU).jr
	mainTable[0x19] = func(c *CPU) { setPairHL(c, c.addHL16(pairHL(c), pairDE(c))) }
	mainTable[0x1A] = (*CPU).ldADE
	mainTable[0x1B] = func(c *CPU) { setPairDE(c, (pairDE(c)-1)&0xFFFF) }
	mainTable[0x1C] = func(c *CPU) { c.reg.E = c.inc8(c.reg.E) }
	mainTable[0x1D] = func(c *CPU) { c.reg.E = c.dec8(c.reg.E) }
	mainTable[0x1E] = func(c *CPU) { c.reg.E = c.fetch8() }
	mainTable[0x1F] = (*CPU).rra

	mainTable[0x20] = func(c *CPU) { c.jrCond(0) }
	mainTable[0x21] = func(c *CPU) { setPairHL(c, c.fetch16()) }
	mainTable[0x22] = (*CPU).ldNNHL
	mainTable[0x23] = func(c *CPU) { setPairHL(c, (pairHL(c)+1)&0xFFFF) }
	mainTable[0x24] = func(c *CPU) { c.reg.H = c.inc8(c.reg.H) }
	mainTable[0x25] = func(c *CPU) { c.reg.H = c.dec8(c.reg.H) }
	mainTable[0x26] = func(c *CPU) { c.reg.H = c.fetch8() }
	mainTable[0x27] = (*CPU).daa
	mainTable[0x28] = func(c *CPU) { c.jrCond(1) }
	mainTable[0x29] = func(c *CPU) { setPairHL(c, c.addHL16(pairHL(c), pairHL(c))) }
	mainTable[0x2A] = (*CPU).ldHLNN
	mainTable[0x2B] = func(c *CPU) { setPairHL(c, (pairHL(c)-1)&0xFFFF) }
	mainTable[0x2C] = func(c *CPU) { c.reg.L = c.inc8(c.reg.L) }
	mainTable[0x2D] = func(c *CPU) { c.reg.L = c.dec8(c.reg.L) }
	mainTable[0x2E] = func(c *CPU) { c.reg.L = c.fetch8() }
	mainTable[0x2F] = func(c *CPU) {
		c.reg.A = ^c.reg.A
		c.reg.F = (c.reg.F & (FlagS | FlagZ | FlagP | FlagC)) | FlagH | FlagN | (c.reg.A & (Flag3 | Flag5))
	}

	mainTable[0x30] = func(c *CPU) { c.jrCond(2) }
	mainTable[0x31] = func(c *CPU) { c.reg.SP = c.fetch16() }
	mainTable[0x32] = (*CPU).ldNNA
	mainTable[0x33] = func(c *CPU) { c.reg.SP = (c.reg.SP + 1) & 0xFFFF }
	mainTable[0x34] = func(c *CPU) {
		addr := pairHL(c)
		c.bus.WriteMem(addr, c.inc8(c.bus.ReadMem(addr)))
	}
	mainTable[0x35] = func(c *CPU) {
		addr := pairHL(c)
		c.bus.WriteMem(addr, c.dec8(c.bus.ReadMem(addr)))
	}
	mainTable[0x36] = func(c *CPU) { c.bus.WriteMem(pairHL(c), c.fetch8()) }
	mainTable[0x37] = (*CPU).scf
	mainTable[0x38] = func(c *CPU) { c.jrCond(3) }
	mainTable[0x39] = func(c *CPU) { setPairHL(c, c.addHL16(pairHL(c), c.reg.SP)) }
	mainTable[0x3A] = (*CPU).ldANN
	mainTable[0x3B] = func(c *CPU) { c.reg.SP = (c.reg.SP - 1) & 0xFFFF }
	mainTable[0x3C] = func(c *CPU) { c.reg.A = c.inc8(c.reg.A) }
	mainTable[0x3D] = func(c *CPU) { c.reg.A = c.dec8(c.reg.A) }
	mainTable[0x3E] = func(c *CPU) { c.reg.A = c.fetch8() }
	mainTable[0x3F] = (*CPU).ccf

	// [0x40,0xC0) is decoded directly in dispatchMain.

	for row := uint8(0); row < 8; row++ {
		cc := row
		base := uint8(0xC0) + row*8
		mainTable[base+0x00] = func(c *CPU) { c.retCond(cc) }
		mainTable[base+0x02] = func(c *CPU) { c.jpCond(cc) }
		mainTable[base+0x04] = func(c *CPU) { c.callCond(cc) }
	}
	mainTable[0xC7] = func(c *CPU) { c.rst(0x00) }
	mainTable[0xCF] = func(c *CPU) { c.rst(0x08) }
	mainTable[0xD7] = func(c *CPU) { c.rst(0x10) }
	mainTable[0xDF] = func(c *CPU) { c.rst(0x18) }
	mainTable[0xE7] = func(c *CPU) { c.rst(0x20) }
	mainTable[0xEF] = func(c *CPU) { c.rst(0x28) }
	mainTable[0xF7] = func(c *CPU) { c.rst(0x30) }
	mainTable[0xFF] = func(c *CPU) { c.rst(0x38) }

	for _, op := range [4]uint8{0xC6, 0xCE, 0xD6, 0xDE} {
		o := op
		mainTable[o] = func(c *CPU) { c.aluOp((o>>3)&7, c.fetch8()) }
	}
	for _, op := range [4]uint8{0xE6, 0xEE, 0xF6, 0xFE} {
		o := op
		mainTable[o] = func(c *CPU) { c.aluOp((o>>3)&7, c.fetch8()) }
	}

	mainTable[0xC1] = func(c *CPU) { setPairBC(c, c.pop()) }
	mainTable[0xD1] = func(c *CPU) { setPairDE(c, c.pop()) }
	mainTable[0xE1] = func(c *CPU) { setPairHL(c, c.pop()) }
	mainTable[0xF1] = func(c *CPU) { c.popAF(c.pop()) }
	mainTable[0xC5] = func(c *CPU) { c.push(pairBC(c)) }
	mainTable[0xD5] = func(c *CPU) { c.push(pairDE(c)) }
	mainTable[0xE5] = func(c *CPU) { c.push(pairHL(c)) }
	mainTable[0xF5] = func(c *CPU) { c.push(c.pushAF()) }

	mainTable[0xC3] = (*CPU).jp
	mainTable[0xC9] = (*CPU).ret
	mainTable[0xCD] = (*CPU).call

	mainTable[0xD3] = func(c *CPU) { n := c.fetch8(); c.bus.WriteIO(uint16(c.reg.A)<<8|uint16(n), c.reg.A) }
	mainTable[0xDB] = func(c *CPU) { n := c.fetch8(); c.reg.A = c.bus.ReadIO(uint16(c.reg.A)<<8 | uint16(n)) }
	mainTable[0xD9] = (*CPU).exx

	mainTable[0xE3] = (*CPU).exSPHL
	mainTable[0xE9] = func(c *CPU) { c.reg.PC = pairHL(c) }
	mainTable[0xEB] = (*CPU).exDEHL

	mainTable[0xF3] = (*CPU).di
	mainTable[0xF9] = func(c *CPU) { c.reg.SP = pairHL(c) }
	mainTable[0xFB] = (*CPU).ei
}
