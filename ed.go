package z80

// ED-plane table (spec §4.7/§4.8/§4.9). Opcodes not assigned here are
// left nil in edTable and fall through to the undocumented two-byte-NOP
// rule applied by dispatchMain/execED (spec §7).
func init() {
	registerED()
}

func registerED() {
	for row := uint8(0); row < 8; row++ {
		base := 0x40 + row*8
		r := row
		edTable[base+0x00] = func(c *CPU) { c.inC(r) }
		edTable[base+0x01] = func(c *CPU) { c.outC(r) }
	}

	edTable[0x42] = func(c *CPU) { setPairHL(c, c.sbcHL16(pairHL(c), pairBC(c))) }
	edTable[0x52] = func(c *CPU) { setPairHL(c, c.sbcHL16(pairHL(c), pairDE(c))) }
	edTable[0x62] = func(c *CPU) { setPairHL(c, c.sbcHL16(pairHL(c), pairHL(c))) }
	edTable[0x72] = func(c *CPU) { setPairHL(c, c.sbcHL16(pairHL(c), c.reg.SP)) }

	edTable[0x4A] = func(c *CPU) { setPairHL(c, c.adcHL16(pairHL(c), pairBC(c))) }
	edTable[0x5A] = func(c *CPU) { setPairHL(c, c.adcHL16(pairHL(c), pairDE(c))) }
	edTable[0x6A] = func(c *CPU) { setPairHL(c, c.adcHL16(pairHL(c), pairHL(c))) }
	edTable[0x7A] = func(c *CPU) { setPairHL(c, c.adcHL16(pairHL(c), c.reg.SP)) }

	edTable[0x43] = func(c *CPU) { c.ldNNReg16(pairBC(c)) }
	edTable[0x53] = func(c *CPU) { c.ldNNReg16(pairDE(c)) }
	edTable[0x63] = func(c *CPU) { c.ldNNReg16(pairHL(c)) }
	edTable[0x73] = func(c *CPU) { c.ldNNReg16(c.reg.SP) }

	edTable[0x4B] = func(c *CPU) { setPairBC(c, c.ldReg16NN()) }
	edTable[0x5B] = func(c *CPU) { setPairDE(c, c.ldReg16NN()) }
	edTable[0x6B] = func(c *CPU) { setPairHL(c, c.ldReg16NN()) }
	edTable[0x7B] = func(c *CPU) { c.reg.SP = c.ldReg16NN() }

	for _, op := range [4]uint8{0x44, 0x4C, 0x54, 0x5C} {
		edTable[op] = (*CPU).neg
	}
	for _, op := range [4]uint8{0x64, 0x6C, 0x74, 0x7C} {
		edTable[op] = (*CPU).neg
	}

	// RETN occupies every row-5 slot except 0x4D, which is RETI; the
	// rest are undocumented duplicates of RETN.
	for _, op := range [7]uint8{0x45, 0x55, 0x5D, 0x65, 0x6D, 0x75, 0x7D} {
		edTable[op] = (*CPU).retn
	}
	edTable[0x4D] = (*CPU).reti

	edTable[0x46] = func(c *CPU) { c.setIM(0) }
	edTable[0x4E] = func(c *CPU) { c.setIM(0) }
	edTable[0x66] = func(c *CPU) { c.setIM(0) }
	edTable[0x6E] = func(c *CPU) { c.setIM(0) }
	edTable[0x56] = func(c *CPU) { c.setIM(1) }
	edTable[0x76] = func(c *CPU) { c.setIM(1) }
	edTable[0x5E] = func(c *CPU) { c.setIM(2) }
	edTable[0x7E] = func(c *CPU) { c.setIM(2) }

	edTable[0x47] = (*CPU).ldIA
	edTable[0x4F] = (*CPU).ldRA
	edTable[0x57] = (*CPU).ldAI
	edTable[0x5F] = (*CPU).ldAR

	edTable[0x67] = (*CPU).rrd
	edTable[0x6F] = (*CPU).rld

	// ED70/ED71 are the undocumented "IN F,(C)" (flags-only, discards
	// the byte read) and "OUT (C),0" forms; regIdx 6 selects the
	// discard/zero path in inC/outC.
	edTable[0x70] = func(c *CPU) { c.inC(6) }
	edTable[0x71] = func(c *CPU) { c.outC(6) }

	edTable[0xA0] = (*CPU).ldi
	edTable[0xA1] = (*CPU).cpi
	edTable[0xA2] = (*CPU).ini
	edTable[0xA3] = (*CPU).outi
	edTable[0xA8] = (*CPU).ldd
	edTable[0xA9] = (*CPU).cpd
	edTable[0xAA] = (*CPU).ind
	edTable[0xAB] = (*CPU).outd
	edTable[0xB0] = (*CPU).ldir
	edTable[0xB1] = (*CPU).cpir
	edTable[0xB2] = (*CPU).inir
	edTable[0xB3] = (*CPU).otir
	edTable[0xB8] = (*CPU).lddr
	edTable[0xB9] = (*CPU).cpdr
	edTable[0xBA] = (*CPU).indr
	edTable[0xBB] = (*CPU).otdr
}

// inC implements IN r,(C): regIdx 6 is the undocumented flags-only form
// that reads the port and sets flags without storing the byte anywhere.
func (c *CPU) inC(regIdx uint8) {
	v := c.bus.ReadIO(pairBC(c))
	if regIdx != 6 {
		*c.reg8(regIdx) = v
	}
	c.reg.F = (c.reg.F & FlagC) | sz53pTable[v]
}

// outC implements OUT (C),r: regIdx 6 is the undocumented form that
// always outputs 0.
func (c *CPU) outC(regIdx uint8) {
	var v uint8
	if regIdx != 6 {
		v = *c.reg8(regIdx)
	}
	c.bus.WriteIO(pairBC(c), v)
}
