package z80

// DD/FD index-register engine (spec §4.7). FD is handled as a pure
// alias of the DD plane: dispatchIndex is called with a pointer to
// whichever of IX/IY is live, and every ddTable entry and helper here
// reads and writes through that pointer rather than naming IX
// directly, so the same table serves both prefixes.
func init() {
	registerDD()
}

// dispatchIndex consumes the byte following a DD or FD prefix and
// executes it against idx (IX or IY).
func (c *CPU) dispatchIndex(idx *uint16) {
	op := c.fetch8()
	c.reg.R = bumpR(c.reg.R)

	switch op {
	case 0xCB:
		c.execIndexCB(idx)
		return
	case 0xDD:
		c.instrCycles += 4
		c.dispatchIndex(&c.reg.IX)
		return
	case 0xFD:
		c.instrCycles += 4
		c.dispatchIndex(&c.reg.IY)
		return
	case 0x76:
		c.instrCycles += 4
		c.halt()
		return
	}

	prev := c.activeIndex
	c.activeIndex = idx
	defer func() { c.activeIndex = prev }()

	switch {
	case op >= 0x40 && op < 0x80:
		c.indexLoadGroup(op)
	case op >= 0x80 && op < 0xC0:
		c.indexAluGroup(op)
	default:
		if fn := ddTable[op]; fn != nil {
			c.instrCycles += ddCycles[op]
			fn(c)
			return
		}
		// Undocumented DD/FD opcode: the prefix is transparent on real
		// hardware (it affects no decode here), so back up and
		// re-decode this byte as a plain unprefixed instruction (§7).
		c.reg.PC = (c.reg.PC - 1) & 0xFFFF
		c.dispatchMain(c.fetch8())
	}
}

// execIndexCB implements the DDCB/FDCB composite plane: displacement
// byte, then opcode byte, operating on (IX+d)/(IY+d). For non-BIT
// sub-groups the result is written back to memory and, when the
// opcode's low 3 bits don't select 6, to the named register copy too
// (the well-documented "undocumented" double write-back).
func (c *CPU) execIndexCB(idx *uint16) {
	d := signed8(c.fetch8())
	op := c.fetch8()
	addr := uint16(int32(*idx) + int32(d))

	group := op >> 6
	bitNum := (op >> 3) & 7
	regIdx := op & 7
	value := c.bus.ReadMem(addr)

	if group == 1 {
		c.execBit(value, bitNum)
		c.instrCycles += 16
		return
	}

	result := c.cbShiftOrBit(group, bitNum, value)
	c.bus.WriteMem(addr, result)
	if regIdx != 6 {
		c.writeReg8(regIdx, result)
	}
	c.instrCycles += 19
}

// idxAddr fetches a displacement byte and returns (idx)+d.
func (c *CPU) idxAddr() uint16 {
	d := signed8(c.fetch8())
	return uint16(int32(*c.activeIndex) + int32(d))
}

// indexReg8/setIndexReg8 apply the DD/FD substitution to the standard
// 3-bit register field: B, C, D, E, and A pass through unchanged; H
// and L are replaced by the active index register's high/low byte
// (IXH/IXL or IYH/IYL, both undocumented). Callers must special-case
// index 6 themselves — it addresses (idx+d), not a register.
func (c *CPU) indexReg8(idx uint8) uint8 {
	switch idx & 7 {
	case 0:
		return c.reg.B
	case 1:
		return c.reg.C
	case 2:
		return c.reg.D
	case 3:
		return c.reg.E
	case 4:
		return uint8(*c.activeIndex >> 8)
	case 5:
		return uint8(*c.activeIndex)
	default: // 7
		return c.reg.A
	}
}

func (c *CPU) setIndexReg8(idx uint8, v uint8) {
	switch idx & 7 {
	case 0:
		c.reg.B = v
	case 1:
		c.reg.C = v
	case 2:
		c.reg.D = v
	case 3:
		c.reg.E = v
	case 4:
		*c.activeIndex = uint16(v)<<8 | (*c.activeIndex & 0x00FF)
	case 5:
		*c.activeIndex = (*c.activeIndex &^ 0x00FF) | uint16(v)
	default: // 7
		c.reg.A = v
	}
}

// indexLoadGroup handles DD/FD-prefixed opcodes in [0x40,0x80): the
// 8-bit load block, with (HL) replaced by (idx+d). The H/L->index-byte
// substitution only applies to the pure register-register forms
// (the undocumented IXH/IXL opcodes); when a displacement operand is
// present on either side, the register side is always the real H/L
// (§4.7). 0x76 (which would be LD (HL),(HL)) is HALT and is
// intercepted before this is reached.
func (c *CPU) indexLoadGroup(op uint8) {
	dst := (op >> 3) & 7
	src := op & 7

	switch {
	case src == 6:
		c.instrCycles += 15
		c.writeReg8(dst, c.bus.ReadMem(c.idxAddr()))
	case dst == 6:
		c.instrCycles += 15
		c.bus.WriteMem(c.idxAddr(), c.readReg8(src))
	default:
		c.instrCycles += 4
		c.setIndexReg8(dst, c.indexReg8(src))
	}
}

// indexAluGroup handles DD/FD-prefixed opcodes in [0x80,0xC0): ALU
// against A, with the same (HL)->(idx+d) and H/L->index-byte
// substitution as indexLoadGroup.
func (c *CPU) indexAluGroup(op uint8) {
	src := op & 7

	var v uint8
	if src == 6 {
		c.instrCycles += 15
		v = c.bus.ReadMem(c.idxAddr())
	} else {
		c.instrCycles += 4
		v = c.indexReg8(src)
	}
	c.aluOp((op>>3)&7, v)
}

// registerDD fills in the DD-plane opcodes outside [0x40,0xC0): 16-bit
// index arithmetic and loads, INC/DEC (idx+d), the undocumented 8-bit
// INC/DEC/LD on the index byte halves, and the stack/jump forms that
// address the index register directly.
func registerDD() {
	ddTable[0x09] = func(c *CPU) { *c.activeIndex = c.addHL16(*c.activeIndex, pairBC(c)) }
	ddTable[0x19] = func(c *CPU) { *c.activeIndex = c.addHL16(*c.activeIndex, pairDE(c)) }
	ddTable[0x29] = func(c *CPU) { *c.activeIndex = c.addHL16(*c.activeIndex, *c.activeIndex) }
	ddTable[0x39] = func(c *CPU) { *c.activeIndex = c.addHL16(*c.activeIndex, c.reg.SP) }

	ddTable[0x21] = func(c *CPU) { *c.activeIndex = c.fetch16() }
	ddTable[0x22] = func(c *CPU) { c.ldNNReg16(*c.activeIndex) }
	ddTable[0x2A] = func(c *CPU) { *c.activeIndex = c.ldReg16NN() }
	ddTable[0x23] = func(c *CPU) { *c.activeIndex = (*c.activeIndex + 1) & 0xFFFF }
	ddTable[0x2B] = func(c *CPU) { *c.activeIndex = (*c.activeIndex - 1) & 0xFFFF }

	ddTable[0x24] = func(c *CPU) { c.setIndexReg8(4, c.inc8(c.indexReg8(4))) }
	ddTable[0x25] = func(c *CPU) { c.setIndexReg8(4, c.dec8(c.indexReg8(4))) }
	ddTable[0x26] = func(c *CPU) { c.setIndexReg8(4, c.fetch8()) }
	ddTable[0x2C] = func(c *CPU) { c.setIndexReg8(5, c.inc8(c.indexReg8(5))) }
	ddTable[0x2D] = func(c *CPU) { c.setIndexReg8(5, c.dec8(c.indexReg8(5))) }
	ddTable[0x2E] = func(c *CPU) { c.setIndexReg8(5, c.fetch8()) }

	ddTable[0x34] = func(c *CPU) {
		addr := c.idxAddr()
		c.bus.WriteMem(addr, c.inc8(c.bus.ReadMem(addr)))
	}
	ddTable[0x35] = func(c *CPU) {
		addr := c.idxAddr()
		c.bus.WriteMem(addr, c.dec8(c.bus.ReadMem(addr)))
	}
	ddTable[0x36] = func(c *CPU) {
		addr := c.idxAddr()
		n := c.fetch8()
		c.bus.WriteMem(addr, n)
	}

	ddTable[0xE1] = func(c *CPU) { *c.activeIndex = c.pop16() }
	ddTable[0xE5] = func(c *CPU) { c.push16(*c.activeIndex) }
	ddTable[0xE3] = func(c *CPU) { c.exSPIndex(c.activeIndex) }
	ddTable[0xE9] = func(c *CPU) { c.reg.PC = *c.activeIndex }
	ddTable[0xF9] = func(c *CPU) { c.reg.SP = *c.activeIndex }
}
