package z80

// CB-plane dispatch (spec §4.6): opcode CB xx needs no table. Bits 7-6
// select the sub-group (0 = rotate/shift, 1 = BIT, 2 = RES, 3 = SET),
// bits 5-3 give bit_num (rotate/shift variant for group 0), bits 2-0
// give the operand register using the same B,C,D,E,H,L,(HL),A mapping
// as the main plane's 8-bit loads.

// execCB fetches the CB suffix byte and performs the decoded operation.
func (c *CPU) execCB() {
	xx := c.fetch8()
	c.reg.R = bumpR(c.reg.R)
	c.instrCycles += cbCycles[xx]
	group := xx >> 6
	bitNum := (xx >> 3) & 7
	regIdx := xx & 7

	value := c.readReg8(regIdx)
	if group == 1 {
		c.execBit(value, bitNum)
		return
	}
	c.writeReg8(regIdx, c.cbShiftOrBit(group, bitNum, value))
}

// cbShiftOrBit applies a group-0 rotate/shift or a group-2/3 RES/SET to
// value and returns the result. Used directly by the plain CB plane and,
// with a displacement-addressed (HL) operand, by the DDCB/FDCB plane.
func (c *CPU) cbShiftOrBit(group, bitNum uint8, value uint8) uint8 {
	switch group {
	case 0:
		switch bitNum {
		case 0:
			return c.rlc(value)
		case 1:
			return c.rrc(value)
		case 2:
			return c.rl(value)
		case 3:
			return c.rr(value)
		case 4:
			return c.sla(value)
		case 5:
			return c.sra(value)
		case 6:
			return c.sll(value)
		default:
			return c.srl(value)
		}
	case 2:
		return value &^ (1 << bitNum)
	default: // 3
		return value | (1 << bitNum)
	}
}

// execBit implements BIT n,r. Per spec §4.6/§9 this spec deliberately
// derives X/Y from n rather than from the tested operand's own bits 3
// and 5 (the behavior most Z80 references, including real hardware for
// register operands, actually show): X is set only when n==3 and the
// tested bit is set, Y only when n==5 and the tested bit is set. (HL)
// gets no special case beyond this; the real CPU's extra deviation for
// BIT n,(HL), driven by the internal MEMPTR register, is not modeled.
func (c *CPU) execBit(value, bitNum uint8) {
	set := value&(1<<bitNum) != 0
	z := !set
	c.reg.F = (c.reg.F & FlagC) | FlagH |
		bsel(z, FlagZ|FlagP, 0) |
		bsel(bitNum == 7 && set, FlagS, 0) |
		bsel(bitNum == 3 && set, Flag3, 0) |
		bsel(bitNum == 5 && set, Flag5, 0)
}
