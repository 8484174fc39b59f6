package z80

// CPU-control and miscellaneous kernels (spec §4.1/§4.9): register
// exchanges, interrupt-mode/flip-flop control, the I/R special loads,
// and the two accumulator-flag opcodes CCF/SCF.

func (c *CPU) halt() { c.halted = true }

// exAFAF swaps the main and shadow AF pairs.
func (c *CPU) exAFAF() {
	c.reg.A, c.reg.A2 = c.reg.A2, c.reg.A
	c.reg.F, c.reg.F2 = c.reg.F2, c.reg.F
}

// exx swaps the main and shadow BC/DE/HL triples.
func (c *CPU) exx() {
	c.reg.B, c.reg.B2 = c.reg.B2, c.reg.B
	c.reg.C, c.reg.C2 = c.reg.C2, c.reg.C
	c.reg.D, c.reg.D2 = c.reg.D2, c.reg.D
	c.reg.E, c.reg.E2 = c.reg.E2, c.reg.E
	c.reg.H, c.reg.H2 = c.reg.H2, c.reg.H
	c.reg.L, c.reg.L2 = c.reg.L2, c.reg.L
}

// exDEHL swaps DE and HL.
func (c *CPU) exDEHL() {
	c.reg.D, c.reg.H = c.reg.H, c.reg.D
	c.reg.E, c.reg.L = c.reg.L, c.reg.E
}

// exSPHL implements EX (SP),HL: swap HL with the word at (SP).
func (c *CPU) exSPHL() {
	lo := c.bus.ReadMem(c.reg.SP)
	hi := c.bus.ReadMem(c.reg.SP + 1)
	c.bus.WriteMem(c.reg.SP, c.reg.L)
	c.bus.WriteMem(c.reg.SP+1, c.reg.H)
	c.reg.L, c.reg.H = lo, hi
}

// exSPIndex implements EX (SP),IX / EX (SP),IY for the given index
// register pointer, used by the DD/FD plane.
func (c *CPU) exSPIndex(ix *uint16) {
	lo := c.bus.ReadMem(c.reg.SP)
	hi := c.bus.ReadMem(c.reg.SP + 1)
	c.bus.WriteMem(c.reg.SP, uint8(*ix))
	c.bus.WriteMem(c.reg.SP+1, uint8(*ix>>8))
	*ix = uint16(hi)<<8 | uint16(lo)
}

// di/ei set the deferred-commit flags consumed at the end of
// StepInstruction; the actual IFF1/IFF2 change only takes effect after
// the instruction following DI/EI retires (spec §4.9).
func (c *CPU) di() { c.pendingDI = true }
func (c *CPU) ei() { c.pendingEI = true }

func (c *CPU) setIM(mode uint8) { c.reg.IM = mode }

// retn returns from a non-maskable interrupt, restoring IFF1 from IFF2.
func (c *CPU) retn() {
	c.reg.PC = c.pop16()
	c.reg.IFF1 = c.reg.IFF2
}

// reti returns from a maskable interrupt. Z80 hardware treats RETI
// identically to RET except for the bus signal it emits to daisy-chain
// peripherals, which this bus-agnostic core does not model.
func (c *CPU) reti() {
	c.reg.PC = c.pop16()
}

// ldAI/ldAR implement LD A,I and LD A,R: P/V is loaded from IFF2 at the
// moment of execution, not tracked continuously (spec §4.9).
func (c *CPU) ldAI() {
	c.reg.A = c.reg.I
	c.setIRFlags()
}

func (c *CPU) ldAR() {
	c.reg.A = c.reg.R
	c.setIRFlags()
}

func (c *CPU) setIRFlags() {
	c.reg.F = (c.reg.F & FlagC) | sz53Table[c.reg.A] | bsel(c.reg.IFF2, FlagP, 0)
}

func (c *CPU) ldIA() { c.reg.I = c.reg.A }
func (c *CPU) ldRA() { c.reg.R = c.reg.A }

// ccf complements the carry flag; the old carry is preserved in H
// (spec's adopted deviation: X/Y come from A, not from a notional
// internal "WZ" latch).
func (c *CPU) ccf() {
	oldC := c.reg.F & FlagC
	c.reg.F = (c.reg.F & (FlagS | FlagZ | FlagP)) | (c.reg.A & (Flag3 | Flag5)) | bsel(oldC != 0, FlagH, 0) | bsel(oldC == 0, FlagC, 0)
}

// scf sets the carry flag.
func (c *CPU) scf() {
	c.reg.F = (c.reg.F & (FlagS | FlagZ | FlagP)) | (c.reg.A & (Flag3 | Flag5)) | FlagC
}
