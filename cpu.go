// Package z80 implements a Zilog Z80 8-bit CPU instruction interpreter.
//
// The Z80 is an 8-bit CISC processor with:
//   - A main register bank (A, F, B, C, D, E, H, L) and a shadow bank
//     (A', F', B', C', D', E', H', L') exchangeable via EX AF,AF' and EXX.
//   - Two 16-bit index registers (IX, IY), also addressable as byte
//     halves (IXH/IXL/IYH/IYL) via undocumented opcodes.
//   - An 8-bit interrupt-vector register (I) and a 7-bit refresh
//     counter (R) with a sticky top bit.
//   - A 16-bit stack pointer (SP) and program counter (PC).
//   - Three interrupt modes (0, 1, 2) gated by two interrupt
//     flip-flops (IFF1, IFF2).
//
// This package is the instruction interpreter only: it decodes and
// executes opcodes against a caller-supplied Bus and reports T-states.
// Memory, I/O devices, scheduling, and state serialization beyond the
// opaque snapshot pair are the host's responsibility.
package z80

// Bus provides 8-bit memory and I/O access for the CPU. All operations
// are total: any address or port must return some byte, and writes may
// be a no-op (e.g. ROM) but never fail.
type Bus interface {
	ReadMem(addr uint16) uint8
	WriteMem(addr uint16, val uint8)
	ReadIO(port uint16) uint8
	WriteIO(port uint16, val uint8)
}

// Registers holds the programmer-visible state of the Z80.
type Registers struct {
	A, F uint8
	B, C uint8
	D, E uint8
	H, L uint8

	A2, F2 uint8 // shadow A', F'
	B2, C2 uint8 // shadow B', C'
	D2, E2 uint8 // shadow D', E'
	H2, L2 uint8 // shadow H', L'

	IX, IY uint16
	SP, PC uint16

	I, R uint8

	IFF1, IFF2 bool
	IM         uint8 // 0, 1, or 2
}

// CPU is the Z80 processor core.
type CPU struct {
	reg Registers
	bus Bus

	halted    bool
	pendingDI bool
	pendingEI bool

	// activeIndex points at IX or IY for the duration of a DD/FD-prefixed
	// instruction (see index.go); nil outside of one.
	activeIndex *uint16

	cycles      uint64 // running T-state total since last Reset
	instrCycles uint32 // accumulator for the instruction being retired
}

// New creates a CPU wired to the given bus and performs a reset.
func New(bus Bus) *CPU {
	c := &CPU{bus: bus}
	c.Reset()
	return c
}

// Reset sets the deterministic post-power-on state (spec §4.1). All
// registers not listed here are intentionally left unchanged.
func (c *CPU) Reset() {
	c.reg.SP = 0xDFF0
	c.reg.PC = 0
	c.reg.A = 0
	c.reg.F = 0
	c.reg.R = 0
	c.reg.IM = 0
	c.reg.IFF1 = false
	c.reg.IFF2 = false
	c.halted = false
	c.pendingDI = false
	c.pendingEI = false
	c.instrCycles = 0
	c.cycles = 0
}

// Halted reports whether the CPU is in the HALT state.
func (c *CPU) Halted() bool { return c.halted }

// IFF1 reports the state of interrupt flip-flop 1.
func (c *CPU) IFF1() bool { return c.reg.IFF1 }

// IFF2 reports the state of interrupt flip-flop 2.
func (c *CPU) IFF2() bool { return c.reg.IFF2 }

// IM returns the current interrupt mode (0, 1, or 2).
func (c *CPU) IM() uint8 { return c.reg.IM }

// Cycles returns the total T-states retired since the last Reset.
func (c *CPU) Cycles() uint64 { return c.cycles }

// Registers returns a copy of the current register state.
func (c *CPU) Registers() Registers { return c.reg }

// SetRegisters overwrites the full register state directly, without
// performing a reset. Intended for tests and for hosts restoring a
// previously captured state.
func (c *CPU) SetRegisters(r Registers) { c.reg = r }

// bumpR advances the refresh counter, preserving its sticky top bit.
func bumpR(r uint8) uint8 {
	return (r & 0x80) | ((r + 1) & 0x7F)
}

// StepInstruction retires exactly one instruction (or one HALT tick if
// halted) and returns the number of T-states consumed.
func (c *CPU) StepInstruction() uint32 {
	if c.halted {
		c.cycles++
		return 1
	}

	di, ei := c.pendingDI, c.pendingEI
	c.pendingDI, c.pendingEI = false, false

	c.instrCycles = 0
	c.reg.R = bumpR(c.reg.R)

	op := c.fetch8()
	c.dispatchMain(op)

	if di {
		c.reg.IFF1, c.reg.IFF2 = false, false
	}
	if ei {
		c.reg.IFF1, c.reg.IFF2 = true, true
	}

	n := c.instrCycles
	c.cycles += uint64(n)
	return n
}

// fetch8 reads the byte at PC and advances PC by one, wrapping mod 2^16.
func (c *CPU) fetch8() uint8 {
	v := c.bus.ReadMem(c.reg.PC)
	c.reg.PC = (c.reg.PC + 1) & 0xFFFF
	return v
}

// fetch16 reads a little-endian word at PC and advances PC by two.
func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

// signed8 interprets a byte as a signed 8-bit displacement.
func signed8(d uint8) int16 {
	if d >= 0x80 {
		return int16(d) - 0x100
	}
	return int16(d)
}

func (c *CPU) push16(val uint16) {
	c.reg.SP = (c.reg.SP - 1) & 0xFFFF
	c.bus.WriteMem(c.reg.SP, uint8(val>>8))
	c.reg.SP = (c.reg.SP - 1) & 0xFFFF
	c.bus.WriteMem(c.reg.SP, uint8(val))
}

func (c *CPU) pop16() uint16 {
	lo := c.bus.ReadMem(c.reg.SP)
	c.reg.SP = (c.reg.SP + 1) & 0xFFFF
	hi := c.bus.ReadMem(c.reg.SP)
	c.reg.SP = (c.reg.SP + 1) & 0xFFFF
	return uint16(hi)<<8 | uint16(lo)
}
