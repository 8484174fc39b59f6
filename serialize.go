package z80

import (
	"encoding/binary"
	"errors"
)

// cpuSerializeVersion is incremented whenever the binary layout changes.
const cpuSerializeVersion = 1

// cpuSerializeSize is the number of bytes produced by CPU.Serialize.
// Update this constant whenever the binary layout changes.
const cpuSerializeSize = 45

// SerializeSize returns the number of bytes needed for Serialize.
func (c *CPU) SerializeSize() int { return cpuSerializeSize }

// Serialize writes the full CPU state into buf, which must be at least
// SerializeSize() bytes. Returns an error if the buffer is too small.
// The bus is not included.
func (c *CPU) Serialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("z80: serialize buffer too small")
	}

	buf[0] = cpuSerializeVersion
	be := binary.BigEndian
	off := 1

	for _, b := range []uint8{
		c.reg.A, c.reg.F, c.reg.B, c.reg.C, c.reg.D, c.reg.E, c.reg.H, c.reg.L,
		c.reg.A2, c.reg.F2, c.reg.B2, c.reg.C2, c.reg.D2, c.reg.E2, c.reg.H2, c.reg.L2,
		c.reg.I, c.reg.R,
	} {
		buf[off] = b
		off++
	}

	be.PutUint16(buf[off:], c.reg.IX)
	off += 2
	be.PutUint16(buf[off:], c.reg.IY)
	off += 2
	be.PutUint16(buf[off:], c.reg.SP)
	off += 2
	be.PutUint16(buf[off:], c.reg.PC)
	off += 2

	buf[off] = boolByte(c.reg.IFF1)
	off++
	buf[off] = boolByte(c.reg.IFF2)
	off++
	buf[off] = c.reg.IM
	off++

	buf[off] = boolByte(c.halted)
	off++
	buf[off] = boolByte(c.pendingDI)
	off++
	buf[off] = boolByte(c.pendingEI)
	off++

	be.PutUint64(buf[off:], c.cycles)
	off += 8
	be.PutUint32(buf[off:], c.instrCycles)
	off += 4

	return nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Deserialize restores CPU state from buf, which must be at least
// SerializeSize() bytes. Returns an error if the buffer is too small or
// the version does not match. The bus is left unchanged.
func (c *CPU) Deserialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("z80: deserialize buffer too small")
	}
	if buf[0] != cpuSerializeVersion {
		return errors.New("z80: unsupported serialize version")
	}

	be := binary.BigEndian
	off := 1

	fields := []*uint8{
		&c.reg.A, &c.reg.F, &c.reg.B, &c.reg.C, &c.reg.D, &c.reg.E, &c.reg.H, &c.reg.L,
		&c.reg.A2, &c.reg.F2, &c.reg.B2, &c.reg.C2, &c.reg.D2, &c.reg.E2, &c.reg.H2, &c.reg.L2,
		&c.reg.I, &c.reg.R,
	}
	for _, p := range fields {
		*p = buf[off]
		off++
	}

	c.reg.IX = be.Uint16(buf[off:])
	off += 2
	c.reg.IY = be.Uint16(buf[off:])
	off += 2
	c.reg.SP = be.Uint16(buf[off:])
	off += 2
	c.reg.PC = be.Uint16(buf[off:])
	off += 2

	c.reg.IFF1 = buf[off] != 0
	off++
	c.reg.IFF2 = buf[off] != 0
	off++
	c.reg.IM = buf[off]
	off++

	c.halted = buf[off] != 0
	off++
	c.pendingDI = buf[off] != 0
	off++
	c.pendingEI = buf[off] != 0
	off++

	c.cycles = be.Uint64(buf[off:])
	off += 8
	c.instrCycles = be.Uint32(buf[off:])
	off += 4

	return nil
}
