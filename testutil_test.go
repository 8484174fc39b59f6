package z80

import "testing"

// testBus is a flat 64KB memory and 64KB-port I/O bus for testing.
type testBus struct {
	mem [65536]byte
	io  [65536]byte
}

func (b *testBus) ReadMem(addr uint16) uint8       { return b.mem[addr] }
func (b *testBus) WriteMem(addr uint16, val uint8) { b.mem[addr] = val }
func (b *testBus) ReadIO(port uint16) uint8         { return b.io[port] }
func (b *testBus) WriteIO(port uint16, val uint8)   { b.io[port] = val }

// z80State captures the full programmer-visible state for a test case.
// RAM entries are [address, byte_value] pairs.
type z80State struct {
	A, F                   uint8
	B, C, D, E, H, L       uint8
	A2, F2                 uint8
	B2, C2, D2, E2, H2, L2 uint8
	IX, IY                 uint16
	SP, PC                 uint16
	I, R                   uint8
	IFF1, IFF2             bool
	IM                     uint8
	RAM                    [][2]int
	Halted                 bool
	Cycles                 int // expected T-states (0 = don't check)
}

func (s z80State) toRegisters() Registers {
	return Registers{
		A: s.A, F: s.F, B: s.B, C: s.C, D: s.D, E: s.E, H: s.H, L: s.L,
		A2: s.A2, F2: s.F2, B2: s.B2, C2: s.C2, D2: s.D2, E2: s.E2, H2: s.H2, L2: s.L2,
		IX: s.IX, IY: s.IY, SP: s.SP, PC: s.PC,
		I: s.I, R: s.R, IFF1: s.IFF1, IFF2: s.IFF2, IM: s.IM,
	}
}

// runTest loads initial state, executes one StepInstruction, and
// compares the resulting register state (and any RAM entries supplied
// in want.RAM) against want.
func runTest(t *testing.T, init, want z80State) {
	t.Helper()

	bus := &testBus{}
	for _, entry := range init.RAM {
		bus.mem[uint16(entry[0])] = byte(entry[1])
	}

	cpu := New(bus)
	cpu.SetRegisters(init.toRegisters())

	gotCycles := cpu.StepInstruction()

	if want.Halted {
		if !cpu.Halted() {
			t.Errorf("expected CPU to be halted, but it is not")
		}
		return
	}
	if cpu.Halted() {
		t.Errorf("CPU unexpectedly halted")
		return
	}

	reg := cpu.Registers()
	wantReg := want.toRegisters()
	if reg != wantReg {
		t.Errorf("registers = %+v, want %+v", reg, wantReg)
	}

	for _, entry := range want.RAM {
		addr := uint16(entry[0])
		wantVal := byte(entry[1])
		if got := bus.mem[addr]; got != wantVal {
			t.Errorf("RAM[0x%04X] = 0x%02X, want 0x%02X", addr, got, wantVal)
		}
	}

	if want.Cycles > 0 && int(gotCycles) != want.Cycles {
		t.Errorf("cycles = %d, want %d", gotCycles, want.Cycles)
	}
}

// newTestCPU creates a CPU over a fresh testBus with code written at
// addr, ready to execute from PC=addr.
func newTestCPU(addr uint16, code []byte) (*CPU, *testBus) {
	bus := &testBus{}
	copy(bus.mem[addr:], code)
	cpu := New(bus)
	reg := cpu.Registers()
	reg.PC = addr
	cpu.SetRegisters(reg)
	return cpu, bus
}
