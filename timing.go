package z80

// Cycle-cost tables (spec §6): one 256-entry table per plane, each
// holding the base T-state cost of that opcode byte. "Base" means the
// not-taken cost for conditional transfers (JR/CALL/RET cc, DJNZ) —
// their kernels in ops_branch.go add the extra T-states a taken branch
// costs on top — and, for the CB/ED/DD planes, the cost of everything
// from the plane's own opcode byte onward: the preceding prefix byte's
// own 4 T-states are already carried in mainCycles[0xCB/0xED/0xDD/0xFD]
// and added by dispatchMain before the suffix is even fetched. FD
// reuses ddCycles verbatim, matching its reuse of ddTable.
//
// Costs are the well-known public Z80 timings (Zilog's documented
// figures plus the widely published undocumented-opcode figures); the
// DDCB/FDCB composite plane and the repeat-instruction "taken" extras
// are costed directly at their call sites in index.go and block.go
// rather than through a table, since their shape doesn't fit one.
var (
	mainCycles [256]uint32
	cbCycles   [256]uint32
	edCycles   [256]uint32
	ddCycles   [256]uint32
)

func init() {
	for i := range mainCycles {
		mainCycles[i] = 4
	}

	// INC rr/DEC rr/ADD HL,rr across all four register-pair rows.
	for _, op := range [8]uint8{0x03, 0x0B, 0x13, 0x1B, 0x23, 0x2B, 0x33, 0x3B} {
		mainCycles[op] = 6
	}
	for _, op := range [4]uint8{0x09, 0x19, 0x29, 0x39} {
		mainCycles[op] = 11
	}
	// LD rr,nn.
	for _, op := range [4]uint8{0x01, 0x11, 0x21, 0x31} {
		mainCycles[op] = 10
	}
	// LD (BC/DE),A and LD A,(BC/DE).
	for _, op := range [4]uint8{0x02, 0x0A, 0x12, 0x1A} {
		mainCycles[op] = 7
	}
	// LD r,n (8-bit immediate loads), excluding 0x36 (LD (HL),n, set below).
	for _, op := range [7]uint8{0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x3E} {
		mainCycles[op] = 7
	}
	mainCycles[0x36] = 10
	// JR d / JR cc,d / DJNZ d (base, not-taken) costs.
	mainCycles[0x18] = 12
	mainCycles[0x10] = 8
	for _, op := range [4]uint8{0x20, 0x28, 0x30, 0x38} {
		mainCycles[op] = 7
	}
	mainCycles[0x22] = 16
	mainCycles[0x2A] = 16
	mainCycles[0x32] = 13
	mainCycles[0x3A] = 13
	mainCycles[0x34] = 11
	mainCycles[0x35] = 11

	// [0x40,0x80): LD r,r'. 4 T unless either side is (HL) (7 T); 0x76
	// is HALT, costed the same as any other opcode byte (4).
	for op := 0x40; op < 0x80; op++ {
		o := uint8(op)
		if o == 0x76 {
			continue
		}
		if o&7 == 6 || (o>>3)&7 == 6 {
			mainCycles[o] = 7
		}
	}
	// [0x80,0xC0): ALU against A. 4 T unless the operand is (HL) (7 T).
	for op := 0x80; op < 0xC0; op++ {
		o := uint8(op)
		if o&7 == 6 {
			mainCycles[o] = 7
		}
	}

	// RET cc (base, not-taken), POP rr, PUSH rr, JP cc,nn (always
	// fetches nn so there's no taken/not-taken split), CALL cc,nn (base,
	// not-taken), RST.
	for _, op := range [8]uint8{0xC0, 0xC8, 0xD0, 0xD8, 0xE0, 0xE8, 0xF0, 0xF8} {
		mainCycles[op] = 5
	}
	for _, op := range [4]uint8{0xC1, 0xD1, 0xE1, 0xF1} {
		mainCycles[op] = 10
	}
	for _, op := range [4]uint8{0xC5, 0xD5, 0xE5, 0xF5} {
		mainCycles[op] = 11
	}
	for _, op := range [8]uint8{0xC2, 0xCA, 0xD2, 0xDA, 0xE2, 0xEA, 0xF2, 0xFA} {
		mainCycles[op] = 10
	}
	for _, op := range [8]uint8{0xC4, 0xCC, 0xD4, 0xDC, 0xE4, 0xEC, 0xF4, 0xFC} {
		mainCycles[op] = 10
	}
	for _, op := range [8]uint8{0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF} {
		mainCycles[op] = 11
	}
	// ALU A,n immediates.
	for _, op := range [8]uint8{0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE, 0xF6, 0xFE} {
		mainCycles[op] = 7
	}
	mainCycles[0xC3] = 10 // JP nn
	mainCycles[0xC9] = 10 // RET
	mainCycles[0xCD] = 17 // CALL nn
	mainCycles[0xD9] = 4  // EXX
	mainCycles[0xE9] = 4  // JP (HL)
	mainCycles[0xEB] = 4  // EX DE,HL
	mainCycles[0xE3] = 19 // EX (SP),HL
	mainCycles[0xF9] = 6  // LD SP,HL
	mainCycles[0xD3] = 11 // OUT (n),A
	mainCycles[0xDB] = 11 // IN A,(n)
	// The CB/ED/DD/FD entries carry only the prefix byte's own fetch
	// cost; execCB/execED/dispatchIndex add the rest via cbCycles/
	// edCycles/ddCycles once the suffix byte is known.
	mainCycles[0xCB] = 4
	mainCycles[0xED] = 4
	mainCycles[0xDD] = 4
	mainCycles[0xFD] = 4

	for i := 0; i < 256; i++ {
		group := uint8(i) >> 6
		regIdx := uint8(i) & 7
		switch {
		case group == 1 && regIdx == 6: // BIT n,(HL)
			cbCycles[i] = 8
		case group == 1: // BIT n,r
			cbCycles[i] = 4
		case regIdx == 6: // rotate/shift/RES/SET (HL)
			cbCycles[i] = 11
		default: // rotate/shift/RES/SET r
			cbCycles[i] = 4
		}
	}

	for i := range edCycles {
		edCycles[i] = 4 // undocumented ED xx: 8 T total, 4 beyond the prefix.
	}
	for row := 0; row < 8; row++ {
		base := 0x40 + row*8
		edCycles[base+0x00] = 8  // IN r,(C)
		edCycles[base+0x01] = 8  // OUT (C),r
		edCycles[base+0x02] = 11 // SBC/ADC HL,rr
		edCycles[base+0x03] = 16 // LD (nn),rr / LD rr,(nn)
		edCycles[base+0x04] = 4  // NEG
		edCycles[base+0x05] = 10 // RETN/RETI
		edCycles[base+0x06] = 4  // IM x
	}
	// Row 7 ends in 0x07: only rows 0-3 carry LD I,A/R,A/A,I/A,R there;
	// rows 4-7 carry RRD, RLD, and two undocumented NOPs instead.
	for _, op := range [4]uint8{0x47, 0x4F, 0x57, 0x5F} {
		edCycles[op] = 5
	}
	edCycles[0x67] = 14 // RRD
	edCycles[0x6F] = 14 // RLD
	for _, op := range [16]uint8{0xA0, 0xA1, 0xA2, 0xA3, 0xA8, 0xA9, 0xAA, 0xAB,
		0xB0, 0xB1, 0xB2, 0xB3, 0xB8, 0xB9, 0xBA, 0xBB} {
		edCycles[op] = 12
	}

	for i := range ddCycles {
		ddCycles[i] = 4 // DD/FD opcode outside [0x40,0xC0) and unassigned: treated like a plain opcode after the prefix.
	}
	for _, op := range [4]uint8{0x09, 0x19, 0x29, 0x39} {
		ddCycles[op] = 11
	}
	ddCycles[0x21] = 10
	ddCycles[0x22] = 16
	ddCycles[0x2A] = 16
	ddCycles[0x23] = 6
	ddCycles[0x2B] = 6
	for _, op := range [4]uint8{0x24, 0x25, 0x2C, 0x2D} {
		ddCycles[op] = 4
	}
	ddCycles[0x26] = 7
	ddCycles[0x2E] = 7
	ddCycles[0x34] = 19
	ddCycles[0x35] = 19
	ddCycles[0x36] = 15
	ddCycles[0xE1] = 10
	ddCycles[0xE5] = 11
	ddCycles[0xE3] = 19
	ddCycles[0xE9] = 4
	ddCycles[0xF9] = 6
}
