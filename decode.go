package z80

// opFunc is the handler signature for a single Z80 instruction. The
// opcode byte that selected it (and, for ED/DD/FD, only that final
// byte) has already been consumed from the bus when called.
type opFunc func(*CPU)

// mainTable holds the sparse subset of the unprefixed plane that isn't
// reached by the direct bit-field decode in dispatchMain (§4.2): the
// 8-bit load group [0x40,0x80) and the ALU-against-A group [0x80,0xC0)
// are computed, not tabled.
var mainTable [256]opFunc

// edTable holds the ED-prefixed plane. A nil entry is an undocumented
// ED opcode and falls through to the two-byte-NOP rule of spec §7.
var edTable [256]opFunc

// ddTable holds the DD-prefixed plane (operating on IX). The FD prefix
// reuses this table verbatim: its entries work through the CPU's
// active-index pointer, which points at IY instead of IX for the
// duration of an FD-prefixed instruction (§4.7) — see index.go. A nil entry means the prefix byte is
// transparent: back up and decode the next byte as a plain instruction.
var ddTable [256]opFunc
