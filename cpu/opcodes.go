package cpu

// instruction is one row of the dispatch table: a fixed base cycle
// count and the closure that performs addressing, the operation, and
// reports any extra (page-cross or branch-taken) cycles.
type instruction struct {
	mnemonic string
	cycles   int
	exec     func(*Chip) int
}

// opcodeTable is indexed directly by opcode byte. Entries with a nil
// exec are the 105 byte values with no documented instruction; Tick
// treats reading one of them as UnknownOpcode rather than panicking.
var opcodeTable [256]instruction

type opcodeEntry struct {
	op       uint8
	mnemonic string
	cycles   int
	exec     func(*Chip) int
}

func init() {
	for _, e := range opcodeEntries {
		opcodeTable[e.op] = instruction{mnemonic: e.mnemonic, cycles: e.cycles, exec: e.exec}
	}
}

var opcodeEntries = []opcodeEntry{
	// --- ADC ---
	{0x69, "ADC", 2, load(modeImmediate, opADC)},
	{0x65, "ADC", 3, load(modeZeroPage, opADC)},
	{0x75, "ADC", 4, load(modeZeroPageX, opADC)},
	{0x6D, "ADC", 4, load(modeAbsolute, opADC)},
	{0x7D, "ADC", 4, load(modeAbsoluteX, opADC)},
	{0x79, "ADC", 4, load(modeAbsoluteY, opADC)},
	{0x61, "ADC", 6, load(modeIndexedIndirect, opADC)},
	{0x71, "ADC", 5, load(modeIndirectIndexed, opADC)},

	// --- AND ---
	{0x29, "AND", 2, load(modeImmediate, opAND)},
	{0x25, "AND", 3, load(modeZeroPage, opAND)},
	{0x35, "AND", 4, load(modeZeroPageX, opAND)},
	{0x2D, "AND", 4, load(modeAbsolute, opAND)},
	{0x3D, "AND", 4, load(modeAbsoluteX, opAND)},
	{0x39, "AND", 4, load(modeAbsoluteY, opAND)},
	{0x21, "AND", 6, load(modeIndexedIndirect, opAND)},
	{0x31, "AND", 5, load(modeIndirectIndexed, opAND)},

	// --- ASL ---
	{0x0A, "ASL", 2, aslAcc},
	{0x06, "ASL", 5, rmw(modeZeroPage, opASL)},
	{0x16, "ASL", 6, rmw(modeZeroPageX, opASL)},
	{0x0E, "ASL", 6, rmw(modeAbsolute, opASL)},
	{0x1E, "ASL", 7, rmw(modeAbsoluteX, opASL)},

	// --- Branches ---
	{0x90, "BCC", 2, bcc},
	{0xB0, "BCS", 2, bcs},
	{0xF0, "BEQ", 2, beq},
	{0x30, "BMI", 2, bmi},
	{0xD0, "BNE", 2, bne},
	{0x10, "BPL", 2, bpl},
	{0x50, "BVC", 2, bvc},
	{0x70, "BVS", 2, bvs},

	// --- BIT ---
	{0x24, "BIT", 3, load(modeZeroPage, opBIT)},
	{0x2C, "BIT", 4, load(modeAbsolute, opBIT)},

	// --- BRK ---
	{0x00, "BRK", 7, brk},

	// --- Clear/Set flags ---
	{0x18, "CLC", 2, implied(opCLC)},
	{0xD8, "CLD", 2, implied(opCLD)},
	{0x58, "CLI", 2, implied(opCLI)},
	{0xB8, "CLV", 2, implied(opCLV)},
	{0x38, "SEC", 2, implied(opSEC)},
	{0xF8, "SED", 2, implied(opSED)},
	{0x78, "SEI", 2, implied(opSEI)},

	// --- CMP ---
	{0xC9, "CMP", 2, load(modeImmediate, opCMP)},
	{0xC5, "CMP", 3, load(modeZeroPage, opCMP)},
	{0xD5, "CMP", 4, load(modeZeroPageX, opCMP)},
	{0xCD, "CMP", 4, load(modeAbsolute, opCMP)},
	{0xDD, "CMP", 4, load(modeAbsoluteX, opCMP)},
	{0xD9, "CMP", 4, load(modeAbsoluteY, opCMP)},
	{0xC1, "CMP", 6, load(modeIndexedIndirect, opCMP)},
	{0xD1, "CMP", 5, load(modeIndirectIndexed, opCMP)},

	// --- CPX / CPY ---
	{0xE0, "CPX", 2, load(modeImmediate, opCPX)},
	{0xE4, "CPX", 3, load(modeZeroPage, opCPX)},
	{0xEC, "CPX", 4, load(modeAbsolute, opCPX)},
	{0xC0, "CPY", 2, load(modeImmediate, opCPY)},
	{0xC4, "CPY", 3, load(modeZeroPage, opCPY)},
	{0xCC, "CPY", 4, load(modeAbsolute, opCPY)},

	// --- DEC / DEX / DEY ---
	{0xC6, "DEC", 5, rmw(modeZeroPage, opDEC)},
	{0xD6, "DEC", 6, rmw(modeZeroPageX, opDEC)},
	{0xCE, "DEC", 6, rmw(modeAbsolute, opDEC)},
	{0xDE, "DEC", 7, rmw(modeAbsoluteX, opDEC)},
	{0xCA, "DEX", 2, implied(opDEX)},
	{0x88, "DEY", 2, implied(opDEY)},

	// --- EOR ---
	{0x49, "EOR", 2, load(modeImmediate, opEOR)},
	{0x45, "EOR", 3, load(modeZeroPage, opEOR)},
	{0x55, "EOR", 4, load(modeZeroPageX, opEOR)},
	{0x4D, "EOR", 4, load(modeAbsolute, opEOR)},
	{0x5D, "EOR", 4, load(modeAbsoluteX, opEOR)},
	{0x59, "EOR", 4, load(modeAbsoluteY, opEOR)},
	{0x41, "EOR", 6, load(modeIndexedIndirect, opEOR)},
	{0x51, "EOR", 5, load(modeIndirectIndexed, opEOR)},

	// --- INC / INX / INY ---
	{0xE6, "INC", 5, rmw(modeZeroPage, opINC)},
	{0xF6, "INC", 6, rmw(modeZeroPageX, opINC)},
	{0xEE, "INC", 6, rmw(modeAbsolute, opINC)},
	{0xFE, "INC", 7, rmw(modeAbsoluteX, opINC)},
	{0xE8, "INX", 2, implied(opINX)},
	{0xC8, "INY", 2, implied(opINY)},

	// --- JMP / JSR / RTS ---
	{0x4C, "JMP", 3, jmp},
	{0x6C, "JMP", 5, jmpIndirect},
	{0x20, "JSR", 6, jsr},
	{0x60, "RTS", 6, rts},

	// --- LDA / LDX / LDY ---
	{0xA9, "LDA", 2, load(modeImmediate, opLDA)},
	{0xA5, "LDA", 3, load(modeZeroPage, opLDA)},
	{0xB5, "LDA", 4, load(modeZeroPageX, opLDA)},
	{0xAD, "LDA", 4, load(modeAbsolute, opLDA)},
	{0xBD, "LDA", 4, load(modeAbsoluteX, opLDA)},
	{0xB9, "LDA", 4, load(modeAbsoluteY, opLDA)},
	{0xA1, "LDA", 6, load(modeIndexedIndirect, opLDA)},
	{0xB1, "LDA", 5, load(modeIndirectIndexed, opLDA)},

	{0xA2, "LDX", 2, load(modeImmediate, opLDX)},
	{0xA6, "LDX", 3, load(modeZeroPage, opLDX)},
	{0xB6, "LDX", 4, load(modeZeroPageY, opLDX)},
	{0xAE, "LDX", 4, load(modeAbsolute, opLDX)},
	{0xBE, "LDX", 4, load(modeAbsoluteY, opLDX)},

	{0xA0, "LDY", 2, load(modeImmediate, opLDY)},
	{0xA4, "LDY", 3, load(modeZeroPage, opLDY)},
	{0xB4, "LDY", 4, load(modeZeroPageX, opLDY)},
	{0xAC, "LDY", 4, load(modeAbsolute, opLDY)},
	{0xBC, "LDY", 4, load(modeAbsoluteX, opLDY)},

	// --- LSR ---
	{0x4A, "LSR", 2, lsrAcc},
	{0x46, "LSR", 5, rmw(modeZeroPage, opLSR)},
	{0x56, "LSR", 6, rmw(modeZeroPageX, opLSR)},
	{0x4E, "LSR", 6, rmw(modeAbsolute, opLSR)},
	{0x5E, "LSR", 7, rmw(modeAbsoluteX, opLSR)},

	// --- NOP ---
	{0xEA, "NOP", 2, nop},

	// --- ORA ---
	{0x09, "ORA", 2, load(modeImmediate, opORA)},
	{0x05, "ORA", 3, load(modeZeroPage, opORA)},
	{0x15, "ORA", 4, load(modeZeroPageX, opORA)},
	{0x0D, "ORA", 4, load(modeAbsolute, opORA)},
	{0x1D, "ORA", 4, load(modeAbsoluteX, opORA)},
	{0x19, "ORA", 4, load(modeAbsoluteY, opORA)},
	{0x01, "ORA", 6, load(modeIndexedIndirect, opORA)},
	{0x11, "ORA", 5, load(modeIndirectIndexed, opORA)},

	// --- Stack ---
	{0x48, "PHA", 3, implied(opPHA)},
	{0x08, "PHP", 3, implied(opPHP)},
	{0x68, "PLA", 4, implied(opPLA)},
	{0x28, "PLP", 4, implied(opPLP)},

	// --- ROL / ROR ---
	{0x2A, "ROL", 2, rolAcc},
	{0x26, "ROL", 5, rmw(modeZeroPage, opROL)},
	{0x36, "ROL", 6, rmw(modeZeroPageX, opROL)},
	{0x2E, "ROL", 6, rmw(modeAbsolute, opROL)},
	{0x3E, "ROL", 7, rmw(modeAbsoluteX, opROL)},

	{0x6A, "ROR", 2, rorAcc},
	{0x66, "ROR", 5, rmw(modeZeroPage, opROR)},
	{0x76, "ROR", 6, rmw(modeZeroPageX, opROR)},
	{0x6E, "ROR", 6, rmw(modeAbsolute, opROR)},
	{0x7E, "ROR", 7, rmw(modeAbsoluteX, opROR)},

	// --- RTI ---
	{0x40, "RTI", 6, rti},

	// --- SBC ---
	{0xE9, "SBC", 2, load(modeImmediate, opSBC)},
	{0xE5, "SBC", 3, load(modeZeroPage, opSBC)},
	{0xF5, "SBC", 4, load(modeZeroPageX, opSBC)},
	{0xED, "SBC", 4, load(modeAbsolute, opSBC)},
	{0xFD, "SBC", 4, load(modeAbsoluteX, opSBC)},
	{0xF9, "SBC", 4, load(modeAbsoluteY, opSBC)},
	{0xE1, "SBC", 6, load(modeIndexedIndirect, opSBC)},
	{0xF1, "SBC", 5, load(modeIndirectIndexed, opSBC)},

	// --- STA / STX / STY ---
	{0x85, "STA", 3, store(modeZeroPage, regA)},
	{0x95, "STA", 4, store(modeZeroPageX, regA)},
	{0x8D, "STA", 4, store(modeAbsolute, regA)},
	{0x9D, "STA", 5, store(modeAbsoluteX, regA)},
	{0x99, "STA", 5, store(modeAbsoluteY, regA)},
	{0x81, "STA", 6, store(modeIndexedIndirect, regA)},
	{0x91, "STA", 6, store(modeIndirectIndexed, regA)},

	{0x86, "STX", 3, store(modeZeroPage, regX)},
	{0x96, "STX", 4, store(modeZeroPageY, regX)},
	{0x8E, "STX", 4, store(modeAbsolute, regX)},

	{0x84, "STY", 3, store(modeZeroPage, regY)},
	{0x94, "STY", 4, store(modeZeroPageX, regY)},
	{0x8C, "STY", 4, store(modeAbsolute, regY)},

	// --- Register transfers ---
	{0xAA, "TAX", 2, implied(opTAX)},
	{0xA8, "TAY", 2, implied(opTAY)},
	{0xBA, "TSX", 2, implied(opTSX)},
	{0x8A, "TXA", 2, implied(opTXA)},
	{0x9A, "TXS", 2, implied(opTXS)},
	{0x98, "TYA", 2, implied(opTYA)},
}
