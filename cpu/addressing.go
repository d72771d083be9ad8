package cpu

// addrMode tags how an instruction's operand address is computed. It
// is fed to resolve to compute the effective address generically for
// load/store/RMW instructions; the dispatch table stores no mode tag,
// and branches and JMP (a) do their own addressing.
type addrMode int

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeRelative
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndexedIndirect // (d,x)
	modeIndirectIndexed // (d),y
)

// fetch reads the byte at PC and advances PC past it. Every addressing
// mode below other than implied/accumulator consumes at least one
// operand byte this way.
func (c *Chip) fetch() uint8 {
	v := c.ram.Read(c.PC)
	c.PC++
	return v
}

// fetchWord reads the little-endian word at PC and advances PC past it.
func (c *Chip) fetchWord() uint16 {
	lo := uint16(c.fetch())
	hi := uint16(c.fetch())
	return hi<<8 | lo
}

// resolve computes the effective address for one of the nine
// non-branch, non-implied addressing modes, reporting whether indexing
// carried the address across a page boundary. It is the generic
// engine behind load/store/rmw instruction dispatch; modeImplied,
// modeAccumulator, modeRelative, and modeIndirect are handled by their
// own instruction-specific code instead (see instructions.go) because
// their cycle/operand semantics don't fit this shape.
func (c *Chip) resolve(mode addrMode) (addr uint16, pageCrossed bool) {
	switch mode {
	case modeImmediate:
		addr = c.PC
		c.PC++
		return addr, false

	case modeZeroPage:
		return uint16(c.fetch()), false

	case modeZeroPageX:
		zp := c.fetch()
		return uint16(zp + c.X), false

	case modeZeroPageY:
		zp := c.fetch()
		return uint16(zp + c.Y), false

	case modeAbsolute:
		return c.fetchWord(), false

	case modeAbsoluteX:
		base := c.fetchWord()
		addr = base + uint16(c.X)
		return addr, base&0xFF00 != addr&0xFF00

	case modeAbsoluteY:
		base := c.fetchWord()
		addr = base + uint16(c.Y)
		return addr, base&0xFF00 != addr&0xFF00

	case modeIndexedIndirect:
		zp := c.fetch() + c.X
		lo := uint16(c.ram.Read(uint16(zp)))
		hi := uint16(c.ram.Read(uint16(zp + 1)))
		return hi<<8 | lo, false

	case modeIndirectIndexed:
		zp := c.fetch()
		lo := uint16(c.ram.Read(uint16(zp)))
		hi := uint16(c.ram.Read(uint16(zp + 1)))
		base := hi<<8 | lo
		addr = base + uint16(c.Y)
		return addr, base&0xFF00 != addr&0xFF00
	}
	// Unreachable for the modes this function is ever called with.
	return 0, false
}

// resolveIndirect implements JMP (a)'s pointer dereference, including
// the mandatory hardware bug: if the pointer's low byte is 0xFF, the
// high byte of the target is read from pointer&0xFF00 instead of
// pointer+1, so the read does not cross into the next page.
func (c *Chip) resolveIndirect() uint16 {
	ptr := c.fetchWord()
	lo := c.ram.Read(ptr)
	var hiAddr uint16
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := c.ram.Read(hiAddr)
	return uint16(hi)<<8 | uint16(lo)
}

// load resolves mode, reads the operand byte, and hands it to fn. It
// reports one extra cycle when indexing crossed a page, matching the
// canonical timing for indexed load-style instructions (AND/ORA/EOR/
// ADC/SBC/CMP/LDA/LDX/LDY/BIT).
func load(mode addrMode, fn func(*Chip, uint8)) func(*Chip) int {
	return func(c *Chip) int {
		addr, crossed := c.resolve(mode)
		fn(c, c.ram.Read(addr))
		if crossed {
			return 1
		}
		return 0
	}
}

// store resolves mode and writes reg(c) there. Indexed store variants
// never take a page-cross penalty: their base cycle cost is already
// priced at the worst case (see spec §4.4).
func store(mode addrMode, reg func(*Chip) uint8) func(*Chip) int {
	return func(c *Chip) int {
		addr, _ := c.resolve(mode)
		c.ram.Write(addr, reg(c))
		return 0
	}
}

// rmw resolves mode, reads the operand, replaces it with fn's result,
// and writes the new value back. RMW instructions are always priced at
// their worst-case cycle count, so no page-cross penalty is reported.
func rmw(mode addrMode, fn func(*Chip, uint8) uint8) func(*Chip) int {
	return func(c *Chip) int {
		addr, _ := c.resolve(mode)
		c.ram.Write(addr, fn(c, c.ram.Read(addr)))
		return 0
	}
}

// implied wraps a no-operand instruction body so it fits the dispatch
// table's func(*Chip) int shape.
func implied(fn func(*Chip)) func(*Chip) int {
	return func(c *Chip) int {
		fn(c)
		return 0
	}
}
