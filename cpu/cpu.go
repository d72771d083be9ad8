// Package cpu implements the architectural state and instruction
// interpreter for the documented MOS 6502 instruction set: registers,
// flags, the addressing-mode resolver, the stack and interrupt
// protocols, and the cycle accounting that separates clock ticks from
// instruction retirement.
package cpu

import (
	"fmt"
	"log"

	"github.com/retrosix/6502/irq"
	"github.com/retrosix/6502/memory"
)

// Variant distinguishes the small set of ADC/SBC behavior differences
// between 6502 family parts. Neither variant implements BCD (decimal)
// mode in this core (adc ignores the D flag), so today the two behave
// identically; the enum exists so that distinction is explicit in
// caller code and the constructor has a place to grow true CMOS/decimal
// support later without an API break.
type Variant int

const (
	// NMOS is the original 6502 used in most home computers.
	NMOS Variant = iota
	// Ricoh is the 2A03/2A07 variant used in the NES, which never
	// implemented BCD mode in hardware.
	Ricoh
)

// Flag bits of the P (status) register, LSB to MSB.
type Flag uint8

const (
	FlagCarry     Flag = 1 << iota // C
	FlagZero                       // Z
	FlagInterrupt                  // I
	FlagDecimal                    // D
	FlagBreak                      // B
	FlagUnused                     // U, always reads as 1
	FlagOverflow                   // V
	FlagNegative                   // N
)

const resetFlags = uint8(FlagInterrupt | FlagUnused)

// InvalidCPUState reports an internal invariant violation — a tick
// count or addressing state that cannot occur if Tick/Run are driven
// correctly. It is not used for unrecognized opcodes; see UnknownOpcode.
type InvalidCPUState struct {
	Reason string
}

func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// UnknownOpcode describes an opcode byte with no entry in the
// documented instruction table. Tick does not treat this as fatal: it
// logs the event and leaves CPU state untouched for that tick so the
// same byte is refetched next time (see Chip.Tick).
type UnknownOpcode struct {
	Opcode uint8
	PC     uint16
}

func (e UnknownOpcode) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

// Chip is a MOS 6502 register file plus the fetch/decode/execute loop
// needed to run it against a memory.Bank.
type Chip struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	P  uint8
	PC uint16

	cyclesRemaining int

	variant Variant
	ram     memory.Bank
	logger  *log.Logger
}

// Option configures a Chip at construction time.
type Option func(*Chip)

// WithVariant selects the ADC/SBC behavior variant. Defaults to NMOS.
func WithVariant(v Variant) Option {
	return func(c *Chip) { c.variant = v }
}

// WithLogger overrides the logger used to report unknown opcodes.
// Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(c *Chip) { c.logger = l }
}

// New creates a Chip wired to ram. The chip is not reset; call Reset
// before the first Tick to load PC from the reset vector and establish
// the canonical power-on register values (this mirrors how the driver
// surface separates construction from reset per the external
// interface contract).
func New(ram memory.Bank, opts ...Option) *Chip {
	c := &Chip{
		ram:    ram,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reset loads the canonical post-reset state: A, X, Y cleared, SP set
// to 0xFD, flags set to I|U, PC loaded from the reset vector, and 7
// cycles queued to model the hardware reset sequence's duration.
func (c *Chip) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.P = resetFlags
	c.PC = memory.ReadWord(c.ram, irq.Reset.Addr())
	c.cyclesRemaining = 7
}

// CyclesRemaining reports the number of clock ticks still pending for
// the instruction currently in flight. It is zero exactly between
// instructions.
func (c *Chip) CyclesRemaining() int {
	return c.cyclesRemaining
}

// Tick advances the CPU by one clock cycle. When cyclesRemaining is
// zero it fetches and executes the next opcode, pricing the
// instruction's total cycle cost (base plus any page-cross or
// branch-taken penalty) into cyclesRemaining; otherwise it simply
// drains one cycle from the instruction already in flight.
//
// An opcode byte with no table entry is reported via the configured
// logger and otherwise ignored for this tick: PC and all registers are
// left exactly as they were, so the next Tick call re-fetches the same
// byte. This is the only error condition Tick recognizes;
// InvalidCPUState is reserved for internal invariant failures
// and is not expected during normal operation.
func (c *Chip) Tick() error {
	if c.cyclesRemaining == 0 {
		op := c.ram.Read(c.PC)
		inst := &opcodeTable[op]
		if inst.exec == nil {
			c.logger.Printf("%s", UnknownOpcode{op, c.PC})
			return nil
		}
		c.PC++
		extra := inst.exec(c)
		c.cyclesRemaining = inst.cycles + extra
	}
	if c.cyclesRemaining > 0 {
		c.cyclesRemaining--
	}
	return nil
}

// Run invokes Tick exactly n times. This is the sole externally
// observable advancement method and is what cycle-accounting tests
// drive against.
func (c *Chip) Run(n int) error {
	for i := 0; i < n; i++ {
		if err := c.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// IRQ raises a maskable interrupt. It is a no-op if the interrupt
// disable flag is set; otherwise it pushes PC and P, disables further
// interrupts, loads PC from the IRQ/BRK vector, and queues 7 cycles.
func (c *Chip) IRQ() {
	if c.P&uint8(FlagInterrupt) != 0 {
		return
	}
	c.pushWord(c.PC)
	c.push((c.P &^ uint8(FlagBreak)) | uint8(FlagUnused))
	c.P |= uint8(FlagInterrupt)
	c.PC = memory.ReadWord(c.ram, irq.IRQ.Addr())
	c.cyclesRemaining += 7
}

// NMI raises a non-maskable interrupt unconditionally: pushes PC and
// P, loads PC from the NMI vector, and queues 8 cycles.
func (c *Chip) NMI() {
	c.pushWord(c.PC)
	c.push((c.P &^ uint8(FlagBreak)) | uint8(FlagUnused))
	c.P |= uint8(FlagInterrupt)
	c.PC = memory.ReadWord(c.ram, irq.NMI.Addr())
	c.cyclesRemaining += 8
}

// ReadByte reads a single byte off the bus without affecting CPU state.
func (c *Chip) ReadByte(addr uint16) uint8 { return c.ram.Read(addr) }

// WriteByte writes a single byte to the bus without affecting CPU state.
func (c *Chip) WriteByte(addr uint16, v uint8) { c.ram.Write(addr, v) }

// ReadWord reads a little-endian word off the bus.
func (c *Chip) ReadWord(addr uint16) uint16 { return memory.ReadWord(c.ram, addr) }

// WriteWord writes a little-endian word to the bus.
func (c *Chip) WriteWord(addr uint16, v uint16) { memory.WriteWord(c.ram, addr, v) }

// GetFlag reports whether the given status bit is set.
func (c *Chip) GetFlag(f Flag) bool {
	return c.P&uint8(f) != 0
}

// SetFlag sets or clears the given status bit.
func (c *Chip) SetFlag(f Flag, v bool) {
	if v {
		c.P |= uint8(f)
		return
	}
	c.P &^= uint8(f)
}

// StackAddr returns the current effective stack address (page 0x01
// plus SP).
func (c *Chip) StackAddr() uint16 {
	return 0x0100 | uint16(c.SP)
}

// StackPushByte pushes a byte onto the stack and decrements SP.
func (c *Chip) StackPushByte(v uint8) { c.push(v) }

// StackPullByte increments SP and pops a byte off the stack.
func (c *Chip) StackPullByte() uint8 { return c.pull() }

func (c *Chip) push(v uint8) {
	c.ram.Write(c.StackAddr(), v)
	c.SP--
}

func (c *Chip) pull() uint8 {
	c.SP++
	return c.ram.Read(c.StackAddr())
}

// pushWord pushes a 16 bit value high byte first, matching the order
// JSR/BRK/IRQ/NMI all push PC in.
func (c *Chip) pushWord(v uint16) {
	c.push(uint8(v >> 8))
	c.push(uint8(v & 0xFF))
}

// pullWord pops a 16 bit value low byte first, the inverse of pushWord.
func (c *Chip) pullWord() uint16 {
	lo := c.pull()
	hi := c.pull()
	return uint16(hi)<<8 | uint16(lo)
}

// Snapshot is a point-in-time copy of architectural state, useful for
// whole-struct diffing in tests (see cpu_test.go, which leans on
// go-test/deep and go-spew the way the upstream 6502 core's own tests
// do) instead of asserting field by field.
type Snapshot struct {
	A, X, Y, SP, P  uint8
	PC              uint16
	CyclesRemaining int
}

// Snapshot captures the CPU's current architectural state.
func (c *Chip) Snapshot() Snapshot {
	return Snapshot{
		A:               c.A,
		X:               c.X,
		Y:               c.Y,
		SP:              c.SP,
		P:               c.P,
		PC:              c.PC,
		CyclesRemaining: c.cyclesRemaining,
	}
}

// zeroCheck sets Z iff val is zero.
func (c *Chip) zeroCheck(val uint8) {
	c.SetFlag(FlagZero, val == 0)
}

// negativeCheck sets N from bit 7 of val.
func (c *Chip) negativeCheck(val uint8) {
	c.SetFlag(FlagNegative, val&0x80 != 0)
}

// setZN is shorthand for the very common zeroCheck+negativeCheck pair
// that every load, transfer, and arithmetic instruction performs.
func (c *Chip) setZN(val uint8) {
	c.zeroCheck(val)
	c.negativeCheck(val)
}

// carryCheck sets C iff the 8 bit ALU operation (represented here as a
// wider intermediate result) produced a carry out, i.e. is >= 0x100.
func (c *Chip) carryCheck(res uint16) {
	c.SetFlag(FlagCarry, res >= 0x100)
}

// overflowCheck sets V iff reg and arg share a sign bit that differs
// from the sign bit of res — a two's complement overflow.
func (c *Chip) overflowCheck(reg, arg, res uint8) {
	c.SetFlag(FlagOverflow, (reg^res)&(arg^res)&0x80 != 0)
}
