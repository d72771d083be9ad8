package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestADCSetsCarryAndOverflowOnSignedOverflow(t *testing.T) {
	c, _ := newTestChip(t)
	c.A = 0x50
	opADC(c, 0x50) // 0x50+0x50 = 0xA0: signed overflow (+80+80 -> negative), no unsigned carry
	require.Equal(t, uint8(0xA0), c.A)
	require.True(t, c.GetFlag(FlagOverflow))
	require.False(t, c.GetFlag(FlagCarry))
	require.True(t, c.GetFlag(FlagNegative))
}

func TestADCHonorsIncomingCarry(t *testing.T) {
	c, _ := newTestChip(t)
	c.A = 0x01
	c.SetFlag(FlagCarry, true)
	opADC(c, 0x01)
	require.Equal(t, uint8(0x03), c.A)
}

func TestADCUnsignedCarryOutWithoutOverflow(t *testing.T) {
	c, _ := newTestChip(t)
	c.A = 0xFF
	opADC(c, 0x02)
	require.Equal(t, uint8(0x01), c.A)
	require.True(t, c.GetFlag(FlagCarry))
	require.False(t, c.GetFlag(FlagOverflow))
}

func TestSBCIsADCOfComplement(t *testing.T) {
	c, _ := newTestChip(t)
	c.A = 0x50
	c.SetFlag(FlagCarry, true) // no borrow going in
	opSBC(c, 0x30)
	require.Equal(t, uint8(0x20), c.A)
	require.True(t, c.GetFlag(FlagCarry), "carry set means no borrow occurred")
}

func TestSBCBorrowClearsCarry(t *testing.T) {
	c, _ := newTestChip(t)
	c.A = 0x10
	c.SetFlag(FlagCarry, true)
	opSBC(c, 0x20)
	require.False(t, c.GetFlag(FlagCarry), "borrow must clear carry")
}

func TestCompareFamilySetsFlagsWithoutMutatingRegister(t *testing.T) {
	c, _ := newTestChip(t)
	c.A = 0x40
	opCMP(c, 0x40)
	require.Equal(t, uint8(0x40), c.A, "CMP must not alter A")
	require.True(t, c.GetFlag(FlagZero))
	require.True(t, c.GetFlag(FlagCarry))

	c.A = 0x10
	opCMP(c, 0x20)
	require.False(t, c.GetFlag(FlagCarry), "A < operand means borrow, carry clear")
	require.False(t, c.GetFlag(FlagZero))
}

func TestBITMirrorsOperandBitsWithoutChangingA(t *testing.T) {
	c, _ := newTestChip(t)
	c.A = 0xFF
	opBIT(c, 0xC0) // bits 7,6 set -> N,V set; A&val != 0 -> Z clear
	require.True(t, c.GetFlag(FlagNegative))
	require.True(t, c.GetFlag(FlagOverflow))
	require.False(t, c.GetFlag(FlagZero))
	require.Equal(t, uint8(0xFF), c.A)

	c.A = 0x00
	opBIT(c, 0xFF)
	require.True(t, c.GetFlag(FlagZero), "A&val == 0 must set Z even though val has bits set")
}

func TestShiftsAndRotatesMoveCarryCorrectly(t *testing.T) {
	c, _ := newTestChip(t)
	require.Equal(t, uint8(0xFE), c.asl(0xFF))
	require.True(t, c.GetFlag(FlagCarry))

	c, _ = newTestChip(t)
	require.Equal(t, uint8(0x01), c.lsr(0x03))
	require.True(t, c.GetFlag(FlagCarry))

	c, _ = newTestChip(t)
	c.SetFlag(FlagCarry, true)
	require.Equal(t, uint8(0x01), c.rol(0x80))
	require.True(t, c.GetFlag(FlagCarry), "bit 7 of 0x80 rotates into carry")

	c, _ = newTestChip(t)
	c.SetFlag(FlagCarry, true)
	require.Equal(t, uint8(0x80), c.ror(0x00))
	require.False(t, c.GetFlag(FlagCarry))
}

func TestINCDECWrapAndSetFlags(t *testing.T) {
	c, _ := newTestChip(t)
	require.Equal(t, uint8(0x00), opINC(c, 0xFF))
	require.True(t, c.GetFlag(FlagZero))

	require.Equal(t, uint8(0xFF), opDEC(c, 0x00))
	require.True(t, c.GetFlag(FlagNegative))
}

func TestBranchNotTakenStillConsumesOperandOnly(t *testing.T) {
	c, ram := newTestChip(t)
	ram.Write(c.PC, 0x10)
	start := c.PC
	extra := c.branch(false)
	require.Equal(t, 0, extra)
	require.Equal(t, start+1, c.PC)
}

func TestBranchTakenSamePageCostsOneExtraCycle(t *testing.T) {
	c, ram := newTestChip(t)
	ram.Write(c.PC, 0x05)
	extra := c.branch(true)
	require.Equal(t, 1, extra)
}

func TestBranchTakenCrossingPageCostsThreeExtraCycles(t *testing.T) {
	c, ram := newTestChip(t)
	c.PC = 0x20FE
	ram.Write(c.PC, 0x10) // lands at 0x210F, crossing from page 0x20 to 0x21
	extra := c.branch(true)
	require.Equal(t, 3, extra) // +1 taken, +2 page cross
}

func TestJSRThenRTSRoundTrips(t *testing.T) {
	c, ram := newTestChip(t)
	ram.Write(resetVector, 0x20)    // JSR
	ram.Write(resetVector+1, 0x00)  // target lo
	ram.Write(resetVector+2, 0x30)  // target hi -> 0x3000
	ram.Write(0x3000, 0x60)         // RTS

	for c.CyclesRemaining() > 0 {
		c.Tick() // drain the reset sequence's own cycles first
	}

	retireOne := func() {
		c.Tick()
		for c.CyclesRemaining() > 0 {
			c.Tick()
		}
	}

	retireOne() // JSR
	require.Equal(t, uint16(0x3000), c.PC)

	retireOne() // RTS
	require.Equal(t, resetVector+3, c.PC, "RTS must return to the byte after JSR's operand")
}

func TestPHPSetsBreakAndUnusedOnPushedCopyOnly(t *testing.T) {
	c, _ := newTestChip(t)
	opPHP(c)
	pushed := c.ReadByte(c.StackAddr() + 1)
	require.NotZero(t, pushed&uint8(FlagBreak))
	require.NotZero(t, pushed&uint8(FlagUnused))
	require.Zero(t, c.P&uint8(FlagBreak), "B is synthesized only in the pushed byte, not the live register")
}

func TestPLPRestoresFlagsButForcesUnusedAndClearsBreak(t *testing.T) {
	c, _ := newTestChip(t)
	c.push(0xFF)
	opPLP(c)
	require.NotZero(t, c.P&uint8(FlagUnused))
	require.Zero(t, c.P&uint8(FlagBreak))
}
