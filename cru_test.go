// cru_test.go - bit-addressable CRU read/write semantics

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRUTimerModeToggle(t *testing.T) {
	e := NewEmulator(NewHeadlessHost())
	assert.Equal(t, 0, e.cru.Read(cruBitTimerMode))

	e.cru.Write(cruBitTimerMode, 1)
	assert.Equal(t, 1, e.cru.Read(cruBitTimerMode))
	assert.True(t, e.cru.timerMode)

	e.cru.Write(cruBitTimerMode, 0)
	assert.Equal(t, 0, e.cru.Read(cruBitTimerMode))
}

func TestCRUTimerWindowReadsCycleCounterBits(t *testing.T) {
	e := NewEmulator(NewHeadlessHost())
	e.cru.Write(cruBitTimerMode, 1)
	e.totalCycles = 1 << 5 // bit 5 set

	// bit n (1..14) reads totalCycles bit (timerWindowBits - n)
	shift := uint(timerWindowBits - 9)
	assert.Equal(t, int((e.totalCycles>>shift)&1), e.cru.Read(9))
}

func TestCRUVDPStatusBitReflectsInterruptFlag(t *testing.T) {
	e := NewEmulator(NewHeadlessHost())
	e.cru.timerMode = false

	e.vdp.status = 0
	assert.Equal(t, 1, e.cru.Read(cruBitVDPStatus)) // F clear -> active-low line reads 1

	e.vdp.status = vdpStatusF
	assert.Equal(t, 0, e.cru.Read(cruBitVDPStatus)) // F set -> line pulled low
}

func TestCRUInterruptMaskBitsSetAndClearST(t *testing.T) {
	e := NewEmulator(NewHeadlessHost())
	e.st = 0

	e.cru.Write(cruMaskFirstLowBit, 1) // bit 1 -> maskBit 1<<1
	assert.NotZero(t, e.st&(1<<1))

	e.cru.Write(cruMaskFirstLowBit, 0)
	assert.Zero(t, e.st&(1<<1))

	e.cru.Write(cruMaskFirstHighBit, 1) // bit 12 -> maskBit 1<<0
	assert.NotZero(t, e.st&(1<<0))
}

func TestCRURowSelectWriteDrivesKeyboardSelection(t *testing.T) {
	e := NewEmulator(NewHeadlessHost())

	e.cru.Write(cruBitRowSelectFirst, 1)   // shift 0 -> row bit 0
	e.cru.Write(cruBitRowSelectFirst+1, 1) // shift 1 -> row bit 1
	assert.Equal(t, uint8(0x3), e.keyboard.selected)

	e.cru.Write(cruBitRowSelectFirst, 0)
	assert.Equal(t, uint8(0x2), e.keyboard.selected)
}

func TestCRUAlphaLockBit(t *testing.T) {
	e := NewEmulator(NewHeadlessHost())
	e.cru.Write(cruBitAlphaLock, 1)
	assert.True(t, e.keyboard.alphaLock)
	e.cru.Write(cruBitAlphaLock, 0)
	assert.False(t, e.keyboard.alphaLock)
}

func TestCRUKeyboardColumnReadThroughSelectedRow(t *testing.T) {
	e := NewEmulator(NewHeadlessHost())
	e.cru.timerMode = false
	e.keyboard.SelectRow(2)
	e.keyboard.SetKey(2, 4, true) // hold row 2, column 4

	bit := cruKeyboardFirstBit + 4
	assert.Equal(t, 0, e.cru.Read(bit)) // held key pulls the line low

	e.keyboard.SetKey(2, 4, false)
	assert.Equal(t, 1, e.cru.Read(bit))
}

func TestCRUUnmappedBitsReadZero(t *testing.T) {
	e := NewEmulator(NewHeadlessHost())
	assert.Equal(t, 0, e.cru.Read(11))
}
