// debug_cpu_tms9900_test.go - DebuggableCPU adapter: registers, breakpoints, memory

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDebuggable() (*TMS9900Debuggable, *Emulator) {
	e := newTestEmulator()
	sched := newScheduler(e, StandardNTSC)
	return NewTMS9900Debuggable(e, sched), e
}

func TestDebuggableGetSetRegister(t *testing.T) {
	d, e := newTestDebuggable()
	e.writeReg(5, 0x1234)

	v, ok := d.GetRegister("R5")
	require.True(t, ok)
	assert.Equal(t, uint64(0x1234), v)

	ok = d.SetRegister("R5", 0xABCD)
	assert.True(t, ok)
	assert.Equal(t, uint16(0xABCD), e.readReg(5))

	_, ok = d.GetRegister("R16")
	assert.False(t, ok)
}

func TestDebuggablePCAndWPAccessors(t *testing.T) {
	d, e := newTestDebuggable()
	d.SetPC(0xA000)
	assert.Equal(t, uint64(0xA000), d.GetPC())
	assert.Equal(t, uint16(0xA000), e.pc)

	ok := d.SetRegister("WP", 0x8300)
	assert.True(t, ok)
	assert.Equal(t, uint16(0x8300), e.wp)
}

func TestDebuggableStepAdvancesCyclesAndFiresBreakpoint(t *testing.T) {
	d, e := newTestDebuggable()
	e.loadProgram(encodeImmediate(immLI, 0), 0x0005)

	ch := make(chan BreakpointEvent, 1)
	d.SetBreakpointChannel(ch, 1)
	d.SetBreakpoint(uint64(testProgramBase + 4)) // PC after the 2-word LI instruction

	delta := d.Step()
	assert.Greater(t, delta, 0)

	select {
	case ev := <-ch:
		assert.Equal(t, uint64(testProgramBase+4), ev.Address)
		assert.Equal(t, 1, ev.CPUID)
	default:
		t.Fatal("expected breakpoint event")
	}
}

func TestDebuggableBreakpointManagement(t *testing.T) {
	d, _ := newTestDebuggable()
	assert.True(t, d.SetBreakpoint(0x100))
	assert.True(t, d.HasBreakpoint(0x100))
	assert.ElementsMatch(t, []uint64{0x100}, d.ListBreakpoints())

	assert.True(t, d.ClearBreakpoint(0x100))
	assert.False(t, d.HasBreakpoint(0x100))
	assert.False(t, d.ClearBreakpoint(0x100))
}

func TestDebuggableReadWriteMemory(t *testing.T) {
	d, _ := newTestDebuggable()
	d.WriteMemory(uint64(testWorkspace+0x40), []byte{0xDE, 0xAD})
	got := d.ReadMemory(uint64(testWorkspace+0x40), 2)
	assert.Equal(t, []byte{0xDE, 0xAD}, got)
}

func TestDebuggableFreezeResumeAndIsRunning(t *testing.T) {
	d, _ := newTestDebuggable()
	assert.False(t, d.IsRunning())
	d.Resume()
	assert.True(t, d.IsRunning())
	d.Freeze()
	assert.False(t, d.IsRunning())
}

func TestDebuggableDisassembleMarksCurrentPC(t *testing.T) {
	d, e := newTestDebuggable()
	e.loadProgram(encodeImmediate(immLI, 0), 0x0005)

	lines := d.Disassemble(uint64(testProgramBase), 1)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].IsPC)
	assert.Equal(t, "LI R0,>0005", lines[0].Mnemonic)
}
