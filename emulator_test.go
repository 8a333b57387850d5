// emulator_test.go - whole-machine scenarios exercising the CPU through the
// memory-mapped device ports end to end, rather than each device in isolation.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmulatorVDPPortRoundTripThroughMemoryMap(t *testing.T) {
	e := NewEmulator(NewHeadlessHost())

	e.mm.Write(e, VDPAddrWritePort, uint16(0x00)<<8) // low byte of address 0
	e.mm.Write(e, VDPAddrWritePort, uint16(0x00)<<8) // high byte -> latch address 0
	e.mm.Write(e, VDPDataWritePort, uint16(0x99)<<8)

	e.mm.Write(e, VDPAddrWritePort, uint16(0x00)<<8)
	e.mm.Write(e, VDPAddrWritePort, uint16(0x00)<<8)
	got := e.mm.Read(e, VDPDataReadPort)
	assert.Equal(t, byte(0x99), byte(got>>8))
}

func TestEmulatorGROMPortRoundTripThroughMemoryMap(t *testing.T) {
	e := NewEmulator(NewHeadlessHost())
	require.NoError(t, e.grom.LoadSystem(make([]byte, SystemGROMSize)))
	e.grom.data[0x0005] = 0xAB

	e.mm.Write(e, GROMAddrWritePort, uint16(0x00)<<8)
	e.mm.Write(e, GROMAddrWritePort, uint16(0x05)<<8) // latch address 5; pre-fetch from 5, advance to 6

	got := e.mm.Read(e, GROMDataReadPort)
	assert.Equal(t, byte(0xAB), byte(got>>8))
}

func TestEmulatorVDPVBLInterruptDeliveredThroughScheduler(t *testing.T) {
	e := newTestEmulator()
	e.vdp.registers[1] |= r1IE
	e.loadProgram(encodeJump(jmpJMP, -1)) // infinite self-loop, never clears ST on its own
	sched := newScheduler(e, StandardNTSC)
	sched.y = VBLLine

	sched.RunScanline(nil)
	require.NotZero(t, e.pendingInterrupt)
	assert.NotZero(t, e.vdp.status&vdpStatusF)
}

func TestEmulatorCartridgeBankSwitchVisibleThroughMemoryMap(t *testing.T) {
	e := NewEmulator(NewHeadlessHost())
	data := make([]byte, CartridgeBankSize*2)
	data[0], data[1] = 0x11, 0x11
	data[CartridgeBankSize], data[CartridgeBankSize+1] = 0x22, 0x22
	require.NoError(t, e.cart.Load(data))
	e.mm.remap(CartridgeROMBase, CartridgeWindow, e.cart.currentBank())

	assert.Equal(t, uint16(0x1111), e.mm.Read(e, CartridgeROMBase))

	e.mm.Write(e, CartridgeROMBase+2, 0) // (2>>1)&1 = 1 -> selects bank 1
	assert.Equal(t, uint16(0x2222), e.mm.Read(e, CartridgeROMBase))
}

func TestEmulatorKeyboardReadThroughCRUAndMemoryWiredKeyboard(t *testing.T) {
	e := NewEmulator(NewHeadlessHost())
	e.keyboard.SelectRow(0)
	e.keyboard.SetKey(0, 0, true)
	assert.Equal(t, 0, e.cru.Read(cruKeyboardFirstBit)) // held key pulls the line low
}

func TestEmulatorResetClearsCycleCountersAndLoadsVectorThenRuns(t *testing.T) {
	e := NewEmulator(NewHeadlessHost())
	copy(e.systemROM, []uint16{0x8300, uint16(testProgramBase)})
	e.mm.Write(e, testProgramBase, encodeImmediate(immLI, 0))
	e.mm.Write(e, testProgramBase+2, 0x002A)

	e.Reset()
	assert.Equal(t, uint16(0x8300), e.wp)
	assert.Equal(t, testProgramBase, e.pc)

	e.Step()
	assert.Equal(t, uint16(0x2A), e.readReg(0))
}

func TestEmulatorSoundWriteReachesAttachedSink(t *testing.T) {
	e := NewEmulator(NewHeadlessHost())
	sink := &fakeAudioSink{}
	e.sound.AttachSink(sink)

	e.mm.Write(e, SoundWritePort, uint16(0x7F)<<8)
	require.Len(t, sink.bytes, 1)
	assert.Equal(t, byte(0x7F), sink.bytes[0])
}
