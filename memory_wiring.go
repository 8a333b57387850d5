// memory_wiring.go - installs every device into the memory map (§6)
//
// Grounded on main.go's MapIO wiring sequence, adapted from byte-region
// callbacks to the page-install contract in memory_map.go.

package main

// wireMemoryMap installs every region of §6's CPU-side memory map. Called
// once from NewEmulator; cartridge loading later rebinds the 0x6000-0x7FFF
// backing via remap, not a fresh install.
func (e *Emulator) wireMemoryMap() {
	if e.systemROM == nil {
		e.systemROM = make([]uint16, SystemROMSize/2)
	}

	e.mm.install(SystemROMBase, SystemROMSize, readBackedROM, readBackedROM, writeIgnoredROM, e.systemROM)
	e.mm.install(LowExpansionRAMBase, LowExpansionRAMEnd-LowExpansionRAMBase+1, readBackedRAM, readBackedRAM, writeBackedRAM, e.lowExpRAM)
	e.mm.install(PeripheralROMBase, PeripheralROMEnd-PeripheralROMBase+1, readStubZero, readStubZero, writeStubIgnored, nil)
	e.mm.install(CartridgeROMBase, CartridgeWindow, readBackedROM, readBackedROM, writeCartridgeSelect, e.cart.currentBank())

	for base := uint32(FastRAMBase); base < FastRAMBase+0x400; base += PageSize {
		e.mm.install(base, PageSize, readBackedRAM, readBackedRAM, writeBackedRAM, e.fastRAM)
	}

	e.mm.install(SoundWritePort&^(PageSize-1), PageSize, readUnmapped, readUnmapped, writeSoundPort, nil)
	e.mm.install(VDPDataReadPort&^(PageSize-1), PageSize, readVDPPort, readVDPPort, writeUnmapped, nil)
	e.mm.install(VDPDataWritePort&^(PageSize-1), PageSize, readUnmapped, readUnmapped, writeVDPPort, nil)
	e.mm.install(SpeechPort&^(PageSize-1), PageSize, readSpeechStub, readSpeechStub, writeSpeechStub, nil)
	e.mm.install(GROMDataReadPort&^(PageSize-1), PageSize, readGROMReadPort, readGROMReadPort, writeUnmapped, nil)
	e.mm.install(GROMDataWritePort&^(PageSize-1), PageSize, readUnmapped, readUnmapped, writeGROMWritePort, nil)

	e.mm.install(HighExpansionRAMBase, HighExpansionRAMEnd-HighExpansionRAMBase+1, readBackedRAM, readBackedRAM, writeBackedRAM, e.highExpRAM)
}

func writeSoundPort(e *Emulator, addr uint16, value uint16) {
	e.cyc += CycleMultiplexed + CycleSoundExtra
	e.sound.Write(byte(value >> 8))
}

// readVDPPort/writeVDPPort multiplex the data and status/address ports
// within their 256-byte page by bit 1 of the byte address (§4.C, §6).
func readVDPPort(e *Emulator, addr uint16) uint16 {
	e.cyc += CycleMultiplexed
	var b byte
	if addr&0x02 == 0 {
		b = e.vdp.ReadData()
	} else {
		b = e.vdp.ReadStatus(e)
	}
	return uint16(b) << 8
}

func writeVDPPort(e *Emulator, addr uint16, value uint16) {
	e.cyc += CycleMultiplexed
	b := byte(value >> 8)
	if addr&0x02 == 0 {
		e.vdp.WriteData(b)
	} else {
		e.vdp.WriteControl(b)
	}
}

func readGROMReadPort(e *Emulator, addr uint16) uint16 {
	var b byte
	if addr&0x02 == 0 {
		e.cyc += CycleGROMRead
		b = e.grom.ReadData()
	} else {
		e.cyc += CycleGROMAddrLo
		b = e.grom.ReadAddress()
	}
	return uint16(b) << 8
}

func writeGROMWritePort(e *Emulator, addr uint16, value uint16) {
	b := byte(value >> 8)
	if addr&0x02 == 0 {
		e.cyc += CycleGROMWrite
		e.grom.WriteData(b)
	} else {
		e.cyc += CycleGROMAddrHi
		e.grom.WriteAddress(b)
	}
}

func readSpeechStub(e *Emulator, addr uint16) uint16 {
	e.cyc += CycleMultiplexed + CycleSpeechExtra
	return 0
}

func writeSpeechStub(e *Emulator, addr uint16, value uint16) {
	e.cyc += CycleMultiplexed + CycleSpeechExtra
}

func writeCartridgeSelect(e *Emulator, addr uint16, value uint16) {
	e.cyc += CycleFastMemory
	e.cart.Select(e.mm, addr)
}
