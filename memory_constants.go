// memory_constants.go - CPU-side memory map addresses for the TI-99/4A-class core

package main

// Region boundaries (§6). All addresses are byte addresses; the bus is
// word-addressed (see memory_map.go) so every region here is word-aligned.
const (
	SystemROMBase = 0x0000
	SystemROMEnd  = 0x1FFF
	SystemROMSize = 0x2000 // 8 KiB

	LowExpansionRAMBase = 0x2000
	LowExpansionRAMEnd  = 0x3FFF

	PeripheralROMBase = 0x4000
	PeripheralROMEnd  = 0x5FFF

	CartridgeROMBase = 0x6000
	CartridgeROMEnd  = 0x7FFF
	CartridgeWindow  = CartridgeROMEnd - CartridgeROMBase + 1 // 0x2000

	FastRAMBase = 0x8000
	FastRAMEnd  = 0x83FF
	FastRAMSize = 0x100 // 256 bytes, aliased every 0x100 within the kilobyte

	SoundWritePort = 0x8400

	VDPDataReadPort   = 0x8800
	VDPStatusReadPort = 0x8802
	VDPDataWritePort  = 0x8C00
	VDPAddrWritePort  = 0x8C02

	SpeechPort = 0x9000

	GROMDataReadPort = 0x9800
	GROMAddrReadPort = 0x9802

	GROMDataWritePort = 0x9C00
	GROMAddrWritePort = 0x9C02

	HighExpansionRAMBase = 0xA000
	HighExpansionRAMEnd  = 0xFFFF
)

// Page geometry for the 256-byte-page dispatch table (§3, §4.A).
const (
	PageShift = 8
	PageSize  = 1 << PageShift // 256 bytes
	PageCount = 0x10000 / PageSize
)

// System ROM/GROM layout (§6).
const (
	SystemGROMSize = 24 * 1024 // 24 KiB

	MinCartridgeROMSize = 8 * 1024
	MaxCartridgeROMSize = 512 * 1024
	CartridgeBankSize   = 8 * 1024
)

// Cycle costs (§4.A).
const (
	CycleFastMemory  = 2
	CycleMultiplexed = 6
	CycleSoundExtra  = 34
	CycleGROMRead    = 25
	CycleGROMAddrLo  = 19
	CycleGROMAddrHi  = 21
	CycleGROMWrite   = 27
	CycleSpeechExtra = 54
)
