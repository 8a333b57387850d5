// cartridge.go - cartridge ROM bank controller (§4.G)
//
// Grounded on memory_bus.go's region-remap concept: the banker never moves
// bytes itself, it just rebinds which backing slice the dispatcher's
// 0x6000-0x7FFF pages point at.

package main

import "strconv"

// Cartridge holds the full ROM image as 8 KiB banks and tracks which one is
// currently windowed into 0x6000-0x7FFF.
type Cartridge struct {
	banks    [][]uint16 // each CartridgeBankSize/2 words
	bank     int
	bankMask int
}

func newCartridge() *Cartridge {
	return &Cartridge{}
}

// nextPow2Mask returns (next_pow2(n)) - 1, per §3's bank-mask definition.
func nextPow2Mask(n int) int {
	if n <= 1 {
		return 0
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p - 1
}

// Load installs a cartridge ROM image (big-endian byte stream, §6),
// splitting it into CartridgeBankSize-byte banks.
func (c *Cartridge) Load(data []byte) error {
	if len(data) < MinCartridgeROMSize || len(data) > MaxCartridgeROMSize {
		return configErrorf("cartridge", errBadCartridgeLength(len(data)))
	}
	bankCount := (len(data) + CartridgeBankSize - 1) / CartridgeBankSize
	c.banks = make([][]uint16, bankCount)
	for i := 0; i < bankCount; i++ {
		start := i * CartridgeBankSize
		end := start + CartridgeBankSize
		chunk := make([]byte, CartridgeBankSize)
		if end > len(data) {
			end = len(data)
		}
		copy(chunk, data[start:end])
		c.banks[i] = bytesToWordsBE(chunk)
	}
	c.bankMask = nextPow2Mask(bankCount)
	c.bank = 0
	return nil
}

// currentBank returns the backing slice for the active bank, or a zeroed
// stub slice when no cartridge is loaded.
func (c *Cartridge) currentBank() []uint16 {
	if len(c.banks) == 0 {
		return emptyCartBank[:]
	}
	return c.banks[c.bank]
}

var emptyCartBank [CartridgeBankSize / 2]uint16

// Select applies a bank-write trigger (§4.G, invariant 6): the cartridge
// window is normally read-through to the current bank; any write selects
// bank = (address>>1) & bankMask. Overflow beyond bankMask is masked, never
// an error (§7 "Cartridge bank overflow").
func (c *Cartridge) Select(mm *MemoryMap, addr uint16) {
	c.bank = int((addr >> 1)) & c.bankMask
	mm.remap(CartridgeROMBase, CartridgeWindow, c.currentBank())
}

func errBadCartridgeLength(n int) error {
	return &cartridgeLengthError{n}
}

type cartridgeLengthError struct{ length int }

func (e *cartridgeLengthError) Error() string {
	return "cartridge ROM length out of range: got " + strconv.Itoa(e.length) + " bytes"
}
