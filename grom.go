// grom.go - GROM sequencer (§4.D)
//
// No teacher analogue exists for a GROM-style pre-fetching sequencer; this
// is built in the same struct-plus-methods idiom the teacher uses for its
// small stateful peripherals (a per-component Reset method).

package main

// GROM holds the graphics-ROM image(s) and the auto-incrementing address
// sequencer in front of them (§3).
type GROM struct {
	data []byte // system GROM + any cartridge GROM, concatenated

	addr      uint16 // 3-bit bank (bits 15-13) + 13-bit offset (bits 12-0)
	latchHigh bool   // true once the first address byte has been written
	latchByte byte   // buffered high byte awaiting the low byte
	lastByte  byte   // pre-fetched data byte (§3 invariant)
}

func newGROM() *GROM {
	g := &GROM{data: make([]byte, SystemGROMSize)}
	return g
}

func (g *GROM) Reset() {
	g.addr = 0
	g.latchHigh = false
	g.latchByte = 0
	g.lastByte = 0
}

// LoadSystem installs the system GROM image (§6, 24 KiB at GROM logical
// 0x0000).
func (g *GROM) LoadSystem(image []byte) error {
	if len(image) != SystemGROMSize {
		return configErrorf("system GROM", errGROMLength(len(image), SystemGROMSize))
	}
	if len(g.data) < len(image) {
		g.data = make([]byte, len(image))
	}
	copy(g.data, image)
	return nil
}

// LoadCartridge appends a cartridge GROM image above the system region
// (§6: "Cartridge GROM, if present, extends the GROM address space above
// the system region").
func (g *GROM) LoadCartridge(image []byte) {
	base := SystemGROMSize
	need := base + len(image)
	if len(g.data) < need {
		grown := make([]byte, need)
		copy(grown, g.data)
		g.data = grown
	}
	copy(g.data[base:], image)
}

// bankOffset splits addr into its 3-bit bank and 13-bit offset (§3).
func (g *GROM) bankOffset() (bank uint16, offset uint16) {
	return g.addr >> 13, g.addr & 0x1FFF
}

// fetch reads the byte at the current address without advancing it.
func (g *GROM) fetch() byte {
	idx := int(g.addr)
	if idx < 0 || idx >= len(g.data) {
		return 0
	}
	return g.data[idx]
}

// advance increments the 13-bit offset with wrap, preserving the bank
// (§3 invariant, §8 invariant 4).
func (g *GROM) advance() {
	bank, offset := g.bankOffset()
	offset = (offset + 1) & 0x1FFF
	g.addr = bank<<13 | offset
}

// ReadData implements the 0x9800 data-read port (§4.D): returns the
// pre-fetched byte, then refills from the (not yet incremented) address
// and increments.
func (g *GROM) ReadData() byte {
	b := g.lastByte
	g.lastByte = g.fetch()
	g.advance()
	g.latchHigh = false
	return b
}

// ReadAddress implements the 0x9802 address-read port: returns the current
// address's high byte and always clears the latch (§4.D: "an address-port
// read... clears the latch", unlike the two-phase write).
func (g *GROM) ReadAddress() byte {
	b := byte(g.addr >> 8)
	g.latchHigh = false
	return b
}

// WriteAddress implements the 0x9C02 address-write port: two-phase
// high-byte-then-low-byte latch, refilling last_byte and priming the
// pre-fetch once both halves have landed.
func (g *GROM) WriteAddress(b byte) {
	if !g.latchHigh {
		g.latchByte = b
		g.latchHigh = true
		return
	}
	g.addr = uint16(g.latchByte)<<8 | uint16(b)
	g.latchHigh = false
	g.lastByte = g.fetch()
	g.advance()
}

// WriteData implements the 0x9C00 data-write port. Writes into non-
// cartridge-GROM regions are ignored but still consume cycles (charged by
// the caller); here we only honor writes that land within an actually
// loaded cartridge-GROM region.
func (g *GROM) WriteData(b byte) {
	idx := int(g.addr)
	if idx >= SystemGROMSize && idx < len(g.data) {
		g.data[idx] = b
	}
	g.lastByte = g.fetch()
	g.advance()
	g.latchHigh = false
}

func errGROMLength(got, want int) error {
	return &lengthError{"GROM", got, want}
}
