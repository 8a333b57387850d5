// vdp_constants.go - TMS9918A/F18A-compatible register and status layout
//
// Grounded on other_examples/13f34bac_user-none-eMkIII__emu-vdp.go.go for
// genuine TMS9918-family register/status/latch field layout.

package main

const (
	VRAMSize     = 16 * 1024
	VDPAddrMask  = VRAMSize - 1
	VisibleLines = 192
	VBLLine      = 246

	NTSCScanlines = 262
	PALScanlines  = 313

	spritesPerLine   = 4
	spriteListSize   = 32
	spriteTerminator = 0xD0
	earlyClockShift  = 32
)

// Status register bits (§4.C).
const (
	vdpStatusF       = 0x80
	vdpStatus5th     = 0x40
	vdpStatusCoinc   = 0x20
	vdpStatus5thMask = 0x1F
)

// R1 control bits.
const (
	r1Blank = 0x40
	r1IE    = 0x20
	r1M1    = 0x10
	r1M2    = 0x08 // Multicolor mode select; distinct from M3 (R0 bit1)
	r1Size  = 0x02
	r1Mag   = 0x01
)

// R0 control bits.
const (
	r0M3       = 0x02
	r0ExtVideo = 0x01
)

// Render modes (§4.C: graphics-1, graphics-2 bitmap, multicolor, text,
// text-bitmap).
type vdpMode int

const (
	modeGraphics1 vdpMode = iota
	modeGraphics2Bitmap
	modeMulticolor
	modeText
	modeTextBitmap
)

// F18A palette-bank unlock (supplemental, see SPEC_FULL.md / DESIGN.md Open
// Question decisions): two control-port writes, an unlock key byte
// followed by a bank-select byte.
const (
	f18aUnlockKey = 0x1C
	f18aMaxBanks  = 4
)
