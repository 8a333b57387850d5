// cpu_tms9900.go - register file, fetch/step loop, interrupt acceptance
// (§3, §4.B, §4.F)
//
// Grounded on cpu_z80.go's struct/Reset/Step/Execute shape, generalized
// from Z80's 8-bit opcode space to the TMS9900's 16-bit shape-classified
// space, and from a CPU-local register file to registers aliased to memory
// (§3's aliasing invariant).

package main

// Reset restores the CPU (and every device wired onto the bus) to its
// power-on state, loading WP/PC from the reset vector at 0x0000/0x0002 and
// clearing the status word.
func (e *Emulator) Reset() {
	e.st = 0
	e.pendingInterrupt = 0
	e.totalCycles = 0
	e.wp = e.mm.Read(e, 0x0000)
	e.pc = e.mm.Read(e, 0x0002)
	e.cyc = 0 // after the vector reads, which charge cycles

	e.vdp.Reset()
	e.grom.Reset()
	e.cru.Reset()
	e.keyboard.Reset()
	e.sound.Reset()
}

// regAddr is the address registers are aliased to memory at (§3's defining
// invariant): R<n> lives at WP + 2n.
func (e *Emulator) regAddr(n uint8) uint16 {
	return e.wp + 2*uint16(n)
}

func (e *Emulator) readReg(n uint8) uint16 {
	return e.mm.Read(e, e.regAddr(n))
}

func (e *Emulator) writeReg(n uint8, v uint16) {
	e.mm.Write(e, e.regAddr(n), v)
}

// fetchWord reads the word at PC and advances PC by 2 — used both for
// opcode fetch and for an instruction's trailing immediate/displacement
// word (mode 2 addressing, LI/AI/.../LWPI/LIMI).
func (e *Emulator) fetchWord() uint16 {
	w := e.mm.Read(e, e.pc)
	e.pc += 2
	return w
}

// readWord/writeWord are the plain word-level bus accessors used once an
// effective address has been resolved.
func (e *Emulator) readWord(ea uint16) uint16  { return e.mm.Read(e, ea) }
func (e *Emulator) writeWord(ea uint16, v uint16) { e.mm.Write(e, ea, v) }

// readByteAt/writeByteAt implement §4.B's byte-operand contract: the byte
// lives in the high half of its containing word when the effective address
// is even, the low half when odd; writes preserve the untouched half. The
// preserving read uses SafeRead so that a byte write to a stateful port
// (e.g. a data port) does not trigger that port's read side effect twice.
func (e *Emulator) readByteAt(ea uint16) byte {
	word := e.mm.Read(e, ea&^1)
	if ea&1 == 0 {
		return byte(word >> 8)
	}
	return byte(word)
}

func (e *Emulator) writeByteAt(ea uint16, b byte) {
	word := e.mm.SafeRead(e, ea&^1)
	if ea&1 == 0 {
		word = uint16(b)<<8 | (word & 0x00FF)
	} else {
		word = (word & 0xFF00) | uint16(b)
	}
	e.mm.Write(e, ea&^1, word)
}

// Step executes exactly one instruction, first applying the BLWP/XOP
// interrupt lockout (the X status flag, §4.B/§8 invariant 3) or, absent
// that lockout, delivering any pending interrupt the current mask permits.
func (e *Emulator) Step() {
	if e.st&stX != 0 {
		e.st &^= stX
	} else {
		e.maybeDeliverInterrupt()
	}
	e.executeOne()
}

// RunUntilPositive is §4.F's run_until_positive: steps the CPU while cyc
// stays at or below zero, yielding as soon as an instruction pushes it
// positive.
func (e *Emulator) RunUntilPositive() {
	for e.cyc <= 0 {
		e.Step()
	}
}

// executeOne fetches a single instruction, charges the base cost common to
// every instruction (§4.B), then decodes and dispatches it.
func (e *Emulator) executeOne() {
	op := e.fetchWord()
	e.cyc += cycleBase
	e.dispatch(op)
}
