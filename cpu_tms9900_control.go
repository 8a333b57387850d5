// cpu_tms9900_control.go - control transfers and interrupt delivery (§4.B)

package main

// contextSwitch is the BLWP-equivalent workspace/PC/status push-and-switch
// shared by BLWP, XOP and interrupt acceptance: old WP/PC/ST are saved into
// R13/R14/R15 of the *new* workspace before it becomes current.
func (e *Emulator) contextSwitch(newWP, newPC uint16) {
	oldWP, oldPC, oldST := e.wp, e.pc, e.st
	e.wp = newWP
	e.writeReg(13, oldWP)
	e.writeReg(14, oldPC)
	e.writeReg(15, oldST)
	e.pc = newPC
}

// doBLWP implements BLWP @EA (§4.B). The next instruction must not be
// interruptible, so the X status flag is set (§8 invariant 3's parenthetical
// names BLWP alongside XOP).
func (e *Emulator) doBLWP(ea uint16) {
	newWP := e.readWord(ea)
	newPC := e.readWord(ea + 2)
	e.contextSwitch(newWP, newPC)
	e.st |= stX
}

// doXOP implements XOP n,S: vector at 0x0040+4n/0x0042+4n, plus the source
// operand's address (not its value) landing in the new R11.
func (e *Emulator) doXOP(n uint8, sourceEA uint16) {
	vec := uint16(0x0040) + 4*uint16(n)
	newWP := e.readWord(vec)
	newPC := e.readWord(vec + 2)
	e.contextSwitch(newWP, newPC)
	e.writeReg(11, sourceEA)
	e.st |= stX
	e.cyc += cycleXOP
}

// doRTWP implements RTWP: pop ST/PC/WP from R15/R14/R13 of the *current*
// (about to be abandoned) workspace, then re-evaluate any pending
// interrupt — which happens automatically via the uniform post-instruction
// boundary check in Step.
func (e *Emulator) doRTWP() {
	newWP := e.readReg(13)
	newPC := e.readReg(14)
	newST := e.readReg(15)
	e.wp = newWP
	e.pc = newPC
	e.st = newST
}

// requestInterrupt implements request(level) (§4.B): negative deasserts any
// pending interrupt; otherwise the level is recorded as pending (encoded as
// level+1, §3) and is serviced at the next instruction boundary that the
// current mask and X-lockout permit.
func (e *Emulator) requestInterrupt(level int) {
	if level < 0 {
		e.pendingInterrupt = 0
		return
	}
	e.pendingInterrupt = level + 1
}

// maybeDeliverInterrupt performs the BLWP-equivalent switch through vector
// level*4 when the pending level is within the current mask, then lowers
// the mask to max(level-1, 0) (§4.B).
func (e *Emulator) maybeDeliverInterrupt() {
	if e.pendingInterrupt == 0 {
		return
	}
	level := e.pendingInterrupt - 1
	if uint16(level) > (e.st & stMask) {
		return
	}
	vec := uint16(level * 4)
	newWP := e.readWord(vec)
	newPC := e.readWord(vec + 2)
	e.contextSwitch(newWP, newPC)
	newMask := level - 1
	if newMask < 0 {
		newMask = 0
	}
	e.st = (e.st &^ stMask) | uint16(newMask)
	e.pendingInterrupt = 0
}
