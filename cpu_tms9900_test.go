// cpu_tms9900_test.go - opcode-table tests for the TMS9900 interpreter
//
// Table-driven against the emulator's own encode/execute path, matching the
// teacher's own plain `testing` idiom for ISA interpreter coverage (no
// testify needed here: each case is a literal input/output comparison).

package main

import "testing"

// testProgramBase sits in the always-RAM-backed high expansion region so tests
// can freely write instruction words without touching ROM or device ports.
const (
	testProgramBase = uint16(0xA000)
	testWorkspace   = uint16(0x8300) // inside the aliased fast-RAM window
)

func newTestEmulator() *Emulator {
	e := NewEmulator(NewHeadlessHost())
	e.wp = testWorkspace
	e.pc = testProgramBase
	return e
}

func (e *Emulator) loadProgram(words ...uint16) {
	addr := testProgramBase
	for _, w := range words {
		e.mm.Write(e, addr, w)
		addr += 2
	}
}

func encodeFormat1(top uint16, ts, s, td, d uint8) uint16 {
	return top<<12 | uint16(td&0x3)<<10 | uint16(d&0xF)<<6 | uint16(ts&0x3)<<4 | uint16(s&0xF)
}

func encodeImmediate(sub uint8, reg uint8) uint16 {
	return immGroupTag | uint16(sub&0xF)<<4 | uint16(reg&0xF)
}

func encodeSingleOp(sub uint8, ts, s uint8) uint16 {
	return singleOpGroupTag | uint16(sub&0xF)<<6 | uint16(ts&0x3)<<4 | uint16(s&0xF)
}

func encodeJump(sub uint8, disp int8) uint16 {
	return nibbleJump<<12 | uint16(sub&0xF)<<8 | uint16(uint8(disp))
}

func TestImmediateLoadAndArithmetic(t *testing.T) {
	e := newTestEmulator()
	e.loadProgram(
		encodeImmediate(immLI, 0), 0x0005, // LI R0,5
		encodeImmediate(immAI, 0), 0x0003, // AI R0,3
	)
	e.Step()
	if got := e.readReg(0); got != 5 {
		t.Fatalf("LI R0,5: got %#04x", got)
	}
	e.Step()
	if got := e.readReg(0); got != 8 {
		t.Fatalf("AI R0,3: got %#04x", got)
	}
	if e.st&stEQ != 0 {
		t.Fatalf("expected EQ clear after AI producing nonzero result")
	}
}

func TestFormat1MoveAndAdd(t *testing.T) {
	e := newTestEmulator()
	e.writeReg(1, 0x1234)
	e.loadProgram(
		encodeFormat1(opMOV, addrRegister, 1, addrRegister, 2), // MOV R1,R2
		encodeFormat1(opA, addrRegister, 1, addrRegister, 2),   // A R1,R2
	)
	e.Step()
	if got := e.readReg(2); got != 0x1234 {
		t.Fatalf("MOV R1,R2: got %#04x", got)
	}
	e.Step()
	if got := e.readReg(2); got != 0x2468 {
		t.Fatalf("A R1,R2: got %#04x", got)
	}
}

func TestFormat1CompareSetsFlags(t *testing.T) {
	e := newTestEmulator()
	e.writeReg(1, 5)
	e.writeReg(2, 5)
	e.loadProgram(encodeFormat1(opC, addrRegister, 1, addrRegister, 2)) // C R1,R2
	e.Step()
	if e.st&stEQ == 0 {
		t.Fatalf("expected EQ set comparing equal registers")
	}
}

func TestSingleOperandClearAndInc(t *testing.T) {
	e := newTestEmulator()
	e.writeReg(3, 0xFFFF)
	e.loadProgram(
		encodeSingleOp(singleCLR, addrRegister, 3), // CLR R3
		encodeSingleOp(singleINC, addrRegister, 3), // INC R3
	)
	e.Step()
	if got := e.readReg(3); got != 0 {
		t.Fatalf("CLR R3: got %#04x", got)
	}
	e.Step()
	if got := e.readReg(3); got != 1 {
		t.Fatalf("INC R3: got %#04x", got)
	}
}

func TestJumpTakenAndNotTaken(t *testing.T) {
	e := newTestEmulator()
	e.loadProgram(encodeJump(jmpJMP, 4)) // JMP +4 words -> PC advances 2(fetch)+4*2
	start := e.pc
	e.Step()
	want := start + 2 + 4*2
	if e.pc != want {
		t.Fatalf("JMP: got pc=%#04x want %#04x", e.pc, want)
	}

	e2 := newTestEmulator()
	e2.st &^= stEQ
	e2.loadProgram(encodeJump(jmpJEQ, 4)) // JEQ not taken (EQ clear)
	pcAfterFetch := e2.pc + 2
	e2.Step()
	if e2.pc != pcAfterFetch {
		t.Fatalf("JEQ not taken: got pc=%#04x want %#04x", e2.pc, pcAfterFetch)
	}
}

func TestByteOperandHighLowHalves(t *testing.T) {
	e := newTestEmulator()
	e.writeWord(testWorkspace+0x20, 0) // scratch word at an arbitrary even EA
	e.writeByteAt(testWorkspace+0x20, 0xAB)
	if got := e.readByteAt(testWorkspace + 0x20); got != 0xAB {
		t.Fatalf("high byte: got %#02x", got)
	}
	e.writeByteAt(testWorkspace+0x21, 0xCD)
	if got := e.readWord(testWorkspace + 0x20); got != 0xABCD {
		t.Fatalf("packed word: got %#04x", got)
	}
}

func TestResetLoadsVectorFromSystemROM(t *testing.T) {
	e := NewEmulator(NewHeadlessHost())
	copy(e.systemROM, []uint16{0x8300, 0x0010}) // WP, PC at the reset vector
	e.Reset()
	if e.wp != 0x8300 || e.pc != 0x0010 {
		t.Fatalf("Reset: got wp=%#04x pc=%#04x", e.wp, e.pc)
	}
	if e.cyc != 0 || e.totalCycles != 0 {
		t.Fatalf("Reset: expected cycle counters cleared")
	}
}

func TestRunUntilPositiveAdvancesCycleBudget(t *testing.T) {
	e := newTestEmulator()
	e.loadProgram(
		encodeImmediate(immLI, 0), 0x0001,
		encodeImmediate(immLI, 0), 0x0002,
	)
	e.cyc = -1
	e.RunUntilPositive()
	if e.cyc <= 0 {
		t.Fatalf("expected cyc to end positive, got %d", e.cyc)
	}
}
