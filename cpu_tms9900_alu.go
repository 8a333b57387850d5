// cpu_tms9900_alu.go - status-flag computation and ALU operations (§4.B)

package main

import "math/bits"

// setCompareFlags implements the direct-magnitude compare contract used by
// C/CB/CI/COC/CZC (§4.B: "status computed from operands directly; no
// write"). a and b are the two operand values (for the byte compare, the
// byte sits in the high half of the word).
func (e *Emulator) setCompareFlags(a, b uint16) {
	e.st &^= (stLGT | stAGT | stEQ)
	switch {
	case a == b:
		e.st |= stEQ
	case a > b:
		e.st |= stLGT
		if int16(a) > int16(b) {
			e.st |= stAGT
		}
	default:
		if int16(a) > int16(b) {
			e.st |= stAGT
		}
	}
}

// setResultFlags sets LGT/AGT/EQ against zero for an ALU result, the
// pattern shared by MOV, the logical ops, and the arithmetic ops (§4.B).
func (e *Emulator) setResultFlags(word uint16) {
	e.st &^= (stLGT | stAGT | stEQ)
	if word == 0 {
		e.st |= stEQ
		return
	}
	e.st |= stLGT
	if int16(word) > 0 {
		e.st |= stAGT
	}
}

func (e *Emulator) setParity(b byte) {
	if bits.OnesCount8(b)%2 == 1 {
		e.st |= stOP
	} else {
		e.st &^= stOP
	}
}

// aluAdd implements the ADD/AB contract: C on unsigned overflow, OV on signed
// overflow, LGT/AGT/EQ vs the result.
func (e *Emulator) aluAdd(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	result := uint16(sum)
	e.st &^= (stC | stOV)
	if sum > 0xFFFF {
		e.st |= stC
	}
	if (a^result)&(b^result)&0x8000 != 0 {
		e.st |= stOV
	}
	e.setResultFlags(result)
	return result
}

// aluSub implements S/SB: dest = dest - source. C is set when dest >= source
// (no borrow), per §4.B's literal contract.
func (e *Emulator) aluSub(dest, source uint16) uint16 {
	result := dest - source
	e.st &^= (stC | stOV)
	if dest >= source {
		e.st |= stC
	}
	if (dest^source)&(dest^result)&0x8000 != 0 {
		e.st |= stOV
	}
	e.setResultFlags(result)
	return result
}

func (e *Emulator) aluSZC(dest, source uint16) uint16 {
	r := dest &^ source
	e.setResultFlags(r)
	return r
}

func (e *Emulator) aluSOC(dest, source uint16) uint16 {
	r := dest | source
	e.setResultFlags(r)
	return r
}

func (e *Emulator) aluXOR(dest, source uint16) uint16 {
	r := dest ^ source
	e.setResultFlags(r)
	return r
}

func (e *Emulator) aluINV(v uint16) uint16 {
	r := ^v
	e.setResultFlags(r)
	return r
}

func (e *Emulator) aluNEG(v uint16) uint16 {
	r := -v
	e.st &^= (stC | stOV)
	if r == 0 {
		e.st |= stC
	}
	if v == 0x8000 {
		e.st |= stOV
	}
	e.setResultFlags(r)
	return r
}

// aluABS implements §9 ambiguity (a)'s resolution: clear C and OV, set OV
// only when the input is 0x8000.
func (e *Emulator) aluABS(v uint16) uint16 {
	r := v
	if int16(v) < 0 {
		r = -v
	}
	e.st &^= (stC | stOV)
	if v == 0x8000 {
		e.st |= stOV
	}
	e.setResultFlags(r)
	return r
}

// shiftCount resolves the count field per §4.B: the instruction's own
// field, or R0's low nibble if that field is zero, or 16 if both are zero.
func (e *Emulator) shiftCount(field uint8) uint {
	if field != 0 {
		return uint(field)
	}
	r0 := e.readReg(0) & 0x0F
	if r0 != 0 {
		return uint(r0)
	}
	return 16
}

func (e *Emulator) aluSRA(v uint16, count uint) uint16 {
	var lastOut uint16
	r := v
	for i := uint(0); i < count; i++ {
		lastOut = r & 1
		r = uint16(int16(r) >> 1)
	}
	e.st &^= (stC | stOV)
	if count > 0 && lastOut != 0 {
		e.st |= stC
	}
	e.setResultFlags(r)
	return r
}

func (e *Emulator) aluSRL(v uint16, count uint) uint16 {
	var lastOut uint16
	r := v
	for i := uint(0); i < count; i++ {
		lastOut = r & 1
		r >>= 1
	}
	e.st &^= (stC | stOV)
	if count > 0 && lastOut != 0 {
		e.st |= stC
	}
	e.setResultFlags(r)
	return r
}

func (e *Emulator) aluSLA(v uint16, count uint) uint16 {
	r := v
	var lastOut uint16
	signChanged := false
	startSign := r & 0x8000
	for i := uint(0); i < count; i++ {
		lastOut = (r >> 15) & 1
		r <<= 1
		if r&0x8000 != startSign {
			signChanged = true
		}
	}
	e.st &^= (stC | stOV)
	if count > 0 && lastOut != 0 {
		e.st |= stC
	}
	if signChanged {
		e.st |= stOV
	}
	e.setResultFlags(r)
	return r
}

func (e *Emulator) aluSRC(v uint16, count uint) uint16 {
	n := count % 16
	r := v
	var lastOut uint16
	if n == 0 {
		if count > 0 {
			lastOut = v & 1
		}
	} else {
		r = (v >> n) | (v << (16 - n))
		lastOut = (v >> (n - 1)) & 1
	}
	e.st &^= (stC | stOV)
	if count > 0 && lastOut != 0 {
		e.st |= stC
	}
	e.setResultFlags(r)
	return r
}

// aluMPY implements MPY S,D: the 32-bit unsigned product of S and D is
// placed in the register pair (D high word, D+1 low word).
func (e *Emulator) aluMPY(s, d uint16) (hi, lo uint16) {
	product := uint32(s) * uint32(d)
	return uint16(product >> 16), uint16(product)
}

// aluDIV implements DIV S,D: divides the 32-bit dividend in (D,D+1) by S.
// Returns ok=false (OV set by the caller) when the divisor doesn't exceed
// the dividend's high word, per §4.B/§8's boundary rule (this also covers
// divisor == 0).
func (e *Emulator) aluDIV(divisor, dividendHi, dividendLo uint16) (quotient, remainder uint16, ok bool) {
	if divisor <= dividendHi {
		return 0, 0, false
	}
	dividend := uint32(dividendHi)<<16 | uint32(dividendLo)
	q := dividend / uint32(divisor)
	r := dividend % uint32(divisor)
	if q > 0xFFFF {
		return 0, 0, false
	}
	return uint16(q), uint16(r), true
}
