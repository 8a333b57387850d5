// cpu_tms9900_disasm.go - TMS9900 disassembler for the Machine Monitor
//
// Grounded on debug_disasm_z80.go's idiom: a decode function that returns
// (size, mnemonic) for one instruction, driven by a readMem callback so it
// can work against either live machine memory or a raw byte slice. Operand
// text uses the same addressing-mode/field math as cpu_tms9900_decode.go's
// execution path, kept in sync with it rather than re-deriving from scratch.

package main

import "fmt"

var tms9900Format1Mnem = map[uint16]string{
	opSZC: "SZC", opSZCB: "SZCB", opS: "S", opSB: "SB",
	opC: "C", opCB: "CB", opA: "A", opAB: "AB",
	opMOV: "MOV", opMOVB: "MOVB", opSOC: "SOC", opSOCB: "SOCB",
}

var tms9900SingleMnem = [...]string{
	singleBLWP: "BLWP", singleB: "B", singleX: "X", singleCLR: "CLR",
	singleNEG: "NEG", singleINV: "INV", singleINC: "INC", singleINCT: "INCT",
	singleDEC: "DEC", singleDECT: "DECT", singleBL: "BL", singleSWPB: "SWPB",
	singleSETO: "SETO", singleABS: "ABS",
}

var tms9900JumpMnem = [...]string{
	jmpJMP: "JMP", jmpJEQ: "JEQ", jmpJNE: "JNE", jmpJGT: "JGT", jmpJLT: "JLT",
	jmpJHE: "JHE", jmpJLE: "JLE", jmpJH: "JH", jmpJL: "JL", jmpJOC: "JOC",
	jmpJNC: "JNC", jmpJNO: "JNO", jmpJOP: "JOP",
}

var tms9900ImmMnem = [...]string{
	immLI: "LI", immAI: "AI", immANDI: "ANDI", immORI: "ORI", immCI: "CI",
	immLWPI: "LWPI", immLIMI: "LIMI", immSTWP: "STWP", immSTST: "STST",
}

var tms9900NoOpMnem = [...]string{
	noopRTWP: "RTWP", noopCKON: "CKON", noopCKOF: "CKOF", noopIDLE: "IDLE",
	noopRSET: "RSET", noopLREX: "LREX",
}

// operandText renders a Ts/S (or Td/D) addressing-mode field the way TI
// assembly listings do: R0, *R1, *R2+, @>1234, @>1234(R5).
func operandText(mode uint8, reg uint8, readMem func(addr uint64, size int) []byte, nextAddr uint64) (string, uint64) {
	switch mode {
	case addrRegister:
		return fmt.Sprintf("R%d", reg), nextAddr
	case addrRegisterIndir:
		return fmt.Sprintf("*R%d", reg), nextAddr
	case addrRegisterIndInc:
		return fmt.Sprintf("*R%d+", reg), nextAddr
	default: // addrSymbolic
		w := readMem(nextAddr, 2)
		var disp uint16
		if len(w) >= 2 {
			disp = uint16(w[0])<<8 | uint16(w[1])
		}
		nextAddr += 2
		if reg == 0 {
			return fmt.Sprintf("@>%04X", disp), nextAddr
		}
		return fmt.Sprintf("@>%04X(R%d)", disp, reg), nextAddr
	}
}

// disassembleTMS9900 decodes count instructions starting at addr.
func disassembleTMS9900(readMem func(addr uint64, size int) []byte, addr uint64, count int) []DisassembledLine {
	var lines []DisassembledLine
	for i := 0; i < count; i++ {
		raw := readMem(addr, 2)
		if len(raw) < 2 {
			break
		}
		op := uint16(raw[0])<<8 | uint16(raw[1])
		size, mnem, isBranch, target := decodeTMS9900Instruction(op, addr, readMem)

		var hexBytes []byte
		full := readMem(addr, size)
		hexBytes = append(hexBytes, full...)

		lines = append(lines, DisassembledLine{
			Address:      addr,
			HexBytes:     hexDump(hexBytes),
			Mnemonic:     mnem,
			Size:         size,
			IsBranch:     isBranch,
			BranchTarget: target,
		})
		addr += uint64(size)
	}
	return lines
}

func hexDump(b []byte) string {
	s := ""
	for i, v := range b {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%02X", v)
	}
	return s
}

// decodeTMS9900Instruction mirrors dispatch's classification in
// cpu_tms9900_decode.go, but only renders text rather than executing.
func decodeTMS9900Instruction(op uint16, addr uint64, readMem func(addr uint64, size int) []byte) (size int, mnemonic string, isBranch bool, target uint64) {
	next := addr + 2
	top := op >> 12

	switch {
	case top >= 4:
		td := uint8((op >> 10) & 0x3)
		d := uint8((op >> 6) & 0xF)
		ts := uint8((op >> 4) & 0x3)
		s := uint8(op & 0xF)
		srcTxt, next1 := operandText(ts, s, readMem, next)
		dstTxt, next2 := operandText(td, d, readMem, next1)
		name := tms9900Format1Mnem[top]
		return int(next2 - addr), fmt.Sprintf("%s %s,%s", name, srcTxt, dstTxt), false, 0

	case top == nibbleMPYDIV:
		div := op&mpydivDIVBit != 0
		ts := uint8((op >> 9) & 0x3)
		s := uint8((op >> 5) & 0xF)
		d := uint8((op >> 1) & 0xF)
		srcTxt, next1 := operandText(ts, s, readMem, next)
		name := "MPY"
		if div {
			name = "DIV"
		}
		return int(next1 - addr), fmt.Sprintf("%s %s,R%d", name, srcTxt, d), false, 0

	case top == nibbleFmt3:
		sub := op & fmt3SubMask
		ts := uint8((op >> 8) & 0x3)
		s := uint8((op >> 4) & 0xF)
		d := op & 0xF
		srcTxt, next1 := operandText(ts, s, readMem, next)
		name := "XOR"
		switch sub {
		case fmt3SubCOC:
			name = "COC"
		case fmt3SubCZC:
			name = "CZC"
		}
		return int(next1 - addr), fmt.Sprintf("%s %s,R%d", name, srcTxt, d), false, 0

	case top == nibbleJump:
		sub := (op >> 8) & 0xF
		disp := int8(op & 0xFF)
		t := uint64(int64(addr) + 2 + int64(disp)*2)
		name := "JMP"
		if int(sub) < len(tms9900JumpMnem) {
			name = tms9900JumpMnem[sub]
		}
		return 2, fmt.Sprintf("%s >%04X", name, t), true, t

	default: // top == nibbleZero
		switch {
		case op&shiftGroupMask == shiftGroupTag:
			sub := (op >> 8) & 0x3
			count := (op >> 4) & 0xF
			reg := op & 0xF
			names := [...]string{"SRA", "SRL", "SLA", "SRC"}
			return 2, fmt.Sprintf("%s R%d,%d", names[sub], reg, count), false, 0

		case op&0x0C00 == singleOpGroupTag:
			sub := (op >> 6) & 0xF
			ts := uint8((op >> 4) & 0x3)
			s := uint8(op & 0xF)
			operand, next1 := operandText(ts, s, readMem, next)
			name := "?"
			if int(sub) < len(tms9900SingleMnem) {
				name = tms9900SingleMnem[sub]
			}
			return int(next1 - addr), fmt.Sprintf("%s %s", name, operand), false, 0

		case op&0x0C00 == xopGroupTag:
			vector := uint8((op >> 6) & 0xF)
			ts := uint8((op >> 4) & 0x3)
			s := uint8(op & 0xF)
			operand, next1 := operandText(ts, s, readMem, next)
			return int(next1 - addr), fmt.Sprintf("XOP %s,%d", operand, vector), false, 0

		case op&cruGroupMask == cruGroupTag:
			sub := (op & cruSubMask) >> 7
			disp := int8(uint8(op&0x7F)<<1) >> 1
			names := [...]string{"SBO", "SBZ", "TB"}
			return 2, fmt.Sprintf("%s %d", names[sub], disp), false, 0

		case op&immGroupMask == immGroupTag:
			sub := (op & immSubMask) >> 4
			reg := op & 0xF
			name := "?"
			if int(sub) < len(tms9900ImmMnem) {
				name = tms9900ImmMnem[sub]
			}
			switch sub {
			case immLI, immAI, immANDI, immORI, immCI:
				w := readMem(next, 2)
				var imm uint16
				if len(w) >= 2 {
					imm = uint16(w[0])<<8 | uint16(w[1])
				}
				return 4, fmt.Sprintf("%s R%d,>%04X", name, reg, imm), false, 0
			case immLWPI, immLIMI:
				w := readMem(next, 2)
				var imm uint16
				if len(w) >= 2 {
					imm = uint16(w[0])<<8 | uint16(w[1])
				}
				return 4, fmt.Sprintf("%s >%04X", name, imm), false, 0
			default:
				return 2, fmt.Sprintf("%s R%d", name, reg), false, 0
			}

		default: // no-operand
			sub := op & noOpSubMask
			name := fmt.Sprintf("db >%04X", op)
			if int(sub) < len(tms9900NoOpMnem) {
				name = tms9900NoOpMnem[sub]
			}
			return 2, name, false, 0
		}
	}
}
