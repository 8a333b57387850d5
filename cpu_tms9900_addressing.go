// cpu_tms9900_addressing.go - Ts/Td addressing-mode resolution (§4.B)

package main

// resolveOperand computes the effective address for the given mode and
// register, charging the mode's cycle surcharge and consuming a trailing
// immediate word for mode 2. The post-increment of mode 3 is applied
// immediately once the register's current value has been captured as the
// EA — a documented simplification of §4.B's "applied after the full
// instruction has consumed its operand": since no instruction in this core
// re-reads the same register for a second operand after resolving a mode-3
// source, the observable effect is identical.
func (e *Emulator) resolveOperand(mode uint8, reg uint8, isByte bool) uint16 {
	switch mode {
	case addrRegister:
		return e.regAddr(reg)
	case addrRegisterIndir:
		e.cyc += cycleModeIndirect
		return e.readReg(reg)
	case addrSymbolic:
		e.cyc += cycleModeSymbolic
		base := e.fetchWord()
		if reg != 0 {
			base += e.readReg(reg)
		}
		return base
	case addrRegisterIndInc:
		ea := e.readReg(reg)
		delta := uint16(2)
		if isByte {
			delta = 1
		}
		e.writeReg(reg, ea+delta)
		return ea
	default:
		return 0
	}
}
