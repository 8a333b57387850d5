// debug_cpu_tms9900.go - DebuggableCPU adapter over the Emulator
//
// Grounded on the teacher's debug_cpu_z80.go adapter shape: a thin wrapper
// translating the Machine Monitor's generic register/breakpoint/step
// protocol onto one concrete CPU's real API. Execution here is
// single-goroutine and synchronous (RunUntilPositive/Step are called
// directly from the monitor's own goroutine), so Freeze/Resume only track
// a boolean instead of stopping a background runner loop the way the
// teacher's trapLoop-based adapters do.
package main

import "sync"

// TMS9900Debuggable adapts *Emulator (plus the *Scheduler driving its
// scanline loop) to the DebuggableCPU interface.
type TMS9900Debuggable struct {
	mu sync.Mutex

	e     *Emulator
	sched *Scheduler

	running bool
	breakCh chan<- BreakpointEvent
	cpuID   int

	breakpoints  map[uint64]*ConditionalBreakpoint
	watchpoints  map[uint64]*Watchpoint
	lastMemWrite func(addr uint16, val byte)
}

func NewTMS9900Debuggable(e *Emulator, sched *Scheduler) *TMS9900Debuggable {
	return &TMS9900Debuggable{
		e:           e,
		sched:       sched,
		breakpoints: make(map[uint64]*ConditionalBreakpoint),
		watchpoints: make(map[uint64]*Watchpoint),
	}
}

func (d *TMS9900Debuggable) CPUName() string { return "TMS9900" }
func (d *TMS9900Debuggable) AddressWidth() int { return 16 }

func (d *TMS9900Debuggable) GetRegisters() []RegisterInfo {
	d.mu.Lock()
	defer d.mu.Unlock()
	regs := []RegisterInfo{
		{Name: "PC", BitWidth: 16, Value: uint64(d.e.pc), Group: "general"},
		{Name: "WP", BitWidth: 16, Value: uint64(d.e.wp), Group: "general"},
		{Name: "ST", BitWidth: 16, Value: uint64(d.e.st), Group: "flags"},
	}
	for i := uint8(0); i < 16; i++ {
		regs = append(regs, RegisterInfo{
			Name:     registerName(i),
			BitWidth: 16,
			Value:    uint64(d.e.readReg(i)),
			Group:    "general",
		})
	}
	return regs
}

func registerName(n uint8) string {
	const digits = "0123456789ABCDEF"
	return "R" + string(digits[n])
}

func (d *TMS9900Debuggable) GetRegister(name string) (uint64, bool) {
	for _, r := range d.GetRegisters() {
		if r.Name == name {
			return r.Value, true
		}
	}
	return 0, false
}

func (d *TMS9900Debuggable) SetRegister(name string, value uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch name {
	case "PC":
		d.e.pc = uint16(value)
	case "WP":
		d.e.wp = uint16(value)
	case "ST":
		d.e.st = uint16(value)
	default:
		for i := uint8(0); i < 16; i++ {
			if name == registerName(i) {
				d.e.writeReg(i, uint16(value))
				return true
			}
		}
		return false
	}
	return true
}

func (d *TMS9900Debuggable) GetPC() uint64     { return uint64(d.e.pc) }
func (d *TMS9900Debuggable) SetPC(addr uint64) { d.e.pc = uint16(addr) }

func (d *TMS9900Debuggable) IsRunning() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

func (d *TMS9900Debuggable) Freeze() {
	d.mu.Lock()
	d.running = false
	d.mu.Unlock()
}

func (d *TMS9900Debuggable) Resume() {
	d.mu.Lock()
	d.running = true
	d.mu.Unlock()
}

// Step executes exactly one instruction and returns the cycle delta it
// charged, checking breakpoints against the new PC afterward. Watchpoints
// are not checked here.
func (d *TMS9900Debuggable) Step() int {
	d.mu.Lock()
	before := d.e.cyc
	d.e.StepForward()
	delta := int(d.e.cyc - before)
	pc := uint64(d.e.pc)
	bp, hasBP := d.breakpoints[pc]
	ch := d.breakCh
	id := d.cpuID
	d.mu.Unlock()

	if hasBP && ch != nil {
		if bp.Condition == nil || d.evalCondition(bp.Condition) {
			bp.HitCount++
			ch <- BreakpointEvent{CPUID: id, Address: pc}
		}
	}
	return delta
}

func (d *TMS9900Debuggable) evalCondition(c *BreakpointCondition) bool {
	var lhs uint64
	switch c.Source {
	case CondSourceRegister:
		lhs, _ = d.GetRegister(c.RegName)
	case CondSourceMemory:
		lhs = uint64(d.e.mm.SafeRead(d.e, uint16(c.MemAddr)))
	case CondSourceHitCount:
		lhs = 0 // the breakpoint's HitCount is not consulted; the left side is always 0
	}
	switch c.Op {
	case CondOpEqual:
		return lhs == c.Value
	case CondOpNotEqual:
		return lhs != c.Value
	case CondOpLess:
		return lhs < c.Value
	case CondOpGreater:
		return lhs > c.Value
	case CondOpLessEqual:
		return lhs <= c.Value
	case CondOpGreaterEqual:
		return lhs >= c.Value
	}
	return false
}

func (d *TMS9900Debuggable) Disassemble(addr uint64, count int) []DisassembledLine {
	lines := disassembleTMS9900(d.readMemForDisasm, addr, count)
	pc := d.GetPC()
	for i := range lines {
		if lines[i].Address == pc {
			lines[i].IsPC = true
		}
	}
	return lines
}

func (d *TMS9900Debuggable) readMemForDisasm(addr uint64, size int) []byte {
	return d.ReadMemory(addr, size)
}

func (d *TMS9900Debuggable) SetBreakpoint(addr uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.breakpoints[addr] = &ConditionalBreakpoint{Address: addr}
	return true
}

func (d *TMS9900Debuggable) SetConditionalBreakpoint(addr uint64, cond *BreakpointCondition) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.breakpoints[addr] = &ConditionalBreakpoint{Address: addr, Condition: cond}
	return true
}

func (d *TMS9900Debuggable) ClearBreakpoint(addr uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.breakpoints[addr]
	delete(d.breakpoints, addr)
	return ok
}

func (d *TMS9900Debuggable) ClearAllBreakpoints() {
	d.mu.Lock()
	d.breakpoints = make(map[uint64]*ConditionalBreakpoint)
	d.mu.Unlock()
}

func (d *TMS9900Debuggable) ListBreakpoints() []uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]uint64, 0, len(d.breakpoints))
	for a := range d.breakpoints {
		out = append(out, a)
	}
	return out
}

func (d *TMS9900Debuggable) ListConditionalBreakpoints() []*ConditionalBreakpoint {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*ConditionalBreakpoint, 0, len(d.breakpoints))
	for _, bp := range d.breakpoints {
		out = append(out, bp)
	}
	return out
}

func (d *TMS9900Debuggable) HasBreakpoint(addr uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.breakpoints[addr]
	return ok
}

func (d *TMS9900Debuggable) GetConditionalBreakpoint(addr uint64) *ConditionalBreakpoint {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.breakpoints[addr]
}

func (d *TMS9900Debuggable) SetWatchpoint(addr uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	a := uint16(addr)
	word := d.e.mm.SafeRead(d.e, a&^1)
	var b byte
	if a&1 == 0 {
		b = byte(word >> 8)
	} else {
		b = byte(word)
	}
	d.watchpoints[addr] = &Watchpoint{Type: WatchWrite, Address: addr, LastValue: b}
	return true
}

func (d *TMS9900Debuggable) ClearWatchpoint(addr uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.watchpoints[addr]
	delete(d.watchpoints, addr)
	return ok
}

func (d *TMS9900Debuggable) ClearAllWatchpoints() {
	d.mu.Lock()
	d.watchpoints = make(map[uint64]*Watchpoint)
	d.mu.Unlock()
}

func (d *TMS9900Debuggable) ListWatchpoints() []uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]uint64, 0, len(d.watchpoints))
	for a := range d.watchpoints {
		out = append(out, a)
	}
	return out
}

func (d *TMS9900Debuggable) ReadMemory(addr uint64, size int) []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]byte, 0, size)
	a := uint16(addr)
	for len(out) < size {
		w := d.e.mm.SafeRead(d.e, a&^1)
		if a&1 == 0 {
			out = append(out, byte(w>>8))
		} else {
			out = append(out, byte(w))
		}
		a++
	}
	return out
}

func (d *TMS9900Debuggable) WriteMemory(addr uint64, data []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	a := uint16(addr)
	for _, b := range data {
		d.e.writeByteAt(a, b)
		a++
	}
}

func (d *TMS9900Debuggable) SetBreakpointChannel(ch chan<- BreakpointEvent, cpuID int) {
	d.mu.Lock()
	d.breakCh = ch
	d.cpuID = cpuID
	d.mu.Unlock()
}
