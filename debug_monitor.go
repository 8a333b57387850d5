// debug_monitor.go - Machine Monitor core (freeze/resume, activate/deactivate)
//
// Collapsed from the teacher's multi-CPU, multi-architecture monitor (which
// juggled a map of CPUEntry plus a CoprocessorManager) down to the single
// fixed TMS9900Debuggable this repo always has exactly one of. The
// freeze/resume/activate/breakpoint-event shape is otherwise the teacher's.

package main

import "fmt"

// MonitorState represents whether the monitor is active.
type MonitorState int

const (
	MonitorInactive MonitorState = iota
	MonitorActive
)

// OutputLine holds one line of the monitor's scrollback buffer.
type OutputLine struct {
	Text  string
	Color uint32 // RGBA packed
}

// MachineMonitor is the debugger state machine wrapped around a single
// TMS9900Debuggable.
type MachineMonitor struct {
	state MonitorState
	cpu   *TMS9900Debuggable

	breakpointChan chan BreakpointEvent

	outputLines  []OutputLine
	maxOutput    int
	scrollOffset int

	inputLine  []byte
	cursorPos  int
	history    []string
	historyIdx int

	wasRunning bool
	prevRegs   map[string]uint64
}

// NewMachineMonitor creates a monitor wrapping cpu.
func NewMachineMonitor(cpu *TMS9900Debuggable) *MachineMonitor {
	m := &MachineMonitor{
		cpu:            cpu,
		breakpointChan: make(chan BreakpointEvent, 1),
		maxOutput:      500,
		prevRegs:       make(map[string]uint64),
	}
	cpu.SetBreakpointChannel(m.breakpointChan, 0)
	return m
}

// IsActive returns whether the monitor is currently shown.
func (m *MachineMonitor) IsActive() bool {
	return m.state == MonitorActive
}

// Activate freezes the CPU and enters the monitor.
func (m *MachineMonitor) Activate() {
	if m.state == MonitorActive {
		return
	}
	m.state = MonitorActive
	m.wasRunning = m.cpu.IsRunning()
	if m.wasRunning {
		m.cpu.Freeze()
	}

	m.scrollOffset = 0
	m.inputLine = nil
	m.cursorPos = 0
	m.historyIdx = len(m.history)

	m.saveCurrentRegs()
	m.appendOutput("MACHINE MONITOR - Type ? for help", colorCyan)
	m.showRegisters()
	m.showDisassembly(0, 8)
}

// Deactivate resumes the CPU if it was running and exits the monitor.
func (m *MachineMonitor) Deactivate() {
	if m.state == MonitorInactive {
		return
	}
	m.state = MonitorInactive
	if m.wasRunning {
		m.cpu.Resume()
	}
}

func (m *MachineMonitor) appendOutput(text string, color uint32) {
	m.outputLines = append(m.outputLines, OutputLine{Text: text, Color: color})
	if len(m.outputLines) > m.maxOutput {
		m.outputLines = m.outputLines[len(m.outputLines)-m.maxOutput:]
	}
}

func (m *MachineMonitor) saveCurrentRegs() {
	m.prevRegs = make(map[string]uint64)
	for _, r := range m.cpu.GetRegisters() {
		m.prevRegs[r.Name] = r.Value
	}
}

// StartBreakpointListener runs a background goroutine that activates the
// monitor whenever the CPU hits a breakpoint.
func (m *MachineMonitor) StartBreakpointListener() {
	go func() {
		for ev := range m.breakpointChan {
			m.handleBreakpointHit(ev)
		}
	}()
}

func (m *MachineMonitor) handleBreakpointHit(ev BreakpointEvent) {
	wasRunning := m.cpu.IsRunning() || true // always true: a hit is handled as if the CPU had been running
	m.cpu.Freeze()

	msg := fmt.Sprintf("BREAK at $%04X", ev.Address)
	if ev.IsWatch {
		msg = fmt.Sprintf("WATCH $%X: $%02X -> $%02X at PC=$%04X",
			ev.WatchAddr, ev.WatchOldValue, ev.WatchNewValue, ev.Address)
	}

	m.state = MonitorActive
	m.wasRunning = wasRunning
	m.scrollOffset = 0
	m.inputLine = nil
	m.cursorPos = 0
	m.historyIdx = len(m.history)

	m.appendOutput(msg, colorRed)
	m.saveCurrentRegs()
	m.showRegisters()
	m.showDisassembly(0, 8)
}

// Color constants (RGBA packed as 0xRRGGBBAA)
const (
	colorWhite  = 0xFFFFFFFF
	colorCyan   = 0x64C8FFFF
	colorYellow = 0xFFFF55FF
	colorRed    = 0xFF5555FF
	colorGreen  = 0x55FF55FF
	colorDim    = 0x5555FFFF
)

// showRegisters renders the current register file into the scrollback,
// highlighting values that changed since the last snapshot.
func (m *MachineMonitor) showRegisters() {
	for _, r := range m.cpu.GetRegisters() {
		color := uint32(colorWhite)
		if prev, ok := m.prevRegs[r.Name]; ok && prev != r.Value {
			color = colorYellow
		}
		m.appendOutput(fmt.Sprintf("%-3s = %04X", r.Name, r.Value), color)
	}
}

// showDisassembly renders count instructions starting offset bytes past
// the current PC.
func (m *MachineMonitor) showDisassembly(offset uint64, count int) {
	start := m.cpu.GetPC() + offset
	for _, line := range m.cpu.Disassemble(start, count) {
		marker := "  "
		if line.IsPC {
			marker = "->"
		}
		m.appendOutput(fmt.Sprintf("%s %04X  %-11s %s", marker, line.Address, line.HexBytes, line.Mnemonic), colorGreen)
	}
}
