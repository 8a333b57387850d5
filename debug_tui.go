// debug_tui.go - bubbletea/lipgloss debugger TUI (SPEC_FULL §0 ADD)
//
// Grounded on hejops-gone/cpu/debugger.go's tea.Model shape: a disassembly
// panel and register panel rendered side by side, driven by single
// keystrokes. "j"/space single-steps, "b" toggles a breakpoint at PC, "u"
// steps backward through the undo journal, "r" runs until the next
// breakpoint (watchpoints are not checked) or a fixed step limit, "q" quits. go-spew dumps the currently
// disassembled instruction's DisassembledLine for a raw look at its
// fields, the same debugging reflex the teacher's View uses spew.Sdump for.

package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

var (
	tuiPCStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	tuiBreakStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	tuiDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

type debugTUIModel struct {
	mon    *MachineMonitor
	cpu    *TMS9900Debuggable
	quit   bool
	errMsg string
}

func newDebugTUIModel(mon *MachineMonitor, cpu *TMS9900Debuggable) debugTUIModel {
	return debugTUIModel{mon: mon, cpu: cpu}
}

func (m debugTUIModel) Init() tea.Cmd {
	return nil
}

func (m debugTUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		m.quit = true
		return m, tea.Quit
	case " ", "j":
		m.cpu.Step()
	case "b":
		pc := m.cpu.GetPC()
		if m.cpu.HasBreakpoint(pc) {
			m.cpu.ClearBreakpoint(pc)
		} else {
			m.cpu.SetBreakpoint(pc)
		}
	case "u":
		if err := m.cpu.e.StepBackward(); err != nil {
			m.errMsg = err.Error()
		}
	case "r":
		for i := 0; i < 1_000_000; i++ {
			pc := m.cpu.GetPC()
			if m.cpu.HasBreakpoint(pc) && i > 0 {
				break
			}
			m.cpu.Step()
		}
	}
	return m, nil
}

func (m debugTUIModel) registerPanel() string {
	var b strings.Builder
	for _, r := range m.cpu.GetRegisters() {
		fmt.Fprintf(&b, "%-3s = %04X\n", r.Name, r.Value)
	}
	return b.String()
}

func (m debugTUIModel) disassemblyPanel() string {
	pc := m.cpu.GetPC()
	var b strings.Builder
	for _, line := range m.cpu.Disassemble(pc, 12) {
		marker := "   "
		text := fmt.Sprintf("%04X  %-11s %s", line.Address, line.HexBytes, line.Mnemonic)
		if line.IsPC {
			marker = tuiPCStyle.Render(" ->")
			text = tuiPCStyle.Render(text)
		} else if m.cpu.HasBreakpoint(line.Address) {
			marker = tuiBreakStyle.Render(" ● ")
		}
		fmt.Fprintf(&b, "%s %s\n", marker, text)
	}
	return b.String()
}

func (m debugTUIModel) View() string {
	if m.quit {
		return ""
	}
	panels := lipgloss.JoinHorizontal(lipgloss.Top, m.disassemblyPanel(), "   ", m.registerPanel())

	help := tuiDimStyle.Render("space/j step  b breakpoint  u undo  r run  q quit")
	detail := ""
	if lines := m.cpu.Disassemble(m.cpu.GetPC(), 1); len(lines) == 1 {
		detail = spew.Sdump(lines[0])
	}
	if m.errMsg != "" {
		detail += tuiBreakStyle.Render(m.errMsg) + "\n"
	}
	return lipgloss.JoinVertical(lipgloss.Left, panels, "", help, detail)
}

// RunDebugTUI starts the interactive debugger loop and blocks until the
// user quits.
func RunDebugTUI(mon *MachineMonitor, cpu *TMS9900Debuggable) error {
	_, err := tea.NewProgram(newDebugTUIModel(mon, cpu)).Run()
	return err
}
