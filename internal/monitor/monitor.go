// Package monitor implements an interactive terminal debugger for a
// running console.System: a bubbletea TUI that single-steps the CPU
// one instruction at a time, showing memory pages, register state, and
// the decoded opcode about to execute.
package monitor

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/mtvoid/gones/console"
	"github.com/mtvoid/gones/cpu"
)

const bytesPerPage = 16

type model struct {
	sys    *console.System
	prevPC uint16
}

// New builds a debugger model over an already-loaded system.
func New(sys *console.System) tea.Model {
	return model{sys: sys, prevPC: sys.CPU.PC}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "j":
		m.prevPC = m.sys.CPU.PC
		m.sys.CPU.Tick()
		for m.sys.CPU.CyclesRemaining() > 0 {
			m.sys.CPU.Tick()
		}
	case "f":
		m.sys.PPU.FrameReady = false
		for !m.sys.PPU.FrameReady {
			m.sys.Step()
		}
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	line := fmt.Sprintf("%04x | ", start)
	for i := 0; i < bytesPerPage; i++ {
		address := start + uint16(i)
		b := m.sys.CPUBus.Read(address)
		if address == m.sys.CPU.PC {
			line += fmt.Sprintf("[%02x] ", b)
		} else {
			line += fmt.Sprintf(" %02x  ", b)
		}
	}
	return line
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < bytesPerPage; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	base := m.sys.CPU.PC &^ (bytesPerPage - 1)
	lines := []string{header}
	for i := -2; i <= 2; i++ {
		lines = append(lines, m.renderPage(base+uint16(i*bytesPerPage)))
	}
	return strings.Join(lines, "\n")
}

func (m model) status() string {
	c := m.sys.CPU
	flags := []bool{
		c.P&cpu.FlagNegative != 0, c.P&cpu.FlagOverflow != 0, c.P&cpu.FlagUnused != 0, c.P&cpu.FlagBreak != 0,
		c.P&cpu.FlagDecimal != 0, c.P&cpu.FlagInterruptDisable != 0, c.P&cpu.FlagZero != 0, c.P&cpu.FlagCarry != 0,
	}
	flagLine := ""
	for _, f := range flags {
		if f {
			flagLine += "/ "
		} else {
			flagLine += "  "
		}
	}

	return fmt.Sprintf(`
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
Scanline: %d Dot: %d
N V U B D I Z C
`,
		c.PC, m.prevPC, c.A, c.X, c.Y, c.SP,
		m.sys.PPU.Scanline(), m.sys.PPU.Dot(),
	) + flagLine
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		spew.Sdump(m.sys.CPU.PeekOpcode()),
		"space/j: step one instruction   f: run to next frame   q: quit",
	)
}

// Run starts the interactive debugger loop, blocking until the user
// quits.
func Run(sys *console.System) error {
	_, err := tea.NewProgram(New(sys)).Run()
	return err
}
