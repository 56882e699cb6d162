// status_cmd.go - `bbcreplay status <debug-file>`: a small live TUI
// dashboard (cycle count, register view, ring-buffer fill level) driven
// by polling a small JSON debug-snapshot file (spec.md §4.1 debug
// register poke API). The engine binary in this repository (main.go) has
// no option that writes this file.
//
// Grounded on hejops-gone's use of charmbracelet/bubbletea+lipgloss,
// wired here as the pack's only TUI framework.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// debugSnapshotFile is the JSON shape the dashboard reads (a tiny subset
// of MachineSnapshot's fields).
type debugSnapshotFile struct {
	Cycles    uint64 `json:"cycles"`
	PC        uint16 `json:"pc"`
	A         byte   `json:"a"`
	X         byte   `json:"x"`
	Y         byte   `json:"y"`
	SR        byte   `json:"sr"`
	VideoUsed int    `json:"video_used"`
	SoundUsed int    `json:"sound_used"`
}

type statusModel struct {
	path string
	last debugSnapshotFile
	err  error
}

type tickMsg time.Time

func (m statusModel) Init() tea.Cmd { return tickCmd() }

func tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg:
		return m, tea.Quit
	case tickMsg:
		data, err := os.ReadFile(m.path)
		if err != nil {
			m.err = err
			return m, tickCmd()
		}
		var snap debugSnapshotFile
		if err := json.Unmarshal(data, &snap); err != nil {
			m.err = err
			return m, tickCmd()
		}
		m.last, m.err = snap, nil
		return m, tickCmd()
	}
	return m, nil
}

var statusBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

func (m statusModel) View() string {
	if m.err != nil {
		return statusBoxStyle.Render(fmt.Sprintf("waiting for %s: %v", m.path, m.err))
	}
	body := fmt.Sprintf(
		"cycles: %d\nPC: $%04X  A: $%02X  X: $%02X  Y: $%02X  SR: $%02X\nvideo ring: %d  sound ring: %d\n\n(press any key to quit)",
		m.last.Cycles, m.last.PC, m.last.A, m.last.X, m.last.Y, m.last.SR, m.last.VideoUsed, m.last.SoundUsed)
	return statusBoxStyle.Render(body)
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <debug-file>",
		Short: "Live dashboard polling a running core's debug-snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(statusModel{path: args[0]})
			_, err := p.Run()
			return err
		},
	}
}
