package demo

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	addLatency     = 600 * time.Millisecond
	refreshLatency = 900 * time.Millisecond
)

// addRowCmd delivers the new row after a short simulated delay.
func addRowCmd(row Person) tea.Cmd {
	return tea.Tick(addLatency, func(time.Time) tea.Msg {
		return RowAddedMsg{Row: row}
	})
}

// refreshCmd re-delivers the dataset after a short simulated delay.
func refreshCmd(rows []Person) tea.Cmd {
	return tea.Tick(refreshLatency, func(time.Time) tea.Msg {
		return RefreshedMsg{Rows: rows}
	})
}
