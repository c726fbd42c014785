package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// fetchFinishedMsg only signals that the fetch closure returned; its outcome
// is captured outside the program.
type fetchFinishedMsg struct{}

// fetchModel animates a spinner on stderr while a fetch runs, then clears
// itself. It is presentation only and carries no fetch state beyond the
// label.
type fetchModel struct {
	spin     spinner.Model
	label    string
	start    tea.Cmd
	finished bool
}

func (m fetchModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.start)
}

func (m fetchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchFinishedMsg:
		m.finished = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m fetchModel) View() string {
	if m.finished {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spin.View(), m.label)
}

// runFetch executes fetch while a spinner with the given label animates on
// the command's stderr. The fetch result is written before the finished
// message is emitted, so reading it after Run returns is safe.
func runFetch(cmd *cobra.Command, label string, fetch func(context.Context) error) error {
	ctx := cmd.Context()

	var outcome error
	model := fetchModel{
		spin: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("205"))),
		),
		label: label,
		start: func() tea.Msg {
			outcome = fetch(ctx)
			return fetchFinishedMsg{}
		},
	}

	program := tea.NewProgram(
		model,
		tea.WithInput(nil),
		tea.WithOutput(cmd.ErrOrStderr()),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run fetch spinner: %w", err)
	}

	return outcome
}
