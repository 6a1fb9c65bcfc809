package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type queryDoneMsg struct {
	err error
}

type querySpinnerModel struct {
	spinner spinner.Model
	label   string
	query   tea.Cmd
	err     error
	done    bool
}

func newQuerySpinnerModel(label string, query tea.Cmd) querySpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return querySpinnerModel{
		spinner: s,
		label:   label,
		query:   query,
	}
}

func (m querySpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.query)
}

func (m querySpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case queryDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m querySpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runQuerySpinner shows a spinner on output while query performs its
// single network round trip.
func runQuerySpinner(ctx context.Context, output io.Writer, label string, query func(context.Context) error) error {
	queryCmd := func() tea.Msg {
		return queryDoneMsg{err: query(ctx)}
	}

	p := tea.NewProgram(
		newQuerySpinnerModel(label, queryCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(querySpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}

const queryingLabel = "Querying Sapphire..."

// runQuery wraps a round trip with the spinner unless JSON output was
// requested (machine-readable mode keeps stderr quiet).
func runQuery(cmd *cobra.Command, asJSON bool, query func(context.Context) error) error {
	if asJSON {
		return query(cmd.Context())
	}

	return runQuerySpinner(cmd.Context(), cmd.ErrOrStderr(), queryingLabel, query)
}
