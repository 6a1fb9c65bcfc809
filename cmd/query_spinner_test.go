package cmd

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuerySpinnerViewShowsLabel(t *testing.T) {
	m := newQuerySpinnerModel(queryingLabel, nil)

	assert.Contains(t, m.View(), "Querying Sapphire")
}

func TestQuerySpinnerQuitsOnDone(t *testing.T) {
	m := newQuerySpinnerModel(queryingLabel, nil)

	queryErr := errors.New("gateway closed the connection")
	updated, teaCmd := m.Update(queryDoneMsg{err: queryErr})

	final, ok := updated.(querySpinnerModel)
	require.True(t, ok)
	assert.True(t, final.done)
	assert.Equal(t, queryErr, final.err)
	assert.Empty(t, final.View(), "final frame must clear the spinner line")

	require.NotNil(t, teaCmd)
	assert.Equal(t, tea.Quit(), teaCmd())
}

func TestRunQueryJSONSkipsSpinner(t *testing.T) {
	root := newBaseCmd()
	root.SetContext(context.Background())

	ran := false
	err := runQuery(root, true, func(_ context.Context) error {
		ran = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
}
