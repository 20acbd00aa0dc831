package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/splice/internal/domain"
	m "github.com/mouse-blink/splice/internal/model"
)

func TestViewCmd_UsesDefaultReportsDir(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("View", mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Reports == m.Path(".splice-reports")
	})).Return(nil).Once()

	cmd := newTestRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{"view"})

	require.NoError(t, cmd.Execute())
}

func TestViewCmd_ReportsFlagIsPassedThrough(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("View", mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Reports == m.Path("./reports-dir")
	})).Return(nil).Once()

	cmd := newTestRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{"--reports", "./reports-dir", "view"})

	require.NoError(t, cmd.Execute())
}

func TestViewCmd_PositionalArgsAreRejected(t *testing.T) {
	withMockWorkflow(t)

	cmd := newTestRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{"view", "extra"})

	assert.Error(t, cmd.Execute())
}

func TestViewCmd_ReturnsWorkflowError(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	boom := errors.New("boom")

	mockWorkflow.On("View", mock.Anything).Return(boom).Once()

	cmd := newTestRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{"view"})

	assert.ErrorIs(t, cmd.Execute(), boom)
}
