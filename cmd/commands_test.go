package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gooze.dev/pkg/calculo/internal/domain"
	domainmocks "gooze.dev/pkg/calculo/internal/domain/mocks"
	m "gooze.dev/pkg/calculo/internal/model"
)

func useMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	original := workflowFor
	workflowFor = func(*cobra.Command) domain.Workflow { return mockWorkflow }
	t.Cleanup(func() { workflowFor = original })

	return mockWorkflow
}

func writeScenarios(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDemoCmd_All(t *testing.T) {
	cmd, out := newTestRoot(newDemoCmd())

	require.NoError(t, execute(t, cmd, "demo", "--all"))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{
		"The number is smaller than 50!",
		"The number is greater than 50!",
		"The number is smaller than 50!",
		"The number is greater than 50!",
	}, lines)
}

func TestEvalCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"boundary", []string{"5", "0", "10", "0"}, "The number is smaller than 50!\n"},
		{"negative", []string{"--", "-5", "-5", "-5", "-5"}, "The number is greater than 50!\n"},
		{"nan", []string{"NaN", "1", "1", "1"}, "The number is smaller than 50!\n"},
		{"infinity", []string{"Inf", "0", "1", "0"}, "The number is greater than 50!\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, out := newTestRoot(newEvalCmd())

			require.NoError(t, execute(t, cmd, append([]string{"eval"}, tt.args...)...))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestEvalCmd_InvalidArgs(t *testing.T) {
	for _, args := range [][]string{
		{"eval", "1", "2", "3"},
		{"eval", "1", "2", "x", "4"},
	} {
		cmd, out := newTestRoot(newEvalCmd())
		require.Error(t, execute(t, cmd, args...), "args %v", args)
		assert.NotContains(t, out.String(), "The number is")
	}
}

func TestEvalCmd_PassesInputsToWorkflow(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	mockWorkflow.On("Eval", mock.Anything, domain.EvalArgs{Inputs: m.Inputs{A: 1, B: 3, C: 2, D: 5}}).Return(nil)

	cmd, _ := newTestRoot(newEvalCmd())
	require.NoError(t, execute(t, cmd, "eval", "1", "3", "2", "5"))
}

func TestBatchCmd_PassesFlagsToWorkflow(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	mockWorkflow.On("Batch", mock.Anything, mock.MatchedBy(func(args domain.BatchArgs) bool {
		return args.Scenarios == m.Path("cases.yaml") &&
			args.Expect == m.Path("cases.golden") &&
			args.Threads == 7
	})).Return(nil)

	cmd, _ := newTestRoot(newBatchCmd())
	require.NoError(t, execute(t, cmd, "batch", "cases.yaml", "-p", "7", "--expect", "cases.golden"))
}

func TestBatchCmd_EndToEnd(t *testing.T) {
	path := writeScenarios(t, `
scenarios:
  - name: small
    inputs: [1, 3, 2, 5]
    expect: smaller
  - name: large
    inputs: [10, 20, 1, 6]
    expect: greater
  - name: boundary
    inputs: [5, 0, 10, 0]
  - name: negative
    inputs: [-5, -5, -5, -5]
`)

	cmd, out := newTestRoot(newBatchCmd())
	require.NoError(t, execute(t, cmd, "batch", path))

	assert.Equal(t,
		"The number is smaller than 50!\n"+
			"The number is greater than 50!\n"+
			"The number is smaller than 50!\n"+
			"The number is greater than 50!\n"+
			"4 evaluated: 2 greater, 2 smaller\n",
		out.String())
}

func TestBatchCmd_ExpectationMismatch(t *testing.T) {
	path := writeScenarios(t, `
scenarios:
  - name: boundary
    inputs: [5, 0, 10, 0]
    expect: greater
`)

	cmd, out := newTestRoot(newBatchCmd())
	err := execute(t, cmd, "batch", path)

	require.ErrorIs(t, err, domain.ErrExpectationMismatch)
	assert.Contains(t, out.String(), "scenario boundary: expected greater, got smaller (result 50)")
}

func TestBatchCmd_GoldenDiff(t *testing.T) {
	path := writeScenarios(t, "scenarios:\n  - inputs: [1, 3, 2, 5]\n")
	golden := filepath.Join(t.TempDir(), "expected.txt")
	require.NoError(t, os.WriteFile(golden, []byte("The number is greater than 50!\n"), 0o600))

	cmd, out := newTestRoot(newBatchCmd())
	err := execute(t, cmd, "batch", path, "--expect", golden)

	require.ErrorIs(t, err, domain.ErrExpectationMismatch)
	assert.Contains(t, out.String(), "-The number is greater than 50!")
	assert.Contains(t, out.String(), "+The number is smaller than 50!")
}

func TestBatchCmd_RequiresFile(t *testing.T) {
	cmd, _ := newTestRoot(newBatchCmd())
	require.Error(t, execute(t, cmd, "batch"))
}

func TestPlayCmd_PassesInitialInputs(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	mockWorkflow.On("Play", mock.Anything, mock.MatchedBy(func(args domain.PlayArgs) bool {
		return args.Initial == m.Inputs{A: 1, B: 2, C: 3, D: 4} && args.TUI != nil
	})).Return(nil)

	cmd, _ := newTestRoot(newPlayCmd())
	require.NoError(t, execute(t, cmd, "play", "1", "2", "3", "4"))
}

func TestPlayCmd_RejectsPartialInputs(t *testing.T) {
	cmd, _ := newTestRoot(newPlayCmd())
	require.Error(t, execute(t, cmd, "play", "1", "2"))
}

func TestPlayCmd_QuitsOnCtrlC(t *testing.T) {
	cmd, _ := newTestRoot(newPlayCmd())
	cmd.SetIn(strings.NewReader("\x03"))
	cmd.SetArgs([]string{"--log=" + filepath.Join(t.TempDir(), "test.log"), "play"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
}
