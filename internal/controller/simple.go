package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "gooze.dev/pkg/calculo/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd    *cobra.Command
	format m.Format
	styled bool
}

// NewSimpleUI creates a new SimpleUI. Without options it prints plain, unstyled lines.
func NewSimpleUI(cmd *cobra.Command, opts ...Option) *SimpleUI {
	o := options{format: m.FormatPlain}
	for _, opt := range opts {
		opt(&o)
	}

	return &SimpleUI{cmd: cmd, format: o.format, styled: o.styled}
}

// DisplayEvaluations prints one message line per evaluation, or a single table.
func (s *SimpleUI) DisplayEvaluations(ctx context.Context, evaluations []m.Evaluation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.format == m.FormatTable {
		s.printf("%s", renderEvaluationTable(evaluations))
		return nil
	}

	for _, e := range evaluations {
		s.printf("%s\n", styledMessage(e.Verdict, s.styled))
	}

	return nil
}

// DisplaySummary prints verdict counts.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%d evaluated: %d greater, %d smaller\n", summary.Total, summary.Greater, summary.Smaller)
}

// DisplayMismatch reports a scenario whose verdict differs from its expectation.
func (s *SimpleUI) DisplayMismatch(ctx context.Context, scenario m.Scenario, got m.Evaluation) {
	if err := ctx.Err(); err != nil || scenario.Expect == nil {
		return
	}

	line := fmt.Sprintf("scenario %s: expected %s, got %s (result %s)",
		scenario.Name, scenario.Expect, got.Verdict, formatNumber(got.Result))
	if s.styled {
		line = errorStyle.Render(line)
	}

	s.printf("%s\n", line)
}

// DisplayDiff prints a unified diff between expected and actual output.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) {
	if err := ctx.Err(); err != nil || diff == "" {
		return
	}

	s.printf("%s", diff)
}

func renderEvaluationTable(evaluations []m.Evaluation) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"A", "B", "C", "D", "X", "Y", "Result", "Verdict"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	greater := 0

	for _, e := range evaluations {
		table.Append([]string{
			formatNumber(e.Inputs.A),
			formatNumber(e.Inputs.B),
			formatNumber(e.Inputs.C),
			formatNumber(e.Inputs.D),
			formatNumber(e.X),
			formatNumber(e.Y),
			formatNumber(e.Result),
			e.Verdict.String(),
		})

		if e.Verdict == m.Greater {
			greater++
		}
	}

	table.SetFooter([]string{
		"", "", "", "", "", "",
		fmt.Sprintf("Total %d", len(evaluations)),
		fmt.Sprintf("%d greater", greater),
	})

	table.Render()

	return tableBuffer.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
