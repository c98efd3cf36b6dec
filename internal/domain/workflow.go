package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"gooze.dev/pkg/calculo/internal/adapter"
	"gooze.dev/pkg/calculo/internal/controller"
	m "gooze.dev/pkg/calculo/internal/model"
	"gooze.dev/pkg/calculo/pkg"
)

// ErrExpectationMismatch is returned when a batch does not produce the expected verdicts or output.
var ErrExpectationMismatch = errors.New("expectation mismatch")

// DemoArgs holds the arguments for Demo.
type DemoArgs struct {
	// All adds the boundary and negative scenarios to the two reference invocations.
	All bool
}

// EvalArgs holds the arguments for Eval.
type EvalArgs struct {
	Inputs m.Inputs
}

// BatchArgs holds the arguments for Batch.
type BatchArgs struct {
	Scenarios m.Path
	Expect    m.Path // optional golden file with the expected message lines
	Threads   int
	SpillDir  string
}

// PlayArgs holds the arguments for Play.
type PlayArgs struct {
	Initial m.Inputs
	TUI     *controller.TUI
}

// Workflow drives the threshold calculator for each command.
type Workflow interface {
	Demo(ctx context.Context, args DemoArgs) error
	Eval(ctx context.Context, args EvalArgs) error
	Batch(ctx context.Context, args BatchArgs) error
	Play(ctx context.Context, args PlayArgs) error
}

type workflow struct {
	store adapter.ScenarioStore
	ui    controller.UI
}

// NewWorkflow creates a new Workflow.
func NewWorkflow(store adapter.ScenarioStore, ui controller.UI) Workflow {
	return &workflow{store: store, ui: ui}
}

// ReferenceScenarios returns the two example invocations, followed by the
// boundary and negative cases when all is set.
func ReferenceScenarios(all bool) []m.Scenario {
	scenarios := []m.Scenario{
		{Name: "small", Inputs: m.Inputs{A: 1, B: 3, C: 2, D: 5}, Expect: m.Expecting(m.Smaller)},
		{Name: "large", Inputs: m.Inputs{A: 10, B: 20, C: 1, D: 6}, Expect: m.Expecting(m.Greater)},
	}

	if all {
		scenarios = append(scenarios,
			m.Scenario{Name: "boundary", Inputs: m.Inputs{A: 5, B: 0, C: 10, D: 0}, Expect: m.Expecting(m.Smaller)},
			m.Scenario{Name: "negative", Inputs: m.Inputs{A: -5, B: -5, C: -5, D: -5}, Expect: m.Expecting(m.Greater)},
		)
	}

	return scenarios
}

func (w *workflow) Demo(ctx context.Context, args DemoArgs) error {
	scenarios := ReferenceScenarios(args.All)
	evaluations := make([]m.Evaluation, 0, len(scenarios))

	for _, scenario := range scenarios {
		if err := ctx.Err(); err != nil {
			return err
		}

		evaluations = append(evaluations, Evaluate(scenario.Inputs))
	}

	slog.Debug("demo evaluated", "count", len(evaluations))

	return w.ui.DisplayEvaluations(ctx, evaluations)
}

func (w *workflow) Eval(ctx context.Context, args EvalArgs) error {
	e := Evaluate(args.Inputs)
	slog.Debug("evaluated", "inputs", args.Inputs, "result", e.Result, "verdict", e.Verdict.String())

	return w.ui.DisplayEvaluations(ctx, []m.Evaluation{e})
}

func (w *workflow) Batch(ctx context.Context, args BatchArgs) error {
	runID := uuid.NewString()
	logger := slog.With("run", runID)

	scenarios, err := w.store.LoadScenarios(args.Scenarios)
	if err != nil {
		return err
	}

	logger.Info("batch started", "scenarios", len(scenarios), "threads", args.Threads, "file", args.Scenarios)

	evaluations, err := evaluateAll(ctx, scenarios, args.Threads)
	if err != nil {
		logger.Warn("batch aborted", "error", err)
		return err
	}

	summary, err := summarize(evaluations, args.SpillDir)
	if err != nil {
		return err
	}

	if err := w.ui.DisplayEvaluations(ctx, evaluations); err != nil {
		return err
	}

	w.ui.DisplaySummary(ctx, summary)

	mismatches := 0

	for i, scenario := range scenarios {
		if scenario.Expect != nil && *scenario.Expect != evaluations[i].Verdict {
			mismatches++

			w.ui.DisplayMismatch(ctx, scenario, evaluations[i])
		}
	}

	if args.Expect != "" {
		diff, err := goldenDiff(args.Expect, evaluations)
		if err != nil {
			return err
		}

		if diff != "" {
			mismatches++

			w.ui.DisplayDiff(ctx, diff)
		}
	}

	logger.Info("batch finished", "total", summary.Total, "greater", summary.Greater, "mismatches", mismatches)

	if mismatches > 0 {
		return fmt.Errorf("%w: %d check(s) failed", ErrExpectationMismatch, mismatches)
	}

	return nil
}

func (w *workflow) Play(ctx context.Context, args PlayArgs) error {
	if args.TUI == nil {
		return errors.New("play requires an interactive UI")
	}

	e, err := args.TUI.Run(ctx, args.Initial)
	if err != nil {
		return err
	}

	if e != nil {
		slog.Debug("interactive session ended", "result", e.Result, "verdict", e.Verdict.String())
	}

	return nil
}

// evaluateAll evaluates scenarios with at most threads workers. The returned
// slice has the same order as scenarios.
func evaluateAll(ctx context.Context, scenarios []m.Scenario, threads int) ([]m.Evaluation, error) {
	if threads < 1 {
		threads = 1
	}

	evaluations := make([]m.Evaluation, len(scenarios))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, scenario := range scenarios {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			evaluations[i] = Evaluate(scenario.Inputs)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	// errgroup only cancels groupCtx on worker errors; a parent
	// cancellation after the last worker started is caught here.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return evaluations, nil
}

// summarize spills evaluations to disk and aggregates them from there.
func summarize(evaluations []m.Evaluation, spillDir string) (m.Summary, error) {
	spill, err := pkg.NewFileSpill[m.Evaluation](spillDir)
	if err != nil {
		return m.Summary{}, err
	}

	defer func() {
		if err := spill.Close(); err != nil {
			slog.Warn("failed to close spill", "path", spill.Path(), "error", err)
		}
	}()

	if err := spill.AppendBatch(evaluations); err != nil {
		return m.Summary{}, err
	}

	return summaryFromSpill(spill)
}

func summaryFromSpill(spill pkg.FileSpill[m.Evaluation]) (m.Summary, error) {
	var summary m.Summary

	err := spill.Range(func(_ uint64, e m.Evaluation) error {
		summary.Add(e)
		return nil
	})
	if err != nil {
		return m.Summary{}, err
	}

	return summary, nil
}

// goldenDiff returns a unified diff between the golden file and the message
// lines of evaluations, or "" when they match.
func goldenDiff(golden m.Path, evaluations []m.Evaluation) (string, error) {
	want, err := os.ReadFile(string(golden))
	if err != nil {
		return "", fmt.Errorf("failed to read golden file %s: %w", golden, err)
	}

	var got strings.Builder
	for _, e := range evaluations {
		got.WriteString(e.Verdict.Message())
		got.WriteString("\n")
	}

	if string(want) == got.String() {
		return "", nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(want)),
		B:        difflib.SplitLines(got.String()),
		FromFile: string(golden),
		ToFile:   "actual",
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("failed to diff against %s: %w", golden, err)
	}

	return diff, nil
}
