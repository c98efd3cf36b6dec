// Package controller provides output adapters for displaying threshold evaluations.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	m "gooze.dev/pkg/calculo/internal/model"
)

// UI defines how evaluations and batch outcomes are shown.
// Implementations can use different output methods (plain text, tables, TUI).
type UI interface {
	DisplayEvaluations(ctx context.Context, evaluations []m.Evaluation) error
	DisplaySummary(ctx context.Context, summary m.Summary)
	DisplayMismatch(ctx context.Context, scenario m.Scenario, got m.Evaluation)
	DisplayDiff(ctx context.Context, diff string)
}

// Option is a functional option for NewSimpleUI.
type Option func(*options)

type options struct {
	format m.Format
	styled bool
}

// WithFormat selects the rendering format.
func WithFormat(format m.Format) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithStyle enables colored verdicts.
func WithStyle(styled bool) Option {
	return func(o *options) {
		o.styled = styled
	}
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
