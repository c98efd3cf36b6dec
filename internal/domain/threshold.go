// Package domain implements the threshold calculator and the workflows built on it.
package domain

import (
	"fmt"
	"io"
	"os"

	m "gooze.dev/pkg/calculo/internal/model"
)

// Threshold separates the two verdicts. Only results strictly above it are Greater.
const Threshold = 50.0

// Calculo sums the first and the last two operands, multiplies the sums and
// prints whether the product is greater than 50.
func Calculo(a, b, c, d float64) {
	Fcalculo(os.Stdout, a, b, c, d)
}

// Fcalculo is Calculo writing to w.
func Fcalculo(w io.Writer, a, b, c, d float64) {
	e := Evaluate(m.Inputs{A: a, B: b, C: c, D: d})
	_, _ = fmt.Fprintln(w, e.Verdict.Message())
}

// Evaluate computes the intermediate sums, their product and the verdict.
// Non-finite operands are not rejected; NaN results compare as Smaller.
func Evaluate(in m.Inputs) m.Evaluation {
	x := in.A + in.B
	y := in.C + in.D
	result := x * y

	return m.Evaluation{
		Inputs:  in,
		X:       x,
		Y:       y,
		Result:  result,
		Verdict: Classify(result),
	}
}

// Classify applies the strict greater-than check against Threshold.
func Classify(result float64) m.Verdict {
	if result > Threshold {
		return m.Greater
	}

	return m.Smaller
}
