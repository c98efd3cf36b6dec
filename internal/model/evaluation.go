// Package model defines the data structures shared by the threshold calculator.
package model

// Verdict is the classification of an evaluation result against the threshold.
type Verdict int

const (
	// Smaller is reported when the result is not strictly greater than the threshold.
	Smaller Verdict = iota
	// Greater is reported when the result is strictly greater than the threshold.
	Greater
)

const (
	// MessageGreater is printed for results above the threshold.
	MessageGreater = "The number is greater than 50!"
	// MessageSmaller is printed for every other result, the threshold itself included.
	MessageSmaller = "The number is smaller than 50!"
)

func (v Verdict) String() string {
	switch v {
	case Greater:
		return "greater"
	case Smaller:
		return "smaller"
	default:
		return "unknown"
	}
}

// Message returns the console line for the verdict.
func (v Verdict) Message() string {
	if v == Greater {
		return MessageGreater
	}

	return MessageSmaller
}

// ParseVerdict maps "greater" or "smaller" to a Verdict.
func ParseVerdict(s string) (Verdict, bool) {
	switch s {
	case "greater":
		return Greater, true
	case "smaller":
		return Smaller, true
	default:
		return Smaller, false
	}
}

// Inputs holds the four operands of a calculation.
type Inputs struct {
	A, B, C, D float64
}

// Evaluation holds the transient values of a single calculation.
type Evaluation struct {
	Inputs  Inputs
	X       float64 // A + B
	Y       float64 // C + D
	Result  float64 // X * Y
	Verdict Verdict
}

// Summary aggregates the verdicts of several evaluations.
type Summary struct {
	Total   int
	Greater int
	Smaller int
}

// Add counts one more evaluation.
func (s *Summary) Add(e Evaluation) {
	s.Total++

	if e.Verdict == Greater {
		s.Greater++
		return
	}

	s.Smaller++
}
