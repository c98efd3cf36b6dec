package model

// Scenario is a named input set, optionally carrying the verdict it should produce.
type Scenario struct {
	Name   string
	Inputs Inputs
	Expect *Verdict
}

// Expecting returns a pointer to v, for building scenarios with an expectation.
func Expecting(v Verdict) *Verdict {
	return &v
}
