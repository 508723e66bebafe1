// Package entity defines the domain models for the eulisting feature.
package entity

import qentity "stock_dashboard/internal/feature/quotes/domain/entity"

// Stage is the step of the fallback chain that produced a candidate.
type Stage string

const (
	StageMapping    Stage = "mapping"
	StageVariant    Stage = "variant"
	StageNameSearch Stage = "name-search"
)

// Outcome is the result of verifying one candidate.
type Outcome string

const (
	// OutcomeFound means the candidate carried a positive EUR price.
	OutcomeFound Outcome = "found"
	// OutcomeRejected means the provider answered but without valid EUR market data.
	OutcomeRejected Outcome = "rejected"
	// OutcomeError means the lookup failed or timed out.
	OutcomeError Outcome = "error"
)

// Candidate is an EU symbol to verify, tagged with the stage that produced it.
type Candidate struct {
	Symbol string
	Stage  Stage
}

// Attempt records the verification of one candidate.
type Attempt struct {
	Symbol  string
	Stage   Stage
	Outcome Outcome
	Detail  string // why the candidate was rejected; empty when found
}

// Resolution is the result of one resolve call: either a Quote or the list of tried symbols.
// It only exists for the duration of a request (and its cache entry).
type Resolution struct {
	USSymbol string
	Quote    *qentity.Quote
	Attempts []Attempt
}

// Found reports whether a valid EU listing was found.
func (r Resolution) Found() bool { return r.Quote != nil }

// Tried returns the candidate symbols in the order they were verified.
func (r Resolution) Tried() []string {
	out := make([]string, 0, len(r.Attempts))
	for _, a := range r.Attempts {
		out = append(out, a.Symbol)
	}
	return out
}
