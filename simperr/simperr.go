// Package simperr holds the simplifier's error kinds.
package simperr

import "github.com/pkg/errors"

// User-visible errors unwind the whole invocation.
var (
	// StepBudgetExceeded is fatal: the visitor's step counter passed
	// Config.MaxSteps.
	StepBudgetExceeded = errors.New("simp: step budget exceeded")
	// Cancelled is raised by cooperative cancellation.
	Cancelled = errors.New("simp: cancelled")
	// NothingToSimplify is a soft failure: the root term was unchanged.
	NothingToSimplify = errors.New("simp: nothing to simplify")
)

// Internal errors never escape the rewriter/congruence loops;
// they are caught at the narrowest scope and converted to refl(e).
var (
	LemmaInapplicable  = errors.New("simp: lemma inapplicable")
	SideConditionUnmet = errors.New("simp: side condition unmet")
	LiftingUnavailable = errors.New("simp: lifting unavailable")
)

// InvariantError is an ICE: ill-formed input the simplifier's
// own invariants promised would never occur, e.g. an HEq parameter kind
// surfacing from the auto-congruence builder, a bound Var reaching the
// driver's dispatch, or a congruence hypothesis RHS that is not a
// metavariable spine. It always unwinds the whole invocation.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string { return "simp: invariant violated: " + e.Reason }

func Invariant(reason string) error {
	return errors.WithStack(&InvariantError{Reason: reason})
}
