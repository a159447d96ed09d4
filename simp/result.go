package simp

import (
	"github.com/ile-lang/simp/congrbuild"
	"github.com/ile-lang/simp/relrel"
	"github.com/ile-lang/simp/simperr"
	"github.com/ile-lang/simp/term"
)

// Result is a SimpResult: the pair (newTerm, maybeProof) an attempt at
// simplifying a term produces.
//
// Invariant: a Result with Proof == nil asserts that New is identical to
// the term it replaced, or related to it by reflexivity of the active
// relation; the reflexivity proof is only materialized on demand, by
// Finalize.
type Result struct {
	New   term.Term
	Proof term.Term // nil means "no proof needed yet"
}

// Refl builds a proof-less result asserting e is unchanged.
func Refl(e term.Term) Result { return Result{New: e} }

// Mk builds a result carrying an explicit proof.
func Mk(e term.Term, proof term.Term) Result { return Result{New: e, Proof: proof} }

func (r Result) changed(original term.Term) bool { return !r.New.Equal(original) }

// Join composes r1 (old -> mid) and r2 (mid -> new) under rel, by
// transitivity. An absent proof on either side just passes the other
// side through unchanged.
func Join(rel relrel.Name, r1, r2 Result) Result {
	switch {
	case r1.Proof == nil && r2.Proof == nil:
		return Result{New: r2.New}
	case r1.Proof == nil:
		return Result{New: r2.New, Proof: r2.Proof}
	case r2.Proof == nil:
		return Result{New: r2.New, Proof: r1.Proof}
	default:
		return Result{New: r2.New, Proof: congrbuild.MkTrans(rel, r1.Proof, r2.Proof)}
	}
}

// Finalize materializes a reflexivity proof if r has none, for the
// boundary where a concrete proof term is demanded.
func Finalize(rel relrel.Name, old term.Term, r Result) Result {
	if r.Proof != nil {
		return r
	}
	return Result{New: r.New, Proof: congrbuild.MkRefl(rel, old)}
}

// LiftFromEq produces r' : a ~ b from r : a = b, where ~ is rel. It fails
// with simperr.LiftingUnavailable -- an internal error, suppressed by its
// caller -- when rel is not reflexive or does not admit substitution from
// eq.
func LiftFromEq(env *relrel.Env, rel relrel.Name, r Result) (Result, error) {
	if r.Proof == nil {
		return r, nil
	}
	if !env.IsReflexive(rel) || !env.AdmitsEqSubst(rel) {
		return Result{}, simperr.LiftingUnavailable
	}
	return Result{New: r.New, Proof: congrbuild.MkApp(rel, "ofEq", r.Proof)}, nil
}
