package simp

import (
	"context"

	"github.com/ile-lang/simp/lemma"
	"github.com/ile-lang/simp/relrel"
	"github.com/ile-lang/simp/tctx"
	"github.com/ile-lang/simp/term"
)

// Outcome is a hook's tri-state return: NoChange
// means "leave curr alone"; otherwise Result replaces curr, and Stop means
// "accept Result as final," while !Stop means "continue the fixpoint loop
// with curr := Result."
type Outcome struct {
	NoChange bool
	Result   Result
	Stop     bool
}

// Hooks is the capability set the driver is parametric over. accum is the opaque
// accumulator threaded through extSimplify; plain Simplify
// calls always pass nil and ignore the returned accumulator.
type Hooks interface {
	Pre(accum any, rel relrel.Name, idx *lemma.Index, parent, e term.Term) (any, Outcome)
	Post(accum any, rel relrel.Name, idx *lemma.Index, parent, e term.Term) (any, Outcome)
	// Prove is the user-provided or default hypothesis prover invoked by
	// side-condition discharge.
	Prove(accum any, rel relrel.Name, idx *lemma.Index, e term.Term) (any, term.Term, bool)
}

// PlainHooks is the default, non-scripted simplifier variant: Pre
// beta-reduces an applied lambda, Post invokes the rewriter directly, and
// Prove discharges a side condition by
// recursively running ProveBySimp on it.
type PlainHooks struct {
	GoCtx context.Context
	Tc    *tctx.Ctx
	Env   *relrel.Env
	Cfg   Config
}

var _ Hooks = PlainHooks{}

func (PlainHooks) Pre(accum any, rel relrel.Name, idx *lemma.Index, parent, e term.Term) (any, Outcome) {
	if app, ok := e.(term.App); ok {
		if lam, ok := app.Fn.(term.Lambda); ok {
			// Beta reduction: defeq, so no proof is needed.
			reduced := term.Instantiate(lam.Body, app.Arg)
			return accum, Outcome{Result: Refl(reduced)}
		}
	}
	return accum, Outcome{NoChange: true}
}

func (h PlainHooks) Post(accum any, rel relrel.Name, idx *lemma.Index, parent, e term.Term) (any, Outcome) {
	r, err := RewriteWithProver(h.Tc, idx, rel, e, h.prover(idx))
	if err != nil {
		return accum, Outcome{NoChange: true}
	}
	if !r.changed(e) {
		return accum, Outcome{NoChange: true}
	}
	return accum, Outcome{Result: r}
}

func (h PlainHooks) Prove(accum any, rel relrel.Name, idx *lemma.Index, e term.Term) (any, term.Term, bool) {
	proof, ok := h.prover(idx)(rel, e)
	return accum, proof, ok
}

// prover closes a Prover over h's collaborators, recursing back into
// ProveBySimp for a hypothesis's own goal -- discharge uses the same
// strategy for side conditions.
func (h PlainHooks) prover(idx *lemma.Index) Prover {
	return func(rel relrel.Name, ty term.Term) (term.Term, bool) {
		return ProveBySimp(h.GoCtx, h.Tc, h.Env, h.Cfg, idx, ty)
	}
}

// ScriptHooks forwards each call to user-supplied callbacks, for the
// script-driven simplifier variant. A nil PreFn or PostFn reports
// NoChange, and a nil ProveFn reports no proof.
type ScriptHooks struct {
	PreFn   func(accum any, rel relrel.Name, idx *lemma.Index, parent, e term.Term) (any, Outcome)
	PostFn  func(accum any, rel relrel.Name, idx *lemma.Index, parent, e term.Term) (any, Outcome)
	ProveFn func(accum any, rel relrel.Name, idx *lemma.Index, e term.Term) (any, term.Term, bool)
}

var _ Hooks = ScriptHooks{}

func (s ScriptHooks) Pre(accum any, rel relrel.Name, idx *lemma.Index, parent, e term.Term) (any, Outcome) {
	if s.PreFn == nil {
		return accum, Outcome{NoChange: true}
	}
	return s.PreFn(accum, rel, idx, parent, e)
}

func (s ScriptHooks) Post(accum any, rel relrel.Name, idx *lemma.Index, parent, e term.Term) (any, Outcome) {
	if s.PostFn == nil {
		return accum, Outcome{NoChange: true}
	}
	return s.PostFn(accum, rel, idx, parent, e)
}

func (s ScriptHooks) Prove(accum any, rel relrel.Name, idx *lemma.Index, e term.Term) (any, term.Term, bool) {
	if s.ProveFn == nil {
		return accum, nil, false
	}
	return s.ProveFn(accum, rel, idx, e)
}
