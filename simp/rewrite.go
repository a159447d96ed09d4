package simp

import (
	"github.com/ile-lang/simp/lemma"
	"github.com/ile-lang/simp/relrel"
	"github.com/ile-lang/simp/tctx"
	"github.com/ile-lang/simp/term"
)

// Rewrite is the core rewriter: it looks up e's candidate lemmas by head
// pattern, tries each in insertion order inside a discardable nested
// context, and commits the first one whose LHS matches e, whose side
// conditions discharge, and (for a permutation lemma) whose instantiated
// RHS sorts strictly before e in the canonical term order.
func Rewrite(ctx *tctx.Ctx, idx *lemma.Index, rel relrel.Name, e term.Term) (Result, error) {
	return rewriteWith(ctx, idx, rel, e, nil)
}

// RewriteWithProver is Rewrite, but lets the caller supply the
// side-condition hypothesis prover (PlainHooks.Post passes its
// ProveBySimp-based prover; a plain Rewrite call has no prover and leaves
// side conditions that need proving unmet).
func RewriteWithProver(ctx *tctx.Ctx, idx *lemma.Index, rel relrel.Name, e term.Term, prove Prover) (Result, error) {
	return rewriteWith(ctx, idx, rel, e, prove)
}

func rewriteWith(ctx *tctx.Ctx, idx *lemma.Index, rel relrel.Name, e term.Term, prove Prover) (Result, error) {
	for _, l := range idx.Find(rel, e) {
		r, ok := tryRewrite(ctx, rel, l, e, prove)
		if ok {
			return r, nil
		}
	}
	return Refl(e), nil
}

// tryRewrite runs a single lemma attempt. A lemma's LHS/RHS/Proof are
// stored with placeholder metavariables ID 0..NumEMeta-1 (the convention
// a lemma-building helper is responsible for); substMetas rebases those
// onto eMetas, the fresh metavariables this attempt's Tmp context owns.
func tryRewrite(ctx *tctx.Ctx, rel relrel.Name, l *lemma.Lemma, e term.Term, prove Prover) (Result, bool) {
	attempt, _, eMetas := ctx.Tmp(l.NumUMeta, l.NumEMeta)
	for i, m := range eMetas {
		if i < len(l.EMetaTypes) && l.EMetaTypes[i] != nil {
			attempt.SetMetaType(m, substMetas(l.EMetaTypes[i], eMetas))
		}
	}
	pattern := substMetas(l.LHS, eMetas)
	if !match(attempt, pattern, e) {
		return Result{}, false
	}
	if err := discharge(attempt, rel, l, eMetas, prove); err != nil {
		return Result{}, false
	}
	if !allAssigned(attempt, eMetas) {
		return Result{}, false
	}
	rhs := attempt.InstantiateMvars(substMetas(l.RHS, eMetas))
	if l.Permutation && !term.Less(rhs, e) {
		return Result{}, false
	}
	if l.Refl {
		return Refl(rhs), true
	}
	// The index files each lemma under the relation its proof concludes,
	// so the instantiated proof already has type `rel e rhs`.
	proof := attempt.InstantiateMvars(substMetas(l.Proof, eMetas))
	return Mk(rhs, proof), true
}

// substMetas rewrites every placeholder Meta{ID: i} in t (0 <= i <
// len(fresh)) into fresh[i], the metavariable this attempt allocated for
// that slot.
func substMetas(t term.Term, fresh []*term.Meta) term.Term {
	switch n := t.(type) {
	case *term.Meta:
		if int(n.ID) < len(fresh) {
			return fresh[n.ID]
		}
		return n
	case term.App:
		return term.App{Fn: substMetas(n.Fn, fresh), Arg: substMetas(n.Arg, fresh)}
	case term.Lambda:
		return term.Lambda{Name: n.Name, Domain: substMetas(n.Domain, fresh), Body: substMetas(n.Body, fresh)}
	case term.Pi:
		return term.Pi{Name: n.Name, Domain: substMetas(n.Domain, fresh), Codomain: substMetas(n.Codomain, fresh)}
	case term.Let:
		return term.Let{Name: n.Name, Type: substMetas(n.Type, fresh), Value: substMetas(n.Value, fresh), Body: substMetas(n.Body, fresh)}
	case term.Macro:
		args := make([]term.Term, len(n.Args))
		for i, a := range n.Args {
			args[i] = substMetas(a, fresh)
		}
		return term.Macro{Name: n.Name, Args: args}
	default:
		return t
	}
}
