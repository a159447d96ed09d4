package simp

import (
	"github.com/ile-lang/simp/lemma"
	"github.com/ile-lang/simp/relrel"
	"github.com/ile-lang/simp/tctx"
	"github.com/ile-lang/simp/term"
)

// UserCongr implements congruence via a user-registered congruence lemma,
// tried against e's candidates (by head pattern) before falling back to
// AutoCongr. Each congruence hypothesis is discharged by opening its
// binders into fresh locals, visiting its instantiated LHS through visit,
// and unifying the result against the hypothesis's metavariable-spine
// RHS -- exactly the shape a plain rewrite attempt matches against, just
// applied to a hypothesis's conclusion instead of the whole lemma.
func UserCongr(ctx *tctx.Ctx, idx *lemma.Index, visit VisitFn, rel relrel.Name, e term.Term) (Result, bool, error) {
	for _, l := range idx.FindCongr(rel, e) {
		r, ok, err := tryUserCongr(ctx, visit, rel, l, e)
		if err != nil {
			return Result{}, false, err
		}
		if ok {
			return r, true, nil
		}
	}
	return Result{}, false, nil
}

func tryUserCongr(ctx *tctx.Ctx, visit VisitFn, rel relrel.Name, l *lemma.Lemma, e term.Term) (Result, bool, error) {
	attempt, _, eMetas := ctx.Tmp(l.NumUMeta, l.NumEMeta)
	for i, m := range eMetas {
		if i < len(l.EMetaTypes) && l.EMetaTypes[i] != nil {
			attempt.SetMetaType(m, substMetas(l.EMetaTypes[i], eMetas))
		}
	}
	if !match(attempt, substMetas(l.LHS, eMetas), e) {
		return Result{}, false, nil
	}
	for _, hyp := range l.CongrHyps {
		ok, err := dischargeCongrHyp(attempt, visit, eMetas, hyp)
		if err != nil {
			return Result{}, false, err
		}
		if !ok {
			return Result{}, false, nil
		}
	}
	if err := discharge(attempt, rel, l, eMetas, nil); err != nil {
		return Result{}, false, nil
	}
	if !allAssigned(attempt, eMetas) {
		return Result{}, false, nil
	}
	rhs := attempt.InstantiateMvars(substMetas(l.RHS, eMetas))
	proof := attempt.InstantiateMvars(substMetas(l.Proof, eMetas))
	return Mk(rhs, proof), true, nil
}

// dischargeCongrHyp opens hyp's binders, visits its instantiated LHS
// under hyp.Rel, matches the hypothesis's RHS metavariable spine against
// the visited term, then assigns hyp.Meta to the resulting proof
// abstracted back over the opened locals. A hypothesis whose LHS visits
// to a result with no proof (i.e. truly unchanged) still succeeds: its RHS
// metavariable just gets bound to the same term, and its proof
// metavariable to the reflexivity witness Finalize materializes here.
func dischargeCongrHyp(ctx *tctx.Ctx, visit VisitFn, eMetas []*term.Meta, hyp lemma.CongrHyp) (bool, error) {
	locals := make([]*term.Local, len(hyp.Xs))
	for i, ty := range hyp.Xs {
		locals[i] = ctx.PushLocal("x", substMetas(ty, eMetas))
	}
	lhs := ctx.InstantiateMvars(substMetas(hyp.LHS, eMetas))
	for _, l := range locals {
		lhs = term.Instantiate(lhs, l)
	}
	r, err := visit(hyp.Rel, lhs)
	if err != nil {
		return false, err
	}
	r = Finalize(hyp.Rel, lhs, r)

	rhsPattern := substMetas(hyp.RHS, eMetas)
	if !match(ctx, rhsPattern, r.New) {
		return false, nil
	}
	if hyp.Meta == nil || int(hyp.Meta.ID) >= len(eMetas) {
		return false, nil
	}
	proofMeta := eMetas[hyp.Meta.ID]
	proofVal := r.Proof
	for i := len(locals) - 1; i >= 0; i-- {
		proofVal = term.Abstract(proofVal, locals[i])
	}
	if len(locals) > 0 {
		proofVal = wrapLambdas(proofVal, locals)
	}
	if ctx.IsAssigned(proofMeta) {
		return false, nil
	}
	return ctx.Assign(proofMeta, proofVal) == nil, nil
}
