package simp

import (
	"github.com/ile-lang/simp/congrbuild"
	"github.com/ile-lang/simp/relrel"
	"github.com/ile-lang/simp/tctx"
	"github.com/ile-lang/simp/term"
)

// BinderCongr implements congruence under a Lambda (via funext, Eq only) or a
// Pi (via forallCongr, or impCongr when the codomain does not mention the
// bound variable). Both are gated on Config.UseAxioms, since funext and
// propositional extensionality are axioms the embedding kernel may not
// want simp invoking implicitly.
func BinderCongr(ctx *tctx.Ctx, cfg Config, rel relrel.Name, visit VisitFn, e term.Term) (Result, bool, error) {
	if !cfg.UseAxioms {
		return Result{}, false, nil
	}
	switch n := e.(type) {
	case term.Lambda:
		if rel != relrel.Eq {
			return Result{}, false, nil
		}
		local := ctx.PushLocal(n.Name, n.Domain)
		body := term.Instantiate(n.Body, local)
		r, err := visit(relrel.Eq, body)
		if err != nil {
			return Result{}, false, err
		}
		if !r.changed(body) {
			return Result{}, false, nil
		}
		newBody := term.Abstract(r.New, local)
		newLambda := term.Lambda{Name: n.Name, Domain: n.Domain, Body: newBody}
		if r.Proof == nil {
			return Refl(newLambda), true, nil
		}
		proof := congrbuild.MkFunext(local, term.Abstract(r.Proof, local))
		return Mk(newLambda, proof), true, nil

	case term.Pi:
		if rel != relrel.Eq && rel != relrel.Iff {
			return Result{}, false, nil
		}
		isArrow := !mentionsVar0(n.Codomain)
		if isArrow {
			return binderCongrArrow(ctx, cfg, rel, visit, n)
		}
		local := ctx.PushLocal(n.Name, n.Domain)
		codomain := term.Instantiate(n.Codomain, local)
		r, err := visit(rel, codomain)
		if err != nil {
			return Result{}, false, err
		}
		if r.Proof == nil {
			return Result{}, false, nil
		}
		newCodomain := term.Abstract(r.New, local)
		newPi := term.Pi{Name: n.Name, Domain: n.Domain, Codomain: newCodomain}
		proof := congrbuild.MkForallCongr(rel, local, term.Abstract(r.Proof, local))
		return Mk(newPi, proof), true, nil

	default:
		return Result{}, false, nil
	}
}

func binderCongrArrow(ctx *tctx.Ctx, cfg Config, rel relrel.Name, visit VisitFn, n term.Pi) (Result, bool, error) {
	domResult, err := visit(relrel.Iff, n.Domain)
	if err != nil {
		return Result{}, false, err
	}
	codResult, err := visit(rel, n.Codomain)
	if err != nil {
		return Result{}, false, err
	}
	if domResult.Proof == nil && codResult.Proof == nil {
		return Result{}, false, nil
	}
	newPi := term.Pi{Name: n.Name, Domain: domResult.New, Codomain: codResult.New}
	dom := Finalize(relrel.Iff, n.Domain, domResult)
	cod := Finalize(rel, n.Codomain, codResult)
	proof := congrbuild.MkImpCongr(rel, cfg.Contextual, dom.Proof, cod.Proof)
	return Mk(newPi, proof), true, nil
}

// mentionsVar0 reports whether t (a binder body in locally-nameless form)
// refers to its own bound variable, which distinguishes a dependent Pi
// from a non-dependent arrow.
func mentionsVar0(t term.Term) bool {
	return mentionsVarAt(t, 0)
}

func mentionsVarAt(t term.Term, depth uint32) bool {
	switch n := t.(type) {
	case term.Var:
		return n.Index == depth
	case term.App:
		return mentionsVarAt(n.Fn, depth) || mentionsVarAt(n.Arg, depth)
	case term.Lambda:
		return mentionsVarAt(n.Domain, depth) || mentionsVarAt(n.Body, depth+1)
	case term.Pi:
		return mentionsVarAt(n.Domain, depth) || mentionsVarAt(n.Codomain, depth+1)
	case term.Let:
		return mentionsVarAt(n.Type, depth) || mentionsVarAt(n.Value, depth) || mentionsVarAt(n.Body, depth+1)
	case term.Macro:
		for _, a := range n.Args {
			if mentionsVarAt(a, depth) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
