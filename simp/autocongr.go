package simp

import (
	"github.com/ile-lang/simp/congrbuild"
	"github.com/ile-lang/simp/relrel"
	"github.com/ile-lang/simp/simperr"
	"github.com/ile-lang/simp/tctx"
	"github.com/ile-lang/simp/term"
)

// VisitFn revisits a subterm through the full driver, used by
// AutoCongr to recurse into an application's head and then its
// arguments, and by BinderCongr to recurse into an opened binder body.
type VisitFn func(rel relrel.Name, e term.Term) (Result, error)

// AutoCongr implements congruence closure over an application's argument
// spine, synthesized on demand rather than looked up, and only under Eq
// (the relation auto-congruence is defined for). visit simplifies each
// EqParam argument in turn and the head itself; Fixed/FixedNoParam
// positions are passed through unchanged, a CastParam position is also
// passed through (canonicalize.go handles it), and an HEqParam position
// is an invariant violation.
func AutoCongr(ctx *tctx.Ctx, hints congrbuild.KindHint, visit VisitFn, e term.Term) (Result, error) {
	fn, args := term.Unapply(e)
	if len(args) == 0 {
		return visit(relrel.Eq, fn)
	}
	synth := congrbuild.MkSpecializedCongrSimp(fn, len(args), hints)

	fnResult, err := visit(relrel.Eq, fn)
	if err != nil {
		return Result{}, err
	}
	cur := Result{New: fnResult.New, Proof: fnResult.Proof}
	changedAny := fnResult.changed(fn)

	for i, arg := range args {
		switch synth.Kinds[i] {
		case congrbuild.Fixed, congrbuild.FixedNoParam, congrbuild.CastParam:
			cur = combineArg(cur, Refl(arg))
			continue
		case congrbuild.HEqParam:
			return Result{}, simperr.Invariant("HEq parameter kind from auto-congruence")
		default:
			argResult, err := visit(relrel.Eq, arg)
			if err != nil {
				return Result{}, err
			}
			if argResult.changed(arg) {
				changedAny = true
			}
			cur = combineArg(cur, argResult)
		}
	}
	if !changedAny {
		return Refl(e), nil
	}
	return cur, nil
}

// combineArg folds one more application argument into an
// accumulated-so-far congruence result, choosing congrArg/congrFun/congr
// depending on which side actually changed, matching the generic binary
// fallback.
func combineArg(fnSoFar, argResult Result) Result {
	newApp := term.App{Fn: fnSoFar.New, Arg: argResult.New}
	switch {
	case fnSoFar.Proof == nil && argResult.Proof == nil:
		return Refl(newApp)
	case fnSoFar.Proof == nil:
		return Mk(newApp, congrbuild.MkCongrArg(relrel.Eq, fnSoFar.New, argResult.Proof))
	case argResult.Proof == nil:
		return Mk(newApp, congrbuild.MkCongrFun(relrel.Eq, fnSoFar.Proof, argResult.New))
	default:
		return Mk(newApp, congrbuild.MkCongr(relrel.Eq, fnSoFar.Proof, argResult.Proof))
	}
}
