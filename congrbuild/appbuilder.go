// Package congrbuild stands in for the kernel's two out-of-scope
// collaborators: CongrBuilder (synthesizing congruence lemmas on demand)
// and AppBuilder (constructing proof-combinator applications). Neither is
// type-checked here -- that is the kernel's job -- but the shapes
// produced are the ones a real kernel would expect to check.
package congrbuild

import (
	"github.com/ile-lang/simp/relrel"
	"github.com/ile-lang/simp/term"
)

func combinator(name string, rel relrel.Name, args ...term.Term) term.Term {
	return term.Apply(term.Const{Name: name + "@" + string(rel)}, args...)
}

// MkRefl builds a reflexivity proof of `rel e e`.
func MkRefl(rel relrel.Name, e term.Term) term.Term {
	return combinator("refl", rel, e)
}

// MkTrans builds a proof of `rel a c` from proofs of `rel a b` and
// `rel b c`, used by Result's join operation.
func MkTrans(rel relrel.Name, ab, bc term.Term) term.Term {
	return combinator("trans", rel, ab, bc)
}

// MkApp builds the proof-combinator application named head under rel,
// given its arguments in order.
func MkApp(rel relrel.Name, head string, args ...term.Term) term.Term {
	return combinator(head, rel, args...)
}

// MkCongrArg builds a proof of `rel (f a) (f b)` from a proof of `rel a b`,
// when only the argument position changed.
func MkCongrArg(rel relrel.Name, f, proofAB term.Term) term.Term {
	return combinator("congrArg", rel, f, proofAB)
}

// MkCongrFun builds a proof of `rel (f a) (g a)` from a proof of
// `rel f g`, when only the function position changed.
func MkCongrFun(rel relrel.Name, proofFG, arg term.Term) term.Term {
	return combinator("congrFun", rel, proofFG, arg)
}

// MkCongr builds a proof of `rel (f a) (g b)` from proofs of `rel f g` and
// `rel a b`, when both positions changed.
func MkCongr(rel relrel.Name, proofFG, proofAB term.Term) term.Term {
	return combinator("congr", rel, proofFG, proofAB)
}

// MkFunext builds a proof of `eq (fun x, f x) (fun x, g x)` from a proof
// that `f x ~ g x` for an opened local x.
func MkFunext(local *term.Local, bodyProof term.Term) term.Term {
	return combinator("funext", relrel.Eq, local, bodyProof)
}

// MkForallCongr builds a proof of `rel (forall x, p x) (forall x, q x)`
// from a proof that `p x ~ q x` for an opened local x.
func MkForallCongr(rel relrel.Name, local *term.Local, bodyProof term.Term) term.Term {
	return combinator("forallCongr", rel, local, bodyProof)
}

// impCongr variant names, selected by relation and contextual flag.
func impCongrName(rel relrel.Name, contextual bool) string {
	switch {
	case rel == relrel.Eq && contextual:
		return "impCongrCtxEq"
	case rel == relrel.Eq:
		return "impCongrEq"
	case contextual:
		return "impCongrCtx"
	default:
		return "impCongr"
	}
}

// MkImpCongr builds a proof of `rel (a -> b) (a' -> b')` from proofs that
// `a ~ a'` and `b ~ b'`.
func MkImpCongr(rel relrel.Name, contextual bool, proofA, proofB term.Term) term.Term {
	return combinator(impCongrName(rel, contextual), rel, proofA, proofB)
}

// MkPropext lifts a proof of `iff a b` to a proof of `eq a b`.
func MkPropext(iffProof term.Term) term.Term {
	return combinator("propext", relrel.Eq, iffProof)
}
