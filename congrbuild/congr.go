package congrbuild

import "github.com/ile-lang/simp/term"

// ParamKind classifies an application's argument position the way the
// kernel's congruence synthesizer would: Fixed positions never
// move, FixedNoParam positions contribute nothing to the congruence
// proof's application, Eq positions may be rewritten, Cast positions carry
// a specialized-subsingleton value eligible for cast elision,
// and HEq never appears here.
type ParamKind uint8

const (
	Fixed ParamKind = iota
	FixedNoParam
	EqParam
	CastParam
	HEqParam
)

// KindHint looks up the ParamKind for the i-th explicit argument of the
// application headed by fn, standing in for the kernel's fun_info/
// specialization analysis the real mk_specialized_congr_simp performs. A
// nil KindHint defaults every position to EqParam, which is always sound:
// it simply means "try to rewrite this argument," never "skip it
// incorrectly."
type KindHint func(fn term.Term, i int, argc int) ParamKind

// Synthesized is the result of MkSpecializedCongrSimp: the per-argument
// kinds a real specialized congruence lemma's conclusion would be read
// off after substitution.
type Synthesized struct {
	Kinds []ParamKind
}

// MkSpecializedCongrSimp synthesizes the congruence-lemma parameter kinds
// for e = f a1 ... an. hints may be nil, in which case
// every argument is EqParam.
func MkSpecializedCongrSimp(fn term.Term, argc int, hints KindHint) Synthesized {
	kinds := make([]ParamKind, argc)
	for i := range kinds {
		if hints != nil {
			kinds[i] = hints(fn, i, argc)
		} else {
			kinds[i] = EqParam
		}
	}
	return Synthesized{Kinds: kinds}
}
