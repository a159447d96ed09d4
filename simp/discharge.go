package simp

import (
	"github.com/ile-lang/simp/lemma"
	"github.com/ile-lang/simp/relrel"
	"github.com/ile-lang/simp/simperr"
	"github.com/ile-lang/simp/tctx"
	"github.com/ile-lang/simp/term"
)

// Prover proves a hypothesis of type ty within rel, or reports none. A
// Prove hook failing is not an error: the attempt that needed it just
// gets abandoned as inapplicable.
type Prover func(rel relrel.Name, ty term.Term) (term.Term, bool)

// discharge processes l's metavariables after LHS matching, in reverse
// creation order, so that a later metavariable's type can mention an
// earlier one without forward references ever being needed: instance
// metas are resolved via MkClassInstance, unassigned metas whose type is
// still under-determined are skipped, Prop-sorted unassigned metas are
// proved via prove, and everything else is left for the caller to check
// is fully assigned afterward.
func discharge(ctx *tctx.Ctx, rel relrel.Name, l *lemma.Lemma, eMetas []*term.Meta, prove Prover) error {
	for i := len(eMetas) - 1; i >= 0; i-- {
		m := eMetas[i]
		if ctx.IsAssigned(m) {
			continue
		}
		ty := ctx.InstantiateMvars(ctx.MetaType(m))
		if ty == nil || term.HasMeta(ty) {
			// Its type is itself still undetermined; later unification
			// may pin it down, so this is not failure yet.
			continue
		}
		if i < len(l.EMetaIsInstance) && l.EMetaIsInstance[i] {
			val, ok := ctx.MkClassInstance(ty)
			if !ok {
				return simperr.LemmaInapplicable
			}
			if err := ctx.Assign(m, val); err != nil {
				return simperr.LemmaInapplicable
			}
			continue
		}
		if !ctx.IsProp(ty) {
			continue
		}
		if prove == nil {
			return simperr.SideConditionUnmet
		}
		proof, ok := prove(rel, ty)
		if !ok {
			return simperr.SideConditionUnmet
		}
		if err := ctx.Assign(m, proof); err != nil {
			return simperr.SideConditionUnmet
		}
	}
	return nil
}

// allAssigned reports whether every metavariable in metas ended up with
// a value, the final check a rewrite/congruence attempt runs before it
// instantiates its conclusion.
func allAssigned(ctx *tctx.Ctx, metas []*term.Meta) bool {
	for _, m := range metas {
		if !ctx.IsAssigned(m) {
			return false
		}
	}
	return true
}
