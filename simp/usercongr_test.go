package simp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	simp "github.com/ile-lang/simp/simp"
	"github.com/ile-lang/simp/lemma"
	"github.com/ile-lang/simp/relrel"
	"github.com/ile-lang/simp/tctx"
	"github.com/ile-lang/simp/term"
)

func notOp(a term.Term) term.Term { return term.Apply(term.Const{Name: "not"}, a) }

func notCongrLemma() *lemma.Lemma {
	return &lemma.Lemma{
		ID:       "notCongr",
		NumEMeta: 3,
		LHS:      notOp(&term.Meta{ID: 0}),
		RHS:      notOp(&term.Meta{ID: 1}),
		Proof:    term.Apply(term.Const{Name: "notCongrPf"}, &term.Meta{ID: 2}),
		CongrHyps: []lemma.CongrHyp{
			{Meta: &term.Meta{ID: 2}, Rel: relrel.Iff, LHS: &term.Meta{ID: 0}, RHS: &term.Meta{ID: 1}},
		},
	}
}

func TestUserCongrAppliesHypothesisResult(t *testing.T) {
	ctx := tctx.New(nil, nil, nil)
	idx := lemma.NewIndex()
	idx.Add(relrel.Iff, notCongrLemma())

	p := term.Const{Name: "p"}
	pPrime := term.Const{Name: "p2"}
	hypProof := term.Const{Name: "hypPf"}

	visit := func(rel relrel.Name, e term.Term) (simp.Result, error) {
		if e.Equal(p) {
			return simp.Mk(pPrime, hypProof), nil
		}
		return simp.Refl(e), nil
	}

	e := notOp(p)
	r, ok, err := simp.UserCongr(ctx, idx, visit, relrel.Iff, e)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, r.New.Equal(notOp(pPrime)))
	assert.True(t, r.Proof.Equal(term.Apply(term.Const{Name: "notCongrPf"}, hypProof)))
}

func TestUserCongrFallsThroughWhenHeadDoesNotMatch(t *testing.T) {
	ctx := tctx.New(nil, nil, nil)
	idx := lemma.NewIndex()
	idx.Add(relrel.Iff, notCongrLemma())

	visit := func(rel relrel.Name, e term.Term) (simp.Result, error) { return simp.Refl(e), nil }

	e := term.Apply(term.Const{Name: "and"}, term.Const{Name: "p"}, term.Const{Name: "q"})
	_, ok, err := simp.UserCongr(ctx, idx, visit, relrel.Iff, e)
	assert.NoError(t, err)
	assert.False(t, ok)
}
