package simp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	simp "github.com/ile-lang/simp/simp"
	"github.com/ile-lang/simp/lemma"
	"github.com/ile-lang/simp/relrel"
	"github.com/ile-lang/simp/simperr"
	"github.com/ile-lang/simp/tctx"
	"github.com/ile-lang/simp/term"
)

func TestSimplifyAppliesRegisteredLemma(t *testing.T) {
	idx := lemma.NewIndex()
	idx.Add(relrel.Eq, addZeroLemma())
	ctx := tctx.New(nil, nil, nil)
	env := relrel.NewEnv()

	n := term.Const{Name: "n"}
	e := addOp(n, term.Const{Name: "zero"})

	newE, proof, err := simp.Simplify(context.Background(), ctx, env, simp.DefaultConfig(), idx, relrel.Eq, e)
	assert.NoError(t, err)
	assert.True(t, newE.Equal(n))
	assert.NotNil(t, proof)
}

func TestSimplifyReportsNothingToSimplify(t *testing.T) {
	idx := lemma.NewIndex()
	ctx := tctx.New(nil, nil, nil)
	env := relrel.NewEnv()

	e := term.Const{Name: "atomic"}
	_, _, err := simp.Simplify(context.Background(), ctx, env, simp.DefaultConfig(), idx, relrel.Eq, e)
	assert.ErrorIs(t, err, simperr.NothingToSimplify)
}

func TestSimplifyReducesBetaRedexViaPlainHooksPre(t *testing.T) {
	idx := lemma.NewIndex()
	ctx := tctx.New(nil, nil, nil)
	env := relrel.NewEnv()

	lam := term.Lambda{Name: "x", Domain: term.Const{Name: "T"}, Body: term.Var{Index: 0}}
	arg := term.Const{Name: "a"}
	e := term.App{Fn: lam, Arg: arg}

	newE, proof, err := simp.Simplify(context.Background(), ctx, env, simp.DefaultConfig(), idx, relrel.Eq, e)
	assert.NoError(t, err)
	assert.True(t, newE.Equal(arg))
	assert.NotNil(t, proof)
}

func TestSimplifyRespectsStepBudget(t *testing.T) {
	idx := lemma.NewIndex()
	idx.Add(relrel.Eq, &lemma.Lemma{
		ID:       "unfold",
		NumEMeta: 1,
		LHS:      term.Apply(term.Const{Name: "succ"}, &term.Meta{ID: 0}),
		RHS:      term.Apply(term.Const{Name: "succ"}, term.Apply(term.Const{Name: "succ"}, &term.Meta{ID: 0})),
		Proof:    term.Apply(term.Const{Name: "unfoldPf"}, &term.Meta{ID: 0}),
	})
	ctx := tctx.New(nil, nil, nil)
	env := relrel.NewEnv()

	e := term.Apply(term.Const{Name: "succ"}, term.Const{Name: "zero"})
	cfg := simp.DefaultConfig()
	cfg.MaxSteps = 10

	_, _, err := simp.Simplify(context.Background(), ctx, env, cfg, idx, relrel.Eq, e)
	assert.ErrorIs(t, err, simperr.StepBudgetExceeded)
}

func TestSimplifyHonoursCancellation(t *testing.T) {
	idx := lemma.NewIndex()
	ctx := tctx.New(nil, nil, nil)
	env := relrel.NewEnv()

	goCtx, cancel := context.WithCancel(context.Background())
	cancel()

	e := term.Apply(term.Const{Name: "f"}, term.Const{Name: "a"})
	_, _, err := simp.Simplify(goCtx, ctx, env, simp.DefaultConfig(), idx, relrel.Eq, e)
	assert.ErrorIs(t, err, simperr.Cancelled)
}

func TestSimplifyRejectsNonReflexiveRelation(t *testing.T) {
	idx := lemma.NewIndex()
	ctx := tctx.New(nil, nil, nil)
	env := relrel.NewEnv()

	_, _, err := simp.Simplify(context.Background(), ctx, env, simp.DefaultConfig(), idx, relrel.Name("weird"), term.Const{Name: "a"})
	assert.Error(t, err)
}
