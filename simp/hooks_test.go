package simp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	simp "github.com/ile-lang/simp/simp"
	"github.com/ile-lang/simp/lemma"
	"github.com/ile-lang/simp/relrel"
	"github.com/ile-lang/simp/tctx"
	"github.com/ile-lang/simp/term"
)

func TestPlainHooksPreReducesApplicationOfLambda(t *testing.T) {
	hooks := simp.PlainHooks{GoCtx: context.Background(), Tc: tctx.New(nil, nil, nil), Env: relrel.NewEnv(), Cfg: simp.DefaultConfig()}
	idx := lemma.NewIndex()

	lam := term.Lambda{Name: "x", Domain: term.Const{Name: "T"}, Body: term.Var{Index: 0}}
	arg := term.Const{Name: "a"}
	e := term.App{Fn: lam, Arg: arg}

	_, outcome := hooks.Pre(nil, relrel.Eq, idx, nil, e)
	assert.False(t, outcome.NoChange)
	assert.True(t, outcome.Result.New.Equal(arg))
}

func TestPlainHooksPreLeavesNonRedexAlone(t *testing.T) {
	hooks := simp.PlainHooks{GoCtx: context.Background(), Tc: tctx.New(nil, nil, nil), Env: relrel.NewEnv(), Cfg: simp.DefaultConfig()}
	idx := lemma.NewIndex()

	e := term.Apply(term.Const{Name: "f"}, term.Const{Name: "a"})
	_, outcome := hooks.Pre(nil, relrel.Eq, idx, nil, e)
	assert.True(t, outcome.NoChange)
}

func TestPlainHooksPostRewritesViaIndex(t *testing.T) {
	tc := tctx.New(nil, nil, nil)
	hooks := simp.PlainHooks{GoCtx: context.Background(), Tc: tc, Env: relrel.NewEnv(), Cfg: simp.DefaultConfig()}
	idx := lemma.NewIndex()
	idx.Add(relrel.Eq, addZeroLemma())

	n := term.Const{Name: "n"}
	e := addOp(n, term.Const{Name: "zero"})
	_, outcome := hooks.Post(nil, relrel.Eq, idx, nil, e)
	assert.False(t, outcome.NoChange)
	assert.True(t, outcome.Result.New.Equal(n))
}

func TestScriptHooksForwardsToCallbacksOrNoOps(t *testing.T) {
	called := false
	sh := simp.ScriptHooks{
		PreFn: func(accum any, rel relrel.Name, idx *lemma.Index, parent, e term.Term) (any, simp.Outcome) {
			called = true
			return accum, simp.Outcome{NoChange: true}
		},
	}
	idx := lemma.NewIndex()
	_, outcome := sh.Pre(nil, relrel.Eq, idx, nil, term.Const{Name: "a"})
	assert.True(t, called)
	assert.True(t, outcome.NoChange)

	_, postOutcome := sh.Post(nil, relrel.Eq, idx, nil, term.Const{Name: "a"})
	assert.True(t, postOutcome.NoChange)

	_, proof, ok := sh.Prove(nil, relrel.Eq, idx, term.Const{Name: "a"})
	assert.Nil(t, proof)
	assert.False(t, ok)
}
