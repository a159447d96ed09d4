package simp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ile-lang/simp/tctx"
	"github.com/ile-lang/simp/term"
)

func TestMatchBareMetaAssignsWholeTerm(t *testing.T) {
	ctx := tctx.New(nil, nil, nil)
	_, _, metas := ctx.Tmp(0, 1)
	m := metas[0]

	e := term.Apply(term.Const{Name: "f"}, term.Const{Name: "a"})
	assert.True(t, match(ctx, m, e))
	assert.True(t, ctx.InstantiateMvars(m).Equal(e))
}

func TestMatchHigherOrderPatternAbstractsOverLocals(t *testing.T) {
	ctx := tctx.New(nil, nil, nil)
	_, _, metas := ctx.Tmp(0, 1)
	m := metas[0]
	x := ctx.PushLocal("x", term.Const{Name: "T"})

	pattern := term.Apply(m, x)
	e := term.Apply(term.Const{Name: "f"}, x, term.Const{Name: "a"})

	assert.True(t, match(ctx, pattern, e))

	solved := ctx.InstantiateMvars(m)
	lam, ok := solved.(term.Lambda)
	assert.True(t, ok)
	opened := term.Instantiate(lam.Body, x)
	assert.True(t, opened.Equal(e))
}

func TestMatchRejectsMismatchedConstHeads(t *testing.T) {
	ctx := tctx.New(nil, nil, nil)
	pattern := term.Apply(term.Const{Name: "f"}, term.Const{Name: "a"})
	e := term.Apply(term.Const{Name: "g"}, term.Const{Name: "a"})
	assert.False(t, match(ctx, pattern, e))
}

func TestMatchSameMetaTwiceRequiresConsistentValue(t *testing.T) {
	ctx := tctx.New(nil, nil, nil)
	_, _, metas := ctx.Tmp(0, 1)
	m := metas[0]

	pattern := term.Apply(term.Const{Name: "pair"}, m, m)
	ok1 := term.Apply(term.Const{Name: "pair"}, term.Const{Name: "a"}, term.Const{Name: "a"})
	assert.True(t, match(ctx, pattern, ok1))

	ctx2 := tctx.New(nil, nil, nil)
	_, _, metas2 := ctx2.Tmp(0, 1)
	m2 := metas2[0]
	pattern2 := term.Apply(term.Const{Name: "pair"}, m2, m2)
	bad := term.Apply(term.Const{Name: "pair"}, term.Const{Name: "a"}, term.Const{Name: "b"})
	assert.False(t, match(ctx2, pattern2, bad))
}
