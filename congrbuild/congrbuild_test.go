package congrbuild_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ile-lang/simp/congrbuild"
	"github.com/ile-lang/simp/relrel"
	"github.com/ile-lang/simp/term"
)

func TestMkReflNamesAreRelationScoped(t *testing.T) {
	e := term.Const{Name: "a"}
	reflEq := congrbuild.MkRefl(relrel.Eq, e)
	reflIff := congrbuild.MkRefl(relrel.Iff, e)
	assert.False(t, reflEq.Equal(reflIff))
}

func TestMkCongrArgFunAndBoth(t *testing.T) {
	f := term.Const{Name: "f"}
	proofAB := term.Const{Name: "pAB"}
	arg := term.Const{Name: "a"}

	argOnly := congrbuild.MkCongrArg(relrel.Eq, f, proofAB)
	funOnly := congrbuild.MkCongrFun(relrel.Eq, proofAB, arg)
	both := congrbuild.MkCongr(relrel.Eq, proofAB, proofAB)

	assert.False(t, argOnly.Equal(funOnly))
	assert.False(t, argOnly.Equal(both))
}

func TestMkSpecializedCongrSimpDefaultsToEqParam(t *testing.T) {
	fn := term.Const{Name: "f"}
	synth := congrbuild.MkSpecializedCongrSimp(fn, 3, nil)
	assert.Len(t, synth.Kinds, 3)
	for _, k := range synth.Kinds {
		assert.Equal(t, congrbuild.EqParam, k)
	}
}

func TestMkSpecializedCongrSimpHonoursHints(t *testing.T) {
	fn := term.Const{Name: "f"}
	hints := func(fn term.Term, i int, argc int) congrbuild.ParamKind {
		if i == 0 {
			return congrbuild.CastParam
		}
		return congrbuild.EqParam
	}
	synth := congrbuild.MkSpecializedCongrSimp(fn, 2, hints)
	assert.Equal(t, congrbuild.CastParam, synth.Kinds[0])
	assert.Equal(t, congrbuild.EqParam, synth.Kinds[1])
}

func TestImpCongrNameVariants(t *testing.T) {
	a := congrbuild.MkImpCongr(relrel.Eq, false, term.Const{Name: "pa"}, term.Const{Name: "pb"})
	b := congrbuild.MkImpCongr(relrel.Eq, true, term.Const{Name: "pa"}, term.Const{Name: "pb"})
	c := congrbuild.MkImpCongr(relrel.Iff, false, term.Const{Name: "pa"}, term.Const{Name: "pb"})
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
