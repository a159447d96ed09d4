package simp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	simp "github.com/ile-lang/simp/simp"
	"github.com/ile-lang/simp/relrel"
	"github.com/ile-lang/simp/tctx"
	"github.com/ile-lang/simp/term"
)

func TestBinderCongrSkipsWhenAxiomsDisabled(t *testing.T) {
	ctx := tctx.New(nil, nil, nil)
	lam := term.Lambda{Name: "x", Domain: term.Const{Name: "T"}, Body: term.Var{Index: 0}}
	visit := func(rel relrel.Name, e term.Term) (simp.Result, error) { return simp.Refl(e), nil }

	_, ok, err := simp.BinderCongr(ctx, simp.Config{}, relrel.Eq, visit, lam)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestBinderCongrOverLambdaUsesFunext(t *testing.T) {
	ctx := tctx.New(nil, nil, nil)
	cfg := simp.Config{UseAxioms: true}

	body := term.Const{Name: "f"}
	newBody := term.Const{Name: "g"}
	proof := term.Const{Name: "bodyProof"}

	visit := func(rel relrel.Name, e term.Term) (simp.Result, error) {
		if e.Equal(body) {
			return simp.Mk(newBody, proof), nil
		}
		return simp.Refl(e), nil
	}

	lam := term.Lambda{Name: "x", Domain: term.Const{Name: "T"}, Body: body}
	r, ok, err := simp.BinderCongr(ctx, cfg, relrel.Eq, visit, lam)
	assert.NoError(t, err)
	assert.True(t, ok)
	result, isLam := r.New.(term.Lambda)
	assert.True(t, isLam)
	assert.True(t, result.Body.Equal(newBody))
	assert.NotNil(t, r.Proof)
}

func TestBinderCongrOverLambdaKeepsProofLessBodyChange(t *testing.T) {
	ctx := tctx.New(nil, nil, nil)
	cfg := simp.Config{UseAxioms: true}

	body := term.Const{Name: "f"}
	newBody := term.Const{Name: "g"}

	// visit reports a changed body but no proof: BinderCongr should still
	// return the reabstracted lambda, just with no funext proof attached.
	visit := func(rel relrel.Name, e term.Term) (simp.Result, error) {
		if e.Equal(body) {
			return simp.Refl(newBody), nil
		}
		return simp.Refl(e), nil
	}

	lam := term.Lambda{Name: "x", Domain: term.Const{Name: "T"}, Body: body}
	r, ok, err := simp.BinderCongr(ctx, cfg, relrel.Eq, visit, lam)
	assert.NoError(t, err)
	assert.True(t, ok)
	result, isLam := r.New.(term.Lambda)
	assert.True(t, isLam)
	assert.True(t, result.Body.Equal(newBody))
	assert.Nil(t, r.Proof)
}

func TestBinderCongrOverArrowUsesImpCongr(t *testing.T) {
	ctx := tctx.New(nil, nil, nil)
	cfg := simp.Config{UseAxioms: true}

	dom := term.Const{Name: "P"}
	cod := term.Const{Name: "Q"}
	codNew := term.Const{Name: "Q2"}
	codProof := term.Const{Name: "codProof"}

	visit := func(rel relrel.Name, e term.Term) (simp.Result, error) {
		if e.Equal(cod) {
			return simp.Mk(codNew, codProof), nil
		}
		return simp.Refl(e), nil
	}

	arrow := term.Pi{Name: "_", Domain: dom, Codomain: cod}
	r, ok, err := simp.BinderCongr(ctx, cfg, relrel.Eq, visit, arrow)
	assert.NoError(t, err)
	assert.True(t, ok)
	result, isPi := r.New.(term.Pi)
	assert.True(t, isPi)
	assert.True(t, result.Codomain.Equal(codNew))
	assert.NotNil(t, r.Proof)
}

func TestBinderCongrOverDependentPiUsesForallCongr(t *testing.T) {
	ctx := tctx.New(nil, nil, nil)
	cfg := simp.Config{UseAxioms: true}

	dom := term.Const{Name: "T"}
	codBody := term.Var{Index: 0}

	visited := 0
	visit := func(rel relrel.Name, e term.Term) (simp.Result, error) {
		visited++
		if _, isLocal := e.(*term.Local); isLocal {
			return simp.Mk(term.Const{Name: "Q"}, term.Const{Name: "proof"}), nil
		}
		return simp.Refl(e), nil
	}

	pi := term.Pi{Name: "x", Domain: dom, Codomain: codBody}
	r, ok, err := simp.BinderCongr(ctx, cfg, relrel.Eq, visit, pi)
	assert.NoError(t, err)
	assert.True(t, ok)
	_, isPi := r.New.(term.Pi)
	assert.True(t, isPi)
	assert.Equal(t, 1, visited)
}
