package simp

import (
	"context"

	"github.com/ile-lang/simp/congrbuild"
	"github.com/ile-lang/simp/lemma"
	"github.com/ile-lang/simp/relrel"
	"github.com/ile-lang/simp/tctx"
	"github.com/ile-lang/simp/term"
)

// trueProp is the canonical trivially-true proposition a goal must
// simplify down to for ProveBySimp to close it.
var trueProp = term.Const{Name: "true"}

// ProveBySimp proves goal by simplifying it under iff down to the
// trivial proposition and wrapping the simplification's iff-proof in the
// ofIffTrue combinator. It reports ok=false, not an error,
// when the goal does not simplify all the way to trivial -- that is a
// normal "couldn't close this goal" outcome, not a fault.
func ProveBySimp(ctx context.Context, tc *tctx.Ctx, env *relrel.Env, cfg Config, idx *lemma.Index, goal term.Term) (proof term.Term, ok bool) {
	newGoal, iffProof, err := Simplify(ctx, tc, env, cfg, idx, relrel.Iff, goal)
	if err != nil {
		return nil, false
	}
	if !newGoal.Equal(trueProp) {
		return nil, false
	}
	return congrbuild.MkApp(relrel.Eq, "ofIffTrue", iffProof), true
}
