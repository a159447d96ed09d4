package simp

import (
	"context"

	"github.com/ile-lang/simp/canon"
	"github.com/ile-lang/simp/congrbuild"
	"github.com/ile-lang/simp/internal/log"
	"github.com/ile-lang/simp/lemma"
	"github.com/ile-lang/simp/relrel"
	"github.com/ile-lang/simp/simperr"
	"github.com/ile-lang/simp/tctx"
	"github.com/ile-lang/simp/term"
)

var topLog = log.DefaultLogger.With("section", "simp.top")

// Simplify runs the plain simplifier -- the default hooks, no scripting
// accumulator -- over e under rel, using the lemmas registered in idx.
// It returns the simplified term and a proof that e ~ result, or
// simperr.NothingToSimplify if nothing changed.
func Simplify(ctx context.Context, tc *tctx.Ctx, env *relrel.Env, cfg Config, idx *lemma.Index, rel relrel.Name, e term.Term) (term.Term, term.Term, error) {
	hooks := PlainHooks{GoCtx: ctx, Tc: tc, Env: env, Cfg: cfg}
	return ExtSimplify(ctx, tc, env, cfg, idx, hooks, nil, rel, e)
}

// ExtSimplify is Simplify generalized over an arbitrary Hooks
// implementation and an opaque accumulator threaded through every hook
// call, for the script-driven variant.
func ExtSimplify(ctx context.Context, tc *tctx.Ctx, env *relrel.Env, cfg Config, idx *lemma.Index, hooks Hooks, accum any, rel relrel.Name, e term.Term) (term.Term, term.Term, error) {
	if !env.IsReflexive(rel) {
		return nil, nil, simperr.Invariant("simplifying under a non-reflexive relation")
	}

	const maxRestarts = 10_000

	curr := e
	acc := Refl(e)
	for i := 0; ; i++ {
		if cfg.SinglePass && i > 0 {
			break
		}
		if i > maxRestarts {
			return nil, nil, simperr.StepBudgetExceeded
		}

		d := newDriver(ctx, tc, idx, env, cfg, hooks, accum)
		if cfg.CanonizeInstances {
			d.canonInstances = canon.NewCanonizer(nil)
		}
		if cfg.CanonizeProofs {
			d.canonProofs = canon.NewCanonizer(nil)
		}
		d.kindHints = defaultKindHint

		round, err := d.visit(rel, nil, curr)
		if err != nil {
			return nil, nil, err
		}
		accum = d.accum
		acc = Join(rel, acc, round)
		curr = round.New

		if cfg.LiftEq && rel != relrel.Eq && env.AdmitsEqSubst(rel) {
			eqRound, err := runEqPass(ctx, tc, env, cfg, idx, hooks, accum, curr)
			if err == nil && eqRound.Proof != nil {
				if lifted, err := LiftFromEq(env, rel, eqRound); err == nil {
					acc = Join(rel, acc, lifted)
					curr = lifted.New
				}
			}
		}

		if !d.restart {
			break
		}
		topLog.Debug("canonicalization requested restart", "pass", i)
	}

	if !acc.changed(e) {
		return nil, nil, simperr.NothingToSimplify
	}
	acc = Finalize(rel, e, acc)
	return acc.New, acc.Proof, nil
}

// runEqPass runs one non-restarting eq pass over e, used by the LiftEq
// relation-lifting step: it never itself triggers another restart loop,
// since Config.LiftEq's job is a single supplementary attempt per round.
func runEqPass(ctx context.Context, tc *tctx.Ctx, env *relrel.Env, cfg Config, idx *lemma.Index, hooks Hooks, accum any, e term.Term) (Result, error) {
	d := newDriver(ctx, tc, idx, env, cfg, hooks, accum)
	d.kindHints = defaultKindHint
	return d.visit(relrel.Eq, nil, e)
}

// defaultKindHint is the fallback congruence-kind classifier: every
// position is an EqParam. A real embedding would close over its
// environment's specialization analysis to install CastParam hints where
// warranted.
func defaultKindHint(fn term.Term, i int, argc int) congrbuild.ParamKind {
	return congrbuild.EqParam
}
