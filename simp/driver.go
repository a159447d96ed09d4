package simp

import (
	"context"
	"hash/fnv"

	"github.com/benbjohnson/immutable"

	"github.com/ile-lang/simp/canon"
	"github.com/ile-lang/simp/congrbuild"
	"github.com/ile-lang/simp/internal/log"
	"github.com/ile-lang/simp/lemma"
	"github.com/ile-lang/simp/relrel"
	"github.com/ile-lang/simp/simperr"
	"github.com/ile-lang/simp/tctx"
	"github.com/ile-lang/simp/term"
)

var driverLog = log.DefaultLogger.With("section", "simp.driver")

// driver holds everything the recursive visitor needs to thread through a
// single top-level call: the step counter, a persistent result cache
// (immutable.Map keyed by a hash of relation and term, shared by every
// visit of the pass, including visits made inside lemma attempts), and the
// collaborators each component package operates against.
type driver struct {
	goCtx context.Context
	ctx   *tctx.Ctx
	idx   *lemma.Index
	env   *relrel.Env
	cfg   Config
	hooks Hooks

	kindHints      congrbuild.KindHint
	canonInstances *canon.Canonizer
	canonProofs    *canon.Canonizer

	steps   uint64
	cache   *immutable.Map[uint64, Result]
	accum   any
	restart bool
}

func newDriver(goCtx context.Context, ctx *tctx.Ctx, idx *lemma.Index, env *relrel.Env, cfg Config, hooks Hooks, accum any) *driver {
	return &driver{
		goCtx: goCtx,
		ctx:   ctx,
		idx:   idx,
		env:   env,
		cfg:   cfg,
		hooks: hooks,
		cache: immutable.NewMap[uint64, Result](nil),
		accum: accum,
	}
}

func cacheKey(rel relrel.Name, e term.Term) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(rel))
	_, _ = h.Write([]byte{0})
	key := h.Sum64()
	return key ^ (e.Hash() * 1099511628211)
}

// visit runs rounds of pre-hook, structural
// dispatch (canonicalization, then congruence), and post-hook, joining
// their proofs by transitivity, until a round makes no further change or
// a hook says stop.
func (d *driver) visit(rel relrel.Name, parent, e term.Term) (Result, error) {
	if err := d.goCtx.Err(); err != nil {
		return Result{}, simperr.Cancelled
	}

	key := cacheKey(rel, e)
	if cached, ok := d.cache.Get(key); ok {
		return cached, nil
	}

	acc := Refl(e)
	curr := e
	for {
		d.steps++
		if d.steps > d.cfg.maxSteps() {
			return Result{}, simperr.StepBudgetExceeded
		}
		round, stop, err := d.round(rel, parent, curr)
		if err != nil {
			return Result{}, err
		}
		acc = Join(rel, acc, round)
		if stop || round.New.Equal(curr) {
			break
		}
		curr = round.New
	}

	d.cache = d.cache.Set(key, acc)
	return acc, nil
}

func (d *driver) round(rel relrel.Name, parent, e term.Term) (Result, bool, error) {
	accum, pre := d.hooks.Pre(d.accum, rel, d.idx, parent, e)
	d.accum = accum
	curr := e
	if !pre.NoChange {
		curr = pre.Result.New
		if pre.Stop {
			return pre.Result, true, nil
		}
	}

	structural, err := d.dispatch(rel, curr)
	if err != nil {
		return Result{}, false, err
	}
	afterPre := structural
	if !pre.NoChange {
		afterPre = Join(rel, pre.Result, structural)
	}

	accum, post := d.hooks.Post(d.accum, rel, d.idx, parent, afterPre.New)
	d.accum = accum
	if post.NoChange {
		return afterPre, false, nil
	}
	final := Join(rel, afterPre, post.Result)
	return final, post.Stop, nil
}

func (d *driver) dispatch(rel relrel.Name, e term.Term) (Result, error) {
	switch n := e.(type) {
	case term.Var:
		return Result{}, simperr.Invariant("bound variable reached the driver")
	case *term.Local, *term.Meta, term.Sort, term.Const, term.Let, term.Macro:
		return Refl(e), nil
	case term.App:
		return d.dispatchApp(rel, n)
	case term.Lambda, term.Pi:
		r, ok, err := BinderCongr(d.ctx, d.cfg, rel, d.visitFnFor(e), e)
		if err != nil {
			return Result{}, err
		}
		if ok {
			return r, nil
		}
		return Refl(e), nil
	default:
		return Refl(e), nil
	}
}

func (d *driver) visitFnFor(parent term.Term) VisitFn {
	return func(rel relrel.Name, e term.Term) (Result, error) {
		return d.visit(rel, parent, e)
	}
}

func (d *driver) dispatchApp(rel relrel.Name, e term.App) (Result, error) {
	canonResult, err := d.canonicalizeSpine(e)
	if err != nil {
		return Result{}, err
	}
	app, ok := canonResult.New.(term.App)
	if !ok {
		// canonicalization (via cast elision) already collapsed the
		// application; nothing left to recurse structurally into.
		return canonResult, nil
	}

	visitFn := d.visitFnFor(app)

	if rel == relrel.Eq || rel == relrel.Iff {
		r, ok, err := UserCongr(d.ctx, d.idx, visitFn, rel, app)
		if err != nil {
			return Result{}, err
		}
		if ok {
			return Join(relrel.Eq, canonResult, r), nil
		}
	}

	if rel != relrel.Eq {
		driverLog.Debug("no auto-congruence outside eq", "rel", string(rel))
		return canonResult, nil
	}

	r, err := AutoCongr(d.ctx, d.kindHints, visitFn, app)
	if err != nil {
		return Result{}, err
	}
	return Join(relrel.Eq, canonResult, r), nil
}

// canonicalizeSpine runs canonicalization on e's own argument spine --
// defeq canonicalization of instance/proof-typed positions, then
// unnecessary cast elision -- before UserCongr/AutoCongr get a chance to
// recurse into it, since canonicalization runs before structural descent
// on an application node. Both steps are proof-free (defeq); canonicalizing
// requests a restart when it actually changes a representative, matching
// the top-level restart semantics in simplify.go.
func (d *driver) canonicalizeSpine(e term.App) (Result, error) {
	fn, args := term.Unapply(e)
	kinds := congrbuild.MkSpecializedCongrSimp(fn, len(args), d.kindHints).Kinds
	canonArgs, restart := CanonicalizeArgs(d.ctx, d.cfg, d.canonInstances, d.canonProofs, kinds, args)
	if restart {
		d.restart = true
	}
	rebuilt := term.Apply(fn, canonArgs...)
	r := Refl(rebuilt)
	if elided, ok := RemoveUnnecessaryCasts(rebuilt); ok {
		r = Join(relrel.Eq, r, Refl(elided))
	}
	return r, nil
}
