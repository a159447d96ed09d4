package simp

import (
	"github.com/ile-lang/simp/tctx"
	"github.com/ile-lang/simp/term"
)

// match unifies pattern (which may mention metavariables from ctx) against
// e, assigning metavariables as it goes. It implements the higher-order
// pattern fragment only: a metavariable applied to a spine of distinct
// locals (mi l1 ... ln) matches anything, abstracted back over l1..ln; a
// bare metavariable matches anything. Everything else is first-order
// structural matching.
func match(ctx *tctx.Ctx, pattern, e term.Term) bool {
	pattern = ctx.InstantiateMvars(pattern)
	if m, args, ok := asPatternMeta(pattern); ok {
		val := e
		for i := len(args) - 1; i >= 0; i-- {
			val = term.Abstract(val, args[i])
		}
		if len(args) > 0 {
			val = wrapLambdas(val, args)
		}
		if ctx.IsAssigned(m) {
			existing := ctx.InstantiateMvars(m)
			return existing.Equal(val) || existing.Equal(e)
		}
		return ctx.Assign(m, val) == nil
	}
	if pattern.Kind() != e.Kind() {
		return false
	}
	switch p := pattern.(type) {
	case term.App:
		x, ok := e.(term.App)
		return ok && match(ctx, p.Fn, x.Fn) && match(ctx, p.Arg, x.Arg)
	case term.Const:
		x, ok := e.(term.Const)
		return ok && p.Name == x.Name
	case term.Lambda:
		x, ok := e.(term.Lambda)
		return ok && match(ctx, p.Domain, x.Domain) && match(ctx, p.Body, x.Body)
	case term.Pi:
		x, ok := e.(term.Pi)
		return ok && match(ctx, p.Domain, x.Domain) && match(ctx, p.Codomain, x.Codomain)
	case term.Sort:
		x, ok := e.(term.Sort)
		return ok && p.Level.Equal(x.Level)
	default:
		return pattern.Equal(e)
	}
}

// asPatternMeta recognises a (possibly applied) metavariable spine
// `m l1 ... ln`, where every argument is a distinct *term.Local.
func asPatternMeta(t term.Term) (*term.Meta, []*term.Local, bool) {
	fn, args := term.Unapply(t)
	m, ok := fn.(*term.Meta)
	if !ok {
		return nil, nil, false
	}
	locals := make([]*term.Local, 0, len(args))
	seen := map[uint64]bool{}
	for _, a := range args {
		l, ok := a.(*term.Local)
		if !ok || seen[l.ID] {
			return nil, nil, false
		}
		seen[l.ID] = true
		locals = append(locals, l)
	}
	return m, locals, true
}

func wrapLambdas(body term.Term, locals []*term.Local) term.Term {
	for i := len(locals) - 1; i >= 0; i-- {
		body = term.Lambda{Name: locals[i].Name, Domain: locals[i].Type, Body: body}
	}
	return body
}
