package simp

import (
	"github.com/ile-lang/simp/canon"
	"github.com/ile-lang/simp/congrbuild"
	"github.com/ile-lang/simp/tctx"
	"github.com/ile-lang/simp/term"
)

// CanonicalizeArgs is the canonicalization argument pass: for every CastParam position in
// an application spine (an instance-implicit or proof argument whose
// exact identity does not matter, only its definitional-equivalence
// class), replace it with its canonical representative, raising restart
// when any position actually changed.
func CanonicalizeArgs(ctx *tctx.Ctx, cfg Config, instances, proofs *canon.Canonizer, kinds []congrbuild.ParamKind, args []term.Term) (out []term.Term, restart bool) {
	out = make([]term.Term, len(args))
	copy(out, args)
	for i, k := range kinds {
		if i >= len(out) {
			break
		}
		var c *canon.Canonizer
		switch {
		case k == congrbuild.CastParam && cfg.CanonizeInstances:
			c = instances
		case k == congrbuild.CastParam && cfg.CanonizeProofs:
			c = proofs
		default:
			continue
		}
		if c == nil {
			continue
		}
		rep, changed := c.DefeqCanonize(ctx, out[i])
		out[i] = rep
		if changed {
			restart = true
		}
	}
	return out, restart
}

// RemoveUnnecessaryCasts elides an application headed by eq.rec, eq.drec
// or eq.nrec that has at least two arguments, returning its minor premise
// when e is such a cast and nothing otherwise. Neither the motive nor the
// major premise is inspected, and only the outermost cast is removed.
func RemoveUnnecessaryCasts(e term.Term) (term.Term, bool) {
	fn, args := term.Unapply(e)
	c, ok := fn.(term.Const)
	if !ok {
		return nil, false
	}
	switch c.Name {
	case "eq.rec", "eq.drec", "eq.nrec":
	default:
		return nil, false
	}
	// Conventionally: motive, minor premise (the value transported), major
	// premise (the equality proof), ... -- the minor premise is what
	// survives once the cast is elided.
	const minorIdx = 1
	if len(args) <= minorIdx {
		return nil, false
	}
	return args[minorIdx], true
}
