// Package canon stands in for the kernel's DefeqCanonizer collaborator,
// abstracted down to the interface the driver actually depends on.
package canon

import (
	"github.com/ile-lang/simp/tctx"
	"github.com/ile-lang/simp/term"
)

// Canonizer maps a term to the chosen representative of its
// definitional-equivalence class. The zero value is the identity
// canonizer (every term is its own representative), which is sound: it
// just means canonicalization never finds anything to replace.
type Canonizer struct {
	// reps maps a defeq-class key (as produced by KeyFn) to the chosen
	// representative for that class.
	reps  map[uint64]term.Term
	keyFn func(*tctx.Ctx, term.Term) uint64
}

// NewCanonizer builds a Canonizer. keyFn should return the same key for
// any two terms the embedding kernel considers definitionally equal; nil
// defaults to structural hashing (every distinct term is its own class,
// so canonicalization becomes a no-op -- a safe default).
func NewCanonizer(keyFn func(*tctx.Ctx, term.Term) uint64) *Canonizer {
	if keyFn == nil {
		keyFn = func(_ *tctx.Ctx, t term.Term) uint64 { return t.Hash() }
	}
	return &Canonizer{reps: map[uint64]term.Term{}, keyFn: keyFn}
}

// DefeqCanonize returns the canonical representative for e's
// definitional-equivalence class, recording e as that class's
// representative the first time the class is seen. It
// reports changed=true when the returned term is not e itself, which the
// caller uses to raise the driver's restart flag.
func (c *Canonizer) DefeqCanonize(ctx *tctx.Ctx, e term.Term) (rep term.Term, changed bool) {
	instantiated := ctx.InstantiateMvars(e)
	if c.reps == nil {
		c.reps = map[uint64]term.Term{}
	}
	var key uint64
	if c.keyFn != nil {
		key = c.keyFn(ctx, instantiated)
	} else {
		key = instantiated.Hash()
	}
	if existing, ok := c.reps[key]; ok {
		return existing, !existing.Equal(instantiated)
	}
	c.reps[key] = instantiated
	return instantiated, false
}
