// Package tctx is the minimal stand-in for the kernel's TypeContext
// collaborator. The real kernel's infer/whnf/isDefEq/unifier
// is out of scope for the simplifier; this package only needs to
// honour the capability surface the simplifier's components call through.
package tctx

import (
	"github.com/pkg/errors"

	"github.com/ile-lang/simp/internal/log"
	"github.com/ile-lang/simp/term"
)

var logger = log.DefaultLogger.With("section", "simp.context")

// InstanceResolver synthesizes a value for a class-instance-implicit
// metavariable's type, standing in for the kernel's type-class resolution.
// The zero Ctx has none configured and mkClassInstance always fails,
// which is sound: failure to synthesize just skips the lemma.
type InstanceResolver func(ty term.Term) (term.Term, bool)

// shared is the state every Tmp-nested Ctx shares with its root: fresh-id
// counters and the instance resolver. Assignment maps are NOT shared --
// each nested context owns its own, so a failed lemma attempt's
// assignments never leak.
type shared struct {
	nextID   uint64
	resolver InstanceResolver
	whnf     func(term.Term) term.Term
	infer    func(term.Term) (term.Term, error)
	isProp   func(term.Term) bool
}

// Ctx is a TypeContext. The root Ctx returned by New owns the metavariable
// store that ultimately matters; every Ctx produced by Tmp is a scratch
// nested context whose assignments vanish with it unless the caller keeps
// using that nested context in place of its parent.
type Ctx struct {
	parent *Ctx
	shared *shared

	eAssign map[uint64]term.Term
	eTypes  map[uint64]term.Term
	uAssign map[uint64]term.Level

	locals []*term.Local
}

// New creates a root Ctx. whnf/infer/isProp stand in for the kernel
// collaborators named above; a nil function degrades gracefully
// (whnf to identity, infer to an error, isProp to false) so that tests
// exercising only the parts of the simplifier that do not need them can
// omit them.
func New(whnf func(term.Term) term.Term, infer func(term.Term) (term.Term, error), isProp func(term.Term) bool) *Ctx {
	if whnf == nil {
		whnf = func(t term.Term) term.Term { return t }
	}
	if infer == nil {
		infer = func(t term.Term) (term.Term, error) { return nil, errors.New("infer: not configured") }
	}
	if isProp == nil {
		isProp = func(term.Term) bool { return false }
	}
	return &Ctx{
		shared:  &shared{whnf: whnf, infer: infer, isProp: isProp},
		eAssign: map[uint64]term.Term{},
		eTypes:  map[uint64]term.Term{},
		uAssign: map[uint64]term.Level{},
	}
}

// SetInstanceResolver installs the class-instance synthesizer used by
// side-condition discharge.
func (c *Ctx) SetInstanceResolver(r InstanceResolver) { c.shared.resolver = r }

// Infer is the kernel's type inference, out of scope beyond
// this call-through.
func (c *Ctx) Infer(e term.Term) (term.Term, error) { return c.shared.infer(e) }

// Whnf reduces e to weak-head-normal-form.
func (c *Ctx) Whnf(e term.Term) term.Term { return c.shared.whnf(e) }

// IsProp reports whether t's type is a Prop-sorted type, used
// by side-condition discharge to decide whether to invoke the hypothesis
// prover.
func (c *Ctx) IsProp(t term.Term) bool { return c.shared.isProp(t) }

// IsDefEq is the kernel's definitional-equality check. The
// stand-in here treats two terms as defeq when they are structurally equal
// after instantiating assigned metavariables -- sufficient for this
// module's demo collaborators and tests, but explicitly not a substitute
// for the real kernel.
func (c *Ctx) IsDefEq(a, b term.Term) bool {
	return c.InstantiateMvars(a).Equal(c.InstantiateMvars(b))
}

// MkClassInstance synthesizes a value inhabiting ty via the installed
// InstanceResolver.
func (c *Ctx) MkClassInstance(ty term.Term) (term.Term, bool) {
	if c.shared.resolver == nil {
		return nil, false
	}
	return c.shared.resolver(c.InstantiateMvars(ty))
}

// Tmp allocates a nested context with nu fresh universe metavariables and
// ne fresh expression metavariables, sized for a single lemma attempt.
// Its assignments are invisible to c: a caller that wants to keep them
// just keeps using the returned context in place of c, and a caller that
// abandons the attempt drops it, discarding the assignments with it.
func (c *Ctx) Tmp(nu, ne int) (nested *Ctx, uMetas []uint64, eMetas []*term.Meta) {
	nested = &Ctx{
		parent:  c,
		shared:  c.shared,
		eAssign: map[uint64]term.Term{},
		eTypes:  map[uint64]term.Term{},
		uAssign: map[uint64]term.Level{},
	}
	uMetas = make([]uint64, nu)
	for i := range uMetas {
		uMetas[i] = nested.freshID()
	}
	eMetas = make([]*term.Meta, ne)
	for i := range eMetas {
		id := nested.freshID()
		eMetas[i] = &term.Meta{ID: id}
		nested.eTypes[id] = nil
	}
	return nested, uMetas, eMetas
}

func (c *Ctx) freshID() uint64 {
	c.shared.nextID++
	return c.shared.nextID
}

// SetMetaType records the (possibly meta-containing) type of an
// expression metavariable, used by side-condition discharge's "instantiate
// m_i's type" step.
func (c *Ctx) SetMetaType(m *term.Meta, ty term.Term) { c.eTypes[m.ID] = ty }

func (c *Ctx) MetaType(m *term.Meta) term.Term { return c.eTypes[m.ID] }

// Assign binds an expression metavariable. It fails (returning an error)
// if the metavariable is already assigned to a different term, mirroring
// the kernel's is_def_eq-gated assignment.
func (c *Ctx) Assign(m *term.Meta, v term.Term) error {
	if existing, ok := c.eAssign[m.ID]; ok {
		if !c.IsDefEq(existing, v) {
			return errors.Errorf("metavariable ?m%d already assigned", m.ID)
		}
		return nil
	}
	c.eAssign[m.ID] = v
	logger.Debug("assign", "meta", m.ID, "value", v.String())
	return nil
}

// AssignU binds a universe metavariable.
func (c *Ctx) AssignU(id uint64, l term.Level) { c.uAssign[id] = l }

// IsAssigned reports whether m already has a value anywhere in this
// context's ancestor chain.
func (c *Ctx) IsAssigned(m *term.Meta) bool {
	_, ok := c.lookupE(m.ID)
	return ok
}

// IsUAssigned reports whether the universe metavariable id is assigned.
func (c *Ctx) IsUAssigned(id uint64) bool {
	_, ok := c.lookupU(id)
	return ok
}

func (c *Ctx) lookupE(id uint64) (term.Term, bool) {
	for cur := c; cur != nil; cur = cur.parent {
		if v, ok := cur.eAssign[id]; ok {
			return v, true
		}
	}
	return nil, false
}

func (c *Ctx) lookupU(id uint64) (term.Level, bool) {
	for cur := c; cur != nil; cur = cur.parent {
		if v, ok := cur.uAssign[id]; ok {
			return v, true
		}
	}
	return term.Level{}, false
}

// InstantiateMvars replaces every assigned metavariable in e with its
// value, recursively.
func (c *Ctx) InstantiateMvars(e term.Term) term.Term {
	switch n := e.(type) {
	case *term.Meta:
		if v, ok := c.lookupE(n.ID); ok {
			return c.InstantiateMvars(v)
		}
		return n
	case term.Sort:
		return term.Sort{Level: c.instantiateLevel(n.Level)}
	case term.Const:
		levels := make([]term.Level, len(n.Levels))
		for i, l := range n.Levels {
			levels[i] = c.instantiateLevel(l)
		}
		return term.Const{Name: n.Name, Levels: levels}
	case term.App:
		return term.App{Fn: c.InstantiateMvars(n.Fn), Arg: c.InstantiateMvars(n.Arg)}
	case term.Lambda:
		return term.Lambda{Name: n.Name, Domain: c.InstantiateMvars(n.Domain), Body: c.InstantiateMvars(n.Body)}
	case term.Pi:
		return term.Pi{Name: n.Name, Domain: c.InstantiateMvars(n.Domain), Codomain: c.InstantiateMvars(n.Codomain)}
	case term.Let:
		return term.Let{Name: n.Name, Type: c.InstantiateMvars(n.Type), Value: c.InstantiateMvars(n.Value), Body: c.InstantiateMvars(n.Body)}
	case term.Macro:
		args := make([]term.Term, len(n.Args))
		for i, a := range n.Args {
			args[i] = c.InstantiateMvars(a)
		}
		return term.Macro{Name: n.Name, Args: args}
	default:
		return e
	}
}

func (c *Ctx) instantiateLevel(l term.Level) term.Level {
	if !l.IsMeta {
		return l
	}
	if v, ok := c.lookupU(l.Meta); ok {
		return c.instantiateLevel(v)
	}
	return l
}

// PushLocal introduces a fresh free variable standing for an opened
// binder.
func (c *Ctx) PushLocal(name string, ty term.Term) *term.Local {
	l := &term.Local{ID: c.freshID(), Name: name, Type: ty}
	c.locals = append(c.locals, l)
	return l
}
