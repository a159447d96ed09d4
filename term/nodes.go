package term

import "fmt"

// Var is a de Bruijn-indexed bound variable. It only ever appears inside an
// unopened binder body; the simplifier's invariant is
// that a Var reaching the driver's dispatch is an internal error, because
// every binder is opened into a Local before its body is visited.
type Var struct {
	Index uint32
}

func (Var) Kind() Kind        { return KindVar }
func (v Var) Hash() uint64    { return hashCombine(uint64(KindVar), uint64(v.Index)) }
func (v Var) String() string  { return fmt.Sprintf("#%d", v.Index) }
func (v Var) Equal(o Term) bool {
	ov, ok := o.(Var)
	return ok && ov.Index == v.Index
}

// Sort is a universe, `Sort u`.
type Sort struct {
	Level Level
}

func (Sort) Kind() Kind     { return KindSort }
func (s Sort) Hash() uint64 { return hashCombine(uint64(KindSort), s.Level.Const, boolU64(s.Level.IsMeta), s.Level.Meta) }
func (s Sort) String() string { return "Sort " + s.Level.String() }
func (s Sort) Equal(o Term) bool {
	os, ok := o.(Sort)
	return ok && os.Level.Equal(s.Level)
}

// Const is a reference to a global declaration, with its universe
// instantiation.
type Const struct {
	Name   string
	Levels []Level
}

func (Const) Kind() Kind { return KindConst }
func (c Const) Hash() uint64 {
	h := hashCombine(uint64(KindConst), hashString(c.Name))
	for _, l := range c.Levels {
		h = hashCombine(h, l.Const, boolU64(l.IsMeta), l.Meta)
	}
	return h
}
func (c Const) String() string { return c.Name }
func (c Const) Equal(o Term) bool {
	oc, ok := o.(Const)
	if !ok || oc.Name != c.Name || len(oc.Levels) != len(c.Levels) {
		return false
	}
	for i := range c.Levels {
		if !c.Levels[i].Equal(oc.Levels[i]) {
			return false
		}
	}
	return true
}

// Local is a free variable introduced by opening a binder. ID distinguishes Locals with the same display Name.
type Local struct {
	ID   uint64
	Name string
	Type Term
}

func (*Local) Kind() Kind       { return KindLocal }
func (l *Local) Hash() uint64   { return hashCombine(uint64(KindLocal), l.ID) }
func (l *Local) String() string { return l.Name }
func (l *Local) Equal(o Term) bool {
	ol, ok := o.(*Local)
	return ok && ol.ID == l.ID
}

// Meta is an expression metavariable: an as-yet-unassigned placeholder
// allocated by TypeContext.Tmp for a single lemma attempt.
type Meta struct {
	ID   uint64
	Type Term
}

func (*Meta) Kind() Kind       { return KindMeta }
func (m *Meta) Hash() uint64   { return hashCombine(uint64(KindMeta), m.ID) }
func (m *Meta) String() string { return fmt.Sprintf("?m%d", m.ID) }
func (m *Meta) Equal(o Term) bool {
	om, ok := o.(*Meta)
	return ok && om.ID == m.ID
}

// App is function application, left-associated spines are built by nesting.
type App struct {
	Fn  Term
	Arg Term
}

func (App) Kind() Kind     { return KindApp }
func (a App) Hash() uint64 { return hashCombine(uint64(KindApp), a.Fn.Hash(), a.Arg.Hash()) }
func (a App) String() string {
	return "(" + a.Fn.String() + " " + a.Arg.String() + ")"
}
func (a App) Equal(o Term) bool {
	oa, ok := o.(App)
	return ok && a.Fn.Equal(oa.Fn) && a.Arg.Equal(oa.Arg)
}

// Lambda is a binder `fun (x : Domain), Body`, with Body referring to the
// bound variable as Var{0} until opened (locally-nameless).
type Lambda struct {
	Name   string
	Domain Term
	Body   Term
}

func (Lambda) Kind() Kind { return KindLambda }
func (l Lambda) Hash() uint64 {
	return hashCombine(uint64(KindLambda), l.Domain.Hash(), l.Body.Hash())
}
func (l Lambda) String() string {
	return "fun (" + l.Name + " : " + l.Domain.String() + "), " + l.Body.String()
}
func (l Lambda) Equal(o Term) bool {
	ol, ok := o.(Lambda)
	return ok && l.Domain.Equal(ol.Domain) && l.Body.Equal(ol.Body)
}

// Pi is a dependent function type `forall (x : Domain), Codomain`, or a
// non-dependent arrow when Codomain does not mention Var{0}.
type Pi struct {
	Name     string
	Domain   Term
	Codomain Term
}

func (Pi) Kind() Kind { return KindPi }
func (p Pi) Hash() uint64 {
	return hashCombine(uint64(KindPi), p.Domain.Hash(), p.Codomain.Hash())
}
func (p Pi) String() string {
	return "forall (" + p.Name + " : " + p.Domain.String() + "), " + p.Codomain.String()
}
func (p Pi) Equal(o Term) bool {
	op, ok := o.(Pi)
	return ok && p.Domain.Equal(op.Domain) && p.Codomain.Equal(op.Codomain)
}

// Let is `let x : Type := Value; Body`. The core never descends into Body;
// it is returned unchanged by the driver.
type Let struct {
	Name  string
	Type  Term
	Value Term
	Body  Term
}

func (Let) Kind() Kind { return KindLet }
func (l Let) Hash() uint64 {
	return hashCombine(uint64(KindLet), l.Type.Hash(), l.Value.Hash(), l.Body.Hash())
}
func (l Let) String() string {
	return "let " + l.Name + " := " + l.Value.String() + "; " + l.Body.String()
}
func (l Let) Equal(o Term) bool {
	ol, ok := o.(Let)
	return ok && l.Type.Equal(ol.Type) && l.Value.Equal(ol.Value) && l.Body.Equal(ol.Body)
}

// Macro is an opaque extension node carrying uninterpreted arguments; the
// core never descends into one.
type Macro struct {
	Name string
	Args []Term
}

func (Macro) Kind() Kind { return KindMacro }
func (m Macro) Hash() uint64 {
	h := hashCombine(uint64(KindMacro), hashString(m.Name))
	for _, a := range m.Args {
		h = hashCombine(h, a.Hash())
	}
	return h
}
func (m Macro) String() string { return "(macro " + m.Name + ")" }
func (m Macro) Equal(o Term) bool {
	om, ok := o.(Macro)
	if !ok || om.Name != m.Name || len(om.Args) != len(m.Args) {
		return false
	}
	for i := range m.Args {
		if !m.Args[i].Equal(om.Args[i]) {
			return false
		}
	}
	return true
}

func boolU64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
