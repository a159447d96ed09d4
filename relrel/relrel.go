// Package relrel names the congruence/equivalence relation a simplification
// runs under.
package relrel

// Name is a symbolic relation identifier. Eq and Iff are distinguished: the
// auto-congruence builder only fires under Eq, and binder congruence
// only fires under Eq or Iff.
type Name string

const (
	Eq  Name = "eq"
	Iff Name = "iff"
)

// Env is the environment's registry of which relations are reflexive and
// which admit substitution from Eq. It is read-only
// for the duration of a simplifier call.
type Env struct {
	reflexive    map[Name]bool
	admitsEqSubst map[Name]bool
}

// NewEnv returns an Env with Eq and Iff pre-registered as reflexive and as
// admitting substitution from Eq, matching the environment any proof
// assistant embedding this simplifier would already provide.
func NewEnv() *Env {
	e := &Env{
		reflexive:     map[Name]bool{Eq: true, Iff: true},
		admitsEqSubst: map[Name]bool{Eq: true, Iff: true},
	}
	return e
}

// Register marks rel as a simp relation: reflexive, and (if admitsEqSubst)
// eligible for liftFromEq.
func (e *Env) Register(rel Name, admitsEqSubst bool) {
	e.reflexive[rel] = true
	e.admitsEqSubst[rel] = admitsEqSubst
}

func (e *Env) IsReflexive(rel Name) bool { return e.reflexive[rel] }

func (e *Env) AdmitsEqSubst(rel Name) bool { return e.admitsEqSubst[rel] }
