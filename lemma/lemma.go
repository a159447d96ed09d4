// Package lemma is the minimal stand-in for the kernel's lemma-indexing
// collaborator, SimpLemmas. The real index's LHS-pattern
// matching against the environment's declarations is out of scope; this package only has to honour Find/FindCongr/Add.
package lemma

import (
	"github.com/hashicorp/go-set/v2"

	"github.com/ile-lang/simp/congrbuild"
	"github.com/ile-lang/simp/relrel"
	"github.com/ile-lang/simp/term"
)

// CongrHyp is a congruence hypothesis inside a user congruence lemma: a
// metavariable whose type is `forall xs, hRel hLhs hRhs`.
type CongrHyp struct {
	Meta *term.Meta
	Xs   []term.Term // binder domain types, opened in order
	Rel  relrel.Name
	LHS  term.Term // mentions the Xs' locals once opened
	RHS  term.Term // a metavariable spine heading on a fresh meta
}

// ParamKind classifies a congruence lemma's explicit parameters, shared
// with the congruence builder that consumes it once a lemma fires.
type ParamKind = congrbuild.ParamKind

const (
	Fixed        = congrbuild.Fixed
	FixedNoParam = congrbuild.FixedNoParam
	EqKind       = congrbuild.EqParam
	Cast         = congrbuild.CastParam
	HEq          = congrbuild.HEqParam
)

// Lemma is a SimpLemma: either a plain rewrite or a congruence lemma.
type Lemma struct {
	ID string

	NumUMeta int
	NumEMeta int
	// EMetaIsInstance[i] marks expression metavariable i as
	// instance-implicit, i.e. class-resolvable.
	EMetaIsInstance []bool
	// EMetaTypes[i] is slot i's declared type, expressed with placeholder
	// Meta{ID: j} references to earlier slots (j < i); discharge
	// instantiates it against the attempt's fresh metavariables before
	// inspecting it.
	EMetaTypes []term.Term

	LHS   term.Term
	RHS   term.Term
	Proof term.Term

	// Permutation lemmas only fire when instantiated RHS < instantiated
	// LHS in the canonical term order.
	Permutation bool
	// Refl lemmas carry no proof; their conclusion holds by reflexivity.
	Refl bool

	// CongrHyps is non-empty for congruence lemmas.
	CongrHyps []CongrHyp
	// ParamKinds classifies the congruence lemma's parameters;
	// empty for plain rewrite lemmas.
	ParamKinds []ParamKind
}

func (l *Lemma) IsCongr() bool { return len(l.CongrHyps) > 0 || len(l.ParamKinds) > 0 }

// headKey identifies the rewrite-dispatch bucket a term belongs to: its
// head constant/local name, or "" for anything else.
func headKey(e term.Term) string {
	fn, _ := term.Unapply(e)
	switch h := fn.(type) {
	case term.Const:
		return "c:" + h.Name
	case *term.Local:
		return "l:" + h.Name
	default:
		return ""
	}
}

// Index is SimpLemmaIndex: a per-relation multimap from LHS head-pattern to
// lemmas, with a parallel congruence-lemma index.
type Index struct {
	rewrite map[relrel.Name]map[string][]*Lemma
	congr   map[relrel.Name]map[string][]*Lemma
	// seen tracks every lemma ID added so far, so a lemma set built from
	// multiple declarations (e.g. a simp-attribute sweep plus a contextual
	// hypothesis sweep) never registers the same lemma twice under the
	// same relation.
	seen *set.Set[string]
}

func NewIndex() *Index {
	return &Index{
		rewrite: map[relrel.Name]map[string][]*Lemma{},
		congr:   map[relrel.Name]map[string][]*Lemma{},
		seen:    set.New[string](0),
	}
}

// Add registers a lemma under rel, in priority order of insertion: the
// index iterates candidates in the order Add was called. A lemma ID already
// registered under rel is a no-op.
func (ix *Index) Add(rel relrel.Name, l *Lemma) {
	dedupeKey := string(rel) + ":" + l.ID
	if l.ID != "" && !ix.seen.Insert(dedupeKey) {
		return
	}
	bucket := ix.rewrite
	if l.IsCongr() {
		bucket = ix.congr
	}
	byHead, ok := bucket[rel]
	if !ok {
		byHead = map[string][]*Lemma{}
		bucket[rel] = byHead
	}
	key := headKey(l.LHS)
	byHead[key] = append(byHead[key], l)
}

// Find returns the rewrite-lemma candidates for e under rel, in the order
// they were added.
func (ix *Index) Find(rel relrel.Name, e term.Term) []*Lemma {
	return ix.rewrite[rel][headKey(e)]
}

// FindCongr returns the congruence-lemma candidates for e under rel.
func (ix *Index) FindCongr(rel relrel.Name, e term.Term) []*Lemma {
	return ix.congr[rel][headKey(e)]
}
