package demo

import (
	"github.com/ile-lang/simp/lemma"
	"github.com/ile-lang/simp/relrel"
	"github.com/ile-lang/simp/term"
)

// DefaultIndex returns a small worked lemma set for the command-line
// demonstrator: enough arithmetic and propositional rewrites to show a
// multi-step simplification with a non-trivial proof term.
func DefaultIndex() *lemma.Index {
	idx := lemma.NewIndex()

	idx.Add(relrel.Eq, &lemma.Lemma{
		ID:       "addZero",
		NumEMeta: 1,
		LHS:      term.Apply(term.Const{Name: "add"}, &term.Meta{ID: 0}, term.Const{Name: "zero"}),
		RHS:      &term.Meta{ID: 0},
		Proof:    term.Apply(term.Const{Name: "addZeroPf"}, &term.Meta{ID: 0}),
	})
	idx.Add(relrel.Eq, &lemma.Lemma{
		ID:       "zeroAdd",
		NumEMeta: 1,
		LHS:      term.Apply(term.Const{Name: "add"}, term.Const{Name: "zero"}, &term.Meta{ID: 0}),
		RHS:      &term.Meta{ID: 0},
		Proof:    term.Apply(term.Const{Name: "zeroAddPf"}, &term.Meta{ID: 0}),
	})
	idx.Add(relrel.Iff, &lemma.Lemma{
		ID:       "notNot",
		NumEMeta: 1,
		LHS:      term.Apply(term.Const{Name: "not"}, term.Apply(term.Const{Name: "not"}, &term.Meta{ID: 0})),
		RHS:      &term.Meta{ID: 0},
		Proof:    term.Apply(term.Const{Name: "notNotPf"}, &term.Meta{ID: 0}),
	})
	idx.Add(relrel.Eq, &lemma.Lemma{
		ID:          "andComm",
		NumEMeta:    2,
		LHS:         term.Apply(term.Const{Name: "and"}, &term.Meta{ID: 0}, &term.Meta{ID: 1}),
		RHS:         term.Apply(term.Const{Name: "and"}, &term.Meta{ID: 1}, &term.Meta{ID: 0}),
		Proof:       term.Apply(term.Const{Name: "andCommPf"}, &term.Meta{ID: 0}, &term.Meta{ID: 1}),
		Permutation: true,
	})

	return idx
}
