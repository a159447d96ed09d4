// Package term is the standalone term representation this module simplifies.
//
// The kernel term representation is out of scope for the simplifier itself
// (see the surrounding package docs); what lives here is a minimal,
// self-contained stand-in with the same shape the simplifier's component
// design assumes: a kind discriminator, application/binder decomposition,
// substitution, and structural equality.
package term

import (
	"fmt"
	"hash/fnv"
)

// Kind discriminates the node shapes a Term may take.
type Kind uint8

const (
	KindVar Kind = iota
	KindSort
	KindConst
	KindLocal
	KindMeta
	KindApp
	KindLambda
	KindPi
	KindLet
	KindMacro
)

func (k Kind) String() string {
	switch k {
	case KindVar:
		return "Var"
	case KindSort:
		return "Sort"
	case KindConst:
		return "Const"
	case KindLocal:
		return "Local"
	case KindMeta:
		return "Meta"
	case KindApp:
		return "App"
	case KindLambda:
		return "Lambda"
	case KindPi:
		return "Pi"
	case KindLet:
		return "Let"
	case KindMacro:
		return "Macro"
	default:
		return "Unknown"
	}
}

// Term is opaque to callers beyond Kind, Hash and Equal: everything else is
// reached via the free functions in this package (Unapply, Instantiate, ...)
// so that alternative representations could be swapped in without touching
// the simplifier's component packages.
type Term interface {
	Kind() Kind
	Hash() uint64
	Equal(other Term) bool
	String() string
}

// Level is a universe level: either a fixed constant or a (possibly
// unassigned) universe metavariable; successor and max levels are not
// represented. Kept deliberately small: universe algebra proper belongs to
// the kernel.
type Level struct {
	IsMeta bool
	Meta   uint64 // valid iff IsMeta
	Const  uint64 // valid iff !IsMeta
}

func LConst(n uint64) Level       { return Level{Const: n} }
func LMeta(id uint64) Level       { return Level{IsMeta: true, Meta: id} }
func (l Level) Equal(o Level) bool {
	return l.IsMeta == o.IsMeta && l.Meta == o.Meta && l.Const == o.Const
}
func (l Level) String() string {
	if l.IsMeta {
		return fmt.Sprintf("?u%d", l.Meta)
	}
	return fmt.Sprintf("%d", l.Const)
}

func hashCombine(seed uint64, parts ...uint64) uint64 {
	h := fnv.New64a()
	buf := make([]byte, 8)
	writeU64 := func(v uint64) {
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		_, _ = h.Write(buf)
	}
	writeU64(seed)
	for _, p := range parts {
		writeU64(p)
	}
	return h.Sum64()
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
