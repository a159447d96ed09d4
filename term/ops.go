package term

// Unapply decomposes e into its head and argument spine: e = f a1 ... an
// is returned as (f, [a1 ... an]).
func Unapply(e Term) (fn Term, args []Term) {
	for {
		app, ok := e.(App)
		if !ok {
			return e, args
		}
		args = append([]Term{app.Arg}, args...)
		e = app.Fn
	}
}

// Apply rebuilds a spine from a head and arguments: the inverse of Unapply.
func Apply(fn Term, args ...Term) Term {
	e := fn
	for _, a := range args {
		e = App{Fn: e, Arg: a}
	}
	return e
}

// Instantiate opens a binder body, replacing Var{0} (Var{d} under d nested
// binders) with replacement. Other bound variables are left unchanged, not
// shifted, so body is expected to have no other loose variables.
func Instantiate(body Term, replacement Term) Term {
	return instantiateAt(body, 0, replacement)
}

func instantiateAt(t Term, depth uint32, replacement Term) Term {
	switch n := t.(type) {
	case Var:
		if n.Index == depth {
			return replacement
		}
		return n
	case App:
		return App{Fn: instantiateAt(n.Fn, depth, replacement), Arg: instantiateAt(n.Arg, depth, replacement)}
	case Lambda:
		return Lambda{Name: n.Name, Domain: instantiateAt(n.Domain, depth, replacement), Body: instantiateAt(n.Body, depth+1, replacement)}
	case Pi:
		return Pi{Name: n.Name, Domain: instantiateAt(n.Domain, depth, replacement), Codomain: instantiateAt(n.Codomain, depth+1, replacement)}
	case Let:
		return Let{Name: n.Name, Type: instantiateAt(n.Type, depth, replacement), Value: instantiateAt(n.Value, depth, replacement), Body: instantiateAt(n.Body, depth+1, replacement)}
	case Macro:
		newArgs := make([]Term, len(n.Args))
		for i, a := range n.Args {
			newArgs[i] = instantiateAt(a, depth, replacement)
		}
		return Macro{Name: n.Name, Args: newArgs}
	default:
		return t
	}
}

// Abstract re-closes a binder body, replacing every occurrence of local
// with Var{0} (shifted for nesting). It is the left inverse of Instantiate
// for a freshly-opened local.
func Abstract(body Term, local *Local) Term {
	return abstractAt(body, 0, local)
}

func abstractAt(t Term, depth uint32, local *Local) Term {
	switch n := t.(type) {
	case *Local:
		if n.ID == local.ID {
			return Var{Index: depth}
		}
		return n
	case App:
		return App{Fn: abstractAt(n.Fn, depth, local), Arg: abstractAt(n.Arg, depth, local)}
	case Lambda:
		return Lambda{Name: n.Name, Domain: abstractAt(n.Domain, depth, local), Body: abstractAt(n.Body, depth+1, local)}
	case Pi:
		return Pi{Name: n.Name, Domain: abstractAt(n.Domain, depth, local), Codomain: abstractAt(n.Codomain, depth+1, local)}
	case Let:
		return Let{Name: n.Name, Type: abstractAt(n.Type, depth, local), Value: abstractAt(n.Value, depth, local), Body: abstractAt(n.Body, depth+1, local)}
	case Macro:
		newArgs := make([]Term, len(n.Args))
		for i, a := range n.Args {
			newArgs[i] = abstractAt(a, depth, local)
		}
		return Macro{Name: n.Name, Args: newArgs}
	default:
		return t
	}
}

// HasMeta reports whether e still contains an expression metavariable,
// used by side-condition discharge to detect an
// under-determined metavariable type.
func HasMeta(e Term) bool {
	switch n := e.(type) {
	case *Meta:
		return true
	case App:
		return HasMeta(n.Fn) || HasMeta(n.Arg)
	case Lambda:
		return HasMeta(n.Domain) || HasMeta(n.Body)
	case Pi:
		return HasMeta(n.Domain) || HasMeta(n.Codomain)
	case Let:
		return HasMeta(n.Type) || HasMeta(n.Value) || HasMeta(n.Body)
	case Macro:
		for _, a := range n.Args {
			if HasMeta(a) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Less is the canonical term order used to license permutation lemmas: a
// strict, deterministic total order.
func Less(a, b Term) bool { return compare(a, b) < 0 }

func compare(a, b Term) int {
	if a.Kind() != b.Kind() {
		if a.Kind() < b.Kind() {
			return -1
		}
		return 1
	}
	switch x := a.(type) {
	case Var:
		y := b.(Var)
		return cmpU32(x.Index, y.Index)
	case Sort:
		y := b.(Sort)
		return cmpLevel(x.Level, y.Level)
	case Const:
		y := b.(Const)
		if x.Name != y.Name {
			return cmpStr(x.Name, y.Name)
		}
		return cmpLevels(x.Levels, y.Levels)
	case *Local:
		y := b.(*Local)
		return cmpU64(x.ID, y.ID)
	case *Meta:
		y := b.(*Meta)
		return cmpU64(x.ID, y.ID)
	case App:
		y := b.(App)
		if c := compare(x.Fn, y.Fn); c != 0 {
			return c
		}
		return compare(x.Arg, y.Arg)
	case Lambda:
		y := b.(Lambda)
		if c := compare(x.Domain, y.Domain); c != 0 {
			return c
		}
		return compare(x.Body, y.Body)
	case Pi:
		y := b.(Pi)
		if c := compare(x.Domain, y.Domain); c != 0 {
			return c
		}
		return compare(x.Codomain, y.Codomain)
	case Let:
		y := b.(Let)
		if c := compare(x.Value, y.Value); c != 0 {
			return c
		}
		return compare(x.Body, y.Body)
	case Macro:
		y := b.(Macro)
		if x.Name != y.Name {
			return cmpStr(x.Name, y.Name)
		}
		if len(x.Args) != len(y.Args) {
			return cmpInt(len(x.Args), len(y.Args))
		}
		for i := range x.Args {
			if c := compare(x.Args[i], y.Args[i]); c != 0 {
				return c
			}
		}
		return 0
	default:
		return 0
	}
}

func cmpLevel(a, b Level) int {
	if a.IsMeta != b.IsMeta {
		if a.IsMeta {
			return 1
		}
		return -1
	}
	if a.IsMeta {
		return cmpU64(a.Meta, b.Meta)
	}
	return cmpU64(a.Const, b.Const)
}

func cmpLevels(a, b []Level) int {
	if len(a) != len(b) {
		return cmpInt(len(a), len(b))
	}
	for i := range a {
		if c := cmpLevel(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

func cmpU32(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpU64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpStr(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
