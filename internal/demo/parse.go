// Package demo provides a tiny textual term syntax and a small worked
// lemma set, used by the command-line demonstrator and exercised by this
// package's own tests.
package demo

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ile-lang/simp/term"
)

// Parse reads a fully-parenthesised prefix term, e.g. "(add n zero)", into
// a term.Term. Every identifier becomes a Const: this surface syntax has
// no way to write a bound variable, local, or metavariable, since those
// only ever arise from opening a binder or attempting a lemma.
func Parse(src string) (term.Term, error) {
	p := &parser{tokens: tokenize(src)}
	if len(p.tokens) == 0 {
		return nil, fmt.Errorf("empty input")
	}
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, fmt.Errorf("unexpected trailing input at %q", p.tokens[p.pos])
	}
	return t, nil
}

func tokenize(src string) []string {
	var tokens []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range src {
		switch {
		case r == '(' || r == ')':
			flush()
			tokens = append(tokens, string(r))
		case unicode.IsSpace(r):
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}

type parser struct {
	tokens []string
	pos    int
}

func (p *parser) parseTerm() (term.Term, error) {
	if p.pos >= len(p.tokens) {
		return nil, fmt.Errorf("unexpected end of input")
	}
	tok := p.tokens[p.pos]
	switch tok {
	case "(":
		p.pos++
		head, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		e := head
		for p.pos < len(p.tokens) && p.tokens[p.pos] != ")" {
			arg, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			e = term.Apply(e, arg)
		}
		if p.pos >= len(p.tokens) {
			return nil, fmt.Errorf("unterminated parenthesis")
		}
		p.pos++
		return e, nil
	case ")":
		return nil, fmt.Errorf("unexpected %q", tok)
	default:
		p.pos++
		return term.Const{Name: tok}, nil
	}
}
