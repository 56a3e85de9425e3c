package parse

import (
	"regexp"
	"strings"
)

type literal struct {
	s string
}

// Lit matches the fixed string s byte for byte. The result is s itself.
// A partial match consumes nothing.
func Lit(s string) Parser {
	return &literal{s: s}
}

func (l *literal) Parse(st *State) Value {
	initial := st.Index()
	for i := 0; i < len(l.s); i++ {
		b, ok := st.Next()
		if !ok || b != l.s[i] {
			st.Reset(initial)
			return nil
		}
	}
	return l.s
}

type oneOf struct {
	set    string
	negate bool
}

// OneOf matches a single byte contained in set. The result is that byte
// as a one-character string.
func OneOf(set string) Parser {
	return &oneOf{set: set}
}

// NoneOf matches a single byte not contained in set. It fails at end of
// input: there has to be a byte to consume.
func NoneOf(set string) Parser {
	return &oneOf{set: set, negate: true}
}

func (o *oneOf) Parse(st *State) Value {
	b, ok := st.Peek()
	if !ok {
		return nil
	}
	inSet := strings.IndexByte(o.set, b) >= 0
	if inSet == o.negate {
		return nil
	}
	st.Next()
	return string(b)
}

type pattern struct {
	rx *regexp.Regexp
}

// Regex compiles pat and returns a parser matching it against the start
// of the remaining input. The result depends on the capture groups: with
// two or more groups it is the list of group values, with exactly one
// group it is that group's value, otherwise it is the whole match.
func Regex(pat string) Parser {
	return Rx(regexp.MustCompile(pat))
}

// Rx is Regex for an already compiled pattern. The pattern only matches
// at the current position; a match further into the remaining input is a
// failure.
func Rx(rx *regexp.Regexp) Parser {
	return &pattern{rx: rx}
}

func (p *pattern) Parse(st *State) Value {
	m := p.rx.FindStringSubmatchIndex(st.Remaining())
	if m == nil || m[0] != 0 {
		return nil
	}
	tail := st.Remaining()
	st.Reset(st.Index() + m[1])
	groups := p.rx.NumSubexp()
	switch {
	case groups > 1:
		results := make([]Value, 0, groups)
		for i := 1; i <= groups; i++ {
			if m[2*i] < 0 {
				results = append(results, "")
				continue
			}
			results = append(results, tail[m[2*i]:m[2*i+1]])
		}
		return results
	case groups == 1:
		if m[2] < 0 {
			return ""
		}
		return tail[m[2]:m[3]]
	default:
		return tail[m[0]:m[1]]
	}
}
