package parse

import "strings"

type transform struct {
	inner Parser
	fn    func(Value) (Value, error)
}

// Map runs inner and applies fn to its result. A failure of inner
// passes through untouched. If fn returns an error, the state is reset
// to before the attempt and the error surfaces as a *TransformError
// carrying the position, so a broken semantic action cannot masquerade
// as ordinary backtracking. fn may also return a nil value to turn a
// successful match into a failure.
func Map(inner Parser, fn func(Value) (Value, error)) Parser {
	return &transform{inner: inner, fn: fn}
}

func (t *transform) Parse(st *State) Value {
	initial := st.Index()
	v := t.inner.Parse(st)
	if v == nil {
		st.Reset(initial)
		return nil
	}
	out, err := t.fn(v)
	if err != nil {
		st.Reset(initial)
		panic(&TransformError{Err: err, Index: st.Index(), State: st.String()})
	}
	if out == nil {
		st.Reset(initial)
		return nil
	}
	return out
}

// Last narrows a list result to its final element. Scalar results are
// returned unchanged. The common use is dropping already-skipped
// prefixes: Last(Seq(Skip(ws), p)) yields just p's result.
func Last(p Parser) Parser {
	return Map(p, func(v Value) (Value, error) {
		if list, ok := v.([]Value); ok {
			if len(list) == 0 {
				return nil, nil
			}
			return list[len(list)-1], nil
		}
		return v, nil
	})
}

// Skip runs p for its consumption only, replacing the result with an
// empty list. Sequences splice the empty list away, so Skip removes
// delimiters and whitespace from results without losing their match.
func Skip(p Parser) Parser {
	return Map(p, func(Value) (Value, error) {
		return []Value{}, nil
	})
}

// Concat joins a list of string results into one string. An empty list
// becomes a failure rather than an empty string, so "matched nothing"
// stays distinguishable from "matched the empty string".
func Concat(p Parser) Parser {
	return Map(p, func(v Value) (Value, error) {
		list, ok := v.([]Value)
		if !ok || len(list) == 0 {
			return nil, nil
		}
		var b strings.Builder
		for _, e := range list {
			s, ok := e.(string)
			if !ok {
				return nil, nil
			}
			b.WriteString(s)
		}
		return b.String(), nil
	})
}

// Flatten recursively splices nested lists in p's result into one flat
// list. Sequences already splice one level; Flatten is for results
// whose elements are themselves lists of lists.
func Flatten(p Parser) Parser {
	return Map(p, func(v Value) (Value, error) {
		return flatten(v), nil
	})
}

func flatten(v Value) []Value {
	list, ok := v.([]Value)
	if !ok {
		return []Value{v}
	}
	out := []Value{}
	for _, e := range list {
		if nested, ok := e.([]Value); ok {
			out = append(out, flatten(nested)...)
		} else {
			out = append(out, e)
		}
	}
	return out
}
