// Package jsondoc parses JSON-shaped documents into plain Go values
// using the parse combinators: objects become map[string]any, arrays
// []any, strings string, numbers float64, and true/false/null their Go
// counterparts. String escapes are not supported; a string runs from
// one double quote to the next.
package jsondoc

import (
	"fmt"

	"github.com/dhamidi/combine/parse"
)

// array keeps parsed JSON arrays out of the combinators' list-splicing:
// sequences splice []parse.Value results into their own result list,
// and a distinct slice type is left alone. Parse converts it to a plain
// []any at the end.
type array []any

// member is one key/value pair of an object body.
type member struct {
	key   string
	value any
}

// nullMarker stands in for JSON null inside the parser, where a nil
// result would read as a failed match. Parse converts it to nil.
type nullMarker struct{}

var (
	value parse.Parser

	// Values nest inside arrays and objects, which are themselves
	// values; this trampoline breaks the construction cycle.
	valueRef = parse.Func(func(st *parse.State) parse.Value {
		return value.Parse(st)
	})
)

func init() {
	quote := parse.Skip(parse.Lit(`"`))
	str := parse.Map(
		parse.Seq(quote, parse.Maybe(parse.CharSetExcept(`"`)), quote),
		func(v parse.Value) (parse.Value, error) {
			list := v.([]parse.Value)
			if len(list) == 0 {
				return "", nil
			}
			return list[0], nil
		})

	boolTrue := parse.Map(parse.Lit("true"), func(parse.Value) (parse.Value, error) {
		return true, nil
	})
	boolFalse := parse.Map(parse.Lit("false"), func(parse.Value) (parse.Value, error) {
		return false, nil
	})
	null := parse.Map(parse.Lit("null"), func(parse.Value) (parse.Value, error) {
		return nullMarker{}, nil
	})

	// Arrays: elements separated by commas; the surrounding whitespace
	// is consumed by the element values themselves.
	midElem := parse.Last(parse.Seq(valueRef, parse.Skip(parse.Lit(","))))
	elems := parse.Seq(parse.Repeat(midElem, -1), valueRef)
	arr := parse.Map(
		parse.Seq(
			parse.Skip(parse.Lit("[")),
			parse.First(elems, parse.Skip(parse.Whitespace())),
			parse.Skip(parse.Lit("]"))),
		func(v parse.Value) (parse.Value, error) {
			list := v.([]parse.Value)
			out := make(array, 0, len(list))
			for _, e := range list {
				out = append(out, e)
			}
			return out, nil
		})

	// Objects: "key": value pairs separated by commas.
	key := parse.Last(parse.Seq(parse.Skip(parse.Whitespace()), str))
	separator := parse.Skip(parse.Seq(parse.Whitespace(), parse.Lit(":"), parse.Whitespace()))
	pair := parse.Map(
		parse.Seq(key, separator, valueRef),
		func(v parse.Value) (parse.Value, error) {
			list := v.([]parse.Value)
			if len(list) != 2 {
				return nil, fmt.Errorf("malformed object member: %v", list)
			}
			return member{key: list[0].(string), value: list[1]}, nil
		})
	midPair := parse.Last(parse.Seq(pair, parse.Skip(parse.Lit(","))))
	pairs := parse.Seq(parse.Repeat(midPair, -1), pair)
	obj := parse.Map(
		parse.Seq(
			parse.Skip(parse.Lit("{")),
			parse.First(pairs, parse.Skip(parse.Whitespace())),
			parse.Skip(parse.Lit("}"))),
		func(v parse.Value) (parse.Value, error) {
			list := v.([]parse.Value)
			out := make(map[string]any, len(list))
			for _, e := range list {
				m, ok := e.(member)
				if !ok {
					return nil, fmt.Errorf("malformed object member: %v", e)
				}
				out[m.key] = m.value
			}
			return out, nil
		})

	value = parse.Last(parse.Seq(
		parse.Skip(parse.Whitespace()),
		parse.First(obj, arr, str, boolTrue, boolFalse, null, parse.Float()),
		parse.Skip(parse.Whitespace())))
}

// Value returns the document parser, for embedding JSON values inside a
// larger grammar. Results still contain the package's internal node
// types; most callers want Parse instead.
func Value() parse.Parser {
	return valueRef
}

// Parse parses input as a single JSON document. The whole input has to
// be consumed.
func Parse(input string) (any, error) {
	v, st, err := parse.Run(valueRef, input)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("expected a value at offset %d", st.Index())
	}
	if !st.Finished() {
		return nil, fmt.Errorf("unexpected input at offset %d: %q", st.Index(), st.Remaining())
	}
	return normalize(v), nil
}

// normalize converts the parser's internal node types into the plain
// values the package promises: array to []any, nullMarker to nil.
func normalize(v any) any {
	switch n := v.(type) {
	case nullMarker:
		return nil
	case array:
		out := make([]any, 0, len(n))
		for _, e := range n {
			out = append(out, normalize(e))
		}
		return out
	case map[string]any:
		for k, e := range n {
			n[k] = normalize(e)
		}
		return n
	default:
		return v
	}
}
