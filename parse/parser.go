package parse

import "fmt"

// Value is the result of a parser attempt. A nil Value means "no match".
// Successful parsers produce strings, numbers, or []Value lists; grammars
// layered on top may produce their own node types through Map.
type Value = any

// Parser is the capability every parser implements: attempt a match at
// the state's current position. On success the state is left after the
// consumed input; on failure the state is reset to where the attempt
// started and the result is nil.
//
// Parsers hold only construction-time configuration and are safe to
// reuse across any number of parses.
type Parser interface {
	Parse(st *State) Value
}

// Func adapts a plain function to the Parser interface. It is the
// escape hatch for recursive grammars, where a production has to refer
// to itself before it is fully constructed.
type Func func(st *State) Value

func (f Func) Parse(st *State) Value {
	return f(st)
}

// TransformError reports that a Map callback failed. This is a defect in
// the grammar's semantic action, not an ordinary match failure, so it is
// kept on a separate channel: combinators never convert it into "no
// match" and it propagates out of Run as an error.
type TransformError struct {
	Err   error
	Index int
	State string
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("%v (at %s (col %d))", e.Err, e.State, e.Index)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// Run attempts p against input from the start. It returns the parse
// result (nil if nothing matched), the final state for position
// diagnostics, and a non-nil error only when a Map callback failed.
func Run(p Parser, input string) (result Value, st *State, err error) {
	st = NewState(input)
	defer func() {
		if r := recover(); r != nil {
			te, ok := r.(*TransformError)
			if !ok {
				panic(r)
			}
			result = nil
			err = te
		}
	}()
	result = p.Parse(st)
	return result, st, nil
}

// extend accumulates a sub-result into a sequence's running result list:
// list values are spliced in, everything else is appended. This keeps
// sequencing results flat instead of mirroring the combinator nesting.
func extend(results []Value, v Value) []Value {
	if list, ok := v.([]Value); ok {
		return append(results, list...)
	}
	return append(results, v)
}
