// Package arith parses arithmetic expressions into binary expression
// trees using the parse combinators. It understands the operators
// + - * / ^ with the usual precedence, parentheses, float literals and
// variables, with whitespace allowed between tokens.
package arith

import (
	"errors"
	"fmt"

	"github.com/dhamidi/combine/parse"
)

// Expr is a node of a parsed expression: a float64 literal, a Var, or
// a *BinaryExpr.
type Expr = any

// Var is a variable reference, resolved against an environment at
// evaluation time.
type Var string

// BinaryExpr applies Op to the results of Left and Right.
type BinaryExpr struct {
	Left  Expr
	Op    string
	Right Expr
}

var (
	term  parse.Parser // assigned in init, see below
	power parse.Parser

	// Recursion is wired through these trampolines: parentheses contain
	// a full term and exponentiation is right-recursive, so the parsers
	// have to refer to themselves before they exist.
	termRef = parse.Func(func(st *parse.State) parse.Value {
		return term.Parse(st)
	})
	powerRef = parse.Func(func(st *parse.State) parse.Value {
		return power.Parse(st)
	})
)

func init() {
	number := parse.Last(parse.Seq(parse.Skip(parse.Whitespace()), parse.Float()))
	variable := parse.Map(
		parse.Last(parse.Seq(parse.Skip(parse.Whitespace()), parse.Regex(`[a-zA-Z]+[0-9]*`))),
		func(v parse.Value) (parse.Value, error) {
			return Var(v.(string)), nil
		})
	parens := parse.Map(
		parse.Seq(operator("("), termRef, operator(")")),
		func(v parse.Value) (parse.Value, error) {
			list := v.([]parse.Value)
			if len(list) != 3 {
				return nil, errors.New("missing operand")
			}
			return list[1], nil
		})

	atom := parse.First(variable, parens, number)
	power = parse.Map(parse.TrySeq(atom, parse.Seq(operator("^"), powerRef)), toBinary)
	product := leftChain(power, "*/")
	term = leftChain(product, "+-")
}

// operator skips leading whitespace and matches a single byte from set.
func operator(set string) parse.Parser {
	return parse.Last(parse.Seq(parse.Skip(parse.Whitespace()), parse.OneOf(set)))
}

// leftChain parses operand (op operand)* and folds the matches into a
// left-nested tree, so operators of equal precedence associate left to
// right: 1-2-3 becomes (1-2)-3.
func leftChain(operand parse.Parser, ops string) parse.Parser {
	chain := parse.TrySeq(operand, parse.Repeat(parse.Seq(operator(ops), operand), -1))
	return parse.Map(chain, func(v parse.Value) (parse.Value, error) {
		list := v.([]parse.Value)
		if len(list) == 0 {
			return nil, nil
		}
		if len(list)%2 == 0 {
			return nil, errors.New("missing operand")
		}
		expr := list[0]
		for i := 1; i < len(list); i += 2 {
			expr = &BinaryExpr{Left: expr, Op: list[i].(string), Right: list[i+1]}
		}
		return expr, nil
	})
}

// toBinary narrows the result of an operand (op operand)? attempt: a
// single operand passes through, an operand-operator-operand triple
// becomes a BinaryExpr.
func toBinary(v parse.Value) (parse.Value, error) {
	list, ok := v.([]parse.Value)
	if !ok {
		return v, nil
	}
	switch len(list) {
	case 0:
		return nil, nil
	case 1:
		return list[0], nil
	case 3:
		return &BinaryExpr{Left: list[0], Op: list[1].(string), Right: list[2]}, nil
	default:
		return nil, errors.New("missing operand")
	}
}

// Term returns the expression parser. It is exported for callers that
// want to embed arithmetic expressions inside a larger grammar.
func Term() parse.Parser {
	return termRef
}

// Parse parses input as a single expression. The whole input has to be
// consumed, up to trailing whitespace.
func Parse(input string) (Expr, error) {
	v, st, err := parse.Run(termRef, input)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("expected an expression at offset %d", st.Index())
	}
	parse.Whitespace().Parse(st)
	if !st.Finished() {
		return nil, fmt.Errorf("unexpected input at offset %d: %q", st.Index(), st.Remaining())
	}
	return v, nil
}
