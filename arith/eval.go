package arith

import (
	"fmt"
	"math"
)

// Eval computes the value of an expression tree. Variables are looked
// up in env; referencing a variable that is not bound is an error.
// Division follows IEEE 754 semantics, so dividing by zero yields an
// infinity rather than an error.
func Eval(e Expr, env map[string]float64) (float64, error) {
	switch n := e.(type) {
	case float64:
		return n, nil
	case Var:
		v, ok := env[string(n)]
		if !ok {
			return 0, fmt.Errorf("undefined variable %q", string(n))
		}
		return v, nil
	case *BinaryExpr:
		left, err := Eval(n.Left, env)
		if err != nil {
			return 0, err
		}
		right, err := Eval(n.Right, env)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case "+":
			return left + right, nil
		case "-":
			return left - right, nil
		case "*":
			return left * right, nil
		case "/":
			return left / right, nil
		case "^":
			return math.Pow(left, right), nil
		default:
			return 0, fmt.Errorf("unknown operator %q", n.Op)
		}
	default:
		return 0, fmt.Errorf("unexpected node type %T", e)
	}
}
