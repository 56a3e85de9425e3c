package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/combine/arith"
)

// JSONEncoder renders an expression tree as JSON, with one object per
// operator application.
type JSONEncoder struct {
	w io.Writer
	e arith.Expr
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (enc *JSONEncoder) Encode(e arith.Expr) error {
	enc.e = e
	text, err := enc.MarshalText()
	if err != nil {
		return err
	}
	_, err = enc.w.Write(text)
	return err
}

func (enc *JSONEncoder) MarshalText() ([]byte, error) {
	data, err := buildExprData(enc.e)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

type jsonBinary struct {
	Op    string `json:"op"`
	Left  any    `json:"left"`
	Right any    `json:"right"`
}

type jsonVariable struct {
	Var string `json:"var"`
}

func buildExprData(e arith.Expr) (any, error) {
	switch n := e.(type) {
	case float64:
		return n, nil
	case arith.Var:
		return jsonVariable{Var: string(n)}, nil
	case *arith.BinaryExpr:
		left, err := buildExprData(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := buildExprData(n.Right)
		if err != nil {
			return nil, err
		}
		return jsonBinary{Op: n.Op, Left: left, Right: right}, nil
	default:
		return nil, fmt.Errorf("unexpected node type %T", e)
	}
}
