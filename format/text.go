package format

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/dhamidi/combine/arith"
)

// TextEncoder renders an expression tree in fully parenthesized infix
// form, e.g. "(1 + (2 * 3))". The explicit parentheses make the parsed
// precedence and associativity visible.
type TextEncoder struct {
	w io.Writer
	e arith.Expr
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (enc *TextEncoder) Encode(e arith.Expr) error {
	enc.e = e
	text, err := enc.MarshalText()
	if err != nil {
		return err
	}
	_, err = enc.w.Write(text)
	return err
}

func (enc *TextEncoder) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeExpr(&buf, enc.e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeExpr(buf *bytes.Buffer, e arith.Expr) error {
	switch n := e.(type) {
	case float64:
		buf.WriteString(strconv.FormatFloat(n, 'g', -1, 64))
		return nil
	case arith.Var:
		buf.WriteString(string(n))
		return nil
	case *arith.BinaryExpr:
		buf.WriteByte('(')
		if err := writeExpr(buf, n.Left); err != nil {
			return err
		}
		buf.WriteByte(' ')
		buf.WriteString(n.Op)
		buf.WriteByte(' ')
		if err := writeExpr(buf, n.Right); err != nil {
			return err
		}
		buf.WriteByte(')')
		return nil
	default:
		return fmt.Errorf("unexpected node type %T", e)
	}
}
