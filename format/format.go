package format

import (
	"encoding"

	"github.com/dhamidi/combine/arith"
)

// Encoder renders a parsed arithmetic expression tree to a writer.
type Encoder interface {
	encoding.TextMarshaler
	Encode(e arith.Expr) error
}
