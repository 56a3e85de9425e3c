package exprls

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/combine/arith"
	"github.com/dhamidi/combine/parse"
)

// Check parses text as an arithmetic expression and returns the
// diagnostics to publish: empty when the document parses, otherwise a
// single error at the position the parse stopped.
func Check(text string) []protocol.Diagnostic {
	if strings.TrimSpace(text) == "" {
		return []protocol.Diagnostic{}
	}

	result, st, err := parse.Run(arith.Term(), text)
	if err != nil {
		return []protocol.Diagnostic{errorAt(text, offsetOf(err), err.Error())}
	}
	if result == nil {
		return []protocol.Diagnostic{errorAt(text, st.Index(), "expected an expression")}
	}
	parse.Whitespace().Parse(st)
	if !st.Finished() {
		return []protocol.Diagnostic{errorAt(text, st.Index(), "unexpected input after expression")}
	}
	return []protocol.Diagnostic{}
}

// EvalConstant evaluates text if it is a complete, variable-free
// expression and renders the value for hover display.
func EvalConstant(text string) (string, bool) {
	e, err := arith.Parse(text)
	if err != nil {
		return "", false
	}
	value, err := arith.Eval(e, nil)
	if err != nil {
		return "", false
	}
	return "= " + strconv.FormatFloat(value, 'g', -1, 64), true
}

func offsetOf(err error) int {
	var te *parse.TransformError
	if errors.As(err, &te) {
		return te.Index
	}
	return 0
}

func errorAt(text string, offset int, message string) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName
	position := offsetToPosition(text, offset)
	return protocol.Diagnostic{
		Range:    protocol.Range{Start: position, End: position},
		Severity: &severity,
		Source:   &source,
		Message:  fmt.Sprintf("%s (offset %d)", message, offset),
	}
}

// offsetToPosition converts a byte offset into the 0-based line and
// character position the protocol expects.
func offsetToPosition(text string, offset int) protocol.Position {
	if offset > len(text) {
		offset = len(text)
	}
	line, character := 0, 0
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			character = 0
			continue
		}
		character++
	}
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(character),
	}
}
