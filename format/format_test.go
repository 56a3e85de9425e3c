package format

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/dhamidi/combine/arith"
)

func parseExpr(t *testing.T, input string) arith.Expr {
	t.Helper()
	e, err := arith.Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return e
}

func TestTextEncoder(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"5", "5"},
		{"x", "x"},
		{"1+2*3", "(1 + (2 * 3))"},
		{"(1+2)*3", "((1 + 2) * 3)"},
		{"1-2-3", "((1 - 2) - 3)"},
		{"a^b^c", "(a ^ (b ^ c))"},
		{"0.5*x", "(0.5 * x)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewTextEncoder(&buf).Encode(parseExpr(t, tt.input)); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextEncoderRejectsForeignNodes(t *testing.T) {
	if err := NewTextEncoder(&bytes.Buffer{}).Encode(struct{}{}); err == nil {
		t.Error("want error for unknown node type")
	}
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(parseExpr(t, "1+x*3")); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var got map[string]any
	if err := json.NewDecoder(strings.NewReader(buf.String())).Decode(&got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	want := map[string]any{
		"op":   "+",
		"left": 1.0,
		"right": map[string]any{
			"op":    "*",
			"left":  map[string]any{"var": "x"},
			"right": 3.0,
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}
