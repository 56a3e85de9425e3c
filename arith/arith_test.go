package arith

import (
	"reflect"
	"testing"
)

func bin(left Expr, op string, right Expr) *BinaryExpr {
	return &BinaryExpr{Left: left, Op: op, Right: right}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Expr
	}{
		{"5", 5.0},
		{"-5", -5.0},
		{"3.25", 3.25},
		{"x", Var("x")},
		{"x2", Var("x2")},
		{"1+2*3", bin(1.0, "+", bin(2.0, "*", 3.0))},
		{"1*2+3", bin(bin(1.0, "*", 2.0), "+", 3.0)},
		{"(1+2)*3", bin(bin(1.0, "+", 2.0), "*", 3.0)},
		{"1-2-3", bin(bin(1.0, "-", 2.0), "-", 3.0)},
		{"8/4/2", bin(bin(8.0, "/", 4.0), "/", 2.0)},
		{"2^3^2", bin(2.0, "^", bin(3.0, "^", 2.0))},
		{"2*3^2", bin(2.0, "*", bin(3.0, "^", 2.0))},
		{"a + b * c", bin(Var("a"), "+", bin(Var("b"), "*", Var("c")))},
		{" ( 1 + x ) * 2 ", bin(bin(1.0, "+", Var("x")), "*", 2.0)},
		{"((7))", 7.0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"!?",
		"(1+2",
		"1+2)",
		"1 2",
	}
	for _, input := range inputs {
		if got, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) = %#v, want error", input, got)
		}
	}
}

// A trailing operator leaves the operator unconsumed rather than
// producing a dangling half expression.
func TestParseTrailingOperator(t *testing.T) {
	if _, err := Parse("1+"); err == nil {
		t.Error("Parse(\"1+\") succeeded, want error for unconsumed input")
	}
}

func TestEval(t *testing.T) {
	env := map[string]float64{"x": 4, "y": 0.5}
	tests := []struct {
		input string
		want  float64
	}{
		{"1+2*3", 7},
		{"(1+2)*3", 9},
		{"10-2-3", 5},
		{"2^3^2", 512},
		{"2^10", 1024},
		{"x*y", 2},
		{"-2*3", -6},
		{"16/4/2", 2},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			got, err := Eval(e, env)
			if err != nil {
				t.Fatalf("Eval(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvalUndefinedVariable(t *testing.T) {
	e, err := Parse("x+1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Eval(e, nil); err == nil {
		t.Error("want error for undefined variable")
	}
}
