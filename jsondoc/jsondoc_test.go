package jsondoc

import (
	"reflect"
	"testing"
)

func mustParse(t *testing.T, input string) any {
	t.Helper()
	v, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return v
}

func TestParseScalars(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{"1", 1.0},
		{"-2.5", -2.5},
		{"true", true},
		{"false", false},
		{"null", nil},
		{"  42  ", 42.0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := mustParse(t, tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseArrays(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"[]", []any{}},
		{"[ ]", []any{}},
		{"[1]", []any{1.0}},
		{"[1,2,3]", []any{1.0, 2.0, 3.0}},
		{`["a", "b"]`, []any{"a", "b"}},
		{"[[1,2],[3]]", []any{[]any{1.0, 2.0}, []any{3.0}}},
		{"[true, null, 0]", []any{true, nil, 0.0}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := mustParse(t, tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseObjects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  any
	}{
		{"empty", "{}", map[string]any{}},
		{"flat", `{"a":1,"b":[2,3]}`, map[string]any{"a": 1.0, "b": []any{2.0, 3.0}}},
		{"spaced", `{ "a" : 1 , "b" : 2 }`, map[string]any{"a": 1.0, "b": 2.0}},
		{"nested", `{"outer":{"inner":true}}`, map[string]any{"outer": map[string]any{"inner": true}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustParse(t, tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseDocument(t *testing.T) {
	input := `{"id":1,"name":"Foo","price":123,"tags":["Bar","Eek"],"stock":{"warehouse":300, "retail":20}}`
	want := map[string]any{
		"id":    1.0,
		"name":  "Foo",
		"price": 123.0,
		"tags":  []any{"Bar", "Eek"},
		"stock": map[string]any{"warehouse": 300.0, "retail": 20.0},
	}
	got := mustParse(t, input)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"{",
		"[1,2",
		"[1,]",
		`{"a":}`,
		`{"a":1,}`,
		`"unterminated`,
		"[1] trailing",
	}
	for _, input := range inputs {
		if got, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) = %#v, want error", input, got)
		}
	}
}
