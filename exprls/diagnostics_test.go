package exprls

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantCount int
	}{
		{"valid expression", "1 + 2 * x", 0},
		{"empty document", "  \n ", 0},
		{"trailing garbage", "1 + 2 )", 1},
		{"no expression", "!?", 1},
		{"unclosed paren", "(1 + 2", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Check(tt.text)
			if len(diags) != tt.wantCount {
				t.Errorf("got %d diagnostics %v, want %d", len(diags), diags, tt.wantCount)
			}
		})
	}
}

func TestCheckDiagnosticPosition(t *testing.T) {
	diags := Check("1 + 2 )")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	d := diags[0]
	if d.Range.Start.Line != 0 || d.Range.Start.Character != 6 {
		t.Errorf("diagnostic at %d:%d, want 0:6", d.Range.Start.Line, d.Range.Start.Character)
	}
	if !strings.Contains(d.Message, "offset 6") {
		t.Errorf("message %q does not mention the offset", d.Message)
	}
}

func TestEvalConstant(t *testing.T) {
	tests := []struct {
		text   string
		want   string
		wantOK bool
	}{
		{"1 + 2 * 3", "= 7", true},
		{"2^10", "= 1024", true},
		{"x + 1", "", false},
		{"not an expr!", "", false},
	}
	for _, tt := range tests {
		got, ok := EvalConstant(tt.text)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("EvalConstant(%q) = %q, %v; want %q, %v", tt.text, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestOffsetToPosition(t *testing.T) {
	text := "1 + 2\n* 3\n"
	tests := []struct {
		offset    int
		line, chr protocol.UInteger
	}{
		{0, 0, 0},
		{4, 0, 4},
		{6, 1, 0},
		{8, 1, 2},
		{99, 2, 0},
	}
	for _, tt := range tests {
		pos := offsetToPosition(text, tt.offset)
		if pos.Line != tt.line || pos.Character != tt.chr {
			t.Errorf("offset %d: got %d:%d, want %d:%d", tt.offset, pos.Line, pos.Character, tt.line, tt.chr)
		}
	}
}
