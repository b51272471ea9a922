package lexer

import "testing"

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		input string
		value string
	}{
		{`'hello'`, "hello"},
		{`"world"`, "world"},
		{`''`, ""},
		{`'it\'s'`, `it\'s`},
		{`"a\"b"`, `a\"b`},
		{`'tab\tchar'`, `tab\tchar`},
		{`'line\nfeed'`, `line\nfeed`}, // escaped, not a raw line feed
		{`'двойной'`, "двойной"},       // multi-byte contents pass through raw
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := tokenize(t, tt.input)
			if tokens[0].Type != STRING {
				t.Fatalf("got %s", tokens[0].Type)
			}
			if tokens[0].Value != tt.value {
				t.Errorf("value = %q, want %q", tokens[0].Value, tt.value)
			}
		})
	}
}

func TestTemplateLiterals(t *testing.T) {
	tests := []struct {
		input string
		value string
	}{
		{"`hello`", "hello"},
		{"``", ""},
		{"`with 'quotes' and \"quotes\"`", `with 'quotes' and "quotes"`},
		{"`multi\nline`", "multi\nline"},
		{"`esc\\`aped`", "esc\\`aped"},
	}
	for _, tt := range tests {
		tokens := tokenize(t, tt.input)
		if tokens[0].Type != TEMPLATE {
			t.Fatalf("%q: got %s", tt.input, tokens[0].Type)
		}
		if tokens[0].Value != tt.value {
			t.Errorf("%q: value = %q, want %q", tt.input, tokens[0].Value, tt.value)
		}
	}
}

func TestStringQuotesDoNotMix(t *testing.T) {
	tokens := tokenize(t, `'a"b'`)
	if tokens[0].Value != `a"b` {
		t.Errorf("value = %q", tokens[0].Value)
	}
	tokens = tokenize(t, `"a'b"`)
	if tokens[0].Value != "a'b" {
		t.Errorf("value = %q", tokens[0].Value)
	}
}
