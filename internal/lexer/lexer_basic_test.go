package lexer

import (
	"testing"
)

// tokenize is a test helper that fails the test on lex errors.
func tokenize(t *testing.T, input string) []Token {
	t.Helper()
	tokens, err := New(input).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", input, err)
	}
	return tokens
}

func TestBasicTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenType
	}{
		{"var x = 1;", []TokenType{VAR, IDENT, ASSIGN, NUMBER, SEMICOLON, EOF}},
		{"let y", []TokenType{LET, IDENT, EOF}},
		{"const z = null", []TokenType{CONST, IDENT, ASSIGN, NULL, EOF}},
		{"x + y * z", []TokenType{IDENT, PLUS, IDENT, ASTERISK, IDENT, EOF}},
		{"f(a, b)", []TokenType{IDENT, LPAREN, IDENT, COMMA, IDENT, RPAREN, EOF}},
		{"[1, 2]", []TokenType{LBRACK, NUMBER, COMMA, NUMBER, RBRACK, EOF}},
		{"{a: 1}", []TokenType{LBRACE, IDENT, COLON, NUMBER, RBRACE, EOF}},
		{"a.b.c", []TokenType{IDENT, DOT, IDENT, DOT, IDENT, EOF}},
		{"...rest", []TokenType{ELLIPSIS, IDENT, EOF}},
		{"x => x", []TokenType{IDENT, ARROW, IDENT, EOF}},
		{"a ? b : c", []TokenType{IDENT, QUESTION, IDENT, COLON, IDENT, EOF}},
		{"", []TokenType{EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := tokenize(t, tt.input)
			if len(tokens) != len(tt.expected) {
				t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(tt.expected), tokens)
			}
			for i, want := range tt.expected {
				if tokens[i].Type != want {
					t.Errorf("token %d = %s, want %s", i, tokens[i].Type, want)
				}
			}
		})
	}
}

func TestKeywords(t *testing.T) {
	words := map[string]TokenType{
		"async": ASYNC, "await": AWAIT, "break": BREAK, "case": CASE,
		"catch": CATCH, "const": CONST, "continue": CONTINUE, "debugger": DEBUGGER,
		"default": DEFAULT, "delete": DELETE, "do": DO, "else": ELSE,
		"false": FALSE, "finally": FINALLY, "for": FOR, "function": FUNCTION,
		"if": IF, "in": IN, "instanceof": INSTANCEOF, "let": LET,
		"new": NEW, "null": NULL, "return": RETURN, "super": SUPER,
		"switch": SWITCH, "this": THIS, "throw": THROW, "true": TRUE,
		"try": TRY, "typeof": TYPEOF, "var": VAR, "void": VOID,
		"while": WHILE, "with": WITH, "yield": YIELD,
	}
	for word, want := range words {
		tokens := tokenize(t, word)
		if tokens[0].Type != want {
			t.Errorf("%q = %s, want %s", word, tokens[0].Type, want)
		}
		if tokens[0].Value != word {
			t.Errorf("%q value = %q", word, tokens[0].Value)
		}
	}
}

// A keyword immediately followed by an identifier character is an
// identifier, not a keyword.
func TestKeywordBoundary(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
		value string
	}{
		{"instanceofx", IDENT, "instanceofx"},
		{"varx", IDENT, "varx"},
		{"lets", IDENT, "lets"},
		{"newish", IDENT, "newish"},
		{"do_", IDENT, "do_"},
		{"if0", IDENT, "if0"},
		{"in$", IDENT, "in$"},
		{"instanceof", INSTANCEOF, "instanceof"},
	}
	for _, tt := range tests {
		tokens := tokenize(t, tt.input)
		if tokens[0].Type != tt.want || tokens[0].Value != tt.value {
			t.Errorf("%q = %s %q, want %s %q", tt.input, tokens[0].Type, tokens[0].Value, tt.want, tt.value)
		}
		if len(tokens) != 2 {
			t.Errorf("%q produced %d tokens, want token+eof", tt.input, len(tokens))
		}
	}
}

func TestIdentifiers(t *testing.T) {
	for _, input := range []string{"x", "myVar", "_tmp", "$scope", "a1", "__proto", "$$", "_0"} {
		tokens := tokenize(t, input)
		if tokens[0].Type != IDENT || tokens[0].Value != input {
			t.Errorf("%q = %s %q", input, tokens[0].Type, tokens[0].Value)
		}
	}
}

func TestNumbers(t *testing.T) {
	for _, input := range []string{"0", "7", "42", "1337", "0001"} {
		tokens := tokenize(t, input)
		if tokens[0].Type != NUMBER || tokens[0].Value != input {
			t.Errorf("%q = %s %q", input, tokens[0].Type, tokens[0].Value)
		}
	}
}

func TestEOFIsAlwaysLast(t *testing.T) {
	for _, input := range []string{"", "x", "var x = 1;", "// only a comment", "  \n\t "} {
		tokens := tokenize(t, input)
		if len(tokens) == 0 || tokens[len(tokens)-1].Type != EOF {
			t.Errorf("%q: last token is not eof: %v", input, tokens)
		}
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	tests := []struct {
		input string
		want  []TokenType
	}{
		{"a // comment\nb", []TokenType{IDENT, IDENT, EOF}},
		{"a /* inline */ b", []TokenType{IDENT, IDENT, EOF}},
		{"/* multi\nline */x", []TokenType{IDENT, EOF}},
		{"a / b", []TokenType{IDENT, SLASH, IDENT, EOF}},
	}
	for _, tt := range tests {
		tokens := tokenize(t, tt.input)
		if len(tokens) != len(tt.want) {
			t.Fatalf("%q: got %d tokens %v", tt.input, len(tokens), tokens)
		}
		for i, want := range tt.want {
			if tokens[i].Type != want {
				t.Errorf("%q token %d = %s, want %s", tt.input, i, tokens[i].Type, want)
			}
		}
	}
}
