// Package lexer implements the EScript tokenizer.
//
// The scanner is driven by a first-character dispatch table built once at
// package init: every byte that can begin a token maps to an ordered list of
// candidate matchers (keywords before operators, longer operator forms before
// shorter ones). Identifier and number scanning act as the shared fallback so
// any word that is not a reserved keyword still tokenizes.
//
// Whitespace and comments are skipped between tokens and are never
// tokenized; a line feed increments the line counter and resets the column.
// Positions are 0-indexed and token spans are half-open (the end points one
// past the last consumed character).
package lexer

import (
	"fmt"
	"strings"
)

// LexError is returned when no matcher accepts the remaining input. It
// carries the unmatched prefix for diagnostics.
type LexError struct {
	Pos       Position
	Remaining string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("no token matches input at %s: %q", e.Pos, e.Remaining)
}

// remainingCap bounds the unmatched prefix carried by a LexError.
const remainingCap = 32

// matcherKind selects the matching strategy of a dispatch-table entry.
type matcherKind int

const (
	matchExact     matcherKind = iota // exact lexeme
	matchKeyword                      // exact word plus identifier-boundary check
	matchOperators                    // greedy longest-match within an operator family
	matchString                       // quote-delimited single-line string
	matchTemplate                     // backtick-delimited template string
	matchIdent                        // [A-Za-z_$][A-Za-z0-9_$]*
	matchNumber                       // [0-9]+
)

// matcher is one candidate in a first-character bucket.
type matcher struct {
	kind matcherKind
	text string      // lexeme for matchExact / matchKeyword
	tt   TokenType   // produced type for matchExact / matchKeyword
	ops  []TokenType // operator family for matchOperators, longest lexeme first
}

// dispatch maps a first byte to its candidate matchers. fallback is tried
// after the bucket (or alone when the byte has no bucket).
var (
	dispatch = map[byte][]matcher{}
	fallback = []matcher{{kind: matchIdent}, {kind: matchNumber}}
)

// operatorFamilies lists, per introducing byte, every operator that starts
// with that byte, longest spelling first. Greedy matching over this order is
// what makes `>>>=` win over `>>>`, `>>=`, `>>`, `>=` and `>`.
var operatorFamilies = map[byte][]TokenType{
	'+': {INC, PLUS_ASSIGN, PLUS},
	'-': {DEC, MINUS_ASSIGN, MINUS},
	'*': {POWER_ASSIGN, POWER, TIMES_ASSIGN, ASTERISK},
	'/': {DIVIDE_ASSIGN, SLASH},
	'%': {PERCENT_ASSIGN, PERCENT},
	'<': {SHL_ASSIGN, SHL, LESS_EQ, LESS},
	'>': {USHR_ASSIGN, USHR, SHR_ASSIGN, SHR, GREATER_EQ, GREATER},
	'=': {EQ_EQ_EQ, ARROW, EQ_EQ, ASSIGN},
	'!': {NOT_EQ_EQ, NOT_EQ, BANG},
	'|': {LOGICAL_OR_ASSIGN, OR_ASSIGN, PIPE_PIPE, PIPE},
	'^': {XOR_ASSIGN, CARET},
	'&': {LOGICAL_AND_ASSIGN, AND_ASSIGN, AMP_AMP, AMP},
	'?': {COALESCE_ASSIGN, QUESTION_QUESTION, QUESTION},
}

func init() {
	// Keywords go first in their buckets.
	for word, tt := range keywords {
		b := word[0]
		dispatch[b] = append(dispatch[b], matcher{kind: matchKeyword, text: word, tt: tt})
	}
	for b, ops := range operatorFamilies {
		dispatch[b] = append(dispatch[b], matcher{kind: matchOperators, ops: ops})
	}
	for _, tt := range []TokenType{LBRACE, RBRACE, LPAREN, RPAREN, LBRACK, RBRACK, SEMICOLON, COLON, COMMA, TILDE} {
		name := tt.String()
		dispatch[name[0]] = append(dispatch[name[0]], matcher{kind: matchExact, text: name, tt: tt})
	}
	// `...` must be attempted before `.`.
	dispatch['.'] = append(dispatch['.'],
		matcher{kind: matchExact, text: "...", tt: ELLIPSIS},
		matcher{kind: matchExact, text: ".", tt: DOT},
	)
	dispatch['\''] = []matcher{{kind: matchString}}
	dispatch['"'] = []matcher{{kind: matchString}}
	dispatch['`'] = []matcher{{kind: matchTemplate}}
}

// Lexer scans an EScript source string into a token vector. State is just
// the cursor: byte offset plus the line/column counters.
type Lexer struct {
	src  string
	pos  int
	line int
	col  int
}

// New creates a Lexer for the given source string.
func New(source string) *Lexer {
	return &Lexer{src: source}
}

// Tokenize scans the whole input and returns the token vector, always
// terminated by a single EOF token. The first unmatched input aborts the
// scan with a *LexError; there is no recovery.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		if err := l.skipTrivia(); err != nil {
			return nil, err
		}
		if l.pos >= len(l.src) {
			p := l.position()
			tokens = append(tokens, Token{Type: EOF, Span: &Span{Start: p, End: p}})
			return tokens, nil
		}
		start := l.position()
		tok, length := l.matchAt()
		if length == 0 {
			return nil, &LexError{Pos: start, Remaining: clip(l.src[l.pos:])}
		}
		l.advance(length)
		tok.Span = &Span{Start: start, End: l.position()}
		tokens = append(tokens, tok)
	}
}

func (l *Lexer) position() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

// advance consumes n bytes, updating the line/column counters.
func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.src[l.pos] == '\n' {
			l.line++
			l.col = 0
		} else {
			l.col++
		}
		l.pos++
	}
}

// skipTrivia consumes whitespace and comments. An unterminated block comment
// is a lex error.
func (l *Lexer) skipTrivia() error {
	for l.pos < len(l.src) {
		switch c := l.src[l.pos]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.advance(1)
		case c == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '/':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.advance(1)
			}
		case c == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '*':
			start := l.position()
			end := strings.Index(l.src[l.pos+2:], "*/")
			if end < 0 {
				return &LexError{Pos: start, Remaining: clip(l.src[l.pos:])}
			}
			l.advance(end + 4)
		default:
			return nil
		}
	}
	return nil
}

// matchAt tries the current byte's bucket, then the fallback list, and
// returns the first successful token plus its consumed length. A length of 0
// means nothing matched.
func (l *Lexer) matchAt() (Token, int) {
	rest := l.src[l.pos:]
	for _, m := range dispatch[rest[0]] {
		if tok, n := m.match(rest); n > 0 {
			return tok, n
		}
	}
	for _, m := range fallback {
		if tok, n := m.match(rest); n > 0 {
			return tok, n
		}
	}
	return Token{}, 0
}

// match attempts the matcher against the remaining input and returns the
// token and consumed length on success.
func (m matcher) match(rest string) (Token, int) {
	switch m.kind {
	case matchExact:
		if strings.HasPrefix(rest, m.text) {
			return Token{Type: m.tt, Value: m.text}, len(m.text)
		}
	case matchKeyword:
		// A keyword must not run into an identifier tail: `instanceofx`
		// is an identifier, not `instanceof` followed by `x`.
		if strings.HasPrefix(rest, m.text) &&
			(len(rest) == len(m.text) || !isIdentPart(rest[len(m.text)])) {
			return Token{Type: m.tt, Value: m.text}, len(m.text)
		}
	case matchOperators:
		for _, tt := range m.ops {
			lexeme := tt.String()
			if strings.HasPrefix(rest, lexeme) {
				return Token{Type: tt, Value: lexeme}, len(lexeme)
			}
		}
	case matchString:
		return matchStringLiteral(rest, rest[0], false)
	case matchTemplate:
		return matchStringLiteral(rest, '`', true)
	case matchIdent:
		if !isIdentStart(rest[0]) {
			break
		}
		n := 1
		for n < len(rest) && isIdentPart(rest[n]) {
			n++
		}
		return Token{Type: IDENT, Value: rest[:n]}, n
	case matchNumber:
		n := 0
		for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
			n++
		}
		if n > 0 {
			return Token{Type: NUMBER, Value: rest[:n]}, n
		}
	}
	return Token{}, 0
}

// matchStringLiteral walks to the unescaped closing quote. Strings reject
// raw line feeds; templates allow them. The produced value is the raw
// contents between the delimiters, escapes untouched.
func matchStringLiteral(rest string, quote byte, multiline bool) (Token, int) {
	for i := 1; i < len(rest); i++ {
		switch rest[i] {
		case '\\':
			i++
		case '\n':
			if !multiline {
				return Token{}, 0
			}
		case quote:
			tt := STRING
			if multiline {
				tt = TEMPLATE
			}
			return Token{Type: tt, Value: rest[1:i]}, i + 1
		}
	}
	return Token{}, 0 // ran off the end of input
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c == '$'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}

func clip(s string) string {
	if len(s) > remainingCap {
		return s[:remainingCap]
	}
	return s
}
