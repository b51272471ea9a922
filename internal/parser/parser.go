// Package parser implements the EScript parser.
//
// Key patterns:
//   - Token vector: the parser owns the full []lexer.Token and a cursor
//     index; there is no streaming lexer state to rewind
//   - Location tracking: startNode/finishNode maintain a stack of node start
//     positions; finishNode attaches {start, end of previous token}
//   - Statement termination: expectBreak accepts `;`, `}`, end of input, or
//     a line break between the previous and the current token
//   - Errors: the first error aborts parsing; routines raise through a
//     panic that the entry points recover into a *SyntaxError
package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/go-escript/internal/lexer"
	"github.com/cwbudde/go-escript/pkg/ast"
)

// Parser consumes a token vector and produces a single AST root.
type Parser struct {
	tokens   []lexer.Token
	source   string
	pos      int
	starts   []lexer.Position
	warnings []string
	logw     io.Writer // nil disables progress and diagnostic output
	omitLoc  bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogOutput routes human-readable progress lines and source-pointer
// diagnostics to w. By default nothing is emitted.
func WithLogOutput(w io.Writer) Option {
	return func(p *Parser) {
		p.logw = w
	}
}

// WithoutLocations disables location records on produced nodes; the
// node-start stack is not maintained.
func WithoutLocations() Option {
	return func(p *Parser) {
		p.omitLoc = true
	}
}

// New creates a Parser over a token vector. The source string the tokens
// came from is retained for line-break detection and diagnostics.
func New(tokens []lexer.Token, source string, opts ...Option) *Parser {
	p := &Parser{tokens: tokens, source: source}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Warnings returns the non-fatal warnings collected during parsing.
func (p *Parser) Warnings() []string {
	return p.warnings
}

// ParseProgram parses the whole token stream as a program.
func (p *Parser) ParseProgram() (prog *ast.Program, err error) {
	defer p.recoverBail(&err)
	p.logf("parsing program of %d tokens", len(p.tokens))
	p.startNode()
	program := &ast.Program{}
	for !p.match(lexer.EOF) {
		program.Body = append(program.Body, p.parseStatement())
	}
	p.next() // eof
	p.finishNode(program)
	p.checkStarts()
	return program, nil
}

// ParseExpression parses the token stream as a single expression spanning
// the whole input.
func (p *Parser) ParseExpression() (expr ast.Expression, err error) {
	defer p.recoverBail(&err)
	e := p.parseExpression(allowAll)
	p.expect(lexer.EOF)
	p.checkStarts()
	return e, nil
}

// checkStarts warns about unbalanced startNode/finishNode pairs.
func (p *Parser) checkStarts() {
	if n := len(p.starts); n > 0 {
		p.warnings = append(p.warnings, fmt.Sprintf("node-start stack has %d leftover entries", n))
	}
}

// ---- token-level primitives ----

// peek returns the token at cursor+offset without consuming it.
func (p *Parser) peek(offset int) lexer.Token {
	i := p.pos + offset
	if i < 0 || i >= len(p.tokens) {
		p.raise(nil, "Unexpected EOF")
	}
	return p.tokens[i]
}

func (p *Parser) peekType(offset int) lexer.TokenType {
	return p.peek(offset).Type
}

// next consumes and returns the current token.
func (p *Parser) next() lexer.Token {
	tok := p.peek(0)
	p.pos++
	return tok
}

// match reports whether the current token has the given type.
func (p *Parser) match(tt lexer.TokenType) bool {
	return p.peekType(0) == tt
}

// matchAt reports whether the token at the given lookahead has the type.
func (p *Parser) matchAt(tt lexer.TokenType, offset int) bool {
	return p.peekType(offset) == tt
}

// expect consumes the next token, failing unless its type is one of the
// expected kinds.
func (p *Parser) expect(tts ...lexer.TokenType) lexer.Token {
	tok := p.peek(0)
	for _, tt := range tts {
		if tok.Type == tt {
			return p.next()
		}
	}
	names := make([]string, len(tts))
	for i, tt := range tts {
		names[i] = tt.String()
	}
	p.raiseToken(tok, "Unexpected token %s, expected %s", tokenDesc(tok), strings.Join(names, " or "))
	return lexer.Token{}
}

// tokenDesc names a token for error messages.
func tokenDesc(tok lexer.Token) string {
	if tok.Value == "" {
		return tok.Type.String()
	}
	return tok.Value
}

// ---- location tracking ----

// startNode pushes the current token's start position for a later
// finishNode. No-op when locations are omitted.
func (p *Parser) startNode() {
	if p.omitLoc {
		return
	}
	p.starts = append(p.starts, p.peek(0).Pos())
}

// startNodeFrom pushes an existing node's start position, used when an
// already-built expression becomes the first child of a larger node.
func (p *Parser) startNodeFrom(n ast.Node) {
	if p.omitLoc {
		return
	}
	if loc := n.Meta().Loc; loc != nil {
		p.starts = append(p.starts, loc.Start)
		return
	}
	p.starts = append(p.starts, p.peek(0).Pos())
}

// finishNode pops the start stack and attaches the span ending at the
// previous token's end.
func (p *Parser) finishNode(n ast.Node) {
	if p.omitLoc {
		return
	}
	start := p.starts[len(p.starts)-1]
	p.starts = p.starts[:len(p.starts)-1]
	end := start
	if p.pos > 0 {
		end = p.tokens[p.pos-1].End()
	}
	n.Meta().Loc = &ast.SourceLocation{Start: start, End: end}
}

// ---- break detection ----

// hasBreakBefore reports whether a line terminator occurs between the
// previous token's end and the current token's start.
func (p *Parser) hasBreakBefore() bool {
	if p.pos == 0 {
		return false
	}
	prev := p.tokens[p.pos-1].End().Offset
	cur := p.peek(0).Pos().Offset
	return strings.ContainsAny(p.source[prev:cur], "\n\r")
}

// atBreak reports whether the current position terminates a statement
// without consuming anything: `;`, `}`, end of input, or a preceding line
// break.
func (p *Parser) atBreak() bool {
	return p.match(lexer.SEMICOLON) || p.match(lexer.RBRACE) || p.match(lexer.EOF) || p.hasBreakBefore()
}

// expectBreak terminates a statement: a semicolon is consumed when present;
// `}`, end of input, and an observed line break terminate without
// consuming. Anything else is a syntax error.
func (p *Parser) expectBreak() {
	if p.match(lexer.SEMICOLON) {
		p.next()
		return
	}
	if p.match(lexer.RBRACE) || p.match(lexer.EOF) || p.hasBreakBefore() {
		return
	}
	tok := p.peek(0)
	p.raiseToken(tok, "Unexpected token %s", tokenDesc(tok))
}

// ---- logging ----

func (p *Parser) logf(format string, args ...any) {
	if p.logw == nil {
		return
	}
	fmt.Fprintf(p.logw, format+"\n", args...)
}
