// Package escript is the public parsing surface of go-escript.
//
// Two entry points are exposed: Parse for whole programs and
// ParseExpression for a single expression spanning the input. Both run the
// lexer and the parser to completion; the first error aborts parsing and no
// partial tree is returned.
package escript

import (
	"io"

	"github.com/cwbudde/go-escript/internal/lexer"
	"github.com/cwbudde/go-escript/internal/parser"
	"github.com/cwbudde/go-escript/pkg/ast"
)

// Option configures a parse run.
type Option func(*config)

type config struct {
	logw    io.Writer
	omitLoc bool
}

// WithLogOutput routes the parser's progress lines and source-pointer
// diagnostics to w. Nothing is emitted by default.
func WithLogOutput(w io.Writer) Option {
	return func(c *config) {
		c.logw = w
	}
}

// WithoutLocations disables source location records on produced nodes.
func WithoutLocations() Option {
	return func(c *config) {
		c.omitLoc = true
	}
}

// Parse parses source as a program. Lex failures surface as *lexer.LexError
// and parse failures as *parser.SyntaxError.
func Parse(source string, opts ...Option) (*ast.Program, error) {
	p, err := newParser(source, opts)
	if err != nil {
		return nil, err
	}
	return p.ParseProgram()
}

// ParseExpression parses source as a single expression.
func ParseExpression(source string, opts ...Option) (ast.Expression, error) {
	p, err := newParser(source, opts)
	if err != nil {
		return nil, err
	}
	return p.ParseExpression()
}

func newParser(source string, opts []Option) (*parser.Parser, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	tokens, err := lexer.New(source).Tokenize()
	if err != nil {
		return nil, err
	}
	var popts []parser.Option
	if c.logw != nil {
		popts = append(popts, parser.WithLogOutput(c.logw))
	}
	if c.omitLoc {
		popts = append(popts, parser.WithoutLocations())
	}
	return parser.New(tokens, source, popts...), nil
}
