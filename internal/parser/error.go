package parser

import (
	"fmt"

	"github.com/cwbudde/go-escript/internal/errors"
	"github.com/cwbudde/go-escript/internal/lexer"
	"github.com/cwbudde/go-escript/pkg/ast"
)

// SyntaxError is a fatal parse error. Pos is nil when the offending token
// carried no location.
type SyntaxError struct {
	Msg string
	Pos *lexer.Position
}

func (e *SyntaxError) Error() string {
	return e.Msg
}

// bail carries a SyntaxError up through the recursive descent; the entry
// points recover it into an ordinary error return.
type bail struct {
	err error
}

func (p *Parser) recoverBail(err *error) {
	if r := recover(); r != nil {
		b, ok := r.(bail)
		if !ok {
			panic(r)
		}
		*err = b.err
	}
}

// raise aborts parsing with a SyntaxError. When the position is known, a
// two-line source pointer diagnostic is written to the log first.
func (p *Parser) raise(pos *lexer.Position, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if pos != nil && p.logw != nil {
		if ptr := errors.Pointer(p.source, *pos); ptr != "" {
			fmt.Fprintln(p.logw, ptr)
		}
	}
	p.logf("syntax error: %s", msg)
	panic(bail{&SyntaxError{Msg: msg, Pos: pos}})
}

// raiseToken raises at the token's start position.
func (p *Parser) raiseToken(tok lexer.Token, format string, args ...any) {
	if tok.Span == nil {
		p.raise(nil, format, args...)
	}
	pos := tok.Pos()
	p.raise(&pos, format, args...)
}

// raiseNode raises at a node's start position, when it has one.
func (p *Parser) raiseNode(n ast.Node, format string, args ...any) {
	if loc := n.Meta().Loc; loc != nil {
		pos := loc.Start
		p.raise(&pos, format, args...)
	}
	p.raise(nil, format, args...)
}
