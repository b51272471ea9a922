package parser

import (
	"github.com/cwbudde/go-escript/internal/lexer"
	"github.com/cwbudde/go-escript/pkg/ast"
)

// parseObjectExpression parses `{ ... }` in expression position. Whether
// the members end up as a literal or a pattern is decided later by the
// rewriter; assignment-properties (`{a = 1}`) are built here with an
// AssignmentPattern value. The rewriter keeps them as they are, and a literal
// that is never rewritten keeps them too: neither side rejects them.
func (p *Parser) parseObjectExpression() *ast.ObjectExpression {
	p.startNode()
	p.expect(lexer.LBRACE)
	obj := &ast.ObjectExpression{}
	for !p.match(lexer.RBRACE) {
		member := p.parseObjectMember()
		obj.Properties = append(obj.Properties, member)
		if !p.match(lexer.COMMA) {
			break
		}
		p.next()
		if p.match(lexer.RBRACE) {
			member.Meta().TrailingComma = true
		}
	}
	p.expect(lexer.RBRACE)
	p.finishNode(obj)
	return obj
}

func (p *Parser) parseObjectMember() ast.ObjectMember {
	if p.match(lexer.ELLIPSIS) {
		p.startNode()
		p.next()
		spread := &ast.SpreadElement{Argument: p.parseExpression(noSequence)}
		p.finishNode(spread)
		return spread
	}

	p.startNode()
	computed := false
	var key ast.Expression
	if p.match(lexer.LBRACK) {
		p.next()
		computed = true
		key = p.parseExpression(noSequence)
		p.expect(lexer.RBRACK)
	} else {
		id := p.parseKeyIdentifier()
		// `get`/`set` followed by another key is an accessor; the actual
		// key comes next and a parameter list is required.
		if (id.Name == "get" || id.Name == "set") && p.isKeyToken(p.peek(0)) {
			return p.parseAccessor(id.Name)
		}
		key = id

		// Identifier directly followed by `,` or `}` is shorthand. The
		// value is a fresh node; key and value never share.
		if p.match(lexer.COMMA) || p.match(lexer.RBRACE) {
			member := &ast.ObjectProperty{Key: key, Value: cloneIdentifier(id), Shorthand: true}
			p.finishNode(member)
			return member
		}
	}

	switch p.peekType(0) {
	case lexer.COLON:
		p.next()
		member := &ast.ObjectProperty{Key: key, Value: p.parseExpression(noSequence), Computed: computed}
		p.finishNode(member)
		return member
	case lexer.ASSIGN:
		// Assignment property: shorthand with a default, only meaningful
		// once the surrounding object is rewritten into a pattern.
		id, ok := key.(*ast.Identifier)
		if !ok {
			p.raiseNode(key, "Invalid pattern %s", key.Kind())
		}
		p.startNodeFrom(id)
		p.next()
		value := &ast.AssignmentPattern{Left: cloneIdentifier(id), Right: p.parseExpression(noSequence)}
		p.finishNode(value)
		member := &ast.ObjectProperty{Key: key, Value: value, Shorthand: true}
		p.finishNode(member)
		return member
	case lexer.LPAREN:
		member := &ast.ObjectMethod{
			MethodKind: "method",
			Key:        key,
			Computed:   computed,
			Params:     p.parseFunctionParams(),
			Body:       p.parseBlockStatement(),
		}
		p.finishNode(member)
		return member
	}
	tok := p.peek(0)
	p.raiseToken(tok, "Unexpected token %s, expected : or = or (", tokenDesc(tok))
	return nil
}

// parseAccessor parses the tail of a getter or setter member after the
// introducing `get`/`set` word. The caller's startNode is still open.
func (p *Parser) parseAccessor(kind string) *ast.ObjectMethod {
	member := &ast.ObjectMethod{
		MethodKind: kind,
		Key:        p.parseKeyIdentifier(),
	}
	member.Params = p.parseFunctionParams()
	member.Body = p.parseBlockStatement()
	p.finishNode(member)
	return member
}

// isKeyToken reports whether the token can serve as a non-computed member
// key: an identifier or any keyword used as one.
func (p *Parser) isKeyToken(tok lexer.Token) bool {
	return tok.Type == lexer.IDENT || tok.Type.IsKeyword()
}

// cloneIdentifier copies an identifier so shorthand members do not share
// nodes between key and value.
func cloneIdentifier(id *ast.Identifier) *ast.Identifier {
	clone := &ast.Identifier{Name: id.Name}
	if loc := id.Meta().Loc; loc != nil {
		l := *loc
		clone.Meta().Loc = &l
	}
	return clone
}
