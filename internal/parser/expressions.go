package parser

import (
	"strconv"

	"github.com/cwbudde/go-escript/internal/lexer"
	"github.com/cwbudde/go-escript/pkg/ast"
)

// exprFlags controls which constructs an expression position admits. The
// zero value forbids everything optional; allowAll is the default.
type exprFlags struct {
	grouped    bool // may enter precedence climbing / conditional / arrow
	sequence   bool // may form a SequenceExpression
	assignment bool // may be assigned to
	call       bool // may be invoked
}

var allowAll = exprFlags{grouped: true, sequence: true, assignment: true, call: true}

// noSequence is the flag set for sub-expressions of comma-separated lists.
var noSequence = exprFlags{grouped: true, assignment: true, call: true}

// parseExpression parses a full expression: primary, suffixes, then an
// optional sequence tail when the context permits one.
func (p *Parser) parseExpression(flags exprFlags) ast.Expression {
	expr := p.parseExpression2(p.parseExpressionInner(flags), flags)
	if !flags.sequence || !p.match(lexer.COMMA) {
		return expr
	}
	p.startNodeFrom(expr)
	seq := &ast.SequenceExpression{Expressions: []ast.Expression{expr}}
	inner := flags
	inner.sequence = false
	for p.match(lexer.COMMA) {
		p.next()
		seq.Expressions = append(seq.Expressions, p.parseExpression(inner))
	}
	p.finishNode(seq)
	return seq
}

// parseOperand parses the right-hand side of a binary operator or the
// argument of a prefix operator: a primary with member/call suffixes but no
// grouping, sequencing, or assignment of its own.
func (p *Parser) parseOperand() ast.Expression {
	f := exprFlags{call: true}
	return p.parseExpression2(p.parseExpressionInner(f), f)
}

// parseExpressionInner parses a primary expression, including the prefix
// operator forms.
func (p *Parser) parseExpressionInner(flags exprFlags) ast.Expression {
	tok := p.peek(0)
	switch tok.Type {
	case lexer.PLUS, lexer.MINUS, lexer.BANG, lexer.TILDE,
		lexer.TYPEOF, lexer.VOID, lexer.DELETE, lexer.THROW:
		p.startNode()
		op := p.next()
		expr := &ast.UnaryExpression{Operator: op.Value, Argument: p.parseOperand()}
		p.finishNode(expr)
		return expr
	case lexer.INC, lexer.DEC:
		p.startNode()
		op := p.next()
		expr := &ast.UpdateExpression{Operator: op.Value, Argument: p.parseOperand(), Prefix: true}
		p.finishNode(expr)
		return expr
	case lexer.IDENT:
		return p.parseIdentifier()
	case lexer.NUMBER:
		p.startNode()
		p.next()
		value, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			p.raiseToken(tok, "Unexpected token %s", tokenDesc(tok))
		}
		expr := &ast.NumericLiteral{Value: value}
		p.finishNode(expr)
		return expr
	case lexer.TRUE, lexer.FALSE:
		p.startNode()
		p.next()
		expr := &ast.BooleanLiteral{Value: tok.Type == lexer.TRUE}
		p.finishNode(expr)
		return expr
	case lexer.STRING:
		p.startNode()
		p.next()
		expr := &ast.StringLiteral{Value: tok.Value}
		p.finishNode(expr)
		return expr
	case lexer.TEMPLATE:
		p.startNode()
		p.next()
		expr := &ast.TemplateLiteral{Value: tok.Value}
		p.finishNode(expr)
		return expr
	case lexer.NULL:
		p.startNode()
		p.next()
		expr := &ast.NullLiteral{}
		p.finishNode(expr)
		return expr
	case lexer.THIS:
		p.startNode()
		p.next()
		expr := &ast.ThisExpression{}
		p.finishNode(expr)
		return expr
	case lexer.SUPER:
		p.startNode()
		p.next()
		expr := &ast.SuperExpression{}
		p.finishNode(expr)
		return expr
	case lexer.NEW:
		return p.parseNewExpression()
	case lexer.LPAREN:
		return p.parseParenthesized()
	case lexer.FUNCTION:
		return p.parseFunctionExpression(false)
	case lexer.LBRACK:
		return p.parseArrayExpression()
	case lexer.LBRACE:
		return p.parseObjectExpression()
	case lexer.YIELD:
		return p.parseYieldExpression()
	case lexer.AWAIT:
		p.startNode()
		p.next()
		expr := &ast.AwaitExpression{Argument: p.parseExpression(noSequence)}
		p.finishNode(expr)
		return expr
	case lexer.ASYNC:
		switch p.peekType(1) {
		case lexer.LPAREN:
			return p.parseAsyncArrow()
		case lexer.DO:
			p.startNode()
			p.next()
			p.next()
			expr := &ast.DoExpression{Body: p.parseBlockStatement(), Async: true}
			p.finishNode(expr)
			return expr
		default:
			return p.parseFunctionExpression(true)
		}
	case lexer.DO:
		p.startNode()
		p.next()
		expr := &ast.DoExpression{Body: p.parseBlockStatement()}
		p.finishNode(expr)
		return expr
	}
	p.raiseToken(tok, "Unexpected token %s", tokenDesc(tok))
	return nil
}

// parseExpression2 parses the suffix layer: assignment, postfix update,
// member access, calls, conditionals, arrows, and entry into precedence
// climbing for binary/logical chains.
func (p *Parser) parseExpression2(left ast.Expression, flags exprFlags) ast.Expression {
	for {
		tt := p.peekType(0)
		switch {
		case tt.IsAssignment() && flags.assignment:
			p.startNodeFrom(left)
			op := p.next()
			expr := &ast.AssignmentExpression{
				Operator: op.Value,
				Left:     p.toPattern(left),
				Right:    p.parseExpression(exprFlags{grouped: true, assignment: true, call: true}),
			}
			p.finishNode(expr)
			return expr
		case tt == lexer.INC || tt == lexer.DEC:
			p.startNodeFrom(left)
			op := p.next()
			expr := &ast.UpdateExpression{Operator: op.Value, Argument: left}
			p.finishNode(expr)
			left = expr
		case tt == lexer.LBRACK:
			p.startNodeFrom(left)
			p.next()
			property := p.parseExpression(allowAll)
			p.expect(lexer.RBRACK)
			expr := &ast.MemberExpression{Object: left, Property: property, Computed: true}
			p.finishNode(expr)
			left = expr
		case tt == lexer.DOT:
			p.startNodeFrom(left)
			p.next()
			expr := &ast.MemberExpression{Object: left, Property: p.parseKeyIdentifier()}
			p.finishNode(expr)
			left = expr
		case tt == lexer.LPAREN && flags.call:
			p.startNodeFrom(left)
			expr := &ast.CallExpression{Callee: left, Arguments: p.parseArguments()}
			p.finishNode(expr)
			left = expr
		case tt == lexer.QUESTION && flags.grouped:
			p.startNodeFrom(left)
			p.next()
			consequent := p.parseExpression(noSequence)
			p.expect(lexer.COLON)
			expr := &ast.ConditionalExpression{
				Test:       left,
				Consequent: consequent,
				Alternate:  p.parseExpression(noSequence),
			}
			p.finishNode(expr)
			left = expr
		case tt == lexer.ARROW && flags.grouped:
			left = p.parseArrowTail(left, false)
		case tt.IsBinaryOperator() && flags.grouped:
			left = p.parseGroupedExpression(left, 1)
		default:
			return left
		}
	}
}

// parseGroupedExpression is standard precedence climbing over the binary
// and logical operator families. Right-hand sides are plain operands; the
// inner loop climbs while the next operator binds tighter, or equally for a
// right-associative operator.
func (p *Parser) parseGroupedExpression(left ast.Expression, minPrec int) ast.Expression {
	for p.peekType(0).IsBinaryOperator() && p.peekType(0).Precedence() >= minPrec {
		op := p.next()
		right := p.parseOperand()
		for p.peekType(0).IsBinaryOperator() {
			nextPrec := p.peekType(0).Precedence()
			opPrec := op.Type.Precedence()
			if nextPrec > opPrec {
				right = p.parseGroupedExpression(right, opPrec+1)
			} else if nextPrec == opPrec && p.peekType(0).IsRightAssociative() {
				right = p.parseGroupedExpression(right, opPrec)
			} else {
				break
			}
		}
		p.startNodeFrom(left)
		if op.Type.IsLogicalOperator() {
			expr := &ast.LogicalExpression{Operator: op.Value, Left: left, Right: right}
			p.finishNode(expr)
			left = expr
		} else {
			expr := &ast.BinaryExpression{Operator: op.Value, Left: left, Right: right}
			p.finishNode(expr)
			left = expr
		}
	}
	return left
}

func (p *Parser) parseIdentifier() *ast.Identifier {
	p.startNode()
	tok := p.expect(lexer.IDENT)
	id := &ast.Identifier{Name: tok.Value}
	p.finishNode(id)
	return id
}

// parseKeyIdentifier parses an identifier in key position, where keywords
// are permitted as plain names (`obj.delete`, `{ new: 1 }`).
func (p *Parser) parseKeyIdentifier() *ast.Identifier {
	p.startNode()
	tok := p.next()
	if tok.Type != lexer.IDENT && !tok.Type.IsKeyword() {
		p.raiseToken(tok, "Token %s is not a keyword", tokenDesc(tok))
	}
	id := &ast.Identifier{Name: tok.Value}
	p.finishNode(id)
	return id
}

func (p *Parser) parseNewExpression() *ast.NewExpression {
	p.startNode()
	p.expect(lexer.NEW)
	// The callee must not swallow an argument list as a call of its own.
	callee := p.parseExpression2(p.parseExpressionInner(exprFlags{}), exprFlags{})
	expr := &ast.NewExpression{Callee: callee}
	if p.match(lexer.LPAREN) {
		expr.Arguments = p.parseArguments()
	}
	p.finishNode(expr)
	return expr
}

func (p *Parser) parseYieldExpression() *ast.YieldExpression {
	p.startNode()
	p.expect(lexer.YIELD)
	expr := &ast.YieldExpression{}
	if p.match(lexer.ASTERISK) {
		p.next()
		expr.Delegate = true
	}
	if !p.atExpressionEnd() {
		expr.Argument = p.parseExpression(noSequence)
	}
	p.finishNode(expr)
	return expr
}

// atExpressionEnd reports whether the current token cannot begin an operand
// for an optional-argument form like `yield`.
func (p *Parser) atExpressionEnd() bool {
	switch p.peekType(0) {
	case lexer.RPAREN, lexer.RBRACK, lexer.RBRACE, lexer.SEMICOLON, lexer.COLON, lexer.COMMA, lexer.EOF:
		return true
	}
	return p.hasBreakBefore()
}

// parseArguments parses a parenthesized, comma-separated argument list.
// Spread elements are permitted; a trailing comma is recorded on the last
// argument.
func (p *Parser) parseArguments() []ast.Expression {
	p.expect(lexer.LPAREN)
	var args []ast.Expression
	for !p.match(lexer.RPAREN) {
		arg := p.parseListElement()
		args = append(args, arg)
		if !p.match(lexer.COMMA) {
			break
		}
		p.next()
		if p.match(lexer.RPAREN) {
			arg.Meta().TrailingComma = true
		}
	}
	p.expect(lexer.RPAREN)
	return args
}

// parseListElement parses one element of an argument or array element list:
// either a spread element or a plain assignable expression.
func (p *Parser) parseListElement() ast.Expression {
	if p.match(lexer.ELLIPSIS) {
		p.startNode()
		p.next()
		spread := &ast.SpreadElement{Argument: p.parseExpression(noSequence)}
		p.finishNode(spread)
		return spread
	}
	return p.parseExpression(noSequence)
}

func (p *Parser) parseArrayExpression() *ast.ArrayExpression {
	p.startNode()
	p.expect(lexer.LBRACK)
	arr := &ast.ArrayExpression{}
	for !p.match(lexer.RBRACK) {
		if p.match(lexer.COMMA) {
			// elision hole
			p.next()
			arr.Elements = append(arr.Elements, nil)
			continue
		}
		element := p.parseListElement()
		arr.Elements = append(arr.Elements, element)
		if !p.match(lexer.COMMA) {
			break
		}
		p.next()
		if p.match(lexer.RBRACK) {
			element.Meta().TrailingComma = true
		}
	}
	p.expect(lexer.RBRACK)
	p.finishNode(arr)
	return arr
}

// parseParenthesized handles `(` in primary position: an empty arrow
// parameter list, a parenthesized expression, or a comma-separated list
// that a following `=>` turns into arrow parameters. Spread elements are
// only legal when the `=>` materializes.
func (p *Parser) parseParenthesized() ast.Expression {
	p.startNode()
	p.expect(lexer.LPAREN)
	if p.match(lexer.RPAREN) {
		p.next()
		p.expect(lexer.ARROW)
		arrow := &ast.ArrowFunctionExpression{Body: p.parseExpression(noSequence)}
		p.finishNode(arrow)
		return arrow
	}
	items, sawSpread := p.parseParenItems()
	p.expect(lexer.RPAREN)
	if sawSpread && !p.match(lexer.ARROW) {
		tok := p.peek(0)
		p.raiseToken(tok, "Unexpected token %s, expected =>", tokenDesc(tok))
	}
	if len(items) == 1 {
		p.finishNode(items[0])
		return items[0]
	}
	seq := &ast.SequenceExpression{Expressions: items}
	p.finishNode(seq)
	return seq
}

// parseParenItems collects the comma-separated expressions between parens,
// recording a trailing comma on the last one. The caller decides whether a
// spread element was legal.
func (p *Parser) parseParenItems() ([]ast.Expression, bool) {
	var items []ast.Expression
	sawSpread := false
	for {
		item := p.parseListElement()
		if _, ok := item.(*ast.SpreadElement); ok {
			sawSpread = true
		}
		items = append(items, item)
		if !p.match(lexer.COMMA) {
			break
		}
		p.next()
		if p.match(lexer.RPAREN) {
			item.Meta().TrailingComma = true
			break
		}
	}
	return items, sawSpread
}

// parseArrowTail builds an arrow function from an already-parsed parameter
// expression once `=>` has been seen. A sequence splits into one pattern
// per element.
func (p *Parser) parseArrowTail(left ast.Expression, async bool) *ast.ArrowFunctionExpression {
	p.startNodeFrom(left)
	p.expect(lexer.ARROW)
	exprs := []ast.Expression{left}
	if seq, ok := left.(*ast.SequenceExpression); ok {
		exprs = seq.Expressions
	}
	arrow := &ast.ArrowFunctionExpression{
		Params: p.patternsFromList(exprs, "parameter list"),
		Body:   p.parseExpression(noSequence),
		Async:  async,
	}
	p.finishNode(arrow)
	return arrow
}

// parseAsyncArrow parses `async (params) => body`.
func (p *Parser) parseAsyncArrow() *ast.ArrowFunctionExpression {
	p.startNode()
	p.expect(lexer.ASYNC)
	p.expect(lexer.LPAREN)
	var items []ast.Expression
	if !p.match(lexer.RPAREN) {
		items, _ = p.parseParenItems()
	}
	p.expect(lexer.RPAREN)
	p.expect(lexer.ARROW)
	arrow := &ast.ArrowFunctionExpression{
		Params: p.patternsFromList(items, "parameter list"),
		Body:   p.parseExpression(noSequence),
		Async:  true,
	}
	p.finishNode(arrow)
	return arrow
}

// parseFunctionExpression parses a function expression, optionally async,
// with an optional name.
func (p *Parser) parseFunctionExpression(async bool) *ast.FunctionExpression {
	p.startNode()
	if async {
		p.expect(lexer.ASYNC)
	}
	p.expect(lexer.FUNCTION)
	expr := &ast.FunctionExpression{Async: async}
	if p.match(lexer.ASTERISK) {
		p.next()
		expr.Generator = true
	}
	if p.match(lexer.IDENT) {
		expr.ID = p.parseIdentifier()
	}
	expr.Params = p.parseFunctionParams()
	expr.Body = p.parseBlockStatement()
	p.finishNode(expr)
	return expr
}

// parseFunctionParams parses a parenthesized parameter list into patterns.
func (p *Parser) parseFunctionParams() []ast.Pattern {
	p.expect(lexer.LPAREN)
	var items []ast.Expression
	if !p.match(lexer.RPAREN) {
		items, _ = p.parseParenItems()
	}
	p.expect(lexer.RPAREN)
	return p.patternsFromList(items, "parameter list")
}
