package parser

import (
	"github.com/cwbudde/go-escript/internal/lexer"
	"github.com/cwbudde/go-escript/pkg/ast"
)

// parseStatement dispatches on the first token of a statement.
func (p *Parser) parseStatement() ast.Statement {
	tok := p.peek(0)
	p.logf("parsing statement at %s", tok.Pos())
	switch tok.Type {
	case lexer.LBRACE:
		return p.parseBlockStatement()
	case lexer.VAR, lexer.LET, lexer.CONST:
		return p.parseVariableDeclaration()
	case lexer.FUNCTION:
		return p.parseFunctionDeclaration(false)
	case lexer.ASYNC:
		if p.matchAt(lexer.FUNCTION, 1) {
			return p.parseFunctionDeclaration(true)
		}
	case lexer.IF:
		return p.parseIfStatement()
	case lexer.SWITCH:
		return p.parseSwitchStatement()
	case lexer.FOR:
		return p.parseForStatement()
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.DO:
		return p.parseDoWhileStatement()
	case lexer.TRY:
		return p.parseTryStatement()
	case lexer.WITH:
		return p.parseWithStatement()
	case lexer.DEBUGGER:
		return p.parseDebuggerStatement()
	case lexer.BREAK:
		return p.parseBreakStatement()
	case lexer.CONTINUE:
		return p.parseContinueStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.SEMICOLON:
		return p.parseEmptyStatement()
	case lexer.IDENT:
		if p.matchAt(lexer.COLON, 1) {
			return p.parseLabeledStatement()
		}
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	p.startNode()
	p.expect(lexer.LBRACE)
	block := &ast.BlockStatement{}
	for !p.match(lexer.RBRACE) {
		block.Body = append(block.Body, p.parseStatement())
	}
	p.expect(lexer.RBRACE)
	p.finishNode(block)
	return block
}

func (p *Parser) parseEmptyStatement() *ast.EmptyStatement {
	p.startNode()
	p.expect(lexer.SEMICOLON)
	stmt := &ast.EmptyStatement{}
	p.finishNode(stmt)
	return stmt
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	p.startNode()
	stmt := &ast.ExpressionStatement{Expression: p.parseExpression(allowAll)}
	p.expectBreak()
	p.finishNode(stmt)
	return stmt
}

// parseVariableDeclaration parses `var`/`let`/`const` with one or more
// declarators. The terminating break is consumed here, which also covers
// the first `;` of a for-statement head.
func (p *Parser) parseVariableDeclaration() *ast.VariableDeclaration {
	p.startNode()
	kw := p.next()
	decl := &ast.VariableDeclaration{DeclKind: kw.Value}
	for {
		decl.Declarations = append(decl.Declarations, p.parseVariableDeclarator())
		if !p.match(lexer.COMMA) {
			break
		}
		p.next()
	}
	p.expectBreak()
	p.finishNode(decl)
	return decl
}

func (p *Parser) parseVariableDeclarator() *ast.VariableDeclarator {
	p.startNode()
	// The binding target is parsed as an expression and reinterpreted as a
	// pattern; assignment is disabled so the declarator's own `=` survives.
	target := p.parseExpression(exprFlags{})
	var init ast.Expression
	if p.match(lexer.ASSIGN) {
		p.next()
		init = p.parseExpression(exprFlags{grouped: true, assignment: true, call: true})
	}
	d := &ast.VariableDeclarator{ID: p.toPattern(target), Init: init}
	p.finishNode(d)
	return d
}

func (p *Parser) parseIfStatement() *ast.IfStatement {
	p.startNode()
	p.expect(lexer.IF)
	p.expect(lexer.LPAREN)
	test := p.parseExpression(allowAll)
	p.expect(lexer.RPAREN)
	stmt := &ast.IfStatement{Test: test, Consequent: p.parseStatement()}
	if p.match(lexer.ELSE) {
		p.next()
		stmt.Alternate = p.parseStatement()
	}
	p.finishNode(stmt)
	return stmt
}

func (p *Parser) parseSwitchStatement() *ast.SwitchStatement {
	p.startNode()
	p.expect(lexer.SWITCH)
	p.expect(lexer.LPAREN)
	stmt := &ast.SwitchStatement{Discriminant: p.parseExpression(allowAll)}
	p.expect(lexer.RPAREN)
	p.expect(lexer.LBRACE)
	for !p.match(lexer.RBRACE) {
		stmt.Cases = append(stmt.Cases, p.parseSwitchCase())
	}
	p.expect(lexer.RBRACE)
	p.finishNode(stmt)
	return stmt
}

// parseSwitchCase parses one `case test:` or `default:` arm; its statement
// list runs until the next case, default, or closing brace.
func (p *Parser) parseSwitchCase() *ast.SwitchCase {
	p.startNode()
	c := &ast.SwitchCase{}
	if p.match(lexer.CASE) {
		p.next()
		c.Test = p.parseExpression(allowAll)
	} else {
		p.expect(lexer.DEFAULT)
	}
	p.expect(lexer.COLON)
	for !p.match(lexer.CASE) && !p.match(lexer.DEFAULT) && !p.match(lexer.RBRACE) {
		c.Consequent = append(c.Consequent, p.parseStatement())
	}
	p.finishNode(c)
	return c
}

func (p *Parser) parseForStatement() *ast.ForStatement {
	p.startNode()
	p.expect(lexer.FOR)
	p.expect(lexer.LPAREN)
	stmt := &ast.ForStatement{}
	switch {
	case p.match(lexer.SEMICOLON):
		p.next()
	case p.match(lexer.VAR) || p.match(lexer.LET) || p.match(lexer.CONST):
		// The declaration consumes its own trailing break, covering the
		// first semicolon.
		stmt.Init = p.parseVariableDeclaration()
	default:
		stmt.Init = p.parseExpression(allowAll)
		p.expect(lexer.SEMICOLON)
	}
	if p.match(lexer.SEMICOLON) {
		p.next()
	} else {
		stmt.Test = p.parseExpression(allowAll)
		p.expect(lexer.SEMICOLON)
	}
	if !p.match(lexer.RPAREN) {
		stmt.Update = p.parseExpression(allowAll)
	}
	p.expect(lexer.RPAREN)
	stmt.Body = p.parseStatement()
	p.finishNode(stmt)
	return stmt
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	p.startNode()
	p.expect(lexer.WHILE)
	p.expect(lexer.LPAREN)
	test := p.parseExpression(allowAll)
	p.expect(lexer.RPAREN)
	stmt := &ast.WhileStatement{Test: test, Body: p.parseStatement()}
	p.finishNode(stmt)
	return stmt
}

func (p *Parser) parseDoWhileStatement() *ast.DoWhileStatement {
	p.startNode()
	p.expect(lexer.DO)
	body := p.parseStatement()
	p.expect(lexer.WHILE)
	p.expect(lexer.LPAREN)
	test := p.parseExpression(allowAll)
	p.expect(lexer.RPAREN)
	p.expectBreak()
	stmt := &ast.DoWhileStatement{Body: body, Test: test}
	p.finishNode(stmt)
	return stmt
}

func (p *Parser) parseTryStatement() *ast.TryStatement {
	p.startNode()
	tryTok := p.expect(lexer.TRY)
	stmt := &ast.TryStatement{Block: p.parseBlockStatement()}
	if p.match(lexer.CATCH) {
		stmt.Handler = p.parseCatchClause()
	}
	if p.match(lexer.FINALLY) {
		p.next()
		stmt.Finalizer = p.parseBlockStatement()
	}
	if stmt.Handler == nil && stmt.Finalizer == nil {
		p.raiseToken(tryTok, "Missing catch or finally after try")
	}
	p.finishNode(stmt)
	return stmt
}

func (p *Parser) parseCatchClause() *ast.CatchClause {
	p.startNode()
	p.expect(lexer.CATCH)
	clause := &ast.CatchClause{}
	if p.match(lexer.LPAREN) {
		p.next()
		clause.Param = p.toPattern(p.parseExpression(exprFlags{}))
		p.expect(lexer.RPAREN)
	}
	clause.Body = p.parseBlockStatement()
	p.finishNode(clause)
	return clause
}

func (p *Parser) parseWithStatement() *ast.WithStatement {
	p.startNode()
	p.expect(lexer.WITH)
	p.expect(lexer.LPAREN)
	object := p.parseExpression(allowAll)
	p.expect(lexer.RPAREN)
	stmt := &ast.WithStatement{Object: object, Body: p.parseStatement()}
	p.finishNode(stmt)
	return stmt
}

func (p *Parser) parseDebuggerStatement() *ast.DebuggerStatement {
	p.startNode()
	p.expect(lexer.DEBUGGER)
	p.expectBreak()
	stmt := &ast.DebuggerStatement{}
	p.finishNode(stmt)
	return stmt
}

func (p *Parser) parseBreakStatement() *ast.BreakStatement {
	p.startNode()
	p.expect(lexer.BREAK)
	p.expectBreak()
	stmt := &ast.BreakStatement{}
	p.finishNode(stmt)
	return stmt
}

func (p *Parser) parseContinueStatement() *ast.ContinueStatement {
	p.startNode()
	p.expect(lexer.CONTINUE)
	p.expectBreak()
	stmt := &ast.ContinueStatement{}
	p.finishNode(stmt)
	return stmt
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	p.startNode()
	p.expect(lexer.RETURN)
	stmt := &ast.ReturnStatement{}
	if !p.atBreak() {
		stmt.Argument = p.parseExpression(allowAll)
	}
	p.expectBreak()
	p.finishNode(stmt)
	return stmt
}

func (p *Parser) parseLabeledStatement() *ast.LabeledStatement {
	p.startNode()
	p.startNode()
	name := p.expect(lexer.IDENT)
	label := &ast.Identifier{Name: name.Value}
	p.finishNode(label)
	p.expect(lexer.COLON)
	stmt := &ast.LabeledStatement{Label: label, Body: p.parseStatement()}
	p.finishNode(stmt)
	return stmt
}

// parseFunctionDeclaration parses a function statement, which must carry a
// name.
func (p *Parser) parseFunctionDeclaration(async bool) *ast.FunctionDeclaration {
	p.startNode()
	if async {
		p.expect(lexer.ASYNC)
	}
	p.expect(lexer.FUNCTION)
	generator := false
	if p.match(lexer.ASTERISK) {
		p.next()
		generator = true
	}
	if !p.match(lexer.IDENT) {
		p.raiseToken(p.peek(0), "Function statements require a function name")
	}
	id := p.parseIdentifier()
	params := p.parseFunctionParams()
	stmt := &ast.FunctionDeclaration{
		ID:        id,
		Params:    params,
		Body:      p.parseBlockStatement(),
		Generator: generator,
		Async:     async,
	}
	p.finishNode(stmt)
	return stmt
}
