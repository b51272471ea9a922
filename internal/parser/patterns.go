package parser

import (
	"github.com/cwbudde/go-escript/pkg/ast"
)

// toPattern reinterprets an already-built expression as a binding pattern,
// used for function parameters, variable declarators, assignment left-hand
// sides, and arrow parameter lists. Nodes that are already patterns are
// returned unchanged, making the rewrite idempotent. Auxiliary data
// (location, trailing comma) is carried across.
func (p *Parser) toPattern(node ast.Node) ast.Pattern {
	switch n := node.(type) {
	case ast.Pattern:
		// Identifier and friends are already valid binding targets.
		return n

	case *ast.AssignmentExpression:
		if n.Operator != "=" {
			p.raiseNode(n, "Invalid assignment pattern operator %s, expected =", n.Operator)
		}
		pat := &ast.AssignmentPattern{Left: n.Left, Right: n.Right}
		pat.NodeMeta = n.NodeMeta
		return pat

	case *ast.SpreadElement:
		rest := &ast.RestElement{Argument: p.toPattern(n.Argument)}
		rest.NodeMeta = n.NodeMeta
		if rest.TrailingComma {
			p.raiseNode(rest, "A rest element cannot have a trailing comma")
		}
		return rest

	case *ast.ArrayExpression:
		pat := &ast.ArrayPattern{}
		pat.NodeMeta = n.NodeMeta
		for i, element := range n.Elements {
			if element == nil {
				pat.Elements = append(pat.Elements, nil)
				continue
			}
			pe := p.toPattern(element)
			if _, isRest := pe.(*ast.RestElement); isRest && i != len(n.Elements)-1 {
				p.raiseNode(pe, "A rest element must be last in a destructuring pattern")
			}
			pat.Elements = append(pat.Elements, pe)
		}
		return pat

	case *ast.ObjectExpression:
		pat := &ast.ObjectPattern{}
		pat.NodeMeta = n.NodeMeta
		for i, member := range n.Properties {
			switch m := member.(type) {
			case *ast.SpreadElement:
				rest := p.toPattern(m)
				if i != len(n.Properties)-1 {
					p.raiseNode(rest, "A rest element must be last in a destructuring pattern")
				}
				pat.Properties = append(pat.Properties, rest.(*ast.RestElement))
			case *ast.ObjectProperty:
				// Repurposed as an assignment property: the value child
				// becomes a pattern in place.
				m.Value = p.toPattern(m.Value)
				pat.Properties = append(pat.Properties, m)
			case *ast.RestElement:
				pat.Properties = append(pat.Properties, m)
			default:
				p.raiseNode(m, "Invalid pattern %s", m.Kind())
			}
		}
		return pat
	}

	p.raiseNode(node, "Invalid pattern %s", node.Kind())
	return nil
}

// patternsFromList rewrites a parameter-position expression list into
// patterns, enforcing that a rest element comes last. context names the
// surrounding construct in the error message.
func (p *Parser) patternsFromList(exprs []ast.Expression, context string) []ast.Pattern {
	patterns := make([]ast.Pattern, 0, len(exprs))
	for i, expr := range exprs {
		pat := p.toPattern(expr)
		if _, isRest := pat.(*ast.RestElement); isRest && i != len(exprs)-1 {
			p.raiseNode(pat, "A rest element must be last in a %s", context)
		}
		patterns = append(patterns, pat)
	}
	return patterns
}
