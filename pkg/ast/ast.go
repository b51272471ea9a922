// Package ast defines the Abstract Syntax Tree node types for EScript.
//
// The node taxonomy follows the ESTree naming convention: node kinds are
// strings like "BinaryExpression" or "ArrayPattern", and field names mirror
// the convention's property names (Left/Right, Callee/Arguments, ...).
// Nodes form a tree with exclusive parent ownership; there is no sharing.
package ast

import (
	"bytes"

	"github.com/cwbudde/go-escript/internal/lexer"
)

// SourceLocation is the source span covered by a node. End is exclusive,
// like token spans.
type SourceLocation struct {
	Start lexer.Position
	End   lexer.Position
}

// NodeMeta holds the auxiliary data shared by every node: the optional
// source location and the trailing-comma flag recorded on the last element
// of call argument lists, array literals, and object literals. It is
// embedded in every node struct.
type NodeMeta struct {
	Loc           *SourceLocation
	TrailingComma bool
}

// Meta exposes the embedded auxiliary record so the parser can attach
// locations and flags through the Node interface.
func (m *NodeMeta) Meta() *NodeMeta { return m }

// Node is the base interface for all AST nodes.
type Node interface {
	// Kind returns the ESTree-style node tag, e.g. "Identifier".
	Kind() string

	// String returns a compact source-like rendering for debugging and tests.
	String() string

	// Meta returns the node's auxiliary record (location, trailing comma).
	Meta() *NodeMeta
}

// Expression represents any node that can appear in expression position.
type Expression interface {
	Node
	expressionNode()
}

// Statement represents a node that can appear in statement position.
type Statement interface {
	Node
	statementNode()
}

// Pattern represents the strict subset of nodes usable as binding targets:
// Identifier, ObjectPattern, ArrayPattern, RestElement, AssignmentPattern.
type Pattern interface {
	Node
	patternNode()
}

// ObjectMember represents a member of an object literal or object pattern:
// ObjectProperty, ObjectMethod, SpreadElement, or RestElement.
type ObjectMember interface {
	Node
	objectMemberNode()
}

// Program is the root node holding the ordered statements of a source file.
type Program struct {
	NodeMeta
	Body []Statement
}

func (p *Program) Kind() string { return "Program" }
func (p *Program) String() string {
	var out bytes.Buffer
	for i, stmt := range p.Body {
		if i > 0 {
			out.WriteString(" ")
		}
		out.WriteString(stmt.String())
	}
	return out.String()
}

// joinNodes renders a node slice separated by sep. A nil element (an array
// hole) renders as empty.
func joinNodes[T Node](nodes []T, sep string) string {
	var out bytes.Buffer
	for i, n := range nodes {
		if i > 0 {
			out.WriteString(sep)
		}
		if any(n) != nil {
			out.WriteString(n.String())
		}
	}
	return out.String()
}
