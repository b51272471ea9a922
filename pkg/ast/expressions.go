package ast

import (
	"bytes"
	"strconv"
)

// Identifier is a name in expression or binding position.
type Identifier struct {
	NodeMeta
	Name string
}

func (i *Identifier) expressionNode() {}
func (i *Identifier) patternNode()    {}
func (i *Identifier) Kind() string    { return "Identifier" }
func (i *Identifier) String() string  { return i.Name }

// NumericLiteral is a non-negative base-10 integer literal.
type NumericLiteral struct {
	NodeMeta
	Value int64
}

func (n *NumericLiteral) expressionNode() {}
func (n *NumericLiteral) Kind() string    { return "NumericLiteral" }
func (n *NumericLiteral) String() string  { return strconv.FormatInt(n.Value, 10) }

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	NodeMeta
	Value bool
}

func (b *BooleanLiteral) expressionNode() {}
func (b *BooleanLiteral) Kind() string    { return "BooleanLiteral" }
func (b *BooleanLiteral) String() string  { return strconv.FormatBool(b.Value) }

// StringLiteral holds the raw contents between the quotes; escape sequences
// are not decoded.
type StringLiteral struct {
	NodeMeta
	Value string
}

func (s *StringLiteral) expressionNode() {}
func (s *StringLiteral) Kind() string    { return "StringLiteral" }
func (s *StringLiteral) String() string  { return "'" + s.Value + "'" }

// NullLiteral is the `null` literal.
type NullLiteral struct {
	NodeMeta
}

func (n *NullLiteral) expressionNode() {}
func (n *NullLiteral) Kind() string    { return "NullLiteral" }
func (n *NullLiteral) String() string  { return "null" }

// TemplateLiteral holds the raw contents between the backticks; no
// interpolation is parsed.
type TemplateLiteral struct {
	NodeMeta
	Value string
}

func (t *TemplateLiteral) expressionNode() {}
func (t *TemplateLiteral) Kind() string    { return "TemplateLiteral" }
func (t *TemplateLiteral) String() string  { return "`" + t.Value + "`" }

// ThisExpression is the `this` keyword in expression position.
type ThisExpression struct {
	NodeMeta
}

func (t *ThisExpression) expressionNode() {}
func (t *ThisExpression) Kind() string    { return "ThisExpression" }
func (t *ThisExpression) String() string  { return "this" }

// SuperExpression is the `super` keyword in expression position.
type SuperExpression struct {
	NodeMeta
}

func (s *SuperExpression) expressionNode() {}
func (s *SuperExpression) Kind() string    { return "SuperExpression" }
func (s *SuperExpression) String() string  { return "super" }

// FunctionExpression is a (possibly anonymous) function in expression
// position.
type FunctionExpression struct {
	NodeMeta
	ID        *Identifier // nil for anonymous functions
	Params    []Pattern
	Body      *BlockStatement
	Generator bool
	Async     bool
}

func (f *FunctionExpression) expressionNode() {}
func (f *FunctionExpression) Kind() string    { return "FunctionExpression" }
func (f *FunctionExpression) String() string {
	return functionString(f.ID, f.Params, f.Body, f.Generator, f.Async)
}

// functionString renders the shared function head/body shape.
func functionString(id *Identifier, params []Pattern, body *BlockStatement, generator, async bool) string {
	var out bytes.Buffer
	if async {
		out.WriteString("async ")
	}
	out.WriteString("function")
	if generator {
		out.WriteString("*")
	}
	if id != nil {
		out.WriteString(" " + id.Name)
	}
	out.WriteString("(" + joinNodes(params, ", ") + ") ")
	out.WriteString(body.String())
	return out.String()
}

// ArrowFunctionExpression is an arrow function. Bodies are always
// expressions; block-bodied arrows are not part of the language.
type ArrowFunctionExpression struct {
	NodeMeta
	Params []Pattern
	Body   Expression
	Async  bool
}

func (a *ArrowFunctionExpression) expressionNode() {}
func (a *ArrowFunctionExpression) Kind() string    { return "ArrowFunctionExpression" }
func (a *ArrowFunctionExpression) String() string {
	var out bytes.Buffer
	if a.Async {
		out.WriteString("async ")
	}
	out.WriteString("(" + joinNodes(a.Params, ", ") + ") => ")
	out.WriteString(a.Body.String())
	return out.String()
}

// ArrayExpression is an array literal. A nil element is a hole.
type ArrayExpression struct {
	NodeMeta
	Elements []Expression
}

func (a *ArrayExpression) expressionNode() {}
func (a *ArrayExpression) Kind() string    { return "ArrayExpression" }
func (a *ArrayExpression) String() string  { return "[" + joinNodes(a.Elements, ", ") + "]" }

// ObjectExpression is an object literal.
type ObjectExpression struct {
	NodeMeta
	Properties []ObjectMember
}

func (o *ObjectExpression) expressionNode() {}
func (o *ObjectExpression) Kind() string    { return "ObjectExpression" }
func (o *ObjectExpression) String() string  { return "{" + joinNodes(o.Properties, ", ") + "}" }

// AssignmentExpression is an assignment. The left-hand side has been
// reinterpreted as a pattern by the time the node is built.
type AssignmentExpression struct {
	NodeMeta
	Operator string
	Left     Pattern
	Right    Expression
}

func (a *AssignmentExpression) expressionNode() {}
func (a *AssignmentExpression) Kind() string    { return "AssignmentExpression" }
func (a *AssignmentExpression) String() string {
	return "(" + a.Left.String() + " " + a.Operator + " " + a.Right.String() + ")"
}

// UnaryExpression is a prefix operator application, including the keyword
// operators typeof, void, delete and throw.
type UnaryExpression struct {
	NodeMeta
	Operator string
	Argument Expression
}

func (u *UnaryExpression) expressionNode() {}
func (u *UnaryExpression) Kind() string    { return "UnaryExpression" }
func (u *UnaryExpression) String() string {
	sep := ""
	if isWordOperator(u.Operator) {
		sep = " "
	}
	return "(" + u.Operator + sep + u.Argument.String() + ")"
}

func isWordOperator(op string) bool {
	return len(op) > 0 && op[0] >= 'a' && op[0] <= 'z'
}

// UpdateExpression is `++`/`--` applied before or after its argument.
type UpdateExpression struct {
	NodeMeta
	Operator string
	Argument Expression
	Prefix   bool
}

func (u *UpdateExpression) expressionNode() {}
func (u *UpdateExpression) Kind() string    { return "UpdateExpression" }
func (u *UpdateExpression) String() string {
	if u.Prefix {
		return "(" + u.Operator + u.Argument.String() + ")"
	}
	return "(" + u.Argument.String() + u.Operator + ")"
}

// BinaryExpression is an infix operation outside the logical family.
type BinaryExpression struct {
	NodeMeta
	Operator string
	Left     Expression
	Right    Expression
}

func (b *BinaryExpression) expressionNode() {}
func (b *BinaryExpression) Kind() string    { return "BinaryExpression" }
func (b *BinaryExpression) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}

// LogicalExpression is `||`, `&&` or `??`.
type LogicalExpression struct {
	NodeMeta
	Operator string
	Left     Expression
	Right    Expression
}

func (l *LogicalExpression) expressionNode() {}
func (l *LogicalExpression) Kind() string    { return "LogicalExpression" }
func (l *LogicalExpression) String() string {
	return "(" + l.Left.String() + " " + l.Operator + " " + l.Right.String() + ")"
}

// SequenceExpression is a comma chain; it always holds at least two
// sub-expressions.
type SequenceExpression struct {
	NodeMeta
	Expressions []Expression
}

func (s *SequenceExpression) expressionNode() {}
func (s *SequenceExpression) Kind() string    { return "SequenceExpression" }
func (s *SequenceExpression) String() string  { return "(" + joinNodes(s.Expressions, ", ") + ")" }

// MemberExpression is property access, computed (`a[b]`) or not (`a.b`).
type MemberExpression struct {
	NodeMeta
	Object   Expression
	Property Expression
	Computed bool
}

func (m *MemberExpression) expressionNode() {}
func (m *MemberExpression) Kind() string    { return "MemberExpression" }
func (m *MemberExpression) String() string {
	if m.Computed {
		return m.Object.String() + "[" + m.Property.String() + "]"
	}
	return m.Object.String() + "." + m.Property.String()
}

// CallExpression is a function call.
type CallExpression struct {
	NodeMeta
	Callee    Expression
	Arguments []Expression
}

func (c *CallExpression) expressionNode() {}
func (c *CallExpression) Kind() string    { return "CallExpression" }
func (c *CallExpression) String() string {
	return c.Callee.String() + "(" + joinNodes(c.Arguments, ", ") + ")"
}

// NewExpression is a constructor invocation. The callee is never itself a
// call; an argument list directly following the callee belongs to the `new`.
type NewExpression struct {
	NodeMeta
	Callee    Expression
	Arguments []Expression
}

func (n *NewExpression) expressionNode() {}
func (n *NewExpression) Kind() string    { return "NewExpression" }
func (n *NewExpression) String() string {
	return "new " + n.Callee.String() + "(" + joinNodes(n.Arguments, ", ") + ")"
}

// ConditionalExpression is the ternary `test ? consequent : alternate`.
type ConditionalExpression struct {
	NodeMeta
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (c *ConditionalExpression) expressionNode() {}
func (c *ConditionalExpression) Kind() string    { return "ConditionalExpression" }
func (c *ConditionalExpression) String() string {
	return "(" + c.Test.String() + " ? " + c.Consequent.String() + " : " + c.Alternate.String() + ")"
}

// YieldExpression is `yield` or `yield*`. Argument may be nil.
type YieldExpression struct {
	NodeMeta
	Argument Expression
	Delegate bool
}

func (y *YieldExpression) expressionNode() {}
func (y *YieldExpression) Kind() string    { return "YieldExpression" }
func (y *YieldExpression) String() string {
	var out bytes.Buffer
	out.WriteString("yield")
	if y.Delegate {
		out.WriteString("*")
	}
	if y.Argument != nil {
		out.WriteString(" " + y.Argument.String())
	}
	return out.String()
}

// AwaitExpression is `await argument`.
type AwaitExpression struct {
	NodeMeta
	Argument Expression
}

func (a *AwaitExpression) expressionNode() {}
func (a *AwaitExpression) Kind() string    { return "AwaitExpression" }
func (a *AwaitExpression) String() string  { return "await " + a.Argument.String() }

// DoExpression is a `do { ... }` block in expression position, optionally
// async.
type DoExpression struct {
	NodeMeta
	Body  *BlockStatement
	Async bool
}

func (d *DoExpression) expressionNode() {}
func (d *DoExpression) Kind() string    { return "DoExpression" }
func (d *DoExpression) String() string {
	if d.Async {
		return "async do " + d.Body.String()
	}
	return "do " + d.Body.String()
}

// SpreadElement is `...argument` in a list context (calls, arrays, objects,
// parenthesized lists). Its pattern-side counterpart is RestElement.
type SpreadElement struct {
	NodeMeta
	Argument Expression
}

func (s *SpreadElement) expressionNode()   {}
func (s *SpreadElement) objectMemberNode() {}
func (s *SpreadElement) Kind() string      { return "SpreadElement" }
func (s *SpreadElement) String() string    { return "..." + s.Argument.String() }

// ObjectProperty is a key/value member of an object literal or pattern. The
// value is an Expression in a literal and a Pattern once the surrounding
// object has been rewritten into a pattern (an "assignment property").
type ObjectProperty struct {
	NodeMeta
	Key       Expression
	Value     Node
	Computed  bool
	Shorthand bool
}

func (o *ObjectProperty) objectMemberNode() {}
func (o *ObjectProperty) Kind() string      { return "ObjectProperty" }
func (o *ObjectProperty) String() string {
	if o.Shorthand {
		return o.Value.String()
	}
	key := o.Key.String()
	if o.Computed {
		key = "[" + key + "]"
	}
	return key + ": " + o.Value.String()
}

// ObjectMethod is a method, getter or setter member of an object literal.
// MethodKind is "method", "get" or "set".
type ObjectMethod struct {
	NodeMeta
	MethodKind string
	Key        Expression
	Params     []Pattern
	Body       *BlockStatement
	Computed   bool
	Generator  bool
	Async      bool
}

func (o *ObjectMethod) objectMemberNode() {}
func (o *ObjectMethod) Kind() string      { return "ObjectMethod" }
func (o *ObjectMethod) String() string {
	var out bytes.Buffer
	if o.Async {
		out.WriteString("async ")
	}
	if o.MethodKind != "method" {
		out.WriteString(o.MethodKind + " ")
	}
	if o.Generator {
		out.WriteString("*")
	}
	key := o.Key.String()
	if o.Computed {
		key = "[" + key + "]"
	}
	out.WriteString(key + "(" + joinNodes(o.Params, ", ") + ") " + o.Body.String())
	return out.String()
}
