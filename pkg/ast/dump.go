package ast

import (
	"bytes"
	"fmt"
	"strings"
)

// Dump renders a node as an indented tree, one node per line, with the kind
// tag first and the scalar attributes after it. Useful for golden tests and
// the CLI's --dump-ast mode.
func Dump(n Node) string {
	var d dumper
	d.node(0, "", n)
	return strings.TrimRight(d.buf.String(), "\n")
}

type dumper struct {
	buf bytes.Buffer
}

func (d *dumper) line(indent int, label, text string) {
	d.buf.WriteString(strings.Repeat("  ", indent))
	if label != "" {
		d.buf.WriteString(label + ": ")
	}
	d.buf.WriteString(text + "\n")
}

func (d *dumper) node(indent int, label string, n Node) {
	if n == nil {
		d.line(indent, label, "null")
		return
	}
	switch v := n.(type) {
	case *Program:
		d.line(indent, label, v.Kind())
		for _, s := range v.Body {
			d.node(indent+1, "", s)
		}
	case *Identifier:
		d.line(indent, label, fmt.Sprintf("Identifier name=%s", v.Name))
	case *NumericLiteral:
		d.line(indent, label, fmt.Sprintf("NumericLiteral value=%d", v.Value))
	case *BooleanLiteral:
		d.line(indent, label, fmt.Sprintf("BooleanLiteral value=%t", v.Value))
	case *StringLiteral:
		d.line(indent, label, fmt.Sprintf("StringLiteral value=%q", v.Value))
	case *TemplateLiteral:
		d.line(indent, label, fmt.Sprintf("TemplateLiteral value=%q", v.Value))
	case *NullLiteral:
		d.line(indent, label, "NullLiteral")
	case *ThisExpression:
		d.line(indent, label, "ThisExpression")
	case *SuperExpression:
		d.line(indent, label, "SuperExpression")
	case *FunctionExpression:
		d.line(indent, label, fmt.Sprintf("FunctionExpression generator=%t async=%t", v.Generator, v.Async))
		d.function(indent+1, v.ID, v.Params, v.Body)
	case *FunctionDeclaration:
		d.line(indent, label, fmt.Sprintf("FunctionDeclaration generator=%t async=%t", v.Generator, v.Async))
		d.function(indent+1, v.ID, v.Params, v.Body)
	case *ArrowFunctionExpression:
		d.line(indent, label, fmt.Sprintf("ArrowFunctionExpression async=%t", v.Async))
		for _, p := range v.Params {
			d.node(indent+1, "param", p)
		}
		d.node(indent+1, "body", v.Body)
	case *ArrayExpression:
		d.line(indent, label, "ArrayExpression")
		for _, e := range v.Elements {
			d.node(indent+1, "", e)
		}
	case *ObjectExpression:
		d.line(indent, label, "ObjectExpression")
		for _, m := range v.Properties {
			d.node(indent+1, "", m)
		}
	case *AssignmentExpression:
		d.line(indent, label, fmt.Sprintf("AssignmentExpression operator=%q", v.Operator))
		d.node(indent+1, "left", v.Left)
		d.node(indent+1, "right", v.Right)
	case *UnaryExpression:
		d.line(indent, label, fmt.Sprintf("UnaryExpression operator=%q", v.Operator))
		d.node(indent+1, "argument", v.Argument)
	case *UpdateExpression:
		d.line(indent, label, fmt.Sprintf("UpdateExpression operator=%q prefix=%t", v.Operator, v.Prefix))
		d.node(indent+1, "argument", v.Argument)
	case *BinaryExpression:
		d.line(indent, label, fmt.Sprintf("BinaryExpression operator=%q", v.Operator))
		d.node(indent+1, "left", v.Left)
		d.node(indent+1, "right", v.Right)
	case *LogicalExpression:
		d.line(indent, label, fmt.Sprintf("LogicalExpression operator=%q", v.Operator))
		d.node(indent+1, "left", v.Left)
		d.node(indent+1, "right", v.Right)
	case *SequenceExpression:
		d.line(indent, label, "SequenceExpression")
		for _, e := range v.Expressions {
			d.node(indent+1, "", e)
		}
	case *MemberExpression:
		d.line(indent, label, fmt.Sprintf("MemberExpression computed=%t", v.Computed))
		d.node(indent+1, "object", v.Object)
		d.node(indent+1, "property", v.Property)
	case *CallExpression:
		d.line(indent, label, "CallExpression")
		d.node(indent+1, "callee", v.Callee)
		for _, a := range v.Arguments {
			d.node(indent+1, "argument", a)
		}
	case *NewExpression:
		d.line(indent, label, "NewExpression")
		d.node(indent+1, "callee", v.Callee)
		for _, a := range v.Arguments {
			d.node(indent+1, "argument", a)
		}
	case *ConditionalExpression:
		d.line(indent, label, "ConditionalExpression")
		d.node(indent+1, "test", v.Test)
		d.node(indent+1, "consequent", v.Consequent)
		d.node(indent+1, "alternate", v.Alternate)
	case *YieldExpression:
		d.line(indent, label, fmt.Sprintf("YieldExpression delegate=%t", v.Delegate))
		d.node(indent+1, "argument", v.Argument)
	case *AwaitExpression:
		d.line(indent, label, "AwaitExpression")
		d.node(indent+1, "argument", v.Argument)
	case *DoExpression:
		d.line(indent, label, fmt.Sprintf("DoExpression async=%t", v.Async))
		d.node(indent+1, "body", v.Body)
	case *SpreadElement:
		d.line(indent, label, "SpreadElement")
		d.node(indent+1, "argument", v.Argument)
	case *ObjectProperty:
		d.line(indent, label, fmt.Sprintf("ObjectProperty computed=%t shorthand=%t", v.Computed, v.Shorthand))
		d.node(indent+1, "key", v.Key)
		d.node(indent+1, "value", v.Value)
	case *ObjectMethod:
		d.line(indent, label, fmt.Sprintf("ObjectMethod kind=%s computed=%t generator=%t async=%t",
			v.MethodKind, v.Computed, v.Generator, v.Async))
		d.node(indent+1, "key", v.Key)
		for _, p := range v.Params {
			d.node(indent+1, "param", p)
		}
		d.node(indent+1, "body", v.Body)
	case *ObjectPattern:
		d.line(indent, label, "ObjectPattern")
		for _, m := range v.Properties {
			d.node(indent+1, "", m)
		}
	case *ArrayPattern:
		d.line(indent, label, "ArrayPattern")
		for _, e := range v.Elements {
			d.node(indent+1, "", e)
		}
	case *RestElement:
		d.line(indent, label, "RestElement")
		d.node(indent+1, "argument", v.Argument)
	case *AssignmentPattern:
		d.line(indent, label, "AssignmentPattern")
		d.node(indent+1, "left", v.Left)
		d.node(indent+1, "right", v.Right)
	case *BlockStatement:
		d.line(indent, label, "BlockStatement")
		for _, s := range v.Body {
			d.node(indent+1, "", s)
		}
	case *EmptyStatement:
		d.line(indent, label, "EmptyStatement")
	case *ExpressionStatement:
		d.line(indent, label, "ExpressionStatement")
		d.node(indent+1, "", v.Expression)
	case *VariableDeclaration:
		d.line(indent, label, fmt.Sprintf("VariableDeclaration kind=%s", v.DeclKind))
		for _, dec := range v.Declarations {
			d.node(indent+1, "", dec)
		}
	case *VariableDeclarator:
		d.line(indent, label, "VariableDeclarator")
		d.node(indent+1, "id", v.ID)
		d.node(indent+1, "init", v.Init)
	case *IfStatement:
		d.line(indent, label, "IfStatement")
		d.node(indent+1, "test", v.Test)
		d.node(indent+1, "consequent", v.Consequent)
		if v.Alternate != nil {
			d.node(indent+1, "alternate", v.Alternate)
		}
	case *SwitchStatement:
		d.line(indent, label, "SwitchStatement")
		d.node(indent+1, "discriminant", v.Discriminant)
		for _, c := range v.Cases {
			d.node(indent+1, "", c)
		}
	case *SwitchCase:
		d.line(indent, label, "SwitchCase")
		d.node(indent+1, "test", v.Test)
		for _, s := range v.Consequent {
			d.node(indent+1, "", s)
		}
	case *ForStatement:
		d.line(indent, label, "ForStatement")
		d.node(indent+1, "init", v.Init)
		d.node(indent+1, "test", v.Test)
		d.node(indent+1, "update", v.Update)
		d.node(indent+1, "body", v.Body)
	case *WhileStatement:
		d.line(indent, label, "WhileStatement")
		d.node(indent+1, "test", v.Test)
		d.node(indent+1, "body", v.Body)
	case *DoWhileStatement:
		d.line(indent, label, "DoWhileStatement")
		d.node(indent+1, "body", v.Body)
		d.node(indent+1, "test", v.Test)
	case *TryStatement:
		d.line(indent, label, "TryStatement")
		d.node(indent+1, "block", v.Block)
		if v.Handler != nil {
			d.node(indent+1, "handler", v.Handler)
		}
		if v.Finalizer != nil {
			d.node(indent+1, "finalizer", v.Finalizer)
		}
	case *CatchClause:
		d.line(indent, label, "CatchClause")
		d.node(indent+1, "param", v.Param)
		d.node(indent+1, "body", v.Body)
	case *WithStatement:
		d.line(indent, label, "WithStatement")
		d.node(indent+1, "object", v.Object)
		d.node(indent+1, "body", v.Body)
	case *DebuggerStatement:
		d.line(indent, label, "DebuggerStatement")
	case *LabeledStatement:
		d.line(indent, label, "LabeledStatement")
		d.node(indent+1, "label", v.Label)
		d.node(indent+1, "body", v.Body)
	case *ReturnStatement:
		d.line(indent, label, "ReturnStatement")
		d.node(indent+1, "argument", v.Argument)
	case *BreakStatement:
		d.line(indent, label, "BreakStatement")
	case *ContinueStatement:
		d.line(indent, label, "ContinueStatement")
	default:
		d.line(indent, label, v.Kind())
	}
}

func (d *dumper) function(indent int, id *Identifier, params []Pattern, body *BlockStatement) {
	if id != nil {
		d.node(indent, "id", id)
	}
	for _, p := range params {
		d.node(indent, "param", p)
	}
	d.node(indent, "body", body)
}
