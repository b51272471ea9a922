package parser

import (
	"testing"

	"github.com/cwbudde/go-escript/pkg/ast"
)

// walkChildren invokes fn on each direct child node present in the tree.
func walkChildren(n ast.Node, fn func(child ast.Node)) {
	visit := func(c ast.Node) {
		if c != nil {
			fn(c)
		}
	}
	switch v := n.(type) {
	case *ast.Program:
		for _, s := range v.Body {
			visit(s)
		}
	case *ast.ExpressionStatement:
		visit(v.Expression)
	case *ast.VariableDeclaration:
		for _, d := range v.Declarations {
			visit(d)
		}
	case *ast.VariableDeclarator:
		visit(v.ID)
		visit(v.Init)
	case *ast.BinaryExpression:
		visit(v.Left)
		visit(v.Right)
	case *ast.LogicalExpression:
		visit(v.Left)
		visit(v.Right)
	case *ast.AssignmentExpression:
		visit(v.Left)
		visit(v.Right)
	case *ast.CallExpression:
		visit(v.Callee)
		for _, a := range v.Arguments {
			visit(a)
		}
	case *ast.MemberExpression:
		visit(v.Object)
		visit(v.Property)
	case *ast.BlockStatement:
		for _, s := range v.Body {
			visit(s)
		}
	case *ast.FunctionDeclaration:
		visit(v.ID)
		for _, p := range v.Params {
			visit(p)
		}
		visit(v.Body)
	case *ast.ReturnStatement:
		visit(v.Argument)
	case *ast.IfStatement:
		visit(v.Test)
		visit(v.Consequent)
		if v.Alternate != nil {
			visit(v.Alternate)
		}
	case *ast.ArrayExpression:
		for _, e := range v.Elements {
			visit(e)
		}
	case *ast.SequenceExpression:
		for _, e := range v.Expressions {
			visit(e)
		}
	}
}

// checkContainment asserts that every child's span lies within its parent's.
func checkContainment(t *testing.T, n ast.Node) {
	t.Helper()
	parentLoc := n.Meta().Loc
	if parentLoc == nil {
		t.Fatalf("%s has no location", n.Kind())
	}
	walkChildren(n, func(child ast.Node) {
		childLoc := child.Meta().Loc
		if childLoc == nil {
			t.Fatalf("%s child %s has no location", n.Kind(), child.Kind())
		}
		if childLoc.Start.Offset < parentLoc.Start.Offset || childLoc.End.Offset > parentLoc.End.Offset {
			t.Errorf("%s span %d..%d outside parent %s span %d..%d",
				child.Kind(), childLoc.Start.Offset, childLoc.End.Offset,
				n.Kind(), parentLoc.Start.Offset, parentLoc.End.Offset)
		}
		checkContainment(t, child)
	})
}

func TestLocationContainment(t *testing.T) {
	inputs := []string{
		"var x = 1;",
		"if (a + b) { f(x, y); } else { return; }",
		"function f(a, b) { return a * b + 1; }",
		"x = (a, b, c);",
		"[1, 2, f(3)];",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			checkContainment(t, testProgram(t, input))
		})
	}
}

func TestNodeLocations(t *testing.T) {
	program := testProgram(t, "var x = 1;")
	if program.Loc.Start.Offset != 0 || program.Loc.End.Offset != 10 {
		t.Errorf("program span %d..%d, want 0..10", program.Loc.Start.Offset, program.Loc.End.Offset)
	}
	decl := program.Body[0].(*ast.VariableDeclaration)
	if decl.Loc.Start.Offset != 0 || decl.Loc.End.Offset != 10 {
		t.Errorf("declaration span %d..%d, want 0..10", decl.Loc.Start.Offset, decl.Loc.End.Offset)
	}
	d := decl.Declarations[0]
	if d.Loc.Start.Offset != 4 || d.Loc.End.Offset != 9 {
		t.Errorf("declarator span %d..%d, want 4..9", d.Loc.Start.Offset, d.Loc.End.Offset)
	}
	init := d.Init.(*ast.NumericLiteral)
	if init.Loc.Start.Offset != 8 || init.Loc.End.Offset != 9 {
		t.Errorf("init span %d..%d, want 8..9", init.Loc.Start.Offset, init.Loc.End.Offset)
	}
}

// Binary chains reuse the left operand's start for the combined node.
func TestRetroactiveGrouping(t *testing.T) {
	expr := testExpression(t, "a + b * c")
	loc := expr.Meta().Loc
	if loc.Start.Offset != 0 || loc.End.Offset != 9 {
		t.Errorf("span %d..%d, want 0..9", loc.Start.Offset, loc.End.Offset)
	}
	right := expr.(*ast.BinaryExpression).Right.Meta().Loc
	if right.Start.Offset != 4 || right.End.Offset != 9 {
		t.Errorf("right span %d..%d, want 4..9", right.Start.Offset, right.End.Offset)
	}
}

func TestOmitLocations(t *testing.T) {
	program := testProgram(t, "var x = f(1) + 2;", WithoutLocations())
	if program.Loc != nil {
		t.Errorf("program has a location")
	}
	decl := program.Body[0].(*ast.VariableDeclaration)
	if decl.Loc != nil || decl.Declarations[0].Loc != nil {
		t.Errorf("nodes carry locations with WithoutLocations")
	}
}

func TestMultilineLocations(t *testing.T) {
	program := testProgram(t, "a = 1\nbb = 2\n")
	second := program.Body[1].(*ast.ExpressionStatement)
	if second.Loc.Start.Line != 1 || second.Loc.Start.Column != 0 {
		t.Errorf("second statement starts at %d:%d, want 1:0", second.Loc.Start.Line, second.Loc.Start.Column)
	}
	if second.Loc.End.Offset != 12 {
		t.Errorf("second statement ends at %d, want 12", second.Loc.End.Offset)
	}
}
