package parser

import (
	"testing"

	"github.com/cwbudde/go-escript/pkg/ast"
)

func testObject(t *testing.T, input string) *ast.ObjectExpression {
	t.Helper()
	obj, ok := testExpression(t, input).(*ast.ObjectExpression)
	if !ok {
		t.Fatalf("%q is not an object expression", input)
	}
	return obj
}

func TestObjectProperties(t *testing.T) {
	obj := testObject(t, "{a: 1, b: f(), c: [1]}")
	if len(obj.Properties) != 3 {
		t.Fatalf("%d members", len(obj.Properties))
	}
	p := obj.Properties[0].(*ast.ObjectProperty)
	if p.Key.(*ast.Identifier).Name != "a" || p.Computed || p.Shorthand {
		t.Errorf("first property wrong: %+v", p)
	}
	if p.Value.(*ast.NumericLiteral).Value != 1 {
		t.Errorf("value wrong")
	}
}

func TestShorthandProperty(t *testing.T) {
	obj := testObject(t, "{a, b}")
	for i, name := range []string{"a", "b"} {
		p := obj.Properties[i].(*ast.ObjectProperty)
		if !p.Shorthand {
			t.Errorf("member %d not shorthand", i)
		}
		if p.Key.(*ast.Identifier).Name != name {
			t.Errorf("member %d key = %v", i, p.Key)
		}
		value := p.Value.(*ast.Identifier)
		if value.Name != name {
			t.Errorf("member %d value = %v", i, p.Value)
		}
		if value == p.Key.(*ast.Identifier) {
			t.Errorf("member %d shares key and value nodes", i)
		}
	}
}

func TestComputedKey(t *testing.T) {
	obj := testObject(t, "{[k]: 1, [a + b]: 2}")
	p := obj.Properties[0].(*ast.ObjectProperty)
	if !p.Computed {
		t.Errorf("not computed")
	}
	p = obj.Properties[1].(*ast.ObjectProperty)
	if _, ok := p.Key.(*ast.BinaryExpression); !ok {
		t.Errorf("computed key is %T", p.Key)
	}
}

func TestKeywordKeys(t *testing.T) {
	obj := testObject(t, "{new: 1, delete: 2, for: 3}")
	names := []string{"new", "delete", "for"}
	for i, want := range names {
		p := obj.Properties[i].(*ast.ObjectProperty)
		if p.Key.(*ast.Identifier).Name != want {
			t.Errorf("key %d = %v, want %q", i, p.Key, want)
		}
	}
}

func TestObjectMethods(t *testing.T) {
	obj := testObject(t, "{m(a, b) { return a; }}")
	m := obj.Properties[0].(*ast.ObjectMethod)
	if m.MethodKind != "method" {
		t.Errorf("kind = %q", m.MethodKind)
	}
	if len(m.Params) != 2 {
		t.Errorf("%d params", len(m.Params))
	}
}

func TestGettersAndSetters(t *testing.T) {
	obj := testObject(t, "{get x() { return 1; }, set x(v) { v; }}")
	g := obj.Properties[0].(*ast.ObjectMethod)
	if g.MethodKind != "get" || g.Key.(*ast.Identifier).Name != "x" {
		t.Errorf("getter wrong: %+v", g)
	}
	if len(g.Params) != 0 {
		t.Errorf("getter has %d params", len(g.Params))
	}
	s := obj.Properties[1].(*ast.ObjectMethod)
	if s.MethodKind != "set" || len(s.Params) != 1 {
		t.Errorf("setter wrong: %+v", s)
	}
}

// `get`/`set` only introduce an accessor when another key follows; alone
// they are ordinary keys.
func TestGetAsPlainKey(t *testing.T) {
	obj := testObject(t, "{get: 1, set: 2, get g() { return 3; }}")
	if p, ok := obj.Properties[0].(*ast.ObjectProperty); !ok || p.Key.(*ast.Identifier).Name != "get" {
		t.Errorf("plain get key wrong: %v", obj.Properties[0])
	}
	if p, ok := obj.Properties[1].(*ast.ObjectProperty); !ok || p.Key.(*ast.Identifier).Name != "set" {
		t.Errorf("plain set key wrong: %v", obj.Properties[1])
	}
	if m, ok := obj.Properties[2].(*ast.ObjectMethod); !ok || m.MethodKind != "get" {
		t.Errorf("accessor wrong: %v", obj.Properties[2])
	}
}

func TestGetShorthand(t *testing.T) {
	obj := testObject(t, "{get}")
	p := obj.Properties[0].(*ast.ObjectProperty)
	if !p.Shorthand || p.Key.(*ast.Identifier).Name != "get" {
		t.Errorf("get shorthand wrong: %+v", p)
	}
}

func TestSpreadMember(t *testing.T) {
	obj := testObject(t, "{a: 1, ...rest}")
	sp, ok := obj.Properties[1].(*ast.SpreadElement)
	if !ok {
		t.Fatalf("member is %T", obj.Properties[1])
	}
	if sp.Argument.(*ast.Identifier).Name != "rest" {
		t.Errorf("spread argument wrong")
	}
}

func TestAssignmentProperty(t *testing.T) {
	obj := testObject(t, "{a = 1}")
	p := obj.Properties[0].(*ast.ObjectProperty)
	if !p.Shorthand {
		t.Errorf("assignment property not shorthand")
	}
	ap, ok := p.Value.(*ast.AssignmentPattern)
	if !ok {
		t.Fatalf("value is %T", p.Value)
	}
	if ap.Left.(*ast.Identifier).Name != "a" {
		t.Errorf("left wrong")
	}
}

func TestObjectMemberErrors(t *testing.T) {
	err := testError(t, "x = {a 1};")
	if err.Msg != "Unexpected token 1, expected : or = or (" {
		t.Errorf("message = %q", err.Msg)
	}
}
