package errors

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-escript/internal/lexer"
)

func TestPointer(t *testing.T) {
	source := "var x = ;\nvar y = 2;"
	got := Pointer(source, lexer.Position{Line: 0, Column: 8, Offset: 8})
	want := "var x = ;\n        ^"
	if got != want {
		t.Errorf("Pointer = %q, want %q", got, want)
	}
}

func TestPointerSecondLine(t *testing.T) {
	source := "ok\nbad token here"
	got := Pointer(source, lexer.Position{Line: 1, Column: 4, Offset: 7})
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0] != "bad token here" {
		t.Errorf("line = %q", lines[0])
	}
	if lines[1] != "    ^" {
		t.Errorf("caret row = %q", lines[1])
	}
}

func TestPointerOutOfRange(t *testing.T) {
	if got := Pointer("one line", lexer.Position{Line: 5}); got != "" {
		t.Errorf("Pointer = %q, want empty", got)
	}
}

func TestSourceErrorFormat(t *testing.T) {
	e := NewSourceError(lexer.Position{Line: 0, Column: 4, Offset: 4}, "Unexpected token ;", "var ;", "demo.es")
	out := e.Format(false)
	for _, want := range []string{"demo.es:1:5", "var ;", "    ^", "Unexpected token ;"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("plain format contains ANSI codes")
	}
	if colored := e.Format(true); !strings.Contains(colored, "\033[1;31m") {
		t.Errorf("colored format missing caret color")
	}
}

func TestErrorInterface(t *testing.T) {
	e := NewSourceError(lexer.Position{}, "boom", "x", "")
	if !strings.Contains(e.Error(), "boom") {
		t.Errorf("Error() = %q", e.Error())
	}
}
