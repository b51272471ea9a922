package parser

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/cwbudde/go-escript/internal/lexer"
	"github.com/cwbudde/go-escript/pkg/ast"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFixtureSnapshots parses every script under testdata and snapshots the
// dumped AST, using go-snaps so structural regressions show up as diffs.
func TestFixtureSnapshots(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "testdata", "*.es"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("no fixtures found")
	}
	sort.Strings(paths)

	for _, path := range paths {
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}
			source := string(data)

			tokens, err := lexer.New(source).Tokenize()
			if err != nil {
				t.Fatalf("lex %s: %v", name, err)
			}
			p := New(tokens, source)
			program, err := p.ParseProgram()
			if err != nil {
				t.Fatalf("parse %s: %v", name, err)
			}
			if len(p.Warnings()) != 0 {
				t.Fatalf("parse %s warnings: %v", name, p.Warnings())
			}

			snaps.MatchSnapshot(t, ast.Dump(program))
		})
	}
}
