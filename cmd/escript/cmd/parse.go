package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/go-escript/internal/errors"
	"github.com/cwbudde/go-escript/internal/lexer"
	"github.com/cwbudde/go-escript/internal/parser"
	"github.com/cwbudde/go-escript/pkg/ast"
	"github.com/cwbudde/go-escript/pkg/escript"
	"github.com/spf13/cobra"
)

var (
	parseExpr    bool
	parseDumpAST bool
	parseLogs    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse EScript source code and display the AST",
	Long: `Parse EScript source code and display the Abstract Syntax Tree (AST).

If no file is provided, reads from stdin.
Use -e to parse a single expression from the command line.
Use --dump-ast to show the full AST structure.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpr, "expression", "e", false, "parse an expression from the command line")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure")
	parseCmd.Flags().BoolVar(&parseLogs, "logs", false, "emit parser progress logs to stderr")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, filename, err := readInput(parseExpr, args)
	if err != nil {
		return err
	}

	var opts []escript.Option
	if parseLogs {
		opts = append(opts, escript.WithLogOutput(os.Stderr))
	}

	var node ast.Node
	if parseExpr {
		node, err = escript.ParseExpression(input, opts...)
	} else {
		node, err = escript.Parse(input, opts...)
	}
	if err != nil {
		printParseError(err, input, filename)
		return fmt.Errorf("parsing failed")
	}

	if parseDumpAST {
		fmt.Println(ast.Dump(node))
	} else {
		fmt.Println(node.String())
	}
	return nil
}

// readInput resolves the source text from an inline expression, a file
// argument, or stdin.
func readInput(inline bool, args []string) (input, filename string, err error) {
	if inline {
		if len(args) == 0 {
			return "", "", fmt.Errorf("no expression provided")
		}
		return args[0], "<eval>", nil
	}
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("error reading file: %w", err)
		}
		return string(data), args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("error reading stdin: %w", err)
	}
	return string(data), "<stdin>", nil
}

// printParseError renders an error with source context and caret when a
// position is available.
func printParseError(err error, source, filename string) {
	switch e := err.(type) {
	case *parser.SyntaxError:
		if e.Pos != nil {
			fmt.Fprintln(os.Stderr, errors.NewSourceError(*e.Pos, e.Msg, source, filename).Format(true))
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", e.Msg)
	case *lexer.LexError:
		msg := fmt.Sprintf("unexpected input %q", e.Remaining)
		fmt.Fprintln(os.Stderr, errors.NewSourceError(e.Pos, msg, source, filename).Format(true))
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
