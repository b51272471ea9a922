package cmd

import (
	"fmt"

	"github.com/cwbudde/go-escript/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	lexExpr  string
	showPos  bool
	showType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize an EScript file or expression",
	Long: `Tokenize (lex) an EScript program and print the resulting tokens.

This command is useful for debugging the lexer and understanding how
EScript source code is tokenized.

Examples:
  # Tokenize a script file
  escript lex script.es

  # Tokenize an inline expression
  escript lex -e "var x = 42;"

  # Show token types and positions
  escript lex --show-type --show-pos script.es`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
}

func runLex(cmd *cobra.Command, args []string) error {
	var input, filename string
	var err error
	if lexExpr != "" {
		input, filename = lexExpr, "<eval>"
	} else {
		input, filename, err = readInput(false, args)
		if err != nil {
			return err
		}
	}

	tokens, err := lexer.New(input).Tokenize()
	if err != nil {
		printParseError(err, input, filename)
		return fmt.Errorf("tokenization failed")
	}

	for _, tok := range tokens {
		line := tok.Value
		if line == "" {
			line = tok.Type.String()
		}
		if showType {
			line = fmt.Sprintf("%-14s %s", tok.Type, line)
		}
		if showPos && tok.Span != nil {
			line = fmt.Sprintf("%8s  %s", tok.Span.Start, line)
		}
		fmt.Println(line)
	}
	return nil
}
