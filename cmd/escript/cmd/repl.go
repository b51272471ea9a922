package cmd

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/cwbudde/go-escript/pkg/ast"
	"github.com/cwbudde/go-escript/pkg/escript"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Color groups for REPL output: results in yellow, errors in red,
// informational lines in cyan.
var (
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
)

var replDump bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive parse-and-print loop",
	Long: `Start an interactive session that parses each input line as a program
and prints the resulting AST. Type "exit" or press Ctrl-D to quit.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replDump, "dump-ast", false, "print the full AST structure instead of the compact form")
}

func runRepl(cmd *cobra.Command, args []string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "es> ",
		HistoryFile:     "/tmp/escript_repl_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		exitWithError("failed to start repl: %v", err)
	}
	defer rl.Close()

	cyanColor.Printf("escript %s — type EScript code, \"exit\" to quit\n", Version)

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		program, err := escript.Parse(line)
		if err != nil {
			redColor.Println(err.Error())
			continue
		}
		if replDump {
			yellowColor.Println(ast.Dump(program))
		} else {
			yellowColor.Println(program.String())
		}
	}
}
