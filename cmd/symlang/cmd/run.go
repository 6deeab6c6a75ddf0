package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/symlang/symlang/internal/errors"
	"github.com/symlang/symlang/internal/interp"
	"github.com/symlang/symlang/internal/parser"
)

var (
	evalExpr string
	dumpAST  bool
	dumpToks bool
	traceRun bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a program file or inline expression",
	Long: `Execute a program from a file or an inline expression.

Examples:
  # Run a script file
  symlang run script.sym

  # Evaluate inline code
  symlang run -e '"Hello " + "World"'

  # Run with AST dump for debugging
  symlang run --dump-ast script.sym`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST before running")
	runCmd.Flags().BoolVar(&dumpToks, "dump-tokens", false, "dump the token stream before running")
	runCmd.Flags().BoolVar(&traceRun, "trace", false, "print a trace line before execution starts")
}

func runScript(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	if dumpToks {
		toks, lexErrs := dumpTokenize(source)
		printTokenDump(toks)
		if len(lexErrs) > 0 {
			return fmt.Errorf("tokenizing failed with %d error(s)", len(lexErrs))
		}
	}

	if dumpAST {
		p := parser.New(source)
		program := p.ParseProgram()
		fmt.Println("AST:")
		fmt.Println(program.String())
		fmt.Println()
	}

	if traceRun {
		fmt.Fprintf(os.Stderr, "[running %s]\n", filename)
	}

	host := newStdHost(os.Stdin, os.Stdout)
	ev := interp.New(host)
	diags, _ := interp.Evaluate(source, filename, ev)
	if len(diags) > 0 {
		fmt.Fprint(os.Stderr, errors.FormatErrors(diags, true))
		fmt.Fprintln(os.Stderr)
		return fmt.Errorf("failed with %d error(s)", len(diags))
	}
	return nil
}

// readSource resolves the -e flag and a positional file argument into a
// source string and a display name for diagnostics.
func readSource(expr string, args []string) (source, filename string, err error) {
	if expr != "" {
		return expr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline code")
}
