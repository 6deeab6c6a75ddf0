package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/symlang/symlang/internal/lexer"
	"github.com/symlang/symlang/internal/token"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Tokenize a file or expression and print the resulting tokens",
	Args:  cobra.MaximumNArgs(1),
	RunE:  tokensScript,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
}

func tokensScript(_ *cobra.Command, args []string) error {
	source, _, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}
	toks, lexErrs := dumpTokenize(source)
	printTokenDump(toks)
	if len(lexErrs) > 0 {
		return fmt.Errorf("tokenizing failed with %d error(s)", len(lexErrs))
	}
	return nil
}

func dumpTokenize(source string) ([]token.Token, []lexer.Error) {
	return lexer.Tokenize(source)
}

func printTokenDump(toks []token.Token) {
	for _, t := range toks {
		if t.Type == token.EOF {
			break
		}
		fmt.Fprintf(os.Stdout, "%-12s %-8q %s\n", t.Type, t.Literal, t.Pos)
	}
}
