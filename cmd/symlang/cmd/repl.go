package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/symlang/symlang/internal/errors"
	"github.com/symlang/symlang/internal/interp"
)

// runSentinel is the v1.0 surface's flush line: the REPL buffers
// incoming lines and evaluates them as one program as soon as a line
// consisting of exactly this word is entered.
const runSentinel = "run"

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Start an interactive session. Lines are buffered until a line
containing only 'run' is entered, at which point the buffered lines are
evaluated as a single program against the session's persistent
environment.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	host := newStdHost(os.Stdin, os.Stdout)
	ev := interp.New(host)

	var buffered []string
	for {
		line, ok := host.ReadLine()
		if !ok {
			break
		}
		if strings.TrimSpace(line) == runSentinel {
			source := strings.Join(buffered, "\n")
			buffered = buffered[:0]
			diags, _ := interp.Evaluate(source, "<repl>", ev)
			if len(diags) > 0 {
				fmt.Fprint(os.Stderr, errors.FormatErrors(diags, true))
				fmt.Fprintln(os.Stderr)
			}
			continue
		}
		buffered = append(buffered, line)
	}
	return nil
}
