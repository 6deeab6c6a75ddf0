// Command symlang runs programs written in the symbol-only scripting
// language implemented by the internal packages of this module: it is
// the host that supplies program entry, terminal I/O, and source file
// discovery, none of which the core interpreter concerns itself with.
package main

import (
	"fmt"
	"os"

	"github.com/symlang/symlang/cmd/symlang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
