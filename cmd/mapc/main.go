// Command mapc compiles a declarative RDF-mapping document into an
// algebraic operator plan.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/mapc/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
