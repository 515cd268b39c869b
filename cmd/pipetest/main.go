// pipetest is the command-line front end for the pipeline test harness:
// it validates and describes pipeline definition files.
package main

import (
	"fmt"
	"os"

	"github.com/HYDPublic/pipelinetesting/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
