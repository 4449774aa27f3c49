package cli

import (
	"fmt"
	"io"
)

func runVersion(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fmt.Fprintln(stdout, Version)
		return ExitOK
	}
}
