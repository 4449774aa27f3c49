package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"evalrunner/internal/jobspec"
)

func runSchema(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		if !requireArgs(cmd, args, 0, stderr) {
			return ExitUsage
		}
		data, err := json.MarshalIndent(jobspec.Schema(), "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "Failed to encode schema: %v\n", err)
			return ExitError
		}
		fmt.Fprintln(stdout, string(data))
		return ExitOK
	}
}
