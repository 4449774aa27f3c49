package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"evalrunner/internal/jobspec"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		positional, code, ok := parseArgs(cmd, flags, args, stdout, stderr)
		if !ok {
			return code
		}
		if !requireArgs(cmd, positional, 1, stderr) {
			return ExitUsage
		}

		job, err := jobspec.Load(positional[0])
		if err != nil {
			fmt.Fprintf(stderr, "%s\n%s\n", stylize(stderr, "Validation failed:", colorFail), err.Error())
			return ExitError
		}

		fmt.Fprintln(stdout, stylize(stdout, "JobSpec OK", colorOK))
		if len(job.IgnoredFields) > 0 {
			fmt.Fprintf(stdout, "Ignored unknown fields: %s\n", strings.Join(job.IgnoredFields, ", "))
		}
		return ExitOK
	}
}
