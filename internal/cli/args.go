package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// parseArgs parses flags that may appear before or after positional
// arguments and returns the positionals. ok is false when the caller should
// return code immediately.
func parseArgs(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (positional []string, code int, ok bool) {
	for {
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return nil, ExitOK, false
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return nil, ExitUsage, false
		}
		rest := flags.Args()
		if len(rest) == 0 {
			return positional, ExitOK, true
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// requireArgs checks the number of positionals.
func requireArgs(cmd *Command, positional []string, want int, stderr io.Writer) bool {
	if len(positional) == want {
		return true
	}
	if len(positional) < want {
		fmt.Fprintf(stderr, "%s: missing required argument\n", cmd.Name)
	} else {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(positional[want:], " "))
	}
	printCommandUsage(cmd, stderr)
	return false
}
