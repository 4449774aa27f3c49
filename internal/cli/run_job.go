package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/chainguard-dev/clog"

	"evalrunner/internal/invocation"
	"evalrunner/internal/jobspec"
	"evalrunner/internal/launcher"
)

// processEnv snapshots the inherited environment.
var processEnv = os.Environ

// runEngine starts the engine; tests replace it to avoid spawning processes.
var runEngine = func(ctx context.Context, l *launcher.Launcher, inv invocation.Invocation) (launcher.Result, error) {
	return l.Run(ctx, inv)
}

func runRunJob(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		dryRun := flags.Bool("dry-run", false, "Print the engine command instead of running it")
		positional, code, ok := parseArgs(cmd, flags, args, stdout, stderr)
		if !ok {
			return code
		}
		if !requireArgs(cmd, positional, 1, stderr) {
			return ExitUsage
		}

		ctx, settings, ok := prepare(stderr)
		if !ok {
			return ExitError
		}
		log := clog.FromContext(ctx)

		job, err := jobspec.Load(positional[0])
		if err != nil {
			fmt.Fprintf(stderr, "%s\n%v\n", stylize(stderr, "Invalid JobSpec:", colorFail), err)
			return ExitError
		}
		log.Info("loaded jobspec", "path", positional[0], "benchmark_pack_id", job.BenchmarkPackID, "tasks", len(job.Tasks))
		if len(job.IgnoredFields) > 0 {
			log.Debug("ignoring unknown jobspec fields", "fields", job.IgnoredFields)
		}

		inv := invocation.Compile(job, invocation.EnvFromList(processEnv()))
		if *dryRun {
			line := invocation.FormatCommand(settings.EngineBinary, inv.Args)
			if overlay := invocation.FormatOverlay(inv.Overlay); overlay != "" {
				line = overlay + " " + line
			}
			fmt.Fprintln(stdout, line)
			return ExitOK
		}

		l := &launcher.Launcher{
			Binary:         settings.EngineBinary,
			Stdout:         stdout,
			Stderr:         stderr,
			ForwardSignals: []os.Signal{os.Interrupt, syscall.SIGTERM},
		}
		result, err := runEngine(ctx, l, inv)
		if err != nil {
			var failure *launcher.ChildFailureError
			var startErr *launcher.StartError
			switch {
			case errors.As(err, &failure):
				fmt.Fprintf(stderr, "%s %v\n", stylize(stderr, "Run failed:", colorFail), err)
				return failure.ExitCode
			case errors.As(err, &startErr):
				fmt.Fprintf(stderr, "%s %v\n", stylize(stderr, "Failed to start engine:", colorFail), err)
				return startErr.ExitCode
			default:
				fmt.Fprintf(stderr, "Run failed: %v\n", err)
				return ExitError
			}
		}
		return result.ExitCode
	}
}
