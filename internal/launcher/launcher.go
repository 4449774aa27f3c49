// Package launcher runs the evaluation engine for a compiled invocation and
// reports how it exited.
package launcher

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"os/signal"
	"time"

	"github.com/chainguard-dev/clog"

	"evalrunner/internal/invocation"
)

// DefaultBinary is the engine executable looked up on PATH.
const DefaultBinary = "lighteval"

// Launcher starts the engine with the invocation's arguments and environment.
// Nil stdio fields inherit the runner's own streams.
type Launcher struct {
	Binary string
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// ForwardSignals are relayed to the engine while it runs instead of
	// terminating the runner.
	ForwardSignals []os.Signal
}

// Result describes a finished engine run.
type Result struct {
	ExitCode int
	Signal   string
	Duration time.Duration
}

// Run starts the engine and blocks until it exits. A non-zero exit yields a
// *ChildFailureError alongside the result; a failed start yields a
// *StartError.
func (l *Launcher) Run(ctx context.Context, inv invocation.Invocation) (Result, error) {
	binary := l.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	log := clog.FromContext(ctx)
	log.Info("launching engine", "command", invocation.FormatCommand(binary, inv.Args))
	log.Debug("engine environment overlay", "keys", inv.Overlay.Keys())

	cmd := exec.Command(binary, inv.Args...)
	cmd.Dir = l.Dir
	cmd.Env = inv.Env.List()
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if l.Stdin != nil {
		cmd.Stdin = l.Stdin
	}
	if l.Stdout != nil {
		cmd.Stdout = l.Stdout
	}
	if l.Stderr != nil {
		cmd.Stderr = l.Stderr
	}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		code := startExitCode(err)
		return Result{ExitCode: code}, &StartError{Binary: binary, ExitCode: code, Err: err}
	}
	stop := l.forward(ctx, cmd.Process)
	waitErr := cmd.Wait()
	stop()
	result := Result{Duration: time.Since(start)}

	state := cmd.ProcessState
	if state == nil {
		result.ExitCode = ExitStartFailure
		return result, &StartError{Binary: binary, ExitCode: ExitStartFailure, Err: waitErr}
	}
	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		log.Warn("engine stdio copy failed", "error", waitErr)
	}
	if code, name, ok := signalStatus(state); ok {
		result.ExitCode = code
		result.Signal = name
	} else {
		result.ExitCode = state.ExitCode()
	}
	log.Info("engine exited", "exit_code", result.ExitCode, "signal", result.Signal, "duration", result.Duration)
	if result.ExitCode != 0 {
		return result, &ChildFailureError{ExitCode: result.ExitCode, Signal: result.Signal}
	}
	return result, nil
}

func startExitCode(err error) int {
	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return ExitNotFound
	case errors.Is(err, fs.ErrPermission):
		return ExitNotExecutable
	default:
		return ExitStartFailure
	}
}

func (l *Launcher) forward(ctx context.Context, process *os.Process) func() {
	if len(l.ForwardSignals) == 0 {
		return func() {}
	}
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, l.ForwardSignals...)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigs:
				clog.FromContext(ctx).Info("forwarding signal to engine", "signal", sig.String())
				if err := process.Signal(sig); err != nil {
					clog.FromContext(ctx).Warn("forward signal failed", "signal", sig.String(), "error", err)
				}
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(sigs)
		close(done)
	}
}
