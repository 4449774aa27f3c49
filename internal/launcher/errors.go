package launcher

import "fmt"

// Exit codes reported when the engine never starts.
const (
	ExitNotFound      = 127
	ExitNotExecutable = 126
	ExitStartFailure  = 1
)

// StartError reports that the engine process could not be started.
type StartError struct {
	Binary   string
	ExitCode int
	Err      error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("start %s: %v", e.Binary, e.Err)
}

func (e *StartError) Unwrap() error {
	return e.Err
}

// ChildFailureError reports that the engine ran and exited non-zero.
// ExitCode is what the runner itself should exit with.
type ChildFailureError struct {
	ExitCode int
	// Signal is set when the engine was killed by a signal.
	Signal string
}

func (e *ChildFailureError) Error() string {
	if e.Signal != "" {
		return fmt.Sprintf("engine killed by %s (exit code %d)", e.Signal, e.ExitCode)
	}
	return fmt.Sprintf("engine exited with code %d", e.ExitCode)
}
