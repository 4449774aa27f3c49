package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/chainguard-dev/clog"

	"evalrunner/internal/logging"
)

// DefaultTimeout bounds tests that wait on a child process.
const DefaultTimeout = 10 * time.Second

// Context returns a context carrying a discarding logger, cancelled when the
// test ends or the timeout elapses, whichever comes first.
func Context(t testing.TB) context.Context {
	t.Helper()
	timeout := DefaultTimeout
	if dt, ok := t.(interface{ Deadline() (time.Time, bool) }); ok {
		if deadline, ok := dt.Deadline(); ok {
			remaining := time.Until(deadline) - time.Second
			if remaining > 0 && remaining < timeout {
				timeout = remaining
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return clog.WithLogger(ctx, logging.Discard())
}
