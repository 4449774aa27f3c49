//go:build unix

package launcher

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// signalStatus reports the shell-style exit code and signal name for a
// child terminated by a signal.
func signalStatus(state *os.ProcessState) (int, string, bool) {
	status, ok := state.Sys().(syscall.WaitStatus)
	if !ok || !status.Signaled() {
		return 0, "", false
	}
	sig := status.Signal()
	name := unix.SignalName(sig)
	if name == "" {
		name = sig.String()
	}
	return 128 + int(sig), name, true
}
