package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"al.essio.dev/pkg/shellescape"
)

// EngineOptions controls what a fake engine does once started.
type EngineOptions struct {
	ExitCode int
	// Signal, if set, makes the engine kill itself with that signal name
	// (for example "TERM") instead of exiting.
	Signal string
	Stdout string
	Stderr string
	// Sleep, if positive, replaces the engine with a sleep of that many
	// seconds after it records its inputs.
	Sleep int
}

// FakeEngine is a shell script standing in for the evaluation engine. It
// records its arguments and environment for later inspection.
type FakeEngine struct {
	Path string
	dir  string
}

// NewFakeEngine writes an executable engine script into a temp dir.
func NewFakeEngine(t testing.TB, opts EngineOptions) *FakeEngine {
	t.Helper()
	dir := t.TempDir()
	var script strings.Builder
	script.WriteString("#!/bin/sh\n")
	fmt.Fprintf(&script, "printf '%%s\\n' \"$@\" > %s\n", shellescape.Quote(filepath.Join(dir, "args")))
	fmt.Fprintf(&script, "env > %s\n", shellescape.Quote(filepath.Join(dir, "env")))
	if opts.Stdout != "" {
		fmt.Fprintf(&script, "printf '%%s' %s\n", shellescape.Quote(opts.Stdout))
	}
	if opts.Stderr != "" {
		fmt.Fprintf(&script, "printf '%%s' %s >&2\n", shellescape.Quote(opts.Stderr))
	}
	if opts.Sleep > 0 {
		fmt.Fprintf(&script, "exec sleep %d\n", opts.Sleep)
	}
	if opts.Signal != "" {
		fmt.Fprintf(&script, "kill -%s $$\n", opts.Signal)
	}
	fmt.Fprintf(&script, "exit %d\n", opts.ExitCode)

	path := filepath.Join(dir, "lighteval")
	if err := os.WriteFile(path, []byte(script.String()), 0o755); err != nil {
		t.Fatalf("write fake engine: %v", err)
	}
	return &FakeEngine{Path: path, dir: dir}
}

// Ran reports whether the engine was started at least once.
func (e *FakeEngine) Ran() bool {
	_, err := os.Stat(filepath.Join(e.dir, "args"))
	return err == nil
}

// Args returns the arguments of the last run.
func (e *FakeEngine) Args(t testing.TB) []string {
	t.Helper()
	data := e.read(t, "args")
	if data == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(data, "\n"), "\n")
}

// Env returns the environment of the last run.
func (e *FakeEngine) Env(t testing.TB) map[string]string {
	t.Helper()
	env := map[string]string{}
	for _, line := range strings.Split(e.read(t, "env"), "\n") {
		key, value, ok := strings.Cut(line, "=")
		if ok && key != "" {
			env[key] = value
		}
	}
	return env
}

func (e *FakeEngine) read(t testing.TB, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(e.dir, name))
	if err != nil {
		t.Fatalf("fake engine did not record %s: %v", name, err)
	}
	return string(data)
}
