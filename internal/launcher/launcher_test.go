package launcher

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"evalrunner/internal/invocation"
	"evalrunner/internal/testutil"
)

func testInvocation(base invocation.Env) invocation.Invocation {
	overlay := invocation.Env{"EVALUATOR_BENCHMARK_PACK_ID": "pack1", "OPENAI_API_BASE": "http://x"}
	return invocation.Invocation{
		Args:    []string{"eval", "--model", "m", "--task", "t1"},
		Overlay: overlay,
		Env:     invocation.Env{"PATH": os.Getenv("PATH")}.Overlay(base).Overlay(overlay),
	}
}

func TestRunPassesArgsAndEnv(t *testing.T) {
	engine := testutil.NewFakeEngine(t, testutil.EngineOptions{Stdout: "engine output\n"})
	var stdout bytes.Buffer
	l := &Launcher{Binary: engine.Path, Stdout: &stdout, Stderr: &bytes.Buffer{}}

	result, err := l.Run(testutil.Context(t), testInvocation(invocation.Env{"AMBIENT": "kept"}))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.ExitCode != 0 || result.Signal != "" {
		t.Fatalf("unexpected result %+v", result)
	}
	if diff := cmp.Diff([]string{"eval", "--model", "m", "--task", "t1"}, engine.Args(t)); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
	env := engine.Env(t)
	if env["EVALUATOR_BENCHMARK_PACK_ID"] != "pack1" || env["OPENAI_API_BASE"] != "http://x" || env["AMBIENT"] != "kept" {
		t.Fatalf("unexpected child env %v", env)
	}
	if stdout.String() != "engine output\n" {
		t.Fatalf("expected child stdout passed through, got %q", stdout.String())
	}
}

func TestRunPropagatesExitCode(t *testing.T) {
	engine := testutil.NewFakeEngine(t, testutil.EngineOptions{ExitCode: 3, Stderr: "boom"})
	var stderr bytes.Buffer
	l := &Launcher{Binary: engine.Path, Stdout: &bytes.Buffer{}, Stderr: &stderr}

	result, err := l.Run(testutil.Context(t), testInvocation(nil))
	var failure *ChildFailureError
	if !errors.As(err, &failure) {
		t.Fatalf("expected *ChildFailureError, got %T (%v)", err, err)
	}
	if failure.ExitCode != 3 || result.ExitCode != 3 {
		t.Fatalf("expected exit code 3, got %d / %d", failure.ExitCode, result.ExitCode)
	}
	if stderr.String() != "boom" {
		t.Fatalf("expected child stderr passed through, got %q", stderr.String())
	}
}

func TestRunReportsSignal(t *testing.T) {
	engine := testutil.NewFakeEngine(t, testutil.EngineOptions{Signal: "TERM"})
	l := &Launcher{Binary: engine.Path, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	result, err := l.Run(testutil.Context(t), testInvocation(nil))
	var failure *ChildFailureError
	if !errors.As(err, &failure) {
		t.Fatalf("expected *ChildFailureError, got %T (%v)", err, err)
	}
	if result.ExitCode != 128+15 || result.Signal != "SIGTERM" {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestRunMissingBinary(t *testing.T) {
	l := &Launcher{Binary: filepath.Join(t.TempDir(), "missing-engine")}

	result, err := l.Run(testutil.Context(t), testInvocation(nil))
	var startErr *StartError
	if !errors.As(err, &startErr) {
		t.Fatalf("expected *StartError, got %T (%v)", err, err)
	}
	if startErr.ExitCode != ExitNotFound || result.ExitCode != ExitNotFound {
		t.Fatalf("expected exit code %d, got %d", ExitNotFound, startErr.ExitCode)
	}
}

func TestRunBinaryNotOnPath(t *testing.T) {
	l := &Launcher{Binary: "evalrunner-no-such-engine"}

	_, err := l.Run(testutil.Context(t), testInvocation(invocation.Env{"PATH": t.TempDir()}))
	var startErr *StartError
	if !errors.As(err, &startErr) {
		t.Fatalf("expected *StartError, got %T (%v)", err, err)
	}
	if !errors.Is(err, exec.ErrNotFound) || startErr.ExitCode != ExitNotFound {
		t.Fatalf("expected not-found start error, got %v (code %d)", err, startErr.ExitCode)
	}
}
