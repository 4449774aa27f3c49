package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"evalrunner/internal/testutil"
)

// runCLI invokes the CLI and returns stdout, stderr, and exit code.
func runCLI(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var out, err bytes.Buffer
	exitCode := Run(args, &out, &err)
	return out.String(), err.String(), exitCode
}

// useEngine points the runner at a fake engine and switches logs to JSON.
func useEngine(t *testing.T, opts testutil.EngineOptions) *testutil.FakeEngine {
	t.Helper()
	engine := testutil.NewFakeEngine(t, opts)
	t.Setenv("RUNNER_ENGINE_BIN", engine.Path)
	t.Setenv("RUNNER_LOG_FORMAT", "json")
	t.Setenv("RUNNER_LOG_LEVEL", "debug")
	return engine
}

// logRecords decodes the JSON log lines in stderr, skipping anything else.
func logRecords(t *testing.T, stderr string) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(stderr, "\n") {
		if !strings.HasPrefix(line, "{") {
			continue
		}
		var record map[string]any
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			t.Fatalf("decode log line %q: %v", line, err)
		}
		records = append(records, record)
	}
	return records
}
