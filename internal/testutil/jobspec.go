package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteJobSpec writes body to name under dir and returns the file path.
func WriteJobSpec(t testing.TB, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write jobspec: %v", err)
	}
	return path
}

// JobSpecJSON returns a valid job document writing to outputDir.
func JobSpecJSON(outputDir string) string {
	return `{
  "benchmark_pack_id": "pack1",
  "backend": {"type": "litellm", "model_name": "m", "provider": "openai_compatible", "base_url": "http://x"},
  "tasks": [{"id": "t1", "fewshot": 0}],
  "artifacts": {"output_dir": "` + outputDir + `"}
}`
}
