package jobspec

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// TestLoadJSON verifies a JSON file loads into a JobSpec.
func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "job.json", minimalJobSpec)
	job, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if job.BenchmarkPackID != "pack1" {
		t.Fatalf("unexpected pack id %q", job.BenchmarkPackID)
	}
}

// TestLoadYAML verifies YAML documents follow the same schema.
func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "job.yaml", `benchmark_pack_id: pack1
backend:
  type: litellm
  model_name: m
tasks:
  - id: t1
    fewshot: 1
    params:
      ratio: 0.25
artifacts:
  output_dir: /out
  save_details: true
`)
	job, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !job.Artifacts.SaveDetails || job.Tasks[0].Fewshot != 1 {
		t.Fatalf("unexpected job: %+v", job)
	}
	if job.Tasks[0].Params["ratio"] != json.Number("0.25") {
		t.Fatalf("unexpected params: %#v", job.Tasks[0].Params)
	}
}

// TestLoadMissingFile verifies read failures are document errors.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	var docErr *DocumentError
	if !errors.As(err, &docErr) {
		t.Fatalf("expected *DocumentError, got %T (%v)", err, err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}

// TestLoadMalformedDocument verifies parse failures are document errors.
func TestLoadMalformedDocument(t *testing.T) {
	path := writeFile(t, "job.json", `{"benchmark_pack_id": `)
	_, err := Load(path)
	var docErr *DocumentError
	if !errors.As(err, &docErr) {
		t.Fatalf("expected *DocumentError, got %T (%v)", err, err)
	}
	if docErr.Path != path {
		t.Fatalf("expected path %q, got %q", path, docErr.Path)
	}
}

// TestLoadInvalidDocument verifies schema failures are validation errors.
func TestLoadInvalidDocument(t *testing.T) {
	path := writeFile(t, "job.json", `{"benchmark_pack_id": "p"}`)
	_, err := Load(path)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	for _, field := range []string{"backend", "tasks", "artifacts"} {
		if !verr.HasField(field) {
			t.Fatalf("expected issue for %s, got %q", field, verr.Error())
		}
	}
}
