package jobspec

import (
	"strings"
	"testing"
)

const minimalJobSpec = `{
  "benchmark_pack_id": "pack1",
  "backend": {"type": "litellm", "model_name": "m", "provider": "openai_compatible", "base_url": "http://x"},
  "tasks": [{"id": "t1", "fewshot": 0}],
  "artifacts": {"output_dir": "/out"}
}`

// mustParse decodes a JSON document or fails the test.
func mustParse(t *testing.T, body string) map[string]any {
	t.Helper()
	doc, err := Parse([]byte(body), FormatJSON)
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return doc
}

// validationIssues validates doc and returns the reported issues.
func validationIssues(t *testing.T, doc map[string]any) *ValidationError {
	t.Helper()
	_, err := Validate(doc)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	return verr
}

// requireIssue fails unless verr reports field with a message containing fragment.
func requireIssue(t *testing.T, verr *ValidationError, field, fragment string) {
	t.Helper()
	for _, issue := range verr.Issues {
		if issue.Field == field && strings.Contains(issue.Message, fragment) {
			return
		}
	}
	t.Fatalf("expected issue %s: %q, got %q", field, fragment, verr.Error())
}

// setPath overwrites a nested key in a parsed document.
func setPath(doc map[string]any, value any, keys ...string) {
	current := doc
	for _, key := range keys[:len(keys)-1] {
		current = current[key].(map[string]any)
	}
	current[keys[len(keys)-1]] = value
}
