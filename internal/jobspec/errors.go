package jobspec

import (
	"fmt"
	"strings"
)

// DocumentError reports a JobSpec document that could not be read or parsed.
type DocumentError struct {
	Path string
	Err  error
}

func (err *DocumentError) Error() string {
	if err.Path == "" {
		return err.Err.Error()
	}
	return fmt.Sprintf("%s: %v", err.Path, err.Err)
}

func (err *DocumentError) Unwrap() error {
	return err.Err
}

// Issue captures a validation problem with a JobSpec field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates JobSpec validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "jobspec validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// HasField reports whether any issue targets the given field path.
func (err *ValidationError) HasField(field string) bool {
	if err == nil {
		return false
	}
	for _, issue := range err.Issues {
		if issue.Field == field {
			return true
		}
	}
	return false
}
