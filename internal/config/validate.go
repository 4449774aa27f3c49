package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{LogFormatAuto, LogFormatText, LogFormatJSON}
)

// Issue captures a problem with one setting.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates settings issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "settings validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate reports every invalid setting at once.
func (s Settings) Validate() error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}
	if s.EngineBinary == "" {
		add("RUNNER_ENGINE_BIN", "must not be empty")
	}
	if !slices.Contains(logLevels, s.LogLevel) {
		add("RUNNER_LOG_LEVEL", fmt.Sprintf("unsupported level %q (want %s)", s.LogLevel, strings.Join(logLevels, "|")))
	}
	if !slices.Contains(logFormats, s.LogFormat) {
		add("RUNNER_LOG_FORMAT", fmt.Sprintf("unsupported format %q (want %s)", s.LogFormat, strings.Join(logFormats, "|")))
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
