package jobspec

import (
	"fmt"
	"os"
)

// Load reads, parses, and validates a JobSpec file. Read and parse failures
// are returned as *DocumentError, schema violations as *ValidationError.
func Load(path string) (JobSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return JobSpec{}, &DocumentError{Path: path, Err: fmt.Errorf("read jobspec: %w", err)}
	}
	doc, err := Parse(data, FormatForPath(path))
	if err != nil {
		return JobSpec{}, &DocumentError{Path: path, Err: err}
	}
	return Validate(doc)
}
