package jobspec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a JobSpec document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	default:
		return "json"
	}
}

// FormatForPath picks a document format from the file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse decodes a document into untyped data. Numbers are returned as
// json.Number regardless of format so validation sees one representation.
func Parse(data []byte, format Format) (map[string]any, error) {
	var (
		raw any
		err error
	)
	switch format {
	case FormatYAML:
		raw, err = parseYAML(data)
	default:
		raw, err = parseJSON(data)
	}
	if err != nil {
		return nil, err
	}
	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("parse jobspec: top level must be an object, got %s", describe(raw))
	}
	return doc, nil
}

func parseJSON(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse jobspec: %w", err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("parse jobspec: unexpected data after top-level value")
	}
	return raw, nil
}

func parseYAML(data []byte) (any, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	var raw any
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse jobspec: document is empty")
		}
		return nil, fmt.Errorf("parse jobspec: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse jobspec: multiple YAML documents are not supported")
		}
		return nil, fmt.Errorf("parse jobspec: %w", err)
	}
	return normalizeYAML(raw, "")
}

// normalizeYAML rewrites a decoded YAML tree into the shapes encoding/json
// produces with UseNumber.
func normalizeYAML(value any, path string) (any, error) {
	switch typed := value.(type) {
	case nil, string, bool:
		return typed, nil
	case int:
		return json.Number(strconv.Itoa(typed)), nil
	case int64:
		return json.Number(strconv.FormatInt(typed, 10)), nil
	case uint64:
		return json.Number(strconv.FormatUint(typed, 10)), nil
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) {
			return nil, fmt.Errorf("parse jobspec: %s: non-finite number", displayPath(path))
		}
		return json.Number(strconv.FormatFloat(typed, 'g', -1, 64)), nil
	case time.Time:
		return typed.Format(time.RFC3339Nano), nil
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			normalized, err := normalizeYAML(item, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			out[i] = normalized
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			normalized, err := normalizeYAML(item, joinPath(path, key))
			if err != nil {
				return nil, err
			}
			out[key] = normalized
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			name, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("parse jobspec: %s: mapping keys must be strings, got %v", displayPath(path), key)
			}
			normalized, err := normalizeYAML(item, joinPath(path, name))
			if err != nil {
				return nil, err
			}
			out[name] = normalized
		}
		return out, nil
	default:
		return nil, fmt.Errorf("parse jobspec: %s: unsupported value of type %T", displayPath(path), value)
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func displayPath(path string) string {
	if path == "" {
		return "document"
	}
	return path
}

// describe names the JSON shape of an untyped value for error messages.
func describe(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case []any:
		return "list"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
