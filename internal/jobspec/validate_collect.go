package jobspec

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// issueAdder adds a validation issue to a shared collector.
type issueAdder func(field, message string)

// issueCollector accumulates validation issues and the unknown fields that
// were skipped.
type issueCollector struct {
	issues  []Issue
	ignored []string
}

// add records a new validation issue.
func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

// ignore records a field that no reader consumed.
func (c *issueCollector) ignore(field string) {
	c.ignored = append(c.ignored, field)
}

// result returns a ValidationError when issues are present.
func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// object reads typed fields out of an untyped mapping, reporting every
// missing or mistyped field and tracking which keys were consumed.
type object struct {
	path   string
	values map[string]any
	seen   map[string]struct{}
	c      *issueCollector
}

// asObject wraps raw as an object at path. A nil or mistyped value reports an
// issue when required or mistyped and returns nil.
func asObject(path string, raw any, required bool, c *issueCollector) *object {
	if raw == nil {
		if required {
			c.add(path, "is required")
		}
		return nil
	}
	values, ok := raw.(map[string]any)
	if !ok {
		c.add(path, fmt.Sprintf("must be an object, got %s", describe(raw)))
		return nil
	}
	return &object{path: path, values: values, seen: map[string]struct{}{}, c: c}
}

func (o *object) add(field, message string) {
	o.c.add(field, message)
}

func (o *object) field(name string) string {
	return joinPath(o.path, name)
}

// lookup returns the value for name; an explicit null counts as absent.
func (o *object) lookup(name string) (any, bool) {
	o.seen[name] = struct{}{}
	value, ok := o.values[name]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// requiredString reads a string field that must be present. An empty string
// counts as present.
func (o *object) requiredString(name string) string {
	value, ok := o.lookup(name)
	if !ok {
		o.add(o.field(name), "is required")
		return ""
	}
	text, ok := value.(string)
	if !ok {
		o.add(o.field(name), fmt.Sprintf("must be a string, got %s", describe(value)))
		return ""
	}
	return text
}

// optionalString reads a string field that may be absent.
func (o *object) optionalString(name string) *string {
	value, ok := o.lookup(name)
	if !ok {
		return nil
	}
	text, ok := value.(string)
	if !ok {
		o.add(o.field(name), fmt.Sprintf("must be a string, got %s", describe(value)))
		return nil
	}
	return &text
}

// optionalInt reads an integer field. Integral floats such as 2.0 are accepted.
func (o *object) optionalInt(name string) *int {
	value, ok := o.lookup(name)
	if !ok {
		return nil
	}
	return o.intValue(name, value)
}

// requiredInt reads an integer field that must be present.
func (o *object) requiredInt(name string) *int {
	value, ok := o.lookup(name)
	if !ok {
		o.add(o.field(name), "is required")
		return nil
	}
	return o.intValue(name, value)
}

func (o *object) intValue(name string, value any) *int {
	n, ok := toInt(value)
	if !ok {
		o.add(o.field(name), fmt.Sprintf("must be an integer, got %s", describe(value)))
		return nil
	}
	return &n
}

func (o *object) optionalFloat(name string) *float64 {
	value, ok := o.lookup(name)
	if !ok {
		return nil
	}
	f, ok := toFloat(value)
	if !ok {
		o.add(o.field(name), fmt.Sprintf("must be a number, got %s", describe(value)))
		return nil
	}
	return &f
}

func (o *object) optionalBool(name string) *bool {
	value, ok := o.lookup(name)
	if !ok {
		return nil
	}
	b, ok := value.(bool)
	if !ok {
		o.add(o.field(name), fmt.Sprintf("must be a boolean, got %s", describe(value)))
		return nil
	}
	return &b
}

// child reads a nested object field.
func (o *object) child(name string, required bool) *object {
	value, _ := o.lookup(name)
	return asObject(o.field(name), value, required, o.c)
}

// element reads one required object inside a list.
func (o *object) element(path string, raw any) *object {
	return asObject(path, raw, true, o.c)
}

// list reads a list field. The second result is false when the field is
// absent or mistyped.
func (o *object) list(name string, required bool) ([]any, bool) {
	value, ok := o.lookup(name)
	if !ok {
		if required {
			o.add(o.field(name), "is required")
		}
		return nil, false
	}
	items, ok := value.([]any)
	if !ok {
		o.add(o.field(name), fmt.Sprintf("must be a list, got %s", describe(value)))
		return nil, false
	}
	return items, true
}

// mapping reads a free-form object field without inspecting its contents.
func (o *object) mapping(name string) map[string]any {
	value, ok := o.lookup(name)
	if !ok {
		return nil
	}
	values, ok := value.(map[string]any)
	if !ok {
		o.add(o.field(name), fmt.Sprintf("must be an object, got %s", describe(value)))
		return nil
	}
	return values
}

// skipUnknown records keys that no accessor consumed, in sorted order. They
// are not validation failures.
func (o *object) skipUnknown() {
	var unknown []string
	for key := range o.values {
		if _, ok := o.seen[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		o.c.ignore(o.field(key))
	}
}

func itemPath(prefix string, index int) string {
	return fmt.Sprintf("%s[%d]", prefix, index)
}

func toInt(value any) (int, bool) {
	number, ok := value.(json.Number)
	if !ok {
		return 0, false
	}
	if n, err := strconv.ParseInt(string(number), 10, 0); err == nil {
		return int(n), true
	}
	f, err := strconv.ParseFloat(string(number), 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, false
	}
	return int(f), true
}

func toFloat(value any) (float64, bool) {
	number, ok := value.(json.Number)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(number), 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Bounds checks.

func checkPositive(field string, value *int, add issueAdder) {
	if value != nil && *value <= 0 {
		add(field, "must be > 0")
	}
}

func checkNonNegative(field string, value *int, add issueAdder) {
	if value != nil && *value < 0 {
		add(field, "must be >= 0")
	}
}

func checkRange(field string, value *float64, lo, hi float64, add issueAdder) {
	if value != nil && (*value < lo || *value > hi) {
		add(field, fmt.Sprintf("must be between %s and %s", strconv.FormatFloat(lo, 'g', -1, 64), strconv.FormatFloat(hi, 'g', -1, 64)))
	}
}
