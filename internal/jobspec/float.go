package jobspec

import (
	"math"
	"strconv"
	"strings"
)

// Float is a float64 that renders integral values with a trailing ".0",
// matching the engine's own encoding: 0.7, 1.0, 1e-05.
type Float float64

func (f Float) String() string {
	v := float64(f)
	text := strconv.FormatFloat(v, 'g', -1, 64)
	if v == math.Trunc(v) && !strings.ContainsAny(text, "e.") {
		text += ".0"
	}
	return text
}

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	return []byte(f.String()), nil
}

func floatPtr(v *float64) *Float {
	if v == nil {
		return nil
	}
	f := Float(*v)
	return &f
}
