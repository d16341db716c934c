package order

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// StatusPending is the only status this service ever writes.
const StatusPending = "Pending"

// Value holds a loosely typed JSON field. Order forms post numbers either
// as JSON numbers or as strings, so fields are kept raw and interpreted
// with form-style truthiness.
type Value struct {
	raw interface{}
}

// NewValue wraps a Go value (string, number, bool or nil).
func NewValue(v interface{}) Value {
	return Value{raw: v}
}

func (v *Value) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	v.raw = raw
	return nil
}

// Raw returns the decoded JSON value (json.Number for numbers).
func (v Value) Raw() interface{} {
	return v.raw
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.raw)
}

// Truthy is false for absent, null, "", 0, NaN and false.
func (v Value) Truthy() bool {
	switch t := v.raw.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case json.Number:
		// out-of-range numbers are Infinity to a browser, hence truthy
		f, err := t.Float64()
		return err != nil || f != 0
	case float64:
		return t != 0 && !math.IsNaN(t)
	case float32:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	default:
		return true
	}
}

// String renders the value the way it would appear in a text cell.
func (v Value) String() string {
	switch t := v.raw.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		f, err := t.Float64()
		switch {
		case math.IsInf(f, 1):
			return "Infinity"
		case math.IsInf(f, -1):
			return "-Infinity"
		case err == nil:
			return formatNumber(f)
		}
		return t.String()
	case float64:
		return formatNumber(t)
	case float32:
		return formatNumber(float64(t))
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// OrEmpty returns String() for truthy values and "" otherwise.
func (v Value) OrEmpty() string {
	if !v.Truthy() {
		return ""
	}
	return v.String()
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
