// Package jsonutil provides shared utilities for JSON parsing patterns:
// error handling and number coercion for loosely typed blobs.
package jsonutil

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-json"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// UnmarshalObject unmarshals a JSON object into a generic map.
// Empty input yields an empty map, mirroring a missing browser-storage entry.
func UnmarshalObject(data []byte, context string) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	if len(data) == 0 {
		return out, nil
	}
	if err := UnmarshalWithContext(data, &out, context); err != nil {
		return nil, err
	}
	if out == nil {
		out = make(map[string]interface{})
	}
	return out, nil
}

// GetCount extracts a non-negative integer from a map[string]interface{}.
// Missing keys, negative values and non-numeric values yield 0; values too
// large for an int saturate at math.MaxInt.
// Numeric strings are accepted since some writers store counts as text.
func GetCount(m map[string]interface{}, key string) int {
	switch val := m[key].(type) {
	case float64:
		if val < 0 || math.IsNaN(val) {
			return 0
		}
		if val >= math.MaxInt {
			return math.MaxInt
		}
		return int(val)
	case string:
		n, err := strconv.Atoi(val)
		if errors.Is(err, strconv.ErrRange) && n > 0 {
			return n
		}
		if err != nil || n < 0 {
			return 0
		}
		return n
	default:
		return 0
	}
}

// ToString converts an interface{} value to a string representation.
// Handles string, float64 (formatted as integer), bool, and other types.
func ToString(v interface{}) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		// Format as integer for whole numbers, otherwise as float
		if val == float64(int64(val)) {
			return fmt.Sprintf("%.0f", val)
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
