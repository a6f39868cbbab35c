// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package handler

import (
	"fmt"
	"strconv"
)

// extraInt reads an integer extra argument. YAML yields int, JSON float64,
// and environment driven specs strings; all three are accepted.
func extraInt(extra map[string]any, key string, fallback int) (int, error) {
	v, ok := extra[key]
	if !ok || v == nil {
		return fallback, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("%s: %v is not a whole number", key, n)
		}
		return int(n), nil
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("%s: unsupported value %v (%T)", key, v, v)
	}
}

func extraBool(extra map[string]any, key string) (bool, error) {
	v, ok := extra[key]
	if !ok || v == nil {
		return false, nil
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		parsed, err := strconv.ParseBool(b)
		if err != nil {
			return false, fmt.Errorf("%s: %w", key, err)
		}
		return parsed, nil
	default:
		return false, fmt.Errorf("%s: unsupported value %v (%T)", key, v, v)
	}
}
