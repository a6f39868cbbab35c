// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/toeirei/interrogator/core/model"
)

// encodeAnswers renders answers in question order. Unanswered questions
// are left out.
func encodeAnswers(answers model.Answers, order []string, format string) ([]byte, error) {
	switch format {
	case "", "yaml":
		items := yaml.MapSlice{}
		for _, name := range order {
			if v, ok := answers[name]; ok {
				items = append(items, yaml.MapItem{Key: name, Value: v})
			}
		}
		return yaml.Marshal(items)
	case "json":
		return encodeJSON(answers, order)
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// encodeJSON writes an object whose keys keep the question order.
func encodeJSON(answers model.Answers, order []string) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	first := true
	for _, name := range order {
		v, ok := answers[name]
		if !ok {
			continue
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("answer %q: %w", name, err)
		}
		if !first {
			compact.WriteByte(',')
		}
		first = false
		compact.Write(key)
		compact.WriteByte(':')
		compact.Write(value)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}
