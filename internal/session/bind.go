// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package session

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/toeirei/interrogator/core/model"
)

// Bind decodes answers into out, a pointer to a struct or map. Fields are
// matched by their mapstructure tag or, case-insensitively, by name.
// String answers are converted to numbers and booleans where the field
// asks for it.
func Bind(answers model.Answers, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("bind answers: %w", err)
	}
	if err := dec.Decode(map[string]any(answers)); err != nil {
		return fmt.Errorf("bind answers: %w", err)
	}
	return nil
}
