// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/toeirei/interrogator/internal/i18n"
)

// validate caches parsed tags; it is safe for concurrent use.
var validate = validator.New()

// rule is one entry of Question.Validators, a validator tag such as
// "required" or "min=3".
type rule struct {
	tag string
}

// parseRules rejects tags the validator does not know or cannot apply to
// values shaped like sample.
func parseRules(tags []string, sample any) ([]rule, error) {
	var rules []rule
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if err := probe(tag, sample); err != nil {
			return nil, fmt.Errorf("validator %q: %w", tag, err)
		}
		rules = append(rules, rule{tag: tag})
	}
	return rules, nil
}

// probe runs tag once; the validator panics on undefined tags and
// malformed parameters.
func probe(tag string, sample any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	_ = validate.Var(sample, tag)
	return nil
}

func (r rule) check(value any) (msg string, ok bool) {
	err := validate.Var(value, r.tag)
	if err == nil {
		return "", true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return ruleMessage(verrs[0].Tag(), verrs[0].Param()), false
	}
	return err.Error(), false
}

func ruleMessage(tag, param string) string {
	data := map[string]any{"Tag": tag, "Param": param}
	if id := "validation." + tag; i18n.Has(id) {
		return i18n.T(id, data)
	}
	return i18n.T("validation.failed", data)
}
