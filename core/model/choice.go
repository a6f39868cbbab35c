// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package model

import (
	"fmt"

	"github.com/toeirei/interrogator/util/slicest"
	"gopkg.in/yaml.v3"
)

// Choice is one selectable entry of a select question. Value is the
// identifier put into the answer, Label is what gets displayed.
type Choice struct {
	Value string `yaml:"value" json:"value" mapstructure:"value"`
	Label string `yaml:"label" json:"label" mapstructure:"label"`
}

// Display returns the label, or the value when no label is set.
func (c Choice) Display() string {
	if c.Label == "" {
		return c.Value
	}
	return c.Label
}

// Choices builds choices whose label equals their value.
func Choices(values ...string) []Choice {
	return slicest.Map(values, func(v string) Choice {
		return Choice{Value: v, Label: v}
	})
}

// UnmarshalYAML accepts a plain scalar ("a"), a two element sequence
// ([value, label]) or a mapping ({value: a, label: A}).
func (c *Choice) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		c.Value, c.Label = node.Value, node.Value
		return nil
	case yaml.SequenceNode:
		var pair []string
		if err := node.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("line %d: choice must be [value, label], got %d elements", node.Line, len(pair))
		}
		c.Value, c.Label = pair[0], pair[1]
		return nil
	case yaml.MappingNode:
		type plain Choice
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		if p.Value == "" {
			return fmt.Errorf("line %d: choice is missing a value", node.Line)
		}
		*c = Choice(p)
		return nil
	default:
		return fmt.Errorf("line %d: unsupported choice", node.Line)
	}
}
