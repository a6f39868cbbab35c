// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package questionfile reads questionnaires from YAML files.
//
// A file is either a list of questions or a mapping with a questions key:
//
//	questions:
//	  - name: user
//	    type: input
//	    message: User name
//	    validators: [required]
//	  - name: color
//	    type: selectone
//	    message: Favourite color
//	    values: [red, [green, Green], {value: blue, label: Blue}]
package questionfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/toeirei/interrogator/core/model"
	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned for a file without questions.
var ErrEmpty = errors.New("no questions")

type document struct {
	Questions []model.Question `yaml:"questions"`
}

// Load reads the questionnaire at path. "-" reads stdin.
func Load(path string) ([]model.Question, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read question file: %w", err)
	}

	questions, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return questions, nil
}

// Parse decodes a questionnaire and checks that every question has a type.
func Parse(data []byte) ([]model.Question, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrEmpty
	}

	var questions []model.Question
	switch node := root.Content[0]; node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&questions); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, err
		}
		questions = doc.Questions
	default:
		return nil, fmt.Errorf("line %d: expected a list of questions", node.Line)
	}

	if len(questions) == 0 {
		return nil, ErrEmpty
	}
	for i, q := range questions {
		if q.Type == "" {
			return nil, fmt.Errorf("question %d: missing type", i+1)
		}
	}
	return questions, nil
}
