// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.

// maintest asks one question of every builtin type, for trying out the
// handlers by hand.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/toeirei/interrogator/core/model"
	"github.com/toeirei/interrogator/internal/session"
)

var demo = []model.Question{
	{Name: "name", Type: "input", Message: "Your name", Default: "anonymous", Validators: []string{"required"}},
	{Name: "secret", Type: "password", Message: "Secret"},
	{Name: "notes", Type: "text", Message: "Notes", Extra: map[string]any{"rows": 3}},
	{Name: "dir", Type: "path", Message: "Directory", Extra: map[string]any{"only_directories": true}},
	{Name: "color", Type: "selectone", Message: "Color", Values: model.Choices("red", "green", "blue"), Default: "green"},
	{Name: "toppings", Type: "selectmany", Message: "Toppings", Values: model.Choices("cheese", "ham", "olives"), Checked: []string{"cheese"}},
	{Name: "password", Type: "repassword", Message: "New password", Validators: []string{"min=4"}},
}

func main() {
	runner := &session.Runner{OnCancel: session.Skip}
	answers, err := runner.Run(context.Background(), demo)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	for _, q := range demo {
		if v, ok := answers[q.Name]; ok {
			fmt.Printf("%s: %v\n", q.Name, v)
		}
	}
}
