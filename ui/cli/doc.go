// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the interrogator command line using Cobra. It loads
// configuration, reads question files and hands them to the session driver.
// The question handlers themselves live in ui/tui/handler.
package cli
