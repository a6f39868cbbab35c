// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
// Package tui runs question handlers as bubbletea programs. The handlers
// live in ui/tui/handler, their building blocks in ui/tui/widgets and
// ui/tui/layout.
package tui
