// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
// Package model defines the data passed between the question handlers and the
// session driver. The structs are plain values: a Question is created by the
// caller before a session starts and is never mutated afterwards.
package model
