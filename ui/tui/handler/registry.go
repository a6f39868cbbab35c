// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package handler

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/toeirei/interrogator/core/model"
)

// Constructor builds a fresh handler for one presentation of q.
type Constructor func(q model.Question) (Handler, error)

// UnknownTypeError is returned when no constructor is registered for a
// question type.
type UnknownTypeError struct {
	Type  string
	Known []string
}

func (e *UnknownTypeError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown question type %q", e.Type)
	}
	return fmt.Sprintf("unknown question type %q (known: %s)", e.Type, strings.Join(e.Known, ", "))
}

// Registry maps question type names to handler constructors.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ctors: make(map[string]Constructor),
	}
}

// Register associates name with ctor.
// If a constructor with the same name exists, it is overwritten.
func (r *Registry) Register(name string, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctors[name] = ctor
}

// Lookup returns the constructor registered for name.
func (r *Registry) Lookup(name string) (Constructor, error) {
	r.mu.RLock()
	ctor, ok := r.ctors[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &UnknownTypeError{Type: name, Known: r.Types()}
	}
	return ctor, nil
}

// Types returns the registered names in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New looks up the constructor for q.Type and builds a handler.
func (r *Registry) New(q model.Question) (Handler, error) {
	ctor, err := r.Lookup(q.Type)
	if err != nil {
		return nil, err
	}
	h, err := ctor(q)
	if err != nil {
		return nil, fmt.Errorf("question %q: %w", q.Name, err)
	}
	return h, nil
}

// Default is the process-wide registry the builtin handlers register into.
// It is written during package initialization and read afterwards.
var Default = NewRegistry()

// Register adds ctor to the Default registry.
func Register(name string, ctor Constructor) { Default.Register(name, ctor) }

// Lookup queries the Default registry.
func Lookup(name string) (Constructor, error) { return Default.Lookup(name) }

// New builds a handler for q using the Default registry.
func New(q model.Question) (Handler, error) { return Default.New(q) }
