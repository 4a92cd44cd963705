// Copyright 2026 The GTDash Authors
// SPDX-License-Identifier: MIT

// Package dashboard provides the pluggable section registry behind
// gtdash report. Each section turns the incident table into a panel holding
// chart-ready data and a terminal rendering.
package dashboard

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/gtdash/gtdash/internal/incident"
)

// ErrNoSelection indicates a section needs a country selection and none was
// given. It is reported as a skipped section, not a failure.
var ErrNoSelection = errors.New("no countries selected")

// Input is everything a section may read. Table is shared by all sections
// and must not be modified.
type Input struct {
	Table        *incident.Table
	Countries    []string
	TopProvinces int
	PreviewRows  int
}

// Section is a pluggable dashboard section.
type Section interface {
	// Name returns the unique identifier for this section (e.g., "yearly").
	Name() string

	// Description returns a human-readable description of the section.
	Description() string

	// Build computes the section's panel from the input. Implementations
	// must not keep state between calls. Returns ErrNoSelection (wrapped)
	// when the section cannot be shown for the given selection.
	Build(in Input) (Panel, error)
}

// Panel is the computed content of one section.
type Panel interface {
	// Data returns the chart-ready value handed to the presentation layer.
	Data() any

	// Render writes the terminal rendering to w.
	Render(w io.Writer) error
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Section)
	order    []string // insertion order for deterministic listing
)

// Register adds a section to the global registry.
// It panics if a section with the same name is already registered.
func Register(s Section) {
	mu.Lock()
	defer mu.Unlock()
	name := s.Name()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("dashboard section already registered: %s", name))
	}
	registry[name] = s
	order = append(order, name)
}

// Get returns the section with the given name, or nil if not found.
func Get(name string) Section {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// List returns the names of all registered sections in registration order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// ResolveSections returns the requested section names that are registered,
// in request order, plus any that are unknown. An empty filter selects
// every section.
func ResolveSections(filter []string) (names, unknown []string) {
	if len(filter) == 0 {
		return List(), nil
	}
	seen := make(map[string]bool)
	for _, name := range filter {
		if seen[name] {
			continue
		}
		seen[name] = true
		if Get(name) == nil {
			unknown = append(unknown, name)
			continue
		}
		names = append(names, name)
	}
	return names, unknown
}

// resetForTesting clears the registry. Only for use in tests.
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Section)
	order = nil
}

// Built-in sections in dashboard order.
func init() {
	Register(summarySection{})
	Register(yearlySection{})
	Register(countriesSection{})
	Register(mapSection{})
	Register(proportionsSection{})
}
