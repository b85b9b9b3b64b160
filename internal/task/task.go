// Package task defines the immutable task descriptor consumed by the
// graph, scheduler, and executor packages.
package task

import (
	"errors"
	"fmt"
	"strings"
)

// Construction errors. Returned wrapped with the offending value so
// callers can match with errors.Is.
var (
	ErrEmptyName        = errors.New("task name must be non-empty")
	ErrNegativeDuration = errors.New("task duration must be non-negative")
	ErrEmptyDependency  = errors.New("dependency name must be non-empty")
)

// Task is a named unit of work with a declared duration in seconds and
// an ordered list of prerequisite task names. Immutable once built.
type Task struct {
	Name     string
	Duration float64 // seconds
	Deps     []string
}

// New validates and constructs a Task. Invalid descriptors never enter
// a graph: empty names, negative durations, and empty dependency
// entries all fail here.
func New(name string, duration float64, deps []string) (*Task, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if duration < 0 {
		return nil, fmt.Errorf("task %q: %w (got %v)", name, ErrNegativeDuration, duration)
	}
	for i, dep := range deps {
		if dep == "" {
			return nil, fmt.Errorf("task %q: dependency %d: %w", name, i, ErrEmptyDependency)
		}
	}
	t := &Task{
		Name:     name,
		Duration: duration,
		Deps:     append([]string(nil), deps...),
	}
	return t, nil
}

// String renders a one-line human-readable summary.
func (t *Task) String() string {
	deps := "none"
	if len(t.Deps) > 0 {
		deps = strings.Join(t.Deps, ", ")
	}
	return fmt.Sprintf("Task %q (duration: %gs, dependencies: %s)", t.Name, t.Duration, deps)
}
