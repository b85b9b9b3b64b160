package graph

import (
	"fmt"
	"strings"
)

// DuplicateNameError reports two input tasks sharing a name.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate task name %q", e.Name)
}

// MissingDependencyError reports a dependency name that resolves to no
// task in the graph.
type MissingDependencyError struct {
	Task       string
	Dependency string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("task %q depends on non-existent task %q", e.Task, e.Dependency)
}

// CycleError reports a directed cycle in the dependency relation. Path
// is the forward-ordered cycle with the start name repeated at the end.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("circular dependency detected: %s", strings.Join(e.Path, " -> "))
}
