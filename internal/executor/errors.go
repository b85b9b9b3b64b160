package executor

import (
	"fmt"
	"strings"
)

// DeadlockError reports a state where tasks remain incomplete but none
// are ready. Graph validation guarantees this cannot happen for a
// well-formed graph, so seeing one signals a driver defect or a graph
// mutated after validation.
type DeadlockError struct {
	Remaining []string
}

func (e *DeadlockError) Error() string {
	return fmt.Sprintf("no tasks ready but %d incomplete remain (%s): possible deadlock",
		len(e.Remaining), strings.Join(e.Remaining, ", "))
}

// ExecutionError reports a task body failure. The wave the task ran in
// is allowed to drain before the run aborts with this error.
type ExecutionError struct {
	Task string
	Err  error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("task %q failed: %v", e.Task, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }
