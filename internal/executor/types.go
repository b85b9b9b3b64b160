package executor

import (
	"context"
	"io"

	"github.com/joshharrison/waverun/internal/task"
)

// WorkFunc is the body of a task. The default work simulates the task
// by sleeping for its declared duration; callers may inject real work.
// out is a serialized, task-prefixed writer for progress output.
type WorkFunc func(ctx context.Context, t *task.Task, out io.Writer) error

// Config holds execution driver configuration.
type Config struct {
	MaxParallel int       // worker pool bound per wave; 0 means unbounded
	Work        WorkFunc  // nil means sleep for the declared duration
	Log         io.Writer // progress output destination; nil disables it
}

// Result aggregates a finished run.
type Result struct {
	ActualRuntime float64            // wall-clock seconds, first dispatch to last completion
	Durations     map[string]float64 // task name -> measured seconds
	Waves         int                // number of wavefronts dispatched
}
