// Package scheduler composes validation, critical path analysis, and
// execution behind one entry point. A Scheduler is built once per
// session: construction validates the graph and precomputes the
// analysis, and both are immutable afterwards.
package scheduler

import (
	"context"
	"fmt"

	"github.com/joshharrison/waverun/internal/cpm"
	"github.com/joshharrison/waverun/internal/executor"
	"github.com/joshharrison/waverun/internal/graph"
	"github.com/joshharrison/waverun/internal/task"
)

// Scheduler owns the validated task graph and its precomputed analysis
// for the lifetime of one scheduling session.
type Scheduler struct {
	graph    *graph.TaskGraph
	analysis *cpm.Result
}

// New builds a Scheduler from a task sequence. Validation errors from
// graph construction (duplicate names, missing dependencies, cycles)
// propagate unchanged; on failure the caller gets no partially
// validated state.
func New(tasks []*task.Task) (*Scheduler, error) {
	g, err := graph.Build(tasks)
	if err != nil {
		return nil, err
	}
	analysis, err := cpm.Analyze(g)
	if err != nil {
		return nil, fmt.Errorf("critical path analysis: %w", err)
	}
	return &Scheduler{graph: g, analysis: analysis}, nil
}

// ExpectedRuntime returns the critical path length in seconds: the
// minimum possible runtime under unlimited parallelism. Pure read of
// the value computed at construction.
func (s *Scheduler) ExpectedRuntime() float64 {
	return s.analysis.TotalDuration
}

// Analysis returns the precomputed critical path analysis.
func (s *Scheduler) Analysis() *cpm.Result {
	return s.analysis
}

// Graph returns the validated task graph.
func (s *Scheduler) Graph() *graph.TaskGraph {
	return s.graph
}

// TaskCount returns the number of tasks in the session.
func (s *Scheduler) TaskCount() int {
	return s.graph.TaskCount()
}

// Execute runs the graph in dependency-ordered wavefronts and returns
// the wall-clock runtime with per-task measured durations. One-shot:
// each call owns its own execution state, and calls must not run
// concurrently over the same Scheduler.
func (s *Scheduler) Execute(ctx context.Context, cfg executor.Config) (*executor.Result, error) {
	return executor.Run(ctx, s.graph, cfg)
}
