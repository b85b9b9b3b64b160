package graph

import "github.com/joshharrison/waverun/internal/task"

// TaskGraph is a validated directed acyclic graph of tasks keyed by
// unique name. Adj holds edges dependency -> dependent; RevAdj holds
// the reverse (dependent -> its dependencies).
type TaskGraph struct {
	Tasks  map[string]*task.Task
	Adj    map[string][]string // task -> tasks that depend on it
	RevAdj map[string][]string // task -> its dependencies
	Roots  []string            // tasks with no dependencies
	Leaves []string            // tasks nothing depends on
}
