// Package cpm computes the critical path analysis for a validated task
// graph: earliest/latest start and finish times, slack, the expected
// total runtime, and the wavefronts the executor will dispatch.
package cpm

import (
	"fmt"
	"sort"

	"github.com/joshharrison/waverun/internal/graph"
)

// slackEps tolerates float drift when deciding whether a task has zero
// slack.
const slackEps = 1e-9

// Analyze performs critical path analysis on a task graph. The graph
// must already be validated; a topological sort failure here signals a
// defect, not a user input error.
func Analyze(g *graph.TaskGraph) (*Result, error) {
	order, err := topoSort(g)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Tasks:     make(map[string]*TaskSchedule, len(order)),
		TopoOrder: order,
	}

	for _, name := range order {
		result.Tasks[name] = &TaskSchedule{Name: name}
	}

	// Forward pass: ES = max EF over dependencies, EF = ES + duration.
	// Processing in topological order makes each EF available before
	// any dependent asks for it, so nothing is computed twice.
	for _, name := range order {
		ts := result.Tasks[name]
		es := 0.0
		for _, dep := range g.RevAdj[name] {
			if depTS := result.Tasks[dep]; depTS.EF > es {
				es = depTS.EF
			}
		}
		ts.ES = es
		ts.EF = es + g.Tasks[name].Duration
	}

	// Expected runtime is the latest finish; 0 for an empty graph.
	for _, ts := range result.Tasks {
		if ts.EF > result.TotalDuration {
			result.TotalDuration = ts.EF
		}
	}

	// Backward pass in reverse topological order: LF = min LS over
	// dependents, or the total duration for tasks nothing depends on.
	for i := len(order) - 1; i >= 0; i-- {
		name := order[i]
		ts := result.Tasks[name]

		lf := result.TotalDuration
		for _, succ := range g.Adj[name] {
			if succTS := result.Tasks[succ]; succTS.LS < lf {
				lf = succTS.LS
			}
		}
		ts.LF = lf
		ts.LS = lf - g.Tasks[name].Duration
		ts.Slack = ts.LS - ts.ES
		ts.IsCritical = ts.Slack < slackEps
	}

	// Critical path: zero-slack tasks in topological order.
	for _, name := range order {
		if result.Tasks[name].IsCritical {
			result.CriticalPath = append(result.CriticalPath, name)
		}
	}

	result.Waves = computeWaves(result, g)

	return result, nil
}

// topoSort performs Kahn's algorithm over the dependency relation with
// a sorted ready queue for determinism.
func topoSort(g *graph.TaskGraph) ([]string, error) {
	inDegree := make(map[string]int, len(g.Tasks))
	for name := range g.Tasks {
		inDegree[name] = len(g.RevAdj[name])
	}

	var queue []string
	for name := range g.Tasks {
		if inDegree[name] == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue)

	var order []string
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)

		var newReady []string
		for _, succ := range g.Adj[node] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				newReady = append(newReady, succ)
			}
		}
		sort.Strings(newReady)
		queue = append(queue, newReady...)
	}

	if len(order) != len(g.Tasks) {
		return nil, fmt.Errorf("topological sort failed: graph has a cycle (%d of %d tasks sorted)", len(order), len(g.Tasks))
	}

	return order, nil
}

// computeWaves groups tasks by readiness depth: a task with no
// dependencies is in wave 0, otherwise one past its deepest
// dependency. This matches the barrier-synchronized wavefronts the
// executor dispatches, not the ES-based grouping a resource-unbounded
// timeline would give.
func computeWaves(result *Result, g *graph.TaskGraph) []Wave {
	depth := make(map[string]int, len(result.TopoOrder))
	maxDepth := -1
	for _, name := range result.TopoOrder {
		d := 0
		for _, dep := range g.RevAdj[name] {
			if depth[dep]+1 > d {
				d = depth[dep] + 1
			}
		}
		depth[name] = d
		result.Tasks[name].Wave = d
		if d > maxDepth {
			maxDepth = d
		}
	}

	waves := make([]Wave, maxDepth+1)
	for i := range waves {
		waves[i].Index = i
	}
	for _, name := range result.TopoOrder {
		w := &waves[depth[name]]
		w.TaskNames = append(w.TaskNames, name)
		if result.Tasks[name].IsCritical {
			w.IsCritical = true
		}
	}
	for i := range waves {
		sort.Strings(waves[i].TaskNames)
	}

	return waves
}
