// Package graph builds and validates the dependency graph for one
// scheduling session. Build is the only entry point: a *TaskGraph it
// returns is guaranteed to have unique names, fully-resolved
// dependencies, and no cycles.
package graph

import (
	"sort"

	"github.com/joshharrison/waverun/internal/task"
)

// Build constructs a validated TaskGraph from a task sequence. It fails
// with DuplicateNameError, MissingDependencyError, or CycleError; on
// failure the caller gets no partially-validated graph.
func Build(tasks []*task.Task) (*TaskGraph, error) {
	g := &TaskGraph{
		Tasks:  make(map[string]*task.Task, len(tasks)),
		Adj:    make(map[string][]string),
		RevAdj: make(map[string][]string),
	}

	// Index all tasks, keeping input order for deterministic error
	// reporting and cycle traversal.
	order := make([]string, 0, len(tasks))
	for _, t := range tasks {
		if _, ok := g.Tasks[t.Name]; ok {
			return nil, &DuplicateNameError{Name: t.Name}
		}
		g.Tasks[t.Name] = t
		order = append(order, t.Name)
	}

	// Every dependency must resolve within the graph.
	for _, name := range order {
		for _, dep := range g.Tasks[name].Deps {
			if _, ok := g.Tasks[dep]; !ok {
				return nil, &MissingDependencyError{Task: name, Dependency: dep}
			}
		}
	}

	// Build adjacency lists, deduplicating repeated dependency entries.
	edgeSet := make(map[[2]string]bool)
	for _, name := range order {
		for _, dep := range g.Tasks[name].Deps {
			key := [2]string{dep, name}
			if edgeSet[key] {
				continue
			}
			edgeSet[key] = true
			g.Adj[dep] = append(g.Adj[dep], name)
			g.RevAdj[name] = append(g.RevAdj[name], dep)
		}
	}

	// Sort adjacency lists for deterministic ordering
	for k := range g.Adj {
		sort.Strings(g.Adj[k])
	}
	for k := range g.RevAdj {
		sort.Strings(g.RevAdj[k])
	}

	for _, name := range order {
		if len(g.RevAdj[name]) == 0 {
			g.Roots = append(g.Roots, name)
		}
		if len(g.Adj[name]) == 0 {
			g.Leaves = append(g.Leaves, name)
		}
	}
	sort.Strings(g.Roots)
	sort.Strings(g.Leaves)

	if cerr := detectCycle(g, order); cerr != nil {
		return nil, cerr
	}

	return g, nil
}

// TaskCount returns the number of tasks in the graph.
func (g *TaskGraph) TaskCount() int {
	return len(g.Tasks)
}

// detectCycle walks task -> dependency edges with three-coloring:
// white (unvisited), gray (in progress), black (done). Reaching a gray
// node closes a cycle, reconstructed from the traversal stack. The walk
// is iterative with an explicit stack so deep graphs cannot exhaust
// call depth. Tasks are visited in input order, so only the first of
// several disjoint cycles is reported.
func detectCycle(g *TaskGraph, order []string) *CycleError {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[string]int, len(g.Tasks))

	type frame struct {
		name string
		next int // index of the next dependency to visit
	}

	for _, start := range order {
		if color[start] != white {
			continue
		}
		color[start] = gray
		stack := []frame{{name: start}}

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			deps := g.Tasks[f.name].Deps

			if f.next >= len(deps) {
				color[f.name] = black
				stack = stack[:len(stack)-1]
				continue
			}

			dep := deps[f.next]
			f.next++

			switch color[dep] {
			case gray:
				// The stack from dep to the top is the cycle.
				var path []string
				for i := range stack {
					if stack[i].name == dep {
						for _, fr := range stack[i:] {
							path = append(path, fr.name)
						}
						break
					}
				}
				path = append(path, dep)
				return &CycleError{Path: path}
			case white:
				color[dep] = gray
				stack = append(stack, frame{name: dep})
			}
		}
	}

	return nil
}
