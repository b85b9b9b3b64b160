// Package executor runs a validated task graph in dependency order
// using barrier-synchronized wavefronts: every currently-unblocked task
// is dispatched concurrently, and the next wave starts only after the
// current one fully drains. A task that becomes unblocked mid-wave
// waits for the wave boundary.
package executor

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/joshharrison/waverun/internal/graph"
	"github.com/joshharrison/waverun/internal/task"
	"github.com/joshharrison/waverun/internal/ui"
)

// taskResult communicates task completion from worker goroutines to the
// wave loop.
type taskResult struct {
	Name     string
	Duration float64 // measured seconds
	Err      error
}

// Run executes the graph and returns the wall-clock runtime with the
// per-task measured durations.
//
// The completed set and duration map are owned by this call and mutated
// only at wave boundaries, after every worker of the wave has finished.
// On a task failure the in-flight wave is allowed to drain, then the
// run aborts with ExecutionError; no partial result is returned. A wave
// with no ready tasks while work remains fails with DeadlockError,
// which prior validation makes unreachable for well-formed graphs.
func Run(ctx context.Context, g *graph.TaskGraph, cfg Config) (*Result, error) {
	total := g.TaskCount()
	res := &Result{Durations: make(map[string]float64, total)}
	if total == 0 {
		return res, nil
	}

	work := cfg.Work
	if work == nil {
		work = sleepWork
	}
	log := cfg.Log
	if log == nil {
		log = io.Discard
	}
	var logMu sync.Mutex

	completed := make(map[string]bool, total)
	start := time.Now()

	for len(completed) < total {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ready := readyTasks(g, completed)
		if len(ready) == 0 {
			return nil, &DeadlockError{Remaining: remaining(g, completed)}
		}

		res.Waves++
		// logMu guards every write to log, worker lines and wave
		// headers alike, so the header stays safe even if the barrier
		// is ever relaxed.
		logMu.Lock()
		fmt.Fprintf(log, "%s wave %d: %d task(s)\n", ui.BoldCyan("🌊"), res.Waves, len(ready))
		logMu.Unlock()

		var eg errgroup.Group
		if cfg.MaxParallel > 0 {
			eg.SetLimit(cfg.MaxParallel)
		}
		results := make(chan taskResult, len(ready))

		for _, name := range ready {
			name := name
			t := g.Tasks[name]
			out := ui.NewLineWriter(name, log, &logMu)
			eg.Go(func() error {
				fmt.Fprintf(out, "▶ starting (declared %gs)\n", t.Duration)
				began := time.Now()
				err := work(ctx, t, out)
				measured := time.Since(began).Seconds()
				if err != nil {
					fmt.Fprintf(out, "%s failed after %.2fs: %v\n", ui.Red("✗"), measured, err)
				} else {
					fmt.Fprintf(out, "%s done in %.2fs\n", ui.Green("✓"), measured)
				}
				results <- taskResult{Name: name, Duration: measured, Err: err}
				return err
			})
		}

		// Wave barrier: every worker finishes before anything advances.
		waveErr := eg.Wait()
		close(results)

		if waveErr != nil {
			// Abort the run, discarding the wave's measurements.
			for r := range results {
				if r.Err != nil {
					return nil, &ExecutionError{Task: r.Name, Err: r.Err}
				}
			}
			return nil, waveErr
		}

		for r := range results {
			completed[r.Name] = true
			res.Durations[r.Name] = r.Duration
		}
	}

	res.ActualRuntime = time.Since(start).Seconds()
	return res, nil
}

// readyTasks returns the sorted names of incomplete tasks whose every
// dependency is completed. A task with no dependencies is ready in the
// first wave.
func readyTasks(g *graph.TaskGraph, completed map[string]bool) []string {
	var ready []string
	for name := range g.Tasks {
		if completed[name] {
			continue
		}
		ok := true
		for _, dep := range g.RevAdj[name] {
			if !completed[dep] {
				ok = false
				break
			}
		}
		if ok {
			ready = append(ready, name)
		}
	}
	sort.Strings(ready)
	return ready
}

func remaining(g *graph.TaskGraph, completed map[string]bool) []string {
	var left []string
	for name := range g.Tasks {
		if !completed[name] {
			left = append(left, name)
		}
	}
	sort.Strings(left)
	return left
}

// sleepWork simulates a task by occupying a worker for the declared
// duration.
func sleepWork(ctx context.Context, t *task.Task, _ io.Writer) error {
	d := time.Duration(t.Duration * float64(time.Second))
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
