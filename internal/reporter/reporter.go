// Package reporter formats validation and run results for terminal and
// machine consumption. Pure output adapter: it reads precomputed
// scheduler state and never mutates it.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/joshharrison/waverun/internal/executor"
	"github.com/joshharrison/waverun/internal/scheduler"
	"github.com/joshharrison/waverun/internal/ui"
)

// Reporter provides result display for a scheduling session.
type Reporter struct {
	Sched *scheduler.Scheduler
}

// New creates a Reporter over a validated scheduler.
func New(s *scheduler.Scheduler) *Reporter {
	return &Reporter{Sched: s}
}

// PrintValidation writes the validation summary: expected runtime,
// per-task details, and the wave preview.
func (r *Reporter) PrintValidation(w io.Writer) {
	analysis := r.Sched.Analysis()

	fmt.Fprintf(w, "%s Task list is valid.\n", ui.Green("✓"))
	fmt.Fprintf(w, "Expected total runtime: %s\n\n", ui.Bold(fmt.Sprintf("%.2f seconds", r.Sched.ExpectedRuntime())))

	fmt.Fprintf(w, "%s\n", ui.BoldWhite("Tasks"))
	for _, name := range analysis.TopoOrder {
		t := r.Sched.Graph().Tasks[name]
		ts := analysis.Tasks[name]

		critical := " "
		if ts.IsCritical {
			critical = ui.BoldYellow("⚡")
		}
		deps := "none"
		if len(t.Deps) > 0 {
			deps = strings.Join(t.Deps, ", ")
		}
		fmt.Fprintf(w, "  %s %-16s duration=%gs  dependencies=%s\n", critical, name, t.Duration, deps)
	}

	if len(analysis.Waves) > 0 {
		fmt.Fprintf(w, "\n%s\n", ui.BoldWhite("Waves"))
		for _, wave := range analysis.Waves {
			marker := " "
			if wave.IsCritical {
				marker = ui.BoldYellow("⚡")
			}
			fmt.Fprintf(w, "  🌊 %s %d %s %s\n", ui.Bold("WAVE"), wave.Index+1, marker,
				strings.Join(wave.TaskNames, ", "))
		}
	}

	if len(analysis.CriticalPath) > 0 {
		fmt.Fprintf(w, "\n%s %s\n", ui.BoldWhite("Critical path:"),
			ui.Cyan(strings.Join(analysis.CriticalPath, " -> ")))
	}
}

// PrintRun writes the execution report: expected vs actual runtime and
// the delta. With verbose set it adds a per-task comparison table.
func (r *Reporter) PrintRun(w io.Writer, res *executor.Result, verbose bool) {
	expected := r.Sched.ExpectedRuntime()
	diff := res.ActualRuntime - expected

	fmt.Fprintf(w, "\n%s\n", ui.BoldGreen("Task execution completed."))
	fmt.Fprintf(w, "Expected runtime: %.2f seconds\n", expected)
	fmt.Fprintf(w, "Actual runtime:   %.2f seconds\n", res.ActualRuntime)
	if expected > 0 {
		fmt.Fprintf(w, "Difference:       %+.2f seconds (%+.2f%%)\n", diff, diff/expected*100)
	} else {
		fmt.Fprintf(w, "Difference:       %+.2f seconds\n", diff)
	}

	if !verbose {
		return
	}

	fmt.Fprintf(w, "\n%s\n", ui.BoldWhite("Task execution details"))
	names := make([]string, 0, len(res.Durations))
	for name := range res.Durations {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		declared := r.Sched.Graph().Tasks[name].Duration
		actual := res.Durations[name]
		fmt.Fprintf(w, "  %s %-16s declared=%.2fs  actual=%.2fs  diff=%+.2fs\n",
			ui.StatusIcon("completed"), name, declared, actual, actual-declared)
	}
}

type taskJSON struct {
	Name         string   `json:"name"`
	Duration     float64  `json:"duration"`
	Dependencies []string `json:"dependencies"`
	EarliestTime float64  `json:"earliest_finish"`
	Slack        float64  `json:"slack"`
	IsCritical   bool     `json:"is_critical"`
	Wave         int      `json:"wave"`
}

type validationJSON struct {
	Valid           bool       `json:"valid"`
	ExpectedRuntime float64    `json:"expected_runtime"`
	TotalTasks      int        `json:"total_tasks"`
	TotalWaves      int        `json:"total_waves"`
	CriticalPath    []string   `json:"critical_path"`
	Tasks           []taskJSON `json:"tasks"`
}

// ValidationJSON returns the machine-readable validation summary.
func (r *Reporter) ValidationJSON() ([]byte, error) {
	analysis := r.Sched.Analysis()

	out := validationJSON{
		Valid:           true,
		ExpectedRuntime: r.Sched.ExpectedRuntime(),
		TotalTasks:      r.Sched.TaskCount(),
		TotalWaves:      len(analysis.Waves),
		CriticalPath:    analysis.CriticalPath,
	}
	for _, name := range analysis.TopoOrder {
		t := r.Sched.Graph().Tasks[name]
		ts := analysis.Tasks[name]
		out.Tasks = append(out.Tasks, taskJSON{
			Name:         name,
			Duration:     t.Duration,
			Dependencies: t.Deps,
			EarliestTime: ts.EF,
			Slack:        ts.Slack,
			IsCritical:   ts.IsCritical,
			Wave:         ts.Wave,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}

type runJSON struct {
	ExpectedRuntime float64            `json:"expected_runtime"`
	ActualRuntime   float64            `json:"actual_runtime"`
	Difference      float64            `json:"difference"`
	Waves           int                `json:"waves"`
	TaskDurations   map[string]float64 `json:"task_durations"`
}

// RunJSON returns the machine-readable execution report.
func (r *Reporter) RunJSON(res *executor.Result) ([]byte, error) {
	out := runJSON{
		ExpectedRuntime: r.Sched.ExpectedRuntime(),
		ActualRuntime:   res.ActualRuntime,
		Difference:      res.ActualRuntime - r.Sched.ExpectedRuntime(),
		Waves:           res.Waves,
		TaskDurations:   res.Durations,
	}
	return json.MarshalIndent(out, "", "  ")
}
