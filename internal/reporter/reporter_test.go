package reporter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshharrison/waverun/internal/executor"
	"github.com/joshharrison/waverun/internal/scheduler"
	"github.com/joshharrison/waverun/internal/task"
)

func diamondScheduler(t *testing.T) *scheduler.Scheduler {
	t.Helper()
	mk := func(name string, d float64, deps ...string) *task.Task {
		tk, err := task.New(name, d, deps)
		require.NoError(t, err)
		return tk
	}
	s, err := scheduler.New([]*task.Task{
		mk("A", 2),
		mk("B", 3, "A"),
		mk("C", 1, "A"),
		mk("D", 1, "B", "C"),
	})
	require.NoError(t, err)
	return s
}

func TestPrintValidation(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	New(diamondScheduler(t)).PrintValidation(&buf)

	out := buf.String()
	assert.Contains(t, out, "Task list is valid.")
	assert.Contains(t, out, "Expected total runtime: 6.00 seconds")
	assert.Contains(t, out, "dependencies=B, C")
	assert.Contains(t, out, "WAVE 2")
	assert.Contains(t, out, "A -> B -> D")
}

func TestPrintRun(t *testing.T) {
	color.NoColor = true

	res := &executor.Result{
		ActualRuntime: 6.12,
		Durations:     map[string]float64{"A": 2.01, "B": 3.05, "C": 1.02, "D": 1.01},
		Waves:         3,
	}

	var buf bytes.Buffer
	New(diamondScheduler(t)).PrintRun(&buf, res, false)

	out := buf.String()
	assert.Contains(t, out, "Expected runtime: 6.00 seconds")
	assert.Contains(t, out, "Actual runtime:   6.12 seconds")
	assert.Contains(t, out, "+0.12 seconds (+2.00%)")
	assert.NotContains(t, out, "Task execution details")
}

func TestPrintRun_Verbose(t *testing.T) {
	color.NoColor = true

	res := &executor.Result{
		ActualRuntime: 6.12,
		Durations:     map[string]float64{"A": 2.01, "B": 3.05, "C": 1.02, "D": 1.01},
		Waves:         3,
	}

	var buf bytes.Buffer
	New(diamondScheduler(t)).PrintRun(&buf, res, true)

	out := buf.String()
	assert.Contains(t, out, "Task execution details")
	assert.Contains(t, out, "declared=3.00s")
	assert.Contains(t, out, "actual=3.05s")
}

func TestPrintRun_ZeroExpected(t *testing.T) {
	color.NoColor = true

	s, err := scheduler.New(nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	New(s).PrintRun(&buf, &executor.Result{Durations: map[string]float64{}}, false)

	// No percentage when the expected runtime is zero.
	assert.NotContains(t, buf.String(), "%")
}

func TestValidationJSON(t *testing.T) {
	data, err := New(diamondScheduler(t)).ValidationJSON()
	require.NoError(t, err)

	var out struct {
		Valid           bool     `json:"valid"`
		ExpectedRuntime float64  `json:"expected_runtime"`
		TotalTasks      int      `json:"total_tasks"`
		TotalWaves      int      `json:"total_waves"`
		CriticalPath    []string `json:"critical_path"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, out.Valid)
	assert.Equal(t, 6.0, out.ExpectedRuntime)
	assert.Equal(t, 4, out.TotalTasks)
	assert.Equal(t, 3, out.TotalWaves)
	assert.Equal(t, []string{"A", "B", "D"}, out.CriticalPath)
}

func TestRunJSON(t *testing.T) {
	res := &executor.Result{
		ActualRuntime: 6.5,
		Durations:     map[string]float64{"A": 2.1},
		Waves:         3,
	}
	data, err := New(diamondScheduler(t)).RunJSON(res)
	require.NoError(t, err)

	var out struct {
		ActualRuntime float64            `json:"actual_runtime"`
		Difference    float64            `json:"difference"`
		TaskDurations map[string]float64 `json:"task_durations"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, 6.5, out.ActualRuntime)
	assert.InDelta(t, 0.5, out.Difference, 1e-9)
	assert.Equal(t, 2.1, out.TaskDurations["A"])
}
