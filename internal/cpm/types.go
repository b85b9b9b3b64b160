package cpm

// Result holds the complete critical path analysis for one graph.
type Result struct {
	Tasks         map[string]*TaskSchedule
	CriticalPath  []string // task names on the critical path, topo order
	TotalDuration float64  // expected runtime in seconds (max EF)
	Waves         []Wave   // parallelizable groups in dispatch order
	TopoOrder     []string
}

// TaskSchedule holds the scheduling figures for a single task. Times
// are seconds from the start of the run.
type TaskSchedule struct {
	Name       string
	ES, EF     float64 // earliest start/finish
	LS, LF     float64 // latest start/finish
	Slack      float64
	IsCritical bool
	Wave       int // readiness depth: 0 for tasks with no dependencies
}

// Wave is a group of tasks that become ready together and execute in
// parallel.
type Wave struct {
	Index      int
	TaskNames  []string
	IsCritical bool // true if the wave contains critical path tasks
}
