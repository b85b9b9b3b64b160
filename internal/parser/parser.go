// Package parser turns serialized task lists into task descriptors.
//
// Two formats are accepted: line-oriented CSV records and a JSON array.
// CSV records look like
//
//	name, duration, [dep1, dep2]
//	name, duration, dep1, dep2
//	name, duration
//
// where duration is seconds as a float and both dependency syntaxes
// normalize to the same ordered list. JSON input is an array of
// {"name": ..., "duration": ..., "dependencies": [...]} objects.
package parser

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/joshharrison/waverun/internal/task"
)

// Parse reads a task list from text. A JSON array input is detected and
// routed to ParseJSON; anything else parses as CSV records.
func Parse(text string) ([]*task.Task, error) {
	if trimmed := strings.TrimSpace(text); strings.HasPrefix(trimmed, "[") && gjson.Valid(trimmed) {
		return ParseJSON(trimmed)
	}
	return parseCSV(text)
}

// ParseFile reads a task list from a file.
func ParseFile(path string) ([]*task.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task list: %w", err)
	}
	return Parse(string(data))
}

func parseCSV(text string) ([]*task.Task, error) {
	var tasks []*task.Task

	for i, line := range strings.Split(text, "\n") {
		lineNo := i + 1 // errors report 1-based line numbers
		if strings.TrimSpace(line) == "" {
			continue
		}

		// Split on the first two commas only: everything after the
		// duration is the dependency region, which may itself contain
		// commas (a csv reader would split inside "[B, C]").
		fields := strings.SplitN(line, ",", 3)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: each task needs at least a name and a duration", lineNo)
		}

		name := strings.TrimSpace(fields[0])
		durStr := strings.TrimSpace(fields[1])
		duration, err := strconv.ParseFloat(durStr, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid duration %q", lineNo, durStr)
		}

		var deps []string
		if len(fields) == 3 {
			deps = parseDeps(fields[2])
		}

		t, err := task.New(name, duration, deps)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		tasks = append(tasks, t)
	}

	return tasks, nil
}

// parseDeps normalizes both dependency syntaxes — bracketed list and
// trailing bare names — to one ordered slice.
func parseDeps(s string) []string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	deps := make([]string, 0, len(parts))
	for _, p := range parts {
		deps = append(deps, strings.TrimSpace(p))
	}
	return deps
}

// ParseJSON reads a task list from a JSON array of task objects.
func ParseJSON(text string) ([]*task.Task, error) {
	root := gjson.Parse(text)
	if !root.IsArray() {
		return nil, fmt.Errorf("json task list must be an array")
	}

	var tasks []*task.Task
	var parseErr error

	root.ForEach(func(_, item gjson.Result) bool {
		idx := len(tasks)
		name := item.Get("name")
		if name.Type != gjson.String {
			parseErr = fmt.Errorf("task %d: missing or non-string name", idx)
			return false
		}
		dur := item.Get("duration")
		if dur.Type != gjson.Number {
			parseErr = fmt.Errorf("task %d (%s): missing or non-numeric duration", idx, name.String())
			return false
		}

		var deps []string
		for _, d := range item.Get("dependencies").Array() {
			if d.Type != gjson.String {
				parseErr = fmt.Errorf("task %d (%s): dependency entries must be strings", idx, name.String())
				return false
			}
			deps = append(deps, d.String())
		}
		if parseErr != nil {
			return false
		}

		t, err := task.New(name.String(), dur.Float(), deps)
		if err != nil {
			parseErr = fmt.Errorf("task %d: %w", idx, err)
			return false
		}
		tasks = append(tasks, t)
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}
	return tasks, nil
}
