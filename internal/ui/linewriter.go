package ui

import (
	"bytes"
	"io"
	"sync"
)

// LineWriter serializes output from concurrent task workers onto one
// destination, prefixing every line with the task's colored tag so
// interleaved progress stays attributable. It implements io.Writer.
//
// Writers for different tasks share the same mutex so whole lines from
// one task never split lines from another.
type LineWriter struct {
	prefix string
	dest   io.Writer
	mu     *sync.Mutex
	buf    []byte
}

// NewLineWriter creates a LineWriter that prefixes output with [name].
// All LineWriters sharing dest must share mu.
func NewLineWriter(name string, dest io.Writer, mu *sync.Mutex) *LineWriter {
	return &LineWriter{
		prefix: TaskPrefix(name) + " ",
		dest:   dest,
		mu:     mu,
	}
}

func (lw *LineWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	lw.buf = append(lw.buf, p...)
	var firstErr error
	for {
		idx := bytes.IndexByte(lw.buf, '\n')
		if idx == -1 {
			break
		}
		line := lw.buf[:idx]
		lw.buf = lw.buf[idx+1:]
		// Keep draining on a destination failure so the buffer never
		// replays stale lines; report the first error once done.
		if _, err := io.WriteString(lw.dest, lw.prefix+string(line)+"\n"); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return len(p), firstErr
}

// Flush writes any buffered partial line.
func (lw *LineWriter) Flush() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	if len(lw.buf) == 0 {
		return nil
	}
	_, err := io.WriteString(lw.dest, lw.prefix+string(lw.buf)+"\n")
	lw.buf = nil
	return err
}
