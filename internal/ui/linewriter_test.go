package ui

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineWriter_PrefixesLines(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	var mu sync.Mutex
	lw := NewLineWriter("build", &buf, &mu)

	_, err := lw.Write([]byte("first\nsecond\n"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "[build] first", lines[0])
	assert.Equal(t, "[build] second", lines[1])
}

func TestLineWriter_BuffersPartialLines(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	var mu sync.Mutex
	lw := NewLineWriter("a", &buf, &mu)

	_, err := lw.Write([]byte("par"))
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	_, err = lw.Write([]byte("tial\n"))
	require.NoError(t, err)
	assert.Equal(t, "[a] partial\n", buf.String())
}

func TestLineWriter_Flush(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	var mu sync.Mutex
	lw := NewLineWriter("a", &buf, &mu)

	_, err := lw.Write([]byte("tail"))
	require.NoError(t, err)
	require.NoError(t, lw.Flush())
	assert.Equal(t, "[a] tail\n", buf.String())

	// Flushing with nothing buffered writes nothing.
	buf.Reset()
	require.NoError(t, lw.Flush())
	assert.Empty(t, buf.String())
}

// flakyWriter fails its first write, then delegates.
type flakyWriter struct {
	dest   *bytes.Buffer
	writes int
}

func (f *flakyWriter) Write(p []byte) (int, error) {
	f.writes++
	if f.writes == 1 {
		return 0, errors.New("sink unavailable")
	}
	return f.dest.Write(p)
}

func TestLineWriter_DestinationErrorReportedAndDrained(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	var mu sync.Mutex
	fw := &flakyWriter{dest: &out}
	lw := NewLineWriter("a", fw, &mu)

	n, err := lw.Write([]byte("one\ntwo\n"))
	assert.Equal(t, 8, n)
	assert.EqualError(t, err, "sink unavailable")

	// Both lines were attempted: the failed line is not replayed, and
	// the second still reached the destination.
	assert.Equal(t, 2, fw.writes)
	assert.Equal(t, "[a] two\n", out.String())

	// Nothing stale remains buffered.
	require.NoError(t, lw.Flush())
	assert.Equal(t, "[a] two\n", out.String())
}

func TestLineWriter_ConcurrentWritersKeepLinesWhole(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, name := range []string{"alpha", "beta", "gamma"} {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			lw := NewLineWriter(name, &buf, &mu)
			for i := 0; i < 50; i++ {
				_, _ = lw.Write([]byte("line from " + name + "\n"))
			}
		}(name)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 150)
	for _, line := range lines {
		assert.Regexp(t, `^\[(alpha|beta|gamma)\] line from (alpha|beta|gamma)$`, line)
	}
}
