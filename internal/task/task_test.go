package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Valid(t *testing.T) {
	tk, err := New("build", 2.5, []string{"fetch", "configure"})
	require.NoError(t, err)
	assert.Equal(t, "build", tk.Name)
	assert.Equal(t, 2.5, tk.Duration)
	assert.Equal(t, []string{"fetch", "configure"}, tk.Deps)
}

func TestNew_NoDeps(t *testing.T) {
	tk, err := New("solo", 0, nil)
	require.NoError(t, err)
	assert.Empty(t, tk.Deps)
}

func TestNew_EmptyName(t *testing.T) {
	_, err := New("", 1, nil)
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestNew_NegativeDuration(t *testing.T) {
	_, err := New("a", -0.5, nil)
	assert.ErrorIs(t, err, ErrNegativeDuration)
}

func TestNew_EmptyDependency(t *testing.T) {
	_, err := New("a", 1, []string{"b", ""})
	assert.ErrorIs(t, err, ErrEmptyDependency)
}

func TestNew_CopiesDeps(t *testing.T) {
	deps := []string{"b"}
	tk, err := New("a", 1, deps)
	require.NoError(t, err)
	deps[0] = "mutated"
	assert.Equal(t, []string{"b"}, tk.Deps)
}

func TestString(t *testing.T) {
	tk, err := New("d", 1, []string{"b", "c"})
	require.NoError(t, err)
	assert.Equal(t, `Task "d" (duration: 1s, dependencies: b, c)`, tk.String())

	solo, err := New("a", 5, nil)
	require.NoError(t, err)
	assert.Equal(t, `Task "a" (duration: 5s, dependencies: none)`, solo.String())
}
