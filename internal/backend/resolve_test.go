package backend

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner succeeds for the executables listed in ok and records every
// invocation as "name arg arg...".
type fakeRunner struct {
	ok    map[string]bool
	calls []string
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, strings.Join(append([]string{name}, args...), " "))
	if r.ok[name] {
		return nil, nil
	}
	return nil, errors.New("executable file not found in $PATH")
}

func TestResolveFirstMatchWins(t *testing.T) {
	runner := &fakeRunner{ok: map[string]bool{"apt": true, "dnf": true}}

	b, err := Resolve(context.Background(), runner)

	require.NoError(t, err)
	assert.Equal(t, Apt, b)
	// Resolution short-circuits: dnf is never probed once apt succeeds.
	assert.Equal(t, []string{"apt --version"}, runner.calls)
}

func TestResolveSkipsAbsentManagers(t *testing.T) {
	runner := &fakeRunner{ok: map[string]bool{"pacman": true}}

	b, err := Resolve(context.Background(), runner)

	require.NoError(t, err)
	assert.Equal(t, Pacman, b)
	assert.Equal(t, []string{"apt --version", "dnf --version", "pacman --version"}, runner.calls)
}

func TestResolveNoBackendPresent(t *testing.T) {
	runner := &fakeRunner{}

	b, err := Resolve(context.Background(), runner)

	// Absence is data, not an error.
	require.NoError(t, err)
	assert.Equal(t, Unknown, b)
}

func TestResolveNilRunnerIsFatal(t *testing.T) {
	b, err := Resolve(context.Background(), nil)

	assert.Equal(t, Unknown, b)
	assert.ErrorIs(t, err, ErrNoRunner)
}

func TestProbeUnknown(t *testing.T) {
	runner := &fakeRunner{ok: map[string]bool{"unknown": true}}

	assert.False(t, Probe(context.Background(), runner, Unknown))
	assert.Empty(t, runner.calls)
}
