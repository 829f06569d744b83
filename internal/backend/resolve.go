package backend

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/conn-castle/appdeck/internal/messages"
)

// Runner abstracts external command execution so resolution and installation
// can be exercised with test doubles.
type Runner interface {
	// Run executes name with args and returns the captured standard error.
	// A missing executable or a non-zero exit is reported through err;
	// stderr is returned in either case. Standard output is discarded.
	Run(ctx context.Context, name string, args ...string) (stderr []byte, err error)
}

// ExecRunner implements Runner using os/exec.
type ExecRunner struct{}

// Run executes name with args and captures standard error.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.Bytes(), err
}

// ErrNoRunner indicates process execution is unavailable. It is the only
// fatal resolver error; probe failures are evidence of absence, not errors.
var ErrNoRunner = errors.New(messages.BackendRunnerRequired)

// probeOrder lists candidate backends in resolution order. Order is fixed:
// when more than one manager is installed, the first successful probe wins.
var probeOrder = []Backend{Apt, Dnf, Pacman}

// Probe reports whether b's executable is present and runnable. The probe
// invokes `<manager> --version`, which reads version information only and
// needs no elevated privileges.
func Probe(ctx context.Context, runner Runner, b Backend) bool {
	if runner == nil || b == Unknown {
		return false
	}
	_, err := runner.Run(ctx, b.String(), "--version")
	return err == nil
}

// Resolve probes the known package managers in order and returns the first
// whose probe succeeds. Unknown with a nil error means no supported manager
// is present on the host.
func Resolve(ctx context.Context, runner Runner) (Backend, error) {
	if runner == nil {
		return Unknown, ErrNoRunner
	}
	for _, b := range probeOrder {
		if Probe(ctx, runner, b) {
			return b, nil
		}
	}
	return Unknown, nil
}
