// Package installer executes install requests sequentially through a
// resolved package-manager backend, reporting per-request progress as an
// ordered event stream.
package installer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"

	"github.com/conn-castle/appdeck/internal/backend"
	"github.com/conn-castle/appdeck/internal/messages"
)

// Request is one user-selected application to install. PackageID is the only
// field that reaches a command line and is validated before use; it is never
// trusted as pre-sanitized.
type Request struct {
	DisplayName string
	PackageID   string
}

// StderrExcerptCap bounds the diagnostic excerpt carried by EventFailed.
const StderrExcerptCap = 200

// packageIDPattern matches identifiers the orchestrator will hand to a
// package manager. Covers apt/dnf/pacman naming (letters, digits, and
// +.-_:@ after the first character); anything else is rejected before a
// command is built.
var packageIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9+._:@-]*$`)

// Orchestrator runs install requests one at a time through a Runner.
type Orchestrator struct {
	runner backend.Runner
}

// New returns an Orchestrator executing commands through runner. A nil
// runner is rejected here since no request could ever be processed.
func New(runner backend.Runner) (*Orchestrator, error) {
	if runner == nil {
		return nil, errors.New(messages.InstallerRunnerRequired)
	}
	return &Orchestrator{runner: runner}, nil
}

// Run processes requests strictly in input order and returns an unbuffered
// channel of events; the producer blocks on the consumer, so the sequence is
// lazy and non-restartable. One request's failure never prevents later
// requests from being attempted.
//
// Cancelling ctx stops the run at the next request boundary; the command in
// flight, if any, runs to completion. EventRunCompleted is emitted (with the
// tallies so far) and the channel closed on every path.
func (o *Orchestrator) Run(ctx context.Context, b backend.Backend, dryRun bool, requests []Request) <-chan Event {
	events := make(chan Event)
	go func() {
		defer close(events)
		total := len(requests)
		var attempted, succeeded, failed int
	loop:
		for i, req := range requests {
			select {
			case <-ctx.Done():
				break loop
			default:
			}

			attempted++
			events <- Event{Kind: EventStarted, Index: i + 1, Total: total, DisplayName: req.DisplayName}

			if b == backend.Unknown {
				events <- Event{Kind: EventUnknownBackend, DisplayName: req.DisplayName}
				continue
			}

			if !packageIDPattern.MatchString(req.PackageID) {
				failed++
				events <- Event{
					Kind:        EventFailed,
					DisplayName: req.DisplayName,
					Stderr:      excerpt(fmt.Sprintf(messages.InstallerInvalidPackageIDFmt, req.PackageID)),
				}
				continue
			}

			argv, err := backend.Command(b, req.PackageID)
			if err != nil {
				failed++
				events <- Event{Kind: EventFailed, DisplayName: req.DisplayName, Stderr: excerpt(err.Error())}
				continue
			}
			events <- Event{Kind: EventCommandBuilt, DisplayName: req.DisplayName, Command: argv}

			if dryRun {
				events <- Event{Kind: EventDryRunSkipped, DisplayName: req.DisplayName}
				continue
			}

			// A launched command runs to completion; cancellation only
			// takes effect at the next request boundary.
			stderr, err := o.runner.Run(context.WithoutCancel(ctx), argv[0], argv[1:]...)
			if err != nil {
				failed++
				events <- Event{Kind: EventFailed, DisplayName: req.DisplayName, Stderr: failureExcerpt(stderr, err)}
				continue
			}
			succeeded++
			events <- Event{Kind: EventSucceeded, DisplayName: req.DisplayName}
		}
		events <- Event{Kind: EventRunCompleted, Attempted: attempted, Succeeded: succeeded, Failed: failed}
	}()
	return events
}

// failureExcerpt prefers the command's own stderr. A process that ran and
// exited non-zero without output is reported with its exit status; an error
// from a command that never started is marked as a launch failure so the two
// causes stay distinguishable.
func failureExcerpt(stderr []byte, err error) string {
	if len(bytes.TrimSpace(stderr)) > 0 {
		return excerpt(string(stderr))
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return excerpt(err.Error())
	}
	return excerpt(fmt.Sprintf(messages.InstallerLaunchFailedFmt, err))
}

// excerpt truncates s to StderrExcerptCap bytes.
func excerpt(s string) string {
	if len(s) > StderrExcerptCap {
		return s[:StderrExcerptCap]
	}
	return s
}
