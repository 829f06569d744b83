package installer

// EventKind identifies the kind of event emitted during an installation run.
type EventKind int

const (
	// EventStarted is emitted when processing of a request begins.
	// Index and Total carry the 1-based position and the request count.
	EventStarted EventKind = iota

	// EventCommandBuilt carries the exact argument vector that would run,
	// so the user can always see what a request translates to.
	EventCommandBuilt

	// EventDryRunSkipped ends a request in dry-run mode; the command was
	// built but never executed.
	EventDryRunSkipped

	// EventSucceeded ends a request whose install command exited zero.
	EventSucceeded

	// EventFailed ends a request whose command exited non-zero, could not
	// be launched, or carried an unsafe package id. Stderr holds the
	// diagnostic excerpt.
	EventFailed

	// EventUnknownBackend ends a request when no package manager is
	// available; no command is built.
	EventUnknownBackend

	// EventRunCompleted is the final event of every run and carries the
	// tallies.
	EventRunCompleted
)

// Event is one unit of the orchestrator's output stream.
//
// Ordering guarantees, per request and in input order:
//   - exactly one EventStarted, then
//   - for a known backend, EventCommandBuilt (unless the package id is
//     rejected), then
//   - exactly one terminal kind: EventSucceeded, EventFailed,
//     EventDryRunSkipped, or EventUnknownBackend.
//
// EventRunCompleted is emitted exactly once, last, and the channel is closed
// after it.
type Event struct {
	Kind        EventKind
	Index       int    // 1-based request position (EventStarted)
	Total       int    // request count (EventStarted)
	DisplayName string // requesting app (all per-request kinds)

	// Command is the argument vector (EventCommandBuilt).
	Command []string

	// Stderr is the failure diagnostic, at most StderrExcerptCap bytes
	// (EventFailed).
	Stderr string

	// Run tallies (EventRunCompleted). Attempted counts every request that
	// received an EventStarted; Succeeded+Failed never exceeds Attempted,
	// since dry-run-skipped and unknown-backend requests fill the gap.
	Attempted int
	Succeeded int
	Failed    int
}

// Terminal reports whether k ends the processing of a single request.
func (k EventKind) Terminal() bool {
	switch k {
	case EventSucceeded, EventFailed, EventDryRunSkipped, EventUnknownBackend:
		return true
	default:
		return false
	}
}
