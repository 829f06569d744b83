// Package doctor runs host environment checks for appdeck.
package doctor

import (
	"context"
	"fmt"

	"github.com/conn-castle/appdeck/internal/backend"
	"github.com/conn-castle/appdeck/internal/messages"
)

// Status is the outcome of a single check.
type Status int

const (
	// StatusOK means the check passed.
	StatusOK Status = iota
	// StatusFail means the check failed.
	StatusFail
)

// Result is the outcome of one doctor check.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// CheckBackends probes every supported package manager and reports one result
// per manager, in resolution order. The second return value is the backend a
// run would select (first successful probe, matching the resolver).
func CheckBackends(ctx context.Context, runner backend.Runner) ([]Result, backend.Backend) {
	candidates := []backend.Backend{backend.Apt, backend.Dnf, backend.Pacman}
	selected := backend.Unknown

	results := make([]Result, 0, len(candidates))
	for _, b := range candidates {
		if backend.Probe(ctx, runner, b) {
			if selected == backend.Unknown {
				selected = b
			}
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameBackend,
				Message:   fmt.Sprintf(messages.DoctorBackendFoundFmt, b),
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameBackend,
			Message:   fmt.Sprintf(messages.DoctorBackendMissingFmt, b),
		})
	}

	if selected == backend.Unknown && len(results) > 0 {
		results[len(results)-1].Recommendation = messages.DoctorBackendProbeHint
	}
	return results, selected
}
