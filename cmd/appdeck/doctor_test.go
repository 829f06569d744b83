package main

import (
	"strings"
	"testing"

	"github.com/conn-castle/appdeck/internal/backend"
)

func stubDoctorRunner(t *testing.T, runner backend.Runner) {
	t.Helper()
	orig := doctorRunner
	doctorRunner = runner
	t.Cleanup(func() { doctorRunner = orig })
}

func TestDoctorReportsSelectedBackend(t *testing.T) {
	noColor(t)
	stubDoctorRunner(t, &fakeRunner{ok: map[string]bool{"dnf": true}})

	out, err := executeRoot(t, "doctor")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}

	if !strings.Contains(out, "[FAIL] Backend    apt not found") {
		t.Fatalf("missing apt failure:\n%s", out)
	}
	if !strings.Contains(out, "[OK]   Backend    dnf is available") {
		t.Fatalf("missing dnf success:\n%s", out)
	}
	if !strings.Contains(out, "Selected backend: dnf") {
		t.Fatalf("missing selected backend:\n%s", out)
	}
}

func TestDoctorFailsWhenNoBackendFound(t *testing.T) {
	noColor(t)
	stubDoctorRunner(t, &fakeRunner{})

	out, err := executeRoot(t, "doctor")
	if err == nil {
		t.Fatal("expected error when no backend is available")
	}
	if err.Error() != "environment check failed" {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "No supported package manager detected.") {
		t.Fatalf("missing summary:\n%s", out)
	}
	if !strings.Contains(out, "Install apt, dnf, or pacman") {
		t.Fatalf("missing recommendation:\n%s", out)
	}
}
