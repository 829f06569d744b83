package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestListShowsEmbeddedCatalog(t *testing.T) {
	noColor(t)

	out, err := executeRoot(t, "list")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}

	for _, want := range []string{"Development", "Multimedia", "Gaming"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing category %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "Distributed version control system (git)") {
		t.Fatalf("missing app row:\n%s", out)
	}
	if !strings.Contains(out, "(docker.io)") {
		t.Fatalf("missing package id:\n%s", out)
	}
}

func TestListUsesCatalogOverride(t *testing.T) {
	noColor(t)

	path := filepath.Join(t.TempDir(), "catalog.toml")
	contents := `
[[categories]]
name = "Shells"

  [[categories.apps]]
  name = "fish"
  description = "Friendly interactive shell"
  package = "fish"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := executeRoot(t, "list", "--catalog", path)
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out, "Shells") || !strings.Contains(out, "Friendly interactive shell (fish)") {
		t.Fatalf("override catalog not used:\n%s", out)
	}
	if strings.Contains(out, "Development") {
		t.Fatalf("embedded catalog leaked into output:\n%s", out)
	}
}

func TestListRejectsMissingCatalogFile(t *testing.T) {
	if _, err := executeRoot(t, "list", "--catalog", filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}
