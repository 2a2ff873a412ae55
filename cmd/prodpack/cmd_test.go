// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"prodpack-cli/internal/config"
	"prodpack-cli/internal/issue"
	"prodpack-cli/pkg/packfile"
)

// setupWorkspace builds a directory with a packfile and materialized product
// trees, chdirs into it, and points the command flags at it.
func setupWorkspace(t *testing.T, packfileContent string, trees []string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, packfile.DefaultFileName), []byte(packfileContent), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, tree := range trees {
		sub := filepath.Join(dir, "products", filepath.FromSlash(tree))
		if err := os.MkdirAll(sub, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(sub, "content.txt"), []byte(tree), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	t.Chdir(dir)

	cfg = config.DefaultConfig()
	archivePackfile = ""
	archiveWorkDir = "products"
	archiveOutput = "out"
	archiveManifest = ""
	validatePackfile = ""
	t.Cleanup(func() {
		cfg = nil
		archiveOutput = "."
	})

	return dir
}

func TestRunArchive(t *testing.T) {
	dir := setupWorkspace(t, `
products: [{id: "main"}]
environments: [
	{os: "win32", ws: "win32", arch: "x86"},
	{os: "linux", ws: "gtk", arch: "x86"},
]
`, []string{
		"main/win32.win32.x86",
		"main/linux.gtk.x86",
	})

	if err := runArchive(archiveCmd, nil); err != nil {
		t.Fatalf("runArchive() error: %v", err)
	}

	for _, name := range []string{"main-win32.win32.x86.zip", "main-linux.gtk.x86.zip", "artifacts.toml"} {
		if _, err := os.Stat(filepath.Join(dir, "out", name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestRunArchiveCollision(t *testing.T) {
	dir := setupWorkspace(t, `
products: [{id: "one"}, {id: "two"}]
environments: [{os: "linux", ws: "gtk", arch: "x86"}]
`, []string{
		"one/linux.gtk.x86",
		"two/linux.gtk.x86",
	})

	err := runArchive(archiveCmd, nil)
	if err == nil {
		t.Fatal("expected a collision error")
	}
	var collision *packfile.ClassifierCollisionError
	if !errors.As(err, &collision) {
		t.Fatalf("error is %T, want *packfile.ClassifierCollisionError", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "out")); !os.IsNotExist(statErr) {
		t.Error("output directory was created despite the collision")
	}
}

func TestRunArchiveMissingPackfile(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg = config.DefaultConfig()
	archivePackfile = ""
	t.Cleanup(func() { cfg = nil })

	if err := runArchive(archiveCmd, nil); err == nil {
		t.Fatal("expected an error when no packfile exists")
	}
}

func TestRunValidate(t *testing.T) {
	setupWorkspace(t, `
products: [
	{id: "main"},
	{id: "extra", attach_id: "extra"},
]
environments: [{os: "linux", ws: "gtk", arch: "x86"}]
`, nil)

	if err := runValidate(validateCmd, nil); err != nil {
		t.Fatalf("runValidate() error: %v", err)
	}
}

func TestRunValidateCollision(t *testing.T) {
	setupWorkspace(t, `
products: [{id: "one"}, {id: "two"}]
environments: [{os: "linux", ws: "gtk", arch: "x86"}]
`, nil)

	if err := runValidate(validateCmd, nil); err == nil {
		t.Fatal("expected a collision error")
	}
}

func TestRunFormats(t *testing.T) {
	setupWorkspace(t, `
products: [{id: "main"}]
environments: [{os: "linux", ws: "gtk", arch: "x86"}]
formats: {linux: "tar.gz"}
`, nil)
	formatsPackfile = ""

	if err := runFormats(formatsCmd, nil); err != nil {
		t.Fatalf("runFormats() error: %v", err)
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{0, "0 bytes"},
		{512, "512 bytes"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1048576, "1.00 MB"},
		{1073741824, "1.00 GB"},
	}

	for _, tt := range tests {
		if got := formatFileSize(tt.size); got != tt.expected {
			t.Errorf("formatFileSize(%d) = %q, want %q", tt.size, got, tt.expected)
		}
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	plain := errors.New("plain failure")
	if got := formatErrorForDisplay(plain, false); got != "plain failure" {
		t.Errorf("plain error = %q", got)
	}

	ae := issue.NewErrorContext().
		WithOperation("load configuration").
		WithSuggestion("Check the file").
		Wrap(plain).
		BuildError()
	got := formatErrorForDisplay(ae, false)
	if got == ae.Error() {
		t.Error("actionable errors should render suggestions, not just the message")
	}
}
