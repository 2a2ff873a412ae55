// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// writeTree lays out files under root; keys use slashes, empty values with a
// trailing slash in the key create directories.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if name[len(name)-1] == '/' {
			if err := os.MkdirAll(path, 0o755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestZipWriteArchive(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{
		"launcher":            "#!/bin/sh\nexec app\n",
		"plugins/core.jar":    "core bytes",
		"plugins/.gitkeep":    "",
		"configuration/":      "",
		".settings/prefs.ini": "theme=dark\n",
	})

	dest := filepath.Join(t.TempDir(), "out.zip")
	w, err := NewWriter(FormatZip, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.WriteArchive(src, dest); err != nil {
		t.Fatalf("WriteArchive() error: %v", err)
	}

	r, err := zip.OpenReader(dest)
	if err != nil {
		t.Fatalf("archive is not readable: %v", err)
	}
	defer r.Close()

	entries := make(map[string]string)
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			entries[f.Name] = ""
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		entries[f.Name] = string(data)
	}

	if got := entries["launcher"]; got != "#!/bin/sh\nexec app\n" {
		t.Errorf("launcher content = %q", got)
	}
	if got := entries["plugins/core.jar"]; got != "core bytes" {
		t.Errorf("plugins/core.jar content = %q", got)
	}
	// Hidden files and directories are archived like any other entry.
	if _, ok := entries["plugins/.gitkeep"]; !ok {
		t.Error("hidden file plugins/.gitkeep missing from archive")
	}
	if _, ok := entries[".settings/prefs.ini"]; !ok {
		t.Error("hidden directory entry .settings/prefs.ini missing from archive")
	}
	if _, ok := entries["configuration/"]; !ok {
		t.Error("empty directory configuration/ missing from archive")
	}
}

func TestZipWriteArchiveMissingSource(t *testing.T) {
	w, err := NewWriter(FormatZip, Options{})
	if err != nil {
		t.Fatal(err)
	}
	dest := filepath.Join(t.TempDir(), "out.zip")
	if err := w.WriteArchive(filepath.Join(t.TempDir(), "absent"), dest); err == nil {
		t.Error("expected an error for a missing source directory")
	}
}
