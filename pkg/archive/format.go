// SPDX-License-Identifier: MPL-2.0

package archive

import "fmt"

// Format identifies an archive format. The set is closed; adding a format
// means adding a backend in NewWriter.
type Format string

const (
	// FormatZip is a standard zip archive.
	FormatZip Format = "zip"
	// FormatTarGz is a gzip-compressed tar archive.
	FormatTarGz Format = "tar.gz"
	// FormatTgz is an alias of FormatTarGz that keeps the .tgz extension.
	FormatTgz Format = "tgz"
)

// TarBackend selects which gzip implementation backs tar.gz archives. The
// implementations are interchangeable at the file level; the switch exists
// so a backend migration can be rolled back from configuration.
type TarBackend string

const (
	// TarBackendFast compresses with klauspost/compress gzip (default).
	TarBackendFast TarBackend = "fast"
	// TarBackendStdlib compresses with the standard library gzip.
	TarBackendStdlib TarBackend = "stdlib"
)

// ParseFormat maps a format identifier string to its Format.
// ok is false for identifiers with no registered backend.
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case FormatZip, FormatTarGz, FormatTgz:
		return Format(s), true
	}
	return "", false
}

// Extension returns the file extension for the format, without a leading
// dot. The tgz alias keeps its own extension.
func (f Format) Extension() string {
	return string(f)
}

// UnsupportedFormatError reports a resolved format identifier that has no
// registered backend. OS names the offending environment's operating
// system when the resolution was environment-specific.
type UnsupportedFormatError struct {
	Format string
	OS     string
}

// Error implements the error interface.
func (e *UnsupportedFormatError) Error() string {
	if e.OS != "" {
		return fmt.Sprintf("unknown or unsupported archive format os=%s format=%s", e.OS, e.Format)
	}
	return fmt.Sprintf("unknown or unsupported archive format format=%s", e.Format)
}

// Options configure archive writer construction.
type Options struct {
	// TarBackend selects the gzip implementation for tar.gz archives.
	// Empty means TarBackendFast.
	TarBackend TarBackend
}

// Writer writes the complete contents of a source directory into an
// archive file. Implementations are single-use values: construct a fresh
// Writer per archive so no state is shared between invocations.
type Writer interface {
	// WriteArchive archives everything under sourceDir into destPath.
	// On failure the destination file may be left truncated; callers are
	// expected to treat any error as fatal for the enclosing run.
	WriteArchive(sourceDir, destPath string) error
}

// NewWriter returns a fresh Writer for the format.
func NewWriter(f Format, opts Options) (Writer, error) {
	switch f {
	case FormatZip:
		return &zipWriter{}, nil
	case FormatTarGz, FormatTgz:
		backend := opts.TarBackend
		if backend == "" {
			backend = TarBackendFast
		}
		return &tarGzWriter{backend: backend}, nil
	}
	return nil, &UnsupportedFormatError{Format: string(f)}
}
