// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	kpgzip "github.com/klauspost/compress/gzip"
)

// tarGzWriter archives a directory tree into a gzip-compressed tar file.
// Headers use the GNU tar format so paths longer than the classic
// 100-character limit are neither warned about nor truncated.
//
// The gzip stream comes from one of two interchangeable implementations
// selected by the backend field; the resulting files are format-compatible.
type tarGzWriter struct {
	backend TarBackend
}

func (w *tarGzWriter) WriteArchive(sourceDir, destPath string) error {
	archiveFile, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create archive file: %w", err)
	}
	defer archiveFile.Close()

	gz, err := w.newGzipWriter(archiveFile)
	if err != nil {
		return err
	}
	tw := tar.NewWriter(gz)

	err = filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == sourceDir {
			return nil
		}

		relPath, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		entryName := filepath.ToSlash(relPath)

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}

		linkTarget := ""
		if info.Mode()&fs.ModeSymlink != 0 {
			if linkTarget, err = os.Readlink(path); err != nil {
				return fmt.Errorf("failed to read symlink %s: %w", path, err)
			}
		}

		header, err := tar.FileInfoHeader(info, linkTarget)
		if err != nil {
			return fmt.Errorf("failed to create header for %s: %w", entryName, err)
		}
		header.Name = entryName
		if d.IsDir() {
			header.Name += "/"
		}
		header.Format = tar.FormatGNU

		if err := tw.WriteHeader(header); err != nil {
			return fmt.Errorf("failed to write header for %s: %w", entryName, err)
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		src, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer src.Close()

		if _, err := io.Copy(tw, src); err != nil {
			return fmt.Errorf("failed to write entry %s: %w", entryName, err)
		}
		return nil
	})
	if err != nil {
		tw.Close()
		gz.Close()
		return err
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finalize tar stream: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to finalize gzip stream: %w", err)
	}
	return archiveFile.Close()
}

// newGzipWriter constructs the gzip stream for the selected backend.
func (w *tarGzWriter) newGzipWriter(dst io.Writer) (io.WriteCloser, error) {
	switch w.backend {
	case TarBackendStdlib:
		return gzip.NewWriter(dst), nil
	case TarBackendFast, "":
		return kpgzip.NewWriter(dst), nil
	}
	return nil, fmt.Errorf("unknown tar backend %q", w.backend)
}
