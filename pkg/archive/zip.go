// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// zipWriter archives a directory tree into a standard zip file. Every
// entry under the source directory is included, hidden files too.
type zipWriter struct{}

func (w *zipWriter) WriteArchive(sourceDir, destPath string) error {
	zipFile, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create archive file: %w", err)
	}
	defer zipFile.Close()

	zw := zip.NewWriter(zipFile)

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

		if d.IsDir() {
			if _, err := zw.Create(entryName + "/"); err != nil {
				return fmt.Errorf("failed to create directory entry %s: %w", entryName, err)
			}
			return nil
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return fmt.Errorf("failed to create header for %s: %w", entryName, err)
		}
		header.Name = entryName
		header.Method = zip.Deflate

		entry, err := zw.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("failed to create entry %s: %w", entryName, err)
		}

		if info.Mode()&fs.ModeSymlink != 0 {
			// Symlinks are stored as entries whose content is the link
			// target, matching common archiver behavior.
			target, err := os.Readlink(path)
			if err != nil {
				return fmt.Errorf("failed to read symlink %s: %w", path, err)
			}
			if _, err := entry.Write([]byte(target)); err != nil {
				return fmt.Errorf("failed to write symlink entry %s: %w", entryName, err)
			}
			return nil
		}

		src, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer src.Close()

		if _, err := io.Copy(entry, src); err != nil {
			return fmt.Errorf("failed to write entry %s: %w", entryName, err)
		}
		return nil
	})
	if err != nil {
		zw.Close()
		return err
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return zipFile.Close()
}
