// SPDX-License-Identifier: MPL-2.0

package materialize

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"prodpack-cli/internal/issue"
	"prodpack-cli/pkg/archive"
	"prodpack-cli/pkg/packfile"

	"github.com/charmbracelet/log"
)

// runMu serializes packaging runs process-wide. Only one run may proceed
// at a time; concurrent invocations block until the prior one completes.
var runMu sync.Mutex

// Driver runs the packaging pipeline for one packfile.
type Driver struct {
	// Packfile is the parsed build definition.
	Packfile *packfile.Packfile

	// Layout locates the materialized product installation trees.
	Layout Layout

	// Attacher receives one registration per produced archive.
	Attacher Attacher

	// OutputDir is where archives are written. Created if missing.
	OutputDir string

	// ArchiveOptions configure backend construction (tar.gz gzip
	// implementation selection).
	ArchiveOptions archive.Options

	// Logger receives progress output. Nil means the default logger.
	Logger *log.Logger
}

// Run executes the pipeline: validate classifier uniqueness, then archive
// every product/environment combination in declaration order. There is no
// partial-success terminal state: the first failure aborts the remaining
// run, and validation failures abort before any file is written.
func (d *Driver) Run() error {
	runMu.Lock()
	defer runMu.Unlock()

	envIndependent := func(p packfile.Product) bool {
		_, ok := d.Layout.ProductBundlePoolDirectory(p)
		return ok
	}

	if err := d.Packfile.ValidateUniqueClassifiers(envIndependent); err != nil {
		return err
	}

	if err := os.MkdirAll(d.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, p := range d.Packfile.Products {
		if _, ok := d.Layout.ProductBundlePoolDirectory(p); ok {
			if err := d.materialize(p, nil); err != nil {
				return err
			}
			continue
		}
		for i := range d.Packfile.Environments {
			if err := d.materialize(p, &d.Packfile.Environments[i]); err != nil {
				return err
			}
		}
	}

	return nil
}

// materialize archives one product/environment combination and registers
// the produced artifact.
func (d *Driver) materialize(p packfile.Product, env *packfile.TargetEnvironment) error {
	logger := d.logger()

	formatName := d.Packfile.ArchiveFormat(p, env)
	format, ok := archive.ParseFormat(formatName)
	if !ok {
		err := &archive.UnsupportedFormatError{Format: formatName}
		if env != nil {
			err.OS = env.OS
		}
		return err
	}

	// Fresh writer per invocation: backends carry no state across archives.
	writer, err := archive.NewWriter(format, d.ArchiveOptions)
	if err != nil {
		return err
	}

	destPath := filepath.Join(d.OutputDir,
		packfile.ArchiveFileName(p)+"-"+env.OsWsArch(".")+"."+format.Extension())
	sourceDir := d.Layout.ProductMaterializeDirectory(p, env)

	logger.Debug("packing product",
		"product", p.ID, "environment", env.OsWsArch("."),
		"format", formatName, "source", sourceDir, "dest", destPath)

	if err := writer.WriteArchive(sourceDir, destPath); err != nil {
		// The destination may be left truncated; the whole run is aborted,
		// so downstream tooling never consumes it.
		return issue.NewErrorContext().
			WithOperation("pack product").
			WithResource(p.ID).
			WithSuggestion("Verify the product was materialized before packaging").
			WithSuggestion("Check free space and permissions on the output directory").
			Wrap(err).
			BuildError()
	}

	classifier := packfile.ArtifactClassifier(p, env)
	if err := d.Attacher.Attach(Artifact{
		Format:     formatName,
		Classifier: classifier,
		Path:       destPath,
	}); err != nil {
		return issue.NewErrorContext().
			WithOperation("attach artifact").
			WithResource(destPath).
			Wrap(err).
			BuildError()
	}

	logger.Info("packed product", "product", p.ID, "classifier", classifier, "archive", destPath)
	return nil
}

func (d *Driver) logger() *log.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return log.Default()
}
