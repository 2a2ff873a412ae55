// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"prodpack-cli/internal/issue"
	"prodpack-cli/internal/materialize"
	"prodpack-cli/pkg/archive"
	"prodpack-cli/pkg/packfile"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// archivePackfile is the explicit packfile path
	archivePackfile string
	// archiveWorkDir is the root of the materialized product trees
	archiveWorkDir string
	// archiveOutput is the directory archives are written to
	archiveOutput string
	// archiveManifest is the artifact manifest path
	archiveManifest string

	// archiveCmd runs the packaging pipeline
	archiveCmd = &cobra.Command{
		Use:   "archive",
		Short: "Archive all products declared in the packfile",
		Long: `Archive every product/environment combination the packfile declares.

Each combination is packaged from its materialized installation tree under
the work directory into '<name>-<os>.<ws>.<arch>.<format>' in the output
directory, and recorded in the artifact manifest. The run is all-or-nothing:
a classifier collision aborts before any archive is written, and the first
archiving failure aborts the rest.

Examples:
  prodpack archive
  prodpack archive --work-dir ./target/products --output ./target
  prodpack archive --packfile ./build/packfile.cue`,
		Args: cobra.NoArgs,
		RunE: runArchive,
	}
)

func init() {
	archiveCmd.Flags().StringVarP(&archivePackfile, "packfile", "f", "", "packfile path (default: ./packfile.cue)")
	archiveCmd.Flags().StringVarP(&archiveWorkDir, "work-dir", "w", "products", "root directory of the materialized product trees")
	archiveCmd.Flags().StringVarP(&archiveOutput, "output", "o", ".", "output directory for archives")
	archiveCmd.Flags().StringVar(&archiveManifest, "manifest", "", "artifact manifest path (default: <output>/artifacts.toml)")
}

func runArchive(cmd *cobra.Command, args []string) error {
	fmt.Println(TitleStyle.Render("Archive Products"))

	pf, err := loadPackfile(archivePackfile)
	if err != nil {
		return err
	}

	manifestPath := archiveManifest
	if manifestPath == "" {
		manifestPath = filepath.Join(archiveOutput, "artifacts.toml")
	}

	attacher := &materialize.ManifestAttacher{Path: manifestPath}
	driver := &materialize.Driver{
		Packfile:       pf,
		Layout:         materialize.DirLayout{Root: archiveWorkDir},
		Attacher:       attacher,
		OutputDir:      archiveOutput,
		ArchiveOptions: archive.Options{TarBackend: cfg.TarBackend()},
		Logger:         newLogger(),
	}

	if err := driver.Run(); err != nil {
		printIssueFor(err)
		return err
	}

	if err := attacher.Write(); err != nil {
		return err
	}

	fmt.Printf("%s Packaged %d artifact(s)\n", successIcon, len(attacher.Artifacts()))
	fmt.Println()
	for _, a := range attacher.Artifacts() {
		fmt.Printf("%s %s (%s, %s)\n", infoIcon, PathStyle.Render(a.Path), a.Classifier, formatFileSize(a.Size))
	}
	fmt.Println()
	fmt.Printf("%s Manifest: %s\n", infoIcon, PathStyle.Render(manifestPath))

	return nil
}

// loadPackfile locates and parses the packfile, mapping failures to their
// issue catalog entries.
func loadPackfile(explicit string) (*packfile.Packfile, error) {
	path, err := packfile.Find(".", explicit)
	if err != nil {
		printIssue(issue.PackfileNotFoundId)
		return nil, err
	}

	pf, err := packfile.ParseFile(path)
	if err != nil {
		printIssue(issue.PackfileParseErrorId)
		return nil, err
	}
	return pf, nil
}

// newLogger builds the driver logger honoring the verbose flag.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "prodpack",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// printIssueFor maps known fatal error classes to their issue catalog
// entries and prints the rendered guidance.
func printIssueFor(err error) {
	var collision *packfile.ClassifierCollisionError
	var unsupported *archive.UnsupportedFormatError
	var actionable *issue.ActionableError

	switch {
	case errors.As(err, &collision):
		printIssue(issue.ClassifierCollisionId)
	case errors.As(err, &unsupported):
		printIssue(issue.UnsupportedFormatId)
	case errors.As(err, &actionable) && actionable.Operation == "pack product":
		printIssue(issue.ArchivingFailedId)
	}
}

// printIssue renders one issue catalog entry to stderr. Rendering failures
// are ignored; the underlying error still propagates to the caller.
func printIssue(id issue.Id) {
	is := issue.Get(id)
	if is == nil {
		return
	}
	if out, err := is.Render("dark"); err == nil {
		fmt.Fprintln(os.Stderr, out)
	}
}

// formatFileSize formats a file size in bytes to a human-readable string.
func formatFileSize(size int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case size >= GB:
		return fmt.Sprintf("%.2f GB", float64(size)/float64(GB))
	case size >= MB:
		return fmt.Sprintf("%.2f MB", float64(size)/float64(MB))
	case size >= KB:
		return fmt.Sprintf("%.2f KB", float64(size)/float64(KB))
	default:
		return fmt.Sprintf("%d bytes", size)
	}
}
