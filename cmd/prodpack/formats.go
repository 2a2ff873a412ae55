// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"prodpack-cli/pkg/archive"
	"prodpack-cli/pkg/packfile"

	"github.com/spf13/cobra"
)

var (
	// formatsPackfile is the explicit packfile path
	formatsPackfile string

	// formatsCmd lists archive formats and their resolution
	formatsCmd = &cobra.Command{
		Use:   "formats",
		Short: "Show supported archive formats and per-OS resolution",
		Long: `Show the supported archive formats and, when a packfile is present, the
format each product/environment combination resolves to.

Examples:
  prodpack formats
  prodpack formats --packfile ./build/packfile.cue`,
		Args: cobra.NoArgs,
		RunE: runFormats,
	}
)

func init() {
	formatsCmd.Flags().StringVarP(&formatsPackfile, "packfile", "f", "", "packfile path (default: ./packfile.cue)")
}

func runFormats(cmd *cobra.Command, args []string) error {
	fmt.Println(TitleStyle.Render("Archive Formats"))

	fmt.Printf("%s %s (default)\n", infoIcon, archive.FormatZip)
	fmt.Printf("%s %s\n", infoIcon, archive.FormatTarGz)
	fmt.Printf("%s %s (alias of %s, keeps the .tgz extension)\n", infoIcon, archive.FormatTgz, archive.FormatTarGz)

	path, err := packfile.Find(".", formatsPackfile)
	if err != nil {
		// No packfile around is fine; only the format list was asked for.
		return nil
	}

	pf, err := packfile.ParseFile(path)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(SubtitleStyle.Render("Resolution for " + path + ":"))
	for _, c := range pf.Combinations(nil) {
		resolved := pf.ArchiveFormat(c.Product, c.Environment)
		if _, known := archive.ParseFormat(resolved); known {
			fmt.Printf("%s %s -> %s\n", infoIcon, c, resolved)
		} else {
			fmt.Printf("%s %s -> %s (no backend!)\n", warningIcon, c, resolved)
		}
	}

	return nil
}
