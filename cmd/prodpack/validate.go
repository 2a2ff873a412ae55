// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"prodpack-cli/internal/issue"
	"prodpack-cli/pkg/packfile"
	"prodpack-cli/pkg/platform"

	"github.com/spf13/cobra"
)

var (
	// validatePackfile is the explicit packfile path
	validatePackfile string

	// validateCmd checks the packfile without writing anything
	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate the packfile without producing archives",
		Long: `Validate the packfile: parse it and check that every product/environment
combination yields a unique artifact classifier.

This is the same check 'prodpack archive' performs before writing anything,
exposed as a dry run so collisions can be found without a materialized
work directory.

Examples:
  prodpack validate
  prodpack validate --packfile ./build/packfile.cue`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}
)

func init() {
	validateCmd.Flags().StringVarP(&validatePackfile, "packfile", "f", "", "packfile path (default: ./packfile.cue)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	fmt.Println(TitleStyle.Render("Validate Packfile"))

	pf, err := loadPackfile(validatePackfile)
	if err != nil {
		return err
	}

	combos := pf.Combinations(nil)
	if err := pf.ValidateUniqueClassifiers(nil); err != nil {
		printIssue(issue.ClassifierCollisionId)
		return err
	}

	fmt.Printf("%s %d product(s), %d combination(s), all classifiers unique\n",
		successIcon, len(pf.Products), len(combos))
	fmt.Println()
	for _, c := range combos {
		classifier := packfile.ArtifactClassifier(c.Product, c.Environment)
		name := packfile.ArchiveFileName(c.Product) + "-" + c.Environment.OsWsArch(".") +
			"." + pf.ArchiveFormat(c.Product, c.Environment)
		fmt.Printf("%s %s  classifier=%q\n", infoIcon, PathStyle.Render(name), classifier)
	}

	// Unrecognized axis values are legal but usually typos; flag them.
	for _, env := range pf.Environments {
		if !platform.KnownOS(env.OS) {
			fmt.Printf("%s unrecognized os %q in environment %s\n", warningIcon, env.OS, env.OsWsArch("."))
		}
		if !platform.KnownWS(env.WS) {
			fmt.Printf("%s unrecognized ws %q in environment %s\n", warningIcon, env.WS, env.OsWsArch("."))
		}
		if !platform.KnownArch(env.Arch) {
			fmt.Printf("%s unrecognized arch %q in environment %s\n", warningIcon, env.Arch, env.OsWsArch("."))
		}
	}

	return nil
}
