// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for prodpack.
//
// This package implements the Cobra command hierarchy for the prodpack
// CLI: the root command, the archive command that runs the packaging
// pipeline, and the validate and formats inspection commands.
package cmd
