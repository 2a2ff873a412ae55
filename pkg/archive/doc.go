// SPDX-License-Identifier: MPL-2.0

// Package archive provides the archive-writing backends for product
// packaging.
//
// The format set is closed: zip (the default) and tar.gz, with tgz as an
// alias that keeps its own file extension. Backends archive the complete
// contents of a source directory; nothing is excluded, so hidden and VCS
// files end up in the archive verbatim. Packaging must be exhaustive, not
// selective.
package archive
