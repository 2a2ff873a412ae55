// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error context and a catalog of known
// failure modes with rendered markdown guidance.
//
// ActionableError carries what operation failed, which resource was
// involved and how to fix it; the catalog maps the fatal packaging failure
// classes (non-unique classifiers, unsupported formats, archiving errors)
// to longer-form help text.
package issue
