// SPDX-License-Identifier: MPL-2.0

// Package materialize drives the product packaging run: it validates that
// every product/environment combination yields a unique artifact
// classifier, then archives each combination's materialized installation
// tree and registers the produced artifact.
//
// A run is all-or-nothing: validation failures abort before any archive is
// written, and the first archiving failure aborts the remainder. Runs are
// serialized process-wide; concurrent callers block until the prior run
// completes.
package materialize
