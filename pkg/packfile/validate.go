// SPDX-License-Identifier: MPL-2.0

package packfile

import (
	"fmt"
	"strings"
)

// ClassifierCollisionError reports two product/environment combinations
// that resolve to the same artifact classifier. It is a configuration
// error: the run must be rejected before any archive is written.
type ClassifierCollisionError struct {
	// Classifier is the colliding classifier value.
	Classifier string
	// First and Second identify the colliding combinations.
	First, Second Combination
	// Products is the full product configuration, for the error message.
	Products []Product
}

// Combination is one (product, environment) pair that will be materialized.
type Combination struct {
	Product     Product
	Environment *TargetEnvironment
}

// String renders the combination for error messages.
func (c Combination) String() string {
	if c.Environment == nil {
		return fmt.Sprintf("product %q (bundle pool)", c.Product.ID)
	}
	return fmt.Sprintf("product %q for %s", c.Product.ID, c.Environment)
}

// Error implements the error interface with enough context to fix the
// collision: both offending combinations and the full product list.
func (e *ClassifierCollisionError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "artifact classifiers for the archived products are not unique: %s and %s both resolve to classifier %q. ",
		e.First, e.Second, e.Classifier)
	sb.WriteString("Configure the attach_id or select a subset of products. Current configuration: [")
	for i, p := range e.Products {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString("]")
	return sb.String()
}

// Combinations enumerates the (product, environment) pairs that a
// materialization run will produce, in run order: environment-independent
// products once with a nil environment, all others once per configured
// environment.
//
// envIndependent decides whether a product is packaged from a shared bundle
// pool; nil means "use the product's MultiPlatformPackage flag", which is
// what the default directory layout does.
func (pf *Packfile) Combinations(envIndependent func(Product) bool) []Combination {
	if envIndependent == nil {
		envIndependent = func(p Product) bool { return p.MultiPlatformPackage }
	}

	var combos []Combination
	for _, p := range pf.Products {
		if envIndependent(p) {
			combos = append(combos, Combination{Product: p})
			continue
		}
		for i := range pf.Environments {
			combos = append(combos, Combination{Product: p, Environment: &pf.Environments[i]})
		}
	}
	return combos
}

// ValidateUniqueClassifiers checks that every combination the run will
// materialize resolves to a pairwise-distinct classifier. It runs to
// completion without touching the filesystem, so a failing configuration
// never produces partial output.
func (pf *Packfile) ValidateUniqueClassifiers(envIndependent func(Product) bool) error {
	seen := make(map[string]Combination)
	for _, c := range pf.Combinations(envIndependent) {
		classifier := ArtifactClassifier(c.Product, c.Environment)
		if first, dup := seen[classifier]; dup {
			return &ClassifierCollisionError{
				Classifier: classifier,
				First:      first,
				Second:     c,
				Products:   pf.Products,
			}
		}
		seen[classifier] = c
	}
	return nil
}
