// SPDX-License-Identifier: MPL-2.0

package materialize

import (
	"path/filepath"

	"prodpack-cli/pkg/packfile"
)

// Layout locates the materialized (already unpacked) product installation
// trees produced by an earlier build step.
type Layout interface {
	// ProductBundlePoolDirectory returns the shared bundle pool directory
	// for an environment-independent product, or ok=false when the product
	// is materialized per environment.
	ProductBundlePoolDirectory(p packfile.Product) (dir string, ok bool)

	// ProductMaterializeDirectory returns the installation tree for one
	// product/environment combination. A nil environment addresses the
	// bundle pool.
	ProductMaterializeDirectory(p packfile.Product, env *packfile.TargetEnvironment) string
}

// DirLayout is the default on-disk layout: <root>/<product-id> for bundle
// pools, <root>/<product-id>/<os.ws.arch> per environment. Multi-platform
// products are the ones packaged from a bundle pool.
type DirLayout struct {
	// Root is the directory the materialization step populated.
	Root string
}

func (l DirLayout) ProductBundlePoolDirectory(p packfile.Product) (string, bool) {
	if !p.MultiPlatformPackage {
		return "", false
	}
	return filepath.Join(l.Root, p.ID), true
}

func (l DirLayout) ProductMaterializeDirectory(p packfile.Product, env *packfile.TargetEnvironment) string {
	if env == nil {
		return filepath.Join(l.Root, p.ID)
	}
	return filepath.Join(l.Root, p.ID, env.OsWsArch("."))
}
