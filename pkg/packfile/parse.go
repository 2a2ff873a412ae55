// SPDX-License-Identifier: MPL-2.0

package packfile

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"prodpack-cli/pkg/cueutil"
)

// DefaultFileName is the conventional packfile name.
const DefaultFileName = "packfile.cue"

//go:embed packfile_schema.cue
var packfileSchema []byte

// Parse validates data against the packfile schema and decodes it. The
// filename is used in error messages only.
func Parse(data []byte, filename string) (*Packfile, error) {
	pf, err := cueutil.Decode[Packfile](packfileSchema, data, "#Packfile", filename)
	if err != nil {
		return nil, err
	}
	if len(pf.Products) == 0 {
		return nil, fmt.Errorf("%s: packfile declares no products", filename)
	}
	return pf, nil
}

// ParseFile reads and parses the packfile at path.
func ParseFile(path string) (*Packfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read packfile: %w", err)
	}
	return Parse(data, filepath.Base(path))
}

// Find locates the packfile for dir: an explicit path wins, otherwise
// DefaultFileName inside dir.
func Find(dir, explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("packfile not found: %s", explicit)
		}
		return explicit, nil
	}

	path := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("no %s found in %s", DefaultFileName, dir)
	}
	return path, nil
}
