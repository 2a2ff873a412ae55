// SPDX-License-Identifier: MPL-2.0

package packfile

import "strings"

const (
	// DefaultFormat is the archive format used when no override applies.
	DefaultFormat = "zip"

	// MultiPlatformFormatKey is the reserved formats key consulted for
	// multi-platform packages instead of the per-OS entries.
	MultiPlatformFormatKey = "multiPlatformPackage"
)

// ArchiveFormat resolves the archive format identifier for one
// product/environment combination.
//
// Resolution never fails: with no formats map the default applies;
// multi-platform products consult the reserved key, all others the
// environment's OS name; a missing, empty or whitespace-only entry falls
// back to the default. Whether the resolved identifier names a known
// backend is decided downstream by the archive package.
func (pf *Packfile) ArchiveFormat(p Product, env *TargetEnvironment) string {
	if pf.Formats == nil {
		return DefaultFormat
	}

	var format string
	if p.MultiPlatformPackage {
		format = pf.Formats[MultiPlatformFormatKey]
	} else if env != nil {
		format = pf.Formats[env.OS]
	}

	format = strings.TrimSpace(format)
	if format == "" {
		return DefaultFormat
	}
	return format
}
