// SPDX-License-Identifier: MPL-2.0

package packfile

import (
	"fmt"
	"strings"
)

// Product describes one logical installable application. A product may be
// packaged once per target environment, or exactly once from a shared
// bundle pool when it is environment-independent.
type Product struct {
	// ID is the stable product identifier.
	ID string `json:"id"`

	// ArchiveFileName optionally overrides the base name of produced
	// archives. Empty means "use ID".
	ArchiveFileName string `json:"archive_file_name,omitempty"`

	// AttachID is the optional artifact attach identifier. A nil pointer
	// means "no attach id"; a pointer to the empty string is a distinct,
	// legal configuration (the classifier keeps its separator).
	AttachID *string `json:"attach_id,omitempty"`

	// MultiPlatformPackage marks a product whose installation is
	// environment-independent: one shared bundle pool, one archive.
	MultiPlatformPackage bool `json:"multi_platform_package,omitempty"`
}

// String renders the product configuration for error messages.
func (p Product) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "{id: %q", p.ID)
	if p.ArchiveFileName != "" {
		fmt.Fprintf(&sb, ", archive_file_name: %q", p.ArchiveFileName)
	}
	if p.AttachID != nil {
		fmt.Fprintf(&sb, ", attach_id: %q", *p.AttachID)
	}
	if p.MultiPlatformPackage {
		sb.WriteString(", multi_platform_package: true")
	}
	sb.WriteString("}")
	return sb.String()
}

// TargetEnvironment is the (os, ws, arch) tuple a product is packaged for.
// A nil *TargetEnvironment denotes the absence of the environment axis,
// used for bundle-pool products.
type TargetEnvironment struct {
	// OS is the operating system name (e.g. "linux", "win32", "macosx").
	OS string `json:"os"`
	// WS is the windowing system name (e.g. "gtk", "win32", "cocoa").
	WS string `json:"ws"`
	// Arch is the processor architecture (e.g. "x86_64", "aarch64").
	Arch string `json:"arch"`
}

// OsWsArch encodes the environment as os<sep>ws<sep>arch. A nil receiver
// encodes as the empty string, so path and classifier construction can
// concatenate it without caring whether an environment is present.
func (e *TargetEnvironment) OsWsArch(sep string) string {
	if e == nil {
		return ""
	}
	return e.OS + sep + e.WS + sep + e.Arch
}

// String implements fmt.Stringer using the dot-separated encoding.
func (e *TargetEnvironment) String() string {
	return e.OsWsArch(".")
}

// Packfile is the parsed build definition.
type Packfile struct {
	// Version is the optional packfile format version.
	Version string `json:"version,omitempty"`

	// Description is an optional human-readable description.
	Description string `json:"description,omitempty"`

	// Products lists the products to package, in declaration order.
	Products []Product `json:"products"`

	// Environments lists the target environments every non-bundle-pool
	// product is packaged for, in declaration order.
	Environments []TargetEnvironment `json:"environments,omitempty"`

	// Formats maps an OS name, or the reserved MultiPlatformFormatKey, to
	// an archive format identifier. Missing entries fall back to
	// DefaultFormat.
	Formats map[string]string `json:"formats,omitempty"`
}
