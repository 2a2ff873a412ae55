// SPDX-License-Identifier: MPL-2.0

package platform

// Operating system names for target environments.
// Centralizes the string literals to avoid scattered magic strings.
const (
	OSWindows = "win32"
	OSLinux   = "linux"
	OSMacOS   = "macosx"
)

// Windowing system names for target environments.
const (
	WSWin32 = "win32"
	WSGtk   = "gtk"
	WSCocoa = "cocoa"
)

// Processor architecture names for target environments.
const (
	ArchX86    = "x86"
	ArchX86_64 = "x86_64"
	ArchARM64  = "aarch64"
)

// KnownOS reports whether name is a recognized operating system name.
// Unrecognized names are legal in environment definitions; this exists so
// tooling can flag likely typos.
func KnownOS(name string) bool {
	switch name {
	case OSWindows, OSLinux, OSMacOS:
		return true
	}
	return false
}

// KnownWS reports whether name is a recognized windowing system name.
func KnownWS(name string) bool {
	switch name {
	case WSWin32, WSGtk, WSCocoa:
		return true
	}
	return false
}

// KnownArch reports whether name is a recognized architecture name.
func KnownArch(name string) bool {
	switch name {
	case ArchX86, ArchX86_64, ArchARM64:
		return true
	}
	return false
}
