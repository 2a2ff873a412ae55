// SPDX-License-Identifier: MPL-2.0

// Package packfile defines the build definition for product packaging.
//
// A packfile is a CUE file (packfile.cue by default) that declares the
// products to package, the target environments to package them for, and
// optional per-OS archive format overrides:
//
//	products: [
//		{id: "main"},
//		{id: "extra", attach_id: "extra"},
//	]
//	environments: [
//		{os: "win32", ws: "win32", arch: "x86_64"},
//		{os: "linux", ws: "gtk", arch: "x86_64"},
//	]
//	formats: {
//		linux: "tar.gz"
//	}
//
// The package also holds the pure naming functions that derive archive file
// names and artifact classifiers from product identity and target
// environment, and the classifier uniqueness validation that must pass
// before any archive is written.
package packfile
