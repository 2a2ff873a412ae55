// SPDX-License-Identifier: MPL-2.0

// Package config loads the user-level prodpack configuration.
//
// Configuration lives in a CUE file (config.cue) under the platform config
// directory and is validated against an embedded schema before being merged
// into Viper, so defaults apply for anything the file leaves out. The
// packfile (the build definition) is deliberately separate; this package
// only covers tool behavior such as the tar.gz backend selection and UI
// verbosity.
package config
