// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// The package consolidates the schema-unify-decode pattern used by the
// packfile and config packages:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify with schema
//  3. Validate and decode to a Go struct
//
// # Usage
//
//	//go:embed packfile_schema.cue
//	var schemaBytes []byte
//
//	pf, err := cueutil.Decode[Packfile](schemaBytes, data, "#Packfile", "packfile.cue")
//	if err != nil {
//	    return nil, err // error includes the CUE path of the invalid value
//	}
package cueutil
