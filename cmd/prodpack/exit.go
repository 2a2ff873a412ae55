// SPDX-License-Identifier: MPL-2.0

package cmd

import "fmt"

// ExitError signals a specific process exit code to Execute while still
// flowing through the normal error path.
type ExitError struct {
	// Code is the process exit code.
	Code int
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}
