// SPDX-License-Identifier: MPL-2.0

// Package platform centralizes the operating-system, windowing-system and
// architecture name constants used in target environment definitions.
package platform
