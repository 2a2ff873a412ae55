// SPDX-License-Identifier: MPL-2.0

package packfile

import "testing"

func TestArchiveFormat(t *testing.T) {
	linux := &TargetEnvironment{OS: "linux", WS: "gtk", Arch: "x86_64"}
	win32 := &TargetEnvironment{OS: "win32", WS: "win32", Arch: "x86_64"}

	tests := []struct {
		name     string
		formats  map[string]string
		product  Product
		env      *TargetEnvironment
		expected string
	}{
		{
			name:     "no formats map yields default",
			formats:  nil,
			product:  Product{ID: "p"},
			env:      linux,
			expected: "zip",
		},
		{
			name:     "os entry wins",
			formats:  map[string]string{"linux": "tar.gz"},
			product:  Product{ID: "p"},
			env:      linux,
			expected: "tar.gz",
		},
		{
			name:     "missing os entry falls back to default",
			formats:  map[string]string{"linux": "tar.gz"},
			product:  Product{ID: "p"},
			env:      win32,
			expected: "zip",
		},
		{
			name:     "resolved value is trimmed",
			formats:  map[string]string{"linux": "  tgz\t"},
			product:  Product{ID: "p"},
			env:      linux,
			expected: "tgz",
		},
		{
			name:     "whitespace-only entry falls back to default",
			formats:  map[string]string{"linux": "   "},
			product:  Product{ID: "p"},
			env:      linux,
			expected: "zip",
		},
		{
			name:     "multi-platform product uses the reserved key",
			formats:  map[string]string{"multiPlatformPackage": "tar.gz", "linux": "tgz"},
			product:  Product{ID: "p", MultiPlatformPackage: true},
			env:      linux,
			expected: "tar.gz",
		},
		{
			name:     "multi-platform product ignores per-os overrides",
			formats:  map[string]string{"linux": "tgz"},
			product:  Product{ID: "p", MultiPlatformPackage: true},
			env:      linux,
			expected: "zip",
		},
		{
			name:     "unknown format string is passed through untouched",
			formats:  map[string]string{"linux": "rar"},
			product:  Product{ID: "p"},
			env:      linux,
			expected: "rar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := &Packfile{Formats: tt.formats}
			if got := pf.ArchiveFormat(tt.product, tt.env); got != tt.expected {
				t.Errorf("ArchiveFormat() = %q, want %q", got, tt.expected)
			}
		})
	}
}
