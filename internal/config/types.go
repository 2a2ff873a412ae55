// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"prodpack-cli/pkg/archive"
)

var (
	// ErrInvalidTarBackend is returned when archive.tar_backend is not a
	// recognized value.
	ErrInvalidTarBackend = errors.New("invalid tar backend")
	// ErrInvalidColorScheme is returned when ui.color_scheme is not a
	// recognized value.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto = "auto"
	// ColorSchemeDark forces the dark color scheme.
	ColorSchemeDark = "dark"
	// ColorSchemeLight forces the light color scheme.
	ColorSchemeLight = "light"
)

type (
	// ArchiveConfig controls archive backend behavior.
	ArchiveConfig struct {
		// TarBackend selects the gzip implementation for tar.gz archives:
		// "fast" (klauspost) or "stdlib". The outputs are interchangeable.
		TarBackend string `mapstructure:"tar_backend"`
	}

	// UIConfig controls CLI output behavior.
	UIConfig struct {
		// Verbose enables verbose output by default.
		Verbose bool `mapstructure:"verbose"`
		// ColorScheme selects the terminal color scheme.
		ColorScheme string `mapstructure:"color_scheme"`
	}

	// Config is the user-level tool configuration.
	Config struct {
		Archive ArchiveConfig `mapstructure:"archive"`
		UI      UIConfig      `mapstructure:"ui"`
	}
)

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Archive: ArchiveConfig{TarBackend: string(archive.TarBackendFast)},
		UI:      UIConfig{Verbose: false, ColorScheme: ColorSchemeAuto},
	}
}

// Validate checks constraints the CUE schema cannot express once defaults
// and overrides are merged.
func (c *Config) Validate() error {
	switch archive.TarBackend(c.Archive.TarBackend) {
	case archive.TarBackendFast, archive.TarBackendStdlib:
	default:
		return fmt.Errorf("%w: %q (expected %q or %q)", ErrInvalidTarBackend,
			c.Archive.TarBackend, archive.TarBackendFast, archive.TarBackendStdlib)
	}

	switch c.UI.ColorScheme {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColorScheme, c.UI.ColorScheme)
	}

	return nil
}

// TarBackend returns the configured archive.TarBackend value.
func (c *Config) TarBackend() archive.TarBackend {
	return archive.TarBackend(c.Archive.TarBackend)
}
