// SPDX-License-Identifier: MPL-2.0

package platform

import "testing"

func TestKnownAxes(t *testing.T) {
	for _, os := range []string{OSWindows, OSLinux, OSMacOS} {
		if !KnownOS(os) {
			t.Errorf("KnownOS(%q) = false", os)
		}
	}
	if KnownOS("solaris") || KnownOS("") {
		t.Error("unexpected os recognized")
	}

	for _, ws := range []string{WSWin32, WSGtk, WSCocoa} {
		if !KnownWS(ws) {
			t.Errorf("KnownWS(%q) = false", ws)
		}
	}
	if KnownWS("motif") {
		t.Error("unexpected ws recognized")
	}

	for _, arch := range []string{ArchX86, ArchX86_64, ArchARM64} {
		if !KnownArch(arch) {
			t.Errorf("KnownArch(%q) = false", arch)
		}
	}
	if KnownArch("ppc") {
		t.Error("unexpected arch recognized")
	}
}
