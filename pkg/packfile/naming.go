// SPDX-License-Identifier: MPL-2.0

package packfile

// ArchiveFileName returns the base name for the product's archives: the
// explicit override when configured, the product ID otherwise.
func ArchiveFileName(p Product) string {
	if p.ArchiveFileName != "" {
		return p.ArchiveFileName
	}
	return p.ID
}

// ArtifactClassifier derives the classifier that distinguishes artifacts of
// the same product that differ by attach id or target environment.
//
// Without an attach id the classifier is the dot-separated environment
// encoding ("os.ws.arch", empty for a nil environment). With an attach id
// it is "<attachId>-os.ws.arch". An empty-string attach id is not the same
// as an absent one: it still contributes the "-" separator, so the
// classifier keeps a leading empty segment. Downstream consumers depend on
// the exact naming, so this quirk is preserved deliberately.
func ArtifactClassifier(p Product, env *TargetEnvironment) string {
	if p.AttachID == nil {
		return env.OsWsArch(".")
	}
	return *p.AttachID + "-" + env.OsWsArch(".")
}
