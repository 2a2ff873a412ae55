// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	ids := []Id{
		PackfileNotFoundId,
		PackfileParseErrorId,
		ClassifierCollisionId,
		UnsupportedFormatId,
		ArchivingFailedId,
		ConfigLoadFailedId,
	}
	for _, id := range ids {
		iss := Get(id)
		if iss == nil {
			t.Errorf("Get(%d) = nil", id)
			continue
		}
		if iss.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, iss.Id())
		}
		if iss.MarkdownMsg() == "" {
			t.Errorf("issue %d has an empty message", id)
		}
	}

	if Get(Id(9999)) != nil {
		t.Error("Get of an unknown id should return nil")
	}
}

func TestValuesSortedById(t *testing.T) {
	vals := Values()
	if len(vals) != 6 {
		t.Fatalf("Values() returned %d issues, want 6", len(vals))
	}
	for i := 1; i < len(vals); i++ {
		if vals[i-1].Id() >= vals[i].Id() {
			t.Fatalf("Values() not sorted: %d before %d", vals[i-1].Id(), vals[i].Id())
		}
	}
}

func TestRender(t *testing.T) {
	// Swap the renderer so the test does not depend on terminal detection.
	orig := render
	render = func(md, style string) (string, error) { return "rendered:" + md, nil }
	defer func() { render = orig }()

	out, err := Get(ClassifierCollisionId).Render("dark")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.HasPrefix(out, "rendered:") {
		t.Errorf("renderer was not used: %q", out)
	}
}
