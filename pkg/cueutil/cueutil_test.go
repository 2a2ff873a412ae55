// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

var testSchema = []byte(`
#Thing: {
	name!:  string & !=""
	count?: int & >=0
}
`)

type thing struct {
	Name  string `json:"name"`
	Count int    `json:"count,omitempty"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string // substring; empty means success
		check   func(t *testing.T, got *thing)
	}{
		{
			name:  "valid input",
			input: `name: "widget", count: 3`,
			check: func(t *testing.T, got *thing) {
				if got.Name != "widget" || got.Count != 3 {
					t.Errorf("decoded %+v", got)
				}
			},
		},
		{
			name:    "missing required field",
			input:   `count: 3`,
			wantErr: "things.cue",
		},
		{
			name:    "constraint violation names the path",
			input:   `name: "widget", count: -1`,
			wantErr: "count",
		},
		{
			name:    "syntax error",
			input:   `name: `,
			wantErr: "things.cue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode[thing](testSchema, []byte(tt.input), "#Thing", "things.cue")
			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("expected an error")
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error %q does not contain %q", err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			tt.check(t, got)
		})
	}
}

func TestDecodeLenient(t *testing.T) {
	// The lenient variant tolerates missing required fields; it is meant for
	// config files where everything is optional.
	got, err := DecodeLenient[map[string]any](testSchema, []byte(`count: 3`), "#Thing", "partial.cue")
	if err != nil {
		t.Fatalf("DecodeLenient() error: %v", err)
	}
	if (*got)["count"] != 3 {
		t.Errorf("decoded %v", *got)
	}

	// Constraint violations still fail.
	if _, err := DecodeLenient[map[string]any](testSchema, []byte(`count: -1`), "#Thing", "partial.cue"); err == nil {
		t.Error("expected a constraint violation")
	}
}

func TestDecodeRejectsOversizedInput(t *testing.T) {
	big := make([]byte, MaxFileSize+1)
	if _, err := Decode[thing](testSchema, big, "#Thing", "big.cue"); err == nil {
		t.Error("expected a file size error")
	}
}

func TestFormatError(t *testing.T) {
	if got := FormatError(nil, "x.cue"); got != nil {
		t.Errorf("FormatError(nil) = %v, want nil", got)
	}

	// Non-CUE errors keep their message, prefixed with the file path.
	plain := errors.New("boom")
	got := FormatError(plain, "x.cue")
	if got == nil || !strings.Contains(got.Error(), "x.cue") || !strings.Contains(got.Error(), "boom") {
		t.Errorf("FormatError(plain) = %v", got)
	}
}

func TestFormatPath(t *testing.T) {
	tests := []struct {
		path     []string
		expected string
	}{
		{nil, ""},
		{[]string{"products"}, "products"},
		{[]string{"products", "0", "id"}, "products[0].id"},
		{[]string{"formats", "linux"}, "formats.linux"},
	}

	for _, tt := range tests {
		if got := formatPath(tt.path); got != tt.expected {
			t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.expected)
		}
	}
}

func TestCheckFileSize(t *testing.T) {
	if err := CheckFileSize(make([]byte, 10), 10, "ok.cue"); err != nil {
		t.Errorf("CheckFileSize at limit: %v", err)
	}
	err := CheckFileSize(make([]byte, 11), 10, "big.cue")
	if err == nil {
		t.Fatal("expected an error above the limit")
	}
	if !strings.Contains(err.Error(), "big.cue") {
		t.Errorf("error does not name the file: %v", err)
	}
}
