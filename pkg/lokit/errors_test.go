package lokit

import (
	"errors"
	"strings"
	"testing"
)

func TestInitErrorMessage(t *testing.T) {
	err := &InitError{Path: "/opt/libreoffice/program", Msg: "missing fundamental configuration"}
	got := err.Error()
	if !strings.Contains(got, "/opt/libreoffice/program") {
		t.Fatalf("missing path in %q", got)
	}
	if !strings.Contains(got, "missing fundamental configuration") {
		t.Fatalf("missing native diagnostic in %q", got)
	}
}

func TestErrorUnwrapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"init", &InitError{Path: "p", Err: ErrOfficeInUse}, ErrOfficeInUse},
		{"load", &LoadError{URL: "u", Err: ErrOfficeClosed}, ErrOfficeClosed},
		{"save", &SaveError{Path: "p", Format: "pdf", Err: ErrDocumentClosed}, ErrDocumentClosed},
		{"render", &RenderError{Op: "paintTile", Err: ErrDocumentClosed}, ErrDocumentClosed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.sentinel) {
				t.Fatalf("%v does not unwrap to %v", tc.err, tc.sentinel)
			}
		})
	}
}

func TestReasonPrefersNativeText(t *testing.T) {
	if got := reason("native says no", errors.New("wrapped")); got != "native says no" {
		t.Fatalf("reason = %q", got)
	}
	if got := reason("", errors.New("wrapped")); got != "wrapped" {
		t.Fatalf("reason = %q", got)
	}
	if got := reason("", nil); got == "" {
		t.Fatal("reason must never be empty")
	}
}
