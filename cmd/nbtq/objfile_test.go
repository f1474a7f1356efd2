package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want []any
	}{
		{"id", []any{"id"}},
		{"tag.Damage", []any{"tag", "Damage"}},
		{"tag.pages[0]", []any{"tag", "pages", 0}},
		{"tag.pages[0].text", []any{"tag", "pages", 0, "text"}},
		{"[1][2]", []any{1, 2}},
	}
	for _, tc := range tests {
		got, err := parsePath(tc.in)
		if err != nil {
			t.Errorf("parsePath(%q): %v", tc.in, err)
			continue
		}
		if d := cmp.Diff(tc.want, got); d != "" {
			t.Errorf("parsePath(%q) (-want +got):\n%s", tc.in, d)
		}
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, in := range []string{"tag.pages[", "tag.pages[x]"} {
		if _, err := parsePath(in); err == nil {
			t.Errorf("parsePath(%q) succeeded", in)
		}
	}
}
