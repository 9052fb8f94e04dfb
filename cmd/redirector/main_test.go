package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestHelpFlag(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"--help"}, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	assertContains(t, out, "answers every request with a redirect")
	assertContains(t, out, "--docs-url")
}

func TestConfigFlagRejectsMissingFile(t *testing.T) {
	if err := run([]string{"--config", "/no/such/docsite.yaml"}, new(bytes.Buffer)); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\n\n%s", needle, haystack)
	}
}
