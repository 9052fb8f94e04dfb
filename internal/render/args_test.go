package render

import (
	"testing"
)

const greetDoc = `Greet someone by name.

Args:
    name: who to greet
    shout: whether to use upper case

Returns the greeting.`

func TestParseArgsSection(t *testing.T) {
	t.Parallel()

	got := ParseArgsSection(greetDoc)
	want := map[string]string{
		"name":  "who to greet",
		"shout": "whether to use upper case",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d descriptions, got %d: %v", len(want), len(got), got)
	}
	for name, desc := range want {
		if got[name] != desc {
			t.Fatalf("description for %q: expected %q, got %q", name, desc, got[name])
		}
	}
}

func TestParseArgsSectionVariants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  string
		want map[string]string
	}{
		{
			name: "NoSection",
			doc:  "Just a summary line.\n\nMore prose.",
			want: map[string]string{},
		},
		{
			name: "CaseInsensitiveHeading",
			doc:  "Summary.\n\nARGS:\n    x: the x value",
			want: map[string]string{"x": "the x value"},
		},
		{
			name: "BlankLineEndsSection",
			doc:  "Args:\n    a: first\n\n    b: not collected",
			want: map[string]string{"a": "first"},
		},
		{
			name: "LinesWithoutColonIgnored",
			doc:  "Args:\n    malformed line\n    a: first",
			want: map[string]string{"a": "first"},
		},
		{
			name: "HeadingInsideSectionSkipped",
			doc:  "Args:\n    a: first\n    Args: not a description\n    b: second",
			want: map[string]string{"a": "first", "b": "second"},
		},
		{
			name: "ColonInDescriptionKept",
			doc:  "Args:\n    addr: host:port to listen on",
			want: map[string]string{"addr": "host:port to listen on"},
		},
		{
			name: "Empty",
			doc:  "",
			want: map[string]string{},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ParseArgsSection(tc.doc)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for name, desc := range tc.want {
				if got[name] != desc {
					t.Fatalf("description for %q: expected %q, got %q", name, desc, got[name])
				}
			}
		})
	}
}

func TestStripArgsSection(t *testing.T) {
	t.Parallel()

	got := StripArgsSection(greetDoc)
	want := "Greet someone by name.\n\n\nReturns the greeting."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestStripArgsSectionIdempotent(t *testing.T) {
	t.Parallel()

	once := StripArgsSection(greetDoc)
	twice := StripArgsSection(once)
	if once != twice {
		t.Fatalf("not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestStripArgsSectionWithoutSection(t *testing.T) {
	t.Parallel()

	doc := "Summary line.\n\nA paragraph with a blank line above.\n"
	if got := StripArgsSection(doc); got != doc {
		t.Fatalf("expected doc unchanged, got %q", got)
	}
	if got := StripArgsSection(""); got != "" {
		t.Fatalf("expected empty doc unchanged, got %q", got)
	}
}

func TestStripArgsSectionPreservesFollowingProse(t *testing.T) {
	t.Parallel()

	doc := "Summary.\n\nArgs:\n    a: first\nReturns:\n    something"
	got := StripArgsSection(doc)
	want := "Summary.\n\nReturns:\n    something"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
