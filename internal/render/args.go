// Package render turns doc comments and parameter lists into Markdown and
// HTML for the reference browser.
package render

import (
	"strings"
)

// ParseArgsSection extracts parameter descriptions from the "Args:" section
// of a doc comment. The section heading is matched case-insensitively at the
// start of a trimmed line. Subsequent non-blank lines are split once on the
// first colon into (name, description) pairs; lines without a colon are
// ignored. The first blank line ends the section.
func ParseArgsSection(doc string) map[string]string {
	descriptions := make(map[string]string)
	inArgs := false
	for _, line := range strings.Split(doc, "\n") {
		stripped := strings.TrimSpace(line)
		// The heading is re-matched before collecting, so a stray "args:"
		// line inside the section restarts it instead of becoming an entry.
		if strings.HasPrefix(strings.ToLower(stripped), "args:") {
			inArgs = true
			continue
		}
		if !inArgs {
			continue
		}
		if stripped == "" {
			break
		}
		name, desc, ok := strings.Cut(stripped, ":")
		if !ok {
			continue
		}
		descriptions[strings.TrimSpace(name)] = strings.TrimSpace(desc)
	}
	return descriptions
}

// StripArgsSection removes each "Args:" heading and its contiguous indented
// content from a doc comment. A blank line or a non-indented line ends the
// section and is itself preserved, as is everything outside the section.
// Applying the function twice yields the same result as applying it once.
func StripArgsSection(doc string) string {
	if doc == "" {
		return doc
	}
	lines := strings.Split(doc, "\n")
	cleaned := make([]string, 0, len(lines))
	inArgs := false
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(strings.ToLower(stripped), "args:") {
			inArgs = true
			continue
		}
		if inArgs {
			if stripped == "" || !indented(line) {
				inArgs = false
				cleaned = append(cleaned, line)
			}
			continue
		}
		cleaned = append(cleaned, line)
	}
	return strings.Join(cleaned, "\n")
}

func indented(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}
