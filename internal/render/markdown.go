package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// Converter converts Markdown fragments to HTML using goldmark. GFM
// extensions are required for the argument tables; fenced code blocks in doc
// comments get syntax highlighting.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter creates a Converter with GFM and highlighting enabled.
func NewConverter() *Converter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &Converter{md: md}
}

// ToHTML converts a Markdown fragment to HTML. The result is a fragment,
// not a full document; the page composer owns the surrounding layout.
func (c *Converter) ToHTML(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
