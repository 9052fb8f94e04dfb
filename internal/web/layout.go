package web

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// TemplateData carries the fields every page hands to the shared layout.
// HeadExtra lands in the document head, everything else in the body.
type TemplateData struct {
	Title     string
	HeadExtra template.HTML
}

// IndexPageData represents data for the module index page.
type IndexPageData struct {
	TemplateData
	Modules []IndexEntry
}

// IndexEntry is one module link on the index page.
type IndexEntry struct {
	Name string
	Href string
}

// ModulePageData represents data for a per-module reference page.
type ModulePageData struct {
	TemplateData
	IndexHref string
	Name      string
	Doc       template.HTML
	Classes   []SectionData
	Funcs     []SectionData
}

// SectionData is one rendered class or function section.
type SectionData struct {
	Name      string
	Qualified string
	Doc       template.HTML
}

// ErrorPageData represents data for the error page.
type ErrorPageData struct {
	TemplateData
	StatusCode int
	Error      string
}

// renderPage composes the shared layout with one page template. The layout
// owns the head and body skeleton; the page template fills the content
// block. Templates are parsed per layout+page pair to avoid block-name
// conflicts between pages.
func (s *Server) renderPage(c *gin.Context, status int, page string, data any) {
	tmpl, err := template.ParseFS(templatesFS, "templates/base.html", "templates/"+page)
	if err != nil {
		log.Printf("[web] parse %s: %v", page, err)
		c.String(http.StatusInternalServerError, "template error")
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := tmpl.ExecuteTemplate(c.Writer, "base.html", data); err != nil {
		log.Printf("[web] render %s: %v", page, err)
	}
}

// renderError funnels failures through the same layout as regular pages.
func (s *Server) renderError(c *gin.Context, status int, message, detail string) {
	log.Printf("[web] error %d: %s - %s", status, message, detail)
	s.renderPage(c, status, "error.html", ErrorPageData{
		TemplateData: TemplateData{Title: "Error"},
		StatusCode:   status,
		Error:        message,
	})
}
