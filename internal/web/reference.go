package web

import (
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/agentflare-ai/go-docsite/internal/render"
)

// indexPage lists every module of the loaded model, sorted, as links into
// the reference browser.
func (s *Server) indexPage(c *gin.Context) {
	names := s.model.Names()
	entries := make([]IndexEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, IndexEntry{
			Name: name,
			Href: path.Join(s.indexHref(), name),
		})
	}
	s.renderPage(c, http.StatusOK, "index.html", IndexPageData{
		TemplateData: TemplateData{Title: s.Config.Site.Title},
		Modules:      entries,
	})
}

// modulePage resolves the module name from the route parameter. A bare
// trailing slash falls back to the index.
func (s *Server) modulePage(c *gin.Context) {
	name := strings.Trim(c.Param("module"), "/")
	if name == "" {
		s.indexPage(c)
		return
	}
	s.renderModule(c, name)
}

// moduleFromPath serves module pages when the browser is mounted at the
// site root, where no route parameter is available.
func (s *Server) moduleFromPath(c *gin.Context) {
	s.renderModule(c, strings.Trim(c.Request.URL.Path, "/"))
}

// renderModule renders one module: its doc comment, one section per class
// and one section per function (argument table plus stripped doc comment).
func (s *Server) renderModule(c *gin.Context, name string) {
	mod, ok := s.model.Module(name)
	if !ok {
		// An unknown module fails loudly; it never degrades to an empty page.
		s.renderError(c, http.StatusInternalServerError, "Unknown module", name)
		return
	}

	doc, err := s.conv.ToHTML(mod.Doc)
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, "Markdown rendering failed", err.Error())
		return
	}
	data := ModulePageData{
		TemplateData: TemplateData{Title: s.Config.Site.Title + ": " + name},
		IndexHref:    s.indexHref(),
		Name:         name,
		Doc:          doc,
	}
	for _, class := range mod.Classes {
		html, err := s.conv.ToHTML(class.Doc)
		if err != nil {
			s.renderError(c, http.StatusInternalServerError, "Markdown rendering failed", err.Error())
			return
		}
		data.Classes = append(data.Classes, SectionData{
			Name:      class.Name,
			Qualified: name + "." + class.Name,
			Doc:       html,
		})
	}
	for _, fn := range mod.Funcs {
		html, err := s.conv.ToHTML(render.FuncDoc(fn.Params, fn.Doc))
		if err != nil {
			s.renderError(c, http.StatusInternalServerError, "Markdown rendering failed", err.Error())
			return
		}
		data.Funcs = append(data.Funcs, SectionData{
			Name:      fn.Name,
			Qualified: name + "." + fn.Name,
			Doc:       html,
		})
	}
	s.renderPage(c, http.StatusOK, "module.html", data)
}

// indexHref is where the module index lives: the configured base path, or
// the root when the browser is mounted at "/".
func (s *Server) indexHref() string {
	if base := s.basePath(); base != "" {
		return base
	}
	return "/"
}
