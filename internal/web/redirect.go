package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RewriteSlug maps documentation-site paths onto the external host's
// layout: every literal occurrence of "reference" becomes "api".
func RewriteSlug(slug string) string {
	return strings.ReplaceAll(slug, "reference", "api")
}

// redirectHome forwards the root path to the external documentation home.
func (s *Server) redirectHome(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, s.docsBase()+"/")
}

// redirectDocs forwards any other path to the external host with the slug
// rewritten. The slug is not validated; the external host owns 404s.
func (s *Server) redirectDocs(c *gin.Context) {
	slug := c.Request.URL.Path
	c.Redirect(http.StatusTemporaryRedirect, s.docsBase()+RewriteSlug(slug))
}

// redirectReference sends the reference service's root to its mount point.
func (s *Server) redirectReference(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, s.basePath())
}

func (s *Server) docsBase() string {
	return strings.TrimSuffix(s.Config.Docs.BaseURL, "/")
}
