// Package web provides the HTTP servers for the documentation site: the
// redirector forwarding to externally hosted docs and the generated API
// reference browser.
package web

import (
	"log"
	"strings"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agentflare-ai/go-docsite/internal/config"
	"github.com/agentflare-ai/go-docsite/internal/docmodel"
	"github.com/agentflare-ai/go-docsite/internal/render"
)

// Server wires a gin router to the site configuration and, for the
// reference service, the immutable documentation model.
type Server struct {
	Router *gin.Engine
	Config *config.Config
	model  *docmodel.Model
	conv   *render.Converter
}

// NewRedirector builds the redirect service: every path forwards to the
// external documentation host.
func NewRedirector(cfg *config.Config) *Server {
	s := newServer(cfg)
	s.Router.GET("/", s.redirectHome)
	s.Router.NoRoute(s.redirectDocs)
	return s
}

// NewReference builds the API reference browser over a loaded model.
func NewReference(cfg *config.Config, model *docmodel.Model) *Server {
	s := newServer(cfg)
	s.model = model
	base := s.basePath()
	if base == "" {
		s.Router.GET("/", s.indexPage)
		s.Router.NoRoute(s.moduleFromPath)
	} else {
		s.Router.GET("/", s.redirectReference)
		s.Router.GET(base, s.indexPage)
		s.Router.GET(base+"/*module", s.modulePage)
	}
	return s
}

func newServer(cfg *config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
		log.Printf("[web] trusted proxies: %v", err)
	}
	router.Use(secure.New(secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	router.Use(countRequests())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return &Server{
		Router: router,
		Config: cfg,
		conv:   render.NewConverter(),
	}
}

// basePath returns the reference mount point without a trailing slash.
func (s *Server) basePath() string {
	return strings.TrimSuffix(s.Config.Reference.BasePath, "/")
}

// Run starts the server on the configured listen address and blocks.
func (s *Server) Run() error {
	return s.Router.Run(s.Config.Listen)
}
