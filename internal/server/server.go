// Package server wires the portfolio page, its fragments and the admin area
// onto a gin engine.
package server

import (
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Meertayyab/portfolio/internal/analytics"
	"github.com/Meertayyab/portfolio/internal/config"
	"github.com/Meertayyab/portfolio/internal/contact"
	"github.com/Meertayyab/portfolio/internal/content"
	"github.com/Meertayyab/portfolio/internal/logging"
	"github.com/Meertayyab/portfolio/internal/page"
)

type Options struct {
	Content  *content.Store
	Renderer *page.Renderer
	// Relay is nil unless a contact backend is configured; the form is then
	// inert and POST /contact does not exist.
	Relay contact.Relay
	// Analytics is nil when visitor tracking is off; the admin area is then
	// not mounted either.
	Analytics *analytics.Store
	Admin     config.AdminConfig
	Retention time.Duration

	StaticDir  string
	ImagesDir  string
	ResumeFile string

	Log *zap.Logger
	Now func() time.Time
}

type Server struct {
	content   *content.Store
	renderer  *page.Renderer
	relay     contact.Relay
	analytics *analytics.Store
	admin     config.AdminConfig
	retention time.Duration
	log       *zap.Logger
	now       func() time.Time

	adminToken string
	engine     *gin.Engine
}

// New builds the server and registers every route.
func New(opts Options) (*Server, error) {
	if opts.Content == nil || opts.Renderer == nil {
		return nil, fmt.Errorf("server: content and renderer are required")
	}
	if opts.Log == nil {
		opts.Log = logging.Log
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Server{
		content:   opts.Content,
		renderer:  opts.Renderer,
		relay:     opts.Relay,
		analytics: opts.Analytics,
		admin:     opts.Admin,
		retention: opts.Retention,
		log:       opts.Log,
		now:       opts.Now,
	}

	r := gin.New()
	r.Use(requestLogger(s.log), recovery(s.log), s.trackVisits())
	r.SetHTMLTemplate(s.renderer.Template())

	if opts.StaticDir != "" {
		r.Static("/static", opts.StaticDir)
	}
	if opts.ImagesDir != "" {
		r.Static("/images", opts.ImagesDir)
	}

	r.GET("/", s.handlePage)
	r.GET("/section/:name", s.handleFragment)

	// Fixed path so content reloads cannot move or break the route.
	if opts.ResumeFile != "" {
		file := opts.ResumeFile
		r.GET(page.ResumePath, func(c *gin.Context) {
			c.FileAttachment(file, path.Base(page.ResumePath))
		})
	}

	if s.relay != nil {
		r.POST(page.ContactAction, s.handleContact)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if err := s.setupAdminRoutes(r); err != nil {
		return nil, err
	}

	s.engine = r
	return s, nil
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.engine
}
