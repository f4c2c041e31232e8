// Package web serves the portfolio over HTTP: the drawer page, its HTMX
// fragments, the alternate pages and the opt-in statistics surface.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reroreo1/portfolio/internal/config"
	"github.com/reroreo1/portfolio/internal/telemetry"
	"github.com/reroreo1/portfolio/internal/visits"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Options wires optional collaborators into the server.
type Options struct {
	// Store enables visit statistics and the admin surface when non-nil.
	Store *visits.Store
	Admin config.Admin
	Debug bool
}

// Server is the portfolio's HTTP surface.
type Server struct {
	engine  *gin.Engine
	tracker *visits.Tracker
	admin   *admin
}

// New builds the gin engine and registers every route.
func New(opts Options) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	r.Use(telemetry.Middleware())

	s := &Server{engine: r, tracker: visits.NewTracker(opts.Store)}
	r.Use(s.tracker.Middleware())

	r.StaticFS("/static", http.FS(static))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", s.index)
	r.POST("/sections/:id", s.selectSection)
	r.GET("/sections/:id/content", s.sectionContent)
	r.POST("/menu/toggle", s.toggleMenu)
	r.POST("/menu/close", s.closeMenu)
	r.POST("/menu/select/:id", s.selectFromMenu)
	r.POST("/theme/toggle", s.toggleTheme)
	r.GET("/pages/:page", s.page)

	if opts.Store != nil {
		a, err := newAdmin(opts.Store, opts.Admin, opts.Debug)
		if err != nil {
			return nil, err
		}
		a.routes(r)
		s.admin = a
	}
	return s, nil
}

// Handler returns the http.Handler serving every route.
func (s *Server) Handler() http.Handler { return s.engine }

// Wait blocks until background visit writes finish.
func (s *Server) Wait() { s.tracker.Wait() }

var templateFuncs = template.FuncMap{
	"join": strings.Join,
	// Skill chips pop in 30ms apart.
	"chipDelay": func(i int) string {
		return seconds(time.Duration(i) * 30 * time.Millisecond)
	},
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}
