package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/reroreo1/portfolio/internal/content"
	"github.com/reroreo1/portfolio/internal/logger"
	"github.com/reroreo1/portfolio/internal/nav"
	"github.com/reroreo1/portfolio/internal/visits"
)

// isHTMX reports whether the request was initiated by HTMX.
func isHTMX(c *gin.Context) bool {
	return strings.EqualFold(c.GetHeader("HX-Request"), "true")
}

// index renders the drawer page. ?section=<id> selects a section first.
func (s *Server) index(c *gin.Context) {
	v := readVisitor(c)
	if raw, ok := c.GetQuery("section"); ok {
		id, err := nav.ParseSectionID(raw)
		switch {
		case err == nil:
			v.Nav = nav.Reduce(v.Nav, nav.SetActive{ID: id})
			v.dirtyNav = true
		case isHTMX(c):
			c.String(http.StatusBadRequest, err.Error())
			return
		default:
			logger.Debug("ignoring section query", "value", raw)
		}
	}
	s.render(c, v)
}

func (s *Server) selectSection(c *gin.Context) {
	id, ok := sectionParam(c)
	if !ok {
		return
	}
	s.apply(c, nav.SetActive{ID: id})
}

func (s *Server) selectFromMenu(c *gin.Context) {
	id, ok := sectionParam(c)
	if !ok {
		return
	}
	s.apply(c, nav.SelectFromMenu{ID: id})
}

func (s *Server) toggleMenu(c *gin.Context) { s.apply(c, nav.ToggleMenu{}) }

func (s *Server) closeMenu(c *gin.Context) { s.apply(c, nav.CloseMenu{}) }

func (s *Server) toggleTheme(c *gin.Context) {
	v := readVisitor(c)
	v.Theme = v.Theme.Toggle()
	v.dirtyTheme = true
	s.respond(c, v)
}

// apply runs a navigation action against the visitor's state and responds
// with the updated view.
func (s *Server) apply(c *gin.Context, a nav.Action) {
	v := readVisitor(c)
	v.Nav = nav.Reduce(v.Nav, a)
	v.dirtyNav = true
	s.respond(c, v)
}

// respond answers a state change: HTMX gets the app fragment, plain form
// posts are redirected back to the page.
func (s *Server) respond(c *gin.Context, v visitor) {
	writeVisitor(c, v)
	c.Set(visits.SectionContextKey, string(v.Nav.Active))
	if isHTMX(c) {
		c.HTML(http.StatusOK, "app", newAppView(v))
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) render(c *gin.Context, v visitor) {
	writeVisitor(c, v)
	c.Set(visits.SectionContextKey, string(v.Nav.Active))
	if isHTMX(c) {
		c.HTML(http.StatusOK, "app", newAppView(v))
		return
	}
	c.HTML(http.StatusOK, "index", newAppView(v))
}

// sectionContent renders one panel body, used for lazy loading.
func (s *Server) sectionContent(c *gin.Context) {
	id, err := nav.ParseSectionID(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, err.Error())
		return
	}
	v := readVisitor(c)
	writeVisitor(c, v)
	view := newAppView(visitor{Nav: v.Nav.SetActive(id), Theme: v.Theme, Lang: v.Lang})
	c.Set(visits.SectionContextKey, string(id))
	c.HTML(http.StatusOK, "panel", view)
}

func (s *Server) page(c *gin.Context) {
	p, err := content.LookupPage(c.Param("page"))
	if err != nil {
		c.String(http.StatusNotFound, err.Error())
		return
	}
	v := readVisitor(c)
	writeVisitor(c, v)
	view := pageView{appView: newAppView(v), Page: p}
	if isHTMX(c) {
		c.HTML(http.StatusOK, "page-body", view)
		return
	}
	c.HTML(http.StatusOK, "page", view)
}

func sectionParam(c *gin.Context) (nav.SectionID, bool) {
	id, err := nav.ParseSectionID(c.Param("id"))
	if err == nil {
		return id, true
	}
	if isHTMX(c) {
		c.String(http.StatusBadRequest, err.Error())
		return "", false
	}
	c.Redirect(http.StatusSeeOther, "/")
	return "", false
}
