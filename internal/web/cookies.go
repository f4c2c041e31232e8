package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reroreo1/portfolio/internal/locale"
	"github.com/reroreo1/portfolio/internal/logger"
	"github.com/reroreo1/portfolio/internal/nav"
	"github.com/reroreo1/portfolio/internal/theme"
)

const (
	navCookie   = "pf_nav"
	themeCookie = "pf_theme"
)

// readVisitor loads the visitor's state from cookies. Cookies that do not
// decode fall back to defaults and are marked for rewriting.
func readVisitor(c *gin.Context) visitor {
	v := visitor{Nav: nav.Initial(), Theme: theme.Default}

	if raw, err := c.Cookie(navCookie); err == nil {
		state, err := nav.DecodeState(raw)
		if err != nil {
			logger.Debug("discarding navigation cookie", "value", raw, "err", err)
			v.dirtyNav = true
		}
		v.Nav = state
	}
	if raw, err := c.Cookie(themeCookie); err == nil {
		mode, err := theme.Parse(raw)
		if err != nil {
			logger.Debug("discarding theme cookie", "value", raw, "err", err)
			v.dirtyTheme = true
		}
		v.Theme = mode
	}

	tag, persist := locale.Resolve(c.Request)
	if persist {
		locale.SetCookie(c.Writer, tag)
	}
	v.Lang = tag
	return v
}

// writeVisitor sets each dirty cookie once per response.
func writeVisitor(c *gin.Context, v visitor) {
	if v.dirtyNav {
		writeNav(c, v.Nav)
	}
	if v.dirtyTheme {
		writeTheme(c, v.Theme)
	}
}

// Navigation and theme cookies are session cookies: they end with the
// browser session.
func writeNav(c *gin.Context, s nav.State) {
	setSessionCookie(c, navCookie, s.Encode())
}

func writeTheme(c *gin.Context, m theme.Mode) {
	setSessionCookie(c, themeCookie, m.String())
}

func setSessionCookie(c *gin.Context, name, value string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, 0, "/", "", false, true)
}
