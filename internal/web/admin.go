package web

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reroreo1/portfolio/internal/config"
	"github.com/reroreo1/portfolio/internal/logger"
	"github.com/reroreo1/portfolio/internal/visits"
)

const adminCookie = "admin_token"

// admin is the statistics surface. It exists only when a store is configured.
type admin struct {
	store    *visits.Store
	username string
	password string
	token    string
}

func newAdmin(store *visits.Store, creds config.Admin, debug bool) (*admin, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}
	logger.Info("admin access available", "path", "/admin/login")
	if debug {
		logger.Debug("admin token (dev only)", "token", token)
	}
	return &admin{store: store, username: creds.Username, password: creds.Password, token: token}, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate admin token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func (a *admin) routes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login", gin.H{"title": "Admin Login"})
	})
	r.POST("/admin/login", a.login)
	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		logger.Info("admin logout", "from", a.store.HashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	g := r.Group("/admin")
	g.Use(a.requireToken())
	g.GET("/stats", a.stats)
	g.POST("/cleanup", a.cleanup)
}

func (a *admin) login(c *gin.Context) {
	user := c.PostForm("username")
	pass := c.PostForm("password")
	if !equal(user, a.username) || !equal(pass, a.password) {
		logger.Warn("failed admin login", "from", a.store.HashIP(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "admin-login", gin.H{"error": "Invalid credentials"})
		return
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(adminCookie, a.token, 3600*24, "/admin", "", false, true)
	logger.Info("admin login", "from", a.store.HashIP(c.ClientIP()))
	c.Redirect(http.StatusFound, "/admin/stats")
}

func (a *admin) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !equal(token, a.token) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (a *admin) stats(c *gin.Context) {
	stats, err := a.store.Stats(c.Request.Context())
	if err != nil {
		logger.Error("loading visit stats", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (a *admin) cleanup(c *gin.Context) {
	n, err := a.store.Cleanup(c.Request.Context())
	if err != nil {
		logger.Error("visit cleanup", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
		return
	}
	if n > 0 {
		logger.Info("privacy cleanup", "removed", n)
	}
	c.JSON(http.StatusOK, gin.H{"removed": n})
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
