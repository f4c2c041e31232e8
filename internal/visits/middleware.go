package visits

import (
	"context"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/reroreo1/portfolio/internal/logger"
)

var skipPrefixes = []string{"/static/", "/admin/", "/favicon", "/healthz"}

// Tracker records visits in the background so requests never wait on sqlite.
type Tracker struct {
	store *Store
	wg    sync.WaitGroup
}

// NewTracker returns a tracker writing to store. A nil store disables it.
func NewTracker(store *Store) *Tracker {
	return &Tracker{store: store}
}

// Middleware records each tracked request once the handler has run, so the
// section a handler resolved is available under the "section" context key.
// Requests with DNT: 1 are never recorded.
func (t *Tracker) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if t == nil || t.store == nil {
			return
		}
		path := c.Request.URL.Path
		for _, p := range skipPrefixes {
			if strings.HasPrefix(path, p) {
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			return
		}
		if c.Writer.Status() >= 400 {
			return
		}
		section := c.GetString(SectionContextKey)
		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		ctx := context.WithoutCancel(c.Request.Context())

		t.wg.Add(1)
		go func() {
			defer t.wg.Done()
			if err := t.store.Record(ctx, ip, ua, path, section); err != nil {
				logger.Warn("recording visit failed", "path", path, "err", err)
			}
		}()
	}
}

// Wait blocks until pending writes finish.
func (t *Tracker) Wait() {
	if t != nil {
		t.wg.Wait()
	}
}

// SectionContextKey is the gin context key handlers set to the section a
// request displayed.
const SectionContextKey = "section"
