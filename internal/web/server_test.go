package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reroreo1/portfolio/internal/config"
	"github.com/reroreo1/portfolio/internal/visits"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()
	s, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(s.Wait)
	return s
}

type request struct {
	method  string
	target  string
	htmx    bool
	cookies []*http.Cookie
	form    url.Values
	header  map[string]string
}

func (s *Server) do(t *testing.T, r request) *httptest.ResponseRecorder {
	t.Helper()
	var body *strings.Reader
	if r.form != nil {
		body = strings.NewReader(r.form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(r.method, r.target, body)
	if r.form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if r.htmx {
		req.Header.Set("HX-Request", "true")
	}
	for k, v := range r.header {
		req.Header.Set(k, v)
	}
	for _, c := range r.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func cookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func activeMarker(id string) string {
	return `class="drawer-section active" data-section="` + id + `"`
}

func TestIndexDefaultState(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := s.do(t, request{method: http.MethodGet, target: "/"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("full page expected")
	}
	if !strings.Contains(body, activeMarker("profile")) {
		t.Error("profile should be active by default")
	}
	if got := strings.Count(body, "width: 88%"); got != 1 {
		t.Errorf("88%% columns = %d, want 1", got)
	}
	if got := strings.Count(body, "width: 4%"); got != 3 {
		t.Errorf("4%% columns = %d, want 3", got)
	}
	if strings.Contains(body, "menu-overlay") {
		t.Error("menu should be closed by default")
	}
	if !strings.Contains(body, "theme-light") {
		t.Error("light theme should be the default")
	}
}

func TestIndexSectionQuery(t *testing.T) {
	s := newTestServer(t, Options{})
	tests := []struct {
		name       string
		target     string
		htmx       bool
		wantStatus int
		wantActive string
	}{
		{"valid", "/?section=projects", false, http.StatusOK, "projects"},
		{"case insensitive", "/?section=Contact", false, http.StatusOK, "contact"},
		{"unknown ignored", "/?section=blog", false, http.StatusOK, "profile"},
		{"unknown htmx", "/?section=blog", true, http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, request{method: http.MethodGet, target: tt.target, htmx: tt.htmx})
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantActive != "" && !strings.Contains(rec.Body.String(), activeMarker(tt.wantActive)) {
				t.Errorf("%s should be active", tt.wantActive)
			}
		})
	}
}

func TestSelectSection(t *testing.T) {
	s := newTestServer(t, Options{})

	rec := s.do(t, request{method: http.MethodPost, target: "/sections/contact", htmx: true})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("HTMX request should get a fragment")
	}
	if !strings.HasPrefix(strings.TrimSpace(body), `<div id="app"`) {
		t.Error("fragment should be the app container")
	}
	if !strings.Contains(body, activeMarker("contact")) {
		t.Error("contact should be active")
	}
	c := cookie(rec, navCookie)
	if c == nil || c.Value != "contact" {
		t.Fatalf("nav cookie = %v, want contact", c)
	}

	// The cookie carries the state into the next full page load.
	rec = s.do(t, request{method: http.MethodGet, target: "/", cookies: []*http.Cookie{c}})
	if !strings.Contains(rec.Body.String(), activeMarker("contact")) {
		t.Error("contact should stay active across requests")
	}
}

func TestSelectSectionWithoutHTMX(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := s.do(t, request{method: http.MethodPost, target: "/sections/experience"})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}
	if c := cookie(rec, navCookie); c == nil || c.Value != "experience" {
		t.Errorf("nav cookie = %v, want experience", c)
	}
}

func TestSelectUnknownSection(t *testing.T) {
	s := newTestServer(t, Options{})

	rec := s.do(t, request{method: http.MethodPost, target: "/sections/blog", htmx: true})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("htmx status = %d, want 400", rec.Code)
	}
	if cookie(rec, navCookie) != nil {
		t.Error("state must not change for an unknown section")
	}

	rec = s.do(t, request{method: http.MethodPost, target: "/sections/blog"})
	if rec.Code != http.StatusSeeOther {
		t.Errorf("form status = %d, want 303", rec.Code)
	}
}

func TestMenu(t *testing.T) {
	s := newTestServer(t, Options{})

	rec := s.do(t, request{method: http.MethodPost, target: "/menu/toggle", htmx: true})
	c := cookie(rec, navCookie)
	if c == nil || c.Value != "profile.menu" {
		t.Fatalf("after toggle cookie = %v, want profile.menu", c)
	}
	if !strings.Contains(rec.Body.String(), "menu-overlay") {
		t.Error("menu overlay should render when open")
	}

	rec = s.do(t, request{method: http.MethodPost, target: "/menu/select/projects", htmx: true, cookies: []*http.Cookie{c}})
	c = cookie(rec, navCookie)
	if c == nil || c.Value != "projects" {
		t.Fatalf("after select cookie = %v, want projects", c)
	}
	body := rec.Body.String()
	if strings.Contains(body, "menu-overlay") {
		t.Error("selecting from the menu should close it")
	}
	if !strings.Contains(body, activeMarker("projects")) {
		t.Error("projects should be active")
	}

	rec = s.do(t, request{method: http.MethodPost, target: "/menu/toggle", htmx: true, cookies: []*http.Cookie{c}})
	c = cookie(rec, navCookie)
	rec = s.do(t, request{method: http.MethodPost, target: "/menu/close", htmx: true, cookies: []*http.Cookie{c}})
	if c := cookie(rec, navCookie); c == nil || c.Value != "projects" {
		t.Errorf("after close cookie = %v, want projects", c)
	}
}

func TestToggleTheme(t *testing.T) {
	s := newTestServer(t, Options{})

	rec := s.do(t, request{method: http.MethodPost, target: "/theme/toggle", htmx: true})
	dark := cookie(rec, themeCookie)
	if dark == nil || dark.Value != "dark" {
		t.Fatalf("first toggle = %v, want dark", dark)
	}
	if !strings.Contains(rec.Body.String(), "theme-dark") {
		t.Error("fragment should render dark")
	}
	if dark.MaxAge != 0 || !dark.Expires.IsZero() {
		t.Error("theme cookie should last for the browser session only")
	}

	rec = s.do(t, request{method: http.MethodPost, target: "/theme/toggle", htmx: true, cookies: []*http.Cookie{dark}})
	if c := cookie(rec, themeCookie); c == nil || c.Value != "light" {
		t.Fatalf("second toggle = %v, want light", c)
	}
}

func TestBadCookiesAreReset(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := s.do(t, request{
		method: http.MethodGet,
		target: "/",
		cookies: []*http.Cookie{
			{Name: navCookie, Value: "blog.menu"},
			{Name: themeCookie, Value: "sepia"},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if c := cookie(rec, navCookie); c == nil || c.Value != "profile" {
		t.Errorf("nav cookie = %v, want profile", c)
	}
	if c := cookie(rec, themeCookie); c == nil || c.Value != "light" {
		t.Errorf("theme cookie = %v, want light", c)
	}
	if !strings.Contains(rec.Body.String(), activeMarker("profile")) {
		t.Error("profile should be active")
	}
}

func TestBadCookieWrittenOnce(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := s.do(t, request{
		method:  http.MethodPost,
		target:  "/sections/contact",
		htmx:    true,
		cookies: []*http.Cookie{{Name: navCookie, Value: "blog"}},
	})
	var values []string
	for _, c := range rec.Result().Cookies() {
		if c.Name == navCookie {
			values = append(values, c.Value)
		}
	}
	if len(values) != 1 || values[0] != "contact" {
		t.Errorf("nav cookies = %v, want a single contact", values)
	}
}

func TestLanguage(t *testing.T) {
	s := newTestServer(t, Options{})

	rec := s.do(t, request{method: http.MethodGet, target: "/?lang=zh-Hant"})
	c := cookie(rec, "pf_lang")
	if c == nil || c.Value != "zh-Hant" {
		t.Fatalf("lang cookie = %v, want zh-Hant", c)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `<html lang="zh-Hant">`) {
		t.Error("document language should be zh-Hant")
	}
	if !strings.Contains(body, `<span class="tab-primary">經驗</span>`) {
		t.Error("collapsed tabs should lead with the Chinese label")
	}

	rec = s.do(t, request{method: http.MethodGet, target: "/", header: map[string]string{"Accept-Language": "fr-FR,fr;q=0.9"}})
	if !strings.Contains(rec.Body.String(), `<span class="tab-primary">Experience</span>`) {
		t.Error("unsupported languages should fall back to English")
	}
}

func TestSectionContent(t *testing.T) {
	s := newTestServer(t, Options{})

	rec := s.do(t, request{method: http.MethodGet, target: "/sections/experience/content"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `id="panel-experience"`) {
		t.Error("experience panel expected")
	}
	if cookie(rec, navCookie) != nil {
		t.Error("loading content must not change navigation state")
	}

	rec = s.do(t, request{method: http.MethodGet, target: "/sections/blog/content"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown section status = %d, want 404", rec.Code)
	}
}

func TestPages(t *testing.T) {
	s := newTestServer(t, Options{})
	tests := []struct {
		target     string
		htmx       bool
		wantStatus int
		wantFull   bool
		wantText   []string
	}{
		{"/pages/home", false, http.StatusOK, true, []string{"Rachid Ezzahraouy"}},
		{"/pages/about", false, http.StatusOK, true, []string{"Skills", "Machine Learning"}},
		{"/pages/work", true, http.StatusOK, false, []string{"E-commerce Platform", "TensorFlow"}},
		{"/pages/contact", false, http.StatusOK, true, []string{
			"<h3", ">Email</h3>", ">LinkedIn</h3>", ">Location</h3>",
			"contact@rachidezzahraouy.com", "linkedin.com/in/rezzahra", "Morocco",
			`<form class="contact-form"`, "Send Message",
		}},
		{"/pages/blog", false, http.StatusNotFound, false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := s.do(t, request{method: http.MethodGet, target: tt.target, htmx: tt.htmx})
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if rec.Code != http.StatusOK {
				return
			}
			body := rec.Body.String()
			if got := strings.Contains(body, "<!DOCTYPE html>"); got != tt.wantFull {
				t.Errorf("full page = %v, want %v", got, tt.wantFull)
			}
			if !strings.Contains(body, `id="page"`) {
				t.Error("page body expected")
			}
			for _, want := range tt.wantText {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q", want)
				}
			}
		})
	}
}

func TestHealthAndStatic(t *testing.T) {
	s := newTestServer(t, Options{})

	rec := s.do(t, request{method: http.MethodGet, target: "/healthz"})
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("healthz = %d %s", rec.Code, rec.Body.String())
	}

	rec = s.do(t, request{method: http.MethodGet, target: "/static/site.css"})
	if rec.Code != http.StatusOK {
		t.Fatalf("site.css status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "cubic-bezier(0.16, 1, 0.3, 1)") {
		t.Error("drawer easing missing from stylesheet")
	}
}

func TestAdminDisabledWithoutStore(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := s.do(t, request{method: http.MethodGet, target: "/admin/stats"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestAdminStats(t *testing.T) {
	store, err := visits.Open(context.Background(), filepath.Join(t.TempDir(), "visits.db"), time.Hour)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	s := newTestServer(t, Options{
		Store: store,
		Admin: config.Admin{Username: "admin", Password: "s3cret"},
	})

	s.do(t, request{method: http.MethodPost, target: "/sections/projects", htmx: true})
	s.do(t, request{method: http.MethodGet, target: "/", header: map[string]string{"DNT": "1"}})
	s.Wait()

	rec := s.do(t, request{method: http.MethodGet, target: "/admin/stats"})
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/admin/login" {
		t.Fatalf("unauthenticated stats = %d %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = s.do(t, request{
		method: http.MethodPost, target: "/admin/login",
		form: url.Values{"username": {"admin"}, "password": {"wrong"}},
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d, want 401", rec.Code)
	}

	rec = s.do(t, request{
		method: http.MethodPost, target: "/admin/login",
		form: url.Values{"username": {"admin"}, "password": {"s3cret"}},
	})
	if rec.Code != http.StatusFound {
		t.Fatalf("login status = %d, want 302", rec.Code)
	}
	token := cookie(rec, adminCookie)
	if token == nil {
		t.Fatal("login should set the admin cookie")
	}

	rec = s.do(t, request{method: http.MethodGet, target: "/admin/stats", cookies: []*http.Cookie{token}})
	if rec.Code != http.StatusOK {
		t.Fatalf("stats status = %d, want 200", rec.Code)
	}
	var stats visits.Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalVisits != 1 {
		t.Errorf("total visits = %d, want 1 (DNT request skipped)", stats.TotalVisits)
	}
	if len(stats.Sections) != 1 || stats.Sections[0].Section != "projects" {
		t.Errorf("sections = %+v, want projects only", stats.Sections)
	}

	rec = s.do(t, request{method: http.MethodPost, target: "/admin/cleanup", cookies: []*http.Cookie{token}})
	if rec.Code != http.StatusOK {
		t.Errorf("cleanup status = %d, want 200", rec.Code)
	}
}
