// Package locale picks the label language for a visitor.
package locale

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/reroreo1/portfolio/internal/nav"
)

const (
	// Param is the query parameter used to select a language.
	Param = "lang"
	// CookieName stores the visitor's language preference.
	CookieName = "pf_lang"
)

var (
	English            = language.English
	TraditionalChinese = language.TraditionalChinese

	supported = []language.Tag{English, TraditionalChinese}
	matcher   = language.NewMatcher(supported)
)

// Supported returns the supported tags, default first.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Default is the fallback tag.
func Default() language.Tag { return English }

// Parse maps a raw tag onto a supported one. The bool is false when raw is
// not a well-formed tag.
func Parse(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Default(), false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return Default(), false
	}
	return Match(tag), true
}

// Match returns the best supported tag for the preferred tags.
func Match(preferred ...language.Tag) language.Tag {
	_, idx, conf := matcher.Match(preferred...)
	if conf == language.No {
		return Default()
	}
	return supported[idx]
}

// Resolve determines the tag for the request. The bool reports whether the
// tag came from the query and should be persisted.
func Resolve(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}
	if tag, ok := Parse(r.URL.Query().Get(Param)); ok {
		return tag, true
	}
	if c, err := r.Cookie(CookieName); err == nil {
		if tag, ok := Parse(c.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return Match(tags...), false
		}
	}
	return Default(), false
}

// SetCookie persists tag on the response.
func SetCookie(w http.ResponseWriter, tag language.Tag) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Labels is a section's label pair ordered for a language.
type Labels struct {
	Primary   string
	Secondary string
}

// Label orders sec's label pair for tag: the localized label leads for
// Chinese, the English label otherwise.
func Label(sec nav.Section, tag language.Tag) Labels {
	if IsChinese(tag) {
		return Labels{Primary: sec.Label, Secondary: sec.EnglishLabel}
	}
	return Labels{Primary: sec.EnglishLabel, Secondary: sec.Label}
}

// IsChinese reports whether tag resolves to the Chinese labels.
func IsChinese(tag language.Tag) bool {
	base, _ := tag.Base()
	return base.String() == "zh"
}
