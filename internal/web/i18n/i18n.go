// Package i18n provides locale resolution and message printing for the web service.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	module "github.com/kaarlekaarle/commons-web/internal/web/module"
	webtemplates "github.com/kaarlekaarle/commons-web/internal/web/templates"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "commons_lang"
)

var supportedTags = []language.Tag{language.English}

var matcher = language.NewMatcher(supportedTags)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// Default returns the default language tag.
func Default() language.Tag {
	return supportedTags[0]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ParseTag parses a raw tag value against the supported set.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	tag, _, confidence := matcher.Match(parsed)
	if confidence == language.No {
		return language.Tag{}, false
	}
	return canonical(tag), true
}

// ResolveTag determines the best language tag for the request. The bool
// indicates whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}

	if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
		if tag, ok := ParseTag(langValue); ok {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			tag, _, _ := matcher.Match(tags...)
			return canonical(tag), false
		}
	}

	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer returns the request localizer and language, persisting a
// lang cookie when locale negotiation requires it. A non-nil resolveLanguage
// hook overrides negotiation, letting composition pin the language per viewer.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request, resolveLanguage module.ResolveLanguage) (webtemplates.Localizer, string) {
	tag := ResolveTagWith(r, resolveLanguage)
	if resolveLanguage == nil {
		if negotiated, setCookie := ResolveTag(r); setCookie {
			SetLanguageCookie(w, negotiated)
		}
	}
	return Printer(tag), tag.String()
}

// ResolveTagWith resolves the language tag, preferring the resolver hook.
func ResolveTagWith(r *http.Request, resolveLanguage module.ResolveLanguage) language.Tag {
	if resolveLanguage != nil {
		if tag, ok := ParseTag(resolveLanguage(r)); ok {
			return tag
		}
	}
	tag, _ := ResolveTag(r)
	return tag
}

// The matcher can return region-qualified tags; collapse back to a supported base.
func canonical(tag language.Tag) language.Tag {
	base, confidence := tag.Base()
	if confidence == language.No {
		return Default()
	}
	for _, supported := range supportedTags {
		supportedBase, _ := supported.Base()
		if supportedBase == base {
			return supported
		}
	}
	return Default()
}
