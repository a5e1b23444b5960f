package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagPrefersQueryParam(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/proposals?lang=en", nil)
	tag, setCookie := ResolveTag(req)
	if tag != language.English {
		t.Fatalf("tag = %v, want en", tag)
	}
	if !setCookie {
		t.Fatalf("expected query-selected language to persist as cookie")
	}
}

func TestResolveTagFallsBackToCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/proposals", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})
	tag, setCookie := ResolveTag(req)
	if tag != language.English {
		t.Fatalf("tag = %v, want en", tag)
	}
	if setCookie {
		t.Fatalf("cookie language should not re-persist")
	}
}

func TestResolveTagUnknownLanguageUsesDefault(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/proposals?lang=zz-ZZ", nil)
	tag, _ := ResolveTag(req)
	if tag != Default() {
		t.Fatalf("tag = %v, want default", tag)
	}
}

func TestCatalogTranslatesKnownKeys(t *testing.T) {
	t.Parallel()

	printer := Printer(language.English)
	if got := printer.Sprintf("web.app.name"); got != "The Commons" {
		t.Fatalf("web.app.name = %q", got)
	}
	if got := printer.Sprintf("web.time.minutes_ago", 5); got != "5 minutes ago" {
		t.Fatalf("minutes_ago = %q", got)
	}
}

func TestResolveLocalizerUsesResolverHook(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/proposals", nil)
	rr := httptest.NewRecorder()
	loc, lang := ResolveLocalizer(rr, req, func(*http.Request) string { return "en" })
	if loc == nil {
		t.Fatalf("expected localizer")
	}
	if lang != "en" {
		t.Fatalf("lang = %q, want en", lang)
	}
}
