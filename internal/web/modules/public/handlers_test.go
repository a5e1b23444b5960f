package public

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
)

type fakeGateway struct {
	pages   map[string]commons.ContentPage
	getErr  error
	queried []string
}

var _ ContentGateway = (*fakeGateway)(nil)

func (f *fakeGateway) GetContent(_ context.Context, slug string) (commons.ContentPage, error) {
	f.queried = append(f.queried, slug)
	if f.getErr != nil {
		return commons.ContentPage{}, f.getErr
	}
	if page, ok := f.pages[slug]; ok {
		return page, nil
	}
	return commons.ContentPage{
		Slug:  slug,
		Title: "Shared principles",
		Sections: []commons.ContentSection{
			{Heading: "Listen first", Body: "Understanding precedes deciding."},
		},
	}, nil
}

func testMux(gateway ContentGateway, signedIn bool) *http.ServeMux {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(gateway), func(*http.Request) bool { return signedIn }))
	return mux
}

func TestHandleLandingRendersHero(t *testing.T) {
	t.Parallel()

	mux := testMux(&fakeGateway{}, false)
	req := httptest.NewRequest(http.MethodGet, routepath.Root, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, routepath.Register) || !strings.Contains(body, routepath.Login) {
		t.Fatalf("landing missing auth links: %q", body)
	}
}

func TestHandleLandingRedirectsSignedIn(t *testing.T) {
	t.Parallel()

	mux := testMux(&fakeGateway{}, true)
	req := httptest.NewRequest(http.MethodGet, routepath.Root, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rr.Code)
	}
	if got := rr.Header().Get("Location"); got != routepath.AppProposals {
		t.Fatalf("Location = %q", got)
	}
}

func TestHandleContentRendersSections(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	mux := testMux(gateway, false)
	req := httptest.NewRequest(http.MethodGet, routepath.Principles, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Shared principles") || !strings.Contains(body, "Listen first") {
		t.Fatalf("body missing content: %q", body)
	}
	if len(gateway.queried) != 1 || gateway.queried[0] != "principles" {
		t.Fatalf("queried = %+v, want [principles]", gateway.queried)
	}
}

func TestHandleContentBackendFailureKeepsPublicShell(t *testing.T) {
	t.Parallel()

	mux := testMux(&fakeGateway{getErr: apperrors.E(apperrors.KindUnavailable, "cms down")}, false)
	req := httptest.NewRequest(http.MethodGet, routepath.Stories, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "content-page") {
		t.Fatalf("error should render inside the public shell: %q", rr.Body.String())
	}
}

func TestServiceRejectsUnknownSlug(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeGateway{})
	_, err := svc.contentPage(context.Background(), "admin")
	var appErr apperrors.Error
	if !stderrors.As(err, &appErr) || appErr.Kind != apperrors.KindNotFound {
		t.Fatalf("err = %v, want not found", err)
	}
}
