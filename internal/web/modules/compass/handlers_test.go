package compass

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kaarlekaarle/commons-web/internal/web/platform/modulehandler"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/retry"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
)

func testMux(gateway CompassGateway) *http.ServeMux {
	mux := http.NewServeMux()
	svc := newServiceWithSleeper(gateway, retry.Immediate{})
	registerRoutes(mux, newHandlers(svc, modulehandler.NewTestBase()))
	return mux
}

func TestHandleIndexRendersPrinciples(t *testing.T) {
	t.Parallel()

	mux := testMux(&fakeGateway{})
	req := httptest.NewRequest(http.MethodGet, routepath.AppCompass, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Decisions belong to those they affect") {
		t.Fatalf("body missing principle title: %q", body)
	}
	if !strings.Contains(body, routepath.AppCompassDetail("principle-1")) {
		t.Fatalf("body missing detail link")
	}
}

func TestHandleDetailRendersAlignment(t *testing.T) {
	t.Parallel()

	mux := testMux(&fakeGateway{})
	req := httptest.NewRequest(http.MethodGet, routepath.AppCompassDetail("principle-1"), nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="compass-alignment"`) {
		t.Fatalf("body missing alignment section: %q", body)
	}
	if !strings.Contains(body, "Agree") {
		t.Fatalf("body missing tally rows")
	}
	if !strings.Contains(body, routepath.AppProposal("principle-1")) {
		t.Fatalf("body missing proposal link")
	}
}

func TestHandleDetailDegradesFailedAlignment(t *testing.T) {
	t.Parallel()

	mux := testMux(&fakeGateway{resultsErr: stderrors.New("tally down")})
	req := httptest.NewRequest(http.MethodGet, routepath.AppCompassDetail("principle-1"), nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 despite alignment failure", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, routepath.AppCompassAlignment("principle-1")) {
		t.Fatalf("body missing alignment retry url: %q", body)
	}
	if !strings.Contains(body, "Decisions belong to those they affect") {
		t.Fatalf("principle text must still render")
	}
}

func TestHandleAlignmentFragment(t *testing.T) {
	t.Parallel()

	mux := testMux(&fakeGateway{})
	req := httptest.NewRequest(http.MethodGet, routepath.AppCompassAlignment("principle-1"), nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "result-row") {
		t.Fatalf("fragment missing tally rows: %q", rr.Body.String())
	}
}
