package proposals

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kaarlekaarle/commons-web/internal/web/platform/modulehandler"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
)

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(newService(&fakeGateway{}), modulehandler.NewTestBase()))
}

func TestRegisterRoutesPathAndMethodContracts(t *testing.T) {
	t.Parallel()

	mux := testMux(&fakeGateway{})

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{name: "proposals root", method: http.MethodGet, path: routepath.AppProposals, wantStatus: http.StatusOK},
		{name: "proposal detail", method: http.MethodGet, path: routepath.AppProposal("poll-1"), wantStatus: http.StatusOK},
		{name: "new form", method: http.MethodGet, path: routepath.AppProposalsNew, wantStatus: http.StatusOK},
		{name: "create get rejected", method: http.MethodGet, path: routepath.AppProposalsCreate, wantStatus: http.StatusMethodNotAllowed, wantAllow: http.MethodPost},
		{name: "vote get rejected", method: http.MethodGet, path: routepath.AppProposalVote("poll-1"), wantStatus: http.StatusMethodNotAllowed, wantAllow: http.MethodPost},
		{name: "results fragment", method: http.MethodGet, path: routepath.AppProposalResults("poll-1"), wantStatus: http.StatusOK},
		{name: "comments fragment", method: http.MethodGet, path: routepath.AppProposalComments("poll-1"), wantStatus: http.StatusOK},
		{name: "comment delete get rejected", method: http.MethodGet, path: routepath.AppProposalCommentDelete("poll-1", "c1"), wantStatus: http.StatusMethodNotAllowed, wantAllow: http.MethodPost},
		{name: "comment react get rejected", method: http.MethodGet, path: routepath.AppProposalCommentReact("poll-1", "c1"), wantStatus: http.StatusMethodNotAllowed, wantAllow: http.MethodPost},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if tc.wantAllow != "" {
				if got := rr.Header().Get("Allow"); got != tc.wantAllow {
					t.Fatalf("Allow = %q, want %q", got, tc.wantAllow)
				}
			}
		})
	}
}
