package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/kaarlekaarle/commons-web/internal/commons"
)

func TestFromAPIMapsBackendStatusToKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status     int
		wantKind   Kind
		wantStatus int
	}{
		{http.StatusBadRequest, KindInvalidInput, http.StatusBadRequest},
		{http.StatusUnprocessableEntity, KindInvalidInput, http.StatusBadRequest},
		{http.StatusUnauthorized, KindUnauthorized, http.StatusUnauthorized},
		{http.StatusForbidden, KindForbidden, http.StatusForbidden},
		{http.StatusNotFound, KindNotFound, http.StatusNotFound},
		{http.StatusConflict, KindConflict, http.StatusConflict},
		{http.StatusBadGateway, KindUnavailable, http.StatusServiceUnavailable},
		{http.StatusServiceUnavailable, KindUnavailable, http.StatusServiceUnavailable},
		{http.StatusTeapot, KindUnknown, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("status_%d", tc.status), func(t *testing.T) {
			t.Parallel()

			err := FromAPI(commons.APIError{Status: tc.status, Message: "backend said no"})
			var appErr Error
			if !stderrors.As(err, &appErr) {
				t.Fatalf("FromAPI returned %T, want Error", err)
			}
			if appErr.Kind != tc.wantKind {
				t.Fatalf("kind = %q, want %q", appErr.Kind, tc.wantKind)
			}
			if got := HTTPStatus(err); got != tc.wantStatus {
				t.Fatalf("HTTPStatus = %d, want %d", got, tc.wantStatus)
			}
		})
	}
}

func TestFromAPIUnwrapsWrappedBackendError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("list polls: %w", commons.APIError{Status: http.StatusNotFound})
	err := FromAPI(wrapped)
	var appErr Error
	if !stderrors.As(err, &appErr) {
		t.Fatalf("FromAPI returned %T, want Error", err)
	}
	if appErr.Kind != KindNotFound {
		t.Fatalf("kind = %q, want %q", appErr.Kind, KindNotFound)
	}
}

func TestHTTPStatusOnRawBackendError(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(commons.APIError{Status: http.StatusUnauthorized}); got != http.StatusUnauthorized {
		t.Fatalf("HTTPStatus = %d, want 401", got)
	}
	if got := HTTPStatus(stderrors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("HTTPStatus = %d, want 500", got)
	}
}

func TestFromAPIKeepsTypedErrors(t *testing.T) {
	t.Parallel()

	original := EK(KindConflict, "web.errors.conflict", "already voted")
	if got := FromAPI(original); got != original {
		t.Fatalf("FromAPI rewrapped an already-typed error: %v", got)
	}
}
