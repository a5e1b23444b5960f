package delegations

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
)

func errorKind(t *testing.T, err error) apperrors.Kind {
	t.Helper()
	var appErr apperrors.Error
	if !stderrors.As(err, &appErr) {
		t.Fatalf("err = %v, want typed app error", err)
	}
	return appErr.Kind
}

func TestCreateDelegationRequiresDelegate(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeGateway{})
	_, err := svc.createDelegation(context.Background(), commons.DelegationInput{ToUserID: "   "})
	if kind := errorKind(t, err); kind != apperrors.KindInvalidInput {
		t.Fatalf("kind = %q, want invalid input", kind)
	}
}

func TestCreateDelegationTrimsInput(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	svc := newService(gateway)
	if _, err := svc.createDelegation(context.Background(), commons.DelegationInput{ToUserID: " u2 ", LabelID: " l1 "}); err != nil {
		t.Fatalf("createDelegation() error = %v", err)
	}
	if len(gateway.created) != 1 {
		t.Fatalf("created = %+v, want one call", gateway.created)
	}
	if got := gateway.created[0]; got.ToUserID != "u2" || got.LabelID != "l1" {
		t.Fatalf("input = %+v, want trimmed values", got)
	}
}

func TestSearchDelegatesShortQueryReturnsEmpty(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	svc := newService(gateway)
	users, err := svc.searchDelegates(context.Background(), " b ")
	if err != nil {
		t.Fatalf("searchDelegates() error = %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("users = %+v, want empty for short query", users)
	}
	if len(gateway.queries) != 0 {
		t.Fatalf("backend should not be queried for short input")
	}
}

func TestSearchDelegatesQueriesBackend(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	svc := newService(gateway)
	users, err := svc.searchDelegates(context.Background(), "bo")
	if err != nil {
		t.Fatalf("searchDelegates() error = %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("users = %d, want 2", len(users))
	}
	if len(gateway.queries) != 1 || gateway.queries[0] != "bo" {
		t.Fatalf("queries = %+v", gateway.queries)
	}
}

func TestDeleteDelegationPassesBlankForGlobal(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	svc := newService(gateway)
	if err := svc.deleteDelegation(context.Background(), "  "); err != nil {
		t.Fatalf("deleteDelegation() error = %v", err)
	}
	if len(gateway.deleted) != 1 || gateway.deleted[0] != "" {
		t.Fatalf("deleted = %+v, want one blank (global) revocation", gateway.deleted)
	}
}

func TestServiceWithoutGatewayIsUnavailable(t *testing.T) {
	t.Parallel()

	svc := newService(nil)
	_, err := svc.delegationState(context.Background())
	if kind := errorKind(t, err); kind != apperrors.KindUnavailable {
		t.Fatalf("kind = %q, want unavailable", kind)
	}
}
