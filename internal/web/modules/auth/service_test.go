package auth

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

func TestLoginRequiresCredentials(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeGateway{})
	if _, err := svc.login(context.Background(), "  ", "secret"); err == nil {
		t.Fatalf("expected error for blank username")
	}
	_, err := svc.login(context.Background(), "alice", "")
	if kind := errorKind(t, err); kind != apperrors.KindInvalidInput {
		t.Fatalf("kind = %q, want invalid input", kind)
	}
}

func TestLoginRejectsEmptyBackendToken(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeGateway{token: "   "})
	_, err := svc.login(context.Background(), "alice", "secret")
	if kind := errorKind(t, err); kind != apperrors.KindUnavailable {
		t.Fatalf("kind = %q, want unavailable", kind)
	}
}

func TestRegisterValidatesInput(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeGateway{})
	tests := []struct {
		name  string
		input commons.RegisterInput
	}{
		{name: "missing username", input: commons.RegisterInput{Email: "a@example.com", Password: "longenough"}},
		{name: "bad email", input: commons.RegisterInput{Username: "alice", Email: "not-an-email", Password: "longenough"}},
		{name: "short password", input: commons.RegisterInput{Username: "alice", Email: "a@example.com", Password: "short"}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.register(context.Background(), tc.input)
			if kind := errorKind(t, err); kind != apperrors.KindInvalidInput {
				t.Fatalf("kind = %q, want invalid input", kind)
			}
		})
	}
}

func TestRegisterTrimsIdentity(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	svc := newService(gateway)
	user, err := svc.register(context.Background(), commons.RegisterInput{
		Username: "  alice ",
		Email:    " alice@example.com ",
		Password: "longenough",
	})
	if err != nil {
		t.Fatalf("register() error = %v", err)
	}
	if user.Username != "alice" || user.Email != "alice@example.com" {
		t.Fatalf("user = %+v, want trimmed identity", user)
	}
	if len(gateway.registered) != 1 || gateway.registered[0].Username != "alice" {
		t.Fatalf("registered = %+v", gateway.registered)
	}
}

func TestServiceWithoutGatewayIsUnavailable(t *testing.T) {
	t.Parallel()

	svc := newService(nil)
	_, err := svc.login(context.Background(), "alice", "secret")
	if kind := errorKind(t, err); kind != apperrors.KindUnavailable {
		t.Fatalf("kind = %q, want unavailable", kind)
	}
}
