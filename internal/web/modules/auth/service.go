package auth

import (
	"context"
	"strings"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
)

// AuthGateway is the narrow backend surface this module depends on.
type AuthGateway interface {
	Login(ctx context.Context, username, password string) (commons.Token, error)
	Register(ctx context.Context, input commons.RegisterInput) (commons.User, error)
}

type service struct {
	gateway AuthGateway
}

func newService(gateway AuthGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) login(ctx context.Context, username, password string) (commons.Token, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return commons.Token{}, apperrors.EK(apperrors.KindInvalidInput, "web.auth.error.credentials_required", "username and password are required")
	}
	token, err := s.gateway.Login(ctx, username, password)
	if err != nil {
		return commons.Token{}, err
	}
	if strings.TrimSpace(token.AccessToken) == "" {
		return commons.Token{}, apperrors.E(apperrors.KindUnavailable, "backend returned an empty token")
	}
	return token, nil
}

func (s service) register(ctx context.Context, input commons.RegisterInput) (commons.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
	if input.Username == "" {
		return commons.User{}, apperrors.EK(apperrors.KindInvalidInput, "web.auth.error.username_required", "username is required")
	}
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return commons.User{}, apperrors.EK(apperrors.KindInvalidInput, "web.auth.error.email_invalid", "a valid email is required")
	}
	if len(input.Password) < 8 {
		return commons.User{}, apperrors.EK(apperrors.KindInvalidInput, "web.auth.error.password_short", "password must be at least 8 characters")
	}
	return s.gateway.Register(ctx, input)
}
