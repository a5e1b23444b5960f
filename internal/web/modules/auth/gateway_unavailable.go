package auth

import (
	"context"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
)

// unavailableGateway serves degraded mode when no backend client is configured.
type unavailableGateway struct{}

var _ AuthGateway = unavailableGateway{}

func unavailableErr() error {
	return apperrors.E(apperrors.KindUnavailable, "backend is not configured")
}

func (unavailableGateway) Login(context.Context, string, string) (commons.Token, error) {
	return commons.Token{}, unavailableErr()
}

func (unavailableGateway) Register(context.Context, commons.RegisterInput) (commons.User, error) {
	return commons.User{}, unavailableErr()
}
