package auth

import (
	"context"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
)

// restGateway adapts the backend API client to AuthGateway.
type restGateway struct {
	api commons.API
}

// NewRESTGateway builds an auth gateway over the backend client. A nil client
// yields the unavailable gateway.
func NewRESTGateway(api commons.API) AuthGateway {
	if api == nil {
		return unavailableGateway{}
	}
	return restGateway{api: api}
}

func (g restGateway) Login(ctx context.Context, username, password string) (commons.Token, error) {
	token, err := g.api.Login(ctx, username, password)
	if err != nil {
		return commons.Token{}, apperrors.FromAPI(err)
	}
	return token, nil
}

func (g restGateway) Register(ctx context.Context, input commons.RegisterInput) (commons.User, error) {
	user, err := g.api.Register(ctx, input)
	if err != nil {
		return commons.User{}, apperrors.FromAPI(err)
	}
	return user, nil
}
