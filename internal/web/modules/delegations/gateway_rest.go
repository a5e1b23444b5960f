package delegations

import (
	"context"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
)

// restGateway adapts the backend API client to DelegationGateway.
type restGateway struct {
	api commons.API
}

// NewRESTGateway builds a delegations gateway over the backend client. A nil
// client yields the unavailable gateway.
func NewRESTGateway(api commons.API) DelegationGateway {
	if api == nil {
		return unavailableGateway{}
	}
	return restGateway{api: api}
}

func (g restGateway) GetDelegation(ctx context.Context) (commons.DelegationInfo, error) {
	info, err := g.api.GetDelegation(ctx)
	if err != nil {
		return commons.DelegationInfo{}, apperrors.FromAPI(err)
	}
	return info, nil
}

func (g restGateway) CreateDelegation(ctx context.Context, input commons.DelegationInput) (commons.DelegationInfo, error) {
	info, err := g.api.CreateDelegation(ctx, input)
	if err != nil {
		return commons.DelegationInfo{}, apperrors.FromAPI(err)
	}
	return info, nil
}

func (g restGateway) DeleteDelegation(ctx context.Context, labelID string) error {
	if err := g.api.DeleteDelegation(ctx, labelID); err != nil {
		return apperrors.FromAPI(err)
	}
	return nil
}

func (g restGateway) SearchUsers(ctx context.Context, query string) ([]commons.User, error) {
	users, err := g.api.SearchUsers(ctx, query)
	if err != nil {
		return nil, apperrors.FromAPI(err)
	}
	return users, nil
}

func (g restGateway) ListLabels(ctx context.Context) ([]commons.Label, error) {
	labels, err := g.api.ListLabels(ctx)
	if err != nil {
		return nil, apperrors.FromAPI(err)
	}
	return labels, nil
}
