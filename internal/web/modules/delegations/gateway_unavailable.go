package delegations

import (
	"context"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
)

// unavailableGateway serves degraded mode when no backend client is configured.
type unavailableGateway struct{}

var _ DelegationGateway = unavailableGateway{}

func unavailableErr() error {
	return apperrors.E(apperrors.KindUnavailable, "backend is not configured")
}

func (unavailableGateway) GetDelegation(context.Context) (commons.DelegationInfo, error) {
	return commons.DelegationInfo{}, unavailableErr()
}

func (unavailableGateway) CreateDelegation(context.Context, commons.DelegationInput) (commons.DelegationInfo, error) {
	return commons.DelegationInfo{}, unavailableErr()
}

func (unavailableGateway) DeleteDelegation(context.Context, string) error {
	return unavailableErr()
}

func (unavailableGateway) SearchUsers(context.Context, string) ([]commons.User, error) {
	return nil, unavailableErr()
}

func (unavailableGateway) ListLabels(context.Context) ([]commons.Label, error) {
	return nil, unavailableErr()
}
