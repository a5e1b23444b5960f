package delegations

import (
	"context"
	"strings"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
)

// minSearchLength avoids flooding the backend with one-letter queries.
const minSearchLength = 2

// DelegationGateway is the narrow backend surface this module depends on.
type DelegationGateway interface {
	GetDelegation(ctx context.Context) (commons.DelegationInfo, error)
	CreateDelegation(ctx context.Context, input commons.DelegationInput) (commons.DelegationInfo, error)
	DeleteDelegation(ctx context.Context, labelID string) error
	SearchUsers(ctx context.Context, query string) ([]commons.User, error)
	ListLabels(ctx context.Context) ([]commons.Label, error)
}

type service struct {
	gateway DelegationGateway
}

func newService(gateway DelegationGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) delegationState(ctx context.Context) (commons.DelegationInfo, error) {
	return s.gateway.GetDelegation(ctx)
}

func (s service) createDelegation(ctx context.Context, input commons.DelegationInput) (commons.DelegationInfo, error) {
	input.ToUserID = strings.TrimSpace(input.ToUserID)
	input.LabelID = strings.TrimSpace(input.LabelID)
	if input.ToUserID == "" {
		return commons.DelegationInfo{}, apperrors.EK(apperrors.KindInvalidInput, "web.delegations.error.delegate_required", "a delegate is required")
	}
	return s.gateway.CreateDelegation(ctx, input)
}

// deleteDelegation revokes a delegation. A blank labelID revokes the global one.
func (s service) deleteDelegation(ctx context.Context, labelID string) error {
	return s.gateway.DeleteDelegation(ctx, strings.TrimSpace(labelID))
}

// searchDelegates finds candidate delegates. Queries below the minimum length
// return an empty result instead of an error so the picker can stay quiet
// while the member types.
func (s service) searchDelegates(ctx context.Context, query string) ([]commons.User, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minSearchLength {
		return []commons.User{}, nil
	}
	users, err := s.gateway.SearchUsers(ctx, query)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []commons.User{}
	}
	return users, nil
}

func (s service) listLabels(ctx context.Context) ([]commons.Label, error) {
	labels, err := s.gateway.ListLabels(ctx)
	if err != nil {
		return nil, err
	}
	if labels == nil {
		labels = []commons.Label{}
	}
	return labels, nil
}
