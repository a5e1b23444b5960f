package delegations

import (
	"context"
	"time"

	"github.com/kaarlekaarle/commons-web/internal/commons"
)

// fakeGateway implements DelegationGateway for tests with configurable state
// and error injection.
type fakeGateway struct {
	info      commons.DelegationInfo
	infoErr   error
	createErr error
	created   []commons.DelegationInput
	deleteErr error
	deleted   []string
	users     []commons.User
	searchErr error
	queries   []string
	labels    []commons.Label
	labelsErr error
}

var _ DelegationGateway = (*fakeGateway)(nil)

func sampleInfo() commons.DelegationInfo {
	transit := commons.Label{ID: "l1", Name: "Transit", Slug: "transit"}
	return commons.DelegationInfo{
		Global: &commons.Delegation{
			ID:        "d-global",
			ToUser:    commons.User{ID: "u2", Username: "bob"},
			CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		},
		Labels: []commons.Delegation{{
			ID:        "d-transit",
			ToUser:    commons.User{ID: "u3", Username: "carol"},
			Label:     &transit,
			CreatedAt: time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC),
		}},
		Chain: []commons.DelegationChainHop{
			{FromUser: commons.User{Username: "alice"}, ToUser: commons.User{Username: "bob"}},
			{FromUser: commons.User{Username: "bob"}, ToUser: commons.User{Username: "dave"}},
		},
	}
}

func (f *fakeGateway) GetDelegation(context.Context) (commons.DelegationInfo, error) {
	if f.infoErr != nil {
		return commons.DelegationInfo{}, f.infoErr
	}
	return f.info, nil
}

func (f *fakeGateway) CreateDelegation(_ context.Context, input commons.DelegationInput) (commons.DelegationInfo, error) {
	if f.createErr != nil {
		return commons.DelegationInfo{}, f.createErr
	}
	f.created = append(f.created, input)
	return f.info, nil
}

func (f *fakeGateway) DeleteDelegation(_ context.Context, labelID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, labelID)
	return nil
}

func (f *fakeGateway) SearchUsers(_ context.Context, query string) ([]commons.User, error) {
	f.queries = append(f.queries, query)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if f.users == nil {
		return []commons.User{
			{ID: "u2", Username: "bob"},
			{ID: "u3", Username: "bobbie"},
		}, nil
	}
	return f.users, nil
}

func (f *fakeGateway) ListLabels(context.Context) ([]commons.Label, error) {
	if f.labelsErr != nil {
		return nil, f.labelsErr
	}
	if f.labels == nil {
		return []commons.Label{{ID: "l1", Name: "Transit", Slug: "transit"}}, nil
	}
	return f.labels, nil
}
