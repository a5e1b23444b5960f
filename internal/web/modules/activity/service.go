package activity

import (
	"context"

	"github.com/kaarlekaarle/commons-web/internal/commons"
)

// ActivityGateway is the narrow backend surface this module depends on.
type ActivityGateway interface {
	ListActivity(ctx context.Context) ([]commons.ActivityItem, error)
}

type service struct {
	gateway ActivityGateway
}

func newService(gateway ActivityGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) recentActivity(ctx context.Context) ([]commons.ActivityItem, error) {
	items, err := s.gateway.ListActivity(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []commons.ActivityItem{}
	}
	return items, nil
}
