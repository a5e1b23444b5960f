package activity

import (
	"context"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
)

// restGateway adapts the backend API client to ActivityGateway.
type restGateway struct {
	api commons.API
}

// NewRESTGateway builds an activity gateway over the backend client. A nil
// client yields the unavailable gateway.
func NewRESTGateway(api commons.API) ActivityGateway {
	if api == nil {
		return unavailableGateway{}
	}
	return restGateway{api: api}
}

func (g restGateway) ListActivity(ctx context.Context) ([]commons.ActivityItem, error) {
	items, err := g.api.ListActivity(ctx)
	if err != nil {
		return nil, apperrors.FromAPI(err)
	}
	return items, nil
}
