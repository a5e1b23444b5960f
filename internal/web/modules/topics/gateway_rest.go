package topics

import (
	"context"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
)

// restGateway adapts the backend API client to TopicGateway.
type restGateway struct {
	api commons.API
}

// NewRESTGateway builds a topics gateway over the backend client. A nil
// client yields the unavailable gateway.
func NewRESTGateway(api commons.API) TopicGateway {
	if api == nil {
		return unavailableGateway{}
	}
	return restGateway{api: api}
}

func (g restGateway) ListLabels(ctx context.Context) ([]commons.Label, error) {
	labels, err := g.api.ListLabels(ctx)
	if err != nil {
		return nil, apperrors.FromAPI(err)
	}
	return labels, nil
}

func (g restGateway) ListLabelPolls(ctx context.Context, slug string, page int) (commons.SummaryPage, error) {
	result, err := g.api.ListLabelPolls(ctx, slug, page)
	if err != nil {
		return commons.SummaryPage{}, apperrors.FromAPI(err)
	}
	return result, nil
}
