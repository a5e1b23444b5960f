package public

import (
	"context"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
)

// restGateway adapts the backend API client to ContentGateway.
type restGateway struct {
	api commons.API
}

// NewRESTGateway builds a content gateway over the backend client. A nil
// client yields the unavailable gateway.
func NewRESTGateway(api commons.API) ContentGateway {
	if api == nil {
		return unavailableGateway{}
	}
	return restGateway{api: api}
}

func (g restGateway) GetContent(ctx context.Context, slug string) (commons.ContentPage, error) {
	page, err := g.api.GetContent(ctx, slug)
	if err != nil {
		return commons.ContentPage{}, apperrors.FromAPI(err)
	}
	return page, nil
}
