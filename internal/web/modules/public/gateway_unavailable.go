package public

import (
	"context"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
)

// unavailableGateway serves degraded mode when no backend client is configured.
type unavailableGateway struct{}

var _ ContentGateway = unavailableGateway{}

func (unavailableGateway) GetContent(context.Context, string) (commons.ContentPage, error) {
	return commons.ContentPage{}, apperrors.E(apperrors.KindUnavailable, "backend is not configured")
}
