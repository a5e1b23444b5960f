package activity

import (
	"context"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
)

// unavailableGateway serves degraded mode when no backend client is configured.
type unavailableGateway struct{}

var _ ActivityGateway = unavailableGateway{}

func (unavailableGateway) ListActivity(context.Context) ([]commons.ActivityItem, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "backend is not configured")
}
