package topics

import (
	"context"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
)

// unavailableGateway serves degraded mode when no backend client is configured.
type unavailableGateway struct{}

var _ TopicGateway = unavailableGateway{}

func unavailableErr() error {
	return apperrors.E(apperrors.KindUnavailable, "backend is not configured")
}

func (unavailableGateway) ListLabels(context.Context) ([]commons.Label, error) {
	return nil, unavailableErr()
}

func (unavailableGateway) ListLabelPolls(context.Context, string, int) (commons.SummaryPage, error) {
	return commons.SummaryPage{}, unavailableErr()
}
