package public

import (
	"context"
	"strings"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
)

// ContentGateway is the narrow backend surface this module depends on.
type ContentGateway interface {
	GetContent(ctx context.Context, slug string) (commons.ContentPage, error)
}

// contentSlugs enumerates the documents the public site serves.
var contentSlugs = map[string]bool{
	"principles": true,
	"actions":    true,
	"stories":    true,
}

type service struct {
	gateway ContentGateway
}

func newService(gateway ContentGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) contentPage(ctx context.Context, slug string) (commons.ContentPage, error) {
	slug = strings.TrimSpace(slug)
	if !contentSlugs[slug] {
		return commons.ContentPage{}, apperrors.E(apperrors.KindNotFound, "unknown content page")
	}
	return s.gateway.GetContent(ctx, slug)
}
