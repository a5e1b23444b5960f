// Package modules assembles the web feature modules into mountable groups.
package modules

import (
	"github.com/kaarlekaarle/commons-web/internal/commons"
	module "github.com/kaarlekaarle/commons-web/internal/web/module"
	"github.com/kaarlekaarle/commons-web/internal/web/modules/activity"
	"github.com/kaarlekaarle/commons-web/internal/web/modules/auth"
	"github.com/kaarlekaarle/commons-web/internal/web/modules/compass"
	"github.com/kaarlekaarle/commons-web/internal/web/modules/delegations"
	"github.com/kaarlekaarle/commons-web/internal/web/modules/proposals"
	"github.com/kaarlekaarle/commons-web/internal/web/modules/public"
	"github.com/kaarlekaarle/commons-web/internal/web/modules/topics"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/modulehandler"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/requestmeta"
	webstorage "github.com/kaarlekaarle/commons-web/internal/web/storage"
)

// Dependencies carries the shared services modules are built from.
type Dependencies struct {
	API      commons.API
	Store    webstorage.Store
	Sessions auth.SessionManager
	Policy   requestmeta.SchemePolicy
	Base     modulehandler.Base
	SignedIn module.ResolveSignedIn
}

// DefaultPublicModules returns modules mounted outside the authenticated app
// surface.
func DefaultPublicModules(deps Dependencies) []module.Module {
	return []module.Module{
		public.NewWithGateway(public.NewRESTGateway(deps.API), deps.SignedIn),
		auth.NewWithGateway(auth.NewRESTGateway(deps.API), deps.Sessions, deps.Policy),
	}
}

// DefaultProtectedModules returns modules mounted under the session-guarded
// /app/ surface.
func DefaultProtectedModules(deps Dependencies) []module.Module {
	return []module.Module{
		proposals.NewWithGateway(proposals.NewRESTGateway(deps.API), deps.Base),
		compass.NewWithGateway(compass.NewRESTGateway(deps.API), deps.Base),
		topics.NewWithGateway(topics.NewRESTGateway(deps.API), deps.Store, deps.Base),
		delegations.NewWithGateway(delegations.NewRESTGateway(deps.API), deps.Base),
		activity.NewWithGateway(activity.NewRESTGateway(deps.API), deps.Base),
	}
}

// Health derives per-module availability keyed by module id. Modules that do
// not report health count as available.
func Health(mods []module.Module) map[string]bool {
	health := make(map[string]bool, len(mods))
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		healthy := true
		if reporter, ok := mod.(module.HealthReporter); ok {
			healthy = reporter.Healthy()
		}
		health[mod.ID()] = healthy
	}
	return health
}
