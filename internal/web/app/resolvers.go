package app

import (
	"net/http"

	module "github.com/kaarlekaarle/commons-web/internal/web/module"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
	"github.com/kaarlekaarle/commons-web/internal/web/session"
)

// resolveToken returns the backend bearer token for the request's session.
// The guard middleware attaches the session to the context, so this resolves
// without a second store read on protected routes.
func resolveToken(sessions *session.Resolver) module.ResolveToken {
	return func(r *http.Request) string {
		sess, ok := sessions.Lookup(r)
		if !ok {
			return ""
		}
		return sess.Token
	}
}

func resolveViewer(sessions *session.Resolver) module.ResolveViewer {
	return func(r *http.Request) module.Viewer {
		sess, ok := sessions.Lookup(r)
		if !ok {
			return module.Viewer{}
		}
		return module.Viewer{
			DisplayName: sess.DisplayName,
			Username:    sess.Username,
			ProfileURL:  routepath.AppDelegations,
		}
	}
}

func resolveSignedIn(sessions *session.Resolver) module.ResolveSignedIn {
	return func(r *http.Request) bool {
		_, ok := sessions.Lookup(r)
		return ok
	}
}
