package proposals

import (
	"net/http"

	"github.com/kaarlekaarle/commons-web/internal/web/platform/httpx"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppProposals, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProposalsPrefix, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppProposalsNew, h.handleNew)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppProposalsCreate, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.AppProposalsCreate, h.handleCreate)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppProposalPattern, h.handleDetailRoute)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppProposalVotePattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.AppProposalVotePattern, h.handleVote)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppProposalResultsPattern, h.handleResultsFragment)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppProposalCommentsPattern, h.handleCommentsFragment)
	mux.HandleFunc(http.MethodPost+" "+routepath.AppProposalCommentsPattern, h.handleCommentCreate)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppProposalCommentDeletePattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.AppProposalCommentDeletePattern, h.handleCommentDelete)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppProposalCommentReactPattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.AppProposalCommentReactPattern, h.handleCommentReact)
}
