// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root     = "/"
	Health   = "/up"
	DebugAPI = "/debug/api"

	Principles = "/principles"
	Actions    = "/actions"
	Stories    = "/stories"

	Login    = "/login"
	Register = "/register"
	Logout   = "/logout"

	AppPrefix = "/app/"

	AppProposals                    = "/app/proposals"
	ProposalsPrefix                 = "/app/proposals/"
	AppProposalsNew                 = "/app/proposals/new"
	AppProposalsCreate              = "/app/proposals/create"
	AppProposalPattern              = ProposalsPrefix + "{pollID}"
	AppProposalVotePattern          = ProposalsPrefix + "{pollID}/vote"
	AppProposalResultsPattern       = ProposalsPrefix + "{pollID}/results"
	AppProposalCommentsPattern      = ProposalsPrefix + "{pollID}/comments"
	AppProposalCommentDeletePattern = ProposalsPrefix + "{pollID}/comments/{commentID}/delete"
	AppProposalCommentReactPattern  = ProposalsPrefix + "{pollID}/comments/{commentID}/react"

	AppCompass                 = "/app/compass"
	CompassPrefix              = "/app/compass/"
	AppCompassPattern          = CompassPrefix + "{pollID}"
	AppCompassAlignmentPattern = CompassPrefix + "{pollID}/alignment"

	AppTopics            = "/app/topics"
	TopicsPrefix         = "/app/topics/"
	AppTopicPattern      = TopicsPrefix + "{slug}"
	AppTopicItemsPattern = TopicsPrefix + "{slug}/items"

	AppDelegations       = "/app/delegations"
	DelegationsPrefix    = "/app/delegations/"
	AppDelegationsCreate = "/app/delegations/create"
	AppDelegationsDelete = "/app/delegations/delete"
	AppDelegationsSearch = "/app/delegations/search"

	AppActivity = "/app/activity"
)

// AppProposal returns the proposal detail route.
func AppProposal(pollID string) string {
	return ProposalsPrefix + escapeSegment(pollID)
}

// AppProposalVote returns the proposal vote route.
func AppProposalVote(pollID string) string {
	return AppProposal(pollID) + "/vote"
}

// AppProposalResults returns the proposal results fragment route.
func AppProposalResults(pollID string) string {
	return AppProposal(pollID) + "/results"
}

// AppProposalComments returns the proposal comments route.
func AppProposalComments(pollID string) string {
	return AppProposal(pollID) + "/comments"
}

// AppProposalCommentDelete returns the comment delete route.
func AppProposalCommentDelete(pollID string, commentID string) string {
	return AppProposalComments(pollID) + "/" + escapeSegment(commentID) + "/delete"
}

// AppProposalCommentReact returns the comment reaction route.
func AppProposalCommentReact(pollID string, commentID string) string {
	return AppProposalComments(pollID) + "/" + escapeSegment(commentID) + "/react"
}

// AppCompassDetail returns the principle detail route.
func AppCompassDetail(pollID string) string {
	return CompassPrefix + escapeSegment(pollID)
}

// AppCompassAlignment returns the principle alignment fragment route.
func AppCompassAlignment(pollID string) string {
	return AppCompassDetail(pollID) + "/alignment"
}

// AppTopic returns the topic detail route.
func AppTopic(slug string) string {
	return TopicsPrefix + escapeSegment(slug)
}

// AppTopicItems returns the topic items fragment route.
func AppTopicItems(slug string) string {
	return AppTopic(slug) + "/items"
}

func escapeSegment(value string) string {
	return url.PathEscape(strings.TrimSpace(value))
}
