package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// English is the source language; other locales translate these entries.
func init() {
	for key, text := range messagesEN {
		_ = message.SetString(language.English, key, text)
	}
}

var messagesEN = map[string]string{
	"web.app.name": "The Commons",

	"web.nav.proposals":   "Proposals",
	"web.nav.compass":     "Compass",
	"web.nav.topics":      "Topics",
	"web.nav.delegations": "Delegations",
	"web.nav.activity":    "Activity",
	"web.nav.logout":      "Log out",

	"web.common.retry":     "Try again",
	"web.common.load_more": "Load more",

	"web.time.just_now":    "just now",
	"web.time.minute_ago":  "a minute ago",
	"web.time.minutes_ago": "%d minutes ago",
	"web.time.hour_ago":    "an hour ago",
	"web.time.hours_ago":   "%d hours ago",
	"web.time.day_ago":     "yesterday",
	"web.time.days_ago":    "%d days ago",

	"web.error.not_found.title": "Page not found",
	"web.error.not_found.body":  "The page you are looking for does not exist or has moved.",
	"web.error.internal.title":  "Something went wrong",
	"web.error.internal.body":   "An unexpected error occurred. Please try again in a moment.",

	"web.landing.title":        "Decide together",
	"web.landing.lede":         "The Commons is a place where communities set direction, propose concrete action, and share decisions.",
	"web.landing.cta_register": "Join your community",
	"web.landing.cta_login":    "Sign in",

	"web.content.error.title": "Content unavailable",

	"web.auth.login.title":    "Sign in",
	"web.auth.login.meta":     "Sign in to The Commons",
	"web.auth.login.submit":   "Sign in",
	"web.auth.login.alt":      "New here? Create an account",
	"web.auth.register.title":  "Create an account",
	"web.auth.register.meta":   "Join The Commons",
	"web.auth.register.submit": "Create account",
	"web.auth.register.alt":    "Already a member? Sign in",
	"web.auth.field.username":  "Username",
	"web.auth.field.email":     "Email",
	"web.auth.field.password":  "Password",
	"web.auth.notice_registered": "Account created. Sign in to continue.",
	"web.auth.notice_welcome":    "Account created. Welcome to The Commons.",

	"web.auth.error.credentials_required": "Enter your username and password.",
	"web.auth.error.username_required":    "Choose a username.",
	"web.auth.error.email_invalid":        "Enter a valid email address.",
	"web.auth.error.password_short":       "Passwords need at least 8 characters.",

	"web.proposals.title":          "Proposals",
	"web.proposals.new":            "New proposal",
	"web.proposals.empty":          "No proposals yet. Start the first one.",
	"web.proposals.notice_created": "Your proposal is live.",
	"web.proposals.notice_voted":   "Your vote has been counted.",
	"web.proposals.tab.all":        "All",
	"web.proposals.tab.actions":    "Actions",
	"web.proposals.tab.problems":   "Problems",
	"web.proposals.type.principle": "Principle",
	"web.proposals.type.action":    "Action",
	"web.proposals.type.problem":   "Problem",

	"web.proposals.form.title":         "Title",
	"web.proposals.form.description":   "Description",
	"web.proposals.form.decision_type": "Kind of decision",
	"web.proposals.form.labels":        "Topics",
	"web.proposals.form.submit":        "Publish proposal",

	"web.proposals.vote.title":        "Cast your vote",
	"web.proposals.vote.title_update": "Change your vote",
	"web.proposals.vote.submit":       "Vote",

	"web.proposals.results.title": "Results",
	"web.proposals.results.total": "%d votes so far",
	"web.proposals.results.error": "Results are unavailable right now.",

	"web.proposals.comments.title":       "Discussion",
	"web.proposals.comments.empty":       "No comments yet.",
	"web.proposals.comments.placeholder": "Add to the discussion",
	"web.proposals.comments.submit":      "Comment",
	"web.proposals.comments.delete":      "Delete",
	"web.proposals.comments.error":       "The discussion could not be loaded.",

	"web.proposals.error.title_required":         "Give your proposal a title.",
	"web.proposals.error.decision_type_required": "Choose what kind of decision this is.",
	"web.proposals.error.option_required":        "Pick an option before voting.",
	"web.proposals.error.comment_required":       "Write a comment before posting.",
	"web.proposals.error.reaction_invalid":       "That reaction is not recognized.",

	"web.compass.title":           "Compass",
	"web.compass.subtitle":        "The long-term directions your community has set.",
	"web.compass.intro":           "Principles guide everyday decisions. Actions and problems are weighed against them.",
	"web.compass.empty":           "No principles have been set yet.",
	"web.compass.discuss":         "Open discussion",
	"web.compass.alignment.total": "%d members have weighed in",

	"web.topics.title":       "Topics",
	"web.topics.subtitle":    "Browse proposals by the topics your community cares about.",
	"web.topics.empty":       "No topics yet.",
	"web.topics.items_empty": "Nothing has been filed under this topic yet.",

	"web.delegations.title":                  "Delegations",
	"web.delegations.subtitle":               "Choose who votes on your behalf when you sit one out.",
	"web.delegations.empty":                  "You are not delegating to anyone.",
	"web.delegations.current.title":          "Your delegates",
	"web.delegations.chain.title":            "Where your vote flows",
	"web.delegations.revoke":                 "Revoke",
	"web.delegations.new.title":              "Delegate your vote",
	"web.delegations.form.search":            "Find a member",
	"web.delegations.form.scope":             "Scope",
	"web.delegations.form.scope_global":      "All topics",
	"web.delegations.form.submit":            "Delegate",
	"web.delegations.search.empty":           "No members match your search.",
	"web.delegations.scope.global":           "All topics",
	"web.delegations.notice_created":         "Delegation saved.",
	"web.delegations.notice_revoked":         "Delegation revoked.",
	"web.delegations.error.delegate_required": "Pick a member to delegate to.",

	"web.activity.title":    "Activity",
	"web.activity.subtitle": "What your community has been deciding lately.",
	"web.activity.empty":    "Nothing has happened yet.",

	"web.activity.kind.poll_created":    "proposed",
	"web.activity.kind.comment_created": "commented on",
	"web.activity.kind.vote_cast":       "voted on",
}
