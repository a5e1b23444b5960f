package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ProposalsTabView is one decision-type filter tab.
type ProposalsTabView struct {
	Label  string
	URL    string
	Active bool
}

// ProposalsPageView is the proposal listing page model.
type ProposalsPageView struct {
	Tabs        []ProposalsTabView
	Cards       []PollCardView
	HasMore     bool
	LoadMoreURL string
}

// ProposalLabelOptionView is one selectable topic label in the create form.
type ProposalLabelOptionView struct {
	ID      string
	Name    string
	Checked bool
}

// ProposalFormView is the proposal creation form model.
type ProposalFormView struct {
	Action       string
	Title        string
	Description  string
	DecisionType string
	Labels       []ProposalLabelOptionView
	ErrorMessage string
}

// OptionView is one votable choice.
type OptionView struct {
	ID       string
	Text     string
	Selected bool
}

// ProposalVoteView is the vote form model.
type ProposalVoteView struct {
	FormAction string
	Options    []OptionView
	HasVoted   bool
}

// ResultRowView is one option tally row.
type ResultRowView struct {
	Text       string
	CountLabel string
	Percent    int
	Mine       bool
}

// ResultsSectionView is the poll results section model.
type ResultsSectionView struct {
	SectionID  string
	TotalLabel string
	Rows       []ResultRowView
}

// CommentView is one rendered comment.
type CommentView struct {
	ID           string
	Author       string
	Body         string
	CreatedLabel string
	UpCount      int
	DownCount    int
	MyReaction   string
	CanDelete    bool
	DeleteURL    string
	ReactURL     string
}

// CommentsSectionView is the poll comments section model.
type CommentsSectionView struct {
	SectionID  string
	FormAction string
	Comments   []CommentView
}

// ProposalDetailView is the proposal detail page model.
type ProposalDetailView struct {
	ID           string
	Title        string
	Description  string
	TypeLabel    string
	TypeClass    string
	AuthorName   string
	CreatedLabel string
	Labels       []LabelChipView
	Vote         *ProposalVoteView
	Results      templ.Component
	Comments     templ.Component
}

// ProposalsFragment renders the proposal listing.
func ProposalsFragment(view ProposalsPageView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(view.Tabs) > 0 {
			if err := writef(w, `<nav class="filter-tabs">`); err != nil {
				return err
			}
			for _, tab := range view.Tabs {
				class := "filter-tab"
				if tab.Active {
					class += " active"
				}
				if err := writef(w, `<a class="%s" href="%s">%s</a>`, esc(class), esc(tab.URL), esc(tab.Label)); err != nil {
					return err
				}
			}
			if err := writef(w, `</nav>`); err != nil {
				return err
			}
		}
		if err := PollCardList("proposal-list", view.Cards, T(loc, "web.proposals.empty")).Render(ctx, w); err != nil {
			return err
		}
		if view.HasMore && view.LoadMoreURL != "" {
			return LoadMoreButton(view.LoadMoreURL, loc).Render(ctx, w)
		}
		return nil
	})
}

// ProposalListPage renders appended cards plus the next pagination control.
// Served to HTMX load-more swaps.
func ProposalListPage(cards []PollCardView, hasMore bool, loadMoreURL string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, card := range cards {
			if err := PollCard(card).Render(ctx, w); err != nil {
				return err
			}
		}
		if hasMore && loadMoreURL != "" {
			return LoadMoreButton(loadMoreURL, loc).Render(ctx, w)
		}
		return nil
	})
}

// ProposalFormFragment renders the proposal creation form.
func ProposalFormFragment(view ProposalFormView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := writef(w, `<form class="proposal-form" method="post" action="%s">`, esc(view.Action)); err != nil {
			return err
		}
		if view.ErrorMessage != "" {
			if err := writef(w, `<p class="form-error">%s</p>`, esc(view.ErrorMessage)); err != nil {
				return err
			}
		}
		if err := writef(w,
			`<label>%s<input type="text" name="title" value="%s" required></label>`,
			esc(T(loc, "web.proposals.form.title")), esc(view.Title),
		); err != nil {
			return err
		}
		if err := writef(w,
			`<label>%s<textarea name="description" rows="6">%s</textarea></label>`,
			esc(T(loc, "web.proposals.form.description")), esc(view.Description),
		); err != nil {
			return err
		}
		if err := writef(w, `<fieldset><legend>%s</legend>`, esc(T(loc, "web.proposals.form.decision_type"))); err != nil {
			return err
		}
		types := []struct {
			value string
			key   string
		}{
			{"level_a", "web.proposals.type.principle"},
			{"level_b", "web.proposals.type.action"},
			{"level_c", "web.proposals.type.problem"},
		}
		for _, dt := range types {
			checked := ""
			if view.DecisionType == dt.value {
				checked = " checked"
			}
			if err := writef(w,
				`<label class="radio"><input type="radio" name="decision_type" value="%s"%s>%s</label>`,
				esc(dt.value), checked, esc(T(loc, dt.key)),
			); err != nil {
				return err
			}
		}
		if err := writef(w, `</fieldset>`); err != nil {
			return err
		}
		if len(view.Labels) > 0 {
			if err := writef(w, `<fieldset><legend>%s</legend>`, esc(T(loc, "web.proposals.form.labels"))); err != nil {
				return err
			}
			for _, label := range view.Labels {
				checked := ""
				if label.Checked {
					checked = " checked"
				}
				if err := writef(w,
					`<label class="checkbox"><input type="checkbox" name="label_ids" value="%s"%s>%s</label>`,
					esc(label.ID), checked, esc(label.Name),
				); err != nil {
					return err
				}
			}
			if err := writef(w, `</fieldset>`); err != nil {
				return err
			}
		}
		return writef(w,
			`<button type="submit" class="button-primary">%s</button></form>`,
			esc(T(loc, "web.proposals.form.submit")),
		)
	})
}

// ProposalDetailFragment renders the proposal detail page.
func ProposalDetailFragment(view ProposalDetailView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<article class="proposal-detail %s">`, esc(view.TypeClass)); err != nil {
			return err
		}
		if view.TypeLabel != "" {
			if err := writef(w, `<span class="poll-card-type">%s</span>`, esc(view.TypeLabel)); err != nil {
				return err
			}
		}
		if err := writef(w, `<p class="proposal-byline">%s · %s</p>`, esc(view.AuthorName), esc(view.CreatedLabel)); err != nil {
			return err
		}
		if view.Description != "" {
			if err := writef(w, `<div class="proposal-description"><p>%s</p></div>`, esc(view.Description)); err != nil {
				return err
			}
		}
		if err := writeLabelChips(w, view.Labels); err != nil {
			return err
		}
		if view.Vote != nil {
			if err := writeVoteForm(w, *view.Vote, loc); err != nil {
				return err
			}
		}
		if view.Results != nil {
			if err := view.Results.Render(ctx, w); err != nil {
				return err
			}
		}
		if view.Comments != nil {
			if err := view.Comments.Render(ctx, w); err != nil {
				return err
			}
		}
		return writef(w, `</article>`)
	})
}

// ProposalResultsSection renders the poll results tally.
func ProposalResultsSection(view ResultsSectionView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := writef(w,
			`<section id="%s" class="proposal-results"><h2>%s</h2><p class="results-total">%s</p>`,
			esc(view.SectionID), esc(T(loc, "web.proposals.results.title")), esc(view.TotalLabel),
		); err != nil {
			return err
		}
		for _, row := range view.Rows {
			class := "result-row"
			if row.Mine {
				class += " result-row-mine"
			}
			if err := writef(w,
				`<div class="%s"><span class="result-text">%s</span><span class="result-count">%s</span><div class="result-bar"><div class="result-bar-fill" style="width: %d%%"></div></div></div>`,
				esc(class), esc(row.Text), esc(row.CountLabel), row.Percent,
			); err != nil {
				return err
			}
		}
		return writef(w, `</section>`)
	})
}

// ProposalCommentsSection renders the comment list and reply form.
func ProposalCommentsSection(view CommentsSectionView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := writef(w,
			`<section id="%s" class="proposal-comments"><h2>%s</h2>`,
			esc(view.SectionID), esc(T(loc, "web.proposals.comments.title")),
		); err != nil {
			return err
		}
		if len(view.Comments) == 0 {
			if err := writef(w, `<p class="empty-state">%s</p>`, esc(T(loc, "web.proposals.comments.empty"))); err != nil {
				return err
			}
		}
		for _, comment := range view.Comments {
			if err := writeComment(w, comment, loc); err != nil {
				return err
			}
		}
		if view.FormAction != "" {
			if err := writef(w,
				`<form class="comment-form" method="post" action="%s"><textarea name="body" rows="3" required placeholder="%s"></textarea><button type="submit">%s</button></form>`,
				esc(view.FormAction), esc(T(loc, "web.proposals.comments.placeholder")), esc(T(loc, "web.proposals.comments.submit")),
			); err != nil {
				return err
			}
		}
		return writef(w, `</section>`)
	})
}

func writeVoteForm(w io.Writer, vote ProposalVoteView, loc Localizer) error {
	heading := T(loc, "web.proposals.vote.title")
	if vote.HasVoted {
		heading = T(loc, "web.proposals.vote.title_update")
	}
	if err := writef(w,
		`<form class="vote-form" method="post" action="%s"><h2>%s</h2>`,
		esc(vote.FormAction), esc(heading),
	); err != nil {
		return err
	}
	for _, option := range vote.Options {
		checked := ""
		if option.Selected {
			checked = " checked"
		}
		if err := writef(w,
			`<label class="radio"><input type="radio" name="option_id" value="%s"%s>%s</label>`,
			esc(option.ID), checked, esc(option.Text),
		); err != nil {
			return err
		}
	}
	return writef(w,
		`<button type="submit" class="button-primary">%s</button></form>`,
		esc(T(loc, "web.proposals.vote.submit")),
	)
}

func writeComment(w io.Writer, comment CommentView, loc Localizer) error {
	if err := writef(w,
		`<div class="comment" id="comment-%s"><p class="comment-byline">%s · %s</p><p class="comment-body">%s</p><div class="comment-actions">`,
		esc(comment.ID), esc(comment.Author), esc(comment.CreatedLabel), esc(comment.Body),
	); err != nil {
		return err
	}
	upClass := "reaction"
	if comment.MyReaction == "up" {
		upClass += " reaction-active"
	}
	downClass := "reaction"
	if comment.MyReaction == "down" {
		downClass += " reaction-active"
	}
	if comment.ReactURL != "" {
		if err := writef(w,
			`<form method="post" action="%s" class="inline"><input type="hidden" name="reaction" value="up"><button type="submit" class="%s">▲ %d</button></form><form method="post" action="%s" class="inline"><input type="hidden" name="reaction" value="down"><button type="submit" class="%s">▼ %d</button></form>`,
			esc(comment.ReactURL), esc(upClass), comment.UpCount, esc(comment.ReactURL), esc(downClass), comment.DownCount,
		); err != nil {
			return err
		}
	}
	if comment.CanDelete && comment.DeleteURL != "" {
		if err := writef(w,
			`<form method="post" action="%s" class="inline"><button type="submit" class="link-button">%s</button></form>`,
			esc(comment.DeleteURL), esc(T(loc, "web.proposals.comments.delete")),
		); err != nil {
			return err
		}
	}
	return writef(w, `</div></div>`)
}
