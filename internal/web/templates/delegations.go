package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// DelegationRowView backs one active delegation row.
type DelegationRowView struct {
	Name         string
	ScopeLabel   string
	CreatedLabel string
	DeleteAction string
	LabelID      string
}

// DelegationChainHopView backs one hop of the resolved delegation chain.
type DelegationChainHopView struct {
	From string
	To   string
}

// DelegationLabelOption is one label choice in the delegation form.
type DelegationLabelOption struct {
	ID   string
	Name string
}

// DelegationFormView backs the new-delegation form.
type DelegationFormView struct {
	Action       string
	SearchURL    string
	LabelOptions []DelegationLabelOption
	ErrorMessage string
}

// DelegationsPageView backs the delegations page.
type DelegationsPageView struct {
	Global *DelegationRowView
	Labels []DelegationRowView
	Chain  []DelegationChainHopView
	Form   DelegationFormView
}

// UserOptionView is one candidate delegate in search results.
type UserOptionView struct {
	ID       string
	Username string
}

// DelegationsFragment renders delegation state and the new-delegation form.
func DelegationsFragment(view DelegationsPageView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := writef(w, `<section class="delegations-current"><h2>%s</h2>`, esc(T(loc, "web.delegations.current.title"))); err != nil {
			return err
		}
		if view.Global == nil && len(view.Labels) == 0 {
			if err := writef(w, `<p class="empty-state">%s</p>`, esc(T(loc, "web.delegations.empty"))); err != nil {
				return err
			}
		}
		if view.Global != nil {
			if err := writeDelegationRow(w, *view.Global, loc); err != nil {
				return err
			}
		}
		for _, row := range view.Labels {
			if err := writeDelegationRow(w, row, loc); err != nil {
				return err
			}
		}
		if err := writef(w, `</section>`); err != nil {
			return err
		}

		if len(view.Chain) > 0 {
			if err := writef(w, `<section class="delegation-chain"><h2>%s</h2><ol>`, esc(T(loc, "web.delegations.chain.title"))); err != nil {
				return err
			}
			for _, hop := range view.Chain {
				if err := writef(w, `<li class="chain-hop">%s → %s</li>`, esc(hop.From), esc(hop.To)); err != nil {
					return err
				}
			}
			if err := writef(w, `</ol></section>`); err != nil {
				return err
			}
		}

		return writeDelegationForm(w, view.Form, loc)
	})
}

func writeDelegationRow(w io.Writer, row DelegationRowView, loc Localizer) error {
	if err := writef(w, `<div class="delegation-row"><span class="delegate-name">%s</span><span class="delegate-scope">%s</span>`,
		esc(row.Name), esc(row.ScopeLabel)); err != nil {
		return err
	}
	if row.CreatedLabel != "" {
		if err := writef(w, `<span class="delegate-since">%s</span>`, esc(row.CreatedLabel)); err != nil {
			return err
		}
	}
	if err := writef(w, `<form method="post" action="%s">`, esc(row.DeleteAction)); err != nil {
		return err
	}
	if row.LabelID != "" {
		if err := writef(w, `<input type="hidden" name="label_id" value="%s">`, esc(row.LabelID)); err != nil {
			return err
		}
	}
	return writef(w, `<button type="submit" class="button-danger">%s</button></form></div>`, esc(T(loc, "web.delegations.revoke")))
}

func writeDelegationForm(w io.Writer, form DelegationFormView, loc Localizer) error {
	if err := writef(w, `<section class="delegation-new"><h2>%s</h2>`, esc(T(loc, "web.delegations.new.title"))); err != nil {
		return err
	}
	if form.ErrorMessage != "" {
		if err := writef(w, `<p class="form-error">%s</p>`, esc(form.ErrorMessage)); err != nil {
			return err
		}
	}
	if err := writef(w, `<form method="post" action="%s">`, esc(form.Action)); err != nil {
		return err
	}
	if err := writef(w,
		`<label>%s<input type="search" name="q" hx-get="%s" hx-trigger="keyup changed delay:300ms" hx-target="#delegate-results" hx-swap="innerHTML" autocomplete="off"></label>`,
		esc(T(loc, "web.delegations.form.search")), esc(form.SearchURL),
	); err != nil {
		return err
	}
	if err := writef(w, `<div id="delegate-results"></div>`); err != nil {
		return err
	}
	if len(form.LabelOptions) > 0 {
		if err := writef(w, `<label>%s<select name="label_id"><option value="">%s</option>`,
			esc(T(loc, "web.delegations.form.scope")), esc(T(loc, "web.delegations.form.scope_global"))); err != nil {
			return err
		}
		for _, option := range form.LabelOptions {
			if err := writef(w, `<option value="%s">%s</option>`, esc(option.ID), esc(option.Name)); err != nil {
				return err
			}
		}
		if err := writef(w, `</select></label>`); err != nil {
			return err
		}
	}
	return writef(w, `<button type="submit" class="button-primary">%s</button></form></section>`, esc(T(loc, "web.delegations.form.submit")))
}

// DelegationSearchResults renders delegate candidates for the picker.
func DelegationSearchResults(users []UserOptionView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(users) == 0 {
			return writef(w, `<p class="empty-state">%s</p>`, esc(T(loc, "web.delegations.search.empty")))
		}
		for _, user := range users {
			if err := writef(w,
				`<label class="delegate-option"><input type="radio" name="to_user_id" value="%s">%s</label>`,
				esc(user.ID), esc(user.Username),
			); err != nil {
				return err
			}
		}
		return nil
	})
}
