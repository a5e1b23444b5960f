package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// AuthFormView carries shared state for the login and register forms.
type AuthFormView struct {
	Action       string
	Username     string
	Email        string
	ErrorMessage string
	Notice       string
	NoticeKind   string
	AltLabel     string
	AltURL       string
}

// LoginFragment renders the login form.
func LoginFragment(view AuthFormView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := writeAuthCardOpen(w, T(loc, "web.auth.login.title"), view); err != nil {
			return err
		}
		if err := writef(w,
			`<label>%s<input type="text" name="username" value="%s" autocomplete="username" required></label>`,
			esc(T(loc, "web.auth.field.username")), esc(view.Username),
		); err != nil {
			return err
		}
		if err := writef(w,
			`<label>%s<input type="password" name="password" autocomplete="current-password" required></label>`,
			esc(T(loc, "web.auth.field.password")),
		); err != nil {
			return err
		}
		return writeAuthCardClose(w, T(loc, "web.auth.login.submit"), view)
	})
}

// RegisterFragment renders the account registration form.
func RegisterFragment(view AuthFormView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := writeAuthCardOpen(w, T(loc, "web.auth.register.title"), view); err != nil {
			return err
		}
		if err := writef(w,
			`<label>%s<input type="text" name="username" value="%s" autocomplete="username" required></label>`,
			esc(T(loc, "web.auth.field.username")), esc(view.Username),
		); err != nil {
			return err
		}
		if err := writef(w,
			`<label>%s<input type="email" name="email" value="%s" autocomplete="email" required></label>`,
			esc(T(loc, "web.auth.field.email")), esc(view.Email),
		); err != nil {
			return err
		}
		if err := writef(w,
			`<label>%s<input type="password" name="password" autocomplete="new-password" required></label>`,
			esc(T(loc, "web.auth.field.password")),
		); err != nil {
			return err
		}
		return writeAuthCardClose(w, T(loc, "web.auth.register.submit"), view)
	})
}

func writeAuthCardOpen(w io.Writer, title string, view AuthFormView) error {
	if err := writef(w, `<section class="auth-card"><h1>%s</h1>`, esc(title)); err != nil {
		return err
	}
	if view.Notice != "" {
		kind := view.NoticeKind
		if kind == "" {
			kind = "info"
		}
		if err := writef(w, `<div class="app-toast app-toast-%s" role="status">%s</div>`, esc(kind), esc(view.Notice)); err != nil {
			return err
		}
	}
	if view.ErrorMessage != "" {
		if err := writef(w, `<p class="form-error">%s</p>`, esc(view.ErrorMessage)); err != nil {
			return err
		}
	}
	return writef(w, `<form method="post" action="%s">`, esc(view.Action))
}

func writeAuthCardClose(w io.Writer, submitLabel string, view AuthFormView) error {
	if err := writef(w, `<button type="submit" class="button-primary">%s</button></form>`, esc(submitLabel)); err != nil {
		return err
	}
	if view.AltLabel != "" && view.AltURL != "" {
		if err := writef(w, `<p class="auth-alt"><a href="%s">%s</a></p>`, esc(view.AltURL), esc(view.AltLabel)); err != nil {
			return err
		}
	}
	return writef(w, `</section>`)
}
