package pages

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"foodlog/internal/views/layout"
	"foodlog/models"
)

// Login renders the full sign-in page.
func Login(message, email string) templ.Component {
	return layout.Base("Sign in — foodlog", models.DefaultTheme, LoginPartial(message, email))
}

// LoginPartial renders the sign-in form fragment for HTMX swaps.
func LoginPartial(message, email string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeFlash(w, message); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<form class="auth-form" method="post" action="/login" hx-post="/login">`+
				`<h1>Sign in</h1>`+
				`<label>Email<input type="email" name="email" value="%s" required></label>`+
				`<label>Password<input type="password" name="password" required></label>`+
				`<button type="submit">Sign in</button>`+
				`<p class="hint"><a href="/signup">First run? Create the diary account</a></p>`+
				`</form>`,
			html.EscapeString(email))
		return err
	})
}

// Signup renders the full account creation page.
func Signup(message, name, email string) templ.Component {
	return layout.Base("Create account — foodlog", models.DefaultTheme, SignupPartial(message, name, email))
}

// SignupPartial renders the account creation form fragment.
func SignupPartial(message, name, email string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeFlash(w, message); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<form class="auth-form" method="post" action="/signup" hx-post="/signup">`+
				`<h1>Create the diary account</h1>`+
				`<label>Name<input type="text" name="name" value="%s"></label>`+
				`<label>Email<input type="email" name="email" value="%s" required></label>`+
				`<label>Password<input type="password" name="password" required></label>`+
				`<label>Confirm password<input type="password" name="confirm_password" required></label>`+
				`<button type="submit">Create account</button>`+
				`</form>`,
			html.EscapeString(name), html.EscapeString(email))
		return err
	})
}

func writeFlash(w io.Writer, message string) error {
	if message == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, `<p class="flash">%s</p>`, html.EscapeString(message))
	return err
}
